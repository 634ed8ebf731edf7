package handler

import (
	"autoservice/internal/service"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
)

const ResultSent = "sent"

// SettingsHandler serves the unauthenticated tenant endpoints.
type SettingsHandler struct {
	Deps
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService, deps Deps) *SettingsHandler {
	return &SettingsHandler{Deps: deps, settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.Settings)
	router.POST("/contact", h.Contact)
}

// Settings returns the tenant branding
// @Summary      Tenant settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Body{settings=service.Settings}
// @Router       /api/settings [get]
func (h *SettingsHandler) Settings(c *gin.Context) {
	done(c, gin.H{"settings": h.settingsService.Settings()})
}

// Contact forwards a message from the public contact form
// @Summary      Send contact message
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ContactRequest  true  "Message"
// @Success      200      {object}  response.Body "sent, no_email, bad_email or no_message"
// @Router       /api/contact [post]
func (h *SettingsHandler) Contact(c *gin.Context) {
	var req service.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.settingsService.Contact(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, response.Result(ResultSent))
}
