package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// LogHandler exposes the audit trail. It never records audit rows itself.
type LogHandler struct {
	Deps
	logService service.LogService
}

func NewLogHandler(logService service.LogService, deps Deps) *LogHandler {
	return &LogHandler{Deps: deps, logService: logService}
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/logs", h.Auth.RequirePermission(model.ResourceLogs, model.ActionView), h.List)
}

// List handles GET /logs
// @Summary      List audit log
// @Tags         logs
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        from         query     string  false  "Date or RFC3339"
// @Param        to           query     string  false  "Date or RFC3339"
// @Param        userIds      query     string  false  "Comma separated"
// @Param        search       query     string  false  "Description contains"
// @Success      200  {object}  response.Body{items=[]model.Log,total=int}
// @Router       /api/logs [get]
func (h *LogHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.logService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}
