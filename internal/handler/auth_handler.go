package handler

import (
	"autoservice/internal/middleware"
	"autoservice/internal/service"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ResultLoggedIn        = "loggedIn"
	ResultPasswordChanged = "password_changed"
)

type AuthHandler struct {
	Deps
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService, deps Deps) *AuthHandler {
	return &AuthHandler{Deps: deps, authService: authService}
}

// RegisterRoutes binds the session endpoints
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
	router.POST("/logout", h.Deps.Auth.RequireSession(), h.Logout)
	router.GET("/me", h.Deps.Auth.RequireSession(), h.Me)
	router.POST("/changePassword", h.Deps.Auth.RequireSession(), h.ChangePassword)
}

// Login opens a session
// @Summary      Log in
// @Description  Checks the credentials and sets the sessionToken cookie. The token is never returned in the body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Body "loggedIn, no_login_data or bad_login"
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.Auth.SetSessionCookie(c, res.Token, res.Expire)
	response.JSON(c, response.With(ResultLoggedIn, gin.H{
		"isFirstLogin": res.IsFirstLogin,
		"isDeleted":    res.IsDeleted,
		"appRole":      res.AppRole,
	}))
}

// Logout closes the current session
// @Summary      Log out
// @Tags         auth
// @Security     SessionCookie
// @Produce      json
// @Success      200  {object}  response.Body
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString(middleware.ContextSessionToken)); err != nil {
		h.fail(c, err)
		return
	}
	h.Auth.ClearSessionCookie(c)
	response.JSON(c, response.Result(response.Done))
}

// Me returns the current user with their permission codes
// @Summary      Current user
// @Tags         auth
// @Security     SessionCookie
// @Produce      json
// @Success      200  {object}  response.Body{user=model.User,permissions=[]string}
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	me, err := h.authService.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"user": me.User, "permissions": me.Permissions})
}

// ChangePassword replaces the caller's password
// @Summary      Change password
// @Description  Also clears the first-login flag.
// @Tags         auth
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ChangePasswordRequest  true  "Old and new password"
// @Success      200      {object}  response.Body "password_changed, bad_password or weak_password"
// @Router       /api/changePassword [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	userID := middleware.UserID(c)
	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.fail(c, err)
		return
	}

	h.record(c, "Changed own password")
	response.JSON(c, response.Result(ResultPasswordChanged))
}
