package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"autoservice/internal/config"
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID       = "userID"
	ContextSessionToken = "sessionToken"
)

// SessionValidator resolves session tokens and permission checks. ValidateSession returns
// service.ErrNoSession for a missing, unknown or expired token.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.SessionToken, error)
	IsAuthorized(ctx context.Context, userID uint, resource, action string) (bool, error)
}

// Auth holds the cookie settings and the validator; it replaces package-level state.
type Auth struct {
	validator SessionValidator
	cfg       config.SessionConfig
	log       *zap.SugaredLogger
}

func NewAuth(validator SessionValidator, cfg config.SessionConfig, log *zap.SugaredLogger) *Auth {
	return &Auth{validator: validator, cfg: cfg, log: log}
}

// SetSessionCookie writes the sessionToken cookie.
// Secure cookies go out with SameSite=None for the cross-origin front-end, others with Lax.
func (a *Auth) SetSessionCookie(c *gin.Context, token string, expire time.Time) {
	sameSite := http.SameSiteLaxMode
	if a.cfg.SecureCookie {
		sameSite = http.SameSiteNoneMode
	}
	maxAge := int(time.Until(expire).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(sameSite)
	c.SetCookie(a.cfg.CookieName, token, maxAge, "/", "", a.cfg.SecureCookie, true)
}

// ClearSessionCookie expires the sessionToken cookie.
func (a *Auth) ClearSessionCookie(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	if a.cfg.SecureCookie {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(a.cfg.CookieName, "", -1, "/", "", a.cfg.SecureCookie, true)
}

// SessionToken returns the raw cookie value, or "".
func (a *Auth) SessionToken(c *gin.Context) string {
	token, err := c.Cookie(a.cfg.CookieName)
	if err != nil {
		return ""
	}
	return token
}

// RequireSession validates the cookie, slides the session expiry and puts the user id in the context.
func (a *Auth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequirePermission runs the session check if it has not run yet, then checks (resource, action).
// Denied requests never reach the handler.
func (a *Auth) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok && !a.authenticate(c) {
			return
		}

		allowed, err := a.validator.IsAuthorized(c.Request.Context(), UserID(c), resource, action)
		if err != nil {
			a.log.Errorw("permission check failed", "userID", UserID(c), "resource", resource, "action", action, "error", err)
			response.Abort(c, response.Error)
			return
		}
		if !allowed {
			response.Abort(c, response.NoPermission)
			return
		}
		c.Next()
	}
}

func (a *Auth) authenticate(c *gin.Context) bool {
	token := a.SessionToken(c)
	if token == "" {
		response.Abort(c, response.NoAuth)
		return false
	}

	session, err := a.validator.ValidateSession(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			response.Abort(c, response.NoAuth)
			return false
		}
		a.log.Errorw("session validation failed", "error", err)
		response.Abort(c, response.Error)
		return false
	}

	a.SetSessionCookie(c, token, session.Expire)
	c.Set(ContextUserID, session.UserID)
	c.Set(ContextSessionToken, token)
	return true
}

// UserID returns the authenticated user id, or 0 outside an authenticated route.
func UserID(c *gin.Context) uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// Can reports whether the authenticated user holds (resource, action) without aborting the request.
func (a *Auth) Can(c *gin.Context, resource, action string) (bool, error) {
	userID := UserID(c)
	if userID == 0 {
		return false, nil
	}
	return a.validator.IsAuthorized(c.Request.Context(), userID, resource, action)
}
