package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoservice/internal/config"
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeValidator struct {
	sessions map[string]*model.SessionToken
	grants   map[uint][]string
	fail     error
}

func (v *fakeValidator) ValidateSession(_ context.Context, token string) (*model.SessionToken, error) {
	if v.fail != nil {
		return nil, v.fail
	}
	s, ok := v.sessions[token]
	if !ok {
		return nil, service.ErrNoSession
	}
	return s, nil
}

func (v *fakeValidator) IsAuthorized(_ context.Context, userID uint, resource, action string) (bool, error) {
	want := model.PermissionKey{Resource: resource, Action: action}.Code()
	for _, code := range v.grants[userID] {
		if code == want {
			return true, nil
		}
	}
	return false, nil
}

func newRouter(v SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuth(v, config.SessionConfig{CookieName: "sessionToken", TTL: time.Hour}, zap.NewNop().Sugar())

	r := gin.New()
	r.GET("/me", auth.RequireSession(), func(c *gin.Context) {
		response.JSON(c, response.With(response.Done, gin.H{"userId": UserID(c)}))
	})
	r.GET("/clients", auth.RequirePermission(model.ResourceClients, model.ActionView), func(c *gin.Context) {
		canDelete, err := auth.Can(c, model.ResourceClients, model.ActionDelete)
		if err != nil {
			response.Abort(c, response.Error)
			return
		}
		response.JSON(c, response.With(response.Done, gin.H{"canDelete": canDelete}))
	})
	return r
}

func call(t *testing.T, r *gin.Engine, path, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sessionToken", Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out, rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionToken" {
			return c
		}
	}
	return nil
}

func TestRequireSession(t *testing.T) {
	expire := time.Now().Add(time.Hour)
	v := &fakeValidator{sessions: map[string]*model.SessionToken{
		"good": {Token: "good", UserID: 7, Expire: expire},
	}}
	r := newRouter(v)

	tests := []struct {
		name   string
		token  string
		result string
	}{
		{"no cookie", "", response.NoAuth},
		{"unknown token", "stale", response.NoAuth},
		{"valid token", "good", response.Done},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec := call(t, r, "/me", tt.token)
			assert.Equal(t, tt.result, out["result"])
			if tt.result != response.Done {
				assert.Nil(t, sessionCookie(rec))
			}
		})
	}
}

func TestRequireSession_ReissuesCookie(t *testing.T) {
	v := &fakeValidator{sessions: map[string]*model.SessionToken{
		"good": {Token: "good", UserID: 7, Expire: time.Now().Add(time.Hour)},
	}}
	out, rec := call(t, newRouter(v), "/me", "good")
	require.Equal(t, response.Done, out["result"])
	assert.EqualValues(t, 7, out["userId"])

	c := sessionCookie(rec)
	require.NotNil(t, c, "every authenticated call slides the cookie")
	assert.Equal(t, "good", c.Value)
	assert.True(t, c.HttpOnly)
	assert.InDelta(t, time.Hour.Seconds(), c.MaxAge, 5)
}

func TestRequireSession_ValidatorFailure(t *testing.T) {
	v := &fakeValidator{fail: errors.New("database is gone")}
	out, _ := call(t, newRouter(v), "/me", "good")
	assert.Equal(t, response.Error, out["result"])
}

func TestRequirePermission(t *testing.T) {
	expire := time.Now().Add(time.Hour)
	v := &fakeValidator{
		sessions: map[string]*model.SessionToken{
			"viewer":  {Token: "viewer", UserID: 1, Expire: expire},
			"manager": {Token: "manager", UserID: 2, Expire: expire},
			"nobody":  {Token: "nobody", UserID: 3, Expire: expire},
		},
		grants: map[uint][]string{
			1: {"clients_view"},
			2: {"clients_view", "clients_delete"},
		},
	}
	r := newRouter(v)

	out, _ := call(t, r, "/clients", "")
	assert.Equal(t, response.NoAuth, out["result"])

	out, rec := call(t, r, "/clients", "nobody")
	assert.Equal(t, response.NoPermission, out["result"])
	assert.NotNil(t, sessionCookie(rec), "a denied call still carries a valid session")

	out, _ = call(t, r, "/clients", "viewer")
	assert.Equal(t, response.Done, out["result"])
	assert.Equal(t, false, out["canDelete"])

	out, _ = call(t, r, "/clients", "manager")
	assert.Equal(t, response.Done, out["result"])
	assert.Equal(t, true, out["canDelete"])
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core).Sugar()))
	r.GET("/ok", func(c *gin.Context) { response.JSON(c, response.Result(response.Done)) })
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		response.JSON(c, response.Result(response.Error))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, response.Done, entries[0].ContextMap()["result"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "/broken", entries[1].ContextMap()["path"])
}
