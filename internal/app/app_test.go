package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"autoservice/internal/config"
	"autoservice/internal/database"
	"autoservice/internal/mail"
	"autoservice/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

type fakeMailer struct {
	sent []mail.Message
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type testApp struct {
	*App
	t      *testing.T
	db     *gorm.DB
	mailer *fakeMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewConnection("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.MigrateTickets(db))

	cfg := config.Config{
		Session:            config.SessionConfig{CookieName: "sessionToken", TTL: time.Hour},
		CORS:               config.CORSConfig{AllowOrigins: []string{"http://localhost:5173"}},
		Cache:              config.CacheConfig{PermissionTTL: time.Minute},
		Mail:               config.MailConfig{ContactTo: "office@example.com"},
		Tenant:             config.TenantConfig{Name: "Test Garage"},
		UploadDir:          t.TempDir(),
		SoftDeleteEntities: []string{"users", "vehicles"},
		AuditBuffer:        16,
	}
	mailer := &fakeMailer{}
	a := New(Options{Config: cfg, DB: db, Mailer: mailer, Log: zap.NewNop().Sugar()})
	require.NoError(t, a.Auth.SeedAdmin(context.Background(), adminEmail, adminPassword))

	t.Cleanup(func() {
		a.Recorder.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &testApp{App: a, t: t, db: db, mailer: mailer}
}

// do sends a request with an optional session token and decodes the envelope.
func (a *testApp) do(method, path string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sessionToken", Value: token})
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out, rec
}

func (a *testApp) login(email, password string) string {
	a.t.Helper()
	out, rec := a.do(http.MethodPost, "/api/login", gin.H{"email": email, "password": password}, "")
	require.Equal(a.t, "loggedIn", out["result"])
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionToken" {
			return c.Value
		}
	}
	a.t.Fatal("login did not set the session cookie")
	return ""
}

func (a *testApp) auditRows() int64 {
	a.t.Helper()
	a.Recorder.Flush()
	var n int64
	require.NoError(a.t, a.db.Model(&model.Log{}).Count(&n).Error)
	return n
}

func TestLogin(t *testing.T) {
	a := newTestApp(t)

	out, _ := a.do(http.MethodPost, "/api/login", gin.H{"email": adminEmail}, "")
	assert.Equal(t, "no_login_data", out["result"])

	out, rec := a.do(http.MethodPost, "/api/login", gin.H{"email": adminEmail, "password": "wrong"}, "")
	assert.Equal(t, "bad_login", out["result"])
	assert.Empty(t, rec.Result().Cookies())

	out, _ = a.do(http.MethodPost, "/api/login", nil, "")
	assert.Equal(t, "bad_request", out["result"])

	token := a.login(adminEmail, adminPassword)
	out, _ = a.do(http.MethodGet, "/api/me", nil, token)
	assert.Equal(t, "done", out["result"])
	assert.Len(t, out["permissions"], len(model.Catalogue()))
}

func TestSessionRequired(t *testing.T) {
	a := newTestApp(t)
	token := a.login(adminEmail, adminPassword)

	out, _ := a.do(http.MethodGet, "/api/clients", nil, "")
	assert.Equal(t, "no_auth", out["result"])

	out, _ = a.do(http.MethodGet, "/api/clients", nil, "not-a-session")
	assert.Equal(t, "no_auth", out["result"])

	require.NoError(t, a.db.Model(&model.SessionToken{}).
		Where("token = ?", token).
		Update("expire", time.Now().Add(-time.Minute)).Error)
	out, _ = a.do(http.MethodGet, "/api/clients", nil, token)
	assert.Equal(t, "no_auth", out["result"])
}

func TestLogoutEndsSession(t *testing.T) {
	a := newTestApp(t)
	token := a.login(adminEmail, adminPassword)

	out, _ := a.do(http.MethodPost, "/api/logout", nil, token)
	assert.Equal(t, "done", out["result"])

	out, _ = a.do(http.MethodGet, "/api/me", nil, token)
	assert.Equal(t, "no_auth", out["result"])
}

func TestNoPermissionIsNotAudited(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)

	out, _ := a.do(http.MethodPost, "/api/employees", gin.H{
		"firstName": "Piotr",
		"email":     "piotr@example.com",
		"password":  "piotr-password",
	}, admin)
	require.Equal(t, "done", out["result"])

	before := a.auditRows()
	require.Positive(t, before)

	piotr := a.login("piotr@example.com", "piotr-password")
	out, _ = a.do(http.MethodPost, "/api/departments", gin.H{"name": "Annex"}, piotr)
	assert.Equal(t, "no_permission", out["result"])
	out, _ = a.do(http.MethodGet, "/api/clients", nil, piotr)
	assert.Equal(t, "no_permission", out["result"])

	assert.Equal(t, before, a.auditRows())

	var departments int64
	require.NoError(t, a.db.Model(&model.Department{}).Count(&departments).Error)
	assert.Zero(t, departments)
}

func TestDepartmentLifecycle(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)

	out, _ := a.do(http.MethodPost, "/api/departments", gin.H{}, admin)
	assert.Equal(t, "no_name", out["result"])

	out, _ = a.do(http.MethodPost, "/api/departments", gin.H{"name": "Main workshop", "city": "Gdansk"}, admin)
	require.Equal(t, "department_created", out["result"])
	item := out["item"].(map[string]any)
	id := int(item["id"].(float64))

	path := "/api/departments/" + strconv.Itoa(id)
	first, _ := a.do(http.MethodGet, path, nil, admin)
	second, _ := a.do(http.MethodGet, path, nil, admin)
	assert.Equal(t, "done", first["result"])
	assert.Equal(t, first, second)

	out, _ = a.do(http.MethodGet, "/api/departments/9999", nil, admin)
	assert.Equal(t, "not_found", out["result"])
	out, _ = a.do(http.MethodGet, "/api/departments/abc", nil, admin)
	assert.Equal(t, "not_found", out["result"])

	out, _ = a.do(http.MethodDelete, "/api/departments", gin.H{"ids": []int{9998, 9999}}, admin)
	assert.Equal(t, "done", out["result"])

	out, _ = a.do(http.MethodDelete, "/api/departments", gin.H{"ids": []int{id}}, admin)
	assert.Equal(t, "done", out["result"])
	out, _ = a.do(http.MethodGet, path, nil, admin)
	assert.Equal(t, "not_found", out["result"])
}

func TestListPagination(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)

	for i := 0; i < 5; i++ {
		out, _ := a.do(http.MethodPost, "/api/services", gin.H{"name": "Service " + strconv.Itoa(i), "price": "10.00"}, admin)
		require.Equal(t, "done", out["result"])
	}

	seen := map[float64]bool{}
	for page := 1; page <= 3; page++ {
		out, _ := a.do(http.MethodGet, "/api/services?pageSize=2&currentPage="+strconv.Itoa(page), nil, admin)
		require.Equal(t, "done", out["result"])
		assert.EqualValues(t, 5, out["total"])
		assert.EqualValues(t, page, out["currentPage"])
		assert.EqualValues(t, 2, out["pageSize"])

		items := out["items"].([]any)
		if page < 3 {
			assert.Len(t, items, 2)
		} else {
			assert.Len(t, items, 1)
		}
		for _, it := range items {
			id := it.(map[string]any)["id"].(float64)
			assert.False(t, seen[id], "item %v listed twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 5)

	out, _ := a.do(http.MethodGet, "/api/services?from=yesterday", nil, admin)
	assert.Equal(t, "bad_dates", out["result"])
}

func TestSettingsAndContact(t *testing.T) {
	a := newTestApp(t)

	out, _ := a.do(http.MethodGet, "/api/settings", nil, "")
	assert.Equal(t, "done", out["result"])
	assert.Equal(t, "Test Garage", out["settings"].(map[string]any)["name"])

	out, _ = a.do(http.MethodPost, "/api/contact", gin.H{"email": "not-an-email", "message": "hi"}, "")
	assert.Equal(t, "bad_email", out["result"])

	out, _ = a.do(http.MethodPost, "/api/contact", gin.H{"name": "Ewa", "email": "ewa@example.com", "message": "Is my car ready?"}, "")
	assert.Equal(t, "sent", out["result"])
	require.Len(t, a.mailer.sent, 1)
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
