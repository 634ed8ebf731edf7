package app

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"autoservice/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemID(t *testing.T, out map[string]any) int {
	t.Helper()
	item, ok := out["item"].(map[string]any)
	require.True(t, ok, "response has no item: %v", out)
	return int(item["id"].(float64))
}

// employee creates a role holding perms and an employee with that role, and logs them in.
func (a *testApp) employee(admin, email string, perms ...string) string {
	a.t.Helper()
	out, _ := a.do(http.MethodPost, "/api/roles", gin.H{"name": "Role of " + email, "permissions": perms}, admin)
	require.Equal(a.t, "role_created", out["result"])
	roleID := itemID(a.t, out)

	out, _ = a.do(http.MethodPost, "/api/employees", gin.H{
		"firstName": "Anna",
		"email":     email,
		"password":  "employee-password",
		"roleIds":   []int{roleID},
	}, admin)
	require.Equal(a.t, "done", out["result"])
	return a.login(email, "employee-password")
}

func TestAuthenticatedCallSlidesCookie(t *testing.T) {
	a := newTestApp(t)
	token := a.login(adminEmail, adminPassword)

	out, rec := a.do(http.MethodGet, "/api/me", nil, token)
	require.Equal(t, "done", out["result"])

	var reissued *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionToken" {
			reissued = c
		}
	}
	require.NotNil(t, reissued)
	assert.Equal(t, token, reissued.Value)
	assert.Positive(t, reissued.MaxAge)
	assert.True(t, reissued.HttpOnly)
}

func TestAbsenceRequestDecisionOverHTTP(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)
	anna := a.employee(admin, "anna@example.com", "requests_view", "requests_add", "requests_decide")

	out, _ := a.do(http.MethodPost, "/api/requests", gin.H{
		"startDate": "2026-07-06T00:00:00Z",
		"endDate":   "2026-07-10T00:00:00Z",
		"type":      model.AbsenceTypeVacation,
	}, anna)
	require.Equal(t, "done", out["result"])
	path := "/api/requests/" + strconv.Itoa(itemID(t, out)) + "/status"

	out, _ = a.do(http.MethodPut, path, gin.H{"status": model.RequestStatusAccepted}, anna)
	assert.Equal(t, "can_not_accept_own_request", out["result"])

	out, _ = a.do(http.MethodPut, path, gin.H{"status": model.RequestStatusAccepted}, admin)
	require.Equal(t, "done", out["result"])
	assert.EqualValues(t, model.RequestStatusAccepted, out["item"].(map[string]any)["status"])

	out, _ = a.do(http.MethodPut, path, gin.H{"status": model.RequestStatusRejected}, admin)
	assert.Equal(t, "already_decided", out["result"])
}

func TestDemandDeliveryRaisesStockOverHTTP(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)

	out, _ := a.do(http.MethodPost, "/api/departments", gin.H{"name": "Main workshop"}, admin)
	require.Equal(t, "department_created", out["result"])
	deptID := itemID(t, out)

	out, _ = a.do(http.MethodPost, "/api/warehouse", gin.H{"name": "Brake disc", "quantity": 2, "departmentId": deptID}, admin)
	require.Equal(t, "done", out["result"])
	stockID := itemID(t, out)

	out, _ = a.do(http.MethodPost, "/api/demands", gin.H{
		"departmentId": deptID,
		"title":        "Discs",
		"items":        []gin.H{{"warehouseItemId": stockID, "quantity": 3}},
	}, admin)
	require.Equal(t, "done", out["result"])
	lines := out["item"].(map[string]any)["items"].([]any)
	require.Len(t, lines, 1)
	lineID := int(lines[0].(map[string]any)["id"].(float64))

	path := "/api/demands/items/" + strconv.Itoa(lineID) + "/status"
	out, _ = a.do(http.MethodPut, path, gin.H{"status": model.DemandItemDelivered}, admin)
	require.Equal(t, "done", out["result"])

	out, _ = a.do(http.MethodGet, "/api/warehouse/"+strconv.Itoa(stockID), nil, admin)
	require.Equal(t, "done", out["result"])
	assert.EqualValues(t, 5, out["item"].(map[string]any)["quantity"])

	// delivering twice never books the stock twice
	out, _ = a.do(http.MethodPut, path, gin.H{"status": model.DemandItemDelivered}, admin)
	assert.Equal(t, "bad_status", out["result"])
	out, _ = a.do(http.MethodGet, "/api/warehouse/"+strconv.Itoa(stockID), nil, admin)
	assert.EqualValues(t, 5, out["item"].(map[string]any)["quantity"])

	out, _ = a.do(http.MethodDelete, "/api/departments", gin.H{"ids": []int{deptID}}, admin)
	assert.Equal(t, "department_in_use", out["result"])
}

// upload posts content as the "file" field of a multipart form.
func (a *testApp) upload(path, name, content, token string) map[string]any {
	a.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(a.t, err)
	_, err = io.WriteString(part, content)
	require.NoError(a.t, err)
	require.NoError(a.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "sessionToken", Value: token})
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (a *testApp) download(path, token string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "sessionToken", Value: token})
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, http.StatusOK, rec.Code)
	return rec
}

func TestTicketFileOwnershipOverHTTP(t *testing.T) {
	a := newTestApp(t)
	admin := a.login(adminEmail, adminPassword)
	anna := a.employee(admin, "anna@example.com", "tickets_view", "tickets_add")
	piotr := a.employee(admin, "piotr@example.com", "tickets_view", "tickets_add")

	out, _ := a.do(http.MethodPost, "/api/tickets", gin.H{"title": "Invoice", "message": "See attachment"}, anna)
	require.Equal(t, "done", out["result"])
	ticketID := strconv.Itoa(itemID(t, out))

	out = a.upload("/api/tickets/"+ticketID+"/files", "invoice.txt", "total 120 PLN", piotr)
	assert.Equal(t, "not_found", out["result"])

	out = a.upload("/api/tickets/"+ticketID+"/files", "invoice.txt", "total 120 PLN", anna)
	require.Equal(t, "done", out["result"])
	path := "/api/tickets/files/" + strconv.Itoa(itemID(t, out))

	rec := a.download(path, anna)
	assert.Equal(t, "total 120 PLN", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "invoice.txt")

	// the ticket manager sees every attachment
	rec = a.download(path, admin)
	assert.Equal(t, "total 120 PLN", rec.Body.String())

	rec = a.download(path, piotr)
	var denied map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &denied))
	assert.Equal(t, "not_found", denied["result"])
	assert.NotContains(t, rec.Body.String(), "120 PLN")
}
