package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"autoservice/internal/middleware"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auditor records human-readable audit rows. Implementations must not block.
type Auditor interface {
	Record(ctx context.Context, userID uint, description string)
}

// Deps are shared by every handler.
type Deps struct {
	Auth  *middleware.Auth
	Audit Auditor
	Log   *zap.SugaredLogger
}

// IDsRequest is the body of every bulk delete.
type IDsRequest struct {
	IDs []uint `json:"ids"`
}

// fail maps a service error to its outcome. Unexpected errors are logged and answered with "error".
func (d Deps) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.JSON(c, response.Result(verr.Result))
	case errors.Is(err, service.ErrNotFound):
		response.JSON(c, response.Result(response.NotFound))
	case errors.Is(err, service.ErrExists):
		response.JSON(c, response.Result(response.Exists))
	default:
		_ = c.Error(err)
		d.Log.Errorw("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		response.JSON(c, response.Result(response.Error))
	}
}

// record writes an audit row for the current user after a successful change.
func (d Deps) record(c *gin.Context, format string, args ...any) {
	d.Audit.Record(c.Request.Context(), middleware.UserID(c), fmt.Sprintf(format, args...))
}

func done(c *gin.Context, payload gin.H) {
	response.JSON(c, response.With(response.Done, payload))
}

// listed answers a paginated list.
func listed[T any](c *gin.Context, p service.Page[T], page pagination.Params) {
	done(c, gin.H{
		"items":       p.Items,
		"total":       p.Total,
		"currentPage": page.Page,
		"pageSize":    page.Limit,
	})
}

// bindJSON decodes the body, answering bad_request on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.JSON(c, response.Result(response.BadRequest))
		return false
	}
	return true
}

// paramID parses a numeric path parameter; anything else cannot exist.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.JSON(c, response.Result(response.NotFound))
		return 0, false
	}
	return uint(id), true
}

// bindIDs decodes a bulk-delete body.
func bindIDs(c *gin.Context) ([]uint, bool) {
	var req IDsRequest
	if !bindJSON(c, &req) {
		return nil, false
	}
	return req.IDs, true
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ", ")
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if endOfDay && layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}

// splitQuery accepts both repeated keys (?statuses=1&statuses=2) and comma lists (?statuses=1,2).
func splitQuery(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryUints(c *gin.Context, key string) ([]uint, error) {
	var ids []uint
	for _, raw := range splitQuery(c, key) {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", key, raw)
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}

func queryInts(c *gin.Context, key string) ([]int, error) {
	var vals []int
	for _, raw := range splitQuery(c, key) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", key, raw)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// bindFilter reads the shared list filters. Malformed dates answer bad_dates, other malformed
// values bad_request.
func bindFilter(c *gin.Context) (service.ListFilter, bool) {
	var f service.ListFilter
	var err error

	if f.From, err = parseDate(c.Query("from"), false); err != nil {
		response.JSON(c, response.Result(service.ResultBadDates))
		return f, false
	}
	if f.To, err = parseDate(c.Query("to"), true); err != nil {
		response.JSON(c, response.Result(service.ResultBadDates))
		return f, false
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		response.JSON(c, response.Result(service.ResultBadDates))
		return f, false
	}

	if f.Statuses, err = queryInts(c, "statuses"); err != nil {
		response.JSON(c, response.Result(response.BadRequest))
		return f, false
	}
	if f.DepartmentIDs, err = queryUints(c, "departmentIds"); err != nil {
		response.JSON(c, response.Result(response.BadRequest))
		return f, false
	}
	if f.UserIDs, err = queryUints(c, "userIds"); err != nil {
		response.JSON(c, response.Result(response.BadRequest))
		return f, false
	}
	if raw := c.Query("orderId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.JSON(c, response.Result(response.BadRequest))
			return f, false
		}
		f.OrderID = uint(id)
	}
	f.Search = strings.TrimSpace(c.Query("search"))
	return f, true
}

// bindStatus decodes a status change body. A missing status is bad_status.
func bindStatus(c *gin.Context) (int, bool) {
	var req service.StatusRequest
	if !bindJSON(c, &req) {
		return 0, false
	}
	if req.Status == nil {
		response.JSON(c, response.Result(service.ResultBadStatus))
		return 0, false
	}
	return *req.Status, true
}
