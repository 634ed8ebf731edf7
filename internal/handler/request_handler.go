package handler

import (
	"autoservice/internal/middleware"
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves employee absence requests.
type RequestHandler struct {
	Deps
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService, deps Deps) *RequestHandler {
	return &RequestHandler{Deps: deps, requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/requests")
	{
		requests.GET("", h.Auth.RequirePermission(model.ResourceRequests, model.ActionView), h.List)
		requests.GET("/:id", h.Auth.RequirePermission(model.ResourceRequests, model.ActionView), h.Get)
		requests.POST("", h.Auth.RequirePermission(model.ResourceRequests, model.ActionAdd), h.Add)
		requests.PUT("/:id", h.Auth.RequirePermission(model.ResourceRequests, model.ActionEdit), h.Edit)
		requests.PUT("/:id/status", h.Auth.RequirePermission(model.ResourceRequests, model.ActionDecide), h.ChangeStatus)
		requests.DELETE("", h.Auth.RequirePermission(model.ResourceRequests, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /requests
// @Summary      List absence requests
// @Tags         requests
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        from         query     string  false  "Date or RFC3339"
// @Param        to           query     string  false  "Date or RFC3339"
// @Param        statuses     query     string  false  "Comma separated"
// @Param        userIds      query     string  false  "Comma separated"
// @Success      200  {object}  response.Body{items=[]model.AbsenceRequest,total=int}
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.requestService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /requests/:id
// @Summary      Absence request details
// @Tags         requests
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  response.Body{item=model.AbsenceRequest}
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	request, err := h.requestService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": request})
}

// Add handles POST /requests
// @Summary      File an absence request
// @Description  The request is filed for the caller.
// @Tags         requests
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AbsenceRequestRequest  true  "Request"
// @Success      200      {object}  response.Body{item=model.AbsenceRequest} "done, no_dates, bad_dates or bad_type"
// @Router       /api/requests [post]
func (h *RequestHandler) Add(c *gin.Context) {
	var req service.AbsenceRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	request, err := h.requestService.Add(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Filed %s request %d from %s to %s", request.Type, request.ID,
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	done(c, gin.H{"item": request})
}

// Edit handles PUT /requests/:id
// @Summary      Edit absence request
// @Description  Only pending requests can be edited.
// @Tags         requests
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Request ID"
// @Param        payload  body      service.AbsenceRequestRequest  true  "Request"
// @Success      200      {object}  response.Body{item=model.AbsenceRequest} "done, bad_dates or already_decided"
// @Router       /api/requests/{id} [put]
func (h *RequestHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.AbsenceRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	request, err := h.requestService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited absence request %d", request.ID)
	done(c, gin.H{"item": request})
}

// ChangeStatus handles PUT /requests/:id/status
// @Summary      Accept or reject an absence request
// @Description  status 1 accepts, 2 rejects. Nobody may accept their own request.
// @Tags         requests
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Request ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.AbsenceRequest} "done, bad_status, already_decided or can_not_accept_own_request"
// @Router       /api/requests/{id}/status [put]
func (h *RequestHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	request, err := h.requestService.ChangeStatus(c.Request.Context(), middleware.UserID(c), id, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of absence request %d to %s", request.ID, model.RequestStatuses.Name(request.Status))
	done(c, gin.H{"item": request})
}

// DeleteMany handles DELETE /requests
// @Summary      Delete absence requests
// @Tags         requests
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/requests [delete]
func (h *RequestHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.requestService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted absence requests %s", joinIDs(ids))
	}
	done(c, nil)
}
