package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	Deps
	complaintService service.ComplaintService
}

func NewComplaintHandler(complaintService service.ComplaintService, deps Deps) *ComplaintHandler {
	return &ComplaintHandler{Deps: deps, complaintService: complaintService}
}

func (h *ComplaintHandler) RegisterRoutes(router *gin.RouterGroup) {
	complaints := router.Group("/complaints")
	{
		complaints.GET("", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionView), h.List)
		complaints.GET("/:id", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionView), h.Get)
		complaints.POST("", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionAdd), h.Add)
		complaints.PUT("/:id", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionEdit), h.Edit)
		complaints.PUT("/:id/status", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionEdit), h.ChangeStatus)
		complaints.DELETE("", h.Auth.RequirePermission(model.ResourceComplaints, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /complaints
// @Summary      List complaints
// @Tags         complaints
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        from         query     string  false  "Date or RFC3339"
// @Param        to           query     string  false  "Date or RFC3339"
// @Param        statuses     query     string  false  "Comma separated"
// @Param        orderId      query     int     false  "Order"
// @Success      200  {object}  response.Body{items=[]model.OrdersComplaint,total=int}
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.complaintService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /complaints/:id
// @Summary      Complaint details
// @Tags         complaints
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Complaint ID"
// @Success      200  {object}  response.Body{item=model.OrdersComplaint}
// @Router       /api/complaints/{id} [get]
func (h *ComplaintHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	complaint, err := h.complaintService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": complaint})
}

// Add handles POST /complaints
// @Summary      File a complaint about an order
// @Description  An order holds at most one complaint.
// @Tags         complaints
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ComplaintRequest  true  "Complaint"
// @Success      200      {object}  response.Body{item=model.OrdersComplaint} "done, no_description or exists"
// @Router       /api/complaints [post]
func (h *ComplaintHandler) Add(c *gin.Context) {
	var req service.ComplaintRequest
	if !bindJSON(c, &req) {
		return
	}
	complaint, err := h.complaintService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added complaint %d to order %d", complaint.ID, complaint.OrderID)
	done(c, gin.H{"item": complaint})
}

// Edit handles PUT /complaints/:id
// @Summary      Edit complaint
// @Tags         complaints
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Complaint ID"
// @Param        payload  body      service.ComplaintRequest  true  "Complaint"
// @Success      200      {object}  response.Body{item=model.OrdersComplaint}
// @Router       /api/complaints/{id} [put]
func (h *ComplaintHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.ComplaintRequest
	if !bindJSON(c, &req) {
		return
	}
	complaint, err := h.complaintService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited complaint %d", complaint.ID)
	done(c, gin.H{"item": complaint})
}

// ChangeStatus handles PUT /complaints/:id/status
// @Summary      Change complaint status
// @Tags         complaints
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Complaint ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.OrdersComplaint} "done or bad_status"
// @Router       /api/complaints/{id}/status [put]
func (h *ComplaintHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	complaint, err := h.complaintService.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of complaint %d to %s", complaint.ID, model.ComplaintStatuses.Name(complaint.Status))
	done(c, gin.H{"item": complaint})
}

// DeleteMany handles DELETE /complaints
// @Summary      Delete complaints
// @Tags         complaints
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/complaints [delete]
func (h *ComplaintHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.complaintService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted complaints %s", joinIDs(ids))
	}
	done(c, nil)
}
