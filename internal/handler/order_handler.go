package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Deps
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService, deps Deps) *OrderHandler {
	return &OrderHandler{Deps: deps, orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.Auth.RequirePermission(model.ResourceOrders, model.ActionView), h.List)
		orders.GET("/:id", h.Auth.RequirePermission(model.ResourceOrders, model.ActionView), h.Get)
		orders.POST("", h.Auth.RequirePermission(model.ResourceOrders, model.ActionAdd), h.Add)
		orders.PUT("/:id", h.Auth.RequirePermission(model.ResourceOrders, model.ActionEdit), h.Edit)
		orders.PUT("/:id/status", h.Auth.RequirePermission(model.ResourceOrders, model.ActionStatus), h.ChangeStatus)
		orders.DELETE("", h.Auth.RequirePermission(model.ResourceOrders, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /orders
// @Summary      List orders
// @Description  Filters: from/to on startDate, statuses, departmentIds, search (client name).
// @Tags         orders
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        from           query     string  false  "Date or RFC3339"
// @Param        to             query     string  false  "Date or RFC3339"
// @Param        statuses       query     string  false  "Comma separated"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Param        search         query     string  false  "Client name contains"
// @Success      200  {object}  response.Body{items=[]model.Order,total=int}
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.orderService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /orders/:id
// @Summary      Order details
// @Description  Includes client, vehicle, department, estimates with lines, check list and complaint.
// @Tags         orders
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.Body{item=model.Order}
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": order})
}

// Add handles POST /orders
// @Summary      Add order
// @Description  Estimates and check list items in the body are stored in the same transaction.
// @Tags         orders
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.OrderRequest  true  "Order"
// @Success      200      {object}  response.Body{item=model.Order} "done, no_client, no_vehicle, no_department or bad_vehicle"
// @Router       /api/orders [post]
func (h *OrderHandler) Add(c *gin.Context) {
	var req service.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added order %d for client %d, vehicle %d", order.ID, order.ClientID, order.VehicleID)
	done(c, gin.H{"item": order})
}

// Edit handles PUT /orders/:id
// @Summary      Edit order
// @Tags         orders
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Order ID"
// @Param        payload  body      service.OrderRequest  true  "Order"
// @Success      200      {object}  response.Body{item=model.Order}
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orderService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited order %d", order.ID)
	done(c, gin.H{"item": order})
}

// ChangeStatus handles PUT /orders/:id/status
// @Summary      Change order status
// @Tags         orders
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Order ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.Order} "done or bad_status"
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	order, err := h.orderService.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of order %d to %s", order.ID, model.OrderStatuses.Name(order.Status))
	done(c, gin.H{"item": order})
}

// DeleteMany handles DELETE /orders
// @Summary      Delete orders
// @Tags         orders
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/orders [delete]
func (h *OrderHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.orderService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted orders %s", joinIDs(ids))
	}
	done(c, nil)
}
