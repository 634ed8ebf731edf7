package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type WarehouseHandler struct {
	Deps
	warehouseService service.WarehouseService
}

func NewWarehouseHandler(warehouseService service.WarehouseService, deps Deps) *WarehouseHandler {
	return &WarehouseHandler{Deps: deps, warehouseService: warehouseService}
}

func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/warehouse")
	{
		items.GET("", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionView), h.List)
		items.GET("/:id", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionView), h.Get)
		items.POST("", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionAdd), h.Add)
		items.PUT("/:id", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionEdit), h.Edit)
		items.POST("/:id/quantity", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionEdit), h.AdjustQuantity)
		items.DELETE("", h.Auth.RequirePermission(model.ResourceWarehouse, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /warehouse
// @Summary      List warehouse items
// @Tags         warehouse
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        search         query     string  false  "Name, EAN or location contains"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Success      200  {object}  response.Body{items=[]model.WarehouseItem,total=int}
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.warehouseService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /warehouse/:id
// @Summary      Warehouse item details
// @Tags         warehouse
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Body{item=model.WarehouseItem}
// @Router       /api/warehouse/{id} [get]
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := h.warehouseService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": item})
}

// Add handles POST /warehouse
// @Summary      Add warehouse item
// @Description  The EAN must be unique within the department.
// @Tags         warehouse
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.WarehouseItemRequest  true  "Item"
// @Success      200      {object}  response.Body{item=model.WarehouseItem} "done, no_name, no_department or exists"
// @Router       /api/warehouse [post]
func (h *WarehouseHandler) Add(c *gin.Context) {
	var req service.WarehouseItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.warehouseService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added warehouse item %s (id %d) to department %d", item.Name, item.ID, item.DepartmentID)
	done(c, gin.H{"item": item})
}

// Edit handles PUT /warehouse/:id
// @Summary      Edit warehouse item
// @Tags         warehouse
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Item ID"
// @Param        payload  body      service.WarehouseItemRequest  true  "Item"
// @Success      200      {object}  response.Body{item=model.WarehouseItem}
// @Router       /api/warehouse/{id} [put]
func (h *WarehouseHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.WarehouseItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.warehouseService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited warehouse item %s (id %d)", item.Name, item.ID)
	done(c, gin.H{"item": item})
}

// AdjustQuantity handles POST /warehouse/:id/quantity
// @Summary      Change stock
// @Description  Adds delta (may be negative) to the stock. Stock never drops below zero.
// @Tags         warehouse
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Item ID"
// @Param        payload  body      service.AdjustQuantityRequest  true  "Delta"
// @Success      200      {object}  response.Body{item=model.WarehouseItem} "done or insufficient_quantity"
// @Router       /api/warehouse/{id}/quantity [post]
func (h *WarehouseHandler) AdjustQuantity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.AdjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.warehouseService.AdjustQuantity(c.Request.Context(), id, req.Delta)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed stock of warehouse item %d by %d to %d", item.ID, req.Delta, item.Quantity)
	done(c, gin.H{"item": item})
}

// DeleteMany handles DELETE /warehouse
// @Summary      Delete warehouse items
// @Tags         warehouse
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/warehouse [delete]
func (h *WarehouseHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.warehouseService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted warehouse items %s", joinIDs(ids))
	}
	done(c, nil)
}
