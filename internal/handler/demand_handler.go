package handler

import (
	"autoservice/internal/middleware"
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// DemandHandler serves purchase demands raised by departments.
type DemandHandler struct {
	Deps
	demandService service.DemandService
}

func NewDemandHandler(demandService service.DemandService, deps Deps) *DemandHandler {
	return &DemandHandler{Deps: deps, demandService: demandService}
}

func (h *DemandHandler) RegisterRoutes(router *gin.RouterGroup) {
	demands := router.Group("/demands")
	{
		demands.GET("", h.Auth.RequirePermission(model.ResourceDemands, model.ActionView), h.List)
		demands.GET("/:id", h.Auth.RequirePermission(model.ResourceDemands, model.ActionView), h.Get)
		demands.POST("", h.Auth.RequirePermission(model.ResourceDemands, model.ActionAdd), h.Add)
		demands.PUT("/:id", h.Auth.RequirePermission(model.ResourceDemands, model.ActionEdit), h.Edit)
		demands.PUT("/:id/status", h.Auth.RequirePermission(model.ResourceDemands, model.ActionEdit), h.ChangeStatus)
		demands.PUT("/items/:itemId/status", h.Auth.RequirePermission(model.ResourceDemands, model.ActionEdit), h.ChangeItemStatus)
		demands.DELETE("", h.Auth.RequirePermission(model.ResourceDemands, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /demands
// @Summary      List demands
// @Description  Filters: from/to on creation date, statuses, departmentIds, search (title).
// @Tags         demands
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        from           query     string  false  "Date or RFC3339"
// @Param        to             query     string  false  "Date or RFC3339"
// @Param        statuses       query     string  false  "Comma separated"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Success      200  {object}  response.Body{items=[]model.Demand,total=int}
// @Router       /api/demands [get]
func (h *DemandHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.demandService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /demands/:id
// @Summary      Demand details with items
// @Tags         demands
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Demand ID"
// @Success      200  {object}  response.Body{item=model.Demand}
// @Router       /api/demands/{id} [get]
func (h *DemandHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	demand, err := h.demandService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": demand})
}

// Add handles POST /demands
// @Summary      Add demand
// @Tags         demands
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.DemandRequest  true  "Demand with items"
// @Success      200      {object}  response.Body{item=model.Demand} "done, no_department, no_items, no_name or no_quantity"
// @Router       /api/demands [post]
func (h *DemandHandler) Add(c *gin.Context) {
	var req service.DemandRequest
	if !bindJSON(c, &req) {
		return
	}
	demand, err := h.demandService.Add(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added demand %d with %d items for department %d", demand.ID, len(demand.Items), demand.DepartmentID)
	done(c, gin.H{"item": demand})
}

// Edit handles PUT /demands/:id
// @Summary      Edit demand
// @Description  Items are replaced. Closed demands cannot be edited.
// @Tags         demands
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Demand ID"
// @Param        payload  body      service.DemandRequest  true  "Demand with items"
// @Success      200      {object}  response.Body{item=model.Demand}
// @Router       /api/demands/{id} [put]
func (h *DemandHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.DemandRequest
	if !bindJSON(c, &req) {
		return
	}
	demand, err := h.demandService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited demand %d", demand.ID)
	done(c, gin.H{"item": demand})
}

// ChangeStatus handles PUT /demands/:id/status
// @Summary      Change demand status
// @Tags         demands
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Demand ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.Demand} "done or bad_status"
// @Router       /api/demands/{id}/status [put]
func (h *DemandHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	demand, err := h.demandService.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of demand %d to %s", demand.ID, model.DemandStatuses.Name(demand.Status))
	done(c, gin.H{"item": demand})
}

// ChangeItemStatus handles PUT /demands/items/:itemId/status
// @Summary      Change demand item status
// @Description  A delivered item linked to a warehouse item adds its quantity to the stock.
// @Tags         demands
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        itemId   path      int                    true  "Demand item ID"
// @Param        payload  body      service.StatusRequest  true  "Status"
// @Success      200      {object}  response.Body{item=model.DemandsItem} "done or bad_status"
// @Router       /api/demands/items/{itemId}/status [put]
func (h *DemandHandler) ChangeItemStatus(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	item, err := h.demandService.ChangeItemStatus(c.Request.Context(), itemID, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Changed status of demand %d item %s to %s", item.DemandID, item.Name, model.DemandItemStatuses.Name(item.Status))
	done(c, gin.H{"item": item})
}

// DeleteMany handles DELETE /demands
// @Summary      Delete demands
// @Tags         demands
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/demands [delete]
func (h *DemandHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.demandService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted demands %s", joinIDs(ids))
	}
	done(c, nil)
}
