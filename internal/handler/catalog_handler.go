package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the repair service price list.
type CatalogHandler struct {
	Deps
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService, deps Deps) *CatalogHandler {
	return &CatalogHandler{Deps: deps, catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	services := router.Group("/services")
	{
		services.GET("", h.Auth.RequirePermission(model.ResourceServices, model.ActionView), h.List)
		services.GET("/:id", h.Auth.RequirePermission(model.ResourceServices, model.ActionView), h.Get)
		services.POST("", h.Auth.RequirePermission(model.ResourceServices, model.ActionAdd), h.Add)
		services.PUT("/:id", h.Auth.RequirePermission(model.ResourceServices, model.ActionEdit), h.Edit)
		services.DELETE("", h.Auth.RequirePermission(model.ResourceServices, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /services
// @Summary      List repair services
// @Tags         services
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        search       query     string  false  "Name contains"
// @Success      200  {object}  response.Body{items=[]model.RepairService,total=int}
// @Router       /api/services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.catalogService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /services/:id
// @Summary      Repair service details
// @Tags         services
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  response.Body{item=model.RepairService}
// @Router       /api/services/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rs, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": rs})
}

// Add handles POST /services
// @Summary      Add repair service
// @Tags         services
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RepairServiceRequest  true  "Service"
// @Success      200      {object}  response.Body{item=model.RepairService} "done, no_name or no_price"
// @Router       /api/services [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var req service.RepairServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	rs, err := h.catalogService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added service %s (id %d)", rs.Name, rs.ID)
	done(c, gin.H{"item": rs})
}

// Edit handles PUT /services/:id
// @Summary      Edit repair service
// @Tags         services
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Service ID"
// @Param        payload  body      service.RepairServiceRequest  true  "Service"
// @Success      200      {object}  response.Body{item=model.RepairService}
// @Router       /api/services/{id} [put]
func (h *CatalogHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.RepairServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	rs, err := h.catalogService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited service %s (id %d)", rs.Name, rs.ID)
	done(c, gin.H{"item": rs})
}

// DeleteMany handles DELETE /services
// @Summary      Delete repair services
// @Tags         services
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/services [delete]
func (h *CatalogHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted services %s", joinIDs(ids))
	}
	done(c, nil)
}
