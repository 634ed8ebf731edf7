package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	Deps
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService, deps Deps) *VehicleHandler {
	return &VehicleHandler{Deps: deps, vehicleService: vehicleService}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", h.Auth.RequirePermission(model.ResourceVehicles, model.ActionView), h.List)
		vehicles.GET("/:id", h.Auth.RequirePermission(model.ResourceVehicles, model.ActionView), h.Get)
		vehicles.POST("", h.Auth.RequirePermission(model.ResourceVehicles, model.ActionAdd), h.Add)
		vehicles.PUT("/:id", h.Auth.RequirePermission(model.ResourceVehicles, model.ActionEdit), h.Edit)
		vehicles.DELETE("", h.Auth.RequirePermission(model.ResourceVehicles, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /vehicles
// @Summary      List vehicles
// @Description  Filters: userIds (owners), search (registration, brand, model, VIN).
// @Tags         vehicles
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        userIds      query     string  false  "Comma separated owner ids"
// @Param        search       query     string  false  "Contains"
// @Success      200  {object}  response.Body{items=[]model.Vehicle,total=int}
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.vehicleService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /vehicles/:id
// @Summary      Vehicle details
// @Tags         vehicles
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  response.Body{item=model.Vehicle}
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": vehicle})
}

// Add handles POST /vehicles
// @Summary      Add vehicle to a client
// @Tags         vehicles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.VehicleRequest  true  "Vehicle"
// @Success      200      {object}  response.Body{item=model.Vehicle} "done, no_client or no_registration"
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Add(c *gin.Context) {
	var req service.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	vehicle, err := h.vehicleService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added vehicle %s to client %d", vehicle.Registration, vehicle.UserID)
	done(c, gin.H{"item": vehicle})
}

// Edit handles PUT /vehicles/:id
// @Summary      Edit vehicle
// @Tags         vehicles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Vehicle ID"
// @Param        payload  body      service.VehicleRequest  true  "Vehicle"
// @Success      200      {object}  response.Body{item=model.Vehicle}
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	vehicle, err := h.vehicleService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited vehicle %s (id %d)", vehicle.Registration, vehicle.ID)
	done(c, gin.H{"item": vehicle})
}

// DeleteMany handles DELETE /vehicles
// @Summary      Delete vehicles
// @Tags         vehicles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/vehicles [delete]
func (h *VehicleHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.vehicleService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted vehicles %s", joinIDs(ids))
	}
	done(c, nil)
}
