package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// AirconHandler serves air-conditioning service records.
type AirconHandler struct {
	Deps
	airconService service.AirconService
}

func NewAirconHandler(airconService service.AirconService, deps Deps) *AirconHandler {
	return &AirconHandler{Deps: deps, airconService: airconService}
}

func (h *AirconHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/aircon")
	{
		records.GET("", h.Auth.RequirePermission(model.ResourceAircon, model.ActionView), h.List)
		records.GET("/:id", h.Auth.RequirePermission(model.ResourceAircon, model.ActionView), h.Get)
		records.POST("", h.Auth.RequirePermission(model.ResourceAircon, model.ActionAdd), h.Add)
		records.PUT("/:id", h.Auth.RequirePermission(model.ResourceAircon, model.ActionEdit), h.Edit)
		records.DELETE("", h.Auth.RequirePermission(model.ResourceAircon, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /aircon
// @Summary      List air-conditioning records
// @Description  Filters: from/to on performedAt, departmentIds, search (refrigerant, technician).
// @Tags         aircon
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        from           query     string  false  "Date or RFC3339"
// @Param        to             query     string  false  "Date or RFC3339"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Param        search         query     string  false  "Contains"
// @Success      200  {object}  response.Body{items=[]model.AirConditioningRecord,total=int}
// @Router       /api/aircon [get]
func (h *AirconHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.airconService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /aircon/:id
// @Summary      Air-conditioning record details
// @Tags         aircon
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  response.Body{item=model.AirConditioningRecord}
// @Router       /api/aircon/{id} [get]
func (h *AirconHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	record, err := h.airconService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": record})
}

// Add handles POST /aircon
// @Summary      Add air-conditioning record
// @Tags         aircon
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AirconRequest  true  "Record"
// @Success      200      {object}  response.Body{item=model.AirConditioningRecord} "done or no_vehicle"
// @Router       /api/aircon [post]
func (h *AirconHandler) Add(c *gin.Context) {
	var req service.AirconRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.airconService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added air-conditioning record %d for vehicle %d", record.ID, record.VehicleID)
	done(c, gin.H{"item": record})
}

// Edit handles PUT /aircon/:id
// @Summary      Edit air-conditioning record
// @Tags         aircon
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Record ID"
// @Param        payload  body      service.AirconRequest  true  "Record"
// @Success      200      {object}  response.Body{item=model.AirConditioningRecord}
// @Router       /api/aircon/{id} [put]
func (h *AirconHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.AirconRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.airconService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited air-conditioning record %d", record.ID)
	done(c, gin.H{"item": record})
}

// DeleteMany handles DELETE /aircon
// @Summary      Delete air-conditioning records
// @Tags         aircon
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/aircon [delete]
func (h *AirconHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.airconService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted air-conditioning records %s", joinIDs(ids))
	}
	done(c, nil)
}
