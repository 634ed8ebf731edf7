package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	Deps
	estimateService service.EstimateService
}

func NewEstimateHandler(estimateService service.EstimateService, deps Deps) *EstimateHandler {
	return &EstimateHandler{Deps: deps, estimateService: estimateService}
}

func (h *EstimateHandler) RegisterRoutes(router *gin.RouterGroup) {
	estimates := router.Group("/estimates")
	{
		estimates.GET("", h.Auth.RequirePermission(model.ResourceEstimates, model.ActionView), h.List)
		estimates.GET("/:id", h.Auth.RequirePermission(model.ResourceEstimates, model.ActionView), h.Get)
		estimates.POST("", h.Auth.RequirePermission(model.ResourceEstimates, model.ActionAdd), h.Add)
		estimates.PUT("/:id", h.Auth.RequirePermission(model.ResourceEstimates, model.ActionEdit), h.Edit)
		estimates.DELETE("", h.Auth.RequirePermission(model.ResourceEstimates, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /estimates
// @Summary      List estimates
// @Tags         estimates
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        orderId      query     int     false  "Order"
// @Param        search       query     string  false  "Name contains"
// @Success      200  {object}  response.Body{items=[]model.Estimate,total=int}
// @Router       /api/estimates [get]
func (h *EstimateHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.estimateService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /estimates/:id
// @Summary      Estimate details with parts and services
// @Tags         estimates
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Estimate ID"
// @Success      200  {object}  response.Body{item=model.Estimate}
// @Router       /api/estimates/{id} [get]
func (h *EstimateHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	estimate, err := h.estimateService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": estimate})
}

// Add handles POST /estimates
// @Summary      Add estimate to an order
// @Description  Line prices default to the linked warehouse item or catalogue service. Totals are computed server-side.
// @Tags         estimates
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.EstimateRequest  true  "Estimate"
// @Success      200      {object}  response.Body{item=model.Estimate} "done, no_name, no_quantity or bad_item"
// @Router       /api/estimates [post]
func (h *EstimateHandler) Add(c *gin.Context) {
	var req service.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}
	estimate, err := h.estimateService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added estimate %s (id %d) to order %d, total %s", estimate.Name, estimate.ID, estimate.OrderID, estimate.Total.StringFixed(2))
	done(c, gin.H{"item": estimate})
}

// Edit handles PUT /estimates/:id
// @Summary      Edit estimate
// @Description  The line items are replaced by the ones in the body.
// @Tags         estimates
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "Estimate ID"
// @Param        payload  body      service.EstimateRequest  true  "Estimate"
// @Success      200      {object}  response.Body{item=model.Estimate}
// @Router       /api/estimates/{id} [put]
func (h *EstimateHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}
	estimate, err := h.estimateService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited estimate %s (id %d), total %s", estimate.Name, estimate.ID, estimate.Total.StringFixed(2))
	done(c, gin.H{"item": estimate})
}

// DeleteMany handles DELETE /estimates
// @Summary      Delete estimates
// @Tags         estimates
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/estimates [delete]
func (h *EstimateHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.estimateService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted estimates %s", joinIDs(ids))
	}
	done(c, nil)
}
