package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type CheckListHandler struct {
	Deps
	checkListService service.CheckListService
}

func NewCheckListHandler(checkListService service.CheckListService, deps Deps) *CheckListHandler {
	return &CheckListHandler{Deps: deps, checkListService: checkListService}
}

func (h *CheckListHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/checklists")
	{
		items.GET("", h.Auth.RequirePermission(model.ResourceCheckLists, model.ActionView), h.List)
		items.GET("/:id", h.Auth.RequirePermission(model.ResourceCheckLists, model.ActionView), h.Get)
		items.POST("", h.Auth.RequirePermission(model.ResourceCheckLists, model.ActionAdd), h.Add)
		items.PUT("/:id", h.Auth.RequirePermission(model.ResourceCheckLists, model.ActionEdit), h.Edit)
		items.DELETE("", h.Auth.RequirePermission(model.ResourceCheckLists, model.ActionDelete), h.DeleteMany)
	}
}

// List handles GET /checklists
// @Summary      List check list items
// @Tags         checklists
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        orderId      query     int     false  "Order"
// @Param        search       query     string  false  "Name contains"
// @Success      200  {object}  response.Body{items=[]model.CheckList,total=int}
// @Router       /api/checklists [get]
func (h *CheckListHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.checkListService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /checklists/:id
// @Summary      Check list item details
// @Tags         checklists
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Body{item=model.CheckList}
// @Router       /api/checklists/{id} [get]
func (h *CheckListHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := h.checkListService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": item})
}

// Add handles POST /checklists
// @Summary      Add check list item to an order
// @Tags         checklists
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CheckListRequest  true  "Item"
// @Success      200      {object}  response.Body{item=model.CheckList} "done, no_name or not_found"
// @Router       /api/checklists [post]
func (h *CheckListHandler) Add(c *gin.Context) {
	var req service.CheckListRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.checkListService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added check list item %s to order %d", item.Name, item.OrderID)
	done(c, gin.H{"item": item})
}

// Edit handles PUT /checklists/:id
// @Summary      Edit check list item
// @Tags         checklists
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Item ID"
// @Param        payload  body      service.CheckListRequest  true  "Item"
// @Success      200      {object}  response.Body{item=model.CheckList}
// @Router       /api/checklists/{id} [put]
func (h *CheckListHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.CheckListRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.checkListService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited check list item %s (id %d)", item.Name, item.ID)
	done(c, gin.H{"item": item})
}

// DeleteMany handles DELETE /checklists
// @Summary      Delete check list items
// @Tags         checklists
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/checklists [delete]
func (h *CheckListHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.checkListService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted check list items %s", joinIDs(ids))
	}
	done(c, nil)
}
