package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
)

const ResultRoleCreated = "role_created"

type RoleHandler struct {
	Deps
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService, deps Deps) *RoleHandler {
	return &RoleHandler{Deps: deps, roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/permissions", h.Auth.RequirePermission(model.ResourceRoles, model.ActionView), h.ListPermissions)

	roles := router.Group("/roles")
	{
		roles.GET("", h.Auth.RequirePermission(model.ResourceRoles, model.ActionView), h.List)
		roles.GET("/:id", h.Auth.RequirePermission(model.ResourceRoles, model.ActionView), h.Get)
		roles.POST("", h.Auth.RequirePermission(model.ResourceRoles, model.ActionAdd), h.Add)
		roles.PUT("/:id", h.Auth.RequirePermission(model.ResourceRoles, model.ActionEdit), h.Edit)
		roles.DELETE("", h.Auth.RequirePermission(model.ResourceRoles, model.ActionDelete), h.DeleteMany)
	}
}

// ListPermissions handles GET /permissions
// @Summary      Permission catalogue
// @Description  Every "<resource>_<action>" code a role may hold.
// @Tags         roles
// @Security     SessionCookie
// @Produce      json
// @Success      200  {object}  response.Body{items=[]service.PermissionResponse}
// @Router       /api/permissions [get]
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	done(c, gin.H{"items": h.roleService.ListPermissions()})
}

// List handles GET /roles
// @Summary      List roles
// @Tags         roles
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage  query     int     false  "Page (1-based)"
// @Param        pageSize     query     int     false  "Page size (max 100)"
// @Param        search       query     string  false  "Name contains"
// @Success      200  {object}  response.Body{items=[]service.RoleResponse,total=int}
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.roleService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /roles/:id
// @Summary      Role details
// @Tags         roles
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Role ID"
// @Success      200  {object}  response.Body{item=service.RoleResponse}
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	role, err := h.roleService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": role})
}

// Add handles POST /roles
// @Summary      Add role
// @Tags         roles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RoleRequest  true  "Role"
// @Success      200      {object}  response.Body{item=service.RoleResponse} "role_created, no_name, exists or invalid_permission"
// @Router       /api/roles [post]
func (h *RoleHandler) Add(c *gin.Context) {
	var req service.RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.roleService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added role %s (id %d)", role.Name, role.ID)
	response.JSON(c, response.With(ResultRoleCreated, gin.H{"item": role}))
}

// Edit handles PUT /roles/:id
// @Summary      Edit role
// @Description  Name and the full permission set are replaced together. System roles answer system_role.
// @Tags         roles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Role ID"
// @Param        payload  body      service.RoleRequest  true  "Role"
// @Success      200      {object}  response.Body{item=service.RoleResponse}
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.RoleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.roleService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited role %s (id %d)", role.Name, role.ID)
	done(c, gin.H{"item": role})
}

// DeleteMany handles DELETE /roles
// @Summary      Delete roles
// @Description  System roles are never deleted; a batch naming one answers system_role.
// @Tags         roles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/roles [delete]
func (h *RoleHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.roleService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted roles %s", joinIDs(ids))
	}
	done(c, nil)
}
