package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"
	"autoservice/pkg/response"

	"github.com/gin-gonic/gin"
)

const ResultDepartmentCreated = "department_created"

type DepartmentHandler struct {
	Deps
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService, deps Deps) *DepartmentHandler {
	return &DepartmentHandler{Deps: deps, departmentService: departmentService}
}

func (h *DepartmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	departments := router.Group("/departments")
	{
		departments.GET("", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionView), h.List)
		departments.GET("/:id", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionView), h.Get)
		departments.POST("", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionAdd), h.Add)
		departments.PUT("/:id", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionEdit), h.Edit)
		departments.DELETE("", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionDelete), h.DeleteMany)
		departments.POST("/:id/users", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionEdit), h.AddUsers)
		departments.DELETE("/:id/users", h.Auth.RequirePermission(model.ResourceDepartments, model.ActionEdit), h.RemoveUsers)
	}
}

// List handles GET /departments
// @Summary      List departments
// @Tags         departments
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        search         query     string  false  "Name or city contains"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Success      200  {object}  response.Body{items=[]model.Department,total=int}
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)
	result, err := h.departmentService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get handles GET /departments/:id
// @Summary      Department details with its users
// @Tags         departments
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  response.Body{item=model.Department}
// @Router       /api/departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	department, err := h.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": department})
}

// Add handles POST /departments
// @Summary      Add department
// @Tags         departments
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.DepartmentRequest  true  "Department"
// @Success      200      {object}  response.Body{item=model.Department} "department_created or no_name"
// @Router       /api/departments [post]
func (h *DepartmentHandler) Add(c *gin.Context) {
	var req service.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	department, err := h.departmentService.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added department %s (id %d)", department.Name, department.ID)
	response.JSON(c, response.With(ResultDepartmentCreated, gin.H{"item": department}))
}

// Edit handles PUT /departments/:id
// @Summary      Edit department
// @Tags         departments
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Department ID"
// @Param        payload  body      service.DepartmentRequest  true  "Department"
// @Success      200      {object}  response.Body{item=model.Department}
// @Router       /api/departments/{id} [put]
func (h *DepartmentHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	department, err := h.departmentService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited department %s (id %d)", department.Name, department.ID)
	done(c, gin.H{"item": department})
}

// DeleteMany handles DELETE /departments
// @Summary      Delete departments
// @Description  Answers department_in_use while orders, stock or demands belong to a department.
// @Tags         departments
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/departments [delete]
func (h *DepartmentHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.departmentService.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted departments %s", joinIDs(ids))
	}
	done(c, nil)
}

// AddUsers handles POST /departments/:id/users
// @Summary      Link users to a department
// @Description  Users that are unknown or already linked are skipped.
// @Tags         departments
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true  "Department ID"
// @Param        payload  body      service.DepartmentUsersRequest  true  "User ids"
// @Success      200      {object}  response.Body
// @Router       /api/departments/{id}/users [post]
func (h *DepartmentHandler) AddUsers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.DepartmentUsersRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.departmentService.AddUsers(c.Request.Context(), id, req.UserIDs); err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added users %s to department %d", joinIDs(req.UserIDs), id)
	done(c, nil)
}

// RemoveUsers handles DELETE /departments/:id/users
// @Summary      Unlink users from a department
// @Tags         departments
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true  "Department ID"
// @Param        payload  body      service.DepartmentUsersRequest  true  "User ids"
// @Success      200      {object}  response.Body
// @Router       /api/departments/{id}/users [delete]
func (h *DepartmentHandler) RemoveUsers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.DepartmentUsersRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.departmentService.RemoveUsers(c.Request.Context(), id, req.UserIDs); err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Removed users %s from department %d", joinIDs(req.UserIDs), id)
	done(c, nil)
}
