package handler

import (
	"autoservice/internal/model"
	"autoservice/internal/service"
	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// PersonHandler serves clients and employees. Both are users and differ only by app role,
// the permission resource that guards them and the audit wording.
type PersonHandler struct {
	Deps
	resource string
	noun     string
	service  service.PersonService
}

func NewClientHandler(clientService service.PersonService, deps Deps) *PersonHandler {
	return &PersonHandler{Deps: deps, resource: model.ResourceClients, noun: "client", service: clientService}
}

func (h *PersonHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/" + h.resource)
	{
		group.GET("", h.Auth.RequirePermission(h.resource, model.ActionView), h.List)
		group.GET("/:id", h.Auth.RequirePermission(h.resource, model.ActionView), h.Get)
		group.POST("", h.Auth.RequirePermission(h.resource, model.ActionAdd), h.Add)
		group.PUT("/:id", h.Auth.RequirePermission(h.resource, model.ActionEdit), h.Edit)
		group.DELETE("", h.Auth.RequirePermission(h.resource, model.ActionDelete), h.DeleteMany)
	}
}

// List returns a page of people
// @Summary      List clients or employees
// @Description  Filters: search (name, e-mail, phone, company), departmentIds. Ordered by id.
// @Tags         clients, employees
// @Security     SessionCookie
// @Produce      json
// @Param        currentPage    query     int     false  "Page (1-based)"
// @Param        pageSize       query     int     false  "Page size (max 100)"
// @Param        search         query     string  false  "Contains"
// @Param        departmentIds  query     string  false  "Comma separated"
// @Success      200  {object}  response.Body{items=[]model.User,total=int}
// @Router       /api/clients [get]
// @Router       /api/employees [get]
func (h *PersonHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	page := pagination.Parse(c)

	result, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	listed(c, result, page)
}

// Get returns one person
// @Summary      Client or employee details
// @Description  Clients come with their vehicles, employees with roles and departments.
// @Tags         clients, employees
// @Security     SessionCookie
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Body{item=model.User}
// @Router       /api/clients/{id} [get]
// @Router       /api/employees/{id} [get]
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	done(c, gin.H{"item": user})
}

// Add creates a person
// @Summary      Add client or employee
// @Description  Without a password a random one is generated and the user must change it at first login.
// @Tags         clients, employees
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PersonRequest  true  "Person"
// @Success      200      {object}  response.Body{item=model.User} "done, no_name, no_email or exists"
// @Router       /api/clients [post]
// @Router       /api/employees [post]
func (h *PersonHandler) Add(c *gin.Context) {
	var req service.PersonRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Added %s %s (id %d)", h.noun, user.FullName(), user.ID)
	done(c, gin.H{"item": user})
}

// Edit updates a person
// @Summary      Edit client or employee
// @Description  An empty password keeps the current one.
// @Tags         clients, employees
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "User ID"
// @Param        payload  body      service.PersonRequest  true  "Person"
// @Success      200      {object}  response.Body{item=model.User}
// @Router       /api/clients/{id} [put]
// @Router       /api/employees/{id} [put]
func (h *PersonHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.PersonRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Edited %s %s (id %d)", h.noun, user.FullName(), user.ID)
	done(c, gin.H{"item": user})
}

// DeleteMany removes people
// @Summary      Delete clients or employees
// @Description  Unknown ids are ignored.
// @Tags         clients, employees
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        payload  body      IDsRequest  true  "Ids"
// @Success      200      {object}  response.Body
// @Router       /api/clients [delete]
// @Router       /api/employees [delete]
func (h *PersonHandler) DeleteMany(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMany(c.Request.Context(), ids); err != nil {
		h.fail(c, err)
		return
	}
	if len(ids) > 0 {
		h.record(c, "Deleted %ss %s", h.noun, joinIDs(ids))
	}
	done(c, nil)
}

// EmployeeHandler adds role assignment to the shared person endpoints.
type EmployeeHandler struct {
	*PersonHandler
	employees service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService, deps Deps) *EmployeeHandler {
	return &EmployeeHandler{
		PersonHandler: &PersonHandler{Deps: deps, resource: model.ResourceEmployees, noun: "employee", service: employeeService},
		employees:     employeeService,
	}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	h.PersonHandler.RegisterRoutes(router)
	router.PUT("/employees/:id/roles", h.Auth.RequirePermission(model.ResourceEmployees, model.ActionEdit), h.SetRoles)
}

// SetRoles replaces the roles of an employee
// @Summary      Set employee roles
// @Tags         employees
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "Employee ID"
// @Param        payload  body      service.SetRolesRequest  true  "Role ids"
// @Success      200      {object}  response.Body
// @Router       /api/employees/{id}/roles [put]
func (h *EmployeeHandler) SetRoles(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.SetRolesRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.employees.SetRoles(c.Request.Context(), id, req.RoleIDs); err != nil {
		h.fail(c, err)
		return
	}
	h.record(c, "Set roles of employee %d to [%s]", id, joinIDs(req.RoleIDs))
	done(c, nil)
}
