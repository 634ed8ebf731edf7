package model

import (
	"fmt"
	"strings"
	"time"
)

// Role groups permissions; users hold any number of roles.
type Role struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	IsSystem    bool         `gorm:"default:false" json:"isSystem"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// PermissionCodes returns the "<resource>_<action>" codes of the role.
func (r Role) PermissionCodes() []string {
	codes := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		codes = append(codes, p.Code())
	}
	return codes
}

// Permission is a single (resource, action) grant.
type Permission struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Resource string `gorm:"type:varchar(50);not null;uniqueIndex:idx_permission_pair" json:"resource"`
	Action   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_permission_pair" json:"action"`
}

func (p Permission) Code() string {
	return PermissionKey{Resource: p.Resource, Action: p.Action}.Code()
}

// Resources guarded by permissions
const (
	ResourceClients     = "clients"
	ResourceEmployees   = "employees"
	ResourceVehicles    = "vehicles"
	ResourceOrders      = "orders"
	ResourceEstimates   = "estimates"
	ResourceCheckLists  = "checklists"
	ResourceComplaints  = "complaints"
	ResourceWarehouse   = "warehouse"
	ResourceDemands     = "demands"
	ResourceDepartments = "departments"
	ResourceRoles       = "roles"
	ResourceServices    = "services"
	ResourceTickets     = "tickets"
	ResourceRequests    = "requests"
	ResourceLogs        = "logs"
	ResourceAircon      = "aircon"
)

// Actions
const (
	ActionView   = "view"
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionDecide = "decide"
	ActionManage = "manage"
	ActionStatus = "status"
)

// PermissionKey is the typed form of a "<resource>_<action>" code.
type PermissionKey struct {
	Resource string
	Action   string
}

func (k PermissionKey) Code() string {
	return k.Resource + "_" + k.Action
}

var crudResources = []string{
	ResourceClients, ResourceEmployees, ResourceVehicles, ResourceOrders, ResourceEstimates,
	ResourceCheckLists, ResourceComplaints, ResourceWarehouse, ResourceDemands, ResourceDepartments,
	ResourceRoles, ResourceServices, ResourceTickets, ResourceRequests, ResourceLogs, ResourceAircon,
}

var extraPermissions = []PermissionKey{
	{Resource: ResourceRequests, Action: ActionDecide},
	{Resource: ResourceTickets, Action: ActionManage},
	{Resource: ResourceOrders, Action: ActionStatus},
}

var catalogue = buildCatalogue()

func buildCatalogue() map[PermissionKey]struct{} {
	set := make(map[PermissionKey]struct{})
	for _, r := range crudResources {
		for _, a := range []string{ActionView, ActionAdd, ActionEdit, ActionDelete} {
			set[PermissionKey{Resource: r, Action: a}] = struct{}{}
		}
	}
	for _, k := range extraPermissions {
		set[k] = struct{}{}
	}
	return set
}

// Catalogue lists every permission the service understands, ordered by code.
func Catalogue() []PermissionKey {
	keys := make([]PermissionKey, 0, len(catalogue))
	for _, r := range crudResources {
		for _, a := range []string{ActionView, ActionAdd, ActionEdit, ActionDelete} {
			keys = append(keys, PermissionKey{Resource: r, Action: a})
		}
	}
	return append(keys, extraPermissions...)
}

// ParsePermissionCode validates a "<resource>_<action>" code against the catalogue.
func ParsePermissionCode(code string) (PermissionKey, error) {
	resource, action, ok := strings.Cut(strings.TrimSpace(code), "_")
	if !ok || resource == "" || action == "" {
		return PermissionKey{}, fmt.Errorf("malformed permission %q", code)
	}
	key := PermissionKey{Resource: resource, Action: action}
	if _, known := catalogue[key]; !known {
		return PermissionKey{}, fmt.Errorf("unknown permission %q", code)
	}
	return key, nil
}
