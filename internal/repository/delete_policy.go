package repository

import (
	"strings"

	"gorm.io/gorm"
)

// Entity names used by the delete policy; they match table names.
const (
	EntityUsers       = "users"
	EntityVehicles    = "vehicles"
	EntityDepartments = "departments"
	EntityRoles       = "roles"
	EntityServices    = "services"
	EntityWarehouse   = "warehouse_items"
	EntityOrders      = "orders"
	EntityEstimates   = "estimates"
	EntityCheckLists  = "check_lists"
	EntityDemands     = "demands"
	EntityRequests    = "absence_requests"
	EntityTickets     = "tickets"
	EntityAircon      = "air_conditioning_records"
	EntityLogs        = "logs"
)

// DeletePolicy decides per entity whether Delete flags rows (soft) or removes them (hard).
type DeletePolicy map[string]bool

// NewDeletePolicy marks the listed entities as soft-deleted; every other entity is hard-deleted.
func NewDeletePolicy(soft []string) DeletePolicy {
	p := make(DeletePolicy, len(soft))
	for _, e := range soft {
		if e = strings.TrimSpace(e); e != "" {
			p[e] = true
		}
	}
	return p
}

func (p DeletePolicy) Soft(entity string) bool {
	return p[entity]
}

// Apply returns db as-is for soft-deleted entities and unscoped otherwise.
func (p DeletePolicy) Apply(entity string, db *gorm.DB) *gorm.DB {
	if p.Soft(entity) {
		return db
	}
	return db.Unscoped()
}
