package service

import (
	"time"

	"autoservice/internal/model"
	"autoservice/internal/websocket"
	"autoservice/pkg/pagination"
)

// pageAll is used where a bounded "everything" lookup is needed internally.
var pageAll = pagination.New(1, pagination.MaxLimit)

// ListFilter holds the optional list predicates shared by every resource. They are AND-ed;
// zero values are ignored.
type ListFilter struct {
	From          *time.Time
	To            *time.Time
	Statuses      []int
	DepartmentIDs []uint
	UserIDs       []uint
	OrderID       uint
	Search        string
}

// Page is one page of a list together with the unpaged total.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// EventPublisher pushes realtime notifications to the connected clients in the audience.
type EventPublisher interface {
	Publish(event string, data any, to websocket.Audience)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any, websocket.Audience) {}

// stockAudience reaches everyone allowed to view the warehouse.
var stockAudience = websocket.Audience{Resource: model.ResourceWarehouse, Action: model.ActionView}

// ticketAudience reaches the ticket owner and the ticket managers.
func ticketAudience(ownerID uint) websocket.Audience {
	return websocket.Audience{UserID: ownerID, Resource: model.ResourceTickets, Action: model.ActionManage}
}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// PermissionPurger drops cached permission sets after a role or role-assignment change.
type PermissionPurger interface {
	InvalidatePermissions()
}
