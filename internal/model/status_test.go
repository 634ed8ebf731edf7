package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMachine(t *testing.T) {
	assert.True(t, OrderStatuses.Valid(OrderStatusInProgress))
	assert.False(t, OrderStatuses.Valid(42))
	assert.Equal(t, "waiting_for_parts", OrderStatuses.Name(OrderStatusWaitingForParts))
	assert.Equal(t, "", OrderStatuses.Name(-1))

	assert.True(t, OrderStatuses.CanChange(OrderStatusNew, OrderStatusDone))
	assert.False(t, OrderStatuses.CanChange(OrderStatusReleased, OrderStatusInProgress), "released is final")
	assert.False(t, OrderStatuses.CanChange(OrderStatusNew, 42))

	assert.True(t, RequestStatuses.IsTerminal(RequestStatusAccepted))
	assert.True(t, RequestStatuses.IsTerminal(RequestStatusRejected))
	assert.False(t, RequestStatuses.IsTerminal(RequestStatusPending))

	assert.True(t, DemandItemStatuses.IsTerminal(DemandItemDelivered))
	assert.False(t, TicketStatuses.IsTerminal(TicketStatusClosed), "closed tickets can be reopened")
}
