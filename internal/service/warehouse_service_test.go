package service

import (
	"testing"

	"autoservice/internal/model"
	"autoservice/internal/websocket"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarehouseService_AdjustQuantity(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	price := decimal.RequireFromString("19.999")

	item, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{
		Name:         "Oil filter",
		EAN:          "5901234123457",
		Quantity:     3,
		UnitPrice:    &price,
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", item.UnitPrice.StringFixed(2))

	item, err = f.warehouse.AdjustQuantity(f.ctx, item.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	_, err = f.warehouse.AdjustQuantity(f.ctx, item.ID, -2)
	requireResult(t, err, ResultInsufficientQuantity)

	stored, err := f.warehouse.Get(f.ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)

	_, err = f.warehouse.AdjustQuantity(f.ctx, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{EventStockChanged, EventStockChanged}, f.events.events)
	assert.Equal(t, []websocket.Audience{stockAudience, stockAudience}, f.events.audiences)
	assert.Equal(t, model.ResourceWarehouse, stockAudience.Resource)
	assert.Zero(t, stockAudience.UserID)
}

func TestWarehouseService_Validation(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)

	_, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{DepartmentID: dept.ID})
	requireResult(t, err, ResultNoName)

	_, err = f.warehouse.Add(f.ctx, WarehouseItemRequest{Name: "Oil filter", DepartmentID: 999})
	requireResult(t, err, ResultNoDepartment)

	_, err = f.warehouse.Add(f.ctx, WarehouseItemRequest{Name: "Oil filter", DepartmentID: dept.ID, Quantity: -1})
	requireResult(t, err, ResultNoQuantity)

	req := WarehouseItemRequest{Name: "Oil filter", EAN: "5901234123457", DepartmentID: dept.ID}
	_, err = f.warehouse.Add(f.ctx, req)
	require.NoError(t, err)
	_, err = f.warehouse.Add(f.ctx, req)
	assert.ErrorIs(t, err, ErrExists)
}
