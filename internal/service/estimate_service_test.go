package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateService_Totals(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	price := decimal.RequireFromString("45.50")
	part, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{
		Name:         "Brake pad set",
		Quantity:     10,
		UnitPrice:    &price,
		DepartmentID: o.DepartmentID,
	})
	require.NoError(t, err)

	labourPrice := decimal.RequireFromString("80")
	labour, err := f.catalog.Add(f.ctx, RepairServiceRequest{Name: "Brake service", Price: &labourPrice})
	require.NoError(t, err)

	custom := decimal.RequireFromString("12.333")
	e, err := f.estimates.Add(f.ctx, EstimateRequest{
		OrderID: o.ID,
		Name:    "Front brakes",
		Parts: []EstimateLineRequest{
			{WarehouseItemID: &part.ID, Quantity: 2},
			{Name: "Cleaner", Quantity: 3, UnitPrice: &custom},
		},
		Services: []EstimateLineRequest{
			{ServiceID: &labour.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, e.Parts, 2)
	require.Len(t, e.Services, 1)
	assert.Equal(t, "127.99", e.PartsTotal.StringFixed(2))
	assert.Equal(t, "80.00", e.ServicesTotal.StringFixed(2))
	assert.Equal(t, "207.99", e.Total.StringFixed(2))
	assert.Equal(t, "Brake service", e.Services[0].Name)

	// editing replaces every line
	e, err = f.estimates.Edit(f.ctx, e.ID, EstimateRequest{
		Name:     "Front brakes",
		Services: []EstimateLineRequest{{ServiceID: &labour.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Empty(t, e.Parts)
	assert.Equal(t, "160.00", e.Total.StringFixed(2))
	assert.Equal(t, o.ID, e.OrderID)
}

func TestEstimateService_Validation(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)
	missing := uint(999)
	price := decimal.RequireFromString("10")

	tests := []struct {
		name   string
		req    EstimateRequest
		result string
	}{
		{"no name", EstimateRequest{OrderID: o.ID}, ResultNoName},
		{"unknown part", EstimateRequest{OrderID: o.ID, Name: "x", Parts: []EstimateLineRequest{{WarehouseItemID: &missing, Quantity: 1}}}, ResultBadItem},
		{"zero quantity", EstimateRequest{OrderID: o.ID, Name: "x", Parts: []EstimateLineRequest{{Name: "Bolt", UnitPrice: &price}}}, ResultNoQuantity},
		{"no price", EstimateRequest{OrderID: o.ID, Name: "x", Services: []EstimateLineRequest{{Name: "Wash", Quantity: 1}}}, ResultNoPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.estimates.Add(f.ctx, tt.req)
			requireResult(t, err, tt.result)
		})
	}

	_, err := f.estimates.Add(f.ctx, EstimateRequest{OrderID: 999, Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
