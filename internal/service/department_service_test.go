package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentService_DeleteInUse(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	item, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{Name: "Oil filter", Quantity: 1, DepartmentID: dept.ID})
	require.NoError(t, err)

	err = f.depts.DeleteMany(f.ctx, []uint{dept.ID})
	requireResult(t, err, ResultDepartmentInUse)
	_, err = f.depts.Get(f.ctx, dept.ID)
	require.NoError(t, err)

	require.NoError(t, f.warehouse.DeleteMany(f.ctx, []uint{item.ID}))
	require.NoError(t, f.depts.DeleteMany(f.ctx, []uint{dept.ID}))
	_, err = f.depts.Get(f.ctx, dept.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDepartmentService_DeleteWithOrderIsRejected(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	err := f.depts.DeleteMany(f.ctx, []uint{o.DepartmentID})
	requireResult(t, err, ResultDepartmentInUse)

	got, err := f.orders.Get(f.ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.DepartmentID, got.DepartmentID)
}

func TestDepartmentService_DeleteDetachesAirconRecords(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	client, err := f.clients.Add(f.ctx, PersonRequest{FirstName: "Jan", Email: "jan@example.com"})
	require.NoError(t, err)
	vehicle, err := f.vehicles.Add(f.ctx, VehicleRequest{UserID: client.ID, Brand: "Skoda", Registration: "gd 12345"})
	require.NoError(t, err)
	record, err := f.aircon.Add(f.ctx, AirconRequest{VehicleID: vehicle.ID, DepartmentID: &dept.ID, AmountGrams: 400})
	require.NoError(t, err)

	require.NoError(t, f.depts.DeleteMany(f.ctx, []uint{dept.ID}))

	kept, err := f.aircon.Get(f.ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DepartmentID)
}
