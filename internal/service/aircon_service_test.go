package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirconService(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)
	missing := uint(999)

	_, err := f.aircon.Add(f.ctx, AirconRequest{Refrigerant: "r1234yf"})
	requireResult(t, err, ResultNoVehicle)

	_, err = f.aircon.Add(f.ctx, AirconRequest{VehicleID: o.VehicleID, DepartmentID: &missing})
	requireResult(t, err, ResultNoDepartment)

	_, err = f.aircon.Add(f.ctx, AirconRequest{VehicleID: o.VehicleID, AmountGrams: -5})
	requireResult(t, err, ResultNoQuantity)

	r, err := f.aircon.Add(f.ctx, AirconRequest{
		VehicleID:    o.VehicleID,
		DepartmentID: &o.DepartmentID,
		Refrigerant:  " r1234yf ",
		AmountGrams:  450,
		OilMl:        20,
	})
	require.NoError(t, err)
	assert.Equal(t, "R1234YF", r.Refrigerant)
	assert.False(t, r.PerformedAt.IsZero())

	page, err := f.aircon.List(f.ctx, ListFilter{}, pageAll)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	require.NoError(t, f.aircon.DeleteMany(f.ctx, []uint{r.ID}))
	_, err = f.aircon.Get(f.ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
