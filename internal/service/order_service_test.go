package service

import (
	"testing"

	"autoservice/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_AddWithLines(t *testing.T) {
	f := newFixture(t)
	client, err := f.clients.Add(f.ctx, PersonRequest{FirstName: "Jan", Email: "jan@example.com"})
	require.NoError(t, err)
	vehicle, err := f.vehicles.Add(f.ctx, VehicleRequest{UserID: client.ID, Registration: "GD 1"})
	require.NoError(t, err)
	dept := f.department(t)
	price := decimal.RequireFromString("100")

	o, err := f.orders.Add(f.ctx, OrderRequest{
		ClientID:     client.ID,
		VehicleID:    vehicle.ID,
		DepartmentID: dept.ID,
		Estimates: []EstimateRequest{{
			Name:     "Service",
			Services: []EstimateLineRequest{{Name: "Inspection", Quantity: 1, UnitPrice: &price}},
		}},
		CheckLists: []CheckListRequest{{Name: "Lights"}, {Name: "Tyres", IsChecked: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusNew, o.Status)
	require.Len(t, o.Estimates, 1)
	assert.Equal(t, "100.00", o.Estimates[0].Total.StringFixed(2))
	assert.Len(t, o.CheckLists, 2)
	assert.False(t, o.StartDate.IsZero())
}

func TestOrderService_Validation(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	other, err := f.clients.Add(f.ctx, PersonRequest{FirstName: "Ewa", Email: "ewa@example.com"})
	require.NoError(t, err)
	employee := f.employee(t, "anna@example.com")

	tests := []struct {
		name   string
		req    OrderRequest
		result string
	}{
		{"no client", OrderRequest{VehicleID: o.VehicleID, DepartmentID: o.DepartmentID}, ResultNoClient},
		{"employee as client", OrderRequest{ClientID: employee.ID, VehicleID: o.VehicleID, DepartmentID: o.DepartmentID}, ResultNoClient},
		{"no vehicle", OrderRequest{ClientID: o.ClientID, DepartmentID: o.DepartmentID}, ResultNoVehicle},
		{"foreign vehicle", OrderRequest{ClientID: other.ID, VehicleID: o.VehicleID, DepartmentID: o.DepartmentID}, ResultBadVehicle},
		{"no department", OrderRequest{ClientID: o.ClientID, VehicleID: o.VehicleID}, ResultNoDepartment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.Add(f.ctx, tt.req)
			requireResult(t, err, tt.result)
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	_, err := f.orders.ChangeStatus(f.ctx, o.ID, 42)
	requireResult(t, err, ResultBadStatus)

	o, err = f.orders.ChangeStatus(f.ctx, o.ID, model.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInProgress, o.Status)
	assert.Nil(t, o.EndDate)

	o, err = f.orders.ChangeStatus(f.ctx, o.ID, model.OrderStatusReleased)
	require.NoError(t, err)
	assert.NotNil(t, o.EndDate)

	_, err = f.orders.ChangeStatus(f.ctx, o.ID, model.OrderStatusInProgress)
	requireResult(t, err, ResultBadStatus)

	_, err = f.orders.ChangeStatus(f.ctx, 999, model.OrderStatusDone)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderService_DeleteRemovesChildren(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	check, err := f.checks.Add(f.ctx, CheckListRequest{OrderID: o.ID, Name: "Brakes"})
	require.NoError(t, err)
	complaint, err := f.complaint.Add(f.ctx, ComplaintRequest{OrderID: o.ID, Description: "Squeaks"})
	require.NoError(t, err)

	require.NoError(t, f.orders.DeleteMany(f.ctx, []uint{o.ID, 999}))

	_, err = f.orders.Get(f.ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.checks.Get(f.ctx, check.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.complaint.Get(f.ctx, complaint.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplaintService_OnePerOrder(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	_, err := f.complaint.Add(f.ctx, ComplaintRequest{OrderID: o.ID})
	requireResult(t, err, ResultNoDescription)

	c, err := f.complaint.Add(f.ctx, ComplaintRequest{OrderID: o.ID, Description: "Noise after repair"})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintStatusOpen, c.Status)

	_, err = f.complaint.Add(f.ctx, ComplaintRequest{OrderID: o.ID, Description: "Again"})
	assert.ErrorIs(t, err, ErrExists)

	c, err = f.complaint.ChangeStatus(f.ctx, c.ID, model.ComplaintStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintStatusAccepted, c.Status)

	_, err = f.complaint.ChangeStatus(f.ctx, c.ID, model.ComplaintStatusInReview)
	requireResult(t, err, ResultBadStatus)
}

func TestCheckListService(t *testing.T) {
	f := newFixture(t)
	o := f.order(t)

	_, err := f.checks.Add(f.ctx, CheckListRequest{OrderID: o.ID})
	requireResult(t, err, ResultNoName)

	_, err = f.checks.Add(f.ctx, CheckListRequest{OrderID: 999, Name: "Oil level"})
	assert.ErrorIs(t, err, ErrNotFound)

	c, err := f.checks.Add(f.ctx, CheckListRequest{OrderID: o.ID, Name: "Oil level"})
	require.NoError(t, err)
	assert.False(t, c.IsChecked)

	c, err = f.checks.Edit(f.ctx, c.ID, CheckListRequest{Name: "Oil level", IsChecked: true, Comment: "topped up"})
	require.NoError(t, err)
	assert.True(t, c.IsChecked)
	assert.Equal(t, o.ID, c.OrderID)

	page, err := f.checks.List(f.ctx, ListFilter{OrderID: o.ID}, pageAll)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}
