package service

import (
	"sync"
	"testing"

	"autoservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandService_Add(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	missing := uint(999)

	tests := []struct {
		name   string
		req    DemandRequest
		result string
	}{
		{"no department", DemandRequest{Items: []DemandItemRequest{{Name: "Bolt", Quantity: 1}}}, ResultNoDepartment},
		{"no items", DemandRequest{DepartmentID: dept.ID}, ResultNoItems},
		{"unknown stock item", DemandRequest{DepartmentID: dept.ID, Items: []DemandItemRequest{{WarehouseItemID: &missing, Quantity: 1}}}, ResultBadItem},
		{"no quantity", DemandRequest{DepartmentID: dept.ID, Items: []DemandItemRequest{{Name: "Bolt"}}}, ResultNoQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.demands.Add(f.ctx, 1, tt.req)
			requireResult(t, err, tt.result)
		})
	}
}

func TestDemandService_DeliveringItemBooksStock(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	stock, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{Name: "Wiper blade", EAN: "123", Quantity: 1, DepartmentID: dept.ID})
	require.NoError(t, err)
	requester := f.employee(t, "anna@example.com")

	d, err := f.demands.Add(f.ctx, requester.ID, DemandRequest{
		DepartmentID: dept.ID,
		Title:        "Wipers",
		Items: []DemandItemRequest{
			{WarehouseItemID: &stock.ID, Quantity: 4},
			{Name: "Washer fluid", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, requester.ID, d.CreatedBy)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "Wiper blade", d.Items[0].Name)
	assert.Equal(t, "123", d.Items[0].EAN)

	item, err := f.demands.ChangeItemStatus(f.ctx, d.Items[0].ID, model.DemandItemDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.DemandItemDelivered, item.Status)

	updated, err := f.warehouse.Get(f.ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = f.demands.ChangeItemStatus(f.ctx, d.Items[0].ID, model.DemandItemOrdered)
	requireResult(t, err, ResultBadStatus)

	_, err = f.demands.ChangeItemStatus(f.ctx, d.Items[1].ID, model.DemandItemDelivered)
	require.NoError(t, err)
}

func TestDemandService_ConcurrentDeliveryBooksStockOnce(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	stock, err := f.warehouse.Add(f.ctx, WarehouseItemRequest{Name: "Spark plug", Quantity: 0, DepartmentID: dept.ID})
	require.NoError(t, err)
	d, err := f.demands.Add(f.ctx, 1, DemandRequest{
		DepartmentID: dept.ID,
		Items:        []DemandItemRequest{{WarehouseItemID: &stock.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	const workers = 5
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.demands.ChangeItemStatus(f.ctx, d.Items[0].ID, model.DemandItemDelivered)
		}(i)
	}
	wg.Wait()

	delivered := 0
	for _, err := range errs {
		if err == nil {
			delivered++
			continue
		}
		requireResult(t, err, ResultBadStatus)
	}
	assert.Equal(t, 1, delivered)

	updated, err := f.warehouse.Get(f.ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
}

func TestDemandService_FinalDemandIsLocked(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)
	req := DemandRequest{DepartmentID: dept.ID, Items: []DemandItemRequest{{Name: "Bolt", Quantity: 10}}}

	d, err := f.demands.Add(f.ctx, 1, req)
	require.NoError(t, err)

	d, err = f.demands.ChangeStatus(f.ctx, d.ID, model.DemandStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, model.DemandStatusRejected, d.Status)

	_, err = f.demands.ChangeStatus(f.ctx, d.ID, model.DemandStatusApproved)
	requireResult(t, err, ResultBadStatus)
	_, err = f.demands.Edit(f.ctx, d.ID, req)
	requireResult(t, err, ResultBadStatus)
}

func TestDemandService_EditReplacesItems(t *testing.T) {
	f := newFixture(t)
	dept := f.department(t)

	d, err := f.demands.Add(f.ctx, 1, DemandRequest{DepartmentID: dept.ID, Items: []DemandItemRequest{{Name: "Bolt", Quantity: 10}}})
	require.NoError(t, err)

	d, err = f.demands.Edit(f.ctx, d.ID, DemandRequest{
		DepartmentID: dept.ID,
		Title:        "Fasteners",
		Items:        []DemandItemRequest{{Name: "Nut", Quantity: 5}, {Name: "Washer", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Fasteners", d.Title)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "Nut", d.Items[0].Name)
}
