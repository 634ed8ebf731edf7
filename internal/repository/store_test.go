package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"autoservice/internal/model"
	"autoservice/pkg/pagination"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedServices(t *testing.T, store *Store[model.RepairService], names ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		rs := model.RepairService{Name: name, Price: decimal.NewFromInt(100)}
		require.NoError(t, store.Create(context.Background(), &rs))
		ids = append(ids, rs.ID)
	}
	return ids
}

func TestStore_ListPagination(t *testing.T) {
	ctx := context.Background()
	store := NewStore[model.RepairService](newTestDB(t), EntityServices, NewDeletePolicy(nil))

	names := make([]string, 23)
	for i := range names {
		names[i] = fmt.Sprintf("Service %02d", i)
	}
	seedServices(t, store, names...)

	all, total, err := store.List(ctx, pagination.New(1, 100), nil)
	require.NoError(t, err)
	require.EqualValues(t, 23, total)
	require.Len(t, all, 23)

	const size = 5
	for p := 2; p <= 5; p++ {
		page, total, err := store.List(ctx, pagination.New(p, size), nil)
		require.NoError(t, err)
		assert.EqualValues(t, 23, total)
		assert.LessOrEqual(t, len(page), size)

		prev, _, err := store.List(ctx, pagination.New(p-1, size), nil)
		require.NoError(t, err)
		// item k of page p is item k+size counted from the start of page p-1
		window := all[(p-2)*size:]
		for k := range page {
			assert.Equal(t, window[k+size].ID, page[k].ID)
		}
		assert.Equal(t, window[0].ID, prev[0].ID)
	}

	last, _, err := store.List(ctx, pagination.New(5, size), nil)
	require.NoError(t, err)
	assert.Len(t, last, 3)
}

func TestStore_GetNotFound(t *testing.T) {
	store := NewStore[model.RepairService](newTestDB(t), EntityServices, NewDeletePolicy(nil))
	_, err := store.Get(context.Background(), 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_DeleteManyPolicy(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	soft := NewStore[model.RepairService](db, EntityServices, NewDeletePolicy([]string{EntityServices}))
	ids := seedServices(t, soft, "Alignment", "Tyre change")

	require.NoError(t, soft.DeleteMany(ctx, []uint{ids[0], 12345}))
	_, err := soft.Get(ctx, ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
	kept, err := soft.Exists(ctx, true, Eq("id", ids[0]))
	require.NoError(t, err)
	assert.True(t, kept, "soft delete keeps the row")
	assert.False(t, soft.HardDeletes())

	hard := NewStore[model.RepairService](db, EntityServices, NewDeletePolicy(nil))
	require.NoError(t, hard.DeleteMany(ctx, []uint{ids[1]}))
	kept, err = hard.Exists(ctx, true, Eq("id", ids[1]))
	require.NoError(t, err)
	assert.False(t, kept, "hard delete removes the row")
	assert.True(t, hard.HardDeletes())

	require.NoError(t, hard.DeleteMany(ctx, nil))
}

func TestStore_Increment(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	departments := NewStore[model.Department](db, EntityDepartments, NewDeletePolicy(nil))
	d := model.Department{Name: "North"}
	require.NoError(t, departments.Create(ctx, &d))

	items := NewStore[model.WarehouseItem](db, EntityWarehouse, NewDeletePolicy(nil))
	item := model.WarehouseItem{Name: "Brake pads", Quantity: 3, DepartmentID: d.ID}
	require.NoError(t, items.Create(ctx, &item))

	ok, err := items.Increment(ctx, item.ID, "quantity", -2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = items.Increment(ctx, item.ID, "quantity", -2)
	require.NoError(t, err)
	assert.False(t, ok, "stock may not drop below zero")

	got, err := items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
}

func TestStore_UpdateWhere(t *testing.T) {
	ctx := context.Background()
	store := NewStore[model.RepairService](newTestDB(t), EntityServices, NewDeletePolicy(nil))
	id := seedServices(t, store, "Alignment")[0]

	changed, err := store.UpdateWhere(ctx, id, []Scope{Eq("name", "Alignment")}, map[string]any{"name": "Balancing"})
	require.NoError(t, err)
	assert.True(t, changed)

	// the second writer lost the race: the row no longer matches
	changed, err = store.UpdateWhere(ctx, id, []Scope{Eq("name", "Alignment")}, map[string]any{"name": "Geometry"})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = store.UpdateWhere(ctx, 999, nil, map[string]any{"name": "Ghost"})
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Balancing", got.Name)
}

func TestContains_EscapesWildcards(t *testing.T) {
	ctx := context.Background()
	store := NewStore[model.RepairService](newTestDB(t), EntityServices, NewDeletePolicy(nil))
	seedServices(t, store, "Winter check 50% off", "Winter check 500 off", "AC_refill", "AC refill")

	found, total, err := store.List(ctx, pagination.New(1, 10), []Scope{Contains("50%", "name")})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Winter check 50% off", found[0].Name)

	found, _, err = store.List(ctx, pagination.New(1, 10), []Scope{Contains("ac_", "name")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "AC_refill", found[0].Name)

	_, total, err = store.List(ctx, pagination.New(1, 10), []Scope{Contains("  ", "name")})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total, "blank search is no filter")
}

func TestTransactionManager_Rollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tx := NewTransactionManager(db)
	store := NewStore[model.RepairService](db, EntityServices, NewDeletePolicy(nil))

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		rs := model.RepairService{Name: "Diagnostics", Price: decimal.NewFromInt(50)}
		if err := store.Create(txCtx, &rs); err != nil {
			return err
		}
		// nested calls join the running transaction
		return tx.RunInTx(txCtx, func(context.Context) error { return boom })
	})
	require.ErrorIs(t, err, boom)

	_, total, err := store.List(ctx, pagination.New(1, 10), nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}
