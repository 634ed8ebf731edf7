package repository

import (
	"context"
	"testing"
	"time"

	"autoservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, repo UserRepository, appRole, email string) *model.User {
	t.Helper()
	u := &model.User{FirstName: "Test", Email: email, AppRole: appRole, Salt: "s", Password: "p"}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_DeleteManyKeepsOtherAppRole(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db, NewDeletePolicy([]string{EntityUsers}))
	sessions := NewSessionRepository(db)

	client := createUser(t, users, model.AppRoleClient, "client@example.com")
	employee := createUser(t, users, model.AppRoleEmployee, "employee@example.com")
	require.NoError(t, sessions.Upsert(ctx, client.ID, "tok", time.Now().Add(time.Hour)))

	require.NoError(t, users.DeleteMany(ctx, model.AppRoleClient, []uint{client.ID, employee.ID}))

	_, err := users.GetByID(ctx, client.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.GetByID(ctx, employee.ID)
	assert.NoError(t, err, "employees are not deleted through the clients endpoint")

	_, err = sessions.FindByToken(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound, "deleting a user ends their session")

	// soft-deleted accounts still hold their address
	found, err := users.GetByEmail(ctx, "CLIENT@example.com")
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
	assert.NotZero(t, found.IsDeleted)

	taken, err := users.EmailTaken(ctx, "client@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = users.EmailTaken(ctx, "client@example.com", client.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_HardDeleteDetachesAudit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db, NewDeletePolicy(nil))
	logs := NewAuditRepository(db)

	u := createUser(t, users, model.AppRoleEmployee, "gone@example.com")
	require.NoError(t, logs.Log(ctx, &model.Log{UserID: &u.ID, Description: "Logged in"}))

	require.NoError(t, users.DeleteMany(ctx, model.AppRoleEmployee, []uint{u.ID}))

	_, err := users.GetByEmail(ctx, "gone@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	var rows []model.Log
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].UserID)
}

func TestRoleRepository_PermissionCodesForUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	policy := NewDeletePolicy(nil)
	roles := NewRoleRepository(db, policy)
	users := NewUserRepository(db, policy)
	require.NoError(t, roles.SeedPermissions(ctx))
	require.NoError(t, roles.SeedPermissions(ctx), "seeding is idempotent")

	reception := &model.Role{Name: "Reception"}
	mechanic := &model.Role{Name: "Mechanic"}
	require.NoError(t, roles.Create(ctx, reception))
	require.NoError(t, roles.Create(ctx, mechanic))
	require.NoError(t, roles.ReplacePermissions(ctx, reception.ID, []model.PermissionKey{
		{Resource: model.ResourceClients, Action: model.ActionView},
		{Resource: model.ResourceClients, Action: model.ActionView},
	}))
	require.NoError(t, roles.ReplacePermissions(ctx, mechanic.ID, []model.PermissionKey{
		{Resource: model.ResourceOrders, Action: model.ActionEdit},
	}))

	u := createUser(t, users, model.AppRoleEmployee, "worker@example.com")
	require.NoError(t, users.ReplaceRoles(ctx, u.ID, []uint{reception.ID, mechanic.ID}))

	codes, err := roles.PermissionCodesForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clients_view", "orders_edit"}, codes)

	require.NoError(t, roles.DeleteMany(ctx, []uint{mechanic.ID}))
	codes, err = roles.PermissionCodesForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"clients_view"}, codes)
}
