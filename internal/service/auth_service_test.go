package service

import (
	"testing"
	"time"

	"autoservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	f.employee(t, "anna@example.com")

	tests := []struct {
		name   string
		req    LoginRequest
		result string
	}{
		{"missing email", LoginRequest{Password: "secret-password"}, ResultNoLoginData},
		{"missing password", LoginRequest{Email: "anna@example.com"}, ResultNoLoginData},
		{"unknown email", LoginRequest{Email: "nobody@example.com", Password: "secret-password"}, ResultBadLogin},
		{"wrong password", LoginRequest{Email: "anna@example.com", Password: "wrong-password"}, ResultBadLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Login(f.ctx, tt.req)
			requireResult(t, err, tt.result)
		})
	}

	res, err := f.auth.Login(f.ctx, LoginRequest{Email: " anna@example.com ", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.IsFirstLogin)
	assert.False(t, res.IsDeleted)
	assert.Equal(t, model.AppRoleEmployee, res.AppRole)
}

func TestAuthService_LoginRejectsDeletedUser(t *testing.T) {
	f := newFixture(t)
	u := f.employee(t, "anna@example.com")
	require.NoError(t, f.employees.DeleteMany(f.ctx, []uint{u.ID}))

	_, err := f.auth.Login(f.ctx, LoginRequest{Email: "anna@example.com", Password: "secret-password"})
	requireResult(t, err, ResultBadLogin)
}

func TestAuthService_SessionSlidesAndExpires(t *testing.T) {
	f := newFixture(t)
	f.employee(t, "anna@example.com")

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	f.auth.now = func() time.Time { return start }
	res, err := f.auth.Login(f.ctx, LoginRequest{Email: "anna@example.com", Password: "secret-password"})
	require.NoError(t, err)

	// a request half way through the hour pushes expiry to 09:30
	f.auth.now = func() time.Time { return start.Add(30 * time.Minute) }
	_, err = f.auth.ValidateSession(f.ctx, res.Token)
	require.NoError(t, err)

	f.auth.now = func() time.Time { return start.Add(80 * time.Minute) }
	session, err := f.auth.ValidateSession(f.ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, session.Expire.Equal(start.Add(140*time.Minute)))

	f.auth.now = func() time.Time { return start.Add(5 * time.Hour) }
	_, err = f.auth.ValidateSession(f.ctx, res.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = f.auth.ValidateSession(f.ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = f.auth.ValidateSession(f.ctx, "unknown")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_LogoutEndsSession(t *testing.T) {
	f := newFixture(t)
	f.employee(t, "anna@example.com")

	res, err := f.auth.Login(f.ctx, LoginRequest{Email: "anna@example.com", Password: "secret-password"})
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(f.ctx, res.Token))

	_, err = f.auth.ValidateSession(f.ctx, res.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoError(t, f.auth.Logout(f.ctx, ""))
}

func TestAuthService_RolePermissionsRoundTrip(t *testing.T) {
	f := newFixture(t)

	role, err := f.roles.Add(f.ctx, RoleRequest{Name: "Reception", Permissions: []string{"clients_view", "clients_edit"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clients_view", "clients_edit"}, role.Permissions)

	u := f.employee(t, "anna@example.com", role.ID)

	ok, err := f.auth.IsAuthorized(f.ctx, u.ID, model.ResourceClients, model.ActionView)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.auth.IsAuthorized(f.ctx, u.ID, model.ResourceClients, model.ActionDelete)
	require.NoError(t, err)
	assert.False(t, ok)

	// editing the role is visible immediately even though the codes were cached
	_, err = f.roles.Edit(f.ctx, role.ID, RoleRequest{Name: "Reception", Permissions: []string{"clients_view"}})
	require.NoError(t, err)
	ok, err = f.auth.IsAuthorized(f.ctx, u.ID, model.ResourceClients, model.ActionEdit)
	require.NoError(t, err)
	assert.False(t, ok)

	me, err := f.auth.Me(f.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"clients_view"}, me.Permissions)
}

func TestRoleService_RejectsUnknownPermission(t *testing.T) {
	f := newFixture(t)

	_, err := f.roles.Add(f.ctx, RoleRequest{Name: "Broken", Permissions: []string{"clients_fly"}})
	requireResult(t, err, ResultInvalidPermission)

	_, err = f.roles.Add(f.ctx, RoleRequest{Permissions: []string{"clients_view"}})
	requireResult(t, err, ResultNoName)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	u := f.employee(t, "anna@example.com")

	err := f.auth.ChangePassword(f.ctx, u.ID, ChangePasswordRequest{OldPassword: "nope", NewPassword: "another-password"})
	requireResult(t, err, ResultBadPassword)

	err = f.auth.ChangePassword(f.ctx, u.ID, ChangePasswordRequest{OldPassword: "secret-password", NewPassword: "short"})
	requireResult(t, err, ResultWeakPassword)

	require.NoError(t, f.auth.ChangePassword(f.ctx, u.ID, ChangePasswordRequest{OldPassword: "secret-password", NewPassword: "another-password"}))

	res, err := f.auth.Login(f.ctx, LoginRequest{Email: "anna@example.com", Password: "another-password"})
	require.NoError(t, err)
	assert.False(t, res.IsFirstLogin)
}

func TestAuthService_SeedAdminIsIdempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.auth.SeedAdmin(f.ctx, "admin@example.com", "admin-password"))
	require.NoError(t, f.auth.SeedAdmin(f.ctx, "admin@example.com", "admin-password"))

	res, err := f.auth.Login(f.ctx, LoginRequest{Email: "admin@example.com", Password: "admin-password"})
	require.NoError(t, err)
	assert.Equal(t, model.AppRoleEmployee, res.AppRole)

	page, err := f.roles.List(f.ctx, ListFilter{Search: adminRoleName}, pageAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsSystem)
	assert.Len(t, page.Items[0].Permissions, len(model.Catalogue()))
}

func TestRoleService_SystemRoleIsReadOnly(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.auth.SeedAdmin(f.ctx, "admin@example.com", "admin-password"))

	page, err := f.roles.List(f.ctx, ListFilter{Search: adminRoleName}, pageAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	admin := page.Items[0]

	_, err = f.roles.Edit(f.ctx, admin.ID, RoleRequest{Name: "Visitor", Permissions: []string{"clients_view"}})
	requireResult(t, err, ResultSystemRole)

	custom, err := f.roles.Add(f.ctx, RoleRequest{Name: "Reception", Permissions: []string{"clients_view"}})
	require.NoError(t, err)

	err = f.roles.DeleteMany(f.ctx, []uint{custom.ID, admin.ID})
	requireResult(t, err, ResultSystemRole)

	// nothing from the rejected batch was removed
	_, err = f.roles.Get(f.ctx, custom.ID)
	require.NoError(t, err)
	kept, err := f.roles.Get(f.ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, adminRoleName, kept.Name)
	assert.Len(t, kept.Permissions, len(model.Catalogue()))

	require.NoError(t, f.roles.DeleteMany(f.ctx, []uint{custom.ID}))
	_, err = f.roles.Get(f.ctx, custom.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_SeedAdminWithoutEmailSeedsPermissions(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Where("1 = 1").Delete(&model.Permission{}).Error)

	require.NoError(t, f.auth.SeedAdmin(f.ctx, "", ""))

	var n int64
	require.NoError(t, f.db.Model(&model.Permission{}).Count(&n).Error)
	assert.EqualValues(t, len(model.Catalogue()), n)

	page, err := f.roles.List(f.ctx, ListFilter{Search: adminRoleName}, pageAll)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
