package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermissionCode(t *testing.T) {
	key, err := ParsePermissionCode("clients_view")
	require.NoError(t, err)
	assert.Equal(t, PermissionKey{Resource: ResourceClients, Action: ActionView}, key)

	key, err = ParsePermissionCode(" tickets_manage ")
	require.NoError(t, err)
	assert.Equal(t, "tickets_manage", key.Code())

	for _, bad := range []string{"", "clients", "_view", "clients_", "clients_fly", "garage_view", "clients-view"} {
		_, err := ParsePermissionCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestCatalogue(t *testing.T) {
	keys := Catalogue()
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		require.False(t, seen[k.Code()], "duplicate %s", k.Code())
		seen[k.Code()] = true

		parsed, err := ParsePermissionCode(k.Code())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.True(t, seen["requests_decide"])
	assert.True(t, seen["orders_status"])
	assert.True(t, seen["logs_view"])
}

func TestRolePermissionCodes(t *testing.T) {
	r := Role{Permissions: []Permission{
		{Resource: ResourceClients, Action: ActionView},
		{Resource: ResourceClients, Action: ActionEdit},
	}}
	assert.Equal(t, []string{"clients_view", "clients_edit"}, r.PermissionCodes())
}
