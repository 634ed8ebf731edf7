package auth_test

import (
	"strings"
	"testing"

	"autoservice/internal/auth"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	salt, err := auth.NewSalt()
	require.NoError(t, err)

	hash, err := auth.HashPassword("s3cret-pass", salt)
	require.NoError(t, err)

	require.True(t, auth.CheckPassword(hash, "s3cret-pass", salt))
	require.False(t, auth.CheckPassword(hash, "s3cret-pasS", salt))
	require.False(t, auth.CheckPassword(hash, "s3cret-pass", salt+"x"))
}

func TestHashPassword_LongPassword(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("p", 200)
	hash, err := auth.HashPassword(long, "salt")
	require.NoError(t, err)
	require.True(t, auth.CheckPassword(hash, long, "salt"))
}

func TestNewSalt_Unique(t *testing.T) {
	t.Parallel()

	a, err := auth.NewSalt()
	require.NoError(t, err)
	b, err := auth.NewSalt()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.Len(t, a, 32)
}

func TestNewSessionToken(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		tok := auth.NewSessionToken()
		require.Len(t, tok, 43)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
