package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx, 1)
	require.False(t, ok)

	c.Set(ctx, 1, []string{"clients_view"})
	codes, ok := c.Get(ctx, 1)
	require.True(t, ok)
	require.Equal(t, []string{"clients_view"}, codes)

	now = now.Add(time.Minute)
	_, ok = c.Get(ctx, 1)
	require.False(t, ok, "entry must expire after ttl")

	c.Set(ctx, 1, []string{"a"})
	c.Set(ctx, 2, []string{"b"})
	c.Purge(ctx)
	_, ok = c.Get(ctx, 1)
	require.False(t, ok)
	_, ok = c.Get(ctx, 2)
	require.False(t, ok)
}
