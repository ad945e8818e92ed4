package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlacklist(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBlacklist(time.Minute)

	revoked, err := b.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, b.Revoke(ctx, "token", time.Hour))
	revoked, err = b.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = b.IsRevoked(ctx, "another")
	assert.False(t, revoked)
}

func TestMemoryBlacklistExpires(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBlacklist(time.Minute)

	require.NoError(t, b.Revoke(ctx, "short", 20*time.Millisecond))
	require.NoError(t, b.Revoke(ctx, "expired", 0))

	revoked, _ := b.IsRevoked(ctx, "expired")
	assert.False(t, revoked, "already expired tokens are not stored")

	assert.Eventually(t, func() bool {
		revoked, _ := b.IsRevoked(ctx, "short")
		return !revoked
	}, time.Second, 10*time.Millisecond)
}
