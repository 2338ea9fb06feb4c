package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestLock(t *testing.T) {
	rc, mr := newTestClient(t)
	ctx := context.Background()

	ok, err := rc.AcquireLock(ctx, "lock:a", "owner-1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rc.AcquireLock(ctx, "lock:a", "owner-2", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	released, err := rc.ReleaseLock(ctx, "lock:a", "owner-2")
	require.NoError(t, err)
	assert.False(t, released, "only the owner may release")

	released, err = rc.ReleaseLock(ctx, "lock:a", "owner-1")
	require.NoError(t, err)
	assert.True(t, released)

	ok, err = rc.AcquireLock(ctx, "lock:a", "owner-2", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)
	ok, err = rc.AcquireLock(ctx, "lock:a", "owner-3", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "lock expires")
}

func TestGetSetDeletePattern(t *testing.T) {
	rc, _ := newTestClient(t)
	ctx := context.Background()

	_, found, err := rc.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, rc.Set(ctx, "products:list:1", []byte("a"), time.Minute))
	require.NoError(t, rc.Set(ctx, "products:list:2", []byte("b"), time.Minute))
	require.NoError(t, rc.Set(ctx, "other", []byte("c"), time.Minute))

	val, found, err := rc.Get(ctx, "products:list:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("a"), val)

	require.NoError(t, rc.DeletePattern(ctx, "products:list:*"))
	_, found, _ = rc.Get(ctx, "products:list:2")
	assert.False(t, found)
	_, found, _ = rc.Get(ctx, "other")
	assert.True(t, found)
}

func TestRevokeToken(t *testing.T) {
	rc, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, rc.RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))
	require.NoError(t, rc.RevokeToken(ctx, "jti-old", time.Now().Add(-time.Hour)))

	revoked, err := rc.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = rc.IsTokenRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = rc.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
