package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (IRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return Wrap(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})), mr
}

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(RedisConfig{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestOperations(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	defer r.Close()

	require.NoError(t, r.Ping(ctx))
	require.NoError(t, r.Set(ctx, "k", "v", time.Minute))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	ok, err := r.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := r.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, "k")
	assert.True(t, IsNil(err))

	require.NoError(t, r.Set(ctx, "a", "1", 0))
	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx))
	ok, err = r.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
