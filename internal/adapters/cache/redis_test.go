package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis answers with canned command results.
type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error
	ttl    time.Duration
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore_GetSet(t *testing.T) {
	fake := &fakeRedis{values: map[string]string{}}
	store := &redisStore{client: fake}
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "schedule:abc")
	require.NoError(t, err)
	assert.False(t, ok, "miss")

	require.NoError(t, store.Set(ctx, "schedule:abc", []byte("payload"), time.Minute))
	assert.Equal(t, time.Minute, fake.ttl)

	got, ok, err := store.Get(ctx, "schedule:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
}

func TestRedisStore_Errors(t *testing.T) {
	boom := errors.New("connection refused")
	store := &redisStore{client: &fakeRedis{values: map[string]string{}, getErr: boom, setErr: boom}}

	_, ok, err := store.Get(context.Background(), "k")
	require.ErrorIs(t, err, boom)
	assert.False(t, ok)
	require.ErrorIs(t, store.Set(context.Background(), "k", []byte("v"), time.Second), boom)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	client, err := NewRedisClient(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Nil(t, client)
}
