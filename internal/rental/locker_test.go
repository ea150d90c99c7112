package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]interface{}
	err    error
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	if f.values[keys[0]] == args[0] {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker()

	ok, err := l.TryLock(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.TryLock(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, l.Unlock(ctx, "a"))
	ok, _ = l.TryLock(ctx, "a")
	assert.True(t, ok)
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{values: map[string]interface{}{}}
	first := NewRedisLocker(client, time.Minute)
	second := NewRedisLocker(client, time.Minute)

	ok, err := first.TryLock(ctx, "rental-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, client.values, lockPrefix+"rental-1")

	ok, err = second.TryLock(ctx, "rental-1")
	require.NoError(t, err)
	assert.False(t, ok, "another replica must not take a held lock")

	require.NoError(t, second.Unlock(ctx, "rental-1"))
	assert.Contains(t, client.values, lockPrefix+"rental-1", "only the owner may release")

	require.NoError(t, first.Unlock(ctx, "rental-1"))
	assert.NotContains(t, client.values, lockPrefix+"rental-1")
}

func TestRedisLocker_Errors(t *testing.T) {
	ctx := context.Background()
	l := NewRedisLocker(&fakeRedis{values: map[string]interface{}{}, err: errors.New("connection refused")}, time.Minute)

	ok, err := l.TryLock(ctx, "rental-1")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, l.Unlock(ctx, "rental-1"))
}
