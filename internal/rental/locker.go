package rental

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker guards a rental while one worker advances it.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// LocalLocker is an in-process Locker for single-replica deployments.
type LocalLocker struct {
	held sync.Map
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) TryLock(_ context.Context, key string) (bool, error) {
	_, loaded := l.held.LoadOrStore(key, struct{}{})
	return !loaded, nil
}

func (l *LocalLocker) Unlock(_ context.Context, key string) error {
	l.held.Delete(key)
	return nil
}

const (
	lockPrefix = "loghub:rental:lock:"

	unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`
)

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLocker shares rental locks between replicas. Each lock expires after
// ttl so a crashed replica cannot hold a rental forever, and only the
// replica that took a lock may release it.
type RedisLocker struct {
	client redisClient
	owner  string
	ttl    time.Duration
}

func NewRedisLocker(client redisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		owner:  uuid.NewString(),
		ttl:    ttl,
	}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, lockPrefix+key, l.owner, l.ttl).Result()
}

func (l *RedisLocker) Unlock(ctx context.Context, key string) error {
	return l.client.Eval(ctx, unlockScript, []string{lockPrefix + key}, l.owner).Err()
}
