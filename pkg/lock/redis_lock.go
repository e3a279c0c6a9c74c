package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Locker is a best-effort lease shared by replicas.
type Locker interface {
	// Acquire reports false when another owner holds key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// releaseScript deletes key only while it still belongs to the caller.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type redisLocker struct {
	client redis.Cmdable
	owner  string
	log    *zap.Logger
}

// NewRedisLocker returns a Locker backed by SET NX PX. owner identifies this
// replica so it never releases a lease taken over by another one.
func NewRedisLocker(client redis.Cmdable, owner string, log *zap.Logger) Locker {
	return &redisLocker{
		client: client,
		owner:  owner,
		log:    log.With(zap.String("lock", "redis")),
	}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, l.owner, ttl).Result()
	if err != nil {
		l.log.Error("Failed to acquire lease", zap.Error(err), zap.String("key", key))
		return false, fmt.Errorf("acquire lease %s: %w", key, err)
	}
	return ok, nil
}

func (l *redisLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Eval(ctx, releaseScript, []string{key}, l.owner).Err(); err != nil {
		l.log.Warn("Failed to release lease", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("release lease %s: %w", key, err)
	}
	return nil
}

type localLocker struct{}

// NewLocalLocker always grants the lease; used when Redis is unavailable.
func NewLocalLocker() Locker { return localLocker{} }

func (localLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }

func (localLocker) Release(context.Context, string) error { return nil }
