package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("lock is held by another request")

// Locker 按 key 加互斥锁，release 必须调用
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	rdb *redis.Client
}

// NewLocker redis 未启用时退化为空锁
func NewLocker(rdb *redis.Client) Locker {
	if rdb == nil {
		return NopLocker{}
	}
	return &RedisLocker{rdb: rdb}
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		// 请求 ctx 可能已取消，释放锁用独立 ctx
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		unlockScript.Run(releaseCtx, l.rdb, []string{key}, token)
	}, nil
}

type NopLocker struct{}

func (NopLocker) Lock(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}
