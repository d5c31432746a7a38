package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultKey = "barber-turnos:reaper:lock"
	DefaultTTL = 10 * time.Minute
)

// só apaga a chave se ela ainda for desta execução
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock é uma trava de execução única baseada em SET NX com expiração.
type RedisLock struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewRedisLock(client redis.Cmdable, key string, ttl time.Duration) *RedisLock {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLock{client: client, key: key, ttl: ttl}
}

// NewClient monta o cliente a partir de uma URL redis://.
func NewClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (l *RedisLock) TryLock(ctx context.Context, runID string) (func(), bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, runID, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx %s: %w", l.key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{l.key}, runID).Err(); err != nil {
			log.Printf("failed to release reaper lock %s: %v", l.key, err)
		}
	}
	return release, true, nil
}
