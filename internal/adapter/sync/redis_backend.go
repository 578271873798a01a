package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// RedisBackend stores backups as plain string values. Suited to a
// self-hosted Redis the business already runs for other tooling.
type RedisBackend struct {
	client *redis.Client
}

var _ interfaces.ISyncBackend = (*RedisBackend)(nil)

// NewRedisBackend connects and pings so a bad address fails at startup,
// not on the first sync.
func NewRedisBackend(addr string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Upload(ctx context.Context, key string, blob []byte) error {
	return b.client.Set(ctx, key, blob, 0).Err()
}

func (b *RedisBackend) Download(ctx context.Context, key string) ([]byte, error) {
	blob, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, interfaces.ErrRemoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}
