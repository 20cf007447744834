package cart

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/xuyu/goredis"
)

// RedisBucket persists the cart in redis through go-redis.
type RedisBucket struct {
	Client redis.UniversalClient
}

func (b RedisBucket) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (b RedisBucket) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(b.Client.Set(ctx, key, value, 0).Err(), "redis set %s", key)
}

// GoredisBucket persists the cart through the legacy goredis cache connection.
// goredis has no context support, ctx is only checked before the call.
type GoredisBucket struct {
	Redis *goredis.Redis
}

func (b GoredisBucket) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	v, err := b.Redis.Get(key)
	if err != nil {
		return "", false, errors.Wrapf(err, "goredis get %s", key)
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func (b GoredisBucket) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return errors.Wrapf(b.Redis.Set(key, value, 0, 0, false, false), "goredis set %s", key)
}
