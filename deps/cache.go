package deps

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/xuyu/goredis"
)

// IgniteCache dials the legacy goredis connection on cache.redis.
func IgniteCache(container Deps) (Deps, error) {
	address, err := container.Config().String("cache.redis")
	if err != nil {
		return container, err
	}

	conn, err := goredis.Dial(&goredis.DialConfig{Address: address})
	if err != nil {
		return container, errors.Wrapf(err, "dial goredis %s", address)
	}

	container.CacheProvider = conn
	return container, nil
}

// IgniteRedis connects go-redis to cache.redis and pings it once.
func IgniteRedis(container Deps) (Deps, error) {
	address, err := container.Config().String("cache.redis")
	if err != nil {
		return container, err
	}

	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return container, errors.Wrapf(err, "ping redis %s", address)
	}

	container.RedisProvider = client
	return container, nil
}
