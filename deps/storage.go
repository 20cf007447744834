package deps

import (
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/pkg/errors"
	"github.com/tryanzu/gomarket/modules/cart"
)

// IgniteStorage opens the backend named by cart.storage.driver and exposes it
// as the cart bucket.
func IgniteStorage(container Deps) (Deps, error) {
	var err error
	driver := container.Config().UString("cart.storage.driver", "bunt")

	switch driver {
	case "memory":
		container.BucketProvider = cart.NewMemoryBucket()
	case "bunt":
		if container, err = IgniteBuntDB(container); err != nil {
			return container, err
		}
		container.BucketProvider = cart.BuntBucket{DB: container.BuntDB()}
	case "ledis":
		if container, err = IgniteLedisDB(container); err != nil {
			return container, err
		}
		container.BucketProvider = cart.LedisBucket{DB: container.LedisDB()}
	case "redis":
		if container, err = IgniteRedis(container); err != nil {
			return container, err
		}
		container.BucketProvider = cart.RedisBucket{Client: container.Redis()}
	case "goredis":
		if container, err = IgniteCache(container); err != nil {
			return container, err
		}
		container.BucketProvider = cart.GoredisBucket{Redis: container.Cache()}
	default:
		return container, fmt.Errorf("unknown cart.storage.driver %q", driver)
	}

	log.Infof("cart storage driver=%s", driver)
	return container, nil
}

// IgniteExceptions creates the sentry client when sentry.dsn is set.
func IgniteExceptions(container Deps) (Deps, error) {
	dsn := container.Config().UString("sentry.dsn", "")
	if dsn == "" {
		return container, nil
	}

	client, err := raven.New(dsn)
	if err != nil {
		return container, errors.Wrap(err, "sentry client")
	}

	client.SetEnvironment(container.Config().UString("environment", "development"))
	container.ErrorProvider = client
	return container, nil
}
