package deps

import (
	"github.com/getsentry/raven-go"
	"github.com/go-redis/redis/v8"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/siddontang/ledisdb/ledis"
	"github.com/tidwall/buntdb"
	"github.com/tryanzu/gomarket/modules/cart"
	"github.com/xuyu/goredis"
)

type Deps struct {
	ConfigProvider *config.Config
	LoggerProvider *logging.Logger
	BuntProvider   *buntdb.DB
	LedisConn      *ledis.Ledis
	LedisProvider  *ledis.DB
	RedisProvider  *redis.Client
	CacheProvider  *goredis.Redis
	BucketProvider cart.Bucket
	ErrorProvider  *raven.Client
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) BuntDB() *buntdb.DB {
	return d.BuntProvider
}

func (d Deps) LedisDB() *ledis.DB {
	return d.LedisProvider
}

func (d Deps) Redis() *redis.Client {
	return d.RedisProvider
}

func (d Deps) Cache() *goredis.Redis {
	return d.CacheProvider
}

// Bucket is the storage slot selected by cart.storage.driver.
func (d Deps) Bucket() cart.Bucket {
	return d.BucketProvider
}

func (d Deps) Errors() *raven.Client {
	return d.ErrorProvider
}

// Close releases every opened storage backend.
func (d Deps) Close() {
	if d.BuntProvider != nil {
		if err := d.BuntProvider.Close(); err != nil {
			log.Errorf("buntdb close err=%v", err)
		}
	}
	if d.LedisConn != nil {
		d.LedisConn.Close()
	}
	if d.RedisProvider != nil {
		if err := d.RedisProvider.Close(); err != nil {
			log.Errorf("redis close err=%v", err)
		}
	}
	if d.CacheProvider != nil {
		d.CacheProvider.ClosePool()
	}
	if d.ErrorProvider != nil {
		d.ErrorProvider.Close()
	}
}
