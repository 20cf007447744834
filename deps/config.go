package deps

import (
	"os"

	"github.com/olebedev/config"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

var (
	// EnvFile is the JSON config read by IgniteConfig.
	EnvFile = "./env.json"

	// Defaults apply to every key missing from EnvFile.
	Defaults = `{
		"environment": "development",
		"log": {"level": "INFO"},
		"cart": {"storage": {"driver": "bunt", "key": "cart:products", "path": "cart.db"}},
		"cache": {"redis": "127.0.0.1:6379"},
		"ledis": {"datadir": "./var/ledis"},
		"sentry": {"dsn": ""}
	}`
)

// IgniteConfig loads .env, then EnvFile over Defaults, then environment
// overrides (CART_STORAGE_DRIVER, CACHE_REDIS, ...).
func IgniteConfig(d Deps) (Deps, error) {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		return d, errors.Wrap(err, "load .env")
	}

	if f := os.Getenv("ENV_FILE"); f != "" {
		EnvFile = f
	}

	conf, err := config.ParseJson(Defaults)
	if err != nil {
		return d, errors.Wrap(err, "parse config defaults")
	}

	if _, err := os.Stat(EnvFile); err == nil {
		file, err := config.ParseJsonFile(EnvFile)
		if err != nil {
			return d, errors.Wrapf(err, "parse %s", EnvFile)
		}

		conf, err = conf.Extend(file)
		if err != nil {
			return d, errors.Wrapf(err, "merge %s", EnvFile)
		}
	}

	d.ConfigProvider = conf.Env()
	return d, nil
}
