package deps

import (
	"github.com/pkg/errors"
	lediscfg "github.com/siddontang/ledisdb/config"
	"github.com/siddontang/ledisdb/ledis"
)

func IgniteLedisDB(container Deps) (Deps, error) {
	conf := lediscfg.NewConfigDefault()
	conf.DataDir = container.Config().UString("ledis.datadir", conf.DataDir)
	conn, err := ledis.Open(conf)
	if err != nil {
		return container, errors.Wrap(err, "open ledis")
	}

	db, err := conn.Select(0)
	if err != nil {
		conn.Close()
		return container, errors.Wrap(err, "select ledis db")
	}

	container.LedisConn = conn
	container.LedisProvider = db
	return container, nil
}
