package cart

import (
	"context"

	"github.com/pkg/errors"
	"github.com/siddontang/ledisdb/ledis"
)

// LedisBucket persists the cart in an embedded ledisdb database.
type LedisBucket struct {
	DB *ledis.DB
}

func (b LedisBucket) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	// ledis answers nil for missing keys.
	v, err := b.DB.Get([]byte(key))
	if err != nil {
		return "", false, errors.Wrapf(err, "ledis get %s", key)
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func (b LedisBucket) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return errors.Wrapf(b.DB.Set([]byte(key), []byte(value)), "ledis set %s", key)
}
