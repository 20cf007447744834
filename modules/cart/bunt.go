package cart

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

// BuntBucket persists the cart inside a buntdb database.
type BuntBucket struct {
	DB *buntdb.DB
}

func (b BuntBucket) Get(ctx context.Context, key string) (value string, found bool, err error) {
	if err = ctx.Err(); err != nil {
		return
	}

	err = b.DB.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err == buntdb.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		value, found = v, true
		return nil
	})
	if err != nil {
		err = errors.Wrapf(err, "buntdb get %s", key)
	}
	return
}

func (b BuntBucket) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.DB.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
	return errors.Wrapf(err, "buntdb set %s", key)
}
