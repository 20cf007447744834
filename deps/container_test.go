package deps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/gomarket/modules/cart"
)

func envFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV_FILE", path)
}

func TestBootstrap(t *testing.T) {
	Convey("Bootstrapping the container", t, func() {
		Convey("picks the memory bucket", func() {
			envFile(t, `{"cart": {"storage": {"driver": "memory"}}}`)
			d, err := Bootstrap()
			So(err, ShouldBeNil)
			defer d.Close()

			_, ok := d.Bucket().(*cart.MemoryBucket)
			So(ok, ShouldBeTrue)
			So(d.Config().UString("cart.storage.key", ""), ShouldEqual, cart.DefaultKey)
			So(d.Errors(), ShouldBeNil)
		})

		Convey("opens an in-memory buntdb", func() {
			envFile(t, `{"cart": {"storage": {"driver": "bunt", "path": ":memory:"}}}`)
			d, err := Bootstrap()
			So(err, ShouldBeNil)
			defer d.Close()

			So(d.BuntDB(), ShouldNotBeNil)
			So(d.Bucket().Set(context.Background(), "k", "v"), ShouldBeNil)
		})

		Convey("rejects unknown drivers", func() {
			envFile(t, `{"cart": {"storage": {"driver": "floppy"}}}`)
			_, err := Bootstrap()
			So(err, ShouldNotBeNil)
		})

		Convey("lets the environment override the file", func() {
			envFile(t, `{"cart": {"storage": {"driver": "bunt"}}}`)
			t.Setenv("CART_STORAGE_DRIVER", "memory")
			d, err := Bootstrap()
			So(err, ShouldBeNil)
			defer d.Close()

			So(d.BuntDB(), ShouldBeNil)
		})
	})
}
