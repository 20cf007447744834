package cart

import (
	"context"
	"testing"

	lediscfg "github.com/siddontang/ledisdb/config"
	"github.com/siddontang/ledisdb/ledis"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tidwall/buntdb"
)

func buckets(t *testing.T) map[string]Bucket {
	t.Helper()

	bunt, err := buntdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { bunt.Close() })

	conf := lediscfg.NewConfigDefault()
	conf.DataDir = t.TempDir()
	conn, err := ledis.Open(conf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(conn.Close)

	db, err := conn.Select(0)
	if err != nil {
		t.Fatal(err)
	}

	return map[string]Bucket{
		"memory": NewMemoryBucket(),
		"bunt":   BuntBucket{DB: bunt},
		"ledis":  LedisBucket{DB: db},
	}
}

func TestBuckets(t *testing.T) {
	ctx := context.Background()

	for name, bucket := range buckets(t) {
		bucket := bucket

		Convey("Bucket "+name, t, func() {
			Convey("reports missing keys as not found", func() {
				v, found, err := bucket.Get(ctx, "missing:"+name)
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
				So(v, ShouldEqual, "")
			})

			Convey("keeps the last write", func() {
				So(bucket.Set(ctx, DefaultKey, "[]"), ShouldBeNil)
				So(bucket.Set(ctx, DefaultKey, `[{"id":"p1","quantity":1}]`), ShouldBeNil)
				v, found, err := bucket.Get(ctx, DefaultKey)
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(v, ShouldEqual, `[{"id":"p1","quantity":1}]`)
			})

			Convey("survives a store restart", func() {
				first := Open(ctx, bucket, WithKey("restart:"+name))
				So(first.AddToCart(ctx, widget), ShouldBeNil)
				So(first.AddToCart(ctx, widget), ShouldBeNil)

				second := Open(ctx, bucket, WithKey("restart:"+name))
				So(second.Products(), ShouldResemble, first.Products())
			})
		})
	}
}

func TestEncode(t *testing.T) {
	var tests = []struct {
		in  Items
		out string
	}{
		{nil, `[]`},
		{Items{}, `[]`},
		{Items{{Product: widget, Quantity: 2}}, `[{"id":"p1","title":"Widget","imageUrl":"x","price":10,"quantity":2}]`},
	}

	for _, test := range tests {
		out, err := Encode(test.in)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != test.out {
			t.Errorf("%v: %s != %s", test.in, out, test.out)
		}
	}
}
