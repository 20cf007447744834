package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/facebookgo/inject"
	"github.com/olebedev/config"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/gomarket/modules/cart"
	"github.com/tryanzu/gomarket/modules/exceptions"
)

func testRouter(t *testing.T) (http.Handler, *cart.Store) {
	t.Helper()

	conf, err := config.ParseJson(`{"environment": "test"}`)
	if err != nil {
		t.Fatal(err)
	}

	store := cart.Open(context.Background(), cart.NewMemoryBucket())
	var (
		g      inject.Graph
		module Module
	)
	err = g.Provide(
		&inject.Object{Value: conf, Complete: true},
		&inject.Object{Value: store, Complete: true},
		&inject.Object{Value: &exceptions.ExceptionsModule{}, Complete: true},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := module.Populate(&g); err != nil {
		t.Fatal(err)
	}

	return module.Router(), store
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCartRoutes(t *testing.T) {
	Convey("Given the cart API", t, func() {
		router, store := testRouter(t)

		Convey("an empty cart lists an empty array", func() {
			w := do(router, "GET", "/v1/cart", "")
			So(w.Code, ShouldEqual, 200)

			var body struct {
				Products []cart.Item `json:"products"`
				Total    float64     `json:"total"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Products, ShouldNotBeNil)
			So(body.Products, ShouldBeEmpty)
			So(w.Body.String(), ShouldContainSubstring, `"products":[]`)
		})

		Convey("posting a product adds it", func() {
			w := do(router, "POST", "/v1/cart", `{"id":"p1","title":"Widget","imageUrl":"x","price":10}`)
			So(w.Code, ShouldEqual, 200)
			So(store.Products(), ShouldResemble, cart.Items{{
				Product:  cart.Product{ID: "p1", Title: "Widget", ImageURL: "x", Price: 10},
				Quantity: 1,
			}})

			Convey("increment and delete adjust the quantity", func() {
				So(do(router, "POST", "/v1/cart/p1/increment", "").Code, ShouldEqual, 200)
				So(store.Count(), ShouldEqual, 2)

				So(do(router, "DELETE", "/v1/cart/p1", "").Code, ShouldEqual, 200)
				So(do(router, "DELETE", "/v1/cart/p1", "").Code, ShouldEqual, 200)
				So(store.IsEmpty(), ShouldBeTrue)
			})
		})

		Convey("malformed bodies are rejected", func() {
			So(do(router, "POST", "/v1/cart", `{"title":"no id"}`).Code, ShouldEqual, 400)
			So(do(router, "POST", "/v1/cart", `{"id":"p1","price":-3}`).Code, ShouldEqual, 400)
			So(do(router, "POST", "/v1/cart", `nope`).Code, ShouldEqual, 400)
			So(store.IsEmpty(), ShouldBeTrue)
		})

		Convey("deleting an unknown product is a 404", func() {
			w := do(router, "DELETE", "/v1/cart/ghost", "")
			So(w.Code, ShouldEqual, 404)
			So(w.Body.String(), ShouldContainSubstring, `"status":"error"`)
		})
	})
}
