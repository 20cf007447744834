package exceptions

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	Convey("Recovered panics", t, func() {
		module := &ExceptionsModule{}

		Convey("become a 500 json error in handlers", func() {
			router := gin.New()
			router.Use(module.Middleware())
			router.GET("/boom", func(c *gin.Context) {
				panic("boom")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))
			So(w.Code, ShouldEqual, 500)
			So(w.Body.String(), ShouldContainSubstring, `"status":"error"`)
		})

		Convey("are swallowed by Recover without a sentry client", func() {
			So(func() {
				defer module.Recover()
				panic("boom")
			}, ShouldNotPanic)
		})
	})
}
