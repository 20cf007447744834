package exceptions

import (
	"errors"
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("exceptions")

// ExceptionsModule reports recovered panics. Without an ErrorService panics
// are only logged.
type ExceptionsModule struct {
	ErrorService *raven.Client
}

// Recover must be deferred. The panic is reported and swallowed.
func (di *ExceptionsModule) Recover() {
	if rval := recover(); rval != nil {
		di.capture(rval, nil)
	}
}

// Middleware recovers handler panics into a 500 json error.
func (di *ExceptionsModule) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rval := recover()
			if rval == nil {
				return
			}

			di.capture(rval, map[string]string{
				"method": c.Request.Method,
				"path":   c.FullPath(),
			})
			c.AbortWithStatusJSON(500, gin.H{"status": "error", "message": "Internal error."})
		}()

		c.Next()
	}
}

func (di *ExceptionsModule) capture(rval interface{}, tags map[string]string) {
	var err error
	switch v := rval.(type) {
	case error:
		err = v
	default:
		err = errors.New(fmt.Sprint(v))
	}

	log.Errorf("recovered panic err=%v", err)
	if di == nil || di.ErrorService == nil {
		return
	}

	packet := raven.NewPacket(err.Error(), raven.NewException(err, raven.NewStacktrace(2, 3, nil)))
	di.ErrorService.Capture(packet, tags)
}
