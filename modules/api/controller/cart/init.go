package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/tryanzu/gomarket/modules/cart"
)

var log = logging.MustGetLogger("api")

type API struct {
	Store *cart.Store `inject:""`
}

type CartAddForm struct {
	Id       string  `json:"id" binding:"required"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
}

func jsonErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
