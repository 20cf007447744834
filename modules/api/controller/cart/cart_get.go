package cart

import (
	"github.com/gin-gonic/gin"
)

// Get the cart lines with their totals. An empty cart is an empty array.
func (this API) Get(c *gin.Context) {
	items := this.Store.Products()

	c.JSON(200, gin.H{
		"products": items,
		"total":    items.Total(),
		"count":    items.Count(),
	})
}
