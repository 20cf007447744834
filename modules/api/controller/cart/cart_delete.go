package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/tryanzu/gomarket/modules/cart"
)

// Delete one unit of the :id line, the line goes away on its last unit.
func (this API) Delete(c *gin.Context) {
	err := this.Store.Decrement(c.Request.Context(), c.Param("id"))
	if errors.Is(err, cart.ErrItemNotFound) {
		jsonErr(c, 404, "Invalid request, product not found.")
		return
	}
	if err != nil {
		jsonErr(c, 500, err.Error())
		return
	}

	c.JSON(200, gin.H{"status": "okay"})
}
