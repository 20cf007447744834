package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/tryanzu/gomarket/modules/cart"
)

// Add a product line, or one more unit of an existing one.
func (this API) Add(c *gin.Context) {
	var form CartAddForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonErr(c, 400, "Malformed request.")
		return
	}

	product := cart.Product{
		ID:       form.Id,
		Title:    form.Title,
		ImageURL: form.ImageURL,
		Price:    form.Price,
	}

	err := this.Store.AddToCart(c.Request.Context(), product)
	if errors.Is(err, cart.ErrInvalidProduct) {
		jsonErr(c, 400, err.Error())
		return
	}
	if err != nil {
		log.Errorf("cart add id=%s err=%v", form.Id, err)
		jsonErr(c, 500, err.Error())
		return
	}

	c.JSON(200, gin.H{"status": "okay"})
}

// Increment one unit of the :id line.
func (this API) Increment(c *gin.Context) {
	if err := this.Store.Increment(c.Request.Context(), c.Param("id")); err != nil {
		jsonErr(c, 500, err.Error())
		return
	}

	c.JSON(200, gin.H{"status": "okay"})
}
