package cart

import (
	"errors"
)

var (
	// ErrInvalidProduct is returned by AddToCart for products without id or with negative price.
	ErrInvalidProduct = errors.New("cart: invalid product")

	// ErrItemNotFound matches every *NotFoundError.
	ErrItemNotFound = errors.New("cart: item not found")

	// ErrNoProvider means the cart was consumed outside NewContext.
	ErrNoProvider = errors.New("cart: must be used within a cart provider")

	// ErrClosed is returned by mutations after Close.
	ErrClosed = errors.New("cart: store closed")
)

// NotFoundError reports a decrement on a product that is not in the cart.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "cart: item " + e.ID + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
