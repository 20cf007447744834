package cart

import (
	"context"
)

type providerKey struct{}

// NewContext scopes c to the returned context, the way a view tree root
// provides the cart to its children.
func NewContext(ctx context.Context, c Cart) context.Context {
	return context.WithValue(ctx, providerKey{}, c)
}

// FromContext returns the provided cart or ErrNoProvider.
func FromContext(ctx context.Context) (Cart, error) {
	c, ok := ctx.Value(providerKey{}).(Cart)
	if !ok || c == nil {
		return nil, ErrNoProvider
	}
	return c, nil
}

// MustFromContext panics when no cart was provided.
func MustFromContext(ctx context.Context) Cart {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
