package cart

import (
	"context"
	"sync"
)

// DefaultKey is the slot the cart is mirrored to.
const DefaultKey = "cart:products"

// Bucket is the key-value slot used to persist the cart.
type Bucket interface {

	// Get the stored value. found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set overwrites the stored value.
	Set(ctx context.Context, key, value string) error
}

// MemoryBucket keeps values in process memory.
type MemoryBucket struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{data: map[string]string{}}
}

func (b *MemoryBucket) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	v, exists := b.data[key]
	return v, exists, nil
}

func (b *MemoryBucket) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}
