package cart

import (
	"context"
	"sync"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cart")

// Cart is what views consume.
type Cart interface {
	Products() Items
	AddToCart(ctx context.Context, p Product) error
	Increment(ctx context.Context, id string) error
	Decrement(ctx context.Context, id string) error
}

// Store holds the cart in memory and mirrors every mutation to a Bucket.
// Mutations are serialized, so each write persists the collection it produced.
type Store struct {
	key     string
	bucket  Bucket
	timeout time.Duration
	buffer  int

	hydrate  sync.Once
	hydrated chan struct{}

	mu        sync.Mutex
	items     Items
	observers map[string]*Subscription
	closed    bool
}

type Option func(*Store)

// WithKey changes the persisted slot, DefaultKey otherwise.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithTimeout bounds every storage call.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// WithBuffer sets how many snapshots a subscription queues before coalescing.
func WithBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.buffer = n
		}
	}
}

func newStore(bucket Bucket, opts ...Option) *Store {
	s := &Store{
		key:       DefaultKey,
		bucket:    bucket,
		timeout:   5 * time.Second,
		buffer:    16,
		hydrated:  make(chan struct{}),
		items:     Items{},
		observers: map[string]*Subscription{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Boot creates the store and hydrates it in the background.
// Mutations issued before hydration completes wait for it.
func Boot(bucket Bucket, opts ...Option) *Store {
	s := newStore(bucket, opts...)
	go s.Hydrate(context.Background())
	return s
}

// Open creates the store and hydrates it before returning.
func Open(ctx context.Context, bucket Bucket, opts ...Option) *Store {
	s := newStore(bucket, opts...)
	s.Hydrate(ctx)
	return s
}

// Hydrate loads the persisted cart once. A missing slot is an empty cart,
// read or decode failures are logged and also leave the cart empty.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrate.Do(func() {
		defer close(s.hydrated)

		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		raw, found, err := s.bucket.Get(ctx, s.key)
		if err != nil {
			log.Errorf("cart hydrate key=%s err=%v", s.key, err)
			return
		}
		if !found {
			log.Debugf("cart hydrate key=%s empty", s.key)
			return
		}

		items, err := Decode([]byte(raw))
		if err != nil {
			log.Warningf("cart hydrate key=%s malformed=%v", s.key, err)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = items
		s.notify()
		log.Infof("cart hydrated key=%s lines=%d", s.key, len(items))
	})
}

// Ready is closed once hydration finished.
func (s *Store) Ready() <-chan struct{} {
	return s.hydrated
}

// Products returns a snapshot of the cart.
func (s *Store) Products() Items {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Total()
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Count()
}

// IsEmpty checks if no items in cart.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// AddToCart appends p with quantity 1, or replaces the existing line with p
// and one more unit.
func (s *Store) AddToCart(ctx context.Context, p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, func(current Items) (Items, bool, error) {
		return current.add(p), true, nil
	})
}

// Increment adds one unit of id. Unknown ids leave the cart unchanged.
func (s *Store) Increment(ctx context.Context, id string) error {
	return s.mutate(ctx, func(current Items) (Items, bool, error) {
		next, changed := current.increment(id)
		return next, changed, nil
	})
}

// Decrement removes one unit of id, and the whole line on the last unit.
func (s *Store) Decrement(ctx context.Context, id string) error {
	return s.mutate(ctx, func(current Items) (Items, bool, error) {
		next, err := current.decrement(id)
		return next, err == nil, err
	})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(current Items) (Items, bool, error) {
		return Items{}, len(current) > 0, nil
	})
}

// Close drops every subscription. Further mutations fail with ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.closed = true
	for id, sub := range s.observers {
		close(sub.updates)
		delete(s.observers, id)
	}
}

func (s *Store) mutate(ctx context.Context, fn func(Items) (Items, bool, error)) error {
	select {
	case <-s.hydrated:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	next, changed, err := fn(s.items)
	if err != nil {
		return err
	}

	s.items = next
	s.persist(ctx, next)
	if changed {
		s.notify()
	}
	return nil
}

// persist is best-effort: failures are logged and never reach the caller.
func (s *Store) persist(ctx context.Context, items Items) {
	data, err := Encode(items)
	if err != nil {
		log.Errorf("cart persist key=%s err=%v", s.key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.bucket.Set(ctx, s.key, string(data)); err != nil {
		log.Errorf("cart persist key=%s err=%v", s.key, err)
	}
}
