package cart

import (
	uuid "github.com/satori/go.uuid"
)

// Subscription receives a snapshot after every change of the cart.
// Snapshots are shared between subscribers and must not be modified.
type Subscription struct {
	ID      string
	updates chan Items
	store   *Store
}

// Updates is closed on Unsubscribe or when the store closes.
func (sub *Subscription) Updates() <-chan Items {
	return sub.updates
}

func (sub *Subscription) Unsubscribe() {
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.observers[sub.ID]; !exists {
		return
	}

	delete(s.observers, sub.ID)
	close(sub.updates)
}

// offer never blocks. When the queue is full the oldest snapshot is dropped,
// a slow view only needs the latest state.
func (sub *Subscription) offer(items Items) {
	select {
	case sub.updates <- items:
		return
	default:
	}

	select {
	case <-sub.updates:
	default:
	}

	select {
	case sub.updates <- items:
	default:
	}
}

// Subscribe registers an observer. The current snapshot is queued right away
// so a view can render before the first mutation.
func (s *Store) Subscribe() *Subscription {
	sub := &Subscription{
		ID:      uuid.NewV4().String(),
		updates: make(chan Items, s.buffer),
		store:   s,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(sub.updates)
		return sub
	}

	s.observers[sub.ID] = sub
	sub.offer(s.items.Clone())
	return sub
}

// notify must be called with s.mu held.
func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}

	snapshot := s.items.Clone()
	for _, sub := range s.observers {
		sub.offer(snapshot)
	}
}
