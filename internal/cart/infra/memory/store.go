// Package memory is the default cart store: one cart per session, held in
// process memory for the session's lifetime.
package memory

import (
	"context"
	"sync"

	"github.com/strideshop/storefront/internal/cart/domain"
)

type Store struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

func (s *Store) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Clone so callers never alias the stored line slice.
	return s.carts[sessionID].Clone(), nil
}

func (s *Store) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart.Clone()
	return nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
