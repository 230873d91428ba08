package app

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/cart/domain"
)

// Service exposes the cart operations against a session. Mutations load,
// change and save the whole cart; a per-session lock keeps that sequence
// single-writer so concurrent adds never lose increments.
type Service struct {
	store CartStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store CartStore) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart)) error {
	l := s.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(&cart)
	return s.store.Save(ctx, sessionID, cart)
}

// Add merges qty units of the entry into the session's cart. qty below one
// counts as one, so calling Add N times equals one Add of quantity N.
func (s *Service) Add(ctx context.Context, sessionID string, e domain.Entry, qty int) error {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Add(e, qty)
	})
}

func (s *Service) Remove(ctx context.Context, sessionID string, key domain.LineKey) error {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Remove(key)
	})
}

func (s *Service) SetQuantity(ctx context.Context, sessionID string, key domain.LineKey, n int) error {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.SetQuantity(key, n)
	})
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	l := s.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()
	return s.store.Delete(ctx, sessionID)
}

// Cart returns a snapshot of the session's current line sequence.
func (s *Service) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *Service) Subtotal(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return cart.Subtotal(), nil
}
