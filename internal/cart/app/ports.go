package app

import (
	"context"

	"github.com/strideshop/storefront/internal/cart/domain"
)

// CartStore persists one cart per session. Get returns an empty cart for
// unknown sessions; absence is not an error.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
