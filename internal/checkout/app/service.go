package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	cartdomain "github.com/strideshop/storefront/internal/cart/domain"
	catalogdomain "github.com/strideshop/storefront/internal/catalog/domain"
	"github.com/strideshop/storefront/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

// CartReader is the slice of the cart service checkout needs.
type CartReader interface {
	Cart(ctx context.Context, sessionID string) (cartdomain.Cart, error)
}

// CatalogReader verifies that quoted products still exist in the catalog.
type CatalogReader interface {
	GetProduct(ctx context.Context, id string) (catalogdomain.Product, error)
}

type Service struct {
	cart    CartReader
	catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the session's cart under the given delivery method. Prices
// come from the cart lines themselves; the catalog is consulted only to
// confirm each product still exists.
func (s *Service) Quote(ctx context.Context, sessionID string, method domain.DeliveryMethod) (domain.Quote, error) {
	if !method.Valid() {
		return domain.Quote{}, fmt.Errorf("%w: unknown delivery method %q", ErrInvalidInput, method)
	}

	cart, err := s.cart.Cart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}
	if cart.IsEmpty() {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(cart.Lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range cart.Lines {
		g.Go(func() error {
			item := cart.Lines[idx]
			if item.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", item.Quantity)
			}

			if _, err := s.catalog.GetProduct(ctx, item.ProductID); err != nil {
				return fmt.Errorf("product %s unavailable: %w", item.ProductID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: item.ProductID,
				Size:      item.Size,
				Color:     item.Color,
				Name:      item.Name,
				Image:     item.Image,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
				LineTotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := cart.Subtotal()
	shipping := domain.ShippingCost(subtotal, method)

	return domain.Quote{
		Lines:    lines,
		Method:   method,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}, nil
}
