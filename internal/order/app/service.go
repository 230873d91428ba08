package app

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	checkoutdomain "github.com/strideshop/storefront/internal/checkout/domain"
	"github.com/strideshop/storefront/internal/order/domain"
)

var ErrNotFound = errors.New("not found")

const (
	orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderNumberLen      = 8

	estimatedDeliveryDays = 7
)

// Quoter prices the session's cart; the order snapshots its result.
type Quoter interface {
	Quote(ctx context.Context, sessionID string, method checkoutdomain.DeliveryMethod) (checkoutdomain.Quote, error)
}

// CartClearer empties a session's cart once the confirmation grace window
// has elapsed.
type CartClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// Service places orders and holds them in memory for the confirmation view.
// After a placement the session's cart is cleared on a delay: the
// confirmation surface reads the cart during that grace window, and the
// pending clear is cancelable if the consumer goes away first.
type Service struct {
	quoter Quoter
	cart   CartClearer
	log    *slog.Logger

	clearGrace time.Duration

	mu      sync.Mutex
	orders  map[string]domain.Order
	pending map[string]*time.Timer
}

func NewService(quoter Quoter, cart CartClearer, log *slog.Logger, clearGrace time.Duration) *Service {
	if clearGrace <= 0 {
		clearGrace = time.Second
	}

	return &Service{
		quoter:     quoter,
		cart:       cart,
		log:        log,
		clearGrace: clearGrace,
		orders:     make(map[string]domain.Order),
		pending:    make(map[string]*time.Timer),
	}
}

// PlaceOrder quotes the cart, snapshots it into an order and schedules the
// deferred cart clear. The form is carried as-is.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm, method checkoutdomain.DeliveryMethod) (domain.Order, error) {
	quote, err := s.quoter.Quote(ctx, sessionID, method)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now()
	items := make([]domain.Item, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		items = append(items, domain.Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Size:      l.Size,
			Color:     l.Color,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}

	order := domain.Order{
		ID:                uuid.NewString(),
		Number:            newOrderNumber(),
		Status:            domain.StatusPending,
		Items:             items,
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Total:             quote.Total,
		DeliveryMethod:    string(method),
		Form:              form,
		PlacedAt:          now,
		EstimatedDelivery: now.AddDate(0, 0, estimatedDeliveryDays),
	}

	s.mu.Lock()
	s.orders[order.Number] = order
	s.mu.Unlock()

	s.scheduleClear(order.Number, sessionID)

	s.log.Info("order placed",
		slog.String("order", order.Number),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

// GetOrder returns the placed order for the confirmation view.
func (s *Service) GetOrder(number string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[strings.ToUpper(number)]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return order, nil
}

// CancelPendingClear stops the deferred cart clear for an order if it has
// not fired yet. It reports whether a pending clear was canceled, and is
// safe to call after the timer has fired.
func (s *Service) CancelPendingClear(number string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[number]
	if !ok {
		return false
	}
	delete(s.pending, number)
	return t.Stop()
}

func (s *Service) scheduleClear(number, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[number] = time.AfterFunc(s.clearGrace, func() {
		s.mu.Lock()
		delete(s.pending, number)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.cart.Clear(ctx, sessionID); err != nil {
			s.log.Error("deferred cart clear failed",
				slog.String("order", number),
				slog.Any("err", err),
			)
		}
	})
}

func newOrderNumber() string {
	var b strings.Builder
	b.Grow(orderNumberLen)
	for i := 0; i < orderNumberLen; i++ {
		b.WriteByte(orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))])
	}
	return b.String()
}
