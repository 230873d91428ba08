package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/cart/app"
	"github.com/strideshop/storefront/internal/cart/domain"
	"github.com/strideshop/storefront/internal/cart/infra/memory"
	"golang.org/x/sync/errgroup"
)

func newTestService() *app.Service {
	return app.NewService(memory.NewStore())
}

func testEntry() domain.Entry {
	return domain.Entry{
		ProductID: "1",
		Size:      9,
		Color:     "white",
		Name:      "Classic White Sneakers",
		Price:     decimal.RequireFromString("89.99"),
	}
}

func TestAddThenReadBack(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sessionID := uuid.NewString()

	if err := svc.Add(ctx, sessionID, testEntry(), 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	count, err := svc.Count(ctx, sessionID)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	subtotal, err := svc.Subtotal(ctx, sessionID)
	if err != nil {
		t.Fatalf("Subtotal failed: %v", err)
	}
	if want := decimal.RequireFromString("179.98"); !subtotal.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, subtotal)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	a := uuid.NewString()
	b := uuid.NewString()

	if err := svc.Add(ctx, a, testEntry(), 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	count, err := svc.Count(ctx, b)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart for other session, got count %d", count)
	}
}

func TestClearEmptiesSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sessionID := uuid.NewString()

	if err := svc.Add(ctx, sessionID, testEntry(), 3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Clear(ctx, sessionID); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	cart, err := svc.Cart(ctx, sessionID)
	if err != nil {
		t.Fatalf("Cart failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Lines)
	}
}

func TestConcurrentAddIncrement(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sessionID := uuid.NewString()

	const N = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			return svc.Add(ctx, sessionID, testEntry(), 1)
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Add failed: %v", err)
	}

	cart, err := svc.Cart(ctx, sessionID)
	if err != nil {
		t.Fatalf("Cart failed: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(cart.Lines))
	}
	if got := cart.Count(); got != N {
		t.Fatalf("expected quantity=%d, got=%d", N, got)
	}
}

func TestMutationsVisibleImmediately(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sessionID := uuid.NewString()

	key := testEntry().Key()

	if err := svc.Add(ctx, sessionID, testEntry(), 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.SetQuantity(ctx, sessionID, key, 5); err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	if count, _ := svc.Count(ctx, sessionID); count != 5 {
		t.Fatalf("expected count 5 right after set, got %d", count)
	}

	if err := svc.Remove(ctx, sessionID, key); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if count, _ := svc.Count(ctx, sessionID); count != 0 {
		t.Fatalf("expected count 0 right after remove, got %d", count)
	}
}
