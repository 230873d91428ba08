package static_test

import (
	"context"
	"errors"
	"testing"

	"github.com/strideshop/storefront/internal/catalog/app"
	"github.com/strideshop/storefront/internal/catalog/infra/static"
)

func TestSeedCatalog(t *testing.T) {
	repo := static.NewRepo()
	ctx := context.Background()

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 8 {
		t.Fatalf("expected 8 seeded products, got %d", len(products))
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if !p.Category.Valid() {
			t.Errorf("product %s: invalid category %q", p.ID, p.Category)
		}
		if p.Price.IsZero() || p.Price.IsNegative() {
			t.Errorf("product %s: bad price %s", p.ID, p.Price)
		}
		if len(p.Colors) == 0 || len(p.Sizes) == 0 {
			t.Errorf("product %s: missing variants", p.ID)
		}
	}
}

func TestSeedListCopies(t *testing.T) {
	repo := static.NewRepo()
	ctx := context.Background()

	first, _ := repo.List(ctx)
	first[0].Name = "mutated"

	second, _ := repo.List(ctx)
	if second[0].Name == "mutated" {
		t.Fatal("List leaked internal slice")
	}
}

func TestSeedGet(t *testing.T) {
	repo := static.NewRepo()
	ctx := context.Background()

	p, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Classic White Sneakers" {
		t.Fatalf("got %q", p.Name)
	}

	if _, err := repo.Get(ctx, "999"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
