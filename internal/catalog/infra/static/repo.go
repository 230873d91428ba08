// Package static serves the built-in product catalog. It is the default
// source when no database is configured; the Postgres repo serves the same
// port for remote-backed deployments.
package static

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/catalog/app"
	"github.com/strideshop/storefront/internal/catalog/domain"
)

type Repo struct {
	products []domain.Product
}

func NewRepo() *Repo {
	return &Repo{products: seed()}
}

func (r *Repo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var allSizes = []int{7, 8, 9, 10, 11, 12}

func seed() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Classic White Sneakers",
			Category:     domain.CategorySneakers,
			Price:        price("89.99"),
			Rating:       4.8,
			Image:        "https://images.unsplash.com/photo-1631482665588-d3a6f88e65f0?fit=max&fm=jpg&q=80&w=1080",
			Colors:       []string{"white", "black", "navy"},
			Sizes:        allSizes,
			Description:  "Premium leather sneakers with superior comfort and style. Perfect for everyday wear.",
			Materials:    "Premium leather upper, rubber sole, cushioned insole",
			IsBestSeller: true,
		},
		{
			ID:           "2",
			Name:         "Comfort Leather Slides",
			Category:     domain.CategorySlides,
			Price:        price("49.99"),
			Rating:       4.6,
			Image:        "https://images.unsplash.com/photo-1625318880107-49baad6765fd?fit=max&fm=jpg&q=80&w=1080",
			Colors:       []string{"brown", "black", "tan"},
			Sizes:        allSizes,
			Description:  "Luxuriously soft slides with premium leather straps. Ultimate relaxation for your feet.",
			Materials:    "Genuine leather straps, memory foam footbed, non-slip sole",
			IsBestSeller: true,
		},
		{
			ID:           "3",
			Name:         "Performance Running Shoes",
			Category:     domain.CategorySneakers,
			Price:        price("129.99"),
			Rating:       4.9,
			Image:        "https://images.unsplash.com/photo-1765914448113-ebf0ce8cb918?fit=max&fm=jpg&q=80&w=1080",
			Colors:       []string{"red", "blue", "black"},
			Sizes:        allSizes,
			Description:  "Engineered for peak performance with advanced cushioning technology.",
			Materials:    "Breathable mesh, responsive foam midsole, durable rubber outsole",
			IsBestSeller: true,
		},
		{
			ID:          "4",
			Name:        "Executive Dress Shoes",
			Category:    domain.CategoryFormal,
			Price:       price("149.99"),
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1552422554-0d5af0c79fc6?fit=max&fm=jpg&q=80&w=1080",
			Colors:      []string{"black", "brown"},
			Sizes:       allSizes,
			Description: "Sophisticated formal shoes crafted for the modern professional.",
			Materials:   "Full-grain leather, leather sole, cushioned footbed",
		},
		{
			ID:          "5",
			Name:        "Casual Canvas Sneakers",
			Category:    domain.CategoryCasual,
			Price:       price("59.99"),
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1759527588071-e143b4a451b0?fit=max&fm=jpg&q=80&w=1080",
			Colors:      []string{"white", "black", "gray"},
			Sizes:       allSizes,
			Description: "Lightweight and versatile canvas shoes for everyday comfort.",
			Materials:   "Canvas upper, rubber sole, padded collar",
		},
		{
			ID:           "6",
			Name:         "Premium Leather Boots",
			Category:     domain.CategoryCasual,
			Price:        price("179.99"),
			Rating:       4.8,
			Image:        "https://images.unsplash.com/photo-1638158980051-f7e67291efed?fit=max&fm=jpg&q=80&w=1080",
			Colors:       []string{"brown", "black"},
			Sizes:        allSizes,
			Description:  "Rugged yet refined boots built to last season after season.",
			Materials:    "Full-grain leather, Goodyear welt construction, leather lining",
			IsBestSeller: true,
		},
		{
			ID:          "7",
			Name:        "Summer Sport Sandals",
			Category:    domain.CategorySandals,
			Price:       price("69.99"),
			Rating:      4.4,
			Image:       "https://images.unsplash.com/photo-1758179764179-955b069dd2cc?fit=max&fm=jpg&q=80&w=1080",
			Colors:      []string{"black", "navy", "khaki"},
			Sizes:       allSizes,
			Description: "Adjustable sport sandals with arch support for active lifestyles.",
			Materials:   "Synthetic straps, contoured footbed, water-resistant construction",
		},
		{
			ID:          "8",
			Name:        "Urban Street Sneakers",
			Category:    domain.CategorySneakers,
			Price:       price("99.99"),
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1631482665588-d3a6f88e65f0?fit=max&fm=jpg&q=80&w=1080",
			Colors:      []string{"white", "gray", "black"},
			Sizes:       allSizes,
			Description: "Modern design meets classic comfort in these versatile sneakers.",
			Materials:   "Leather and synthetic upper, EVA midsole, rubber outsole",
		},
	}
}
