package app

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Sort orders accepted by ListProducts. SortFeatured keeps catalog order.
const (
	SortFeatured    = "featured"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortNew         = "new"
	SortBestSellers = "best-sellers"
)

const relatedLimit = 4

// Filter narrows and orders a product listing. Zero values mean "all".
type Filter struct {
	Category string
	Size     int
	Color    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string
}

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListProducts applies the filter to the catalog and orders the result.
// Filtering is stable: products that survive keep their catalog order
// unless a sort is requested.
func (s *Service) ListProducts(ctx context.Context, f Filter) ([]domain.Product, error) {
	if f.SortBy != "" && !validSort(f.SortBy) {
		return nil, ErrInvalidInput
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}

	applySort(out, f.SortBy)
	return out, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// RelatedProducts returns up to four products sharing the subject's
// category, excluding the subject itself.
func (s *Service) RelatedProducts(ctx context.Context, id string) ([]domain.Product, error) {
	subject, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, relatedLimit)
	for _, p := range all {
		if p.ID == subject.ID || p.Category != subject.Category {
			continue
		}
		out = append(out, p)
		if len(out) == relatedLimit {
			break
		}
	}
	return out, nil
}

func (s *Service) BestSellers(ctx context.Context) ([]domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range all {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p domain.Product, f Filter) bool {
	if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
		return false
	}
	if f.Size != 0 && !p.HasSize(f.Size) {
		return false
	}
	if f.Color != "" && f.Color != "all" && !p.HasColor(f.Color) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func applySort(products []domain.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortNew:
		// Newest products sit at the end of the catalog.
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	case SortBestSellers:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsBestSeller && !products[j].IsBestSeller
		})
	}
}

func validSort(sortBy string) bool {
	switch sortBy {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortNew, SortBestSellers:
		return true
	}
	return false
}
