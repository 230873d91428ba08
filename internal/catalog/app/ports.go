package app

import (
	"context"

	"github.com/strideshop/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
}
