package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/catalog/app"
	"github.com/strideshop/storefront/internal/catalog/domain"
)

type ProductRepo struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// productRow mirrors the remote products table, which predates the catalog
// schema: the category may live in a legacy "gender" column, and array
// columns may be null.
type productRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Gender       sql.NullString  `db:"gender"`
	Category     sql.NullString  `db:"category"`
	Price        decimal.Decimal `db:"price"`
	Rating       sql.NullFloat64 `db:"rating"`
	ImageURL     sql.NullString  `db:"image_url"`
	Colors       pq.StringArray  `db:"colors"`
	Sizes        pq.Int64Array   `db:"sizes"`
	Description  sql.NullString  `db:"description"`
	Materials    sql.NullString  `db:"materials"`
	IsBestSeller sql.NullBool    `db:"is_best_seller"`
}

const selectColumns = `
	id, name, gender, category, price, rating, image_url,
	colors, sizes, description, materials, is_best_seller
`

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	query := `SELECT ` + selectColumns + ` FROM products ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	var row productRow
	query := `SELECT ` + selectColumns + ` FROM products WHERE id = $1 LIMIT 1`
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func toDomain(row productRow) domain.Product {
	category := domain.Category(row.Gender.String)
	if !category.Valid() {
		category = domain.Category(row.Category.String)
	}
	if !category.Valid() {
		category = domain.CategoryCasual
	}

	colors := []string(row.Colors)
	if len(colors) == 0 {
		colors = []string{"black"}
	}

	sizes := make([]int, 0, len(row.Sizes))
	for _, s := range row.Sizes {
		sizes = append(sizes, int(s))
	}
	if len(sizes) == 0 {
		sizes = []int{7, 8, 9, 10, 11, 12}
	}

	return domain.Product{
		ID:           row.ID,
		Name:         row.Name,
		Category:     category,
		Price:        row.Price,
		Rating:       row.Rating.Float64,
		Image:        row.ImageURL.String,
		Colors:       colors,
		Sizes:        sizes,
		Description:  row.Description.String,
		Materials:    row.Materials.String,
		IsBestSeller: row.IsBestSeller.Bool,
	}
}
