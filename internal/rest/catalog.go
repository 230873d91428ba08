package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	catalogapp "github.com/strideshop/storefront/internal/catalog/app"
	catalogdomain "github.com/strideshop/storefront/internal/catalog/domain"
	"github.com/strideshop/storefront/pkg/money"
)

type productJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Price        string   `json:"price"`
	PriceDisplay string   `json:"price_display"`
	Rating       float64  `json:"rating"`
	Image        string   `json:"image"`
	Colors       []string `json:"colors"`
	Sizes        []int    `json:"sizes"`
	Description  string   `json:"description"`
	Materials    string   `json:"materials"`
	IsBestSeller bool     `json:"is_best_seller"`
}

func toProductJSON(p catalogdomain.Product) productJSON {
	return productJSON{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		Price:        p.Price.StringFixed(2),
		PriceDisplay: money.Display(p.Price),
		Rating:       p.Rating,
		Image:        p.Image,
		Colors:       p.Colors,
		Sizes:        p.Sizes,
		Description:  p.Description,
		Materials:    p.Materials,
		IsBestSeller: p.IsBestSeller,
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": out, "total": len(out)})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": toProductJSON(p)})
}

func (h *Handler) relatedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.RelatedProducts(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": out})
}

func parseFilter(r *http.Request) (catalogapp.Filter, error) {
	q := r.URL.Query()
	f := catalogapp.Filter{
		Category: q.Get("category"),
		Color:    q.Get("color"),
		SortBy:   q.Get("sort"),
	}

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return catalogapp.Filter{}, fmt.Errorf("%w: size must be a number", errBadRequest)
		}
		f.Size = size
	}

	if v := q.Get("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return catalogapp.Filter{}, fmt.Errorf("%w: min_price must be a number", errBadRequest)
		}
		f.MinPrice = &d
	}

	if v := q.Get("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return catalogapp.Filter{}, fmt.Errorf("%w: max_price must be a number", errBadRequest)
		}
		f.MaxPrice = &d
	}

	return f, nil
}
