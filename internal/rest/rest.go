// Package rest is the storefront's HTTP surface. Handlers validate at this
// boundary and translate app-level sentinels into one status mapping; the
// cart core below stays total.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	cartapp "github.com/strideshop/storefront/internal/cart/app"
	catalogapp "github.com/strideshop/storefront/internal/catalog/app"
	checkoutapp "github.com/strideshop/storefront/internal/checkout/app"
	orderapp "github.com/strideshop/storefront/internal/order/app"
)

const sessionCookie = "stride_session"

// errBadRequest marks boundary validation failures (missing size, bad JSON).
var errBadRequest = errors.New("bad request")

type Handler struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	log      *slog.Logger
}

func NewHandler(
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	checkout *checkoutapp.Service,
	orders *orderapp.Service,
	log *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		log:      log,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.HandleFunc("GET /api/products/{id}/related", h.relatedProducts)

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/items", h.setCartItemQuantity)
	mux.HandleFunc("DELETE /api/cart/items", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)

	mux.HandleFunc("POST /api/checkout/quote", h.quote)

	mux.HandleFunc("POST /api/orders", h.placeOrder)
	mux.HandleFunc("GET /api/orders/{number}", h.getOrder)

	return mux
}

// sessionID reads the cart session cookie, issuing one on first contact.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// statusFor maps app-level errors onto HTTP statuses. Every handler goes
// through this one table so the API fails consistently.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", slog.Any("err", err))
		// Internal detail stays out of the response body.
		writeJSON(w, status, errorBody(code, "internal error"))
		return
	}
	writeJSON(w, status, errorBody(code, err.Error()))
}

func errorBody(code, message string) map[string]any {
	return map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}
