package rest

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	cartdomain "github.com/strideshop/storefront/internal/cart/domain"
	checkoutdomain "github.com/strideshop/storefront/internal/checkout/domain"
	"github.com/strideshop/storefront/pkg/money"
)

type cartItemJSON struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Size         int    `json:"size"`
	Color        string `json:"color"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	LineTotal    string `json:"line_total"`
	LineDisplay  string `json:"line_total_display"`
	PriceDisplay string `json:"unit_price_display"`
}

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      int    `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	cart, err := h.cart.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeCart(w, cart)
}

// addCartItem resolves the product and validates the variant selection here
// at the boundary; the cart core accepts whatever key it is given.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if req.Size == 0 {
		h.writeError(w, fmt.Errorf("%w: please select a size", errBadRequest))
		return
	}
	if req.Color == "" {
		h.writeError(w, fmt.Errorf("%w: please select a color", errBadRequest))
		return
	}
	if !product.HasSize(req.Size) {
		h.writeError(w, fmt.Errorf("%w: size %d is not available for this product", errBadRequest, req.Size))
		return
	}
	if !product.HasColor(req.Color) {
		h.writeError(w, fmt.Errorf("%w: color %q is not available for this product", errBadRequest, req.Color))
		return
	}

	entry := cartdomain.Entry{
		ProductID: product.ID,
		Size:      req.Size,
		Color:     req.Color,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
	}

	if err := h.cart.Add(r.Context(), sessionID, entry, req.Quantity); err != nil {
		h.writeError(w, err)
		return
	}

	cart, err := h.cart.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	key := cartdomain.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	if err := h.cart.SetQuantity(r.Context(), sessionID, key, req.Quantity); err != nil {
		h.writeError(w, err)
		return
	}

	cart, err := h.cart.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	key := cartdomain.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	if err := h.cart.Remove(r.Context(), sessionID, key); err != nil {
		h.writeError(w, err)
		return
	}

	cart, err := h.cart.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	if err := h.cart.Clear(r.Context(), sessionID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeCart(w, cartdomain.Cart{})
}

// writeCart renders the cart with a standard-delivery total preview using
// the same shipping formula as checkout, so the two summaries agree.
func (h *Handler) writeCart(w http.ResponseWriter, cart cartdomain.Cart) {
	items := make([]cartItemJSON, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		items = append(items, cartItemJSON{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Image:        l.Image,
			Size:         l.Size,
			Color:        l.Color,
			Quantity:     l.Quantity,
			UnitPrice:    l.Price.StringFixed(2),
			LineTotal:    lineTotal.StringFixed(2),
			LineDisplay:  money.Display(lineTotal),
			PriceDisplay: money.Display(l.Price),
		})
	}

	subtotal := cart.Subtotal()
	shipping := decimal.Zero
	if !cart.IsEmpty() {
		shipping = checkoutdomain.ShippingCost(subtotal, checkoutdomain.DeliveryStandard)
	}
	total := subtotal.Add(shipping)

	writeJSON(w, http.StatusOK, map[string]any{
		"items":            items,
		"count":            cart.Count(),
		"subtotal":         subtotal.StringFixed(2),
		"subtotal_display": money.Display(subtotal),
		"shipping":         shipping.StringFixed(2),
		"total":            total.StringFixed(2),
		"total_display":    money.Display(total),
	})
}
