package rest

import (
	"net/http"

	checkoutdomain "github.com/strideshop/storefront/internal/checkout/domain"
	"github.com/strideshop/storefront/pkg/money"
)

type quoteRequest struct {
	DeliveryMethod string `json:"delivery_method"`
}

type quoteLineJSON struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      int    `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type quoteJSON struct {
	Lines           []quoteLineJSON `json:"lines"`
	DeliveryMethod  string          `json:"delivery_method"`
	Subtotal        string          `json:"subtotal"`
	Shipping        string          `json:"shipping"`
	Total           string          `json:"total"`
	SubtotalDisplay string          `json:"subtotal_display"`
	ShippingDisplay string          `json:"shipping_display"`
	TotalDisplay    string          `json:"total_display"`
	FreeShipping    bool            `json:"free_shipping"`
}

func toQuoteJSON(q checkoutdomain.Quote) quoteJSON {
	lines := make([]quoteLineJSON, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quoteLineJSON{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      l.Size,
			Color:     l.Color,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}

	return quoteJSON{
		Lines:           lines,
		DeliveryMethod:  string(q.Method),
		Subtotal:        q.Subtotal.StringFixed(2),
		Shipping:        q.Shipping.StringFixed(2),
		Total:           q.Total.StringFixed(2),
		SubtotalDisplay: money.Display(q.Subtotal),
		ShippingDisplay: money.Display(q.Shipping),
		TotalDisplay:    money.Display(q.Total),
		FreeShipping:    q.Shipping.IsZero(),
	}
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	var req quoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.DeliveryMethod == "" {
		req.DeliveryMethod = string(checkoutdomain.DeliveryStandard)
	}

	q, err := h.checkout.Quote(r.Context(), sessionID, checkoutdomain.DeliveryMethod(req.DeliveryMethod))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"quote": toQuoteJSON(q)})
}
