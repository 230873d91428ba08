package rest

import (
	"net/http"
	"time"

	checkoutdomain "github.com/strideshop/storefront/internal/checkout/domain"
	orderdomain "github.com/strideshop/storefront/internal/order/domain"
	"github.com/strideshop/storefront/pkg/money"
)

type placeOrderRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Region         string `json:"region"`
	ZipCode        string `json:"zip_code"`
	PaymentMethod  string `json:"payment_method"`
	DeliveryMethod string `json:"delivery_method"`
}

type orderItemJSON struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Size      int    `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type orderJSON struct {
	Number            string          `json:"number"`
	Status            string          `json:"status"`
	Items             []orderItemJSON `json:"items"`
	Subtotal          string          `json:"subtotal"`
	Shipping          string          `json:"shipping"`
	Total             string          `json:"total"`
	TotalDisplay      string          `json:"total_display"`
	DeliveryMethod    string          `json:"delivery_method"`
	PlacedAt          string          `json:"placed_at"`
	EstimatedDelivery string          `json:"estimated_delivery"`
}

func toOrderJSON(o orderdomain.Order) orderJSON {
	items := make([]orderItemJSON, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemJSON{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.LineTotal.StringFixed(2),
		})
	}

	return orderJSON{
		Number:            o.Number,
		Status:            o.Status,
		Items:             items,
		Subtotal:          o.Subtotal.StringFixed(2),
		Shipping:          o.Shipping.StringFixed(2),
		Total:             o.Total.StringFixed(2),
		TotalDisplay:      money.Display(o.Total),
		DeliveryMethod:    o.DeliveryMethod,
		PlacedAt:          o.PlacedAt.Format(time.RFC3339),
		EstimatedDelivery: o.EstimatedDelivery.Format(time.RFC3339),
	}
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	var req placeOrderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.DeliveryMethod == "" {
		req.DeliveryMethod = string(checkoutdomain.DeliveryStandard)
	}

	// Form fields are collected but deliberately not contract-checked.
	form := orderdomain.CheckoutForm{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Region:        req.Region,
		ZipCode:       req.ZipCode,
		PaymentMethod: req.PaymentMethod,
	}

	order, err := h.orders.PlaceOrder(r.Context(), sessionID, form, checkoutdomain.DeliveryMethod(req.DeliveryMethod))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"order": toOrderJSON(order)})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.PathValue("number"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": toOrderJSON(order)})
}
