package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPending = "PENDING"

type Order struct {
	ID                string
	Number            string
	Status            string
	Items             []Item
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Total             decimal.Decimal
	DeliveryMethod    string
	Form              CheckoutForm
	PlacedAt          time.Time
	EstimatedDelivery time.Time
}

type Item struct {
	ProductID string
	Name      string
	Image     string
	Size      int
	Color     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CheckoutForm carries the shipping and payment details collected by the
// checkout wizard. It is opaque to the order flow: carried on the order,
// never contract-checked.
type CheckoutForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Region        string
	ZipCode       string
	PaymentMethod string
}
