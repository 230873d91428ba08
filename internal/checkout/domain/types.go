package domain

import "github.com/shopspring/decimal"

type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryExpress  DeliveryMethod = "express"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryStandard || m == DeliveryExpress
}

// Shipping rates in GHS. Standard delivery is free at or above the
// threshold; express is a flat rate regardless of subtotal.
var (
	FreeShippingThreshold = decimal.NewFromInt(100)
	StandardRate          = decimal.NewFromInt(10)
	ExpressRate           = decimal.NewFromInt(20)
)

// ShippingCost is the one shipping formula. Every surface that shows an
// order total must go through it so the cart and checkout summaries can
// never disagree.
func ShippingCost(subtotal decimal.Decimal, method DeliveryMethod) decimal.Decimal {
	if method == DeliveryExpress {
		return ExpressRate
	}
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return StandardRate
}

type QuoteLine struct {
	ProductID string
	Size      int
	Color     string
	Name      string
	Image     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines    []QuoteLine
	Method   DeliveryMethod
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
