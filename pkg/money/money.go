// Package money carries the storefront's currency conventions. Amounts are
// decimal values in Ghana Cedis; formatting is display-only and never feeds
// back into stored amounts.
package money

import "github.com/shopspring/decimal"

// Currency is the display label used across the storefront.
const Currency = "GHS"

// DisplayDecimals is the default precision for rendered prices.
const DisplayDecimals = 2

// Format renders an amount as "GHS 89.99". A negative decimals value skips
// rounding and renders the amount exactly as stored.
func Format(amount decimal.Decimal, decimals int32) string {
	if decimals < 0 {
		return Currency + " " + amount.String()
	}
	return Currency + " " + amount.StringFixed(decimals)
}

// Display renders an amount at the default precision.
func Display(amount decimal.Decimal) string {
	return Format(amount, DisplayDecimals)
}
