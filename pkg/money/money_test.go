package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	t.Run("default precision", func(t *testing.T) {
		got := Display(decimal.RequireFromString("89.99"))
		if got != "GHS 89.99" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("rounds to requested decimals", func(t *testing.T) {
		got := Format(decimal.RequireFromString("120.5"), 0)
		if got != "GHS 121" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("negative decimals keeps stored value", func(t *testing.T) {
		got := Format(decimal.RequireFromString("10.125"), -1)
		if got != "GHS 10.125" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("pads to two decimals", func(t *testing.T) {
		got := Display(decimal.NewFromInt(150))
		if got != "GHS 150.00" {
			t.Fatalf("got %q", got)
		}
	})
}
