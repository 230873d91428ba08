package domain

import "github.com/shopspring/decimal"

// LineKey is the natural key of a cart line. Two lines are the same line
// iff product, size and color all match; a different size or color of the
// same product is a new line.
type LineKey struct {
	ProductID string
	Size      int
	Color     string
}

type LineItem struct {
	LineKey
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

// Entry is a candidate line without a quantity; adding one entry means
// adding one unit.
type Entry struct {
	ProductID string
	Size      int
	Color     string
	Name      string
	Price     decimal.Decimal
	Image     string
}

func (e Entry) Key() LineKey {
	return LineKey{ProductID: e.ProductID, Size: e.Size, Color: e.Color}
}

// Cart holds line items in insertion order. Mutations never re-sort;
// incrementing an existing line leaves its position unchanged.
type Cart struct {
	Lines []LineItem
}

// Add merges qty units of the entry into the cart. A line with the same key
// is incremented in place; otherwise a new line is appended. qty below one
// is treated as one, so N calls with the same key leave the same state as a
// single call with qty N.
func (c *Cart) Add(e Entry, qty int) {
	if qty < 1 {
		qty = 1
	}

	key := e.Key()
	for i := range c.Lines {
		if c.Lines[i].LineKey == key {
			c.Lines[i].Quantity += qty
			return
		}
	}

	c.Lines = append(c.Lines, LineItem{
		LineKey:  key,
		Name:     e.Name,
		Price:    e.Price,
		Image:    e.Image,
		Quantity: qty,
	})
}

// Remove deletes the line matching key. Absent keys are a no-op.
func (c *Cart) Remove(key LineKey) {
	for i := range c.Lines {
		if c.Lines[i].LineKey == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the matching line's quantity to exactly n. A non-positive
// n removes the line, matching the decrement-to-zero affordance. Absent keys
// are a no-op.
func (c *Cart) SetQuantity(key LineKey, n int) {
	if n <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].LineKey == key {
			c.Lines[i].Quantity = n
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Count is the total unit count across lines, recomputed on every call.
func (c Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity at full decimal precision.
// Rounding is left to the display layer.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Clone returns a cart whose line slice shares nothing with the receiver.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]LineItem, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
