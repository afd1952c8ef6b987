package cart

import (
	"github.com/shopspring/decimal"

	"github.com/minimart/pos-simulator/internal/domain/catalog"
)

// Line is one cart entry: a product and how many of it the customer wants.
// There is at most one Line per product ID.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal returns price * quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the per-session mutable collection of chosen products. Lines keep
// insertion order. Growth is unbounded; the caller decides when to stop adding.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts the product in the cart, incrementing the quantity when a line for
// the same product ID already exists.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Lines returns a read-only snapshot of the cart in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total sums price * quantity over all lines. Decimal arithmetic keeps the
// result exact no matter how many additions preceded it.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}
