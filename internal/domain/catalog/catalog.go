package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("catalog: product not found")

// Product is an immutable catalog entry. Identity is the ID.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Catalog is the fixed set of purchasable products. It is populated once at
// construction and never mutated afterwards.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products ...Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the stationery catalog the simulator ships with.
func Default() *Catalog {
	return New(
		Product{ID: "QWE", Name: "Paper", Price: decimal.RequireFromString("20.50")},
		Product{ID: "ASD", Name: "Pencil", Price: decimal.RequireFromString("10.45")},
		Product{ID: "ZXC", Name: "Sharpener", Price: decimal.RequireFromString("10.99")},
		Product{ID: "RTY", Name: "Ballpen", Price: decimal.RequireFromString("30.25")},
		Product{ID: "FGH", Name: "Ruler", Price: decimal.RequireFromString("99.99")},
	)
}

// List returns the products in their fixed display order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) FindByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}
