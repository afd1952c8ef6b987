package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	products := c.List()
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	if products[0].ID != "QWE" || products[0].Name != "Paper" {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if !products[0].Price.Equal(decimal.RequireFromString("20.50")) {
		t.Fatalf("unexpected price: %s", products[0].Price)
	}
}

func TestFindByID(t *testing.T) {
	c := Default()
	p, err := c.FindByID("ZXC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Sharpener" {
		t.Fatalf("expected Sharpener, got %s", p.Name)
	}

	if _, err := c.FindByID("NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := Default()
	first := c.List()
	first[0].Name = "mutated"
	if c.List()[0].Name != "Paper" {
		t.Fatalf("catalog was mutated through List result")
	}
}

func TestNewSkipsDuplicateIDs(t *testing.T) {
	c := New(
		Product{ID: "A", Name: "first", Price: decimal.NewFromInt(1)},
		Product{ID: "A", Name: "second", Price: decimal.NewFromInt(2)},
	)
	if len(c.List()) != 1 {
		t.Fatalf("expected duplicate id to be skipped, got %d products", len(c.List()))
	}
	p, err := c.FindByID("A")
	if err != nil || p.Name != "first" {
		t.Fatalf("expected first entry to win, got %+v err=%v", p, err)
	}
}
