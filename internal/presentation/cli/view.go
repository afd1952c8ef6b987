package cli

import (
	"fmt"
	"strings"

	"github.com/minimart/pos-simulator/internal/domain/cart"
	"github.com/minimart/pos-simulator/internal/domain/catalog"
	"github.com/minimart/pos-simulator/internal/domain/order"
)

func renderCatalog(products []catalog.Product) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%-20s%-20s%-20s\n", "Product ID", "Name", "Price")
	fmt.Fprintln(b, strings.Repeat("=", 45))
	for _, p := range products {
		fmt.Fprintf(b, "%-20s%-20s%-20s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	return b.String()
}

func renderCart(lines []cart.Line) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%-20s%-20s%-20s%-20s\n", "Product ID", "Name", "Price", "Quantity")
	fmt.Fprintln(b, strings.Repeat("=", 67))
	for _, l := range lines {
		fmt.Fprintf(b, "%-20s%-20s%-20s%-20d\n",
			l.Product.ID, l.Product.Name, l.Product.Price.StringFixed(2), l.Quantity)
	}
	return b.String()
}

func renderOrder(o *order.Order) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Order ID: %d\n", o.ID)
	fmt.Fprintf(b, "Reference: %s\n", o.Reference)
	fmt.Fprintf(b, "Total Amount: %s\n", o.Total.StringFixed(2))
	fmt.Fprintf(b, "Payment Method: %s\n", o.PaymentMethod)
	fmt.Fprintln(b, "Order Details:")
	fmt.Fprintf(b, "%-20s%-20s%-20s%-20s\n", "Product ID", "Name", "Price", "Quantity")
	for _, l := range o.Lines {
		fmt.Fprintf(b, "%-20s%-20s%-20s%-20d\n",
			l.ProductID, l.ProductName, l.UnitPrice.StringFixed(2), l.Quantity)
	}
	return b.String()
}

func renderOrders(orders []*order.Order) string {
	if len(orders) == 0 {
		return "No orders yet.\n"
	}
	b := &strings.Builder{}
	for i, o := range orders {
		if i > 0 {
			fmt.Fprintln(b)
		}
		b.WriteString(renderOrder(o))
	}
	return b.String()
}
