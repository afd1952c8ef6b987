// Package cli is the interactive view layer. It collects user choices,
// renders the catalog, cart and orders, and calls into the checkout use case.
// All validation is done by the pure Parse* functions; re-prompt loops live
// here, not in the core.
package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minimart/pos-simulator/internal/application/checkout"
	"github.com/minimart/pos-simulator/internal/domain/cart"
	"github.com/minimart/pos-simulator/internal/domain/catalog"
	"github.com/minimart/pos-simulator/internal/domain/order"
	"github.com/minimart/pos-simulator/internal/domain/payment"
)

type screen int

const (
	screenMenu screen = iota
	screenAddProduct
	screenAddAnother
	screenCheckoutConfirm
	screenPayment
	screenReceipt
	screenOrders
)

const maxInputLen = 32

type checkoutDoneMsg struct {
	order *order.Order
	err   error
}

type ordersLoadedMsg struct {
	orders []*order.Order
	err    error
}

// Model is the bubbletea state machine driving the menu loop.
type Model struct {
	catalog *catalog.Catalog
	cart    *cart.Cart
	uc      *checkout.UseCase

	screen  screen
	input   string
	errText string
	status  string
	orders  []*order.Order
	receipt *order.Order
	busy    bool
}

func NewModel(cat *catalog.Catalog, crt *cart.Cart, uc *checkout.UseCase) Model {
	return Model{
		catalog: cat,
		cart:    crt,
		uc:      uc,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			return m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case tea.KeyRunes:
			if m.busy || len(m.input) >= maxInputLen {
				return m, nil
			}
			m.input += string(msg.Runes)
			return m, nil
		}

	case checkoutDoneMsg:
		m.busy = false
		if msg.err != nil {
			// Core rejections come back as typed errors; show them and
			// return to the menu with the cart untouched.
			m.errText = msg.err.Error()
			m.screen = screenMenu
			return m, nil
		}
		m.receipt = msg.order
		m.screen = screenReceipt
		return m, nil

	case ordersLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.screen = screenMenu
			return m, nil
		}
		m.orders = msg.orders
		m.screen = screenOrders
		return m, nil
	}
	return m, nil
}

// submit handles one Enter press for the current screen.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.input
	m.input = ""
	m.errText = ""
	m.status = ""

	switch m.screen {
	case screenMenu:
		choice, err := ParseMenuChoice(input)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		switch choice {
		case MenuViewProducts:
			m.screen = screenAddProduct
		case MenuViewCart:
			if m.cart.IsEmpty() {
				m.status = "Shopping cart is empty."
				return m, nil
			}
			m.screen = screenCheckoutConfirm
		case MenuViewOrders:
			m.busy = true
			return m, loadOrdersCmd(m.uc)
		case MenuExit:
			return m, tea.Quit
		}
		return m, nil

	case screenAddProduct:
		id := NormalizeProductID(input)
		p, err := m.catalog.FindByID(id)
		if err != nil {
			m.errText = "Product not found!"
		} else {
			m.cart.Add(p)
			m.status = "Product added successfully!"
		}
		m.screen = screenAddAnother
		return m, nil

	case screenAddAnother:
		again, err := ParseYesNo(input)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		if again {
			m.screen = screenAddProduct
		} else {
			m.screen = screenMenu
		}
		return m, nil

	case screenCheckoutConfirm:
		yes, err := ParseYesNo(input)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		if !yes {
			m.screen = screenMenu
			return m, nil
		}
		m.screen = screenPayment
		return m, nil

	case screenPayment:
		method, err := ParsePaymentChoice(input)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.busy = true
		return m, checkoutCmd(m.uc, method)

	case screenReceipt, screenOrders:
		m.screen = screenMenu
		return m, nil
	}
	return m, nil
}

func checkoutCmd(uc *checkout.UseCase, method payment.Method) tea.Cmd {
	return func() tea.Msg {
		ord, err := uc.Execute(context.Background(), method)
		return checkoutDoneMsg{order: ord, err: err}
	}
}

func loadOrdersCmd(uc *checkout.UseCase) tea.Cmd {
	return func() tea.Msg {
		orders, err := uc.ListOrders(context.Background())
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m Model) View() string {
	b := &strings.Builder{}

	switch m.screen {
	case screenMenu:
		fmt.Fprintln(b, "1. View Products")
		fmt.Fprintln(b, "2. View Shopping Cart")
		fmt.Fprintln(b, "3. View Orders")
		fmt.Fprintln(b, "4. Exit")
		m.writeNotices(b)
		fmt.Fprintf(b, "\nEnter your choice (1|2|3|4): %s", m.input)

	case screenAddProduct:
		b.WriteString(renderCatalog(m.catalog.List()))
		m.writeNotices(b)
		fmt.Fprintf(b, "\nEnter the ID of the product to add to cart: %s", m.input)

	case screenAddAnother:
		m.writeNotices(b)
		fmt.Fprintf(b, "\nAdd another product? (Y/N): %s", m.input)

	case screenCheckoutConfirm:
		b.WriteString(renderCart(m.cart.Lines()))
		m.writeNotices(b)
		fmt.Fprintf(b, "\nDo you want to check out all products? (Y/N): %s", m.input)

	case screenPayment:
		fmt.Fprintf(b, "Total Amount: %s\n", m.cart.Total().StringFixed(2))
		fmt.Fprintln(b, "\nSelect Payment Method (1: Cash, 2: Card, 3: GCash)")
		m.writeNotices(b)
		fmt.Fprintf(b, "\nEnter your choice (1|2|3): %s", m.input)
		if m.busy {
			fmt.Fprint(b, "\n\nProcessing payment...")
		}

	case screenReceipt:
		fmt.Fprintln(b, "You have successfully checked out the products!")
		fmt.Fprintln(b)
		if m.receipt != nil {
			b.WriteString(renderOrder(m.receipt))
		}
		fmt.Fprint(b, "\nPress Enter to return to the menu.")

	case screenOrders:
		b.WriteString(renderOrders(m.orders))
		fmt.Fprint(b, "\nPress Enter to return to the menu.")
	}

	fmt.Fprintln(b, "\n\nCtrl+C to quit.")
	return b.String()
}

func (m Model) writeNotices(b *strings.Builder) {
	if m.errText != "" {
		fmt.Fprintf(b, "\nError: %s\n", m.errText)
	}
	if m.status != "" {
		fmt.Fprintf(b, "\n%s\n", m.status)
	}
}
