package cli

import (
	"errors"
	"strings"

	"github.com/minimart/pos-simulator/internal/domain/payment"
)

// MenuChoice is one of the main menu entries.
type MenuChoice int

const (
	MenuViewProducts MenuChoice = iota + 1
	MenuViewCart
	MenuViewOrders
	MenuExit
)

var (
	errMenuChoice    = errors.New("invalid input: enter a single digit between 1 and 4")
	errYesNo         = errors.New("invalid input: enter 'Y' or 'N'")
	errPaymentChoice = errors.New("invalid input: enter a single digit between 1 and 3")
)

// ParseMenuChoice validates a main menu selection. It is pure: the caller
// decides whether to re-prompt.
func ParseMenuChoice(input string) (MenuChoice, error) {
	s := strings.TrimSpace(input)
	if len(s) != 1 {
		return 0, errMenuChoice
	}
	switch s {
	case "1":
		return MenuViewProducts, nil
	case "2":
		return MenuViewCart, nil
	case "3":
		return MenuViewOrders, nil
	case "4":
		return MenuExit, nil
	}
	return 0, errMenuChoice
}

// ParseYesNo validates a Y/N answer, case-insensitively.
func ParseYesNo(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, errYesNo
}

// ParsePaymentChoice maps a 1|2|3 selection onto the closed payment method
// set.
func ParsePaymentChoice(input string) (payment.Method, error) {
	s := strings.TrimSpace(input)
	if len(s) != 1 {
		return payment.MethodUnknown, errPaymentChoice
	}
	switch s {
	case "1":
		return payment.MethodCash, nil
	case "2":
		return payment.MethodCard, nil
	case "3":
		return payment.MethodGCash, nil
	}
	return payment.MethodUnknown, errPaymentChoice
}

// NormalizeProductID uppercases a typed product ID the way the catalog keys
// its products.
func NormalizeProductID(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
