package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownMethod = errors.New("payment: unknown payment method")

// Method is the closed set of supported payment methods. The set is fixed at
// compile time; there is no plugin registration.
type Method int

const (
	MethodUnknown Method = iota
	MethodCash
	MethodCard
	MethodGCash
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodGCash:
		return true
	}
	return false
}

// Label returns the fixed label persisted with an order paid by this method.
func (m Method) Label() string {
	switch m {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Credit/Debit Card"
	case MethodGCash:
		return "GCash"
	}
	return ""
}

func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return m.Label()
}

// Pay settles the given amount with the chosen method and returns the label to
// record on the order. Methods are label producers, not gateways: any
// non-negative amount succeeds and no external call is made.
func Pay(m Method, amount decimal.Decimal) (string, error) {
	_ = amount
	if !m.Valid() {
		return "", ErrUnknownMethod
	}
	return m.Label(), nil
}
