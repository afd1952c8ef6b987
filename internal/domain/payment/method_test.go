package payment

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPayLabels(t *testing.T) {
	cases := []struct {
		method Method
		label  string
	}{
		{MethodCash, "Cash"},
		{MethodCard, "Credit/Debit Card"},
		{MethodGCash, "GCash"},
	}
	amount := decimal.RequireFromString("41.00")
	for _, tc := range cases {
		got, err := Pay(tc.method, amount)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.method, err)
		}
		if got != tc.label {
			t.Fatalf("%v: expected label %q, got %q", tc.method, tc.label, got)
		}
	}
}

func TestPayDeterministic(t *testing.T) {
	a, _ := Pay(MethodCash, decimal.Zero)
	b, _ := Pay(MethodCash, decimal.RequireFromString("99999.99"))
	if a != b {
		t.Fatalf("label should not depend on amount: %q vs %q", a, b)
	}
}

func TestPayUnknownMethod(t *testing.T) {
	for _, m := range []Method{MethodUnknown, Method(42), Method(-1)} {
		if _, err := Pay(m, decimal.NewFromInt(1)); !errors.Is(err, ErrUnknownMethod) {
			t.Fatalf("method %d: expected ErrUnknownMethod, got %v", m, err)
		}
	}
}

func TestMethodValid(t *testing.T) {
	if MethodUnknown.Valid() {
		t.Fatalf("MethodUnknown should not be valid")
	}
	for _, m := range []Method{MethodCash, MethodCard, MethodGCash} {
		if !m.Valid() {
			t.Fatalf("method %v should be valid", m)
		}
	}
}
