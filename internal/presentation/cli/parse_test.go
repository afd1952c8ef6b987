package cli

import (
	"testing"

	"github.com/minimart/pos-simulator/internal/domain/payment"
)

func TestParseMenuChoice(t *testing.T) {
	cases := []struct {
		in   string
		want MenuChoice
		ok   bool
	}{
		{"1", MenuViewProducts, true},
		{"2", MenuViewCart, true},
		{"3", MenuViewOrders, true},
		{"4", MenuExit, true},
		{" 2 ", MenuViewCart, true},
		{"", 0, false},
		{"5", 0, false},
		{"0", 0, false},
		{"12", 0, false},
		{"x", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMenuChoice(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: expected %v, got %v err=%v", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected an error", tc.in)
		}
	}
}

func TestParseYesNo(t *testing.T) {
	for _, in := range []string{"Y", "y", " y "} {
		got, err := ParseYesNo(in)
		if err != nil || !got {
			t.Fatalf("%q: expected yes, got %v err=%v", in, got, err)
		}
	}
	for _, in := range []string{"N", "n"} {
		got, err := ParseYesNo(in)
		if err != nil || got {
			t.Fatalf("%q: expected no, got %v err=%v", in, got, err)
		}
	}
	for _, in := range []string{"", "yes", "maybe", "0"} {
		if _, err := ParseYesNo(in); err == nil {
			t.Fatalf("%q: expected an error", in)
		}
	}
}

func TestParsePaymentChoice(t *testing.T) {
	cases := []struct {
		in   string
		want payment.Method
		ok   bool
	}{
		{"1", payment.MethodCash, true},
		{"2", payment.MethodCard, true},
		{"3", payment.MethodGCash, true},
		{"4", payment.MethodUnknown, false},
		{"0", payment.MethodUnknown, false},
		{"", payment.MethodUnknown, false},
		{"cash", payment.MethodUnknown, false},
	}
	for _, tc := range cases {
		got, err := ParsePaymentChoice(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: expected %v, got %v err=%v", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected an error", tc.in)
		}
	}
}

func TestNormalizeProductID(t *testing.T) {
	if got := NormalizeProductID(" qwe\n"); got != "QWE" {
		t.Fatalf("expected QWE, got %q", got)
	}
}
