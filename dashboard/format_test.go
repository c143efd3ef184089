package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in       *decimal.Decimal
		expected string
	}{
		{dec("1234567.891"), "$1,234,567.89"},
		{dec("1000"), "$1,000.00"},
		{dec("999.5"), "$999.50"},
		{dec("-45000"), "-$45,000.00"},
		{dec("0"), "$0.00"},
		{nil, Placeholder},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.expected {
			t.Fatalf("FormatCurrency expected %q, got %q", tc.expected, got)
		}
	}
}

func TestFormatPct(t *testing.T) {
	cases := []struct {
		in       *decimal.Decimal
		expected string
	}{
		{dec("0.125"), "12.5%"},
		{dec("12.5"), "12.5%"},
		{dec("1"), "100.0%"},
		{dec("1.5"), "1.5%"},
		{dec("0"), "0.0%"},
		{nil, Placeholder},
	}
	for _, tc := range cases {
		if got := FormatPct(tc.in); got != tc.expected {
			t.Fatalf("FormatPct expected %q, got %q", tc.expected, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "03/05/2024" {
		t.Fatalf("FormatDate expected 03/05/2024, got %q", got)
	}
	if FormatDate(nil) != Placeholder {
		t.Fatal("FormatDate(nil) expected placeholder")
	}
}

func TestSafeStr(t *testing.T) {
	v := "  East  "
	if got := SafeStr(&v); got != "East" {
		t.Fatalf("SafeStr expected East, got %q", got)
	}
	blank := "   "
	if SafeStr(&blank) != Placeholder || SafeStr(nil) != Placeholder {
		t.Fatal("SafeStr expected placeholder for blank input")
	}
}
