package importer

import (
	"testing"
	"time"
)

func TestToDecimal(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"20000", "20000"},
		{"20,000.50", "20000.5"},
		{"$1,234", "1234"},
		{"(500)", "-500"},
		{"($1,500.25)", "-1500.25"},
		{"12.5%", "0.125"},
		{"(3%)", "-0.03"},
		{"1.23E+5", "123000"},
		{"-42", "-42"},
	}
	for _, tc := range cases {
		d := toDecimal(tc.in)
		if d == nil {
			t.Fatalf("toDecimal(%q) returned nil", tc.in)
		}
		if d.String() != tc.expected {
			t.Fatalf("toDecimal(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
}

func TestToDecimal_BlankAndJunk(t *testing.T) {
	for _, in := range []string{"", "-", "NaN", "None", "abc", "12abc"} {
		if d := toDecimal(in); d != nil {
			t.Fatalf("toDecimal(%q) expected nil, got %s", in, d.String())
		}
	}
}

func TestToInt_TruncatesFraction(t *testing.T) {
	n := toInt("1,234.9")
	if n == nil || *n != 1234 {
		t.Fatalf("toInt(1,234.9) expected 1234, got %v", n)
	}
	if toInt("-") != nil {
		t.Fatal("toInt(-) expected nil")
	}
}

func TestToDate_Serial(t *testing.T) {
	// 45292 is 2024-01-01 against the 1899-12-30 epoch.
	d := toDate("45292")
	if d == nil {
		t.Fatal("toDate(45292) returned nil")
	}
	expected := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(expected) {
		t.Fatalf("toDate(45292) expected %s, got %s", expected, d)
	}
	// Small numbers are amounts, not dates.
	if toDate("1234") != nil {
		t.Fatal("toDate(1234) expected nil outside the serial window")
	}
}

func TestToDate_Layouts(t *testing.T) {
	cases := []struct {
		in       string
		expected time.Time
	}{
		{"1/31/2024", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 2, 2024", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		// Leading token above 12 forces day-first order.
		{"31/1/2024", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		d := toDate(tc.in)
		if d == nil {
			t.Fatalf("toDate(%q) returned nil", tc.in)
		}
		if !d.Equal(tc.expected) {
			t.Fatalf("toDate(%q) expected %s, got %s", tc.in, tc.expected, d)
		}
	}
	if toDate("not a date") != nil {
		t.Fatal("toDate(not a date) expected nil")
	}
}

func TestToString(t *testing.T) {
	s := toString("  East  ")
	if s == nil || *s != "East" {
		t.Fatalf("toString expected East, got %v", s)
	}
	if toString("—") != nil {
		t.Fatal("toString(—) expected nil")
	}
}
