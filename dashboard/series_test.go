package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeSeries_PadsShortSeries(t *testing.T) {
	values := []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)}
	got := NormalizeSeries(values, decimal.NewFromInt(3))
	expected := []string{"10", "10", "10", "10", "20"}
	if len(got) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i].String() != expected[i] {
			t.Fatalf("point %d expected %s, got %s", i, expected[i], got[i].String())
		}
	}
}

func TestNormalizeSeries_EmptyUsesFallback(t *testing.T) {
	got := NormalizeSeries(nil, decimal.NewFromInt(3))
	if len(got) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got))
	}
	for i, v := range got {
		if v.String() != "3" {
			t.Fatalf("point %d expected fallback 3, got %s", i, v.String())
		}
	}
}

func TestNormalizeSeries_KeepsMostRecent(t *testing.T) {
	var values []decimal.Decimal
	for i := 1; i <= 8; i++ {
		values = append(values, decimal.NewFromInt(int64(i)))
	}
	got := NormalizeSeries(values, decimal.Zero)
	expected := []string{"4", "5", "6", "7", "8"}
	for i := range expected {
		if got[i].String() != expected[i] {
			t.Fatalf("point %d expected %s, got %s", i, expected[i], got[i].String())
		}
	}
}

func TestSeriesLabels(t *testing.T) {
	labels := SeriesLabels()
	expected := []string{"01", "02", "03", "04", "05"}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("label %d expected %s, got %s", i, expected[i], labels[i])
		}
	}
}
