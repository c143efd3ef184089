package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) *decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &v
}

func TestFGInlineExcessByCategoryRow_BeforeSaveDerivesTotals(t *testing.T) {
	row := FGInlineExcessByCategoryRow{
		NewDollars:     d("100"),
		InlineDollars:  d("300"),
		ExcessDollars:  d("50"),
		NoSalesDollars: d("50"),
	}
	if err := row.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}

	if row.TotalInlineDollars.String() != "400" {
		t.Fatalf("total inline expected 400, got %s", row.TotalInlineDollars)
	}
	if row.TotalExcessDollars.String() != "100" {
		t.Fatalf("total excess expected 100, got %s", row.TotalExcessDollars)
	}
	if row.TotalDollars.String() != "500" {
		t.Fatalf("total expected 500, got %s", row.TotalDollars)
	}
	if row.NewPct.String() != "0.2" {
		t.Fatalf("new pct expected 0.2, got %s", row.NewPct)
	}
	if row.TotalInlinePct.String() != "0.8" {
		t.Fatalf("total inline pct expected 0.8, got %s", row.TotalInlinePct)
	}
	if row.TotalPct.String() != "1" {
		t.Fatalf("total pct expected 1, got %s", row.TotalPct)
	}
}

func TestFGInlineExcessByCategoryRow_BeforeSaveZeroTotal(t *testing.T) {
	var row FGInlineExcessByCategoryRow
	if err := row.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}
	if row.TotalDollars.Sign() != 0 {
		t.Fatalf("empty row expected zero total, got %s", row.TotalDollars)
	}
	if row.NewPct.Sign() != 0 || row.TotalPct.Sign() != 0 {
		t.Fatal("empty row expected zero percentages")
	}
}
