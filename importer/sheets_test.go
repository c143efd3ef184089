package importer

import "testing"

func TestRecordGetters(t *testing.T) {
	rec := record{
		"division":    " East ",
		"balance":     "1,250.75",
		"as_of_date":  "1/31/2024",
		"count":       "12.9",
		"new_usd":     "500",
		"new_dollars": "",
	}

	if s := rec.str("division"); s == nil || *s != "East" {
		t.Fatalf("str expected East, got %v", s)
	}
	if d := rec.dec("balance"); d == nil || d.String() != "1250.75" {
		t.Fatalf("dec expected 1250.75, got %v", d)
	}
	if dt := rec.date("as_of_date"); dt == nil || dt.Format("2006-01-02") != "2024-01-31" {
		t.Fatalf("date expected 2024-01-31, got %v", dt)
	}
	if n := rec.integer("count"); n == nil || *n != 12 {
		t.Fatalf("integer expected 12, got %v", n)
	}
	// Fallback keys cover header variants.
	if d := rec.dec("new_dollars", "new_usd"); d == nil || d.String() != "500" {
		t.Fatalf("dec fallback expected 500, got %v", d)
	}
	if d := rec.dec("missing"); d != nil {
		t.Fatalf("dec on missing key expected nil, got %v", d)
	}
}

func TestRecordEmptyFor(t *testing.T) {
	rec := record{"division": "-", "balance": "", "note": "x"}
	if !rec.emptyFor([]string{"division", "balance"}) {
		t.Fatal("blank markers should count as empty")
	}
	if rec.emptyFor([]string{"division", "note"}) {
		t.Fatal("a populated field should not count as empty")
	}
}

func TestSheetRegistry_CoversWorkbookSheets(t *testing.T) {
	sheets := []string{
		"Collateral Overview",
		"AR_Metrics",
		"Aging Composition",
		"Top20_By_Total_AR",
		"FG_Inventory_Metrics",
		"Sales_GM_Trend",
		"Risk_Subfactors",
		"Composite_Index",
		"Forecast",
		"Availability Forecast",
		"Cash Forecast",
		"Cash Flow Forecast",
		"Cummulative Variance",
		"Machinery & Equipment ",
		"Collateral Limits ",
		"Ineligibles",
		"Value Trend",
	}
	for _, name := range sheets {
		if _, ok := sheetRegistry[name]; !ok {
			t.Fatalf("sheet %q missing from registry", name)
		}
	}
}

// Borrower-level reference sheets swap their rows on re-import; every
// report-scoped sheet appends.
func TestSheetRegistry_BorrowerLevelSheetsReplace(t *testing.T) {
	replacing := map[string]bool{
		"Collateral Limits ": true,
		"Ineligibles":        true,
	}
	for name, def := range sheetRegistry {
		if def.replaces != replacing[name] {
			t.Fatalf("sheet %q replaces=%v, want %v", name, def.replaces, replacing[name])
		}
	}
}

func TestSheetRegistry_KnownFieldsNormalized(t *testing.T) {
	for name, def := range sheetRegistry {
		for field := range def.knownFields() {
			if got := NormalizeHeader(field); got != field {
				t.Fatalf("sheet %q field %q is not normalized (got %q)", name, field, got)
			}
		}
	}
}
