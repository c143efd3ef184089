package importer

import "testing"

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Net Sales", "net_sales"},
		{"GrossMarginPct", "gross_margin_pct"},
		{"% Past Due", "pct_past_due"},
		{"$ Limit", "usd_limit"},
		{"Collateral Sub-Type", "collateral_sub_type"},
		{"FG_%Cost", "fg_pct_cost"},
		{"TrendTTMPct", "trend_ttm_pct"},
		{"Trend3MPct", "trend_3_m_pct"},
		{"0-30", "col_0_30"},
		{"Week 1", "week_1"},
		{"FG + WIP", "fg_plus_wip"},
		{"Balance (USD)", "balance_usd"},
		{"  As of Date  ", "as_of_date"},
	}
	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.expected {
			t.Fatalf("NormalizeHeader(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	inputs := []string{"Net Sales", "GrossMarginPct", "% Past Due", "0-30", "Collateral Sub-Type"}
	for _, in := range inputs {
		once := NormalizeHeader(in)
		if twice := NormalizeHeader(once); twice != once {
			t.Fatalf("NormalizeHeader(%q) not idempotent: %q -> %q", in, once, twice)
		}
	}
}

func TestIsBlank(t *testing.T) {
	blanks := []string{"", "  ", "-", "NaN", "None", "–", "—"}
	for _, v := range blanks {
		if !isBlank(v) {
			t.Fatalf("isBlank(%q) expected true", v)
		}
	}
	if isBlank("0") || isBlank("n/a value") {
		t.Fatal("isBlank matched a non-blank value")
	}
}

func TestMakeUniqueHeaders(t *testing.T) {
	got := makeUniqueHeaders([]string{"Division", "Balance", "Balance", "", "Balance"})
	expected := []string{"division", "balance", "balance_2", "unnamed", "balance_3"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("makeUniqueHeaders[%d] expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestApplyHeaderAliases_StripsGroupPrefix(t *testing.T) {
	known := map[string]struct{}{"net_sales": {}, "balance": {}}
	got := applyHeaderAliases([]string{"forecast_net_sales", "actual_balance", "budget_other"}, known)
	if got[0] != "net_sales" {
		t.Fatalf("expected forecast_net_sales -> net_sales, got %q", got[0])
	}
	if got[1] != "balance" {
		t.Fatalf("expected actual_balance -> balance, got %q", got[1])
	}
	if got[2] != "budget_other" {
		t.Fatalf("unknown stripped name should stay prefixed, got %q", got[2])
	}
}

func TestApplyHeaderAliases_KeepsTakenNames(t *testing.T) {
	known := map[string]struct{}{"net_sales": {}}
	got := applyHeaderAliases([]string{"net_sales", "forecast_net_sales"}, known)
	if got[1] != "forecast_net_sales" {
		t.Fatalf("stripping onto an existing column must not happen, got %q", got[1])
	}
}

func TestFindHeaderRows_PrefersMatchingRow(t *testing.T) {
	known := map[string]struct{}{"net_sales": {}, "as_of_date": {}, "division": {}}
	rows := [][]string{
		{"Acme Manufacturing", "", ""},
		{"", "", ""},
		{"Division", "AsOfDate", "Net Sales"},
		{"East", "1/31/2024", "120000"},
	}
	got := findHeaderRows(rows, known, -1)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected header row [2], got %v", got)
	}
}

func TestFindHeaderRows_FoldsGroupRow(t *testing.T) {
	known := map[string]struct{}{"week_1": {}, "week_2": {}, "category": {}}
	rows := [][]string{
		{"Forecast", "Forecast", "Forecast"},
		{"Category", "Week 1", "Week 2"},
		{"Receipts", "100", "200"},
	}
	got := findHeaderRows(rows, known, -1)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("expected group+header rows [0 1], got %v", got)
	}
}

func TestFindHeaderRows_HintOverridesScan(t *testing.T) {
	known := map[string]struct{}{"category": {}}
	rows := [][]string{
		{"ignored", "ignored"},
		{"Category", "Total"},
	}
	got := findHeaderRows(rows, known, 1)
	if len(got) == 0 || got[len(got)-1] != 1 {
		t.Fatalf("hint 1 should select row 1, got %v", got)
	}
}

func TestCombineHeaderRows(t *testing.T) {
	group := []string{"", "Forecast", "", "Actual", ""}
	header := []string{"Category", "Sales", "Margin", "Sales", ""}
	got := combineHeaderRows(group, header)
	expected := []string{"Category", "Forecast Sales", "Margin", "Actual Sales", "Actual"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("combineHeaderRows[%d] expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestRowScore_DataRowLosesToHeaderRow(t *testing.T) {
	known := map[string]struct{}{"net_sales": {}, "division": {}}
	header := rowScore([]string{"Division", "Net Sales"}, known)
	data := rowScore([]string{"East", "120000"}, known)
	numbers := rowScore([]string{"1", "2", "3"}, known)
	if header <= data {
		t.Fatalf("header score %v should beat data score %v", header, data)
	}
	if numbers != -1 {
		t.Fatalf("all-numeric row should score -1, got %v", numbers)
	}
}
