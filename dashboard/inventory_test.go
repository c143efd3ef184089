package dashboard

import (
	"testing"

	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

func TestBucketFor(t *testing.T) {
	cases := []struct {
		mainType string
		subType  string
		expected string
	}{
		{"Inventory", "Finished Goods", BucketFinishedGoods},
		{"Inventory", "FG - Widgets", BucketFinishedGoods},
		{"Inventory", "Raw Materials", BucketRawMaterials},
		{"Inventory", "RM", BucketRawMaterials},
		{"Inventory", "Work in Process", BucketWorkInProcess},
		{"Inventory", "Work-In-Process", BucketWorkInProcess},
		{"Inventory", "WIP", BucketWorkInProcess},
		{"Raw Materials", "", BucketRawMaterials},
		{"Accounts Receivable", "Trade", ""},
	}
	for _, tc := range cases {
		var sub *string
		if tc.subType != "" {
			sub = utils.Ptr(tc.subType)
		}
		if got := BucketFor(utils.Ptr(tc.mainType), sub); got != tc.expected {
			t.Fatalf("BucketFor(%q, %q) expected %q, got %q", tc.mainType, tc.subType, tc.expected, got)
		}
	}
}

func TestBucketFor_SubTypeWins(t *testing.T) {
	// A row typed raw-material at the top level but finished-goods at the
	// sub level belongs to finished goods.
	got := BucketFor(utils.Ptr("Raw Materials"), utils.Ptr("Finished Goods"))
	if got != BucketFinishedGoods {
		t.Fatalf("expected sub-type to win, got %q", got)
	}
}

func TestWeightedNolv(t *testing.T) {
	rows := []models.CollateralOverviewRow{
		{NolvPct: dec("0.8"), EligibleCollateral: dec("100")},
		{NolvPct: dec("0.6"), EligibleCollateral: dec("300")},
		{NolvPct: dec("0.9")}, // no eligible figure, drops out
	}
	got := WeightedNolv(rows)
	if got == nil {
		t.Fatal("WeightedNolv returned nil")
	}
	// (0.8*100 + 0.6*300) / 400 = 0.65
	if got.String() != "0.65" {
		t.Fatalf("WeightedNolv expected 0.65, got %s", got.String())
	}

	if WeightedNolv(nil) != nil {
		t.Fatal("WeightedNolv(nil) expected nil")
	}
}

func TestTrendPct(t *testing.T) {
	rows := []models.CollateralOverviewRow{
		{BeginningCollateral: dec("200"), NetCollateral: dec("220")},
		{BeginningCollateral: dec("300"), NetCollateral: dec("280")},
	}
	got := TrendPct(rows)
	if got == nil {
		t.Fatal("TrendPct returned nil")
	}
	// (20 - 20) / 500 = 0
	if got.String() != "0" {
		t.Fatalf("TrendPct expected 0, got %s", got.String())
	}

	rows = []models.CollateralOverviewRow{
		{BeginningCollateral: dec("100"), NetCollateral: dec("110")},
	}
	got = TrendPct(rows)
	if got == nil || got.String() != "10" {
		t.Fatalf("TrendPct expected 10, got %v", got)
	}
}

func TestResolveRateLimit(t *testing.T) {
	limits := []models.CollateralLimitsRow{
		{CollateralType: utils.Ptr("Inventory"), CollateralSubType: utils.Ptr("Finished Goods"), PctLimit: dec("0.5")},
		{CollateralType: utils.Ptr("Inventory"), PctLimit: dec("0.4")},
		{CollateralType: utils.Ptr("Accounts Receivable"), PctLimit: dec("0.85")},
	}

	// Sub-type match wins.
	row := models.CollateralOverviewRow{
		MainType: utils.Ptr("Inventory"),
		SubType:  utils.Ptr("Finished Goods"),
	}
	if got := ResolveRateLimit(limits, row); got == nil || got.String() != "0.5" {
		t.Fatalf("expected sub-type limit 0.5, got %v", got)
	}

	// No sub-type match falls back to the type-level limit.
	row.SubType = utils.Ptr("Raw Materials")
	if got := ResolveRateLimit(limits, row); got == nil || got.String() != "0.4" {
		t.Fatalf("expected type limit 0.4, got %v", got)
	}

	// No limit at all falls back to the row's own rate limit.
	row = models.CollateralOverviewRow{
		MainType:  utils.Ptr("Equipment"),
		RateLimit: dec("0.3"),
	}
	if got := ResolveRateLimit(limits, row); got == nil || got.String() != "0.3" {
		t.Fatalf("expected row rate limit 0.3, got %v", got)
	}
}

func TestInventoryIneligibleRatio(t *testing.T) {
	rows := []models.CollateralOverviewRow{
		{EligibleCollateral: dec("850"), Ineligibles: dec("150")},
	}
	got := inventoryIneligibleRatio(rows)
	if got == nil || got.String() != "0.15" {
		t.Fatalf("expected ratio 0.15, got %v", got)
	}
	if inventoryIneligibleRatio(nil) != nil {
		t.Fatal("empty rows expected nil ratio")
	}
}
