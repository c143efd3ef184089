package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

func TestScoreColor(t *testing.T) {
	cases := []struct {
		score    string
		expected string
	}{
		{"4.8", riskPalette[4]},
		{"4.4", riskPalette[3]},
		{"3.0", riskPalette[2]},
		{"1.2", riskPalette[0]},
		{"0.4", riskPalette[0]},
		{"7", riskPalette[4]},
		// Non-positive scores fall back to the midpoint.
		{"0", riskPalette[2]},
		{"-1", riskPalette[2]},
	}
	for _, tc := range cases {
		score, _ := decimal.NewFromString(tc.score)
		if got := ScoreColor(score); got != tc.expected {
			t.Fatalf("ScoreColor(%s) expected %s, got %s", tc.score, tc.expected, got)
		}
	}
}

func TestRatingPct(t *testing.T) {
	cases := []struct {
		score    string
		expected float64
	}{
		{"2.5", 50},
		{"5", 100},
		{"7", 100},
		{"-1", 0},
	}
	for _, tc := range cases {
		score, _ := decimal.NewFromString(tc.score)
		if got := RatingPct(score); got != tc.expected {
			t.Fatalf("RatingPct(%s) expected %v, got %v", tc.score, tc.expected, got)
		}
	}
}

func TestARScoreFromPastDue(t *testing.T) {
	cases := []struct {
		pct      string
		expected string
	}{
		{"0", "5"},
		{"20", "4"},
		{"0.2", "4"}, // ratio form scales up first
		{"100", "0"},
		{"150", "0"}, // clamped
	}
	for _, tc := range cases {
		pct, _ := decimal.NewFromString(tc.pct)
		if got := ARScoreFromPastDue(pct); got.String() != tc.expected {
			t.Fatalf("ARScoreFromPastDue(%s) expected %s, got %s", tc.pct, tc.expected, got.String())
		}
	}
}

func TestInventoryScoreFromRatio(t *testing.T) {
	cases := []struct {
		ratio    string
		expected string
	}{
		{"0", "5"},
		{"0.25", "4"},
		{"50", "3"},
		{"200", "1"}, // floor at 1, never 0
	}
	for _, tc := range cases {
		ratio, _ := decimal.NewFromString(tc.ratio)
		if got := InventoryScoreFromRatio(ratio); got.String() != tc.expected {
			t.Fatalf("InventoryScoreFromRatio(%s) expected %s, got %s", tc.ratio, tc.expected, got.String())
		}
	}
}

func TestHighImpactFactors_TracksMovement(t *testing.T) {
	rows := []models.RiskSubfactorsRow{
		{SubRisk: utils.Ptr("Dilution"), RiskScore: dec("3.0")},
		{SubRisk: utils.Ptr("Dilution"), RiskScore: dec("2.5")},
		{SubRisk: utils.Ptr("Concentration"), RiskScore: dec("4.0")},
	}
	factors := highImpactFactors(rows)
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d", len(factors))
	}

	// Neither factor is on the preferred list, so the worse score leads.
	if factors[0].Name != "Dilution" {
		t.Fatalf("expected Dilution first, got %s", factors[0].Name)
	}
	if factors[0].Score != "2.5" || factors[0].Prior != "3.0" {
		t.Fatalf("unexpected Dilution reading: score=%s prior=%s", factors[0].Score, factors[0].Prior)
	}
	if factors[0].Arrow != "▼" {
		t.Fatalf("falling score expected ▼, got %q", factors[0].Arrow)
	}
	if factors[1].Prior != Placeholder {
		t.Fatalf("single reading expected placeholder prior, got %s", factors[1].Prior)
	}
}

func TestHighImpactFactors_PreferredComeFirst(t *testing.T) {
	rows := []models.RiskSubfactorsRow{
		{SubRisk: utils.Ptr("Dilution"), RiskScore: dec("1.0")},
		{SubRisk: utils.Ptr("Sales Trend"), RiskScore: dec("4.5")},
	}
	factors := highImpactFactors(rows)
	if factors[0].Name != "Sales Trend" {
		t.Fatalf("preferred factor should lead despite better score, got %s", factors[0].Name)
	}
}

func TestCategoryMatches(t *testing.T) {
	if !categoryMatches(utils.Ptr("Inventory Risk"), "Inventory") {
		t.Fatal("expected Inventory Risk to match Inventory")
	}
	if !categoryMatches(utils.Ptr("Accounts"), "Accounts Receivable") {
		t.Fatal("expected truncated category to match by prefix")
	}
	if categoryMatches(utils.Ptr("Company"), "Industry") {
		t.Fatal("Company must not match Industry")
	}
	if categoryMatches(nil, "Inventory") {
		t.Fatal("nil category must not match")
	}
}
