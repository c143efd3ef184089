package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

// Score palette from healthy green through distressed red. Bucket is the
// half-up rounded score clamped to 1..5.
var riskPalette = []string{"#7EC459", "#D7C63C", "#FBB82E", "#FC8F2E", "#F74C34"}

const maxRiskScore = 5

// ScoreColor maps a 0-5 risk score onto the palette. Non-positive scores
// fall back to the midpoint color.
func ScoreColor(score decimal.Decimal) string {
	if score.Sign() <= 0 {
		return riskPalette[2]
	}
	bucket := int(score.Round(0).IntPart())
	if bucket < 1 {
		bucket = 1
	}
	if bucket > maxRiskScore {
		bucket = maxRiskScore
	}
	return riskPalette[bucket-1]
}

// scoreRatio clamps score/5 into [0, 1].
func scoreRatio(score decimal.Decimal) float64 {
	ratio, _ := score.Div(decimal.NewFromInt(maxRiskScore)).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// RatingPct converts a 0-5 score into a 0-100 gauge percentage.
func RatingPct(score decimal.Decimal) float64 {
	return scoreRatio(score) * 100
}

// ARScoreFromPastDue derives a 0-5 AR risk score from the past-due share
// of receivables: 0% past due scores 5, 100% scores 0.
func ARScoreFromPastDue(pctPastDue decimal.Decimal) decimal.Decimal {
	score := decimal.NewFromInt(maxRiskScore).Sub(NormalizePct(pctPastDue).Div(decimal.NewFromInt(20)))
	if score.Sign() < 0 {
		return decimal.Zero
	}
	if score.GreaterThan(decimal.NewFromInt(maxRiskScore)) {
		return decimal.NewFromInt(maxRiskScore)
	}
	return score
}

// InventoryScoreFromRatio maps the inventory ineligible ratio onto a 1-5
// risk profile score.
func InventoryScoreFromRatio(ratio decimal.Decimal) decimal.Decimal {
	score := decimal.NewFromInt(maxRiskScore).Sub(NormalizePct(ratio).Div(decimal.NewFromInt(25)))
	if score.LessThan(one) {
		return one
	}
	if score.GreaterThan(decimal.NewFromInt(maxRiskScore)) {
		return decimal.NewFromInt(maxRiskScore)
	}
	return score
}

type WeightPill struct {
	Label string `json:"label"`
	Pct   string `json:"pct"`
	Style string `json:"style"`
}

type TrendPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Score string  `json:"score"`
}

type HighImpactFactor struct {
	Name   string `json:"name"`
	Score  string `json:"score"`
	Prior  string `json:"prior"`
	Change string `json:"change"`
	Arrow  string `json:"arrow"`
	Color  string `json:"color"`
}

type SubfactorBar struct {
	Label string `json:"label"`
	Width string `json:"width"`
	Color string `json:"color"`
}

type RiskCategory struct {
	Name  string         `json:"name"`
	Score string         `json:"score"`
	Color string         `json:"color"`
	Bars  []SubfactorBar `json:"bars"`
}

type RiskPayload struct {
	OverallScore string             `json:"overall_score"`
	RatingPct    float64            `json:"rating_pct"`
	DonutDash    string             `json:"donut_dash"`
	GaugeColor   string             `json:"gauge_color"`
	Weights      []WeightPill       `json:"weights"`
	Trend        []TrendPoint       `json:"trend"`
	HighImpact   []HighImpactFactor `json:"high_impact"`
	Categories   []RiskCategory     `json:"categories"`
}

// Trend chart geometry: eight points spaced across the sparkline viewbox.
const (
	trendPoints = 8
	trendXBase  = 18
	trendXStep  = 37
	trendYBase  = 90
	trendYSpan  = 40
)

// Scores used to draw a neutral trend line before any composite data has
// been imported.
var fallbackTrendScores = []float64{3.0, 3.1, 2.9, 3.0, 3.2, 3.1, 3.0, 3.0}

// Main risk categories in display order, with preferred subfactor order.
var riskCategoryOrder = []string{"Accounts Receivable", "Inventory", "Company", "Industry"}

var subfactorOrder = map[string][]string{
	"Accounts Receivable": {"Aging & Past Due", "Concentration", "Dilution"},
	"Inventory":           {"Inventory Velocity & Turn", "Excess & Obsolete", "Composition", "Recovery"},
	"Company":             {"Sales Trend", "Margin Trend", "Liquidity"},
	"Industry":            {"Seasonality", "Sector Level Distress"},
}

// Factors promoted to the high-impact list whenever present.
var preferredHighImpact = []string{
	"Inventory Velocity & Turn", "Excess & Obsolete", "Sales Trend",
	"Seasonality", "Sector Level Distress",
}

const highImpactLimit = 12

var defaultCategoryBars = []SubfactorBar{
	{Label: "Trend", Width: "35.0%", Color: riskPalette[2]},
	{Label: "Pressure", Width: "55.0%", Color: riskPalette[2]},
}

func formatScore(score decimal.Decimal) string {
	v, _ := score.Float64()
	return fmt.Sprintf("%.1f", v)
}

// BuildRisk assembles the risk dashboard from composite index and
// subfactor rows, with derived fallbacks where imports are missing.
func BuildRisk(db *gorm.DB, borrowerId int, snapshot []models.CollateralOverviewRow) (*RiskPayload, error) {
	var composites []models.CompositeIndexRow
	err := db.Where("borrower_id = ?", borrowerId).
		Order("date, id").Find(&composites).Error
	if err != nil {
		return nil, err
	}
	var subfactors []models.RiskSubfactorsRow
	err = db.Where("borrower_id = ?", borrowerId).
		Order("date, id").Find(&subfactors).Error
	if err != nil {
		return nil, err
	}

	var latest *models.CompositeIndexRow
	if len(composites) > 0 {
		latest = &composites[len(composites)-1]
	}

	scores, err := categoryScores(db, borrowerId, latest, snapshot)
	if err != nil {
		return nil, err
	}

	overall := overallScore(latest, scores)
	payload := &RiskPayload{
		OverallScore: formatScore(overall),
		RatingPct:    RatingPct(overall),
		GaugeColor:   ScoreColor(overall),
		Weights:      weightPills(latest),
		Trend:        trendPointsFrom(composites),
		HighImpact:   highImpactFactors(subfactors),
		Categories:   categoryBars(scores, subfactors),
	}
	payload.DonutDash = fmt.Sprintf("%.1f %.1f", payload.RatingPct, 100-payload.RatingPct)
	return payload, nil
}

// categoryScores resolves the four component scores, deriving AR from
// past-due share and inventory from the ineligible ratio when the
// composite sheet has not supplied them.
func categoryScores(db *gorm.DB, borrowerId int, latest *models.CompositeIndexRow, snapshot []models.CollateralOverviewRow) (map[string]decimal.Decimal, error) {
	scores := map[string]decimal.Decimal{
		"Accounts Receivable": decimal.NewFromInt(3),
		"Inventory":           decimal.NewFromInt(3),
		"Company":             decimal.NewFromFloat(2.5),
		"Industry":            decimal.NewFromInt(2),
	}
	if latest != nil {
		if latest.ArRisk != nil {
			scores["Accounts Receivable"] = *latest.ArRisk
		}
		if latest.InventoryRisk != nil {
			scores["Inventory"] = *latest.InventoryRisk
		}
		if latest.CompanyRisk != nil {
			scores["Company"] = *latest.CompanyRisk
		}
		if latest.IndustryRisk != nil {
			scores["Industry"] = *latest.IndustryRisk
		}
		return scores, nil
	}

	var latestAR models.ARMetricsRow
	err := db.Where("borrower_id = ? AND pct_past_due IS NOT NULL", borrowerId).
		Order("as_of_date DESC, id DESC").Take(&latestAR).Error
	if err == nil && latestAR.PctPastDue != nil {
		derived := ARScoreFromPastDue(*latestAR.PctPastDue)
		if derived.GreaterThan(scores["Accounts Receivable"]) {
			scores["Accounts Receivable"] = derived
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if ratio := inventoryIneligibleRatio(inventoryRows(snapshot)); ratio != nil {
		scores["Inventory"] = InventoryScoreFromRatio(*ratio)
	}
	return scores, nil
}

func overallScore(latest *models.CompositeIndexRow, scores map[string]decimal.Decimal) decimal.Decimal {
	if latest != nil && latest.OverallScore != nil {
		return *latest.OverallScore
	}
	sum := decimal.Zero
	for _, name := range riskCategoryOrder {
		sum = sum.Add(scores[name])
	}
	return sum.Div(decimal.NewFromInt(int64(len(riskCategoryOrder))))
}

func weightPills(latest *models.CompositeIndexRow) []WeightPill {
	weight := func(w *decimal.Decimal, def int64) *decimal.Decimal {
		if latest != nil && w != nil {
			return w
		}
		d := decimal.NewFromInt(def).Div(hundred)
		return &d
	}
	var arW, invW, coW, indW *decimal.Decimal
	if latest != nil {
		arW, invW, coW, indW = latest.WeightAr, latest.WeightInventory, latest.WeightCompany, latest.WeightIndustry
	}
	return []WeightPill{
		{Label: "AR", Pct: FormatPct(weight(arW, 35)), Style: "blue"},
		{Label: "Inventory", Pct: FormatPct(weight(invW, 35)), Style: "navy"},
		{Label: "Company", Pct: FormatPct(weight(coW, 20)), Style: "lt"},
		{Label: "Industry", Pct: FormatPct(weight(indW, 10)), Style: "wt"},
	}
}

// trendPointsFrom plots the last eight composite scores onto the
// sparkline. Missing history falls back to a neutral line.
func trendPointsFrom(composites []models.CompositeIndexRow) []TrendPoint {
	if len(composites) > trendPoints {
		composites = composites[len(composites)-trendPoints:]
	}

	points := make([]TrendPoint, 0, trendPoints)
	if len(composites) == 0 {
		for i, v := range fallbackTrendScores {
			score := decimal.NewFromFloat(v)
			points = append(points, TrendPoint{
				X:     trendXBase + float64(i)*trendXStep,
				Y:     trendYBase - scoreRatio(score)*trendYSpan,
				Label: fmt.Sprint(i + 1),
				Score: formatScore(score),
			})
		}
		return points
	}

	for i, row := range composites {
		score := decimal.Zero
		if row.OverallScore != nil {
			score = *row.OverallScore
		}
		label := fmt.Sprint(i + 1)
		if row.Date != nil {
			label = row.Date.Format("Jan")
		}
		points = append(points, TrendPoint{
			X:     trendXBase + float64(i)*trendXStep,
			Y:     trendYBase - scoreRatio(score)*trendYSpan,
			Label: label,
			Score: formatScore(score),
		})
	}
	return points
}

// highImpactFactors picks the dozen worst-scoring subfactors, preferring
// the most recent reading per factor and marking movement against the
// prior reading.
func highImpactFactors(subfactors []models.RiskSubfactorsRow) []HighImpactFactor {
	type reading struct {
		name          string
		score, prior  *decimal.Decimal
	}
	latest := map[string]*reading{}
	var names []string
	for _, row := range subfactors {
		if row.SubRisk == nil {
			continue
		}
		name := *row.SubRisk
		r, ok := latest[name]
		if !ok {
			r = &reading{name: name}
			latest[name] = r
			names = append(names, name)
		}
		r.prior = r.score
		r.score = row.RiskScore
	}

	ordered := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, name := range preferredHighImpact {
		if _, ok := latest[name]; ok {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	// Remaining factors ranked worst first.
	rest := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			si, sj := decimal.Zero, decimal.Zero
			if latest[rest[i]].score != nil {
				si = *latest[rest[i]].score
			}
			if latest[rest[j]].score != nil {
				sj = *latest[rest[j]].score
			}
			if sj.LessThan(si) {
				rest[i], rest[j] = rest[j], rest[i]
			}
		}
	}
	ordered = append(ordered, rest...)
	if len(ordered) > highImpactLimit {
		ordered = ordered[:highImpactLimit]
	}

	out := make([]HighImpactFactor, 0, len(ordered))
	for _, name := range ordered {
		r := latest[name]
		factor := HighImpactFactor{Name: name, Score: Placeholder, Prior: Placeholder, Change: Placeholder}
		score := decimal.Zero
		if r.score != nil {
			score = *r.score
			factor.Score = formatScore(score)
		}
		factor.Color = ScoreColor(score)
		if r.prior != nil {
			factor.Prior = formatScore(*r.prior)
			if r.score != nil {
				change := r.score.Sub(*r.prior)
				factor.Change = formatScore(change.Abs())
				switch {
				case change.Sign() > 0:
					factor.Arrow = "▲"
				case change.Sign() < 0:
					factor.Arrow = "▼"
				}
			}
		}
		out = append(out, factor)
	}
	return out
}

// categoryBars groups the latest subfactor readings under their main
// category, honoring the preferred ordering and falling back to default
// bars for categories with no data.
func categoryBars(scores map[string]decimal.Decimal, subfactors []models.RiskSubfactorsRow) []RiskCategory {
	latestByFactor := map[string]models.RiskSubfactorsRow{}
	var factorNames []string
	for _, row := range subfactors {
		if row.SubRisk == nil {
			continue
		}
		if _, ok := latestByFactor[*row.SubRisk]; !ok {
			factorNames = append(factorNames, *row.SubRisk)
		}
		latestByFactor[*row.SubRisk] = row
	}

	categories := make([]RiskCategory, 0, len(riskCategoryOrder))
	for _, name := range riskCategoryOrder {
		score := scores[name]
		category := RiskCategory{Name: name, Score: formatScore(score), Color: ScoreColor(score)}

		added := map[string]bool{}
		appendBar := func(row models.RiskSubfactorsRow) {
			barScore := decimal.Zero
			if row.RiskScore != nil {
				barScore = *row.RiskScore
			}
			category.Bars = append(category.Bars, SubfactorBar{
				Label: *row.SubRisk,
				Width: fmt.Sprintf("%.1f%%", scoreRatio(barScore)*100),
				Color: ScoreColor(barScore),
			})
			added[*row.SubRisk] = true
		}
		for _, preferred := range subfactorOrder[name] {
			if row, ok := latestByFactor[preferred]; ok && categoryMatches(row.MainCategory, name) {
				appendBar(row)
			}
		}
		for _, factor := range factorNames {
			row := latestByFactor[factor]
			if !added[factor] && categoryMatches(row.MainCategory, name) {
				appendBar(row)
			}
		}
		if len(category.Bars) == 0 {
			category.Bars = append(category.Bars, defaultCategoryBars...)
		}
		categories = append(categories, category)
	}
	return categories
}

// categoryMatches compares a row's main category against a display
// category by prefix, tolerating sheet variants like "Inventory Risk".
func categoryMatches(mainCategory *string, display string) bool {
	if mainCategory == nil {
		return false
	}
	got := strings.ToLower(strings.TrimSpace(*mainCategory))
	want := strings.ToLower(display)
	return strings.HasPrefix(got, want) || strings.HasPrefix(want, got)
}
