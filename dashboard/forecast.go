package dashboard

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

type ForecastChart struct {
	Key           string     `json:"key"`
	Title         string     `json:"title"`
	Labels        []string   `json:"labels"`
	Actual        []*float64 `json:"actual"`
	Forecast      []*float64 `json:"forecast"`
	PastLabel     string     `json:"pastLabel"`
	ForecastLabel string     `json:"forecastLabel"`
	YPrefix       string     `json:"yPrefix"`
	YFormat       string     `json:"yFormat"`
	YTicks        int        `json:"yTicks"`
}

type ForecastPayload struct {
	Charts []ForecastChart `json:"charts"`
}

type chartSpec struct {
	key     string
	title   string
	yPrefix string
	yFormat string
	yTicks  int
	value   func(models.ForecastRow) *decimal.Decimal
}

func addDecimals(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil && b == nil {
		return nil
	}
	sum := decimal.Zero
	if a != nil {
		sum = sum.Add(*a)
	}
	if b != nil {
		sum = sum.Add(*b)
	}
	return &sum
}

var weeksPerYear = decimal.NewFromInt(52)

// weeksOfSupply estimates how many weeks of sales the finished goods
// balance covers.
func weeksOfSupply(row models.ForecastRow) *decimal.Decimal {
	if row.FinishedGoods == nil || row.NetSales == nil || row.NetSales.Sign() == 0 {
		return nil
	}
	wos := row.FinishedGoods.Div(*row.NetSales).Mul(weeksPerYear)
	return &wos
}

var forecastCharts = []chartSpec{
	{"availableCollateral", "Available Collateral", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.AvailableCollateral }},
	{"revolverBalance", "Revolver Balance", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.RevolverAvailability }},
	{"availableLiquidity", "Available Liquidity", "$", "short", 6,
		func(r models.ForecastRow) *decimal.Decimal {
			return addDecimals(r.AvailableCollateral, r.RevolverAvailability)
		}},
	{"sales", "Sales", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.NetSales }},
	{"grossMargin", "Gross Margin", "", "pct", 5,
		func(r models.ForecastRow) *decimal.Decimal {
			if r.GrossMarginPct == nil {
				return nil
			}
			v := NormalizePct(*r.GrossMarginPct)
			return &v
		}},
	{"accountsReceivable", "Accounts Receivable", "$", "short", 6,
		func(r models.ForecastRow) *decimal.Decimal { return r.Ar }},
	{"finishedGoods", "Finished Goods", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.FinishedGoods }},
	{"weeksOfSupply", "Weeks of Supply", "", "num", 5, weeksOfSupply},
	{"rawMaterials", "Raw Materials", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.RawMaterials }},
	{"workInProcess", "Work in Process", "$", "short", 5,
		func(r models.ForecastRow) *decimal.Decimal { return r.WorkInProcess }},
}

func isActualRow(row models.ForecastRow) bool {
	if row.ActualForecast == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*row.ActualForecast), "actual")
}

// BuildForecast renders the ten forecast charts. Rows are split into the
// actual and forecast series point-by-point; a workbook with no row
// tagged actual treats its first row as the anchor.
func BuildForecast(db *gorm.DB, borrowerId int) (*ForecastPayload, error) {
	var rows []models.ForecastRow
	err := db.Where("borrower_id = ?", borrowerId).
		Order("COALESCE(as_of_date, period, DATE(created_at)), id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	anyActual := false
	for _, row := range rows {
		if isActualRow(row) {
			anyActual = true
			break
		}
	}

	labels := make([]string, len(rows))
	actualMask := make([]bool, len(rows))
	for i, row := range rows {
		switch {
		case row.Period != nil:
			labels[i] = row.Period.Format("Jan 06")
		case row.AsOfDate != nil:
			labels[i] = row.AsOfDate.Format("Jan 06")
		default:
			labels[i] = Placeholder
		}
		actualMask[i] = isActualRow(row) || (!anyActual && i == 0)
	}

	payload := &ForecastPayload{Charts: make([]ForecastChart, 0, len(forecastCharts))}
	for _, spec := range forecastCharts {
		chart := ForecastChart{
			Key: spec.key, Title: spec.title, Labels: labels,
			Actual:   make([]*float64, len(rows)),
			Forecast: make([]*float64, len(rows)),
			PastLabel: "Actual", ForecastLabel: "Forecast",
			YPrefix: spec.yPrefix, YFormat: spec.yFormat, YTicks: spec.yTicks,
		}
		for i, row := range rows {
			d := spec.value(row)
			if d == nil {
				continue
			}
			v, _ := d.Float64()
			if actualMask[i] {
				chart.Actual[i] = &v
			} else {
				chart.Forecast[i] = &v
			}
		}
		payload.Charts = append(payload.Charts, chart)
	}
	return payload, nil
}
