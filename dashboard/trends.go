package dashboard

import (
	"math"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

const trendTicks = 4

// TrendChart is one normalized five-point time series with its axis.
type TrendChart struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Points   []float64 `json:"points"`
	AxisLow  float64   `json:"axis_low"`
	AxisHigh float64   `json:"axis_high"`
	AxisStep float64   `json:"axis_step"`
	Ticks    []string  `json:"ticks"`
}

type TrendsPayload struct {
	Charts []TrendChart `json:"charts"`
}

// buildTrendChart fits the raw per-report values to the fixed five-point
// series and snaps the axis to nice steps. Labels are the report dates
// when at least five reports exist, else the zero-padded sequence.
func buildTrendChart(key, title string, labels []string, values []decimal.Decimal) TrendChart {
	norm := NormalizeSeries(values, decimal.Zero)
	points := make([]float64, len(norm))
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i, d := range norm {
		v, _ := d.Float64()
		points[i] = v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	low, high, step := AxisBounds(minV, maxV, trendTicks)
	n := int(math.Round((high - low) / step))

	chartLabels := SeriesLabels()
	if len(values) >= seriesLength && len(labels) >= seriesLength {
		chartLabels = labels[len(labels)-seriesLength:]
	}

	return TrendChart{
		Key: key, Title: title,
		Labels: chartLabels, Points: points,
		AxisLow: low, AxisHigh: high, AxisStep: step,
		Ticks: TickLabels(low, step, n, "$"),
	}
}

// trendSeries folds each report's rows into one reading per series:
// net collateral, outstanding AR balance and availability.
func trendSeries(reports []models.BorrowerReport, collateral map[int][]models.CollateralOverviewRow, ar map[int][]models.ARMetricsRow) (labels []string, net, outstanding, avail []decimal.Decimal) {
	for _, report := range reports {
		label := Placeholder
		if report.ReportDate != nil {
			label = FormatDate(report.ReportDate)
		}
		labels = append(labels, label)

		netSum, eligible, ineligible := decimal.Zero, decimal.Zero, decimal.Zero
		for _, row := range collateral[report.ID] {
			if row.NetCollateral != nil {
				netSum = netSum.Add(*row.NetCollateral)
			}
			if row.EligibleCollateral != nil {
				eligible = eligible.Add(*row.EligibleCollateral)
			}
			if row.Ineligibles != nil {
				ineligible = ineligible.Add(*row.Ineligibles)
			}
		}
		net = append(net, netSum)

		availability := eligible.Sub(ineligible)
		if availability.Sign() < 0 {
			availability = decimal.Zero
		}
		avail = append(avail, availability)

		balance := decimal.Zero
		for _, row := range ar[report.ID] {
			if row.Balance != nil {
				balance = balance.Add(*row.Balance)
			}
		}
		outstanding = append(outstanding, balance)
	}
	return labels, net, outstanding, avail
}

// BuildTrends renders the three headline time series, one reading per
// report date within the range, oldest first.
func BuildTrends(db *gorm.DB, borrowerId int, dates DateRange) (*TrendsPayload, error) {
	q := db.Where("borrower_id = ?", borrowerId)
	if dates.Start != nil {
		q = q.Where("report_date >= ?", *dates.Start)
	}
	if dates.End != nil {
		q = q.Where("report_date < ?", *dates.End)
	}
	var reports []models.BorrowerReport
	if err := q.Order("report_date, id").Find(&reports).Error; err != nil {
		return nil, err
	}

	reportIds := make([]int, 0, len(reports))
	for _, r := range reports {
		reportIds = append(reportIds, r.ID)
	}

	collateral := map[int][]models.CollateralOverviewRow{}
	ar := map[int][]models.ARMetricsRow{}
	if len(reportIds) > 0 {
		var collateralRows []models.CollateralOverviewRow
		if err := db.Where("report_id IN ?", reportIds).Find(&collateralRows).Error; err != nil {
			return nil, err
		}
		for _, row := range collateralRows {
			if row.ReportId != nil {
				collateral[*row.ReportId] = append(collateral[*row.ReportId], row)
			}
		}
		var arRows []models.ARMetricsRow
		if err := db.Where("report_id IN ?", reportIds).Find(&arRows).Error; err != nil {
			return nil, err
		}
		for _, row := range arRows {
			if row.ReportId != nil {
				ar[*row.ReportId] = append(ar[*row.ReportId], row)
			}
		}
	}

	labels, net, outstanding, avail := trendSeries(reports, collateral, ar)
	return &TrendsPayload{Charts: []TrendChart{
		buildTrendChart("netCollateral", "Net Collateral", labels, net),
		buildTrendChart("outstandingBalance", "Outstanding Balance", labels, outstanding),
		buildTrendChart("availability", "Availability", labels, avail),
	}}, nil
}
