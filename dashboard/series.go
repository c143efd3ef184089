package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const seriesLength = 5

// NormalizeSeries fits a value series to exactly five points: shorter
// series are left-padded with their first value (or the fallback when
// empty), longer series keep the most recent five.
func NormalizeSeries(values []decimal.Decimal, fallback decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, seriesLength)
	if len(values) >= seriesLength {
		return append(out, values[len(values)-seriesLength:]...)
	}
	pad := fallback
	if len(values) > 0 {
		pad = values[0]
	}
	for i := 0; i < seriesLength-len(values); i++ {
		out = append(out, pad)
	}
	return append(out, values...)
}

// SeriesLabels returns the fixed zero-padded point labels.
func SeriesLabels() []string {
	labels := make([]string, seriesLength)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d", i+1)
	}
	return labels
}
