package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NiceStep rounds the raw tick interval up to the nearest 1, 2, 5 or 10
// times a power of ten. A range of 37 over two intervals yields 20; over
// one interval, 50.
func NiceStep(rangeValue float64, ticks int) float64 {
	if ticks < 2 {
		ticks = 2
	}
	if rangeValue <= 0 {
		return 1
	}
	rough := rangeValue / float64(ticks-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*magnitude >= rough {
			return m * magnitude
		}
	}
	return 10 * magnitude
}

// AxisBounds fits a [min, max] window of tick multiples around the data.
// The lower bound never dips below zero for non-negative data.
func AxisBounds(minValue, maxValue float64, ticks int) (float64, float64, float64) {
	if maxValue < minValue {
		minValue, maxValue = maxValue, minValue
	}
	step := NiceStep(maxValue-minValue, ticks)
	low := math.Floor(minValue/step) * step
	if minValue >= 0 && low < 0 {
		low = 0
	}
	high := math.Ceil(maxValue/step) * step
	if high == low {
		high = low + step
	}
	return low, high, step
}

// ShortTickLabel renders an axis value compactly: $4M, $120k, $75.
func ShortTickLabel(value float64, prefix string) string {
	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e9:
		return sign + prefix + trimFloat(abs/1e9) + "B"
	case abs >= 1e6:
		return sign + prefix + trimFloat(abs/1e6) + "M"
	case abs >= 1e3:
		return sign + prefix + trimFloat(abs/1e3) + "k"
	default:
		return sign + prefix + trimFloat(abs)
	}
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// TickLabels renders ticks+1 labels from low to high inclusive.
func TickLabels(low, step float64, ticks int, prefix string) []string {
	labels := make([]string, 0, ticks+1)
	for i := 0; i <= ticks; i++ {
		labels = append(labels, ShortTickLabel(low+step*float64(i), prefix))
	}
	return labels
}

// PctTickLabel renders a percent axis value.
func PctTickLabel(value float64) string {
	return fmt.Sprintf("%s%%", trimFloat(value))
}
