package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Excel serial dates within this window map to calendar dates; values
// outside it are treated as plain numbers.
const (
	serialDateMin = 20000
	serialDateMax = 60000
)

var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var monthFirstLayouts = []string{
	"1/2/2006", "01/02/2006", "1/2/06",
	"2006-01-02", "2006/01/02",
	"Jan 2, 2006", "January 2, 2006", "2-Jan-2006", "2-Jan-06",
	"2006-01-02 15:04:05", "1/2/2006 15:04:05",
}

var dayFirstLayouts = []string{
	"2/1/2006", "02/01/2006", "2/1/06",
	"2006-01-02", "2006/01/02",
	"2-Jan-2006", "2-Jan-06",
	"2006-01-02 15:04:05", "2/1/2006 15:04:05",
}

// toDate parses a cell into a calendar date. Numeric cells inside the
// serial window count days from the 1900 epoch; textual cells try common
// layouts, preferring day-first order when the leading slash token cannot
// be a month.
func toDate(value string) *time.Time {
	if isBlank(value) {
		return nil
	}
	trimmed := strings.TrimSpace(value)

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if f < serialDateMin || f > serialDateMax {
			return nil
		}
		t := serialEpoch.Add(time.Duration(f * float64(24*time.Hour)))
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &t
	}

	layouts := monthFirstLayouts
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		if first, err := strconv.Atoi(trimmed[:i]); err == nil && first > 12 {
			layouts = dayFirstLayouts
		}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}

// toDecimal parses a cell into a decimal. Accounting negatives in
// parentheses, thousands separators and a trailing percent sign are
// all understood; a percent suffix scales the value down by 100.
func toDecimal(value string) *decimal.Decimal {
	if isBlank(value) {
		return nil
	}
	s := strings.TrimSpace(value)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	if negative {
		d = d.Neg()
	}
	if percent {
		d = d.Div(decimal.NewFromInt(100))
	}
	return &d
}

// toInt parses a cell into an integer, truncating any fraction.
func toInt(value string) *int64 {
	d := toDecimal(value)
	if d == nil {
		return nil
	}
	n := d.IntPart()
	return &n
}

// toString returns the trimmed cell text, nil when blank.
func toString(value string) *string {
	if isBlank(value) {
		return nil
	}
	s := strings.TrimSpace(value)
	return &s
}
