package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder shown wherever a value is absent.
const Placeholder = "—"

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// FormatCurrency renders a money value with thousands separators and two
// decimal places.
func FormatCurrency(d *decimal.Decimal) string {
	if d == nil {
		return Placeholder
	}
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ".", 2)
	grouped := groupThousands(parts[0])
	out := "$" + grouped + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// NormalizePct scales ratio-form percentages (0.125) up to percent form
// (12.5). Values already above 1 are assumed to be percent form.
func NormalizePct(d decimal.Decimal) decimal.Decimal {
	if d.LessThanOrEqual(one) {
		return d.Mul(hundred)
	}
	return d
}

// FormatPct renders a percentage with one decimal place, scaling
// ratio-form inputs first.
func FormatPct(d *decimal.Decimal) string {
	if d == nil {
		return Placeholder
	}
	v, _ := NormalizePct(*d).Float64()
	return fmt.Sprintf("%.1f%%", v)
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format("01/02/2006")
}

func SafeStr(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Placeholder
	}
	return strings.TrimSpace(*s)
}
