package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Spreadsheet authors leave placeholder dashes and "n/a"-style markers in
// cells; all of these read as blank.
var blankStrings = map[string]struct{}{
	"":       {},
	"-":      {},
	"nan":    {},
	"none":   {},
	"–": {},
	"—": {},
}

func isBlank(value string) bool {
	_, ok := blankStrings[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Headers whose mechanical normalization would mangle the intended column
// name get mapped directly.
var specialHeaderAliases = map[string]string{
	"AsOfDate":            "as_of_date",
	"PctOfTotal":          "pct_of_total",
	"PctPastDue":          "pct_past_due",
	"CurrentAmt":          "current_amt",
	"PastDueAmt":          "past_due_amt",
	"ActualForecast":      "actual_forecast",
	"GrossMarginPct":      "gross_margin_pct",
	"GrossMarginDollars":  "gross_margin_dollars",
	"TTM_Sales":           "ttm_sales",
	"TTM_Sales_Prior":     "ttm_sales_prior",
	"TrendTTMPct":         "trend_ttm_pct",
	"Trend3MPct":          "trend_3_m_pct",
	"Collateral Type":     "collateral_type",
	"Collateral Sub-Type": "collateral_sub_type",
	"$ Limit":             "usd_limit",
	"% Limit":             "pct_limit",
	"FG_$":                "fg_usd",
	"FG_%Cost":            "fg_pct_cost",
	"RM_$":                "rm_usd",
	"RM_%Cost":            "rm_pct_cost",
	"WIP_$":               "wip_usd",
	"WIP_%Cost":           "wip_pct_cost",
	"Total_$":             "total_usd",
	"Total_%Cost":         "total_pct_cost",
}

// Header tokens too generic to identify a sheet on their own.
var genericHeaderTokens = map[string]struct{}{
	"date": {}, "category": {}, "division": {}, "customer": {}, "total": {},
	"period": {}, "week": {}, "projected": {}, "actual": {}, "variance": {},
}

// Column-group prefixes that a merged group row prepends to real headers.
var groupPrefixes = []string{"forecast", "actual", "budget"}

var (
	camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	underscoresRe   = regexp.MustCompile(`_+`)
)

// NormalizeHeader turns an arbitrary spreadsheet header into a snake_case
// column name. Normalization is idempotent: feeding an already-normalized
// name back in returns it unchanged.
func NormalizeHeader(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if alias, ok := specialHeaderAliases[trimmed]; ok {
		return alias
	}

	s := camelBoundaryRe.ReplaceAllString(trimmed, "${1}_${2}")
	s = strings.ReplaceAll(s, "%", " pct ")
	s = strings.ReplaceAll(s, "$", " usd ")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "+", "_plus")
	s = strings.ReplaceAll(s, "(", " ")
	s = strings.ReplaceAll(s, ")", " ")
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
	s = underscoresRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = strings.ToLower(s)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "col_" + s
	}
	return s
}

func isNumericCell(value string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}

// rowScore rates how header-like a row is against the target field set.
// Rows without any text cells cannot be headers. Rows that match no known
// field and repeat themselves heavily are data, not headers.
func rowScore(cells []string, known map[string]struct{}) float64 {
	var nonBlank, stringCells []string
	for _, c := range cells {
		if isBlank(c) {
			continue
		}
		nonBlank = append(nonBlank, c)
		if !isNumericCell(c) {
			stringCells = append(stringCells, c)
		}
	}
	if len(stringCells) == 0 {
		return -1
	}

	matches := 0
	seen := map[string]struct{}{}
	for _, c := range nonBlank {
		norm := NormalizeHeader(c)
		seen[norm] = struct{}{}
		if _, ok := known[norm]; ok {
			if _, generic := genericHeaderTokens[norm]; !generic {
				matches++
			}
		}
	}
	uniqueRatio := float64(len(seen)) / float64(len(nonBlank))
	if matches == 0 && uniqueRatio < 0.4 {
		return -5
	}
	return float64(matches)*3 + float64(len(stringCells)) + uniqueRatio*2
}

// isGroupRow detects merged group caption rows sitting directly above the
// real header row.
func isGroupRow(cells []string, known map[string]struct{}) bool {
	var nonBlank []string
	for _, c := range cells {
		if !isBlank(c) {
			nonBlank = append(nonBlank, c)
		}
	}
	if len(nonBlank) == 0 {
		return false
	}
	matches := 0
	seen := map[string]struct{}{}
	for _, c := range nonBlank {
		norm := NormalizeHeader(c)
		seen[norm] = struct{}{}
		if _, ok := known[norm]; ok {
			if _, generic := genericHeaderTokens[norm]; !generic {
				matches++
			}
		}
	}
	return matches == 0 && float64(len(seen))/float64(len(nonBlank)) < 0.5
}

const headerScanLimit = 12

// findHeaderRows locates the header row, scanning the top of the sheet and
// keeping the best-scoring candidate. A group caption row directly above
// the winner is folded in. An explicit hint short-circuits the scan.
func findHeaderRows(rows [][]string, known map[string]struct{}, hint int) []int {
	if hint >= 0 && hint < len(rows) {
		if hint > 0 && isGroupRow(rows[hint-1], known) {
			return []int{hint - 1, hint}
		}
		return []int{hint}
	}

	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	best, bestScore := 0, -1.0
	for i := 0; i < limit; i++ {
		if score := rowScore(rows[i], known); score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore < 0 {
		best = 0
	}
	if best > 0 && isGroupRow(rows[best-1], known) {
		return []int{best - 1, best}
	}
	return []int{best}
}

// combineHeaderRows merges a group caption row into the header row below
// it. Group cells forward-fill across their merged span; a duplicate or
// blank header cell borrows the group caption to stay meaningful.
func combineHeaderRows(group, header []string) []string {
	width := len(header)
	if len(group) > width {
		width = len(group)
	}
	cellAt := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	combined := make([]string, width)
	counts := map[string]int{}
	for i := 0; i < width; i++ {
		counts[cellAt(header, i)]++
	}

	fill := ""
	for i := 0; i < width; i++ {
		if g := cellAt(group, i); !isBlank(g) {
			fill = g
		}
		h := cellAt(header, i)
		switch {
		case isBlank(h):
			combined[i] = fill
		case counts[h] > 1 && fill != "":
			combined[i] = fill + " " + h
		default:
			combined[i] = h
		}
	}
	return combined
}

// makeUniqueHeaders normalizes every header and suffixes repeats so each
// column name is usable as a map key.
func makeUniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	counts := map[string]int{}
	for i, h := range headers {
		base := NormalizeHeader(h)
		if base == "" {
			base = "unnamed"
		}
		counts[base]++
		if counts[base] > 1 {
			out[i] = fmt.Sprintf("%s_%d", base, counts[base])
		} else {
			out[i] = base
		}
	}
	return out
}

// applyHeaderAliases strips a column-group prefix (forecast_, actual_,
// budget_) when the stripped name is a target field not already present.
func applyHeaderAliases(headers []string, known map[string]struct{}) []string {
	used := map[string]struct{}{}
	for _, h := range headers {
		used[h] = struct{}{}
	}
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = h
		for _, prefix := range groupPrefixes {
			stripped := strings.TrimPrefix(h, prefix+"_")
			if stripped == h {
				continue
			}
			if _, ok := known[stripped]; !ok {
				continue
			}
			if _, taken := used[stripped]; taken {
				continue
			}
			out[i] = stripped
			used[stripped] = struct{}{}
			break
		}
	}
	return out
}
