package dashboard

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

// AllDivisions is the division filter value meaning "no filter".
const AllDivisions = "all"

// DateRange is a half-open [Start, End) day window. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolveDatePreset maps a named preset to a concrete range relative to
// now. Unknown presets return an open range.
func ResolveDatePreset(preset string, now time.Time) DateRange {
	day := now.UTC().Truncate(24 * time.Hour)
	tomorrow := day.Add(24 * time.Hour)
	since := func(days int) DateRange {
		start := day.Add(-time.Duration(days) * 24 * time.Hour)
		return DateRange{Start: &start, End: &tomorrow}
	}
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "today":
		return DateRange{Start: &day, End: &tomorrow}
	case "yesterday":
		start := day.Add(-24 * time.Hour)
		return DateRange{Start: &start, End: &day}
	case "last7":
		return since(7)
	case "last14":
		return since(14)
	case "last30":
		return since(30)
	case "last90":
		return since(90)
	default:
		return DateRange{}
	}
}

// ResolveDivision validates a requested division against the borrower's
// known divisions, falling back to the all-divisions filter.
func ResolveDivision(db *gorm.DB, borrowerId int, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || strings.EqualFold(requested, AllDivisions) {
		return AllDivisions, nil
	}
	divisions, err := models.BorrowerDivisions(db, borrowerId)
	if err != nil {
		return AllDivisions, err
	}
	for _, d := range divisions {
		if strings.EqualFold(d, requested) {
			return d, nil
		}
	}
	return AllDivisions, nil
}

// scopeRows applies the common borrower/division/date filters to a row
// query. dateColumn is the row family's date column.
func scopeRows(db *gorm.DB, borrowerId int, division string, dateColumn string, dates DateRange) *gorm.DB {
	q := db.Where("borrower_id = ?", borrowerId)
	if division != AllDivisions {
		q = q.Where("division = ?", division)
	}
	if dates.Start != nil {
		q = q.Where(dateColumn+" >= ?", *dates.Start)
	}
	if dates.End != nil {
		q = q.Where(dateColumn+" < ?", *dates.End)
	}
	return q
}

// ARPoint is one AR balance reading on the division trend chart.
type ARPoint struct {
	Label      string `json:"label"`
	Balance    string `json:"balance"`
	PctPastDue string `json:"pct_past_due"`
}

// ARHistory lists the borrower's AR balance readings for a division over
// the date range, oldest first.
func ARHistory(db *gorm.DB, borrowerId int, division string, dates DateRange) ([]ARPoint, error) {
	var rows []models.ARMetricsRow
	err := scopeRows(db, borrowerId, division, "as_of_date", dates).
		Order("as_of_date, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	points := make([]ARPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ARPoint{
			Label:      FormatDate(row.AsOfDate),
			Balance:    FormatCurrency(row.Balance),
			PctPastDue: FormatPct(row.PctPastDue),
		})
	}
	return points, nil
}
