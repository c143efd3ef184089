package dashboard

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

type BorrowerCard struct {
	CompanyName    string `json:"company_name"`
	CompanyId      string `json:"company_id"`
	Industry       string `json:"industry"`
	PrimaryNaics   string `json:"primary_naics"`
	Website        string `json:"website"`
	WebsiteUrl     string `json:"website_url"`
	PrimaryContact string `json:"primary_contact"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	UpdateInterval string `json:"update_interval"`
	CurrentUpdate  string `json:"current_update"`
	PreviousUpdate string `json:"previous_update"`
	NextUpdate     string `json:"next_update"`
	Lender         string `json:"lender"`
}

type CollateralRow struct {
	Slug         string          `json:"slug"`
	Label        string          `json:"label"`
	SubType      string          `json:"sub_type"`
	Beginning    string          `json:"beginning"`
	Ineligibles  string          `json:"ineligibles"`
	Eligible     string          `json:"eligible"`
	NolvPct      string          `json:"nolv_pct"`
	DilutionRate string          `json:"dilution_rate"`
	AdvancedRate string          `json:"advanced_rate"`
	RateLimit    string          `json:"rate_limit"`
	UtilizedRate string          `json:"utilized_rate"`
	PreReserve   string          `json:"pre_reserve"`
	Reserves     string          `json:"reserves"`
	Net          string          `json:"net"`
	Children     []CollateralRow `json:"children,omitempty"`
}

type Insight struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

type SummaryPayload struct {
	Borrower   BorrowerCard      `json:"borrower"`
	Collateral []CollateralRow   `json:"collateral"`
	Insights   []Insight         `json:"insights"`
	Narratives map[string]string `json:"narratives"`
}

// BuildBorrowerCard flattens borrower and company details for the header
// card. Every field degrades to the placeholder.
func BuildBorrowerCard(borrower *models.Borrower) BorrowerCard {
	card := BorrowerCard{
		CompanyName: Placeholder, CompanyId: Placeholder, Industry: Placeholder,
		PrimaryNaics: Placeholder, Website: Placeholder, WebsiteUrl: Placeholder,
		PrimaryContact: Placeholder, ContactPhone: Placeholder, ContactEmail: Placeholder,
		UpdateInterval: Placeholder, CurrentUpdate: Placeholder, PreviousUpdate: Placeholder,
		NextUpdate: Placeholder, Lender: Placeholder,
	}
	if borrower == nil {
		return card
	}
	if borrower.Company != nil {
		card.CompanyName = SafeStr(borrower.Company.Company)
		card.CompanyId = utils.FormatInt64(borrower.Company.CompanyId)
	}
	card.Industry = SafeStr(borrower.Industry)
	card.PrimaryNaics = SafeStr(borrower.PrimaryNaics)
	card.Website = SafeStr(borrower.Website)
	card.WebsiteUrl = websiteUrl(borrower.Website)
	card.PrimaryContact = SafeStr(borrower.PrimaryContact)
	card.ContactPhone = SafeStr(borrower.PrimaryContactPhone)
	card.ContactEmail = SafeStr(borrower.PrimaryContactEmail)
	card.UpdateInterval = SafeStr(borrower.UpdateInterval)
	card.CurrentUpdate = FormatDate(borrower.CurrentUpdate)
	card.PreviousUpdate = FormatDate(borrower.PreviousUpdate)
	card.NextUpdate = FormatDate(borrower.NextUpdate)
	card.Lender = SafeStr(borrower.Lender)
	return card
}

func websiteUrl(website *string) string {
	if website == nil || strings.TrimSpace(*website) == "" {
		return Placeholder
	}
	url := strings.TrimSpace(*website)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// LatestCollateralSnapshot returns the most recent group of collateral
// rows. Rows from one import share a created_at; the newest group wins.
func LatestCollateralSnapshot(db *gorm.DB, borrowerId int, dates DateRange) ([]models.CollateralOverviewRow, error) {
	q := db.Model(&models.CollateralOverviewRow{}).Where("borrower_id = ?", borrowerId)
	if dates.Start != nil {
		q = q.Where("created_at >= ?", *dates.Start)
	}
	if dates.End != nil {
		q = q.Where("created_at < ?", *dates.End)
	}

	var latest sql.NullTime
	if err := q.Session(&gorm.Session{}).Select("MAX(created_at)").Scan(&latest).Error; err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	var rows []models.CollateralOverviewRow
	err := q.Session(&gorm.Session{}).Where("created_at = ?", latest.Time).Order("id").Find(&rows).Error
	return rows, err
}

func formatCollateralRow(row models.CollateralOverviewRow) CollateralRow {
	label := SafeStr(row.MainType)
	return CollateralRow{
		Slug:         utils.Slugify(label),
		Label:        label,
		SubType:      SafeStr(row.SubType),
		Beginning:    FormatCurrency(row.BeginningCollateral),
		Ineligibles:  FormatCurrency(row.Ineligibles),
		Eligible:     FormatCurrency(row.EligibleCollateral),
		NolvPct:      FormatPct(row.NolvPct),
		DilutionRate: FormatPct(row.DilutionRate),
		AdvancedRate: FormatPct(row.AdvancedRate),
		RateLimit:    FormatPct(row.RateLimit),
		UtilizedRate: FormatPct(row.UtilizedRate),
		PreReserve:   FormatCurrency(row.PreReserveCollateral),
		Reserves:     FormatCurrency(row.Reserves),
		Net:          FormatCurrency(row.NetCollateral),
	}
}

// BuildCollateralTree groups snapshot rows into a two-level tree: rows
// without a sub-type are parents, rows with one nest under the parent
// sharing their main type. A child whose parent never appears gets a
// synthesized parent so it stays visible.
func BuildCollateralTree(rows []models.CollateralOverviewRow) []CollateralRow {
	var order []string
	parents := map[string]*CollateralRow{}

	for _, row := range rows {
		if row.SubType != nil && strings.TrimSpace(*row.SubType) != "" {
			continue
		}
		formatted := formatCollateralRow(row)
		if _, exists := parents[formatted.Slug]; !exists {
			order = append(order, formatted.Slug)
			parents[formatted.Slug] = &formatted
		}
	}
	for _, row := range rows {
		if row.SubType == nil || strings.TrimSpace(*row.SubType) == "" {
			continue
		}
		formatted := formatCollateralRow(row)
		parent, ok := parents[formatted.Slug]
		if !ok {
			synthesized := CollateralRow{
				Slug: formatted.Slug, Label: formatted.Label,
				SubType: Placeholder, Beginning: Placeholder, Ineligibles: Placeholder,
				Eligible: Placeholder, NolvPct: Placeholder, DilutionRate: Placeholder,
				AdvancedRate: Placeholder, RateLimit: Placeholder, UtilizedRate: Placeholder,
				PreReserve: Placeholder, Reserves: Placeholder, Net: Placeholder,
			}
			order = append(order, formatted.Slug)
			parents[formatted.Slug] = &synthesized
			parent = &synthesized
		}
		parent.Children = append(parent.Children, formatted)
	}

	out := make([]CollateralRow, 0, len(order))
	for _, slug := range order {
		out = append(out, *parents[slug])
	}
	return out
}

// BuildInsights computes the headline figures: net collateral, latest AR
// outstanding and remaining availability.
func BuildInsights(db *gorm.DB, borrowerId int, rows []models.CollateralOverviewRow) ([]Insight, error) {
	net := decimal.Zero
	eligible := decimal.Zero
	ineligible := decimal.Zero
	for _, row := range rows {
		if row.NetCollateral != nil {
			net = net.Add(*row.NetCollateral)
		}
		if row.EligibleCollateral != nil {
			eligible = eligible.Add(*row.EligibleCollateral)
		}
		if row.Ineligibles != nil {
			ineligible = ineligible.Add(*row.Ineligibles)
		}
	}

	netValue, availValue := Placeholder, Placeholder
	if len(rows) > 0 {
		netValue = FormatCurrency(&net)
		avail := eligible.Sub(ineligible)
		if avail.Sign() < 0 {
			avail = decimal.Zero
		}
		availValue = FormatCurrency(&avail)
	}

	outstanding := Insight{Label: "AR Outstanding", Value: Placeholder, Detail: "Awaiting AR snapshot"}
	var latestAR models.ARMetricsRow
	err := db.Where("borrower_id = ?", borrowerId).
		Order("as_of_date DESC, id DESC").
		Take(&latestAR).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		outstanding.Value = FormatCurrency(latestAR.Balance)
		if latestAR.AsOfDate != nil {
			outstanding.Detail = "As of " + FormatDate(latestAR.AsOfDate)
		} else {
			outstanding.Detail = ""
		}
	}

	return []Insight{
		{Label: "Net Collateral", Value: netValue},
		outstanding,
		{Label: "Availability", Value: availValue},
	}, nil
}

// BuildSummary assembles the borrower summary dashboard.
func BuildSummary(db *gorm.DB, borrowerId int, dates DateRange) (*SummaryPayload, error) {
	var borrower models.Borrower
	err := db.Preload("Company").Take(&borrower, borrowerId).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var card BorrowerCard
	if err == nil {
		card = BuildBorrowerCard(&borrower)
	} else {
		card = BuildBorrowerCard(nil)
	}

	rows, err := LatestCollateralSnapshot(db, borrowerId, dates)
	if err != nil {
		return nil, err
	}
	insights, err := BuildInsights(db, borrowerId, rows)
	if err != nil {
		return nil, err
	}
	narratives, err := models.SnapshotSummaries(db, borrowerId)
	if err != nil {
		return nil, err
	}
	return &SummaryPayload{
		Borrower:   card,
		Collateral: BuildCollateralTree(rows),
		Insights:   insights,
		Narratives: narratives,
	}, nil
}
