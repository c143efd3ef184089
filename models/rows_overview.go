package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row families follow the sheet layout 1:1. All cell-backed fields are
// pointers: a nil field means the cell was blank or unparseable. Decimal
// columns are decimal(20,2) for money, decimal(12,6) for percentages and
// decimal(20,6) for general numerics.

// BorrowerOverviewRow stores the overview sheet's key/value record verbatim.
type BorrowerOverviewRow struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	BorrowerId          *int             `gorm:"index" json:"borrower_id"`
	Borrower            *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId            *int             `gorm:"index" json:"report_id"`
	Report              *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Company             *string          `gorm:"size:255" json:"company"`
	CompanyId           *int64           `json:"company_id"`
	Industry            *string          `gorm:"size:255" json:"industry"`
	PrimaryNaics        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"primary_naics"`
	Website             *string          `gorm:"size:255" json:"website"`
	PrimaryContact      *string          `gorm:"size:255" json:"primary_contact"`
	PrimaryContactPhone *string          `gorm:"size:30" json:"primary_contact_phone"`
	PrimaryContactEmail *string          `gorm:"size:255" json:"primary_contact_email"`
	UpdateInterval      *time.Time       `gorm:"type:date" json:"update_interval"`
	CurrentUpdate       *time.Time       `gorm:"type:date" json:"current_update"`
	PreviousUpdate      *time.Time       `gorm:"type:date" json:"previous_update"`
	NextUpdate          *time.Time       `gorm:"type:date" json:"next_update"`
	Lender              *string          `gorm:"size:255" json:"lender"`
	LenderId            *int64           `json:"lender_id"`
	SpecificIndividual  *string          `gorm:"size:255" json:"specific_individual"`
	SpecificId          *int64           `json:"specific_id"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BorrowerOverviewRow) TableName() string { return "borrower_overview" }

type CollateralOverviewRow struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	BorrowerId           *int             `gorm:"index" json:"borrower_id"`
	Borrower             *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId             *int             `gorm:"index" json:"report_id"`
	Report               *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MainType             *string          `gorm:"size:255" json:"main_type"`
	SubType              *string          `gorm:"size:255" json:"sub_type"`
	BeginningCollateral  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"beginning_collateral"`
	Ineligibles          *decimal.Decimal `gorm:"type:decimal(20,6)" json:"ineligibles"`
	EligibleCollateral   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"eligible_collateral"`
	NolvPct              *decimal.Decimal `gorm:"type:decimal(12,6)" json:"nolv_pct"`
	DilutionRate         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"dilution_rate"`
	AdvancedRate         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"advanced_rate"`
	RateLimit            *decimal.Decimal `gorm:"type:decimal(12,6)" json:"rate_limit"`
	UtilizedRate         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"utilized_rate"`
	PreReserveCollateral *decimal.Decimal `gorm:"type:decimal(20,2)" json:"pre_reserve_collateral"`
	Reserves             *decimal.Decimal `gorm:"type:decimal(20,6)" json:"reserves"`
	NetCollateral        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"net_collateral"`
	SnapshotSummary      *string          `gorm:"type:text" json:"snapshot_summary"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CollateralOverviewRow) TableName() string { return "collateral_overview" }

// Snapshot summary sections shown across dashboards.
const (
	SnapshotSectionAccountsReceivable = "accounts_receivable"
	SnapshotSectionInventorySummary   = "inventory_summary"
	SnapshotSectionOtherCollateral    = "other_collateral"
	SnapshotSectionRisk               = "risk"
	SnapshotSectionForecastLiquidity  = "forecast_liquidity"
	SnapshotSectionForecastSalesGM    = "forecast_sales_gm"
	SnapshotSectionForecastAR         = "forecast_ar"
	SnapshotSectionForecastInventory  = "forecast_inventory"
	SnapshotSectionWeekSummary        = "week_summary"
)

// SnapshotSummaryRow is lender-authored narrative text per dashboard section,
// unique per (borrower, section).
type SnapshotSummaryRow struct {
	ID          int       `gorm:"primary_key" json:"id"`
	BorrowerId  int       `gorm:"not null;uniqueIndex:idx_snapshot_borrower_section" json:"borrower_id"`
	Borrower    *Borrower `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Section     string    `gorm:"size:64;not null;uniqueIndex:idx_snapshot_borrower_section" json:"section"`
	SummaryText *string   `gorm:"type:text" json:"summary_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SnapshotSummaryRow) TableName() string { return "snapshot_summaries" }

// UpsertSnapshotSummary writes the narrative for one borrower section,
// replacing any existing text.
func UpsertSnapshotSummary(tx *gorm.DB, borrowerId int, section string, text *string) error {
	row := SnapshotSummaryRow{BorrowerId: borrowerId, Section: section, SummaryText: text}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "borrower_id"}, {Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"summary_text", "updated_at"}),
	}).Create(&row).Error
}

// SnapshotSummaries returns the borrower's section narratives keyed by
// section name.
func SnapshotSummaries(db *gorm.DB, borrowerId int) (map[string]string, error) {
	var rows []SnapshotSummaryRow
	if err := db.Where("borrower_id = ?", borrowerId).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.SummaryText != nil {
			out[row.Section] = *row.SummaryText
		}
	}
	return out, nil
}

type MachineryEquipmentRow struct {
	ID                           int              `gorm:"primary_key" json:"id"`
	BorrowerId                   *int             `gorm:"index" json:"borrower_id"`
	Borrower                     *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                     *int             `gorm:"index" json:"report_id"`
	Report                       *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	EquipmentType                *string          `gorm:"size:255" json:"equipment_type"`
	Manufacturer                 *string          `gorm:"size:255" json:"manufacturer"`
	SerialNumber                 *string          `gorm:"size:255" json:"serial_number"`
	Year                         *int64           `json:"year"`
	Condition                    *string          `gorm:"size:255" json:"condition"`
	FairMarketValue              *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fair_market_value"`
	OrderlyLiquidationValue      *int64           `json:"orderly_liquidation_value"`
	TotalAssetCount              *int64           `json:"total_asset_count"`
	TotalFairMarketValue         *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_fair_market_value"`
	TotalOrderlyLiquidationValue *int64           `json:"total_orderly_liquidation_value"`
	CreatedAt                    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MachineryEquipmentRow) TableName() string { return "machinery_and_equipment" }

// ValueTrendRow tracks estimated vs appraised orderly liquidation value over time.
type ValueTrendRow struct {
	ID           int              `gorm:"primary_key" json:"id"`
	BorrowerId   *int             `gorm:"index" json:"borrower_id"`
	Borrower     *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId     *int             `gorm:"index" json:"report_id"`
	Report       *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date         *time.Time       `gorm:"type:date" json:"date"`
	EstimatedOlv *decimal.Decimal `gorm:"type:decimal(20,2)" json:"estimated_olv"`
	AppraisedOlv *decimal.Decimal `gorm:"type:decimal(20,2)" json:"appraised_olv"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ValueTrendRow) TableName() string { return "value_trend" }
