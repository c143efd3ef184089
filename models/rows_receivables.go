package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AgingCompositionRow struct {
	ID         int              `gorm:"primary_key" json:"id"`
	BorrowerId *int             `gorm:"index" json:"borrower_id"`
	Borrower   *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId   *int             `gorm:"index" json:"report_id"`
	Report     *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division   *string          `gorm:"size:255" json:"division"`
	AsOfDate   *time.Time       `gorm:"type:date" json:"as_of_date"`
	Bucket     *string          `gorm:"size:255" json:"bucket"`
	PctOfTotal *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_of_total"`
	Amount     *decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AgingCompositionRow) TableName() string { return "aging_composition" }

type ARMetricsRow struct {
	ID         int              `gorm:"primary_key" json:"id"`
	BorrowerId *int             `gorm:"index" json:"borrower_id"`
	Borrower   *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId   *int             `gorm:"index" json:"report_id"`
	Report     *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division   *string          `gorm:"size:255" json:"division"`
	AsOfDate   *time.Time       `gorm:"type:date" json:"as_of_date"`
	Balance    *decimal.Decimal `gorm:"type:decimal(20,2)" json:"balance"`
	Dso        *decimal.Decimal `gorm:"type:decimal(20,6)" json:"dso"`
	PctPastDue *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_past_due"`
	CurrentAmt *decimal.Decimal `gorm:"type:decimal(20,2)" json:"current_amt"`
	PastDueAmt *decimal.Decimal `gorm:"type:decimal(20,2)" json:"past_due_amt"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ARMetricsRow) TableName() string { return "ar_metrics" }

type Top20ByTotalARRow struct {
	ID                      int              `gorm:"primary_key" json:"id"`
	BorrowerId              *int             `gorm:"index" json:"borrower_id"`
	Borrower                *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                *int             `gorm:"index" json:"report_id"`
	Report                  *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division                *string          `gorm:"size:255" json:"division"`
	AsOfDate                *time.Time       `gorm:"type:date" json:"as_of_date"`
	Customer                *string          `gorm:"size:255" json:"customer"`
	Current                 *decimal.Decimal `gorm:"type:decimal(20,2)" json:"current"`
	Col0To30                *decimal.Decimal `gorm:"column:col_0_30;type:decimal(20,2)" json:"col_0_30"`
	Col31To60               *decimal.Decimal `gorm:"column:col_31_60;type:decimal(20,2)" json:"col_31_60"`
	Col61To90               *decimal.Decimal `gorm:"column:col_61_90;type:decimal(20,2)" json:"col_61_90"`
	Col91Plus               *decimal.Decimal `gorm:"column:col_91_plus;type:decimal(20,2)" json:"col_91_plus"`
	TotalAr                 *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ar"`
	CoveragePctOfDivisionAr *decimal.Decimal `gorm:"type:decimal(12,6)" json:"coverage_pct_of_division_ar"`
	CreatedAt               time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Top20ByTotalARRow) TableName() string { return "top20_by_total_ar" }

type Top20ByPastDueRow struct {
	ID                           int              `gorm:"primary_key" json:"id"`
	BorrowerId                   *int             `gorm:"index" json:"borrower_id"`
	Borrower                     *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                     *int             `gorm:"index" json:"report_id"`
	Report                       *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division                     *string          `gorm:"size:255" json:"division"`
	AsOfDate                     *time.Time       `gorm:"type:date" json:"as_of_date"`
	Customer                     *string          `gorm:"size:255" json:"customer"`
	Current                      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"current"`
	Col0To30                     *decimal.Decimal `gorm:"column:col_0_30;type:decimal(20,2)" json:"col_0_30"`
	Col31To60                    *decimal.Decimal `gorm:"column:col_31_60;type:decimal(20,2)" json:"col_31_60"`
	Col61To90                    *decimal.Decimal `gorm:"column:col_61_90;type:decimal(20,2)" json:"col_61_90"`
	Col91Plus                    *decimal.Decimal `gorm:"column:col_91_plus;type:decimal(20,2)" json:"col_91_plus"`
	TotalAr                      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ar"`
	TotalPastDue                 *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_past_due"`
	CoveragePctOfDivisionPastDue *decimal.Decimal `gorm:"type:decimal(12,6)" json:"coverage_pct_of_division_past_due"`
	CreatedAt                    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Top20ByPastDueRow) TableName() string { return "top20_by_past_due" }

type IneligibleTrendRow struct {
	ID                int              `gorm:"primary_key" json:"id"`
	BorrowerId        *int             `gorm:"index" json:"borrower_id"`
	Borrower          *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId          *int             `gorm:"index" json:"report_id"`
	Report            *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date              *time.Time       `gorm:"type:date" json:"date"`
	Division          *string          `gorm:"size:255" json:"division"`
	TotalAr           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ar"`
	TotalIneligible   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ineligible"`
	IneligiblePctOfAr *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_ar"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IneligibleTrendRow) TableName() string { return "ineligible_trend" }

type IneligibleOverviewRow struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	BorrowerId           *int             `gorm:"index" json:"borrower_id"`
	Borrower             *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId             *int             `gorm:"index" json:"report_id"`
	Report               *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                 *time.Time       `gorm:"type:date" json:"date"`
	Division             *string          `gorm:"size:255" json:"division"`
	PastDueGt90Days      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"past_due_gt_90_days"`
	Dilution             *decimal.Decimal `gorm:"type:decimal(20,6)" json:"dilution"`
	CrossAge             *decimal.Decimal `gorm:"type:decimal(20,6)" json:"cross_age"`
	ConcentrationOverCap *decimal.Decimal `gorm:"type:decimal(20,6)" json:"concentration_over_cap"`
	Foreign              *decimal.Decimal `gorm:"type:decimal(20,6)" json:"foreign"`
	Government           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"government"`
	Intercompany         *decimal.Decimal `gorm:"type:decimal(20,6)" json:"intercompany"`
	Contra               *decimal.Decimal `gorm:"type:decimal(20,6)" json:"contra"`
	Other                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"other"`
	TotalIneligible      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ineligible"`
	IneligiblePctOfAr    *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_ar"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IneligibleOverviewRow) TableName() string { return "ineligible_overview" }

type ConcentrationADODSORow struct {
	ID                      int              `gorm:"primary_key" json:"id"`
	BorrowerId              *int             `gorm:"index" json:"borrower_id"`
	Borrower                *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                *int             `gorm:"index" json:"report_id"`
	Report                  *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division                *string          `gorm:"size:255" json:"division"`
	AsOfDate                *time.Time       `gorm:"type:date" json:"as_of_date"`
	Customer                *string          `gorm:"size:255" json:"customer"`
	CurrentConcentrationPct *decimal.Decimal `gorm:"type:decimal(12,6)" json:"current_concentration_pct"`
	AvgTtmConcentrationPct  *decimal.Decimal `gorm:"type:decimal(12,6)" json:"avg_ttm_concentration_pct"`
	VarianceConcentrationPp *decimal.Decimal `gorm:"type:decimal(20,2)" json:"variance_concentration_pp"`
	CurrentAdoDays          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"current_ado_days"`
	AvgTtmAdoDays           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"avg_ttm_ado_days"`
	VarianceAdoDays         *decimal.Decimal `gorm:"type:decimal(20,2)" json:"variance_ado_days"`
	CurrentDsoDays          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"current_dso_days"`
	AvgTtmDsoDays           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"avg_ttm_dso_days"`
	VarianceDsoDays         *decimal.Decimal `gorm:"type:decimal(20,2)" json:"variance_dso_days"`
	CreatedAt               time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConcentrationADODSORow) TableName() string { return "concentration_ado_dso" }
