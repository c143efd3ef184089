package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastRow is one monthly observation, tagged actual or forecast in
// actual_forecast.
type ForecastRow struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	BorrowerId           *int             `gorm:"index" json:"borrower_id"`
	Borrower             *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId             *int             `gorm:"index" json:"report_id"`
	Report               *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AsOfDate             *time.Time       `gorm:"type:date" json:"as_of_date"`
	Period               *time.Time       `gorm:"type:date" json:"period"`
	ActualForecast       *string          `gorm:"size:50" json:"actual_forecast"`
	AvailableCollateral  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_collateral"`
	LoanBalance          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"loan_balance"`
	RevolverAvailability *decimal.Decimal `gorm:"type:decimal(20,2)" json:"revolver_availability"`
	NetSales             *decimal.Decimal `gorm:"type:decimal(20,2)" json:"net_sales"`
	GrossMarginPct       *decimal.Decimal `gorm:"type:decimal(12,6)" json:"gross_margin_pct"`
	Ar                   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ar"`
	FinishedGoods        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"finished_goods"`
	RawMaterials         *decimal.Decimal `gorm:"type:decimal(20,2)" json:"raw_materials"`
	WorkInProcess        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"work_in_process"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ForecastRow) TableName() string { return "forecast" }

// Thirteen-week grids share the (date, category, x, week_1..week_13) shape.

type AvailabilityForecastRow struct {
	ID         int              `gorm:"primary_key" json:"id"`
	BorrowerId *int             `gorm:"index" json:"borrower_id"`
	Borrower   *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId   *int             `gorm:"index" json:"report_id"`
	Report     *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date       *time.Time       `gorm:"type:date" json:"date"`
	Category   *string          `gorm:"size:255" json:"category"`
	X          *string          `gorm:"size:255" json:"x"`
	Week1      *decimal.Decimal `gorm:"column:week_1;type:decimal(20,2)" json:"week_1"`
	Week2      *decimal.Decimal `gorm:"column:week_2;type:decimal(20,2)" json:"week_2"`
	Week3      *decimal.Decimal `gorm:"column:week_3;type:decimal(20,2)" json:"week_3"`
	Week4      *decimal.Decimal `gorm:"column:week_4;type:decimal(20,2)" json:"week_4"`
	Week5      *decimal.Decimal `gorm:"column:week_5;type:decimal(20,2)" json:"week_5"`
	Week6      *decimal.Decimal `gorm:"column:week_6;type:decimal(20,2)" json:"week_6"`
	Week7      *decimal.Decimal `gorm:"column:week_7;type:decimal(20,2)" json:"week_7"`
	Week8      *decimal.Decimal `gorm:"column:week_8;type:decimal(20,2)" json:"week_8"`
	Week9      *decimal.Decimal `gorm:"column:week_9;type:decimal(20,2)" json:"week_9"`
	Week10     *decimal.Decimal `gorm:"column:week_10;type:decimal(20,2)" json:"week_10"`
	Week11     *decimal.Decimal `gorm:"column:week_11;type:decimal(20,2)" json:"week_11"`
	Week12     *decimal.Decimal `gorm:"column:week_12;type:decimal(20,2)" json:"week_12"`
	Week13     *decimal.Decimal `gorm:"column:week_13;type:decimal(20,2)" json:"week_13"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AvailabilityForecastRow) TableName() string { return "availability_forecast" }

type CashForecastRow struct {
	ID         int              `gorm:"primary_key" json:"id"`
	BorrowerId *int             `gorm:"index" json:"borrower_id"`
	Borrower   *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId   *int             `gorm:"index" json:"report_id"`
	Report     *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date       *time.Time       `gorm:"type:date" json:"date"`
	Category   *string          `gorm:"size:255" json:"category"`
	X          *string          `gorm:"size:255" json:"x"`
	Week1      *decimal.Decimal `gorm:"column:week_1;type:decimal(20,2)" json:"week_1"`
	Week2      *decimal.Decimal `gorm:"column:week_2;type:decimal(20,2)" json:"week_2"`
	Week3      *decimal.Decimal `gorm:"column:week_3;type:decimal(20,2)" json:"week_3"`
	Week4      *decimal.Decimal `gorm:"column:week_4;type:decimal(20,2)" json:"week_4"`
	Week5      *decimal.Decimal `gorm:"column:week_5;type:decimal(20,2)" json:"week_5"`
	Week6      *decimal.Decimal `gorm:"column:week_6;type:decimal(20,2)" json:"week_6"`
	Week7      *decimal.Decimal `gorm:"column:week_7;type:decimal(20,2)" json:"week_7"`
	Week8      *decimal.Decimal `gorm:"column:week_8;type:decimal(20,2)" json:"week_8"`
	Week9      *decimal.Decimal `gorm:"column:week_9;type:decimal(20,2)" json:"week_9"`
	Week10     *decimal.Decimal `gorm:"column:week_10;type:decimal(20,2)" json:"week_10"`
	Week11     *decimal.Decimal `gorm:"column:week_11;type:decimal(20,2)" json:"week_11"`
	Week12     *decimal.Decimal `gorm:"column:week_12;type:decimal(20,2)" json:"week_12"`
	Week13     *decimal.Decimal `gorm:"column:week_13;type:decimal(20,2)" json:"week_13"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CashForecastRow) TableName() string { return "cash_forecast" }

type CashFlowForecastRow struct {
	ID         int              `gorm:"primary_key" json:"id"`
	BorrowerId *int             `gorm:"index" json:"borrower_id"`
	Borrower   *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId   *int             `gorm:"index" json:"report_id"`
	Report     *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date       *time.Time       `gorm:"type:date" json:"date"`
	Category   *string          `gorm:"size:255" json:"category"`
	X          *string          `gorm:"size:255" json:"x"`
	Week1      *decimal.Decimal `gorm:"column:week_1;type:decimal(20,2)" json:"week_1"`
	Week2      *decimal.Decimal `gorm:"column:week_2;type:decimal(20,2)" json:"week_2"`
	Week3      *decimal.Decimal `gorm:"column:week_3;type:decimal(20,2)" json:"week_3"`
	Week4      *decimal.Decimal `gorm:"column:week_4;type:decimal(20,2)" json:"week_4"`
	Week5      *decimal.Decimal `gorm:"column:week_5;type:decimal(20,2)" json:"week_5"`
	Week6      *decimal.Decimal `gorm:"column:week_6;type:decimal(20,2)" json:"week_6"`
	Week7      *decimal.Decimal `gorm:"column:week_7;type:decimal(20,2)" json:"week_7"`
	Week8      *decimal.Decimal `gorm:"column:week_8;type:decimal(20,2)" json:"week_8"`
	Week9      *decimal.Decimal `gorm:"column:week_9;type:decimal(20,2)" json:"week_9"`
	Week10     *decimal.Decimal `gorm:"column:week_10;type:decimal(20,2)" json:"week_10"`
	Week11     *decimal.Decimal `gorm:"column:week_11;type:decimal(20,2)" json:"week_11"`
	Week12     *decimal.Decimal `gorm:"column:week_12;type:decimal(20,2)" json:"week_12"`
	Week13     *decimal.Decimal `gorm:"column:week_13;type:decimal(20,2)" json:"week_13"`
	Total      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CashFlowForecastRow) TableName() string { return "cash_flow_forecast" }

type CurrentWeekVarianceRow struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BorrowerId  *int             `gorm:"index" json:"borrower_id"`
	Borrower    *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId    *int             `gorm:"index" json:"report_id"`
	Report      *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date        *time.Time       `gorm:"type:date" json:"date"`
	Category    *string          `gorm:"size:255" json:"category"`
	Projected   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"projected"`
	Actual      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"actual"`
	Variance    *decimal.Decimal `gorm:"type:decimal(20,2)" json:"variance"`
	VariancePct *decimal.Decimal `gorm:"type:decimal(12,6)" json:"variance_pct"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CurrentWeekVarianceRow) TableName() string { return "current_week_variance" }

type CumulativeVarianceRow struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BorrowerId  *int             `gorm:"index" json:"borrower_id"`
	Borrower    *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId    *int             `gorm:"index" json:"report_id"`
	Report      *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date        *time.Time       `gorm:"type:date" json:"date"`
	Category    *string          `gorm:"size:255" json:"category"`
	Projected   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"projected"`
	Actual      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"actual"`
	Variance    *decimal.Decimal `gorm:"type:decimal(20,2)" json:"variance"`
	VariancePct *decimal.Decimal `gorm:"type:decimal(12,6)" json:"variance_pct"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CumulativeVarianceRow) TableName() string { return "cumulative_variance" }
