package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FGInventoryMetricsRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	AsOfDate                 *time.Time       `gorm:"type:date" json:"as_of_date"`
	TotalInventory           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGInventoryMetricsRow) TableName() string { return "fg_inventory_metrics" }

type FGIneligibleDetailRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                     *time.Time       `gorm:"type:date" json:"date"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	SlowMovingObsolete       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"slow_moving_obsolete"`
	Aged                     *decimal.Decimal `gorm:"type:decimal(20,6)" json:"aged"`
	OffSite                  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"off_site"`
	Consigned                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"consigned"`
	InTransit                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"in_transit"`
	DamagedNonSaleable       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"damaged_non_saleable"`
	TotalIneligible          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ineligible"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGIneligibleDetailRow) TableName() string { return "fg_ineligible_detail" }

type FGCompositionRow struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BorrowerId  *int             `gorm:"index" json:"borrower_id"`
	Borrower    *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId    *int             `gorm:"index" json:"report_id"`
	Report      *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division    *string          `gorm:"size:255" json:"division"`
	AsOfDate    *time.Time       `gorm:"type:date" json:"as_of_date"`
	FgAvailable *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_available"`
	Fg0To13     *decimal.Decimal `gorm:"column:fg_0_13;type:decimal(20,6)" json:"fg_0_13"`
	Fg13To26    *decimal.Decimal `gorm:"column:fg_13_26;type:decimal(20,6)" json:"fg_13_26"`
	Fg26To39    *decimal.Decimal `gorm:"column:fg_26_39;type:decimal(20,6)" json:"fg_26_39"`
	Fg39To52    *decimal.Decimal `gorm:"column:fg_39_52;type:decimal(20,6)" json:"fg_39_52"`
	Fg52Plus    *decimal.Decimal `gorm:"column:fg_52_plus;type:decimal(20,6)" json:"fg_52_plus"`
	FgNoSales   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_no_sales"`
	InlinePct   *decimal.Decimal `gorm:"type:decimal(12,6)" json:"inline_pct"`
	ExcessPct   *decimal.Decimal `gorm:"type:decimal(12,6)" json:"excess_pct"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGCompositionRow) TableName() string { return "fg_composition" }

type FGInlineCategoryAnalysisRow struct {
	ID             int              `gorm:"primary_key" json:"id"`
	BorrowerId     *int             `gorm:"index" json:"borrower_id"`
	Borrower       *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId       *int             `gorm:"index" json:"report_id"`
	Report         *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division       *string          `gorm:"size:255" json:"division"`
	AsOfDate       *time.Time       `gorm:"type:date" json:"as_of_date"`
	Category       *string          `gorm:"size:255" json:"category"`
	FgTotal        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_total"`
	FgIneligible   *decimal.Decimal `gorm:"type:decimal(20,6)" json:"fg_ineligible"`
	FgAvailable    *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_available"`
	PctOfAvailable *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_of_available"`
	Sales          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"sales"`
	Cogs           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"cogs"`
	Gm             *decimal.Decimal `gorm:"type:decimal(20,6)" json:"gm"`
	GmPct          *decimal.Decimal `gorm:"type:decimal(12,6)" json:"gm_pct"`
	WeeksOfSupply  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"weeks_of_supply"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGInlineCategoryAnalysisRow) TableName() string { return "fg_inline_category_analysis" }

// FGInlineExcessByCategoryRow derives its total and percentage columns from
// the four dollar buckets; BeforeSave keeps them consistent however the row
// is written (import or form edit).
type FGInlineExcessByCategoryRow struct {
	ID                 int              `gorm:"primary_key" json:"id"`
	BorrowerId         *int             `gorm:"index" json:"borrower_id"`
	Borrower           *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId           *int             `gorm:"index" json:"report_id"`
	Report             *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division           *string          `gorm:"size:255" json:"division"`
	AsOfDate           *time.Time       `gorm:"type:date" json:"as_of_date"`
	Category           *string          `gorm:"size:255" json:"category"`
	FgAvailable        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_available"`
	NewDollars         *decimal.Decimal `gorm:"type:decimal(20,2)" json:"new_dollars"`
	NewPct             *decimal.Decimal `gorm:"type:decimal(12,6)" json:"new_pct"`
	InlineDollars      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"inline_dollars"`
	InlinePct          *decimal.Decimal `gorm:"type:decimal(12,6)" json:"inline_pct"`
	ExcessDollars      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"excess_dollars"`
	ExcessPct          *decimal.Decimal `gorm:"type:decimal(12,6)" json:"excess_pct"`
	NoSalesDollars     *decimal.Decimal `gorm:"type:decimal(20,2)" json:"no_sales_dollars"`
	NoSalesPct         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"no_sales_pct"`
	TotalInlineDollars *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inline_dollars"`
	TotalInlinePct     *decimal.Decimal `gorm:"type:decimal(12,6)" json:"total_inline_pct"`
	TotalExcessDollars *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_excess_dollars"`
	TotalExcessPct     *decimal.Decimal `gorm:"type:decimal(12,6)" json:"total_excess_pct"`
	TotalDollars       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_dollars"`
	TotalPct           *decimal.Decimal `gorm:"type:decimal(12,6)" json:"total_pct"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGInlineExcessByCategoryRow) TableName() string { return "fg_inline_excess_by_category" }

func (r *FGInlineExcessByCategoryRow) BeforeSave(tx *gorm.DB) error {
	toDec := func(v *decimal.Decimal) decimal.Decimal {
		if v == nil {
			return decimal.Zero
		}
		return *v
	}

	newAmount := toDec(r.NewDollars)
	inlineAmount := toDec(r.InlineDollars)
	excessAmount := toDec(r.ExcessDollars)
	noSalesAmount := toDec(r.NoSalesDollars)

	totalInline := newAmount.Add(inlineAmount)
	totalExcess := excessAmount.Add(noSalesAmount)
	total := totalInline.Add(totalExcess)

	pctOfTotal := func(amount decimal.Decimal) *decimal.Decimal {
		if total.Sign() <= 0 {
			return decPtr(decimal.Zero)
		}
		return decPtr(amount.Div(total))
	}

	r.TotalInlineDollars = decPtr(totalInline)
	r.TotalExcessDollars = decPtr(totalExcess)
	r.TotalDollars = decPtr(total)

	r.NewPct = pctOfTotal(newAmount)
	r.InlinePct = pctOfTotal(inlineAmount)
	r.ExcessPct = pctOfTotal(excessAmount)
	r.NoSalesPct = pctOfTotal(noSalesAmount)
	r.TotalInlinePct = pctOfTotal(totalInline)
	r.TotalExcessPct = pctOfTotal(totalExcess)
	if total.Sign() > 0 {
		r.TotalPct = decPtr(decimal.NewFromInt(1))
	} else {
		r.TotalPct = decPtr(decimal.Zero)
	}
	return nil
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type SalesGMTrendRow struct {
	ID                 int              `gorm:"primary_key" json:"id"`
	BorrowerId         *int             `gorm:"index" json:"borrower_id"`
	Borrower           *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId           *int             `gorm:"index" json:"report_id"`
	Report             *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division           *string          `gorm:"size:255" json:"division"`
	AsOfDate           *time.Time       `gorm:"type:date" json:"as_of_date"`
	NetSales           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"net_sales"`
	GrossMarginPct     *decimal.Decimal `gorm:"type:decimal(12,6)" json:"gross_margin_pct"`
	GrossMarginDollars *decimal.Decimal `gorm:"type:decimal(20,2)" json:"gross_margin_dollars"`
	TtmSales           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ttm_sales"`
	TtmSalesPrior      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ttm_sales_prior"`
	TrendTtmPct        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"trend_ttm_pct"`
	Ma3                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"ma3"`
	Ma3Prior           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"ma3_prior"`
	Trend3MPct         *decimal.Decimal `gorm:"column:trend_3_m_pct;type:decimal(12,6)" json:"trend_3_m_pct"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SalesGMTrendRow) TableName() string { return "sales_gm_trend" }

type HistoricalTop20SKUsRow struct {
	ID          int              `gorm:"primary_key" json:"id"`
	BorrowerId  *int             `gorm:"index" json:"borrower_id"`
	Borrower    *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId    *int             `gorm:"index" json:"report_id"`
	Report      *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division    *string          `gorm:"size:255" json:"division"`
	AsOfDate    *time.Time       `gorm:"type:date" json:"as_of_date"`
	ItemNumber  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"item_number"`
	Category    *string          `gorm:"size:255" json:"category"`
	Description *string          `gorm:"type:text" json:"description"`
	Cost        *decimal.Decimal `gorm:"type:decimal(20,6)" json:"cost"`
	PctOfTotal  *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_of_total"`
	Cogs        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"cogs"`
	Gm          *decimal.Decimal `gorm:"type:decimal(20,6)" json:"gm"`
	GmPct       *decimal.Decimal `gorm:"type:decimal(12,6)" json:"gm_pct"`
	Wos         *decimal.Decimal `gorm:"type:decimal(20,6)" json:"wos"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HistoricalTop20SKUsRow) TableName() string { return "historical_top_20_sk_us" }

type RMInventoryMetricsRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	AsOfDate                 *time.Time       `gorm:"type:date" json:"as_of_date"`
	TotalInventory           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RMInventoryMetricsRow) TableName() string { return "rm_inventory_metrics" }

type RMIneligibleOverviewRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                     *time.Time       `gorm:"type:date" json:"date"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	SlowMovingObsolete       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"slow_moving_obsolete"`
	Aged                     *decimal.Decimal `gorm:"type:decimal(20,6)" json:"aged"`
	OffSite                  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"off_site"`
	Consigned                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"consigned"`
	InTransit                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"in_transit"`
	DamagedNonSaleable       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"damaged_non_saleable"`
	TotalIneligible          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ineligible"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RMIneligibleOverviewRow) TableName() string { return "rm_ineligible_overview" }

type RMCategoryHistoryRow struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	BorrowerId          *int             `gorm:"index" json:"borrower_id"`
	Borrower            *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId            *int             `gorm:"index" json:"report_id"`
	Report              *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                *time.Time       `gorm:"type:date" json:"date"`
	InventoryType       *string          `gorm:"size:255" json:"inventory_type"`
	Division            *string          `gorm:"size:255" json:"division"`
	Category            *string          `gorm:"size:255" json:"category"`
	TotalInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	PctAvailable        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RMCategoryHistoryRow) TableName() string { return "rm_category_history" }

type RMTop20HistoryRow struct {
	ID            int              `gorm:"primary_key" json:"id"`
	BorrowerId    *int             `gorm:"index" json:"borrower_id"`
	Borrower      *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId      *int             `gorm:"index" json:"report_id"`
	Report        *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InventoryType *string          `gorm:"size:255" json:"inventory_type"`
	Division      *string          `gorm:"size:255" json:"division"`
	AsOfDate      *time.Time       `gorm:"type:date" json:"as_of_date"`
	Sku           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"sku"`
	Category      *string          `gorm:"size:255" json:"category"`
	Description   *string          `gorm:"type:text" json:"description"`
	Amount        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Units         *decimal.Decimal `gorm:"type:decimal(20,6)" json:"units"`
	UsdUnit       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"usd_unit"`
	PctAvailable  *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RMTop20HistoryRow) TableName() string { return "rm_top20_history" }

type WIPInventoryMetricsRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	AsOfDate                 *time.Time       `gorm:"type:date" json:"as_of_date"`
	TotalInventory           *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WIPInventoryMetricsRow) TableName() string { return "wip_inventory_metrics" }

type WIPIneligibleOverviewRow struct {
	ID                       int              `gorm:"primary_key" json:"id"`
	BorrowerId               *int             `gorm:"index" json:"borrower_id"`
	Borrower                 *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId                 *int             `gorm:"index" json:"report_id"`
	Report                   *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                     *time.Time       `gorm:"type:date" json:"date"`
	InventoryType            *string          `gorm:"size:255" json:"inventory_type"`
	Division                 *string          `gorm:"size:255" json:"division"`
	SlowMovingObsolete       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"slow_moving_obsolete"`
	Aged                     *decimal.Decimal `gorm:"type:decimal(20,6)" json:"aged"`
	OffSite                  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"off_site"`
	Consigned                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"consigned"`
	InTransit                *decimal.Decimal `gorm:"type:decimal(20,6)" json:"in_transit"`
	DamagedNonSaleable       *decimal.Decimal `gorm:"type:decimal(20,6)" json:"damaged_non_saleable"`
	TotalIneligible          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_ineligible"`
	IneligiblePctOfInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"ineligible_pct_of_inventory"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WIPIneligibleOverviewRow) TableName() string { return "wip_ineligible_overview" }

type WIPCategoryHistoryRow struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	BorrowerId          *int             `gorm:"index" json:"borrower_id"`
	Borrower            *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId            *int             `gorm:"index" json:"report_id"`
	Report              *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                *time.Time       `gorm:"type:date" json:"date"`
	InventoryType       *string          `gorm:"size:255" json:"inventory_type"`
	Division            *string          `gorm:"size:255" json:"division"`
	Category            *string          `gorm:"size:255" json:"category"`
	TotalInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	PctAvailable        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WIPCategoryHistoryRow) TableName() string { return "wip_category_history" }

type WIPTop20HistoryRow struct {
	ID            int              `gorm:"primary_key" json:"id"`
	BorrowerId    *int             `gorm:"index" json:"borrower_id"`
	Borrower      *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId      *int             `gorm:"index" json:"report_id"`
	Report        *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	InventoryType *string          `gorm:"size:255" json:"inventory_type"`
	Division      *string          `gorm:"size:255" json:"division"`
	AsOfDate      *time.Time       `gorm:"type:date" json:"as_of_date"`
	Sku           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"sku"`
	Category      *string          `gorm:"size:255" json:"category"`
	Description   *string          `gorm:"type:text" json:"description"`
	Amount        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Units         *decimal.Decimal `gorm:"type:decimal(20,6)" json:"units"`
	UsdUnit       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"usd_unit"`
	PctAvailable  *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WIPTop20HistoryRow) TableName() string { return "wip_top20_history" }

type FGGrossRecoveryHistoryRow struct {
	ID            int              `gorm:"primary_key" json:"id"`
	BorrowerId    *int             `gorm:"index" json:"borrower_id"`
	Borrower      *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId      *int             `gorm:"index" json:"report_id"`
	Report        *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AsOfDate      *time.Time       `gorm:"type:date" json:"as_of_date"`
	Division      *string          `gorm:"size:255" json:"division"`
	Category      *string          `gorm:"size:255" json:"category"`
	Type          *string          `gorm:"size:255" json:"type"`
	Cost          *decimal.Decimal `gorm:"type:decimal(20,6)" json:"cost"`
	SellingPrice  *decimal.Decimal `gorm:"type:decimal(20,6)" json:"selling_price"`
	GrossRecovery *decimal.Decimal `gorm:"type:decimal(20,2)" json:"gross_recovery"`
	PctOfCost     *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_of_cost"`
	PctOfSp       *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_of_sp"`
	Wos           *decimal.Decimal `gorm:"type:decimal(20,6)" json:"wos"`
	GmPct         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"gm_pct"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FGGrossRecoveryHistoryRow) TableName() string { return "fg_gross_recovery_history" }

type WIPRecoveryRow struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	BorrowerId          *int             `gorm:"index" json:"borrower_id"`
	Borrower            *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId            *int             `gorm:"index" json:"report_id"`
	Report              *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                *time.Time       `gorm:"type:date" json:"date"`
	InventoryType       *string          `gorm:"size:255" json:"inventory_type"`
	Division            *string          `gorm:"size:255" json:"division"`
	Category            *string          `gorm:"size:255" json:"category"`
	TotalInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	PctAvailable        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	RecoveryPct         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"recovery_pct"`
	GrossRecovery       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"gross_recovery"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WIPRecoveryRow) TableName() string { return "wip_recovery" }

type RawMaterialRecoveryRow struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	BorrowerId          *int             `gorm:"index" json:"borrower_id"`
	Borrower            *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId            *int             `gorm:"index" json:"report_id"`
	Report              *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date                *time.Time       `gorm:"type:date" json:"date"`
	InventoryType       *string          `gorm:"size:255" json:"inventory_type"`
	Division            *string          `gorm:"size:255" json:"division"`
	Category            *string          `gorm:"size:255" json:"category"`
	TotalInventory      *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_inventory"`
	IneligibleInventory *decimal.Decimal `gorm:"type:decimal(20,2)" json:"ineligible_inventory"`
	AvailableInventory  *decimal.Decimal `gorm:"type:decimal(20,2)" json:"available_inventory"`
	PctAvailable        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_available"`
	RecoveryPct         *decimal.Decimal `gorm:"type:decimal(12,6)" json:"recovery_pct"`
	GrossRecovery       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"gross_recovery"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RawMaterialRecoveryRow) TableName() string { return "raw_material_recovery" }

type NOLVTableRow struct {
	ID           int              `gorm:"primary_key" json:"id"`
	BorrowerId   *int             `gorm:"index" json:"borrower_id"`
	Borrower     *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId     *int             `gorm:"index" json:"report_id"`
	Report       *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date         *time.Time       `gorm:"type:date" json:"date"`
	Division     *string          `gorm:"size:255" json:"division"`
	LineItem     *string          `gorm:"size:255" json:"line_item"`
	FgUsd        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"fg_usd"`
	FgPctCost    *decimal.Decimal `gorm:"type:decimal(12,6)" json:"fg_pct_cost"`
	RmUsd        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"rm_usd"`
	RmPctCost    *decimal.Decimal `gorm:"type:decimal(12,6)" json:"rm_pct_cost"`
	WipUsd       *decimal.Decimal `gorm:"type:decimal(20,2)" json:"wip_usd"`
	WipPctCost   *decimal.Decimal `gorm:"type:decimal(12,6)" json:"wip_pct_cost"`
	TotalUsd     *decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_usd"`
	TotalPctCost *decimal.Decimal `gorm:"type:decimal(12,6)" json:"total_pct_cost"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NOLVTableRow) TableName() string { return "nolv_table" }
