package importer

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

const insertBatchSize = 1000

// record is one data row keyed by normalized header.
type record map[string]string

func (r record) str(key string) *string { return toString(r[key]) }

func (r record) date(key string) *time.Time { return toDate(r[key]) }

func (r record) integer(key string) *int64 { return toInt(r[key]) }

// dec returns the first key that parses; extra keys cover header variants
// the normalizer maps differently (e.g. "New $" vs "New Dollars").
func (r record) dec(keys ...string) *decimal.Decimal {
	for _, key := range keys {
		if d := toDecimal(r[key]); d != nil {
			return d
		}
	}
	return nil
}

func (r record) emptyFor(fields []string) bool {
	for _, f := range fields {
		if !isBlank(r[f]) {
			return false
		}
	}
	return true
}

// rowRef carries the ownership keys stamped onto every inserted row.
type rowRef struct {
	BorrowerId *int
	ReportId   *int
}

type sheetDef struct {
	model    string
	hint     int
	required []string
	fields   []string
	replaces bool
	insert   func(tx *gorm.DB, ref rowRef, recs []record) (imported, skipped int, err error)
}

func (d sheetDef) knownFields() map[string]struct{} {
	known := make(map[string]struct{}, len(d.fields))
	for _, f := range d.fields {
		known[f] = struct{}{}
	}
	return known
}

func insertRows[T any](tx *gorm.DB, ref rowRef, recs []record, fields []string, build func(rowRef, record) T) (int, int, error) {
	rows := make([]T, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if rec.emptyFor(fields) {
			skipped++
			continue
		}
		rows = append(rows, build(ref, rec))
	}
	if len(rows) == 0 {
		return 0, skipped, nil
	}
	if err := tx.CreateInBatches(&rows, insertBatchSize).Error; err != nil {
		return 0, skipped, err
	}
	return len(rows), skipped, nil
}

func newSheetDef[T any](model string, hint int, required, fields []string, build func(rowRef, record) T) sheetDef {
	return sheetDef{
		model:    model,
		hint:     hint,
		required: required,
		fields:   fields,
		insert: func(tx *gorm.DB, ref rowRef, recs []record) (int, int, error) {
			return insertRows(tx, ref, recs, fields, build)
		},
	}
}

// replaceRows is the insert path for borrower-level reference sheets:
// when the sheet carries data, the borrower's existing rows are dropped
// before the new ones land. The surrounding transaction keeps the swap
// atomic.
func replaceRows[T any](tx *gorm.DB, ref rowRef, recs []record, fields []string, build func(rowRef, record) T) (int, int, error) {
	rows := make([]T, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if rec.emptyFor(fields) {
			skipped++
			continue
		}
		rows = append(rows, build(ref, rec))
	}
	if len(rows) == 0 {
		return 0, skipped, nil
	}
	if err := tx.Where("borrower_id = ?", ref.BorrowerId).Delete(new(T)).Error; err != nil {
		return 0, skipped, err
	}
	if err := tx.CreateInBatches(&rows, insertBatchSize).Error; err != nil {
		return 0, skipped, err
	}
	return len(rows), skipped, nil
}

func newReplaceSheetDef[T any](model string, hint int, required, fields []string, build func(rowRef, record) T) sheetDef {
	return sheetDef{
		model:    model,
		hint:     hint,
		required: required,
		fields:   fields,
		replaces: true,
		insert: func(tx *gorm.DB, ref rowRef, recs []record) (int, int, error) {
			return replaceRows(tx, ref, recs, fields, build)
		},
	}
}

var thirteenWeekFields = []string{
	"date", "category", "x",
	"week_1", "week_2", "week_3", "week_4", "week_5", "week_6", "week_7",
	"week_8", "week_9", "week_10", "week_11", "week_12", "week_13",
}

// sheetRegistry maps workbook sheet names, exactly as they appear in the
// template (trailing spaces included), to their destination tables.
var sheetRegistry = map[string]sheetDef{
	"Collateral Overview": newSheetDef("CollateralOverviewRow", -1,
		[]string{"main_type"},
		[]string{"main_type", "sub_type", "beginning_collateral", "ineligibles", "eligible_collateral",
			"nolv_pct", "dilution_rate", "advanced_rate", "rate_limit", "utilized_rate",
			"pre_reserve_collateral", "reserves", "net_collateral"},
		func(ref rowRef, rec record) models.CollateralOverviewRow {
			return models.CollateralOverviewRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				MainType: rec.str("main_type"), SubType: rec.str("sub_type"),
				BeginningCollateral: rec.dec("beginning_collateral"), Ineligibles: rec.dec("ineligibles"),
				EligibleCollateral: rec.dec("eligible_collateral"), NolvPct: rec.dec("nolv_pct"),
				DilutionRate: rec.dec("dilution_rate"), AdvancedRate: rec.dec("advanced_rate"),
				RateLimit: rec.dec("rate_limit"), UtilizedRate: rec.dec("utilized_rate"),
				PreReserveCollateral: rec.dec("pre_reserve_collateral"), Reserves: rec.dec("reserves"),
				NetCollateral: rec.dec("net_collateral"),
			}
		}),

	"Aging Composition": newSheetDef("AgingCompositionRow", -1,
		[]string{"as_of_date"},
		[]string{"division", "as_of_date", "bucket", "pct_of_total", "amount"},
		func(ref rowRef, rec record) models.AgingCompositionRow {
			return models.AgingCompositionRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"),
				Bucket: rec.str("bucket"), PctOfTotal: rec.dec("pct_of_total"), Amount: rec.dec("amount"),
			}
		}),

	"AR_Metrics": newSheetDef("ARMetricsRow", -1,
		[]string{"as_of_date"},
		[]string{"division", "as_of_date", "balance", "dso", "pct_past_due", "current_amt", "past_due_amt"},
		func(ref rowRef, rec record) models.ARMetricsRow {
			return models.ARMetricsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"),
				Balance: rec.dec("balance"), Dso: rec.dec("dso"), PctPastDue: rec.dec("pct_past_due"),
				CurrentAmt: rec.dec("current_amt"), PastDueAmt: rec.dec("past_due_amt"),
			}
		}),

	"Top20_By_Total_AR": newSheetDef("Top20ByTotalARRow", -1,
		[]string{"customer"},
		[]string{"division", "as_of_date", "customer", "current", "col_0_30", "col_31_60", "col_61_90",
			"col_91_plus", "total_ar", "coverage_pct_of_division_ar"},
		func(ref rowRef, rec record) models.Top20ByTotalARRow {
			return models.Top20ByTotalARRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"), Customer: rec.str("customer"),
				Current: rec.dec("current"), Col0To30: rec.dec("col_0_30"), Col31To60: rec.dec("col_31_60"),
				Col61To90: rec.dec("col_61_90"), Col91Plus: rec.dec("col_91_plus"),
				TotalAr: rec.dec("total_ar"), CoveragePctOfDivisionAr: rec.dec("coverage_pct_of_division_ar"),
			}
		}),

	"Top20_By_PastDue": newSheetDef("Top20ByPastDueRow", -1,
		[]string{"customer"},
		[]string{"division", "as_of_date", "customer", "current", "col_0_30", "col_31_60", "col_61_90",
			"col_91_plus", "total_ar", "total_past_due", "coverage_pct_of_division_past_due"},
		func(ref rowRef, rec record) models.Top20ByPastDueRow {
			return models.Top20ByPastDueRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"), Customer: rec.str("customer"),
				Current: rec.dec("current"), Col0To30: rec.dec("col_0_30"), Col31To60: rec.dec("col_31_60"),
				Col61To90: rec.dec("col_61_90"), Col91Plus: rec.dec("col_91_plus"),
				TotalAr: rec.dec("total_ar"), TotalPastDue: rec.dec("total_past_due"),
				CoveragePctOfDivisionPastDue: rec.dec("coverage_pct_of_division_past_due"),
			}
		}),

	"Ineligible_Trend": newSheetDef("IneligibleTrendRow", -1,
		[]string{"date"},
		[]string{"date", "division", "total_ar", "total_ineligible", "ineligible_pct_of_ar"},
		func(ref rowRef, rec record) models.IneligibleTrendRow {
			return models.IneligibleTrendRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Division: rec.str("division"),
				TotalAr: rec.dec("total_ar"), TotalIneligible: rec.dec("total_ineligible"),
				IneligiblePctOfAr: rec.dec("ineligible_pct_of_ar"),
			}
		}),

	"Ineligible_Overview": newSheetDef("IneligibleOverviewRow", -1,
		[]string{"date"},
		[]string{"date", "division", "past_due_gt_90_days", "dilution", "cross_age",
			"concentration_over_cap", "foreign", "government", "intercompany", "contra", "other",
			"total_ineligible", "ineligible_pct_of_ar"},
		func(ref rowRef, rec record) models.IneligibleOverviewRow {
			return models.IneligibleOverviewRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Division: rec.str("division"),
				PastDueGt90Days: rec.dec("past_due_gt_90_days"), Dilution: rec.dec("dilution"),
				CrossAge: rec.dec("cross_age"), ConcentrationOverCap: rec.dec("concentration_over_cap"),
				Foreign: rec.dec("foreign"), Government: rec.dec("government"),
				Intercompany: rec.dec("intercompany"), Contra: rec.dec("contra"), Other: rec.dec("other"),
				TotalIneligible: rec.dec("total_ineligible"), IneligiblePctOfAr: rec.dec("ineligible_pct_of_ar"),
			}
		}),

	"Concentration_ADO_DSO": newSheetDef("ConcentrationADODSORow", -1,
		[]string{"customer"},
		[]string{"division", "as_of_date", "customer",
			"current_concentration_pct", "avg_ttm_concentration_pct", "variance_concentration_pp",
			"current_ado_days", "avg_ttm_ado_days", "variance_ado_days",
			"current_dso_days", "avg_ttm_dso_days", "variance_dso_days"},
		func(ref rowRef, rec record) models.ConcentrationADODSORow {
			return models.ConcentrationADODSORow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"), Customer: rec.str("customer"),
				CurrentConcentrationPct: rec.dec("current_concentration_pct"),
				AvgTtmConcentrationPct:  rec.dec("avg_ttm_concentration_pct"),
				VarianceConcentrationPp: rec.dec("variance_concentration_pp"),
				CurrentAdoDays:          rec.dec("current_ado_days"),
				AvgTtmAdoDays:           rec.dec("avg_ttm_ado_days"),
				VarianceAdoDays:         rec.dec("variance_ado_days"),
				CurrentDsoDays:          rec.dec("current_dso_days"),
				AvgTtmDsoDays:           rec.dec("avg_ttm_dso_days"),
				VarianceDsoDays:         rec.dec("variance_dso_days"),
			}
		}),

	"FG_Inventory_Metrics": newSheetDef("FGInventoryMetricsRow", -1,
		[]string{"as_of_date"},
		[]string{"inventory_type", "division", "as_of_date", "total_inventory",
			"ineligible_inventory", "available_inventory", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.FGInventoryMetricsRow {
			return models.FGInventoryMetricsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				AsOfDate:            rec.date("as_of_date"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"FG_Ineligible_detail": newSheetDef("FGIneligibleDetailRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "slow_moving_obsolete", "aged", "off_site",
			"consigned", "in_transit", "damaged_non_saleable", "total_ineligible", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.FGIneligibleDetailRow {
			return models.FGIneligibleDetailRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				SlowMovingObsolete: rec.dec("slow_moving_obsolete"), Aged: rec.dec("aged"),
				OffSite: rec.dec("off_site"), Consigned: rec.dec("consigned"), InTransit: rec.dec("in_transit"),
				DamagedNonSaleable: rec.dec("damaged_non_saleable"),
				TotalIneligible:    rec.dec("total_ineligible"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"FG_Composition": newSheetDef("FGCompositionRow", -1,
		[]string{"as_of_date"},
		[]string{"division", "as_of_date", "fg_available", "fg_0_13", "fg_13_26", "fg_26_39",
			"fg_39_52", "fg_52_plus", "fg_no_sales", "inline_pct", "excess_pct"},
		func(ref rowRef, rec record) models.FGCompositionRow {
			return models.FGCompositionRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"),
				FgAvailable: rec.dec("fg_available"),
				Fg0To13:     rec.dec("fg_0_13"), Fg13To26: rec.dec("fg_13_26"),
				Fg26To39:    rec.dec("fg_26_39"), Fg39To52: rec.dec("fg_39_52"),
				Fg52Plus:    rec.dec("fg_52_plus"), FgNoSales: rec.dec("fg_no_sales"),
				InlinePct:   rec.dec("inline_pct"), ExcessPct: rec.dec("excess_pct"),
			}
		}),

	"FG_Inline_Category_Analysis": newSheetDef("FGInlineCategoryAnalysisRow", -1,
		[]string{"category"},
		[]string{"division", "as_of_date", "category", "fg_total", "fg_ineligible", "fg_available",
			"pct_of_available", "sales", "cogs", "gm", "gm_pct", "weeks_of_supply"},
		func(ref rowRef, rec record) models.FGInlineCategoryAnalysisRow {
			return models.FGInlineCategoryAnalysisRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"), Category: rec.str("category"),
				FgTotal: rec.dec("fg_total"), FgIneligible: rec.dec("fg_ineligible"),
				FgAvailable: rec.dec("fg_available"), PctOfAvailable: rec.dec("pct_of_available"),
				Sales: rec.dec("sales"), Cogs: rec.dec("cogs"), Gm: rec.dec("gm"),
				GmPct: rec.dec("gm_pct"), WeeksOfSupply: rec.dec("weeks_of_supply"),
			}
		}),

	"FG_Inline_Excess_By_Category": newSheetDef("FGInlineExcessByCategoryRow", -1,
		[]string{"category"},
		[]string{"division", "as_of_date", "category", "fg_available",
			"new_dollars", "new_usd", "inline_dollars", "inline_usd",
			"excess_dollars", "excess_usd", "no_sales_dollars", "no_sales_usd"},
		func(ref rowRef, rec record) models.FGInlineExcessByCategoryRow {
			return models.FGInlineExcessByCategoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"), Category: rec.str("category"),
				FgAvailable:    rec.dec("fg_available"),
				NewDollars:     rec.dec("new_dollars", "new_usd"),
				InlineDollars:  rec.dec("inline_dollars", "inline_usd"),
				ExcessDollars:  rec.dec("excess_dollars", "excess_usd"),
				NoSalesDollars: rec.dec("no_sales_dollars", "no_sales_usd"),
			}
		}),

	"Sales_GM_Trend": newSheetDef("SalesGMTrendRow", -1,
		[]string{"as_of_date"},
		[]string{"division", "as_of_date", "net_sales", "gross_margin_pct", "gross_margin_dollars",
			"ttm_sales", "ttm_sales_prior", "trend_ttm_pct", "ma3", "ma3_prior", "trend_3_m_pct"},
		func(ref rowRef, rec record) models.SalesGMTrendRow {
			return models.SalesGMTrendRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"),
				NetSales: rec.dec("net_sales"), GrossMarginPct: rec.dec("gross_margin_pct"),
				GrossMarginDollars: rec.dec("gross_margin_dollars"),
				TtmSales:           rec.dec("ttm_sales"), TtmSalesPrior: rec.dec("ttm_sales_prior"),
				TrendTtmPct:        rec.dec("trend_ttm_pct"),
				Ma3:                rec.dec("ma3"), Ma3Prior: rec.dec("ma3_prior"),
				Trend3MPct:         rec.dec("trend_3_m_pct"),
			}
		}),

	"Historical_Top_20_SKUs": newSheetDef("HistoricalTop20SKUsRow", -1,
		[]string{"item_number"},
		[]string{"division", "as_of_date", "item_number", "category", "description", "cost",
			"pct_of_total", "cogs", "gm", "gm_pct", "wos"},
		func(ref rowRef, rec record) models.HistoricalTop20SKUsRow {
			return models.HistoricalTop20SKUsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Division: rec.str("division"), AsOfDate: rec.date("as_of_date"),
				ItemNumber: rec.dec("item_number"), Category: rec.str("category"),
				Description: rec.str("description"), Cost: rec.dec("cost"),
				PctOfTotal: rec.dec("pct_of_total"), Cogs: rec.dec("cogs"),
				Gm: rec.dec("gm"), GmPct: rec.dec("gm_pct"), Wos: rec.dec("wos"),
			}
		}),

	"RM_Inventory_Metrics": newSheetDef("RMInventoryMetricsRow", -1,
		[]string{"as_of_date"},
		[]string{"inventory_type", "division", "as_of_date", "total_inventory",
			"ineligible_inventory", "available_inventory", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.RMInventoryMetricsRow {
			return models.RMInventoryMetricsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				AsOfDate:            rec.date("as_of_date"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"RM_Ineligible_Overview": newSheetDef("RMIneligibleOverviewRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "slow_moving_obsolete", "aged", "off_site",
			"consigned", "in_transit", "damaged_non_saleable", "total_ineligible", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.RMIneligibleOverviewRow {
			return models.RMIneligibleOverviewRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				SlowMovingObsolete: rec.dec("slow_moving_obsolete"), Aged: rec.dec("aged"),
				OffSite: rec.dec("off_site"), Consigned: rec.dec("consigned"), InTransit: rec.dec("in_transit"),
				DamagedNonSaleable: rec.dec("damaged_non_saleable"),
				TotalIneligible:    rec.dec("total_ineligible"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"RM_Category_History": newSheetDef("RMCategoryHistoryRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "category", "total_inventory",
			"ineligible_inventory", "available_inventory", "pct_available"},
		func(ref rowRef, rec record) models.RMCategoryHistoryRow {
			return models.RMCategoryHistoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"),
				Division: rec.str("division"), Category: rec.str("category"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				PctAvailable:        rec.dec("pct_available"),
			}
		}),

	"RM_Top20_History": newSheetDef("RMTop20HistoryRow", -1,
		[]string{"sku"},
		[]string{"inventory_type", "division", "as_of_date", "sku", "category", "description",
			"amount", "units", "usd_unit", "pct_available"},
		func(ref rowRef, rec record) models.RMTop20HistoryRow {
			return models.RMTop20HistoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				AsOfDate: rec.date("as_of_date"), Sku: rec.dec("sku"),
				Category: rec.str("category"), Description: rec.str("description"),
				Amount: rec.dec("amount"), Units: rec.dec("units"), UsdUnit: rec.dec("usd_unit"),
				PctAvailable: rec.dec("pct_available"),
			}
		}),

	"WIP_Inventory_Metrics": newSheetDef("WIPInventoryMetricsRow", -1,
		[]string{"as_of_date"},
		[]string{"inventory_type", "division", "as_of_date", "total_inventory",
			"ineligible_inventory", "available_inventory", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.WIPInventoryMetricsRow {
			return models.WIPInventoryMetricsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				AsOfDate:            rec.date("as_of_date"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"WIP_Ineligible_Overview": newSheetDef("WIPIneligibleOverviewRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "slow_moving_obsolete", "aged", "off_site",
			"consigned", "in_transit", "damaged_non_saleable", "total_ineligible", "ineligible_pct_of_inventory"},
		func(ref rowRef, rec record) models.WIPIneligibleOverviewRow {
			return models.WIPIneligibleOverviewRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				SlowMovingObsolete: rec.dec("slow_moving_obsolete"), Aged: rec.dec("aged"),
				OffSite: rec.dec("off_site"), Consigned: rec.dec("consigned"), InTransit: rec.dec("in_transit"),
				DamagedNonSaleable: rec.dec("damaged_non_saleable"),
				TotalIneligible:    rec.dec("total_ineligible"),
				IneligiblePctOfInventory: rec.dec("ineligible_pct_of_inventory"),
			}
		}),

	"WIP_Category_History": newSheetDef("WIPCategoryHistoryRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "category", "total_inventory",
			"ineligible_inventory", "available_inventory", "pct_available"},
		func(ref rowRef, rec record) models.WIPCategoryHistoryRow {
			return models.WIPCategoryHistoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"),
				Division: rec.str("division"), Category: rec.str("category"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				PctAvailable:        rec.dec("pct_available"),
			}
		}),

	"WIP_Top20_History": newSheetDef("WIPTop20HistoryRow", -1,
		[]string{"sku"},
		[]string{"inventory_type", "division", "as_of_date", "sku", "category", "description",
			"amount", "units", "usd_unit", "pct_available"},
		func(ref rowRef, rec record) models.WIPTop20HistoryRow {
			return models.WIPTop20HistoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				InventoryType: rec.str("inventory_type"), Division: rec.str("division"),
				AsOfDate: rec.date("as_of_date"), Sku: rec.dec("sku"),
				Category: rec.str("category"), Description: rec.str("description"),
				Amount: rec.dec("amount"), Units: rec.dec("units"), UsdUnit: rec.dec("usd_unit"),
				PctAvailable: rec.dec("pct_available"),
			}
		}),

	"FG_Gross_Recovery_History": newSheetDef("FGGrossRecoveryHistoryRow", -1,
		[]string{"as_of_date"},
		[]string{"as_of_date", "division", "category", "type", "cost", "selling_price",
			"gross_recovery", "pct_of_cost", "pct_of_sp", "wos", "gm_pct"},
		func(ref rowRef, rec record) models.FGGrossRecoveryHistoryRow {
			return models.FGGrossRecoveryHistoryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				AsOfDate: rec.date("as_of_date"), Division: rec.str("division"),
				Category: rec.str("category"), Type: rec.str("type"),
				Cost: rec.dec("cost"), SellingPrice: rec.dec("selling_price"),
				GrossRecovery: rec.dec("gross_recovery"),
				PctOfCost:     rec.dec("pct_of_cost"), PctOfSp: rec.dec("pct_of_sp"),
				Wos:           rec.dec("wos"), GmPct: rec.dec("gm_pct"),
			}
		}),

	"WIP_Recovery": newSheetDef("WIPRecoveryRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "category", "total_inventory",
			"ineligible_inventory", "available_inventory", "pct_available", "recovery_pct", "gross_recovery"},
		func(ref rowRef, rec record) models.WIPRecoveryRow {
			return models.WIPRecoveryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"),
				Division: rec.str("division"), Category: rec.str("category"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				PctAvailable:        rec.dec("pct_available"),
				RecoveryPct:         rec.dec("recovery_pct"),
				GrossRecovery:       rec.dec("gross_recovery"),
			}
		}),

	"Raw_Material_Recovery": newSheetDef("RawMaterialRecoveryRow", -1,
		[]string{"date"},
		[]string{"date", "inventory_type", "division", "category", "total_inventory",
			"ineligible_inventory", "available_inventory", "pct_available", "recovery_pct", "gross_recovery"},
		func(ref rowRef, rec record) models.RawMaterialRecoveryRow {
			return models.RawMaterialRecoveryRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), InventoryType: rec.str("inventory_type"),
				Division: rec.str("division"), Category: rec.str("category"),
				TotalInventory:      rec.dec("total_inventory"),
				IneligibleInventory: rec.dec("ineligible_inventory"),
				AvailableInventory:  rec.dec("available_inventory"),
				PctAvailable:        rec.dec("pct_available"),
				RecoveryPct:         rec.dec("recovery_pct"),
				GrossRecovery:       rec.dec("gross_recovery"),
			}
		}),

	"NOLV_Table": newSheetDef("NOLVTableRow", -1,
		[]string{"line_item"},
		[]string{"date", "division", "line_item", "fg_usd", "fg_pct_cost", "rm_usd", "rm_pct_cost",
			"wip_usd", "wip_pct_cost", "total_usd", "total_pct_cost"},
		func(ref rowRef, rec record) models.NOLVTableRow {
			return models.NOLVTableRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Division: rec.str("division"), LineItem: rec.str("line_item"),
				FgUsd: rec.dec("fg_usd"), FgPctCost: rec.dec("fg_pct_cost"),
				RmUsd: rec.dec("rm_usd"), RmPctCost: rec.dec("rm_pct_cost"),
				WipUsd: rec.dec("wip_usd"), WipPctCost: rec.dec("wip_pct_cost"),
				TotalUsd: rec.dec("total_usd"), TotalPctCost: rec.dec("total_pct_cost"),
			}
		}),

	"Risk_Subfactors": newSheetDef("RiskSubfactorsRow", -1,
		[]string{"sub_risk"},
		[]string{"date", "main_category", "sub_risk", "risk_score", "high_impact_factor"},
		func(ref rowRef, rec record) models.RiskSubfactorsRow {
			return models.RiskSubfactorsRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), MainCategory: rec.str("main_category"),
				SubRisk: rec.str("sub_risk"), RiskScore: rec.dec("risk_score"),
				HighImpactFactor: rec.str("high_impact_factor"),
			}
		}),

	"Composite_Index": newSheetDef("CompositeIndexRow", -1,
		[]string{"date"},
		[]string{"date", "overall_score", "ar_risk", "inventory_risk", "company_risk", "industry_risk",
			"weight_ar", "weight_inventory", "weight_company", "weight_industry"},
		func(ref rowRef, rec record) models.CompositeIndexRow {
			return models.CompositeIndexRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), OverallScore: rec.dec("overall_score"),
				ArRisk: rec.dec("ar_risk"), InventoryRisk: rec.dec("inventory_risk"),
				CompanyRisk: rec.dec("company_risk"), IndustryRisk: rec.dec("industry_risk"),
				WeightAr: rec.dec("weight_ar"), WeightInventory: rec.dec("weight_inventory"),
				WeightCompany: rec.dec("weight_company"), WeightIndustry: rec.dec("weight_industry"),
			}
		}),

	"Forecast": newSheetDef("ForecastRow", -1,
		[]string{"period"},
		[]string{"as_of_date", "period", "actual_forecast", "available_collateral", "loan_balance",
			"revolver_availability", "net_sales", "gross_margin_pct", "ar", "finished_goods",
			"raw_materials", "work_in_process"},
		func(ref rowRef, rec record) models.ForecastRow {
			return models.ForecastRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				AsOfDate: rec.date("as_of_date"), Period: rec.date("period"),
				ActualForecast:      rec.str("actual_forecast"),
				AvailableCollateral: rec.dec("available_collateral"),
				LoanBalance:         rec.dec("loan_balance"),
				RevolverAvailability: rec.dec("revolver_availability"),
				NetSales:            rec.dec("net_sales"),
				GrossMarginPct:      rec.dec("gross_margin_pct"),
				Ar:                  rec.dec("ar"),
				FinishedGoods:       rec.dec("finished_goods"),
				RawMaterials:        rec.dec("raw_materials"),
				WorkInProcess:       rec.dec("work_in_process"),
			}
		}),

	"Availability Forecast": newSheetDef("AvailabilityForecastRow", 1,
		[]string{"category"}, thirteenWeekFields,
		func(ref rowRef, rec record) models.AvailabilityForecastRow {
			return models.AvailabilityForecastRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Category: rec.str("category"), X: rec.str("x"),
				Week1: rec.dec("week_1"), Week2: rec.dec("week_2"), Week3: rec.dec("week_3"),
				Week4: rec.dec("week_4"), Week5: rec.dec("week_5"), Week6: rec.dec("week_6"),
				Week7: rec.dec("week_7"), Week8: rec.dec("week_8"), Week9: rec.dec("week_9"),
				Week10: rec.dec("week_10"), Week11: rec.dec("week_11"), Week12: rec.dec("week_12"),
				Week13: rec.dec("week_13"),
			}
		}),

	"Cash Forecast": newSheetDef("CashForecastRow", 1,
		[]string{"category"}, thirteenWeekFields,
		func(ref rowRef, rec record) models.CashForecastRow {
			return models.CashForecastRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Category: rec.str("category"), X: rec.str("x"),
				Week1: rec.dec("week_1"), Week2: rec.dec("week_2"), Week3: rec.dec("week_3"),
				Week4: rec.dec("week_4"), Week5: rec.dec("week_5"), Week6: rec.dec("week_6"),
				Week7: rec.dec("week_7"), Week8: rec.dec("week_8"), Week9: rec.dec("week_9"),
				Week10: rec.dec("week_10"), Week11: rec.dec("week_11"), Week12: rec.dec("week_12"),
				Week13: rec.dec("week_13"),
			}
		}),

	"Cash Flow Forecast": newSheetDef("CashFlowForecastRow", 1,
		[]string{"category"},
		append(append([]string{}, thirteenWeekFields...), "total"),
		func(ref rowRef, rec record) models.CashFlowForecastRow {
			return models.CashFlowForecastRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Category: rec.str("category"), X: rec.str("x"),
				Week1: rec.dec("week_1"), Week2: rec.dec("week_2"), Week3: rec.dec("week_3"),
				Week4: rec.dec("week_4"), Week5: rec.dec("week_5"), Week6: rec.dec("week_6"),
				Week7: rec.dec("week_7"), Week8: rec.dec("week_8"), Week9: rec.dec("week_9"),
				Week10: rec.dec("week_10"), Week11: rec.dec("week_11"), Week12: rec.dec("week_12"),
				Week13: rec.dec("week_13"), Total: rec.dec("total"),
			}
		}),

	"Current Week Variance": newSheetDef("CurrentWeekVarianceRow", -1,
		[]string{"category"},
		[]string{"date", "category", "projected", "actual", "variance", "variance_pct"},
		func(ref rowRef, rec record) models.CurrentWeekVarianceRow {
			return models.CurrentWeekVarianceRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Category: rec.str("category"),
				Projected: rec.dec("projected"), Actual: rec.dec("actual"),
				Variance: rec.dec("variance"), VariancePct: rec.dec("variance_pct"),
			}
		}),

	// The workbook template spells it "Cummulative".
	"Cummulative Variance": newSheetDef("CumulativeVarianceRow", -1,
		[]string{"category"},
		[]string{"date", "category", "projected", "actual", "variance", "variance_pct"},
		func(ref rowRef, rec record) models.CumulativeVarianceRow {
			return models.CumulativeVarianceRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"), Category: rec.str("category"),
				Projected: rec.dec("projected"), Actual: rec.dec("actual"),
				Variance: rec.dec("variance"), VariancePct: rec.dec("variance_pct"),
			}
		}),

	// Trailing space is part of the sheet name in the workbook template.
	"Machinery & Equipment ": newSheetDef("MachineryEquipmentRow", -1,
		[]string{"equipment_type"},
		[]string{"equipment_type", "manufacturer", "serial_number", "year", "condition",
			"fair_market_value", "orderly_liquidation_value", "total_asset_count",
			"total_fair_market_value", "total_orderly_liquidation_value"},
		func(ref rowRef, rec record) models.MachineryEquipmentRow {
			return models.MachineryEquipmentRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				EquipmentType: rec.str("equipment_type"), Manufacturer: rec.str("manufacturer"),
				SerialNumber: rec.str("serial_number"), Year: rec.integer("year"),
				Condition: rec.str("condition"),
				FairMarketValue:         rec.dec("fair_market_value"),
				OrderlyLiquidationValue: rec.integer("orderly_liquidation_value"),
				TotalAssetCount:         rec.integer("total_asset_count"),
				TotalFairMarketValue:    rec.dec("total_fair_market_value"),
				TotalOrderlyLiquidationValue: rec.integer("total_orderly_liquidation_value"),
			}
		}),

	"Collateral Limits ": newReplaceSheetDef("CollateralLimitsRow", -1,
		[]string{"collateral_type"},
		[]string{"division", "collateral_type", "collateral_sub_type", "usd_limit", "pct_limit"},
		func(ref rowRef, rec record) models.CollateralLimitsRow {
			return models.CollateralLimitsRow{
				BorrowerId: ref.BorrowerId,
				Division:   rec.str("division"),
				CollateralType:    rec.str("collateral_type"),
				CollateralSubType: rec.str("collateral_sub_type"),
				UsdLimit:          rec.dec("usd_limit"), PctLimit: rec.dec("pct_limit"),
			}
		}),

	"Ineligibles": newReplaceSheetDef("IneligiblesRow", -1,
		[]string{"collateral_type"},
		[]string{"division", "collateral_type", "collateral_sub_type"},
		func(ref rowRef, rec record) models.IneligiblesRow {
			return models.IneligiblesRow{
				BorrowerId: ref.BorrowerId,
				Division:   rec.str("division"),
				CollateralType:    rec.str("collateral_type"),
				CollateralSubType: rec.str("collateral_sub_type"),
			}
		}),
}

func init() {
	// The template carries a second spelling for the value trend sheet.
	valueTrend := newSheetDef("ValueTrendRow", -1,
		[]string{"date"},
		[]string{"date", "estimated_olv", "appraised_olv"},
		func(ref rowRef, rec record) models.ValueTrendRow {
			return models.ValueTrendRow{
				BorrowerId: ref.BorrowerId, ReportId: ref.ReportId,
				Date: rec.date("date"),
				EstimatedOlv: rec.dec("estimated_olv"), AppraisedOlv: rec.dec("appraised_olv"),
			}
		})
	sheetRegistry["Value Trend"] = valueTrend
	sheetRegistry["Value_Trend"] = valueTrend
}
