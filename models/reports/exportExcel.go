package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

func sheetName(name string) string {
	if len(name) > maxSheetNameLen {
		return name[:maxSheetNameLen]
	}
	return name
}

func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case *int:
		if t == nil {
			return ""
		}
		return *t
	case *int64:
		if t == nil {
			return ""
		}
		return *t
	case *decimal.Decimal:
		if t == nil {
			return ""
		}
		f, _ := t.Float64()
		return f
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	default:
		return v
	}
}

func writeSheet(f *excelize.File, name string, headers []string, rows [][]interface{}) error {
	name = sheetName(name)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, cellValue(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

type sheetWriter struct {
	name    string
	headers []string
	fetch   func(db *gorm.DB, borrowerId int) ([][]interface{}, error)
}

var exportSheets = []sheetWriter{
	{"Collateral Overview",
		[]string{"Main Type", "Sub Type", "Beginning Collateral", "Ineligibles", "Eligible Collateral",
			"NOLV %", "Dilution Rate", "Advanced Rate", "Rate Limit", "Utilized Rate",
			"Pre-Reserve Collateral", "Reserves", "Net Collateral"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.CollateralOverviewRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.MainType, r.SubType, r.BeginningCollateral, r.Ineligibles,
					r.EligibleCollateral, r.NolvPct, r.DilutionRate, r.AdvancedRate, r.RateLimit,
					r.UtilizedRate, r.PreReserveCollateral, r.Reserves, r.NetCollateral})
			}
			return out, nil
		}},
	{"AR_Metrics",
		[]string{"Division", "AsOfDate", "Balance", "DSO", "PctPastDue", "CurrentAmt", "PastDueAmt"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.ARMetricsRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Division, r.AsOfDate, r.Balance, r.Dso, r.PctPastDue,
					r.CurrentAmt, r.PastDueAmt})
			}
			return out, nil
		}},
	{"Aging Composition",
		[]string{"Division", "AsOfDate", "Bucket", "PctOfTotal", "Amount"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.AgingCompositionRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Division, r.AsOfDate, r.Bucket, r.PctOfTotal, r.Amount})
			}
			return out, nil
		}},
	{"Sales_GM_Trend",
		[]string{"Division", "AsOfDate", "Net Sales", "GrossMarginPct", "GrossMarginDollars",
			"TTM_Sales", "TTM_Sales_Prior", "TrendTTMPct", "MA3", "MA3_Prior", "Trend3MPct"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.SalesGMTrendRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Division, r.AsOfDate, r.NetSales, r.GrossMarginPct,
					r.GrossMarginDollars, r.TtmSales, r.TtmSalesPrior, r.TrendTtmPct, r.Ma3, r.Ma3Prior,
					r.Trend3MPct})
			}
			return out, nil
		}},
	{"Composite_Index",
		[]string{"Date", "Overall Score", "AR Risk", "Inventory Risk", "Company Risk", "Industry Risk",
			"Weight AR", "Weight Inventory", "Weight Company", "Weight Industry"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.CompositeIndexRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Date, r.OverallScore, r.ArRisk, r.InventoryRisk,
					r.CompanyRisk, r.IndustryRisk, r.WeightAr, r.WeightInventory, r.WeightCompany,
					r.WeightIndustry})
			}
			return out, nil
		}},
	{"Risk_Subfactors",
		[]string{"Date", "Main Category", "Sub Risk", "Risk Score", "High Impact Factor"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.RiskSubfactorsRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Date, r.MainCategory, r.SubRisk, r.RiskScore, r.HighImpactFactor})
			}
			return out, nil
		}},
	{"Forecast",
		[]string{"AsOfDate", "Period", "ActualForecast", "Available Collateral", "Loan Balance",
			"Revolver Availability", "Net Sales", "GrossMarginPct", "AR", "Finished Goods",
			"Raw Materials", "Work In Process"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.ForecastRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.AsOfDate, r.Period, r.ActualForecast, r.AvailableCollateral,
					r.LoanBalance, r.RevolverAvailability, r.NetSales, r.GrossMarginPct, r.Ar,
					r.FinishedGoods, r.RawMaterials, r.WorkInProcess})
			}
			return out, nil
		}},
	{"Collateral Limits",
		[]string{"Division", "Collateral Type", "Collateral Sub-Type", "$ Limit", "% Limit"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.CollateralLimitsRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Division, r.CollateralType, r.CollateralSubType,
					r.UsdLimit, r.PctLimit})
			}
			return out, nil
		}},
	{"Ineligibles",
		[]string{"Division", "Collateral Type", "Collateral Sub-Type"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.IneligiblesRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Division, r.CollateralType, r.CollateralSubType})
			}
			return out, nil
		}},
	{"Value Trend",
		[]string{"Date", "Estimated OLV", "Appraised OLV"},
		func(db *gorm.DB, borrowerId int) ([][]interface{}, error) {
			var rows []models.ValueTrendRow
			if err := db.Where("borrower_id = ?", borrowerId).Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([][]interface{}, 0, len(rows))
			for _, r := range rows {
				out = append(out, []interface{}{r.Date, r.EstimatedOlv, r.AppraisedOlv})
			}
			return out, nil
		}},
}

// ExportBorrowerWorkbook renders a borrower's imported data back into a
// multi-sheet workbook. Sheets with no rows are omitted.
func ExportBorrowerWorkbook(db *gorm.DB, borrowerId int) (*excelize.File, error) {
	f := excelize.NewFile()

	written := 0
	for _, sheet := range exportSheets {
		rows, err := sheet.fetch(db, borrowerId)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", sheet.name, err)
		}
		if len(rows) == 0 {
			continue
		}
		if err := writeSheet(f, sheet.name, sheet.headers, rows); err != nil {
			return nil, err
		}
		written++
	}
	if written > 0 {
		f.DeleteSheet("Sheet1")
	}
	return f, nil
}
