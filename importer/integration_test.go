package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/models"
)

// writeFixtureWorkbook builds a minimal borrower workbook: an overview
// sheet, a collateral sheet with a junk preamble above the header, and an
// AR sheet. Shapes mirror the production template.
func writeFixtureWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()

	overview := "Borrower Overview"
	f.SetSheetName("Sheet1", overview)
	rows := [][]interface{}{
		{"Borrower Overview"},
		{"Company", "Company ID", "Industry", "Primary Contact", "Current Update"},
		{"Acme Manufacturing", 1001, "Industrial", "J. Doe", "1/31/2024"},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(overview, cell, v); err != nil {
				t.Fatalf("set overview cell: %v", err)
			}
		}
	}

	collateral := "Collateral Overview"
	f.NewSheet(collateral)
	collateralRows := [][]interface{}{
		{"Acme Manufacturing — Collateral"},
		{"Main Type", "Sub Type", "Beginning Collateral", "Ineligibles", "Eligible Collateral", "NOLV %", "Net Collateral"},
		{"Accounts Receivable", "", 1000000, 150000, 850000, "85%", 722500},
		{"Inventory", "Finished Goods", 500000, 50000, 450000, "60%", 270000},
	}
	for i, row := range collateralRows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(collateral, cell, v); err != nil {
				t.Fatalf("set collateral cell: %v", err)
			}
		}
	}

	limits := "Collateral Limits "
	f.NewSheet(limits)
	limitRows := [][]interface{}{
		{"Division", "Collateral Type", "Collateral Sub Type", "USD Limit", "Pct Limit"},
		{"East", "Inventory", "Finished Goods", 2000000, "55%"},
	}
	for i, row := range limitRows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(limits, cell, v); err != nil {
				t.Fatalf("set limits cell: %v", err)
			}
		}
	}

	ar := "AR_Metrics"
	f.NewSheet(ar)
	arRows := [][]interface{}{
		{"Division", "AsOfDate", "Balance", "DSO", "PctPastDue"},
		{"East", "1/31/2024", "1,000,000", 42, "7.5%"},
	}
	for i, row := range arRows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(ar, cell, v); err != nil {
				t.Fatalf("set ar cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "acme.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture workbook: %v", err)
	}
	return path
}

func TestRun_ImportsAcmeWorkbook(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires a MySQL instance via DB_* env vars)")
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		t.Fatal("database not initialized; set DB_* env vars")
	}
	models.MigrateTable()

	path := writeFixtureWorkbook(t)
	result, err := Run(db, path, Options{SourceFile: "acme.xlsx", Clear: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.Status != "success" {
		t.Fatalf("expected success, got %s (errors: %+v)", result.Status, result.Errors)
	}
	if result.BorrowerId == 0 || result.ReportId == 0 {
		t.Fatalf("expected borrower and report ids, got %d/%d", result.BorrowerId, result.ReportId)
	}

	var collateralCount int64
	if err := db.Model(&models.CollateralOverviewRow{}).
		Where("report_id = ?", result.ReportId).Count(&collateralCount).Error; err != nil {
		t.Fatalf("count collateral rows: %v", err)
	}
	if collateralCount != 2 {
		t.Fatalf("expected 2 collateral rows, got %d", collateralCount)
	}

	var arRow models.ARMetricsRow
	if err := db.Where("report_id = ?", result.ReportId).Take(&arRow).Error; err != nil {
		t.Fatalf("load AR row: %v", err)
	}
	if arRow.Balance == nil || arRow.Balance.String() != "1000000" {
		t.Fatalf("expected AR balance 1000000, got %v", arRow.Balance)
	}
	if arRow.PctPastDue == nil || arRow.PctPastDue.String() != "0.075" {
		t.Fatalf("expected pct past due 0.075, got %v", arRow.PctPastDue)
	}

	// Clear-existing replaces the previous report's rows.
	result2, err := Run(db, path, Options{SourceFile: "acme.xlsx", Clear: true})
	if err != nil {
		t.Fatalf("re-run error: %v", err)
	}
	var total int64
	if err := db.Model(&models.CollateralOverviewRow{}).
		Where("borrower_id = ?", result2.BorrowerId).Count(&total).Error; err != nil {
		t.Fatalf("count after clear: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected clear to leave 2 collateral rows, got %d", total)
	}

	// Borrower-level limits are replaced in place even without clearing.
	if _, err := Run(db, path, Options{SourceFile: "acme.xlsx"}); err != nil {
		t.Fatalf("append re-run error: %v", err)
	}
	var limitCount int64
	if err := db.Model(&models.CollateralLimitsRow{}).
		Where("borrower_id = ?", result2.BorrowerId).Count(&limitCount).Error; err != nil {
		t.Fatalf("count limit rows: %v", err)
	}
	if limitCount != 1 {
		t.Fatalf("expected re-import to leave 1 limit row, got %d", limitCount)
	}
}
