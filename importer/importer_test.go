package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func widgetWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Widgets")
	rows := [][]interface{}{
		{"Division", "Balance"},
		{"East", 100},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Widgets", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	return f
}

// An insert failure must surface to the caller so the surrounding
// transaction rolls back instead of committing a partial report.
func TestImportSheet_InsertErrorPropagates(t *testing.T) {
	f := widgetWorkbook(t)
	insertErr := errors.New("duplicate key")
	def := sheetDef{
		model:    "WidgetRow",
		hint:     -1,
		required: []string{"division"},
		fields:   []string{"division", "balance"},
		insert: func(tx *gorm.DB, ref rowRef, recs []record) (int, int, error) {
			return 0, 0, insertErr
		},
	}

	summary, err := importSheet(nil, f, "Widgets", def, rowRef{})
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error to propagate, got %v", err)
	}
	if summary.Status != "failed" {
		t.Fatalf("expected failed summary, got %q", summary.Status)
	}
	if !strings.Contains(summary.Message, "duplicate key") {
		t.Fatalf("expected message to carry the cause, got %q", summary.Message)
	}
}

// Read failures stay in the summary: an unreadable sheet is skipped, not
// fatal to the rest of the workbook.
func TestImportSheet_ReadErrorFoldedIntoSummary(t *testing.T) {
	f := widgetWorkbook(t)
	def := sheetDef{
		model:    "WidgetRow",
		hint:     -1,
		required: []string{"division"},
		fields:   []string{"division", "balance"},
		insert: func(tx *gorm.DB, ref rowRef, recs []record) (int, int, error) {
			t.Fatal("insert must not run for a missing sheet")
			return 0, 0, nil
		},
	}

	summary, err := importSheet(nil, f, "No Such Sheet", def, rowRef{})
	if err != nil {
		t.Fatalf("read failure must not propagate, got %v", err)
	}
	if summary.Status != "failed" || summary.Message == "" {
		t.Fatalf("expected failed summary with message, got %q/%q", summary.Status, summary.Message)
	}
}
