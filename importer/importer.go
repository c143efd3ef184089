package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

const (
	overviewSheetName = "Borrower Overview"
	sectionMarker     = ">>>"
	blankRowStopLimit = 20
)

var ErrMissingCompanyId = errors.New("overview sheet has no Company ID")

type Options struct {
	SourceFile string
	ReportDate *time.Time
	Clear      bool
}

// SheetSummary reports what one sheet contributed to the import.
type SheetSummary struct {
	Sheet      string `json:"sheet"`
	Model      string `json:"model"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	HeaderRows []int  `json:"header_rows"`
	DataStart  int    `json:"data_start"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

type SheetError struct {
	Sheet string `json:"sheet"`
	Error string `json:"error"`
}

type Result struct {
	ReportId      int            `json:"report_id"`
	BorrowerId    int            `json:"borrower_id"`
	Summary       []SheetSummary `json:"summary"`
	Errors        []SheetError   `json:"errors"`
	Status        string         `json:"status"`
	TotalImported int            `json:"total_imported"`
	TotalSkipped  int            `json:"total_skipped"`
}

// Run ingests a borrower workbook. The whole import is one transaction:
// either the report and all of its rows land, or nothing does. Sheets that
// fail to parse are recorded and do not abort the remaining sheets; a
// persistence failure aborts and rolls back the whole import.
func Run(db *gorm.DB, path string, opts Options) (*Result, error) {
	logger := config.GetLogger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	result := &Result{}
	err = db.Transaction(func(tx *gorm.DB) error {
		borrower, report, overview, err := importOverview(tx, f, opts)
		if err != nil {
			return err
		}
		result.BorrowerId = borrower.ID
		result.ReportId = report.ID
		if overview != nil {
			result.Summary = append(result.Summary, *overview)
			result.TotalImported += overview.Imported
			result.TotalSkipped += overview.Skipped
		}

		ref := rowRef{BorrowerId: utils.Ptr(borrower.ID), ReportId: utils.Ptr(report.ID)}
		for _, sheet := range f.GetSheetList() {
			if sheet == overviewSheetName || strings.HasPrefix(sheet, sectionMarker) {
				continue
			}
			def, ok := sheetRegistry[sheet]
			if !ok {
				logger.WithField("sheet", sheet).Debug("skipping unmapped sheet")
				continue
			}
			summary, err := importSheet(tx, f, sheet, def, ref)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
			result.Summary = append(result.Summary, summary)
			result.TotalImported += summary.Imported
			result.TotalSkipped += summary.Skipped
			if summary.Status == "failed" {
				result.Errors = append(result.Errors, SheetError{Sheet: sheet, Error: summary.Message})
			}
		}
		result.Status = overallStatus(result)
		return nil
	})
	if err != nil {
		config.LogError(logger, "importer", "Run", "workbook import", map[string]interface{}{"path": path}, err)
		return nil, err
	}
	return result, nil
}

// overallStatus folds the per-sheet outcomes into one verdict. Failures
// with nothing imported mean the upload was useless; anything short of a
// clean run is partial.
func overallStatus(result *Result) string {
	failed, warned := false, false
	for _, s := range result.Summary {
		switch s.Status {
		case "failed":
			failed = true
		case "missing", "empty":
			warned = true
		}
	}
	switch {
	case failed && result.TotalImported == 0:
		return "failed"
	case failed:
		return "partial"
	case warned && result.TotalImported > 0:
		return "partial"
	case warned:
		return "failed"
	default:
		return "success"
	}
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// importOverview reads the key/value overview sheet, resolves or creates
// the company and borrower, and opens the report that the remaining sheets
// hang off.
func importOverview(tx *gorm.DB, f *excelize.File, opts Options) (*models.Borrower, *models.BorrowerReport, *SheetSummary, error) {
	raw, err := sheetRows(f, overviewSheetName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read overview sheet: %w", err)
	}

	var rows [][]string
	for _, row := range raw {
		blank := true
		for _, c := range row {
			if !isBlank(c) {
				blank = false
				break
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	if len(rows) < 3 {
		return nil, nil, nil, ErrMissingCompanyId
	}

	headers := makeUniqueHeaders(rows[1])
	rec := record{}
	for i, h := range headers {
		if i < len(rows[2]) {
			rec[h] = rows[2][i]
		}
	}

	companyId := rec.integer("company_id")
	if companyId == nil {
		return nil, nil, nil, ErrMissingCompanyId
	}

	company, err := models.GetOrCreateCompany(tx, *companyId, models.Company{
		Company:      rec.str("company"),
		Industry:     rec.str("industry"),
		PrimaryNaics: naicsString(rec),
		Website:      rec.str("website"),
	})
	if err != nil {
		return nil, nil, nil, err
	}

	borrower, err := models.GetOrCreateBorrower(tx, company, rec.str("primary_contact"), models.Borrower{
		PrimaryContactPhone: rec.str("primary_contact_phone"),
		PrimaryContactEmail: rec.str("primary_contact_email"),
		UpdateInterval:      rec.str("update_interval"),
		CurrentUpdate:       rec.date("current_update"),
		PreviousUpdate:      rec.date("previous_update"),
		NextUpdate:          rec.date("next_update"),
		Lender:              rec.str("lender"),
		LenderId:            lenderIdString(rec),
		Industry:            rec.str("industry"),
		PrimaryNaics:        naicsString(rec),
		Website:             rec.str("website"),
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if _, err := models.RegisterSpecificIndividual(tx, borrower, rec.str("specific_individual"), rec.integer("specific_id")); err != nil {
		return nil, nil, nil, err
	}

	if opts.Clear {
		if err := models.ClearBorrowerData(tx, borrower.ID); err != nil {
			return nil, nil, nil, err
		}
	}

	reportDate := opts.ReportDate
	if reportDate == nil {
		reportDate = rec.date("current_update")
	}
	if reportDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		reportDate = &today
	}
	report := models.BorrowerReport{
		BorrowerId: borrower.ID,
		SourceFile: utils.Ptr(opts.SourceFile),
		ReportDate: reportDate,
	}
	if err := tx.Create(&report).Error; err != nil {
		return nil, nil, nil, err
	}

	overviewRow := models.BorrowerOverviewRow{
		BorrowerId:          utils.Ptr(borrower.ID),
		ReportId:            utils.Ptr(report.ID),
		Company:             rec.str("company"),
		CompanyId:           companyId,
		Industry:            rec.str("industry"),
		PrimaryNaics:        rec.dec("primary_naics"),
		Website:             rec.str("website"),
		PrimaryContact:      rec.str("primary_contact"),
		PrimaryContactPhone: rec.str("primary_contact_phone"),
		PrimaryContactEmail: rec.str("primary_contact_email"),
		UpdateInterval:      rec.date("update_interval"),
		CurrentUpdate:       rec.date("current_update"),
		PreviousUpdate:      rec.date("previous_update"),
		NextUpdate:          rec.date("next_update"),
		Lender:              rec.str("lender"),
		LenderId:            rec.integer("lender_id"),
		SpecificIndividual:  rec.str("specific_individual"),
		SpecificId:          rec.integer("specific_id"),
	}
	if err := tx.Create(&overviewRow).Error; err != nil {
		return nil, nil, nil, err
	}

	summary := &SheetSummary{
		Sheet:      overviewSheetName,
		Model:      "BorrowerOverviewRow",
		Imported:   1,
		HeaderRows: []int{2},
		DataStart:  3,
		Status:     "ok",
	}
	return borrower, &report, summary, nil
}

func naicsString(rec record) *string {
	if n := rec.integer("primary_naics"); n != nil {
		return utils.Ptr(strconv.FormatInt(*n, 10))
	}
	return nil
}

func lenderIdString(rec record) *string {
	if n := rec.integer("lender_id"); n != nil {
		return utils.Ptr(strconv.FormatInt(*n, 10))
	}
	return rec.str("lender_id")
}

// importSheet runs one registered sheet end to end: header discovery,
// record building and the bulk insert. Read and parse errors are folded
// into the summary so one unreadable sheet cannot sink the rest; an
// insert error is returned so the surrounding transaction rolls back.
func importSheet(tx *gorm.DB, f *excelize.File, sheet string, def sheetDef, ref rowRef) (SheetSummary, error) {
	summary := SheetSummary{Sheet: sheet, Model: def.model}

	rows, err := sheetRows(f, sheet)
	if err != nil {
		summary.Status = "failed"
		summary.Message = err.Error()
		return summary, nil
	}
	if len(rows) == 0 {
		summary.Status = "empty"
		summary.Message = "sheet is empty"
		return summary, nil
	}

	known := def.knownFields()
	headerRows := findHeaderRows(rows, known, def.hint)
	for _, r := range headerRows {
		summary.HeaderRows = append(summary.HeaderRows, r+1)
	}

	var header []string
	if len(headerRows) == 2 {
		header = combineHeaderRows(rows[headerRows[0]], rows[headerRows[1]])
	} else {
		header = rows[headerRows[0]]
	}
	headers := applyHeaderAliases(makeUniqueHeaders(header), known)

	present := map[string]struct{}{}
	for _, h := range headers {
		present[h] = struct{}{}
	}
	for _, req := range def.required {
		if _, ok := present[req]; !ok {
			summary.Status = "missing"
			summary.Message = fmt.Sprintf("required column %q not found", req)
			summary.Skipped = len(rows) - headerRows[len(headerRows)-1] - 1
			if summary.Skipped < 0 {
				summary.Skipped = 0
			}
			return summary, nil
		}
	}

	dataStart := headerRows[len(headerRows)-1] + 1
	summary.DataStart = dataStart + 1

	var recs []record
	blankRun := 0
	started := false
	for i := dataStart; i < len(rows); i++ {
		rec := record{}
		blank := true
		for j, h := range headers {
			if j < len(rows[i]) {
				rec[h] = rows[i][j]
				if !isBlank(rows[i][j]) {
					blank = false
				}
			}
		}
		if blank {
			if !started {
				continue
			}
			blankRun++
			if blankRun >= blankRowStopLimit {
				break
			}
			continue
		}
		started = true
		blankRun = 0
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		summary.Status = "empty"
		summary.Message = "no data rows"
		return summary, nil
	}

	imported, skipped, err := def.insert(tx, ref, recs)
	summary.Imported = imported
	summary.Skipped = skipped
	if err != nil {
		summary.Status = "failed"
		summary.Message = err.Error()
		return summary, err
	}
	if imported == 0 {
		summary.Status = "empty"
		summary.Message = "no data rows"
		return summary, nil
	}
	summary.Status = "ok"
	return summary, nil
}
