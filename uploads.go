package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/importer"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

const (
	maxUploadSizeBytes = 25 << 20
	uploadDir          = "uploads/imports"
)

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

type importResponse struct {
	Status        string                  `json:"status"`
	Message       string                  `json:"message"`
	ReportId      int                     `json:"report_id,omitempty"`
	BorrowerId    int                     `json:"borrower_id,omitempty"`
	TotalImported int                     `json:"total_imported"`
	TotalSkipped  int                     `json:"total_skipped"`
	Summary       []importer.SheetSummary `json:"summary,omitempty"`
	Errors        []importer.SheetError   `json:"errors,omitempty"`
}

func importStatusMessage(status string) string {
	switch status {
	case "success":
		return "Import complete."
	case "partial":
		return "Import completed with warnings."
	default:
		return "Import failed. Please check the file and try again."
	}
}

// importExcelHandler ingests a borrower workbook. Staff only.
func importExcelHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.GetIsStaffFromContext(c.Request.Context()) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
			return
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only .xlsx files are supported."})
			return
		}
		if header.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Max 25MB."})
			return
		}

		clear := isTruthy(c.PostForm("clear_existing"))
		if clear && !isTruthy(c.PostForm("confirm_clear")) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please confirm clearing existing data."})
			return
		}

		var reportDate *time.Time
		if v := strings.TrimSpace(c.PostForm("report_date")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "report_date must be YYYY-MM-DD."})
				return
			}
			reportDate = &t
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		base := strings.TrimSuffix(utils.ValidFilename(header.Filename), ".xlsx")
		dest := filepath.Join(uploadDir, base+"-"+strings.ReplaceAll(uuid.NewString(), "-", "")+".xlsx")
		if err := c.SaveUploadedFile(header, dest); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		result, err := importer.Run(config.GetDB(), dest, importer.Options{
			SourceFile: header.Filename,
			ReportDate: reportDate,
			Clear:      clear,
		})
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, importResponse{
				Status:  "failed",
				Message: "Import failed. Please check the file and try again.",
				Errors:  []importer.SheetError{{Sheet: "", Error: err.Error()}},
			})
			return
		}

		c.JSON(http.StatusOK, importResponse{
			Status:        result.Status,
			Message:       importStatusMessage(result.Status),
			ReportId:      result.ReportId,
			BorrowerId:    result.BorrowerId,
			TotalImported: result.TotalImported,
			TotalSkipped:  result.TotalSkipped,
			Summary:       result.Summary,
			Errors:        result.Errors,
		})
	}
}
