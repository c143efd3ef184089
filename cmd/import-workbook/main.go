// import-workbook ingests a borrower workbook from disk without going
// through the HTTP upload endpoint. Useful for backfills and debugging a
// workbook that fails in the API.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//     go run ./cmd/import-workbook -file /path/to/borrower.xlsx [-clear] [-report-date 2024-01-31]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/importer"
)

func main() {
	file := flag.String("file", "", "workbook path (required)")
	clear := flag.Bool("clear", false, "replace the borrower's existing data")
	reportDate := flag.String("report-date", "", "override report date (YYYY-MM-DD)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import-workbook -file <path> [-clear] [-report-date YYYY-MM-DD]")
		os.Exit(2)
	}

	opts := importer.Options{
		SourceFile: filepath.Base(*file),
		Clear:      *clear,
	}
	if *reportDate != "" {
		t, err := time.Parse("2006-01-02", *reportDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -report-date %q: %v\n", *reportDate, err)
			os.Exit(2)
		}
		opts.ReportDate = &t
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	result, err := importer.Run(db, *file, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
	if result.Status == "failed" {
		os.Exit(1)
	}
}
