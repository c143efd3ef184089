package models

import "time"

// BorrowerReport is a single ingestion event. All rows produced by one
// import share one report; the report (and its rows) is immutable once
// created. Corrections arrive as new reports.
type BorrowerReport struct {
	ID         int        `gorm:"primary_key" json:"id"`
	BorrowerId int        `gorm:"index;not null" json:"borrower_id"`
	Borrower   *Borrower  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SourceFile *string    `gorm:"size:255" json:"source_file"`
	ReportDate *time.Time `gorm:"type:date" json:"report_date"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
