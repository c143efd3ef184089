package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollateralLimitsRow is borrower-level reference data, not report
// snapshot data: re-imports replace it in place rather than appending.
type CollateralLimitsRow struct {
	ID                int              `gorm:"primary_key" json:"id"`
	BorrowerId        *int             `gorm:"index" json:"borrower_id"`
	Borrower          *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division          *string          `gorm:"size:255" json:"division"`
	CollateralType    *string          `gorm:"size:255" json:"collateral_type"`
	CollateralSubType *string          `gorm:"size:255" json:"collateral_sub_type"`
	UsdLimit          *decimal.Decimal `gorm:"type:decimal(20,2)" json:"usd_limit"`
	PctLimit          *decimal.Decimal `gorm:"type:decimal(12,6)" json:"pct_limit"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CollateralLimitsRow) TableName() string { return "collateral_limits" }

// IneligiblesRow enumerates collateral categories carved out of the
// borrowing base. Borrower-level reference data like CollateralLimitsRow.
type IneligiblesRow struct {
	ID                int       `gorm:"primary_key" json:"id"`
	BorrowerId        *int      `gorm:"index" json:"borrower_id"`
	Borrower          *Borrower `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Division          *string   `gorm:"size:255" json:"division"`
	CollateralType    *string   `gorm:"size:255" json:"collateral_type"`
	CollateralSubType *string   `gorm:"size:255" json:"collateral_sub_type"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IneligiblesRow) TableName() string { return "ineligibles" }
