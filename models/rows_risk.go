package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskSubfactorsRow is one scored sub-risk within a main risk category,
// scored on a 0-5 scale.
type RiskSubfactorsRow struct {
	ID               int              `gorm:"primary_key" json:"id"`
	BorrowerId       *int             `gorm:"index" json:"borrower_id"`
	Borrower         *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId         *int             `gorm:"index" json:"report_id"`
	Report           *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date             *time.Time       `gorm:"type:date" json:"date"`
	MainCategory     *string          `gorm:"size:255" json:"main_category"`
	SubRisk          *string          `gorm:"size:255" json:"sub_risk"`
	RiskScore        *decimal.Decimal `gorm:"type:decimal(20,6)" json:"risk_score"`
	HighImpactFactor *string          `gorm:"size:255" json:"high_impact_factor"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RiskSubfactorsRow) TableName() string { return "risk_subfactors" }

// CompositeIndexRow is the weighted overall risk score per date with its
// component scores and weights.
type CompositeIndexRow struct {
	ID              int              `gorm:"primary_key" json:"id"`
	BorrowerId      *int             `gorm:"index" json:"borrower_id"`
	Borrower        *Borrower        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportId        *int             `gorm:"index" json:"report_id"`
	Report          *BorrowerReport  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date            *time.Time       `gorm:"type:date" json:"date"`
	OverallScore    *decimal.Decimal `gorm:"type:decimal(20,6)" json:"overall_score"`
	ArRisk          *decimal.Decimal `gorm:"type:decimal(20,6)" json:"ar_risk"`
	InventoryRisk   *decimal.Decimal `gorm:"type:decimal(20,6)" json:"inventory_risk"`
	CompanyRisk     *decimal.Decimal `gorm:"type:decimal(20,6)" json:"company_risk"`
	IndustryRisk    *decimal.Decimal `gorm:"type:decimal(20,6)" json:"industry_risk"`
	WeightAr        *decimal.Decimal `gorm:"type:decimal(12,6)" json:"weight_ar"`
	WeightInventory *decimal.Decimal `gorm:"type:decimal(12,6)" json:"weight_inventory"`
	WeightCompany   *decimal.Decimal `gorm:"type:decimal(12,6)" json:"weight_company"`
	WeightIndustry  *decimal.Decimal `gorm:"type:decimal(12,6)" json:"weight_industry"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompositeIndexRow) TableName() string { return "composite_index" }
