package dashboard

import (
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

const limitsPageSize = 20

type LimitRow struct {
	Division          string `json:"division"`
	CollateralType    string `json:"collateral_type"`
	CollateralSubType string `json:"collateral_sub_type"`
	UsdLimit          string `json:"usd_limit"`
	PctLimit          string `json:"pct_limit"`
}

type IneligibleEntry struct {
	Division string `json:"division"`
	MainType string `json:"main_type"`
	SubType  string `json:"sub_type"`
}

type LimitsPayload struct {
	Limits      []LimitRow        `json:"limits"`
	Ineligibles []IneligibleEntry `json:"ineligibles"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalLimits int64             `json:"total_limits"`
}

// BuildLimits lists the borrower's collateral limits page plus the
// collateral categories currently carrying ineligibles.
func BuildLimits(db *gorm.DB, borrowerId int, page int) (*LimitsPayload, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := db.Model(&models.CollateralLimitsRow{}).
		Where("borrower_id = ?", borrowerId).Count(&total).Error; err != nil {
		return nil, err
	}

	var limitRows []models.CollateralLimitsRow
	err := db.Where("borrower_id = ?", borrowerId).
		Order("id").
		Offset((page - 1) * limitsPageSize).
		Limit(limitsPageSize).
		Find(&limitRows).Error
	if err != nil {
		return nil, err
	}

	limits := make([]LimitRow, 0, len(limitRows))
	for _, row := range limitRows {
		limits = append(limits, LimitRow{
			Division:          SafeStr(row.Division),
			CollateralType:    SafeStr(row.CollateralType),
			CollateralSubType: SafeStr(row.CollateralSubType),
			UsdLimit:          FormatCurrency(row.UsdLimit),
			PctLimit:          FormatPct(row.PctLimit),
		})
	}

	var overviewRows []models.CollateralOverviewRow
	err = db.Where("borrower_id = ? AND ineligibles IS NOT NULL", borrowerId).
		Order("id").
		Find(&overviewRows).Error
	if err != nil {
		return nil, err
	}
	ineligibles := make([]IneligibleEntry, 0, len(overviewRows))
	for _, row := range overviewRows {
		ineligibles = append(ineligibles, IneligibleEntry{
			Division: SafeStr(row.MainType),
			MainType: SafeStr(row.MainType),
			SubType:  SafeStr(row.SubType),
		})
	}

	return &LimitsPayload{
		Limits:      limits,
		Ineligibles: ineligibles,
		Page:        page,
		PageSize:    limitsPageSize,
		TotalLimits: total,
	}, nil
}
