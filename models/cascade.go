package models

import "gorm.io/gorm"

// reportRowModels lists every row family keyed by borrower_id that an
// import can produce. Used by clear and cascade helpers.
func reportRowModels() []interface{} {
	return []interface{}{
		&BorrowerOverviewRow{}, &CollateralOverviewRow{},
		&MachineryEquipmentRow{}, &ValueTrendRow{},
		&AgingCompositionRow{}, &ARMetricsRow{}, &Top20ByTotalARRow{}, &Top20ByPastDueRow{},
		&IneligibleTrendRow{}, &IneligibleOverviewRow{}, &ConcentrationADODSORow{},
		&FGInventoryMetricsRow{}, &FGIneligibleDetailRow{}, &FGCompositionRow{},
		&FGInlineCategoryAnalysisRow{}, &FGInlineExcessByCategoryRow{},
		&SalesGMTrendRow{}, &HistoricalTop20SKUsRow{},
		&RMInventoryMetricsRow{}, &RMIneligibleOverviewRow{}, &RMCategoryHistoryRow{}, &RMTop20HistoryRow{},
		&WIPInventoryMetricsRow{}, &WIPIneligibleOverviewRow{}, &WIPCategoryHistoryRow{}, &WIPTop20HistoryRow{},
		&FGGrossRecoveryHistoryRow{}, &WIPRecoveryRow{}, &RawMaterialRecoveryRow{}, &NOLVTableRow{},
		&RiskSubfactorsRow{}, &CompositeIndexRow{},
		&ForecastRow{}, &AvailabilityForecastRow{}, &CashForecastRow{}, &CashFlowForecastRow{},
		&CurrentWeekVarianceRow{}, &CumulativeVarianceRow{},
		&CollateralLimitsRow{}, &IneligiblesRow{},
	}
}

// ClearBorrowerData removes every imported row, report and snapshot summary
// for a borrower, leaving the borrower and company records in place. Used
// by the import flow when a replacement upload asks for a clean slate.
func ClearBorrowerData(tx *gorm.DB, borrowerId int) error {
	for _, model := range reportRowModels() {
		if err := tx.Where("borrower_id = ?", borrowerId).Delete(model).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("borrower_id = ?", borrowerId).Delete(&SnapshotSummaryRow{}).Error; err != nil {
		return err
	}
	return tx.Where("borrower_id = ?", borrowerId).Delete(&BorrowerReport{}).Error
}

// DeleteBorrower removes a borrower and everything under it.
func DeleteBorrower(tx *gorm.DB, borrowerId int) error {
	if err := ClearBorrowerData(tx, borrowerId); err != nil {
		return err
	}
	if err := tx.Where("borrower_id = ?", borrowerId).Delete(&SpecificIndividual{}).Error; err != nil {
		return err
	}
	return tx.Delete(&Borrower{}, borrowerId).Error
}

// DeleteCompany removes a company and all of its borrowers.
func DeleteCompany(tx *gorm.DB, companyId int) error {
	var borrowerIds []int
	err := tx.Model(&Borrower{}).Where("company_id = ?", companyId).Pluck("id", &borrowerIds).Error
	if err != nil {
		return err
	}
	for _, id := range borrowerIds {
		if err := DeleteBorrower(tx, id); err != nil {
			return err
		}
	}
	return tx.Delete(&Company{}, companyId).Error
}
