package models

import (
	"log"

	"bitbucket.org/coradatalabs/cora_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Company{}, &Borrower{}, &SpecificIndividual{}, &BorrowerReport{},
		&BorrowerOverviewRow{}, &CollateralOverviewRow{}, &SnapshotSummaryRow{},
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
	)
	if err != nil {
		log.Fatal(err)
	}
}
