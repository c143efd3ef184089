package dashboard

import (
	"testing"

	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

func TestWeeksOfSupply(t *testing.T) {
	row := models.ForecastRow{
		FinishedGoods: dec("500000"),
		NetSales:      dec("2000000"),
	}
	got := weeksOfSupply(row)
	if got == nil {
		t.Fatal("weeksOfSupply returned nil")
	}
	// 500k / 2M * 52 = 13
	if got.String() != "13" {
		t.Fatalf("weeksOfSupply expected 13, got %s", got.String())
	}

	if weeksOfSupply(models.ForecastRow{FinishedGoods: dec("500000")}) != nil {
		t.Fatal("missing sales expected nil")
	}
	if weeksOfSupply(models.ForecastRow{FinishedGoods: dec("1"), NetSales: dec("0")}) != nil {
		t.Fatal("zero sales expected nil")
	}
}

func TestIsActualRow(t *testing.T) {
	if !isActualRow(models.ForecastRow{ActualForecast: utils.Ptr("Actual")}) {
		t.Fatal("expected Actual to be actual")
	}
	if !isActualRow(models.ForecastRow{ActualForecast: utils.Ptr("actuals")}) {
		t.Fatal("expected actuals to be actual")
	}
	if isActualRow(models.ForecastRow{ActualForecast: utils.Ptr("Forecast")}) {
		t.Fatal("Forecast must not be actual")
	}
	if isActualRow(models.ForecastRow{}) {
		t.Fatal("nil tag must not be actual")
	}
}

func TestRevolverBalanceChartValue(t *testing.T) {
	row := models.ForecastRow{
		LoanBalance:          dec("900000"),
		RevolverAvailability: dec("250000"),
	}
	for _, spec := range forecastCharts {
		if spec.key != "revolverBalance" {
			continue
		}
		got := spec.value(row)
		if got == nil || got.String() != "250000" {
			t.Fatalf("revolverBalance expected 250000, got %v", got)
		}
		return
	}
	t.Fatal("revolverBalance chart not registered")
}

func TestAddDecimals(t *testing.T) {
	if addDecimals(nil, nil) != nil {
		t.Fatal("nil + nil expected nil")
	}
	got := addDecimals(dec("100"), nil)
	if got == nil || got.String() != "100" {
		t.Fatalf("100 + nil expected 100, got %v", got)
	}
	got = addDecimals(dec("100"), dec("50"))
	if got == nil || got.String() != "150" {
		t.Fatalf("100 + 50 expected 150, got %v", got)
	}
}
