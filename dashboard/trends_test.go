package dashboard

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

func TestBuildTrendChart_PadsShortSeries(t *testing.T) {
	chart := buildTrendChart("netCollateral", "Net Collateral",
		[]string{"01/01/2024", "02/01/2024"},
		[]decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)})

	wantPoints := []float64{10, 10, 10, 10, 20}
	if !reflect.DeepEqual(chart.Points, wantPoints) {
		t.Fatalf("points expected %v, got %v", wantPoints, chart.Points)
	}
	// fewer than five readings fall back to the sequence labels
	if !reflect.DeepEqual(chart.Labels, []string{"01", "02", "03", "04", "05"}) {
		t.Fatalf("labels expected sequence fallback, got %v", chart.Labels)
	}
	if chart.AxisLow != 10 || chart.AxisHigh != 20 || chart.AxisStep != 5 {
		t.Fatalf("axis expected 10/20/5, got %v/%v/%v", chart.AxisLow, chart.AxisHigh, chart.AxisStep)
	}
	if !reflect.DeepEqual(chart.Ticks, []string{"$10", "$15", "$20"}) {
		t.Fatalf("ticks expected [$10 $15 $20], got %v", chart.Ticks)
	}
}

func TestBuildTrendChart_KeepsMostRecentFive(t *testing.T) {
	labels := []string{"01/01/2024", "02/01/2024", "03/01/2024", "04/01/2024", "05/01/2024", "06/01/2024"}
	values := make([]decimal.Decimal, 0, 6)
	for i := 1; i <= 6; i++ {
		values = append(values, decimal.NewFromInt(int64(i)))
	}

	chart := buildTrendChart("availability", "Availability", labels, values)
	wantPoints := []float64{2, 3, 4, 5, 6}
	if !reflect.DeepEqual(chart.Points, wantPoints) {
		t.Fatalf("points expected %v, got %v", wantPoints, chart.Points)
	}
	if !reflect.DeepEqual(chart.Labels, labels[1:]) {
		t.Fatalf("labels expected last five dates, got %v", chart.Labels)
	}
	if chart.AxisLow != 2 || chart.AxisHigh != 6 || chart.AxisStep != 2 {
		t.Fatalf("axis expected 2/6/2, got %v/%v/%v", chart.AxisLow, chart.AxisHigh, chart.AxisStep)
	}
}

func TestTrendSeries(t *testing.T) {
	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	reports := []models.BorrowerReport{
		{ID: 1, ReportDate: &day},
		{ID: 2},
	}
	collateral := map[int][]models.CollateralOverviewRow{
		1: {
			{NetCollateral: dec("100"), EligibleCollateral: dec("300"), Ineligibles: dec("50")},
			{NetCollateral: dec("40"), EligibleCollateral: dec("10"), Ineligibles: dec("60")},
		},
	}
	ar := map[int][]models.ARMetricsRow{
		1: {{Balance: dec("40")}, {Balance: dec("60")}},
	}

	labels, net, outstanding, avail := trendSeries(reports, collateral, ar)
	if !reflect.DeepEqual(labels, []string{"01/31/2024", Placeholder}) {
		t.Fatalf("labels expected [01/31/2024 %s], got %v", Placeholder, labels)
	}
	if net[0].String() != "140" || net[1].String() != "0" {
		t.Fatalf("net expected 140/0, got %s/%s", net[0], net[1])
	}
	// 310 eligible - 110 ineligible
	if avail[0].String() != "200" || avail[1].String() != "0" {
		t.Fatalf("availability expected 200/0, got %s/%s", avail[0], avail[1])
	}
	if outstanding[0].String() != "100" || outstanding[1].String() != "0" {
		t.Fatalf("outstanding expected 100/0, got %s/%s", outstanding[0], outstanding[1])
	}
}

func TestTrendSeries_ClampsNegativeAvailability(t *testing.T) {
	reports := []models.BorrowerReport{{ID: 9}}
	collateral := map[int][]models.CollateralOverviewRow{
		9: {{EligibleCollateral: dec("10"), Ineligibles: dec("50")}},
	}
	_, _, _, avail := trendSeries(reports, collateral, nil)
	if avail[0].String() != "0" {
		t.Fatalf("negative availability must clamp to 0, got %s", avail[0])
	}
}
