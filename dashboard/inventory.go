package dashboard

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
)

// Inventory bucket keys.
const (
	BucketFinishedGoods = "finished_goods"
	BucketRawMaterials  = "raw_materials"
	BucketWorkInProcess = "work_in_process"
)

var bucketOrder = []string{BucketFinishedGoods, BucketRawMaterials, BucketWorkInProcess}

var bucketLabels = map[string]string{
	BucketFinishedGoods: "Finished Goods",
	BucketRawMaterials:  "Raw Materials",
	BucketWorkInProcess: "Work in Process",
}

// Keyword tables for assigning a collateral row to an inventory bucket.
// The sub-type is consulted before the main type; first match wins.
var bucketKeywords = []struct {
	bucket   string
	keywords []string
}{
	{BucketFinishedGoods, []string{"finished", "fg"}},
	{BucketRawMaterials, []string{"raw", "rm"}},
	{BucketWorkInProcess, []string{"work in process", "work-in-process", "wip"}},
}

// BucketFor assigns a collateral row to an inventory bucket, or "" when
// neither label matches any keyword table.
func BucketFor(mainType, subType *string) string {
	for _, label := range []*string{subType, mainType} {
		if label == nil {
			continue
		}
		lowered := strings.ToLower(*label)
		for _, entry := range bucketKeywords {
			for _, kw := range entry.keywords {
				if strings.Contains(lowered, kw) {
					return entry.bucket
				}
			}
		}
	}
	return ""
}

// WeightedNolv computes the eligible-dollar-weighted average NOLV across
// rows. Rows without both figures drop out of the average.
func WeightedNolv(rows []models.CollateralOverviewRow) *decimal.Decimal {
	weighted := decimal.Zero
	total := decimal.Zero
	for _, row := range rows {
		if row.NolvPct == nil || row.EligibleCollateral == nil {
			continue
		}
		weighted = weighted.Add(row.NolvPct.Mul(*row.EligibleCollateral))
		total = total.Add(*row.EligibleCollateral)
	}
	if total.Sign() == 0 {
		return nil
	}
	result := weighted.Div(total)
	return &result
}

// TrendPct computes the aggregate percent move from beginning to net
// collateral across rows.
func TrendPct(rows []models.CollateralOverviewRow) *decimal.Decimal {
	delta := decimal.Zero
	base := decimal.Zero
	for _, row := range rows {
		if row.NetCollateral == nil || row.BeginningCollateral == nil {
			continue
		}
		delta = delta.Add(row.NetCollateral.Sub(*row.BeginningCollateral))
		base = base.Add(*row.BeginningCollateral)
	}
	if base.Sign() == 0 {
		return nil
	}
	result := delta.Div(base).Mul(hundred)
	return &result
}

// ResolveRateLimit finds the advance rate cap for a collateral row: the
// limits table is matched on collateral type, narrowed by sub-type when
// one is present, falling back to the rate limit on the row itself.
func ResolveRateLimit(limits []models.CollateralLimitsRow, row models.CollateralOverviewRow) *decimal.Decimal {
	if row.MainType != nil {
		mainType := strings.ToLower(strings.TrimSpace(*row.MainType))
		var typeMatch *decimal.Decimal
		for _, limit := range limits {
			if limit.CollateralType == nil || strings.ToLower(strings.TrimSpace(*limit.CollateralType)) != mainType {
				continue
			}
			if row.SubType != nil && limit.CollateralSubType != nil &&
				strings.EqualFold(strings.TrimSpace(*limit.CollateralSubType), strings.TrimSpace(*row.SubType)) {
				return limit.PctLimit
			}
			if typeMatch == nil && limit.CollateralSubType == nil {
				typeMatch = limit.PctLimit
			}
		}
		if typeMatch != nil {
			return typeMatch
		}
	}
	return row.RateLimit
}

type InventoryBucket struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Eligible string `json:"eligible"`
	Net      string `json:"net"`
	NolvPct  string `json:"nolv_pct"`
	TrendPct string `json:"trend_pct"`
}

type MixSlice struct {
	Label string `json:"label"`
	Pct   string `json:"pct"`
}

type RiskMetric struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Direction string `json:"direction"`
}

type InventoryPayload struct {
	Buckets     []InventoryBucket `json:"buckets"`
	Mix         []MixSlice        `json:"mix"`
	RiskMetrics []RiskMetric      `json:"risk_metrics"`
}

// inventoryRows filters a collateral snapshot down to inventory rows.
func inventoryRows(rows []models.CollateralOverviewRow) []models.CollateralOverviewRow {
	var out []models.CollateralOverviewRow
	for _, row := range rows {
		if row.MainType != nil && strings.Contains(strings.ToLower(*row.MainType), "inventory") {
			out = append(out, row)
		}
	}
	return out
}

// inventoryIneligibleRatio is ineligible over eligible plus ineligible,
// nil when there is nothing to divide.
func inventoryIneligibleRatio(rows []models.CollateralOverviewRow) *decimal.Decimal {
	eligible := decimal.Zero
	ineligible := decimal.Zero
	for _, row := range rows {
		if row.EligibleCollateral != nil {
			eligible = eligible.Add(*row.EligibleCollateral)
		}
		if row.Ineligibles != nil {
			ineligible = ineligible.Add(*row.Ineligibles)
		}
	}
	total := eligible.Add(ineligible)
	if total.Sign() == 0 {
		return nil
	}
	ratio := ineligible.Div(total)
	return &ratio
}

const (
	arPastDueAlertPct        = 5
	inventoryIneligibleAlert = 15
)

// BuildInventory assembles the inventory summary from the latest
// collateral snapshot.
func BuildInventory(db *gorm.DB, borrowerId int, snapshot []models.CollateralOverviewRow) (*InventoryPayload, error) {
	invRows := inventoryRows(snapshot)

	grouped := map[string][]models.CollateralOverviewRow{}
	for _, row := range invRows {
		if bucket := BucketFor(row.MainType, row.SubType); bucket != "" {
			grouped[bucket] = append(grouped[bucket], row)
		}
	}

	var buckets []InventoryBucket
	totalEligible := decimal.Zero
	bucketEligible := map[string]decimal.Decimal{}
	for _, key := range bucketOrder {
		rows := grouped[key]
		eligible := decimal.Zero
		net := decimal.Zero
		for _, row := range rows {
			if row.EligibleCollateral != nil {
				eligible = eligible.Add(*row.EligibleCollateral)
			}
			if row.NetCollateral != nil {
				net = net.Add(*row.NetCollateral)
			}
		}
		bucketEligible[key] = eligible
		totalEligible = totalEligible.Add(eligible)

		bucket := InventoryBucket{
			Key: key, Label: bucketLabels[key],
			Eligible: Placeholder, Net: Placeholder, NolvPct: Placeholder, TrendPct: Placeholder,
		}
		if len(rows) > 0 {
			bucket.Eligible = FormatCurrency(&eligible)
			bucket.Net = FormatCurrency(&net)
			bucket.NolvPct = FormatPct(WeightedNolv(rows))
			bucket.TrendPct = FormatPct(TrendPct(rows))
		}
		buckets = append(buckets, bucket)
	}

	var mix []MixSlice
	if totalEligible.Sign() > 0 {
		for _, key := range bucketOrder {
			share := bucketEligible[key].Div(totalEligible)
			mix = append(mix, MixSlice{Label: bucketLabels[key], Pct: FormatPct(&share)})
		}
	}

	metrics, err := buildRiskMetrics(db, borrowerId, invRows)
	if err != nil {
		return nil, err
	}
	return &InventoryPayload{Buckets: buckets, Mix: mix, RiskMetrics: metrics}, nil
}

// buildRiskMetrics renders the AR and inventory health indicators with
// their up/down direction flags.
func buildRiskMetrics(db *gorm.DB, borrowerId int, invRows []models.CollateralOverviewRow) ([]RiskMetric, error) {
	arMetric := RiskMetric{Label: "AR Past Due", Value: Placeholder, Direction: "up"}
	var latestAR models.ARMetricsRow
	err := db.Where("borrower_id = ?", borrowerId).
		Order("as_of_date DESC, id DESC").
		Take(&latestAR).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && latestAR.PctPastDue != nil {
		arMetric.Value = FormatPct(latestAR.PctPastDue)
		if NormalizePct(*latestAR.PctPastDue).GreaterThanOrEqual(decimal.NewFromInt(arPastDueAlertPct)) {
			arMetric.Direction = "down"
		}
	}

	invMetric := RiskMetric{Label: "Inventory Ineligible", Value: Placeholder, Direction: "up"}
	if ratio := inventoryIneligibleRatio(invRows); ratio != nil {
		invMetric.Value = FormatPct(ratio)
		if NormalizePct(*ratio).GreaterThan(decimal.NewFromInt(inventoryIneligibleAlert)) {
			invMetric.Direction = "down"
		}
	}
	return []RiskMetric{arMetric, invMetric}, nil
}
