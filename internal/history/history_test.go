package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

func reconciledFixture() map[string]entity.ReconciledRecord {
	return map[string]entity.ReconciledRecord{
		"huolto_2021": {GroundTruth: entity.FieldSet{
			"date": "2021-03-15", "amount": 203.75, "company": "Järvenpään Automajor Oy",
			"odometer_km": 380000, "work_description": []string{"Öljynvaihto"},
		}},
		"katsastus_2021": {GroundTruth: entity.FieldSet{
			"date": "2021-06-01", "amount": 59.0, "company": "A-Katsastus",
			"odometer_km": 384250,
		}},
		"renkaat_2021": {GroundTruth: entity.FieldSet{
			"date": "2021-06-01", "amount": 420.0, "company": "Euromaster",
		}, OverrideInfo: entity.OverrideInfo{HasOverrides: true}},
		"epakelpo": {GroundTruth: entity.FieldSet{
			"amount": 10.0, // no date, must be excluded
		}},
	}
}

func TestBuildServiceRecords(t *testing.T) {
	records := BuildServiceRecords(reconciledFixture(), nil)
	require.Len(t, records, 3)

	// Sorted by date, then stem; same-day IDs get an ordinal suffix.
	assert.Equal(t, "2021-03-15", records[0].ID)
	assert.Equal(t, "2021-06-01", records[1].ID)
	assert.Equal(t, "katsastus_2021", records[1].SourceStem)
	assert.Equal(t, "2021-06-01-2", records[2].ID)
	assert.Equal(t, "renkaat_2021", records[2].SourceStem)

	assert.True(t, records[2].Overridden)
	require.NotNil(t, records[0].OdometerKM)
	assert.Equal(t, 380000, *records[0].OdometerKM)
	assert.Equal(t, []string{"Öljynvaihto"}, records[0].WorkDescriptions)
}

func TestComputeStatistics(t *testing.T) {
	records := BuildServiceRecords(reconciledFixture(), nil)
	stats := ComputeStatistics(records)

	assert.Equal(t, 3, stats.RecordCount)
	assert.InDelta(t, 682.75, stats.TotalSpend, 0.001)
	assert.InDelta(t, 682.75/3, stats.AverageCost, 0.001)

	assert.InDelta(t, 203.75, stats.MonthlySpend["2021-03"], 0.001)
	assert.InDelta(t, 479.0, stats.MonthlySpend["2021-06"], 0.001)
	assert.InDelta(t, 682.75, stats.YearlySpend["2021"], 0.001)

	assert.Equal(t, 1, stats.Providers["Euromaster"].Count)
	assert.InDelta(t, 420.0, stats.Providers["Euromaster"].Total, 0.001)

	assert.Equal(t, 1, stats.CostBuckets["<100"])
	assert.Equal(t, 1, stats.CostBuckets["100-300"])
	assert.Equal(t, 1, stats.CostBuckets["300-600"])

	require.Len(t, stats.Cumulative, 3)
	assert.InDelta(t, 682.75, stats.Cumulative[2].Cumulative, 0.001)

	require.NotEmpty(t, stats.TopWork)
	assert.Equal(t, "Öljynvaihto", stats.TopWork[0].Description)
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "<100", bucketLabel(59))
	assert.Equal(t, "100-300", bucketLabel(100))
	assert.Equal(t, "300-600", bucketLabel(420))
	assert.Equal(t, "600-1000", bucketLabel(600))
	assert.Equal(t, ">=1000", bucketLabel(1500))
}

func TestEstimateFuelCosts(t *testing.T) {
	profile := common.DefaultProfile()
	records := BuildServiceRecords(reconciledFixture(), nil)

	est := EstimateFuelCosts(records, &profile, nil)
	require.Len(t, est.Segments, 1)

	seg := est.Segments[0]
	assert.Equal(t, 4250, seg.DistanceKM)
	assert.InDelta(t, 4250*8.5/100, seg.Liters, 0.001)
	assert.InDelta(t, 1.58, seg.PricePerL, 0.001) // 2021 table price
	assert.InDelta(t, seg.Liters*1.58, seg.Cost, 0.001)
	assert.Equal(t, 4250, est.TotalKM)
}

func TestEstimateFuelCosts_SkipsRegressions(t *testing.T) {
	profile := common.DefaultProfile()
	km1, km2 := 390000, 385000
	records := []entity.ServiceRecord{
		{Date: "2022-01-01", OdometerKM: &km1},
		{Date: "2022-06-01", OdometerKM: &km2},
	}
	est := EstimateFuelCosts(records, &profile, nil)
	assert.Empty(t, est.Segments)
	assert.Equal(t, 0, est.TotalKM)
}

func TestPriceForDate_FallsBackToClosestYear(t *testing.T) {
	prices := map[string]float64{"2020": 1.35, "2022": 1.85}
	assert.InDelta(t, 1.35, priceForDate(prices, "2020-05-01"), 0.001)
	assert.InDelta(t, 1.35, priceForDate(prices, "2018-05-01"), 0.001)
	assert.InDelta(t, 1.85, priceForDate(prices, "2030-05-01"), 0.001)
	assert.Equal(t, 0.0, priceForDate(nil, "2020-01-01"))
}

func TestWriteServiceDataModel(t *testing.T) {
	profile := common.DefaultProfile()
	model := BuildServiceDataModel(reconciledFixture(), &profile)
	assert.Equal(t, "Honda", model.Vehicle.Make)
	assert.Len(t, model.Records, 3)

	path := filepath.Join(t.TempDir(), "service_data_model.json")
	require.NoError(t, WriteServiceDataModel(path, model))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"records"`)
	assert.Contains(t, string(b), `"fuel_estimate"`)
}
