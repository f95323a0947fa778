package history

import (
	"sort"
	"strings"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// ProviderStat aggregates spend per service provider.
type ProviderStat struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// CumulativePoint is one step in the running-total time series.
type CumulativePoint struct {
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
	OdometerKM *int    `json:"odometer_km,omitempty"`
}

// Statistics summarizes the service history for reporting.
type Statistics struct {
	RecordCount  int                     `json:"record_count"`
	TotalSpend   float64                 `json:"total_spend"`
	AverageCost  float64                 `json:"average_cost"`
	MonthlySpend map[string]float64      `json:"monthly_spend"` // "2021-03"
	YearlySpend  map[string]float64      `json:"yearly_spend"`  // "2021"
	Providers    map[string]ProviderStat `json:"providers"`
	CostBuckets  map[string]int          `json:"cost_buckets"`
	Cumulative   []CumulativePoint       `json:"cumulative"`
	TopWork      []WorkCount             `json:"top_work,omitempty"`
}

// WorkCount counts how often a work item appears across the history.
type WorkCount struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Cost bucket edges in euros. Buckets are labeled "<100", "100-300",
// "300-600", "600-1000", ">=1000".
var bucketEdges = []struct {
	label string
	upper float64
}{
	{"<100", 100},
	{"100-300", 300},
	{"300-600", 600},
	{"600-1000", 1000},
}

func bucketLabel(amount float64) string {
	for _, b := range bucketEdges {
		if amount < b.upper {
			return b.label
		}
	}
	return ">=1000"
}

// ComputeStatistics expects records sorted by date, as BuildServiceRecords
// returns them.
func ComputeStatistics(records []entity.ServiceRecord) Statistics {
	stats := Statistics{
		RecordCount:  len(records),
		MonthlySpend: map[string]float64{},
		YearlySpend:  map[string]float64{},
		Providers:    map[string]ProviderStat{},
		CostBuckets:  map[string]int{},
	}

	workCounts := map[string]int{}
	for _, r := range records {
		stats.TotalSpend += r.Amount
		if len(r.Date) >= 7 {
			stats.MonthlySpend[r.Date[:7]] += r.Amount
			stats.YearlySpend[r.Date[:4]] += r.Amount
		}
		if r.Company != "" {
			p := stats.Providers[r.Company]
			p.Count++
			p.Total += r.Amount
			stats.Providers[r.Company] = p
		}
		if r.Amount > 0 {
			stats.CostBuckets[bucketLabel(r.Amount)]++
		}
		for _, w := range r.WorkDescriptions {
			workCounts[strings.TrimSpace(w)]++
		}

		point := CumulativePoint{
			Date:       r.Date,
			Amount:     r.Amount,
			Cumulative: stats.TotalSpend,
			OdometerKM: r.OdometerKM,
		}
		stats.Cumulative = append(stats.Cumulative, point)
	}

	if stats.RecordCount > 0 {
		stats.AverageCost = stats.TotalSpend / float64(stats.RecordCount)
	}

	for desc, n := range workCounts {
		stats.TopWork = append(stats.TopWork, WorkCount{Description: desc, Count: n})
	}
	sort.Slice(stats.TopWork, func(i, j int) bool {
		if stats.TopWork[i].Count != stats.TopWork[j].Count {
			return stats.TopWork[i].Count > stats.TopWork[j].Count
		}
		return stats.TopWork[i].Description < stats.TopWork[j].Description
	})
	if len(stats.TopWork) > 10 {
		stats.TopWork = stats.TopWork[:10]
	}
	return stats
}
