package history

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// FuelSegment is the estimated fuel usage between two services with odometer
// readings.
type FuelSegment struct {
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	DistanceKM int     `json:"distance_km"`
	Liters     float64 `json:"liters"`
	PricePerL  float64 `json:"price_per_liter"`
	Cost       float64 `json:"cost"`
}

// FuelEstimate is the fuel-cost picture derived from odometer deltas and the
// profile's consumption and yearly price table.
type FuelEstimate struct {
	Segments    []FuelSegment `json:"segments"`
	TotalKM     int           `json:"total_km"`
	TotalLiters float64       `json:"total_liters"`
	TotalCost   float64       `json:"total_cost"`
}

// EstimateFuelCosts walks date-ordered records and prices each odometer delta
// with the fuel price of the segment's end year. Segments with a non-positive
// delta are skipped: an odometer never runs backwards, so such a pair means a
// bad reading.
func EstimateFuelCosts(records []entity.ServiceRecord, profile *common.Profile, logger *slog.Logger) FuelEstimate {
	if logger == nil {
		logger = slog.Default()
	}

	var est FuelEstimate
	consumption := profile.Fuel.ConsumptionLPer100KM

	var prev *entity.ServiceRecord
	for i := range records {
		r := &records[i]
		if r.OdometerKM == nil {
			continue
		}
		if prev != nil {
			delta := *r.OdometerKM - *prev.OdometerKM
			if delta <= 0 {
				logger.Warn("history.fuel.odometer_regression",
					"from", prev.Date, "to", r.Date,
					"from_km", *prev.OdometerKM, "to_km", *r.OdometerKM)
				prev = r
				continue
			}
			price := priceForDate(profile.Fuel.PricesEURPerLiter, r.Date)
			liters := float64(delta) * consumption / 100
			seg := FuelSegment{
				FromDate:   prev.Date,
				ToDate:     r.Date,
				DistanceKM: delta,
				Liters:     liters,
				PricePerL:  price,
				Cost:       liters * price,
			}
			est.Segments = append(est.Segments, seg)
			est.TotalKM += delta
			est.TotalLiters += liters
			est.TotalCost += seg.Cost
		}
		prev = r
	}
	return est
}

// priceForDate picks the table price for the date's year, falling back to the
// closest year when the table has no exact entry.
func priceForDate(prices map[string]float64, date string) float64 {
	if len(prices) == 0 || len(date) < 4 {
		return 0
	}
	year := date[:4]
	if p, ok := prices[year]; ok {
		return p
	}

	want, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	years := make([]int, 0, len(prices))
	for y := range prices {
		if n, err := strconv.Atoi(y); err == nil {
			years = append(years, n)
		}
	}
	if len(years) == 0 {
		return 0
	}
	sort.Ints(years)

	best := years[0]
	for _, y := range years {
		if abs(y-want) < abs(best-want) {
			best = y
		}
	}
	return prices[strconv.Itoa(best)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
