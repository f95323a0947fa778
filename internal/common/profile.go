package common

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Profile is the per-vehicle TOML configuration: everything about the tracked
// car that is data rather than code, including the odometer repair bounds and
// the fuel price table the analytics use.
type Profile struct {
	Vehicle  VehicleProfile  `toml:"vehicle"`
	Odometer OdometerProfile `toml:"odometer"`
	Fuel     FuelProfile     `toml:"fuel"`
}

type VehicleProfile struct {
	Make         string `toml:"make"`
	Model        string `toml:"model"`
	Registration string `toml:"registration"`
}

// OdometerProfile bounds the leading-digit repair heuristic. A repaired
// reading outside [MinKM, MaxKM) is rejected as implausible for this vehicle.
type OdometerProfile struct {
	MinKM int `toml:"repair_min_km"`
	MaxKM int `toml:"repair_max_km"`
}

type FuelProfile struct {
	ConsumptionLPer100KM float64         `toml:"consumption_l_per_100km"`
	PricesEURPerLiter    map[string]float64 `toml:"prices_eur_per_liter"` // year -> price
}

// DefaultProfile returns the built-in profile used when no TOML file exists.
func DefaultProfile() Profile {
	return Profile{
		Vehicle: VehicleProfile{
			Make:         "Honda",
			Model:        "CR-V",
			Registration: "LTI-509",
		},
		Odometer: OdometerProfile{MinKM: 200000, MaxKM: 500000},
		Fuel: FuelProfile{
			ConsumptionLPer100KM: 8.5,
			PricesEURPerLiter: map[string]float64{
				"2009": 1.25, "2010": 1.35, "2011": 1.50, "2012": 1.62,
				"2013": 1.58, "2014": 1.45, "2015": 1.28, "2016": 1.32,
				"2017": 1.42, "2018": 1.52, "2019": 1.48, "2020": 1.35,
				"2021": 1.58, "2022": 1.85, "2023": 1.72, "2024": 1.68,
				"2025": 1.75,
			},
		},
	}
}

// LoadProfile reads the profile TOML at path, falling back to the defaults
// when the file does not exist. Missing sections keep their default values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := toml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("decode profile: %w", err)
	}
	if p.Odometer.MinKM <= 0 || p.Odometer.MaxKM <= p.Odometer.MinKM {
		return p, NewAppError("CONFIG_ERROR", "odometer repair bounds must satisfy 0 < min < max", ErrInvalidInput)
	}
	return p, nil
}
