// Package footprint computes yearly carbon footprint estimates from energy
// bills, waste volume and business travel, and derives improvement
// suggestions from fixed thresholds.
//
// All functions are pure. Values are kg CO2 per year.
package footprint

import (
	"errors"
	"fmt"
	"math"
)

// EnergyInputs holds average monthly bills in currency units.
type EnergyInputs struct {
	ElectricityBill float64 `json:"electricity_bill" yaml:"electricity_bill"`
	GasBill         float64 `json:"gas_bill"         yaml:"gas_bill"`
	FuelBill        float64 `json:"fuel_bill"        yaml:"fuel_bill"`
}

// WasteInputs holds monthly waste volume and the share diverted from landfill.
type WasteInputs struct {
	// TotalKgPerMonth is the total waste generated per month in kg.
	TotalKgPerMonth float64 `json:"total_kg_per_month" yaml:"total_kg_per_month"`

	// RecyclingFraction is the recycled or composted share, from 0 to 1.
	RecyclingFraction float64 `json:"recycling_fraction" yaml:"recycling_fraction"`
}

// TravelInputs holds yearly business travel.
type TravelInputs struct {
	KmPerYear float64 `json:"km_per_year" yaml:"km_per_year"`

	// FuelEfficiency is liters consumed per 100 km. Must be > 0.
	FuelEfficiency float64 `json:"fuel_efficiency_l_per_100km" yaml:"fuel_efficiency_l_per_100km"`
}

// Inputs groups everything needed for one footprint computation.
type Inputs struct {
	Energy EnergyInputs `json:"energy" yaml:"energy"`
	Waste  WasteInputs  `json:"waste"  yaml:"waste"`
	Travel TravelInputs `json:"travel" yaml:"travel"`
}

// Validate checks the ranges the formulas assume. It reports every
// violation at once, each wrapped with the field name.
func (in Inputs) Validate() error {
	var errs []error

	check := func(field string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, fmt.Errorf("%s: %w", field, ErrNonFinite))
		case v < 0:
			errs = append(errs, fmt.Errorf("%s: %w", field, ErrNegativeInput))
		}
	}

	check("electricity_bill", in.Energy.ElectricityBill)
	check("gas_bill", in.Energy.GasBill)
	check("fuel_bill", in.Energy.FuelBill)
	check("total_kg_per_month", in.Waste.TotalKgPerMonth)
	check("km_per_year", in.Travel.KmPerYear)

	r := in.Waste.RecyclingFraction
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0):
		errs = append(errs, fmt.Errorf("recycling_fraction: %w", ErrNonFinite))
	case r < 0 || r > 1:
		errs = append(errs, fmt.Errorf("recycling_fraction %g: %w", r, ErrFractionOutOfRange))
	}

	eff := in.Travel.FuelEfficiency
	switch {
	case math.IsNaN(eff) || math.IsInf(eff, 0):
		errs = append(errs, fmt.Errorf("fuel_efficiency_l_per_100km: %w", ErrNonFinite))
	case eff <= 0:
		errs = append(errs, fmt.Errorf("fuel_efficiency_l_per_100km %g: %w", eff, ErrNonPositiveEfficiency))
	}

	return errors.Join(errs...)
}

// Result is the computed footprint. Total is always the sum of the other
// three fields; build it with Compute rather than by hand.
type Result struct {
	Energy float64 `json:"energy_kg_co2"`
	Waste  float64 `json:"waste_kg_co2"`
	Travel float64 `json:"travel_kg_co2"`
	Total  float64 `json:"total_kg_co2"`
}

// Check reports ErrOverflow when any value is NaN or infinite. Inputs that
// pass Validate can still overflow, e.g. a tiny fuel efficiency.
func (r Result) Check() error {
	names := [4]string{"energy_kg_co2", "waste_kg_co2", "travel_kg_co2", "total_kg_co2"}
	var errs []error
	for i, v := range r.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s: %w", names[i], ErrOverflow))
		}
	}
	return errors.Join(errs...)
}

// Values returns the four footprint values in display order:
// energy, waste, travel, total.
func (r Result) Values() [4]float64 {
	return [4]float64{r.Energy, r.Waste, r.Travel, r.Total}
}
