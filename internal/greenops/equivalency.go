package greenops

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// equivalencyDef pairs a type with its EPA factor and label.
type equivalencyDef struct {
	typ    EquivalencyType
	factor float64
	label  string
}

// definitions are evaluated in this order; Summary.Results follows it.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var definitions = []equivalencyDef{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity"},
}

// Calculate converts a yearly footprint in kg CO2e into EPA equivalencies.
//
// A footprint below MinEquivalencyThresholdKg yields an empty Summary and
// no error. A negative footprint returns ErrNegativeValue; NaN or Inf
// returns ErrCalculationOverflow.
//
// Example:
//
//	summary, err := Calculate(150.0)
//	// summary.DisplayText == "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
func Calculate(kg float64) (Summary, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Summary{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Summary{TotalKg: kg, IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Summary{TotalKg: kg, IsEmpty: true}, nil
	}

	results := make([]Equivalency, 0, len(definitions))
	for _, def := range definitions {
		v := kg / def.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Summary{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, Equivalency{
			Type:           def.typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          def.label,
		})
	}

	miles := results[EquivalencyMilesDriven].FormattedValue
	phones := results[EquivalencySmartphonesCharged].FormattedValue

	return Summary{
		TotalKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// ForTotal is Calculate for report rendering: failures are logged and an
// empty Summary is returned so the report can still be produced.
func ForTotal(kg float64) Summary {
	summary, err := Calculate(kg)
	if err != nil {
		evt := log.Warn()
		if errors.Is(err, ErrNegativeValue) {
			evt = log.Debug()
		}
		evt.Err(err).Float64("total_kg", kg).Msg("skipping equivalencies")
		return Summary{TotalKg: kg, IsEmpty: true}
	}
	return summary
}

// formatEquivalencyValue rounds to an integer with separators, or scales to
// million/billion notation for very large values.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
