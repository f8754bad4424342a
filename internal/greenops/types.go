// Package greenops expresses a carbon footprint (kg CO2e) as relatable
// real-world equivalencies such as miles driven or tree seedlings grown,
// using EPA-published conversion factors.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type by name so JSON output stays readable.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Equivalency is a single calculated comparison.
type Equivalency struct {
	Type EquivalencyType `json:"type"`

	// Value is the raw equivalency amount.
	Value float64 `json:"value"`

	// FormattedValue is Value with separators or million/billion scaling.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase, e.g. "miles driven".
	Label string `json:"label"`
}

// Summary holds every equivalency for one footprint.
type Summary struct {
	// TotalKg is the footprint the equivalencies were derived from.
	TotalKg float64 `json:"total_kg"`

	Results []Equivalency `json:"results,omitempty"`

	// DisplayText is the prose form for reports, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text,omitempty"`

	// CompactText is the abbreviated form, e.g. "(≈ 781 mi, 18,248 phones)".
	CompactText string `json:"compact_text,omitempty"`

	IsEmpty bool `json:"is_empty"`
}
