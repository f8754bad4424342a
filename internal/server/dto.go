package server

import (
	"errors"

	"github.com/rshade/carbonlens/internal/footprint"
)

const percentScale = 100.0

var errAmbiguousRecycling = errors.New("set recycling_fraction or recycling_percent, not both")

// FootprintRequest is the body accepted by the footprint endpoints.
// Recycling may be sent as a fraction (0-1) or a percentage (0-100).
type FootprintRequest struct {
	Name   string                 `json:"name"`
	Energy footprint.EnergyInputs `json:"energy"`
	Waste  WasteRequest           `json:"waste"`
	Travel footprint.TravelInputs `json:"travel"`
}

// WasteRequest carries waste inputs with either recycling form.
type WasteRequest struct {
	TotalKgPerMonth   float64  `json:"total_kg_per_month"`
	RecyclingFraction *float64 `json:"recycling_fraction,omitempty"`
	RecyclingPercent  *float64 `json:"recycling_percent,omitempty"`
}

// ToInputs resolves the request into footprint inputs. Range checks are
// left to the engine.
func (r FootprintRequest) ToInputs() (footprint.Inputs, error) {
	in := footprint.Inputs{
		Energy: r.Energy,
		Waste:  footprint.WasteInputs{TotalKgPerMonth: r.Waste.TotalKgPerMonth},
		Travel: r.Travel,
	}
	switch {
	case r.Waste.RecyclingFraction != nil && r.Waste.RecyclingPercent != nil:
		return footprint.Inputs{}, errAmbiguousRecycling
	case r.Waste.RecyclingPercent != nil:
		in.Waste.RecyclingFraction = *r.Waste.RecyclingPercent / percentScale
	case r.Waste.RecyclingFraction != nil:
		in.Waste.RecyclingFraction = *r.Waste.RecyclingFraction
	}
	return in, nil
}
