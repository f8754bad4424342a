package footprint

// GenerateSuggestions returns advice for each category whose footprint is
// strictly above its threshold, in the fixed order energy, waste, travel.
// The returned slice is never nil; it is empty when nothing is exceeded.
func GenerateSuggestions(energy, waste, travel float64) []string {
	suggestions := make([]string, 0, 3) //nolint:mnd // one slot per category
	if energy > EnergyThresholdKg {
		suggestions = append(suggestions, EnergySuggestion)
	}
	if waste > WasteThresholdKg {
		suggestions = append(suggestions, WasteSuggestion)
	}
	if travel > TravelThresholdKg {
		suggestions = append(suggestions, TravelSuggestion)
	}
	return suggestions
}

// Suggestions is GenerateSuggestions applied to a Result.
func (r Result) Suggestions() []string {
	return GenerateSuggestions(r.Energy, r.Waste, r.Travel)
}
