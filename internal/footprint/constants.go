package footprint

// MonthsPerYear annualizes monthly bills and waste volumes.
const MonthsPerYear = 12

// Energy emission factors in kg CO2 per currency unit spent.
const (
	// ElectricityFactor applies to the monthly electricity bill.
	ElectricityFactor = 0.0005

	// GasFactor applies to the monthly natural gas bill.
	GasFactor = 0.0053

	// FuelFactor applies to the monthly transportation fuel bill.
	FuelFactor = 2.32
)

// WasteLandfillFactor is kg CO2 per kg of landfilled waste. The recycling
// fraction is subtracted from it directly, so fractions above this value
// produce a negative waste footprint.
const WasteLandfillFactor = 0.57

// TravelFuelFactor is kg CO2 per liter of fuel burned.
const TravelFuelFactor = 2.31

// Suggestion thresholds in kg CO2 per year. Each is exceeded only when the
// footprint is strictly greater than the threshold.
const (
	EnergyThresholdKg = 1000.0
	WasteThresholdKg  = 500.0
	TravelThresholdKg = 1000.0
)

// Advisory text emitted by GenerateSuggestions.
const (
	EnergySuggestion = "Consider switching to renewable energy sources or energy-efficient appliances."
	WasteSuggestion  = "Increase recycling or composting efforts to reduce waste emissions."
	TravelSuggestion = "Encourage remote meetings and consider hybrid or electric vehicles."

	// NoSuggestionsMessage is displayed when no threshold is exceeded.
	NoSuggestionsMessage = "Great job! Your carbon footprint is within reasonable limits."
)

// Unit is the unit label used for every footprint value.
const Unit = "kgCO2"
