package footprint

// EnergyFootprint returns the yearly energy footprint for the given monthly
// electricity, natural gas and fuel bills. Inputs are assumed non-negative.
func EnergyFootprint(electricityBill, gasBill, fuelBill float64) float64 {
	return electricityBill*MonthsPerYear*ElectricityFactor +
		gasBill*MonthsPerYear*GasFactor +
		fuelBill*MonthsPerYear*FuelFactor
}

// WasteFootprint returns the yearly waste footprint. The result is negative
// when recyclingFraction exceeds WasteLandfillFactor; it is not clamped.
func WasteFootprint(totalWasteKgPerMonth, recyclingFraction float64) float64 {
	return totalWasteKgPerMonth * MonthsPerYear * (WasteLandfillFactor - recyclingFraction)
}

// TravelFootprint returns the yearly travel footprint. fuelEfficiency is in
// L/100km and must be > 0; callers enforce that via Inputs.Validate.
func TravelFootprint(kmTraveledPerYear, fuelEfficiency float64) float64 {
	return kmTraveledPerYear * (1 / fuelEfficiency) * TravelFuelFactor
}

// TotalFootprint is the plain sum of the three category footprints.
func TotalFootprint(energy, waste, travel float64) float64 {
	return energy + waste + travel
}

// Compute evaluates all three formulas for in and sums them. It does not
// validate in.
func Compute(in Inputs) Result {
	energy := EnergyFootprint(in.Energy.ElectricityBill, in.Energy.GasBill, in.Energy.FuelBill)
	waste := WasteFootprint(in.Waste.TotalKgPerMonth, in.Waste.RecyclingFraction)
	travel := TravelFootprint(in.Travel.KmPerYear, in.Travel.FuelEfficiency)

	return Result{
		Energy: energy,
		Waste:  waste,
		Travel: travel,
		Total:  TotalFootprint(energy, waste, travel),
	}
}
