package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const floatTolerance = 1e-9

func TestEnergyFootprint(t *testing.T) {
	tests := []struct {
		name        string
		electricity float64
		gas         float64
		fuel        float64
		want        float64
	}{
		{name: "all zero", want: 0},
		{name: "electricity only", electricity: 100, want: 0.6},
		{name: "gas only", gas: 50, want: 3.18},
		{name: "fuel only", fuel: 20, want: 556.8},
		{name: "combined bills", electricity: 100, gas: 50, fuel: 20, want: 560.58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnergyFootprint(tt.electricity, tt.gas, tt.fuel)
			assert.InDelta(t, tt.want, got, floatTolerance)
		})
	}
}

func TestEnergyFootprint_ZeroIsExact(t *testing.T) {
	assert.Equal(t, 0.0, EnergyFootprint(0, 0, 0))
}

func TestEnergyFootprint_LinearInEachArgument(t *testing.T) {
	pairs := [][2]float64{{10, 15}, {0, 250}, {1234.5, 0.5}}

	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.InDelta(t, EnergyFootprint(a, 0, 0)+EnergyFootprint(b, 0, 0), EnergyFootprint(a+b, 0, 0), floatTolerance)
		assert.InDelta(t, EnergyFootprint(0, a, 0)+EnergyFootprint(0, b, 0), EnergyFootprint(0, a+b, 0), floatTolerance)
		assert.InDelta(t, EnergyFootprint(0, 0, a)+EnergyFootprint(0, 0, b), EnergyFootprint(0, 0, a+b), floatTolerance)
		assert.InDelta(t,
			EnergyFootprint(a, 0, 0)+EnergyFootprint(0, b, 0)+EnergyFootprint(0, 0, a),
			EnergyFootprint(a, b, a), floatTolerance)
	}
}

func TestWasteFootprint(t *testing.T) {
	tests := []struct {
		name      string
		waste     float64
		recycling float64
		want      float64
	}{
		{name: "break-even recycling", waste: 100, recycling: 0.57, want: 0},
		{name: "no recycling", waste: 100, recycling: 0, want: 684.0},
		{name: "thirty percent recycling", waste: 200, recycling: 0.3, want: 648.0},
		{name: "no waste", waste: 0, recycling: 0.5, want: 0},
		{name: "full recycling goes negative", waste: 100, recycling: 1, want: -516.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WasteFootprint(tt.waste, tt.recycling)
			assert.InDelta(t, tt.want, got, floatTolerance)
		})
	}
}

func TestWasteFootprint_NotClamped(t *testing.T) {
	got := WasteFootprint(50, 0.9)
	assert.Less(t, got, 0.0)
}

func TestTravelFootprint(t *testing.T) {
	tests := []struct {
		name       string
		km         float64
		efficiency float64
		want       float64
	}{
		{name: "reference case", km: 1000, efficiency: 10, want: 231.0},
		{name: "eight liters", km: 5000, efficiency: 8, want: 1443.75},
		{name: "no travel", km: 0, efficiency: 6.5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TravelFootprint(tt.km, tt.efficiency)
			assert.InDelta(t, tt.want, got, floatTolerance)
		})
	}
}

func TestTravelFootprint_ZeroEfficiencyIsUnguarded(t *testing.T) {
	got := TravelFootprint(1000, 0)
	assert.True(t, math.IsInf(got, 1))
}

func TestTotalFootprint(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{name: "positive values", a: 560.58, b: 648, c: 1443.75},
		{name: "negative waste is kept", a: 10, b: -516, c: 20},
		{name: "all negative", a: -1, b: -2, c: -3},
		{name: "zeros", a: 0, b: 0, c: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.a+tt.b+tt.c, TotalFootprint(tt.a, tt.b, tt.c))
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := Inputs{
		Energy: EnergyInputs{ElectricityBill: 87.3, GasBill: 41.1, FuelBill: 12.9},
		Waste:  WasteInputs{TotalKgPerMonth: 73, RecyclingFraction: 0.41},
		Travel: TravelInputs{KmPerYear: 12345, FuelEfficiency: 6.7},
	}

	first := Compute(in)
	second := Compute(in)

	assert.Equal(t, math.Float64bits(first.Energy), math.Float64bits(second.Energy))
	assert.Equal(t, math.Float64bits(first.Waste), math.Float64bits(second.Waste))
	assert.Equal(t, math.Float64bits(first.Travel), math.Float64bits(second.Travel))
	assert.Equal(t, math.Float64bits(first.Total), math.Float64bits(second.Total))
}

func TestCompute_EndToEnd(t *testing.T) {
	in := Inputs{
		Energy: EnergyInputs{ElectricityBill: 100, GasBill: 50, FuelBill: 20},
		Waste:  WasteInputs{TotalKgPerMonth: 200, RecyclingFraction: 0.3},
		Travel: TravelInputs{KmPerYear: 5000, FuelEfficiency: 8},
	}

	got := Compute(in)

	assert.InDelta(t, 560.58, got.Energy, floatTolerance)
	assert.InDelta(t, 648.0, got.Waste, floatTolerance)
	assert.InDelta(t, 1443.75, got.Travel, floatTolerance)
	assert.InDelta(t, 2652.33, got.Total, floatTolerance)
	assert.Equal(t, got.Energy+got.Waste+got.Travel, got.Total)
	assert.Equal(t, []string{WasteSuggestion, TravelSuggestion}, got.Suggestions())
}

func TestResult_Values(t *testing.T) {
	r := Result{Energy: 1, Waste: 2, Travel: 3, Total: 6}
	assert.Equal(t, [4]float64{1, 2, 3, 6}, r.Values())
}
