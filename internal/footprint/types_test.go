package footprint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() Inputs {
	return Inputs{
		Energy: EnergyInputs{ElectricityBill: 100, GasBill: 50, FuelBill: 20},
		Waste:  WasteInputs{TotalKgPerMonth: 200, RecyclingFraction: 0.3},
		Travel: TravelInputs{KmPerYear: 5000, FuelEfficiency: 8},
	}
}

func TestInputs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *Inputs)
		wantErr error
		field   string
	}{
		{name: "valid", mutate: func(*Inputs) {}},
		{
			name:    "negative electricity",
			mutate:  func(in *Inputs) { in.Energy.ElectricityBill = -1 },
			wantErr: ErrNegativeInput,
			field:   "electricity_bill",
		},
		{
			name:    "negative km",
			mutate:  func(in *Inputs) { in.Travel.KmPerYear = -10 },
			wantErr: ErrNegativeInput,
			field:   "km_per_year",
		},
		{
			name:    "zero efficiency",
			mutate:  func(in *Inputs) { in.Travel.FuelEfficiency = 0 },
			wantErr: ErrNonPositiveEfficiency,
			field:   "fuel_efficiency_l_per_100km",
		},
		{
			name:    "recycling above one",
			mutate:  func(in *Inputs) { in.Waste.RecyclingFraction = 1.5 },
			wantErr: ErrFractionOutOfRange,
			field:   "recycling_fraction",
		},
		{
			name:    "NaN gas bill",
			mutate:  func(in *Inputs) { in.Energy.GasBill = math.NaN() },
			wantErr: ErrNonFinite,
			field:   "gas_bill",
		},
		{
			name:    "infinite efficiency",
			mutate:  func(in *Inputs) { in.Travel.FuelEfficiency = math.Inf(1) },
			wantErr: ErrNonFinite,
			field:   "fuel_efficiency_l_per_100km",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestInputs_Validate_ReportsAllViolations(t *testing.T) {
	in := validInputs()
	in.Energy.FuelBill = -3
	in.Waste.RecyclingFraction = -0.2
	in.Travel.FuelEfficiency = -1

	err := in.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeInput))
	assert.True(t, errors.Is(err, ErrFractionOutOfRange))
	assert.True(t, errors.Is(err, ErrNonPositiveEfficiency))
}

func TestInputs_Validate_RecyclingAboveBreakEvenIsAllowed(t *testing.T) {
	in := validInputs()
	in.Waste.RecyclingFraction = 0.9

	require.NoError(t, in.Validate())
	assert.Less(t, Compute(in).Waste, 0.0)
}

func TestResult_Check(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *Inputs)
		wantErr bool
	}{
		{name: "reference inputs", mutate: func(*Inputs) {}},
		{
			name:    "huge fuel bill",
			mutate:  func(in *Inputs) { in.Energy.FuelBill = 1e307 },
			wantErr: true,
		},
		{
			name:    "subnormal efficiency",
			mutate:  func(in *Inputs) { in.Travel.FuelEfficiency = 1e-310 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)
			require.NoError(t, in.Validate())

			err := Compute(in).Check()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOverflow)
			assert.Contains(t, err.Error(), "total_kg_co2")
		})
	}
}
