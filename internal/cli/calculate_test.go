package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonlens/internal/cli"
	"github.com/rshade/carbonlens/internal/engine"
)

var referenceFlags = []string{
	"--electricity-bill", "100", "--gas-bill", "50", "--fuel-bill", "20",
	"--waste-kg", "200", "--recycling-percent", "30",
	"--km-per-year", "5000", "--fuel-efficiency", "8",
}

type calculateJSON struct {
	Name      string `json:"name"`
	Footprint struct {
		Energy float64 `json:"energy_kg_co2"`
		Waste  float64 `json:"waste_kg_co2"`
		Travel float64 `json:"travel_kg_co2"`
		Total  float64 `json:"total_kg_co2"`
	} `json:"footprint"`
	Suggestions []string `json:"suggestions"`
}

func TestNewCalculateCmd_Flags(t *testing.T) {
	cmd := cli.NewCalculateCmd()

	tests := []struct {
		flag   string
		defVal string
	}{
		{"electricity-bill", "0"},
		{"gas-bill", "0"},
		{"fuel-bill", "0"},
		{"waste-kg", "0"},
		{"recycling-percent", "0"},
		{"km-per-year", "0"},
		{"fuel-efficiency", "0.1"},
		{"input", ""},
		{"output", ""},
		{"out-dir", ""},
		{"no-chart", "false"},
		{"no-pdf", "false"},
	}
	for _, tt := range tests {
		t.Run("has "+tt.flag+" flag", func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.defVal, f.DefValue)
		})
	}
}

func TestCalculateParams_Inputs(t *testing.T) {
	in := cli.CalculateParams{WasteKg: 200, RecyclingPercent: 30, FuelEfficiency: 8}.Inputs()

	assert.Equal(t, 200.0, in.Waste.TotalKgPerMonth)
	assert.InDelta(t, 0.3, in.Waste.RecyclingFraction, 1e-12)
	assert.Equal(t, 8.0, in.Travel.FuelEfficiency)
}

func TestCalculate_TextReportAndArtifacts(t *testing.T) {
	outDir := t.TempDir()
	args := append([]string{"calculate", "--out-dir", outDir}, referenceFlags...)

	stdout, stderr, err := runCLI(t, args...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Carbon Footprint Report")
	assert.Contains(t, stdout, "Energy Footprint: 560.58 kgCO2")
	assert.Contains(t, stdout, "Waste Footprint: 648.00 kgCO2")
	assert.Contains(t, stdout, "Business Travel Footprint: 1443.75 kgCO2")
	assert.Contains(t, stdout, "Total Carbon Footprint: 2652.33 kgCO2")
	assert.Contains(t, stdout, "Suggestions for Reducing Your Carbon Footprint")

	for _, name := range []string{"carbon_footprint_report.pdf", "carbon_footprint_chart.png"} {
		path := filepath.Join(outDir, name)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
		assert.Contains(t, stderr, "Saved "+path)
	}
}

func TestCalculate_JSON(t *testing.T) {
	args := append([]string{"calculate", "--output", "json", "--no-chart", "--no-pdf"}, referenceFlags...)

	stdout, _, err := runCLI(t, args...)
	require.NoError(t, err)

	var got calculateJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.InDelta(t, 2652.33, got.Footprint.Total, 1e-9)
	assert.Len(t, got.Suggestions, 2)
}

func TestCalculate_InputFile(t *testing.T) {
	profile := writeFile(t, "office.yaml", `
name: office
energy: {electricity_bill: 100, gas_bill: 50, fuel_bill: 20}
waste: {total_kg_per_month: 200, recycling_percent: 30}
travel: {km_per_year: 5000, fuel_efficiency_l_per_100km: 8}
`)

	stdout, _, err := runCLI(t, "calculate", "--input", profile, "--output", "json", "--no-chart", "--no-pdf")
	require.NoError(t, err)

	var got calculateJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "office", got.Name)
	assert.InDelta(t, 2652.33, got.Footprint.Total, 1e-9)
}

func TestCalculate_Errors(t *testing.T) {
	multi := writeFile(t, "multi.yaml", "profiles:\n  - name: a\n  - name: b\n")
	single := writeFile(t, "one.yaml", "name: a\n")

	tests := []struct {
		name        string
		args        []string
		errContains string
		errIs       error
	}{
		{
			name:  "zero fuel efficiency",
			args:  []string{"calculate", "--fuel-efficiency", "0", "--no-chart", "--no-pdf"},
			errIs: engine.ErrInvalidInput,
		},
		{
			name:  "recycling above 100 percent",
			args:  []string{"calculate", "--recycling-percent", "150", "--no-chart", "--no-pdf"},
			errIs: engine.ErrInvalidInput,
		},
		{
			name:        "unknown output format",
			args:        []string{"calculate", "--output", "xml"},
			errContains: "unsupported output format",
		},
		{
			name:        "input mixed with flags",
			args:        []string{"calculate", "--input", single, "--gas-bill", "5"},
			errContains: "cannot be combined with --input",
		},
		{
			name:        "input with several profiles",
			args:        []string{"calculate", "--input", multi},
			errContains: "contains 2 profiles",
		},
		{
			name:        "missing input file",
			args:        []string{"calculate", "--input", filepath.Join(t.TempDir(), "missing.yaml")},
			errContains: "reading profile file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
