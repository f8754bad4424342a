package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfiles(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantNames []string
		wantErr   error
	}{
		{
			name: "list of profiles",
			data: `
profiles:
  - name: office
    energy: {electricity_bill: 100, gas_bill: 50, fuel_bill: 20}
    waste: {total_kg_per_month: 200, recycling_percent: 30}
    travel: {km_per_year: 5000, fuel_efficiency_l_per_100km: 8}
  - energy: {electricity_bill: 10}
    travel: {fuel_efficiency_l_per_100km: 6}
`,
			wantNames: []string{"office", "profile-2"},
		},
		{
			name: "single top-level profile",
			data: `
name: home
waste: {total_kg_per_month: 40, recycling_fraction: 0.5}
travel: {km_per_year: 100, fuel_efficiency_l_per_100km: 5}
`,
			wantNames: []string{"home"},
		},
		{
			name:      "json document",
			data:      `{"profiles": [{"name": "shop", "travel": {"km_per_year": 10, "fuel_efficiency_l_per_100km": 7}}]}`,
			wantNames: []string{"shop"},
		},
		{name: "empty document", data: "# nothing here\n", wantErr: ErrNoProfiles},
		{
			name:    "duplicate names",
			data:    "profiles:\n  - name: a\n  - name: a\n",
			wantErr: ErrDuplicateName,
		},
		{
			name:    "path traversal name",
			data:    "profiles:\n  - name: ../etc\n",
			wantErr: ErrInvalidName,
		},
		{
			name:    "both recycling forms",
			data:    "name: x\nwaste: {recycling_fraction: 0.2, recycling_percent: 20}\n",
			wantErr: ErrAmbiguousRecycling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfiles([]byte(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestParseProfiles_RecyclingConversion(t *testing.T) {
	got, err := ParseProfiles([]byte(`
profiles:
  - name: percent
    waste: {total_kg_per_month: 200, recycling_percent: 30}
  - name: fraction
    waste: {total_kg_per_month: 200, recycling_fraction: 0.3}
`))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.InDelta(t, 0.3, got[0].Inputs.Waste.RecyclingFraction, 1e-12)
	assert.InDelta(t, 0.3, got[1].Inputs.Waste.RecyclingFraction, 1e-12)
	assert.Equal(t, 200.0, got[0].Inputs.Waste.TotalKgPerMonth)
}

func TestParseProfiles_FieldMapping(t *testing.T) {
	got, err := ParseProfiles([]byte(`
name: office
energy: {electricity_bill: 100, gas_bill: 50, fuel_bill: 20}
travel: {km_per_year: 5000, fuel_efficiency_l_per_100km: 8}
`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	in := got[0].Inputs
	assert.Equal(t, 100.0, in.Energy.ElectricityBill)
	assert.Equal(t, 50.0, in.Energy.GasBill)
	assert.Equal(t, 20.0, in.Energy.FuelBill)
	assert.Equal(t, 5000.0, in.Travel.KmPerYear)
	assert.Equal(t, 8.0, in.Travel.FuelEfficiency)
}

func TestParseProfiles_Malformed(t *testing.T) {
	_, err := ParseProfiles([]byte("profiles: [unterminated"))
	assert.Error(t, err)
}

func TestParseProfiles_UnknownKeyRejected(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
	}{
		{
			name: "misspelled recycling key",
			data: "waste: {total_kg_per_month: 200, recycling_percentage: 30}\ntravel: {fuel_efficiency_l_per_100km: 8}\n",
			key:  "recycling_percentage",
		},
		{
			name: "misspelled efficiency in list",
			data: "profiles:\n  - name: van\n    travel: {km_per_year: 100, fuel_effciency: 8}\n",
			key:  "fuel_effciency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfiles([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: home\ntravel: {fuel_efficiency_l_per_100km: 5}\n"), 0o600))

	got, err := LoadProfiles(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "home", got[0].Name)

	_, err = LoadProfiles(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading profile file")
}
