// Package ingest reads footprint input profiles from YAML or JSON files.
//
// A file holds either a single profile at the top level or a list under
// "profiles":
//
//	profiles:
//	  - name: office
//	    energy: {electricity_bill: 100, gas_bill: 50, fuel_bill: 20}
//	    waste: {total_kg_per_month: 200, recycling_percent: 30}
//	    travel: {km_per_year: 5000, fuel_efficiency_l_per_100km: 8}
//
// Recycling may be given as recycling_fraction (0-1) or recycling_percent
// (0-100), not both.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/logging"
)

// percentScale converts recycling_percent to a fraction.
const percentScale = 100.0

// maxProfiles bounds how many profiles one file may declare.
const maxProfiles = 1000

// Sentinel errors for profile parsing.
var (
	ErrNoProfiles         = errors.New("no profiles found")
	ErrTooManyProfiles    = fmt.Errorf("too many profiles (max %d)", maxProfiles)
	ErrDuplicateName      = errors.New("duplicate profile name")
	ErrInvalidName        = errors.New("profile name must not contain path separators or '..'")
	ErrAmbiguousRecycling = errors.New("set recycling_fraction or recycling_percent, not both")
)

// Profile is a named set of footprint inputs.
type Profile struct {
	Name   string
	Inputs footprint.Inputs
}

type profileFile struct {
	Profiles   []rawProfile `yaml:"profiles"`
	rawProfile `yaml:",inline"`
}

type rawProfile struct {
	Name   string                 `yaml:"name"`
	Energy footprint.EnergyInputs `yaml:"energy"`
	Waste  rawWaste               `yaml:"waste"`
	Travel footprint.TravelInputs `yaml:"travel"`
}

type rawWaste struct {
	TotalKgPerMonth   float64  `yaml:"total_kg_per_month"`
	RecyclingFraction *float64 `yaml:"recycling_fraction"`
	RecyclingPercent  *float64 `yaml:"recycling_percent"`
}

// LoadProfiles reads and parses the profile file at path.
func LoadProfiles(ctx context.Context, path string) ([]Profile, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_profiles").
		Str("path", path).
		Msg("loading profiles")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	profiles, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("profile_count", len(profiles)).
		Msg("profiles loaded")
	return profiles, nil
}

// ParseProfiles decodes YAML or JSON profile data. Unknown keys are
// rejected. Unnamed profiles are named "profile-N" by position. Input ranges are not checked here; the
// engine validates each profile when it is assessed.
func ParseProfiles(data []byte) ([]Profile, error) {
	var file profileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	raws := file.Profiles
	if len(raws) == 0 {
		if file.rawProfile == (rawProfile{}) {
			return nil, ErrNoProfiles
		}
		raws = []rawProfile{file.rawProfile}
	}
	if len(raws) > maxProfiles {
		return nil, ErrTooManyProfiles
	}

	seen := make(map[string]bool, len(raws))
	profiles := make([]Profile, 0, len(raws))
	for i, raw := range raws {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			name = fmt.Sprintf("profile-%d", i+1)
		}
		if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("%q: %w", name, ErrInvalidName)
		}
		if seen[name] {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = true

		fraction, err := raw.Waste.fraction()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}

		profiles = append(profiles, Profile{
			Name: name,
			Inputs: footprint.Inputs{
				Energy: raw.Energy,
				Waste: footprint.WasteInputs{
					TotalKgPerMonth:   raw.Waste.TotalKgPerMonth,
					RecyclingFraction: fraction,
				},
				Travel: raw.Travel,
			},
		})
	}
	return profiles, nil
}

func (w rawWaste) fraction() (float64, error) {
	switch {
	case w.RecyclingFraction != nil && w.RecyclingPercent != nil:
		return 0, ErrAmbiguousRecycling
	case w.RecyclingPercent != nil:
		return *w.RecyclingPercent / percentScale, nil
	case w.RecyclingFraction != nil:
		return *w.RecyclingFraction, nil
	default:
		return 0, nil
	}
}
