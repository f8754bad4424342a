package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonlens/internal/config"
	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/ingest"
	"github.com/rshade/carbonlens/internal/logging"
	"github.com/rshade/carbonlens/internal/tui"
)

// percentScale converts --recycling-percent to a fraction.
const percentScale = 100.0

// inputFlags are the flags that describe footprint inputs directly. They
// cannot be combined with --input.
var inputFlags = []string{ //nolint:gochecknoglobals // read-only flag list
	"electricity-bill", "gas-bill", "fuel-bill", "waste-kg",
	"recycling-percent", "km-per-year", "fuel-efficiency",
}

// CalculateParams holds the parameters for the calculate command.
// Exported for testing.
type CalculateParams struct {
	ElectricityBill  float64
	GasBill          float64
	FuelBill         float64
	WasteKg          float64
	RecyclingPercent float64
	KmPerYear        float64
	FuelEfficiency   float64

	Input   string
	Output  string
	OutDir  string
	NoChart bool
	NoPDF   bool
}

// Inputs converts the flag values to footprint inputs.
func (p CalculateParams) Inputs() footprint.Inputs {
	return footprint.Inputs{
		Energy: footprint.EnergyInputs{
			ElectricityBill: p.ElectricityBill,
			GasBill:         p.GasBill,
			FuelBill:        p.FuelBill,
		},
		Waste: footprint.WasteInputs{
			TotalKgPerMonth:   p.WasteKg,
			RecyclingFraction: p.RecyclingPercent / percentScale,
		},
		Travel: footprint.TravelInputs{
			KmPerYear:      p.KmPerYear,
			FuelEfficiency: p.FuelEfficiency,
		},
	}
}

// NewCalculateCmd creates the "calculate" command.
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a carbon footprint and save the report and chart",
		Long: `Calculate the yearly carbon footprint for energy, waste and business travel,
print the report with reduction suggestions, and save carbon_footprint_report.pdf
and carbon_footprint_chart.png.

Inputs come from flags or from a single-profile YAML/JSON file (--input).`,
		Example: `  carbonlens calculate --electricity-bill 100 --gas-bill 50 --fuel-bill 20 \
    --waste-kg 200 --recycling-percent 30 --km-per-year 5000 --fuel-efficiency 8

  carbonlens calculate --input office.yaml --output json --no-chart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.ElectricityBill, "electricity-bill", 0, "Average monthly electricity bill")
	cmd.Flags().Float64Var(&params.GasBill, "gas-bill", 0, "Average monthly natural gas bill")
	cmd.Flags().Float64Var(&params.FuelBill, "fuel-bill", 0, "Average monthly fuel bill")
	cmd.Flags().Float64Var(&params.WasteKg, "waste-kg", 0, "Waste generated per month in kg")
	cmd.Flags().Float64Var(&params.RecyclingPercent, "recycling-percent", 0,
		"Share of waste recycled or composted (0-100)")
	cmd.Flags().Float64Var(&params.KmPerYear, "km-per-year", 0, "Kilometers traveled per year for business")
	cmd.Flags().Float64Var(&params.FuelEfficiency, "fuel-efficiency", tui.MinFuelEfficiency,
		"Vehicle fuel efficiency in liters per 100 km")

	cmd.Flags().StringVar(&params.Input, "input", "", "Profile file (YAML or JSON) with a single profile")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (text, json); defaults to config")
	cmd.Flags().StringVar(&params.OutDir, "out-dir", "", "Directory for the PDF and PNG (default: config or .)")
	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "Do not render the bar chart")
	cmd.Flags().BoolVar(&params.NoPDF, "no-pdf", false, "Do not render the PDF report")

	return cmd
}

// executeCalculate runs one assessment and writes its outputs.
func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format := resolveFormat(params.Output)
	if format != config.FormatText && format != config.FormatJSON && format != config.FormatNDJSON {
		return fmt.Errorf("unsupported output format %q (use text or json)", format)
	}

	req := &engine.Request{
		Inputs:    params.Inputs(),
		SkipChart: params.NoChart,
		SkipPDF:   params.NoPDF,
	}
	if params.Input != "" {
		for _, name := range inputFlags {
			if cmd.Flags().Changed(name) {
				return fmt.Errorf("--%s cannot be combined with --input", name)
			}
		}
		profile, err := loadSingleProfile(cmd, params.Input)
		if err != nil {
			return err
		}
		req.Name = profile.Name
		req.Inputs = profile.Inputs
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "calculate").
		Str("output", format).
		Msg("running assessment")

	a, err := newEngine().Assess(ctx, req)
	if err != nil {
		return err
	}

	if err = renderAssessment(cmd.OutOrStdout(), format, a); err != nil {
		return err
	}
	if params.NoChart && params.NoPDF {
		return nil
	}
	return writeArtifacts(cmd.ErrOrStderr(), a, resolveOutDir(params.OutDir))
}

func loadSingleProfile(cmd *cobra.Command, path string) (ingest.Profile, error) {
	profiles, err := ingest.LoadProfiles(cmd.Context(), path)
	if err != nil {
		return ingest.Profile{}, err
	}
	if len(profiles) != 1 {
		return ingest.Profile{}, fmt.Errorf(
			"%s contains %d profiles; use 'carbonlens batch' for more than one", path, len(profiles))
	}
	return profiles[0], nil
}
