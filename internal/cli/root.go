// Package cli implements the carbonlens command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonlens/internal/config"
	"github.com/rshade/carbonlens/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonlens CLI.
// It loads the optional --config overlay, wires up logging and tracing,
// and registers the calculate, form, batch, serve and version commands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "carbonlens",
		Short:         "Carbon footprint calculator",
		Long:          "carbonlens: Estimate a yearly carbon footprint from energy bills, waste and business travel",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfigOverlay(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections override the user config")
	cmd.AddCommand(
		NewCalculateCmd(), NewFormCmd(), NewBatchCmd(),
		NewServeCmd(), NewVersionCmd(ver),
	)

	return cmd
}

// applyConfigOverlay merges the --config file onto a copy of the global
// configuration and installs the result.
func applyConfigOverlay(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil
	}

	cfg := *config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(&cfg, path); err != nil {
		return fmt.Errorf("applying --config: %w", err)
	}
	config.SetGlobalConfig(&cfg)
	return nil
}

const rootCmdExample = `  # Calculate a footprint and save the PDF report and bar chart
  carbonlens calculate --electricity-bill 100 --gas-bill 50 --fuel-bill 20 \
    --waste-kg 200 --recycling-percent 30 --km-per-year 5000 --fuel-efficiency 8

  # Same inputs from a profile file, as JSON
  carbonlens calculate --input office.yaml --output json

  # Fill in the inputs interactively
  carbonlens form

  # Assess every profile in a file, largest total first
  carbonlens batch profiles.yaml --sort total:desc

  # Serve the HTTP API
  carbonlens serve --addr :8080`
