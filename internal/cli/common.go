package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rshade/carbonlens/internal/chart"
	"github.com/rshade/carbonlens/internal/config"
	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/report"
	"github.com/rshade/carbonlens/internal/tui"
)

// defaultOutDir receives artifacts when neither --out-dir nor
// output.directory is set.
const defaultOutDir = "."

var errTTYRequired = errors.New("an interactive terminal is required")

// newEngine builds an engine using the configured chart size.
func newEngine() *engine.Engine {
	cfg := config.GetGlobalConfig()
	return engine.New().WithChartRenderer(
		chart.NewRenderer(cfg.Chart.WidthInches, cfg.Chart.HeightInches))
}

// resolveOutDir picks the artifact directory: the flag, then config, then
// the working directory.
func resolveOutDir(flag string) string {
	if flag != "" {
		return flag
	}
	if dir := config.GetOutputDir(); dir != "" {
		return dir
	}
	return defaultOutDir
}

// resolveFormat returns the flag value or the configured default.
func resolveFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return config.GetDefaultOutputFormat()
}

// renderAssessment writes a single assessment in the requested format.
// Text output is styled when stdout is a terminal.
func renderAssessment(w io.Writer, format string, a *engine.Assessment) error {
	switch format {
	case config.FormatJSON, config.FormatNDJSON:
		return engine.RenderAssessmentAsJSON(w, a)
	case config.FormatText:
		if tui.DetectOutputMode(false, false, true) == tui.OutputModeStyled {
			_, err := fmt.Fprintln(w, tui.RenderReport(a.Document()))
			return err
		}
		return report.RenderText(w, a.Document())
	default:
		return fmt.Errorf("unsupported output format %q (use text or json)", format)
	}
}

// writeArtifacts saves the assessment's PDF and chart and reports each
// path on errOut.
func writeArtifacts(errOut io.Writer, a *engine.Assessment, dir string) error {
	paths, err := a.WriteArtifacts(dir)
	for _, p := range paths {
		_, _ = fmt.Fprintf(errOut, "Saved %s\n", p)
	}
	return err
}
