package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// DetectOutputMode picks the output mode for stdout. forcePlain and the
// NO_COLOR convention win; a non-terminal stdout is always plain; CI
// terminals get styled output without interaction.
func DetectOutputMode(forcePlain, noColor, noInteractive bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if _, set := os.LookupEnv("NO_COLOR"); set || noColor {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModePlain
	}
	if _, ci := os.LookupEnv("CI"); ci || noInteractive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
