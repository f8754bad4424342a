package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/tui"
)

// FormParams holds the parameters for the form command.
type FormParams struct {
	OutDir  string
	NoChart bool
	NoPDF   bool
}

// NewFormCmd creates the "form" command, an interactive input form.
func NewFormCmd() *cobra.Command {
	var params FormParams

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Enter footprint inputs in an interactive form",
		Long: `Open a terminal form for the seven footprint inputs. Submitting the form
shows the report and saves the PDF and bar chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeForm(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.OutDir, "out-dir", "", "Directory for the PDF and PNG (default: config or .)")
	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "Do not render the bar chart")
	cmd.Flags().BoolVar(&params.NoPDF, "no-pdf", false, "Do not render the PDF report")

	return cmd
}

func executeForm(cmd *cobra.Command, params FormParams) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("form: %w; use 'carbonlens calculate' instead", errTTYRequired)
	}

	ctx := cmd.Context()
	eng := newEngine()
	assessFn := func(ctx context.Context, in footprint.Inputs) (*engine.Assessment, error) {
		return eng.Assess(ctx, &engine.Request{
			Inputs:    in,
			SkipChart: params.NoChart,
			SkipPDF:   params.NoPDF,
		})
	}

	program := tea.NewProgram(tui.NewFormModel(ctx, assessFn), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive form: %w", err)
	}

	formModel, ok := finalModel.(*tui.FormModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.FormModel", finalModel)
	}
	if formModel.Err() != nil {
		return formModel.Err()
	}

	a := formModel.Assessment()
	if a == nil || (params.NoChart && params.NoPDF) {
		return nil
	}
	return writeArtifacts(cmd.ErrOrStderr(), a, resolveOutDir(params.OutDir))
}
