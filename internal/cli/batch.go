package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonlens/internal/cli/pagination"
	"github.com/rshade/carbonlens/internal/config"
	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/ingest"
	"github.com/rshade/carbonlens/internal/logging"
)

// outputTable is the batch name for the text format.
const outputTable = "table"

// BatchParams holds the parameters for the batch command.
type BatchParams struct {
	Output      string
	OutDir      string
	Concurrency int
	NoChart     bool
	NoPDF       bool
	Pagination  pagination.Params
}

// NewBatchCmd creates the "batch" command.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch <profiles.yaml>",
		Short: "Assess every profile in a file",
		Long: `Assess each named profile in a YAML or JSON file concurrently and print a
summary table, JSON or NDJSON. With --out-dir, each profile's PDF and chart are
saved under <out-dir>/<profile-name>/.`,
		Example: `  carbonlens batch profiles.yaml
  carbonlens batch profiles.yaml --sort total:desc --limit 10
  carbonlens batch profiles.yaml --output ndjson --out-dir reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeBatch(cmd, args[0], params)
		},
	}

	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson); defaults to config")
	cmd.Flags().StringVar(&params.OutDir, "out-dir", "", "Save per-profile PDF and PNG under this directory")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "Maximum concurrent assessments (default: config)")
	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "Do not render bar charts")
	cmd.Flags().BoolVar(&params.NoPDF, "no-pdf", false, "Do not render PDF reports")
	cmd.Flags().StringVar(&params.Pagination.Sort, "sort", "",
		"Sort by field[:asc|desc] (name, energy, waste, travel, total)")
	cmd.Flags().IntVar(&params.Pagination.Limit, "limit", pagination.DefaultLimit, "Show at most N profiles (0 = all)")

	return cmd
}

func executeBatch(cmd *cobra.Command, path string, params BatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format := resolveFormat(params.Output)
	if format == config.FormatText {
		format = outputTable
	}
	switch format {
	case outputTable, config.FormatJSON, config.FormatNDJSON:
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or ndjson)", format)
	}

	sorter := pagination.NewBatchSorter()
	if err := params.Pagination.Validate(sorter); err != nil {
		return err
	}

	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = config.GetGlobalConfig().Batch.Concurrency
	}

	profiles, err := ingest.LoadProfiles(ctx, path)
	if err != nil {
		return err
	}

	writeFiles := params.OutDir != ""
	reqs := make([]*engine.Request, 0, len(profiles))
	for _, p := range profiles {
		reqs = append(reqs, &engine.Request{
			Name:      p.Name,
			Inputs:    p.Inputs,
			SkipChart: !writeFiles || params.NoChart,
			SkipPDF:   !writeFiles || params.NoPDF,
		})
	}

	var progress engine.ProgressFunc
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && isTerminal(f) {
		progress = func(done, total int) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\rAssessed %d/%d profiles", done, total)
			if done == total {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			}
		}
	}

	results := newEngine().AssessBatch(ctx, reqs, concurrency, progress)

	log.Info().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "batch").
		Int("profiles", len(results)).
		Int("failures", engine.BatchFailures(results)).
		Msg("batch assessed")

	if writeFiles {
		for _, r := range results {
			if r.Assessment == nil {
				continue
			}
			if err = writeArtifacts(cmd.ErrOrStderr(), r.Assessment, filepath.Join(params.OutDir, r.Name)); err != nil {
				return err
			}
		}
	}

	if params.Pagination.Sort != "" {
		field, order, _ := pagination.ParseSort(params.Pagination.Sort)
		results = sorter.Sort(results, field, order)
	}
	shown := pagination.Apply(results, params.Pagination.Limit)

	if err = renderBatch(cmd.OutOrStdout(), format, shown); err != nil {
		return err
	}

	if failed := engine.BatchFailures(results); failed > 0 {
		return fmt.Errorf("%d of %d profiles failed", failed, len(results))
	}
	return nil
}

func renderBatch(w io.Writer, format string, results []engine.BatchResult) error {
	switch format {
	case config.FormatJSON:
		return engine.RenderBatchAsJSON(w, results)
	case config.FormatNDJSON:
		return engine.RenderBatchAsNDJSON(w, results)
	default:
		return engine.RenderBatchAsTable(w, results)
	}
}
