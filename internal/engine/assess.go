package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonlens/internal/chart"
	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/greenops"
	"github.com/rshade/carbonlens/internal/logging"
	"github.com/rshade/carbonlens/internal/report"
)

// ChartRenderer renders a footprint as image bytes.
type ChartRenderer interface {
	Render(res footprint.Result) ([]byte, error)
}

// DocumentRenderer renders a footprint and its suggestions as document bytes.
type DocumentRenderer func(res footprint.Result, suggestions []string) ([]byte, error)

// Engine runs assessments. It holds no per-assessment state and is safe for
// concurrent use.
type Engine struct {
	chart ChartRenderer
	pdf   DocumentRenderer
	now   func() time.Time
}

// New returns an Engine using the default chart size and the PDF exporter.
func New() *Engine {
	return &Engine{
		chart: chart.NewRenderer(chart.DefaultWidthInches, chart.DefaultHeightInches),
		pdf:   report.RenderPDF,
		now:   time.Now,
	}
}

// WithChartRenderer replaces the chart renderer.
func (e *Engine) WithChartRenderer(r ChartRenderer) *Engine {
	e.chart = r
	return e
}

// WithDocumentRenderer replaces the PDF renderer.
func (e *Engine) WithDocumentRenderer(r DocumentRenderer) *Engine {
	e.pdf = r
	return e
}

// WithClock replaces the time source used for GeneratedAt.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Assess validates req.Inputs, computes the footprint, suggestions and
// equivalencies, and renders the chart and PDF. Either every requested
// output is produced or an error is returned; there are no partial results.
//
// Validation failures wrap ErrInvalidInput; rendering failures wrap
// ErrRenderFailed.
func (e *Engine) Assess(ctx context.Context, req *Request) (*Assessment, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidInput)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "assess").
		Str("name", req.Name).
		Msg("starting assessment")

	if err := req.Inputs.Validate(); err != nil {
		log.Debug().Ctx(ctx).Err(err).Str("component", "engine").Msg("inputs rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result := footprint.Compute(req.Inputs)
	if err := result.Check(); err != nil {
		log.Debug().Ctx(ctx).Err(err).Str("component", "engine").Msg("footprint overflowed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a := &Assessment{
		ID:            ulid.Make().String(),
		Name:          req.Name,
		GeneratedAt:   e.now().UTC(),
		Inputs:        req.Inputs,
		Result:        result,
		Suggestions:   result.Suggestions(),
		Equivalencies: greenops.ForTotal(result.Total),
	}

	if !req.SkipChart {
		img, err := e.chart.Render(result)
		if err != nil {
			log.Error().Ctx(ctx).Err(err).Str("component", "engine").Msg("chart rendering failed")
			return nil, fmt.Errorf("%w: rendering chart: %w", ErrRenderFailed, err)
		}
		a.Chart = img
	}

	if !req.SkipPDF {
		doc, err := e.pdf(result, a.Suggestions)
		if err != nil {
			log.Error().Ctx(ctx).Err(err).Str("component", "engine").Msg("pdf rendering failed")
			return nil, fmt.Errorf("%w: rendering pdf: %w", ErrRenderFailed, err)
		}
		a.PDF = doc
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "assess").
		Str("assessment_id", a.ID).
		Float64("total_kg_co2", result.Total).
		Int("suggestions", len(a.Suggestions)).
		Dur("duration_ms", time.Since(start)).
		Msg("assessment complete")

	return a, nil
}
