// Package engine runs a footprint assessment end to end: validate inputs,
// compute the footprint and suggestions, then render the chart and PDF.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rshade/carbonlens/internal/chart"
	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/greenops"
	"github.com/rshade/carbonlens/internal/report"
)

// ErrInvalidInput wraps every input validation failure returned by Assess.
var ErrInvalidInput = errors.New("invalid footprint input")

// ErrRenderFailed wraps chart and document rendering failures.
var ErrRenderFailed = errors.New("rendering failed")

// Request is one assessment to run.
type Request struct {
	// Name labels the assessment in batch output and artifact paths.
	Name string

	Inputs footprint.Inputs

	// SkipChart and SkipPDF omit the corresponding artifact.
	SkipChart bool
	SkipPDF   bool
}

// Assessment is the complete, consistent output of one request. Chart and
// PDF are derived from the same Result as the text report.
type Assessment struct {
	ID            string           `json:"id"`
	Name          string           `json:"name,omitempty"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Inputs        footprint.Inputs `json:"inputs"`
	Result        footprint.Result `json:"footprint"`
	Suggestions   []string         `json:"suggestions"`
	Equivalencies greenops.Summary `json:"equivalencies"`

	Chart []byte `json:"-"`
	PDF   []byte `json:"-"`
}

// Document returns the report view of the assessment.
func (a *Assessment) Document() report.Document {
	return report.Document{
		Result:        a.Result,
		Suggestions:   a.Suggestions,
		Equivalencies: a.Equivalencies,
	}
}

// WriteArtifacts writes the PDF and PNG (whichever were rendered) into dir,
// creating it if needed, and returns the written paths.
func (a *Assessment) WriteArtifacts(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	var written []string
	for _, artifact := range []struct {
		name string
		data []byte
	}{
		{report.PDFFileName, a.PDF},
		{chart.FileName, a.Chart},
	} {
		if len(artifact.data) == 0 {
			continue
		}
		path := filepath.Join(dir, artifact.name)
		if err := os.WriteFile(path, artifact.data, 0o600); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// BatchResult pairs a request name with its assessment or error.
type BatchResult struct {
	Name       string      `json:"name"`
	Assessment *Assessment `json:"assessment,omitempty"`
	Err        error       `json:"-"`
	Error      string      `json:"error,omitempty"`
}
