package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rshade/carbonlens/internal/greenops"
)

// tabwriterPadding is the minimum padding between columns in the batch table.
const tabwriterPadding = 2

// colWidthName bounds the profile name column.
const colWidthName = 24

// truncateMinLen is the minimum truncation length below which no ellipsis is added.
const truncateMinLen = 3

// truncateName shortens a profile name to fit its column. Lengths count
// runes so multi-byte names are never cut mid-character.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	if maxLen <= truncateMinLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// RenderBatchAsTable writes one row per batch result followed by a summary
// line with the combined total of successful assessments.
func RenderBatchAsTable(w io.Writer, results []BatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "PROFILE\tENERGY\tWASTE\tTRAVEL\tTOTAL (kgCO2)\tSUGGESTIONS\t\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t------\t-----\t------\t-------------\t-----------\t\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	var combined float64
	ok := 0
	for _, r := range results {
		name := truncateName(r.Name, colWidthName)
		if r.Err != nil || r.Assessment == nil {
			if _, err := fmt.Fprintf(tw, "%s\tERR\tERR\tERR\tERR\t-\t\n", name); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
			continue
		}

		res := r.Assessment.Result
		combined += res.Total
		ok++
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			name,
			greenops.FormatFloat(res.Energy, 2),
			greenops.FormatFloat(res.Waste, 2),
			greenops.FormatFloat(res.Travel, 2),
			greenops.FormatFloat(res.Total, 2),
			strconv.Itoa(len(r.Assessment.Suggestions)),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\t\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "SUMMARY\t%d ok\t%d failed\t\t%s\t\t\n",
		ok, len(results)-ok, greenops.FormatKg(combined)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return tw.Flush()
}

// RenderAssessmentAsJSON writes a single assessment as indented JSON.
func RenderAssessmentAsJSON(w io.Writer, a *Assessment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(a); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderBatchAsJSON writes all batch results as one indented JSON array.
func RenderBatchAsJSON(w io.Writer, results []BatchResult) error {
	// Empty slice so JSON produces [] instead of null.
	if results == nil {
		results = []BatchResult{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderBatchAsNDJSON writes each batch result as a separate JSON line.
func RenderBatchAsNDJSON(w io.Writer, results []BatchResult) error {
	for _, r := range results {
		data, marshalErr := json.Marshal(r)
		if marshalErr != nil {
			return fmt.Errorf("marshaling result: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}
