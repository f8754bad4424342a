// Package report renders a footprint and its suggestions as plain text and
// as a PDF document.
package report

import (
	"fmt"
	"io"

	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/greenops"
)

// Fixed report text.
const (
	Title             = "Carbon Footprint Report"
	SuggestionsHeader = "Suggestions for Reducing Your Carbon Footprint"
	suggestionPrefix  = "- "
)

// Document is everything a report shows.
type Document struct {
	Result        footprint.Result
	Suggestions   []string
	Equivalencies greenops.Summary
}

// FootprintLines returns the four labeled footprint lines, formatted to two
// decimals with the kgCO2 unit.
func FootprintLines(r footprint.Result) []string {
	return []string{
		fmt.Sprintf("Energy Footprint: %.2f %s", r.Energy, footprint.Unit),
		fmt.Sprintf("Waste Footprint: %.2f %s", r.Waste, footprint.Unit),
		fmt.Sprintf("Business Travel Footprint: %.2f %s", r.Travel, footprint.Unit),
		fmt.Sprintf("Total Carbon Footprint: %.2f %s", r.Total, footprint.Unit),
	}
}

// SuggestionLines prefixes each suggestion with "- ". With no suggestions
// it returns the single fallback message.
func SuggestionLines(suggestions []string) []string {
	if len(suggestions) == 0 {
		return []string{footprint.NoSuggestionsMessage}
	}
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, suggestionPrefix+s)
	}
	return lines
}

// RenderText writes the on-screen report to w.
func RenderText(w io.Writer, doc Document) error {
	lines := []string{Title}
	lines = append(lines, FootprintLines(doc.Result)...)
	if !doc.Equivalencies.IsEmpty && doc.Equivalencies.DisplayText != "" {
		lines = append(lines, doc.Equivalencies.DisplayText)
	}
	lines = append(lines, "", SuggestionsHeader)
	lines = append(lines, SuggestionLines(doc.Suggestions)...)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
