package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonlens/internal/footprint"
	"github.com/rshade/carbonlens/internal/report"
)

// RenderReport renders the styled on-screen report: the four footprint
// figures, the equivalency line when present, and the suggestions.
func RenderReport(doc report.Document) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(report.Title))
	content.WriteString("\n\n")

	rows := []struct {
		label string
		value float64
		color lipgloss.Color
	}{
		{"Energy Footprint", doc.Result.Energy, ColorEnergy},
		{"Waste Footprint", doc.Result.Waste, ColorWaste},
		{"Business Travel Footprint", doc.Result.Travel, ColorTravel},
		{"Total Carbon Footprint", doc.Result.Total, ColorTotal},
	}
	for _, row := range rows {
		marker := lipgloss.NewStyle().Foreground(row.color).Render(IconBullet)
		content.WriteString(marker + " ")
		content.WriteString(LabelStyle.Render(row.label + ": "))
		content.WriteString(ValueStyle.Render(fmt.Sprintf("%.2f %s", row.value, footprint.Unit)))
		content.WriteString("\n")
	}

	if !doc.Equivalencies.IsEmpty && doc.Equivalencies.DisplayText != "" {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(doc.Equivalencies.DisplayText))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(HeaderStyle.Render(report.SuggestionsHeader))
	content.WriteString("\n")
	if len(doc.Suggestions) == 0 {
		content.WriteString(OKStyle.Render(IconOK + " " + footprint.NoSuggestionsMessage))
	} else {
		lines := make([]string, 0, len(doc.Suggestions))
		for _, s := range doc.Suggestions {
			lines = append(lines, WarningStyle.Render(IconWarning)+" "+s)
		}
		content.WriteString(strings.Join(lines, "\n"))
	}

	return BoxStyle.Render(content.String())
}

// RenderLoadingIndicator renders the in-progress message.
func RenderLoadingIndicator() string {
	return lipgloss.NewStyle().
		Foreground(ColorSpinner).
		Bold(true).
		Render("Calculating footprint...")
}
