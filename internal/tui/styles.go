package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader  = lipgloss.Color("99")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorOK      = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
	ColorError   = lipgloss.Color("196")
	ColorSpinner = lipgloss.Color("69")
	ColorBorder  = lipgloss.Color("240")
	ColorFocus   = lipgloss.Color("212")
)

// Category colors match the bar chart.
const (
	ColorEnergy = lipgloss.Color("#0000FF")
	ColorWaste  = lipgloss.Color("#008000")
	ColorTravel = lipgloss.Color("#FFA500")
	ColorTotal  = lipgloss.Color("#FF0000")
)

// Status icons.
const (
	IconOK      = "✓"
	IconWarning = "⚠"
	IconBullet  = "•"
	IconFocus   = "▸"
)

// Shared styles.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	SubtleStyle  = lipgloss.NewStyle().Faint(true)
	OKStyle      = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	FocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFocus)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
