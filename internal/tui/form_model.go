// Package tui provides the interactive terminal form and styled report view.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/internal/footprint"
)

// FormState represents the current state of the form TUI.
type FormState int

const (
	// FormStateEditing indicates the user is filling in fields.
	FormStateEditing FormState = iota
	// FormStateCalculating indicates the assessment is running.
	FormStateCalculating
	// FormStateDone indicates the report is on screen.
	FormStateDone
	// FormStateQuitting indicates the application is exiting.
	FormStateQuitting
	// FormStateError indicates the assessment failed.
	FormStateError
)

// Field bounds.
const (
	// MinFuelEfficiency is the smallest accepted L/100 km and the value used
	// when the field is left blank.
	MinFuelEfficiency = 0.1
	maxPercent        = 100.0

	fieldCharLimit = 16
	fieldWidth     = 18
)

// Field indexes, in display order.
const (
	FieldElectricity = iota
	FieldGas
	FieldFuel
	FieldWasteKg
	FieldRecyclingPercent
	FieldKmPerYear
	FieldFuelEfficiency
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldElectricity:      "Average monthly electricity bill",
	FieldGas:              "Average monthly natural gas bill",
	FieldFuel:             "Average monthly fuel bill",
	FieldWasteKg:          "Waste generated per month (kg)",
	FieldRecyclingPercent: "Waste recycled or composted (%)",
	FieldKmPerYear:        "Kilometers traveled per year",
	FieldFuelEfficiency:   "Fuel efficiency (L/100 km)",
}

var errNotANumber = errors.New("must be a number")

// AssessFunc runs an assessment for the collected inputs.
type AssessFunc func(ctx context.Context, in footprint.Inputs) (*engine.Assessment, error)

// assessDoneMsg is sent when the assessment finishes.
type assessDoneMsg struct {
	assessment *engine.Assessment
	err        error
}

// FormModel is the Bubble Tea model for the footprint input form.
type FormModel struct {
	ctx    context.Context
	inputs [fieldCount]textinput.Model
	focus  int

	state      FormState
	fieldErr   error
	err        error
	assessment *engine.Assessment

	assessFn AssessFunc
}

// NewFormModel creates a form with every field empty and the first focused.
func NewFormModel(ctx context.Context, assessFn AssessFunc) *FormModel {
	m := &FormModel{
		ctx:      ctx,
		state:    FormStateEditing,
		assessFn: assessFn,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = fieldCharLimit
		ti.Width = fieldWidth
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[FieldFuelEfficiency].Placeholder = strconv.FormatFloat(MinFuelEfficiency, 'f', -1, 64)
	m.inputs[0].Focus()
	return m
}

// SetValue pre-fills a field.
func (m *FormModel) SetValue(field int, value string) {
	if field >= 0 && field < int(fieldCount) {
		m.inputs[field].SetValue(value)
	}
}

// State returns the current state.
func (m *FormModel) State() FormState { return m.state }

// Assessment returns the completed assessment, or nil.
func (m *FormModel) Assessment() *engine.Assessment { return m.assessment }

// Err returns the assessment error, if any.
func (m *FormModel) Err() error { return m.err }

// Init initializes the model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assessDoneMsg:
		return m.handleAssessDone(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.state != FormStateEditing {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling keys relevant to form navigation.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateQuitting
		return m, tea.Quit
	}

	if m.state != FormStateEditing {
		if (msg.Type == tea.KeyRunes && string(msg.Runes) == "q") || msg.Type == tea.KeyEnter {
			m.state = FormStateQuitting
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		return m, m.moveFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.moveFocus(-1)
	case tea.KeyEnter:
		if m.focus < int(fieldCount)-1 {
			return m, m.moveFocus(1)
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + int(fieldCount)) % int(fieldCount)
	return m.inputs[m.focus].Focus()
}

// submit parses the fields and starts the assessment. Parse errors keep the
// form open with the message shown under the fields.
func (m *FormModel) submit() tea.Cmd {
	in, err := m.Inputs()
	if err != nil {
		m.fieldErr = err
		return nil
	}
	m.fieldErr = nil
	m.state = FormStateCalculating

	ctx := m.ctx
	assessFn := m.assessFn
	return func() tea.Msg {
		a, err := assessFn(ctx, in)
		return assessDoneMsg{assessment: a, err: err}
	}
}

func (m *FormModel) handleAssessDone(msg assessDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.state = FormStateError
		return m, nil
	}
	m.assessment = msg.assessment
	m.state = FormStateDone
	return m, nil
}

// Inputs parses the fields. Blank fields are zero, except fuel efficiency
// which defaults to MinFuelEfficiency. The recycling field is a percentage
// and is converted to a fraction.
func (m *FormModel) Inputs() (footprint.Inputs, error) {
	var values [fieldCount]float64
	var errs []error
	for i := range m.inputs {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fieldLabels[i], errNotANumber))
			continue
		}
		values[i] = v
	}

	if values[FieldRecyclingPercent] < 0 || values[FieldRecyclingPercent] > maxPercent {
		errs = append(errs, fmt.Errorf("%s: must be between 0 and 100", fieldLabels[FieldRecyclingPercent]))
	}
	if strings.TrimSpace(m.inputs[FieldFuelEfficiency].Value()) == "" {
		values[FieldFuelEfficiency] = MinFuelEfficiency
	} else if values[FieldFuelEfficiency] < MinFuelEfficiency {
		errs = append(errs, fmt.Errorf("%s: must be at least %g", fieldLabels[FieldFuelEfficiency], MinFuelEfficiency))
	}
	if err := errors.Join(errs...); err != nil {
		return footprint.Inputs{}, err
	}

	return footprint.Inputs{
		Energy: footprint.EnergyInputs{
			ElectricityBill: values[FieldElectricity],
			GasBill:         values[FieldGas],
			FuelBill:        values[FieldFuel],
		},
		Waste: footprint.WasteInputs{
			TotalKgPerMonth:   values[FieldWasteKg],
			RecyclingFraction: values[FieldRecyclingPercent] / maxPercent,
		},
		Travel: footprint.TravelInputs{
			KmPerYear:      values[FieldKmPerYear],
			FuelEfficiency: values[FieldFuelEfficiency],
		},
	}, nil
}

// View renders the current view.
func (m *FormModel) View() string {
	switch m.state {
	case FormStateQuitting:
		return ""
	case FormStateCalculating:
		return RenderLoadingIndicator()
	case FormStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			SubtleStyle.Render("Press q to quit.")
	case FormStateDone:
		return RenderReport(m.assessment.Document()) + "\n" +
			SubtleStyle.Render("Press q to quit.")
	case FormStateEditing:
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Carbon Footprint Calculator"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		cursor := "  "
		label := LabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			cursor = FocusStyle.Render(IconFocus) + " "
			label = FocusStyle.Render(fieldLabels[i])
		}
		fmt.Fprintf(&b, "%s%-36s %s\n", cursor, label, m.inputs[i].View())
	}
	if m.fieldErr != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.fieldErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Tab/↓: Next | Shift+Tab/↑: Previous | Enter: Next / Calculate | Esc: Quit"))
	return b.String()
}
