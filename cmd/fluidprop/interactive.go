package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thermokit/fluidprop"
	"github.com/thermokit/fluidprop/props"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInputQuery modelState = iota
	stateShowResult
)

// Field order in the query form.
const (
	fieldOutput = iota
	fieldKey1
	fieldVal1
	fieldKey2
	fieldVal2
	fieldCount
)

type interactiveModel struct {
	err       error
	fluid     *fluidprop.Fluid
	unitsName string
	result    string
	inputs    []textinput.Model
	focusIdx  int
	state     modelState
}

type queryResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(f *fluidprop.Fluid, unitsName string) *interactiveModel {
	m := &interactiveModel{
		fluid:     f,
		unitsName: unitsName,
		state:     stateInputQuery,
	}

	placeholders := [fieldCount]string{"D", "T", "0.0", "Q", "1.0"}
	prompts := [fieldCount]string{"out:  ", "key1: ", "val1: ", "key2: ", "val2: "}

	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = prompts[i]
		ti.Width = 24
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// Only quit from the result screen; q is a legal character
			// in a query field ("Q").
			if m.state == stateShowResult {
				return m, tea.Quit
			}

		case "enter":
			switch m.state {
			case stateInputQuery:
				return m, m.query
			case stateShowResult:
				m.state = stateInputQuery
				m.result = ""
				m.err = nil
			}

		case "tab", "shift+tab", "down", "up":
			if m.state == stateInputQuery {
				step := 1
				if msg.String() == "shift+tab" || msg.String() == "up" {
					step = fieldCount - 1
				}
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + step) % fieldCount
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateInputQuery
				m.result = ""
				m.err = nil
			}
		}

	case queryResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputQuery {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) query() tea.Msg {
	output := strings.TrimSpace(m.inputs[fieldOutput].Value())
	key1 := strings.TrimSpace(m.inputs[fieldKey1].Value())
	key2 := strings.TrimSpace(m.inputs[fieldKey2].Value())

	val1, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldVal1].Value()), 64)
	if err != nil {
		return queryResultMsg{err: fmt.Errorf("val1: %w", err)}
	}
	val2, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldVal2].Value()), 64)
	if err != nil {
		return queryResultMsg{err: fmt.Errorf("val2: %w", err)}
	}

	v, err := m.fluid.Get(output, key1, val1, key2, val2)
	if err != nil {
		return queryResultMsg{err: err}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s=%g, %s=%g) = %g\n", strings.ToUpper(output), key1, val1, key2, val2, v)

	// Show the full state alongside when the pair supports it.
	if k1, err := props.ParseKey(key1); err == nil {
		if k2, err := props.ParseKey(key2); err == nil {
			if st, err := stateFor(m.fluid, k1, val1, k2, val2); err == nil {
				fmt.Fprintf(&b, "\n  T  = %-12g P  = %-12g D = %g\n", st.Temperature, st.Pressure, st.Density)
				fmt.Fprintf(&b, "  H  = %-12g S  = %-12g Q = %g\n", st.Enthalpy, st.Entropy, st.Quality)
				fmt.Fprintf(&b, "  CV = %-12g CP = %-12g W = %g\n", st.Cv, st.Cp, st.SoundSpeed)
			}
		}
	}

	return queryResultMsg{result: b.String()}
}

// stateFor routes a parsed pair to the matching named flash.
func stateFor(f *fluidprop.Fluid, k1 props.Key, v1 float64, k2 props.Key, v2 float64) (props.ThermoState, error) {
	type pair struct{ a, b props.Key }
	routes := map[pair]func(a, b float64) (props.ThermoState, error){
		{props.KeyTemperature, props.KeyPressure}: f.PropsTP,
		{props.KeyPressure, props.KeyEnthalpy}:    f.PropsPH,
		{props.KeyPressure, props.KeyEntropy}:     f.PropsPS,
		{props.KeyTemperature, props.KeyQuality}:  f.PropsTQ,
		{props.KeyPressure, props.KeyQuality}:     f.PropsPQ,
		{props.KeyTemperature, props.KeyDensity}:  f.PropsTD,
		{props.KeyPressure, props.KeyDensity}:     f.PropsPD,
		{props.KeyTemperature, props.KeyEnthalpy}: f.PropsTH,
		{props.KeyTemperature, props.KeyEntropy}:  f.PropsTS,
		{props.KeyDensity, props.KeyEnthalpy}:     f.PropsDH,
		{props.KeyDensity, props.KeyEntropy}:      f.PropsDS,
		{props.KeyEnthalpy, props.KeyEntropy}:     f.PropsHS,
	}
	if fn, ok := routes[pair{k1, k2}]; ok {
		return fn(v1, v2)
	}
	if fn, ok := routes[pair{k2, k1}]; ok {
		return fn(v2, v1)
	}
	return props.ThermoState{}, fmt.Errorf("no full-state route for (%s, %s)", k1, k2)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fluidprop"))
	fmt.Fprintf(&b, " %s (M = %.4f g/mol, %s units)\n\n", m.fluid.Name(), m.fluid.MolarMass(), m.unitsName)

	switch m.state {
	case stateInputQuery:
		b.WriteString("Resolve a property:\n\n")
		for i, input := range m.inputs {
			b.WriteString("  ")
			b.WriteString(input.View())
			if i == fieldOutput {
				b.WriteString(" ")
				b.WriteString(unitStyle.Render("(T P D H S Q CV CP W E ETA TCX)"))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter resolve • ctrl+c quit"))

	case stateShowResult:
		b.WriteString(keyStyle.Render("Result:"))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter new query • q quit"))
	}

	return b.String()
}

func runInteractive(f *fluidprop.Fluid, unitsName string) error {
	p := tea.NewProgram(newInteractiveModel(f, unitsName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
