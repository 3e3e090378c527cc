package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

const (
	fieldLength = iota
	fieldWidth
)

var fieldLabels = [...]string{
	fieldLength: "Length",
	fieldWidth:  "Width",
}

type model struct {
	theme Theme
	deps  Deps

	inputs []textinput.Model
	focus  int

	result    domain.Measurement
	hasResult bool
	status    string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	initial := [...]float64{
		fieldLength: deps.Length,
		fieldWidth:  deps.Width,
	}

	inputs := make([]textinput.Model, 0, len(fieldLabels))
	for i, label := range fieldLabels {
		in := textinput.New()
		in.Prompt = fmt.Sprintf("%-7s ", label+":")
		in.SetValue(strconv.FormatFloat(initial[i], 'f', -1, 64))
		if i == fieldLength {
			in.Focus()
		}
		inputs = append(inputs, in)
	}

	m := model{
		theme:  DefaultTheme(),
		deps:   deps,
		inputs: inputs,
	}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			m.moveFocus(1)
			return m, nil

		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *model) moveFocus(dir int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// recompute parses both fields and refreshes the result. Only parse failures are reported;
// any number, negative or not, is measured.
func (m *model) recompute() {
	var vals [len(fieldLabels)]float64
	for i, in := range m.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Value()), 64)
		if err != nil {
			m.hasResult = false
			m.status = fmt.Sprintf("%s is not a number", strings.ToLower(fieldLabels[i]))
			return
		}
		vals[i] = v
	}

	if m.deps.Measurer == nil {
		m.hasResult = false
		m.status = "no measurer configured"
		return
	}

	res, err := m.deps.Measurer.Execute(context.Background(), vals[fieldLength], vals[fieldWidth])
	if err != nil {
		m.hasResult = false
		m.status = err.Error()
		return
	}

	m.result = res
	m.hasResult = true
	m.status = ""
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("rectcalc") + "\n" +
		m.theme.Subtitle.Render("area and perimeter of a rectangle") + "\n"

	fields := make([]string, 0, len(m.inputs))
	for _, in := range m.inputs {
		fields = append(fields, in.View())
	}

	var body string
	if m.hasResult {
		body = fmt.Sprintf("Area: %s\nPerimeter: %s",
			domain.FormatNumber(m.result.Area),
			domain.FormatNumber(m.result.Perimeter),
		)
	} else {
		body = m.theme.Error.Render(m.status)
	}

	help := m.theme.Help.Render("tab/↑/↓ switch field • esc quit")
	return wrap.Render(header + "\n" +
		strings.Join(fields, "\n") + "\n\n" +
		m.theme.Card.Render(body) + "\n" +
		help)
}
