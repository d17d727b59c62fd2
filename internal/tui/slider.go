// Package tui is the interactive slider screen: every change to elapsed
// time, doubling interval or initial population recomputes the colony.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bactogrowth/internal/growth"
	"github.com/san-kum/bactogrowth/internal/input"
	"github.com/san-kum/bactogrowth/internal/viz"
)

type slider struct {
	name     string
	unit     string
	value    float64
	min, max float64
	step     float64
}

func (s *slider) nudge(dir float64) {
	s.value = math.Max(s.min, math.Min(s.max, s.value+dir*s.step))
}

const historySize = 60

const (
	sliderElapsed = iota
	sliderDoubling
	sliderInitial
)

type Model struct {
	growth    *growth.Model
	formatter *growth.Formatter
	policy    input.Policy

	sliders []slider
	cursor  int

	editing bool
	editBuf string
	err     error

	params      growth.Parameters
	result      growth.Result
	comparisons []growth.BodyComparison
	history     []float64

	width int
}

// New builds the screen around p. Elapsed time is shown in hours.
func New(m *growth.Model, f *growth.Formatter, p growth.Parameters, policy input.Policy) Model {
	if f == nil {
		f = growth.NewFormatter(growth.DefaultLocale)
	}
	if p.InitialPopulation == 0 {
		p.InitialPopulation = growth.DefaultInitialPopulation
	}

	model := Model{
		growth:    m,
		formatter: f,
		policy:    policy,
		sliders: []slider{
			{name: "elapsed", unit: "h", value: growth.MinutesToHours(p.ElapsedMinutes), min: 0, max: 24 * 7, step: 1},
			{name: "doubling", unit: "min", value: p.DoublingMinutes, min: 1, max: 240, step: 5},
			{name: "initial", unit: "", value: p.InitialPopulation, min: 1, max: 1e6, step: 1},
		},
		width: 80,
	}
	model.recompute()
	return model
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.sliderKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) sliderKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.sliders)-1 {
			m.cursor++
		}
	case "left", "h":
		m.sliders[m.cursor].nudge(-1)
		m.recompute()
	case "right", "l":
		m.sliders[m.cursor].nudge(1)
		m.recompute()
	case "enter":
		m.editing = true
		m.editBuf = ""
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.commitEdit()
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-e+") {
			m.editBuf += s
		}
	}
	return m, nil
}

// commitEdit runs the typed value through the same parsing policy as the
// command line.
func (m *Model) commitEdit() {
	raw := input.Raw{
		Elapsed:           formatRaw(m.sliders[sliderElapsed].value),
		Unit:              input.Hours,
		DoublingMinutes:   formatRaw(m.sliders[sliderDoubling].value),
		InitialPopulation: formatRaw(m.sliders[sliderInitial].value),
	}
	switch m.cursor {
	case sliderElapsed:
		raw.Elapsed = m.editBuf
	case sliderDoubling:
		raw.DoublingMinutes = m.editBuf
	case sliderInitial:
		raw.InitialPopulation = m.editBuf
	}

	p, err := input.Parse(raw, m.policy)
	if err != nil {
		m.err = err
		return
	}
	if p.DoublingMinutes == 0 {
		m.err = fmt.Errorf("doubling interval cannot be zero")
		return
	}

	m.sliders[sliderElapsed].value = growth.MinutesToHours(p.ElapsedMinutes)
	m.sliders[sliderDoubling].value = p.DoublingMinutes
	m.sliders[sliderInitial].value = p.InitialPopulation
	m.recompute()
}

func (m *Model) recompute() {
	m.params = growth.Parameters{
		ElapsedMinutes:    growth.HoursToMinutes(m.sliders[sliderElapsed].value),
		DoublingMinutes:   m.sliders[sliderDoubling].value,
		InitialPopulation: m.sliders[sliderInitial].value,
	}

	res, err := m.growth.Compute(m.params)
	if err != nil {
		m.err = err
		return
	}
	cmp, err := m.growth.CompareAll(res.TotalMassKg)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.result = res
	m.comparisons = cmp
	history := make([]float64, 0, historySize)
	if len(m.history) >= historySize {
		history = append(history, m.history[len(m.history)-historySize+1:]...)
	} else {
		history = append(history, m.history...)
	}
	m.history = append(history, math.Log10(res.TotalMassKg))
}

// Parameters is the current slider state.
func (m Model) Parameters() growth.Parameters { return m.params }

func (m Model) Result() growth.Result { return m.result }

func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("bactogrowth live"))
	b.WriteString("\n\n")

	for i, s := range m.sliders {
		cursor := "  "
		label := viz.MetricLabel.Render(s.name)
		if i == m.cursor {
			cursor = viz.Selected.Render("▸ ")
		}
		value := m.formatter.FormatScientific(s.value)
		if m.editing && i == m.cursor {
			value = viz.Selected.Render(m.editBuf + "_")
		}
		frac := (s.value - s.min) / (s.max - s.min)
		fmt.Fprintf(&b, "%s%s %s %s %s\n", cursor, label, viz.ProgressBar(frac, 24), value, s.unit)
	}

	b.WriteString("\n")
	b.WriteString(viz.ResultPanel(m.formatter, m.params, m.result, m.comparisons))
	b.WriteString("\n")

	if len(m.history) > 1 {
		b.WriteString(viz.Subtle.Render("log10 mass ") + viz.Sparkline(m.history, 40) + "\n")
	}
	if m.err != nil {
		b.WriteString(viz.AboveRef.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString(viz.KeyHint.Render("↑/↓ select  ←/→ adjust  enter type a value  q quit"))
	return b.String()
}

func formatRaw(v float64) string {
	return fmt.Sprintf("%g", v)
}
