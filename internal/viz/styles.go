package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Selected    lipgloss.Style
	KeyHint     lipgloss.Style
	AboveRef    lipgloss.Style
	BelowRef    lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	MetricLabel = lipgloss.NewStyle().
		Foreground(t.Muted).
		Width(18)

	MetricValue = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	AboveRef = lipgloss.NewStyle().Bold(true).Foreground(t.Above)
	BelowRef = lipgloss.NewStyle().Foreground(t.Below)
}

// ProgressBar renders fraction (clamped to [0, 1]) as a bar of width cells.
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if filled == width {
		return AboveRef.Render(bar)
	}
	return BelowRef.Render(bar)
}

// Sparkline renders a mini chart from values, sampled to fit width
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	left := strings.Repeat("─", (width-3)/2)
	right := strings.Repeat("─", width-3-(width-3)/2)
	return Subtle.Render(left + " ◆ " + right)
}
