package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bactogrowth/internal/growth"
)

type Metric int

const (
	MetricPopulation Metric = iota
	MetricMass
)

func (m Metric) String() string {
	if m == MetricMass {
		return "mass"
	}
	return "population"
}

// ParseMetric accepts "population" (or "pop") and "mass".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "", "population", "pop":
		return MetricPopulation, nil
	case "mass":
		return MetricMass, nil
	}
	return MetricPopulation, fmt.Errorf("unknown metric: %s", s)
}

type ChartOptions struct {
	Metric Metric
	Height int
	Width  int
}

var DefaultChartOptions = ChartOptions{Metric: MetricPopulation, Height: 12, Width: 72}

// GrowthChart plots log10 of the chosen metric across the series.
func GrowthChart(samples []growth.Sample, opts ChartOptions) (string, error) {
	if len(samples) == 0 {
		return "", fmt.Errorf("no samples to plot")
	}
	opts = withDefaults(opts)

	var data []float64
	var caption string
	switch opts.Metric {
	case MetricMass:
		data = growth.Log10Masses(samples)
		caption = "log10 mass (kg)"
	default:
		data = growth.Log10Populations(samples)
		caption = "log10 population"
	}

	if err := checkFinite(data); err != nil {
		return "", fmt.Errorf("%s: %w", caption, err)
	}

	last := samples[len(samples)-1].ElapsedMinutes
	caption = fmt.Sprintf("%s over %.4g h", caption, growth.MinutesToHours(last))

	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	), nil
}

var lineColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

var legendColors = []lipgloss.Color{"1", "2", "4", "3", "5", "6"}

// MultiChart plots one log10 population line per doubling interval,
// followed by a colour legend.
func MultiChart(lines []growth.Line, opts ChartOptions) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("no lines to plot")
	}
	opts = withDefaults(opts)

	data := make([][]float64, len(lines))
	colors := make([]asciigraph.AnsiColor, len(lines))
	legend := make([]string, len(lines))
	for i, l := range lines {
		if err := checkFinite(l.Log10Population); err != nil {
			return "", fmt.Errorf("%g min line: %w", l.DoublingMinutes, err)
		}
		data[i] = l.Log10Population
		colors[i] = lineColors[i%len(lineColors)]
		style := lipgloss.NewStyle().Foreground(legendColors[i%len(legendColors)])
		legend[i] = style.Render("■") + fmt.Sprintf(" %g min", l.DoublingMinutes)
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("log10 population by doubling interval"),
	)
	return graph + "\n\n" + strings.Join(legend, "   "), nil
}

// checkFinite rejects values asciigraph cannot place on an axis, such as the
// log10 of a zero mass.
func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("point %d is not finite (%g)", i, v)
		}
	}
	return nil
}

func withDefaults(opts ChartOptions) ChartOptions {
	if opts.Height <= 0 {
		opts.Height = DefaultChartOptions.Height
	}
	if opts.Width <= 0 {
		opts.Width = DefaultChartOptions.Width
	}
	return opts
}
