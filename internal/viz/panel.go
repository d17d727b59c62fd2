package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bactogrowth/internal/growth"
)

// ResultPanel summarises one computation and its reference comparisons.
func ResultPanel(f *growth.Formatter, p growth.Parameters, res growth.Result, cmp []growth.BodyComparison) string {
	if f == nil {
		f = growth.NewFormatter(growth.DefaultLocale)
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, MetricLabel.Render(label), MetricValue.Render(value))
	}

	lines := []string{
		Title.Render("bacterial growth"),
		"",
		row("elapsed", fmt.Sprintf("%s min (%s h)", f.FormatScientific(p.ElapsedMinutes), f.FormatScientific(growth.MinutesToHours(p.ElapsedMinutes)))),
		row("doubling every", f.FormatScientific(p.DoublingMinutes)+" min"),
		row("initial", f.FormatScientific(p.InitialPopulation)),
		row("doublings", f.FormatScientific(res.Doublings)),
		row("population", f.FormatScientific(res.FinalPopulation)),
		row("mass", f.FormatScientific(res.TotalMassKg)+" kg"),
	}

	if len(cmp) > 0 {
		lines = append(lines, "")
		for _, c := range cmp {
			lines = append(lines, ComparisonLine(f, c))
		}
	}

	return Panel.Render(strings.Join(lines, "\n"))
}

// ComparisonLine renders one comparison, highlighted once the colony
// outweighs the body.
func ComparisonLine(f *growth.Formatter, c growth.BodyComparison) string {
	text := c.Describe(f, c.Body.Name)
	if c.AtOrAbove {
		return AboveRef.Render("▲ " + text)
	}
	return BelowRef.Render("▽ " + text)
}
