package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for panels and the live screen
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Above     lipgloss.Color
	Below     lipgloss.Color
}

var (
	ThemeAgar = Theme{
		Name:      "agar",
		Primary:   lipgloss.Color("#f5c542"), // Colony yellow
		Secondary: lipgloss.Color("#d98c3f"),
		Accent:    lipgloss.Color("#7fd1ae"),
		Text:      lipgloss.Color("#fff8e7"),
		Muted:     lipgloss.Color("#8a7f6a"),
		Above:     lipgloss.Color("#ff5f5f"),
		Below:     lipgloss.Color("#7fd1ae"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Above:     lipgloss.Color("#ff4444"),
		Below:     lipgloss.Color("#00ff88"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Above:     lipgloss.Color("#ffaa00"),
		Below:     lipgloss.Color("#00ff00"),
	}

	CurrentTheme = ThemeAgar

	Themes = []Theme{
		ThemeAgar,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeAgar
}

// SetTheme changes the current theme and rebuilds the package styles
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
