package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Wave       lipgloss.Color
	Good       lipgloss.Color
	Warning    lipgloss.Color
	Bad        lipgloss.Color
}

// Available themes
var (
	ThemeBasin = Theme{
		Name:       "basin",
		Primary:    lipgloss.Color("#22d3ee"), // cyan-400
		Secondary:  lipgloss.Color("#38bdf8"), // sky-400
		Accent:     lipgloss.Color("#a855f7"),
		Background: lipgloss.Color("#020617"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#64748b"),
		Wave:       lipgloss.Color("#155e75"),
		Good:       lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Bad:        lipgloss.Color("#f87171"),
	}

	ThemeMonsoon = Theme{
		Name:       "monsoon",
		Primary:    lipgloss.Color("#60a5fa"),
		Secondary:  lipgloss.Color("#93c5fd"),
		Accent:     lipgloss.Color("#f0abfc"),
		Background: lipgloss.Color("#0b1120"),
		Text:       lipgloss.Color("#f1f5f9"),
		Muted:      lipgloss.Color("#475569"),
		Wave:       lipgloss.Color("#1e3a8a"),
		Good:       lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Bad:        lipgloss.Color("#fb7185"),
	}

	ThemeDrought = Theme{
		Name:       "drought",
		Primary:    lipgloss.Color("#f59e0b"),
		Secondary:  lipgloss.Color("#fcd34d"),
		Accent:     lipgloss.Color("#ef4444"),
		Background: lipgloss.Color("#1c1917"),
		Text:       lipgloss.Color("#fafaf9"),
		Muted:      lipgloss.Color("#78716c"),
		Wave:       lipgloss.Color("#78350f"),
		Good:       lipgloss.Color("#a3e635"),
		Warning:    lipgloss.Color("#fde047"),
		Bad:        lipgloss.Color("#dc2626"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Wave:       lipgloss.Color("#444444"),
		Good:       lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Bad:        lipgloss.Color("#ff0000"),
	}

	// All available themes
	Themes = []Theme{
		ThemeBasin,
		ThemeMonsoon,
		ThemeDrought,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeBasin
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
