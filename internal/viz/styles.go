package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Backdrop lipgloss.Style
	KeyHint  lipgloss.Style

	Tile       lipgloss.Style
	ActiveTile lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style

	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	ButtonInert  lipgloss.Style

	BadgeHigh lipgloss.Style
	BadgeMed  lipgloss.Style
	BadgeInfo lipgloss.Style
	BadgeWin  lipgloss.Style

	Overlay lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	button := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	tile := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Text:     lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Backdrop: lipgloss.NewStyle().Foreground(t.Wave),
		KeyHint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		Tile:       tile.BorderForeground(t.Muted),
		ActiveTile: tile.BorderForeground(t.Primary),
		Good:       lipgloss.NewStyle().Bold(true).Foreground(t.Good),
		Bad:        lipgloss.NewStyle().Bold(true).Foreground(t.Bad),

		Button:       button.BorderForeground(t.Muted).Foreground(t.Muted),
		ButtonActive: button.BorderForeground(t.Primary).Foreground(t.Text).Bold(true),
		ButtonInert:  button.BorderForeground(t.Background).Foreground(t.Muted).Faint(true),

		BadgeHigh: badge.Foreground(t.Bad),
		BadgeMed:  badge.Foreground(t.Warning),
		BadgeInfo: badge.Foreground(t.Secondary),
		BadgeWin:  badge.Foreground(t.Good),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Primary).
			Padding(1, 4).
			Align(lipgloss.Center),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	runes := []rune(text)
	n := len(runes)
	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Separator draws a muted rule with a centre diamond.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
