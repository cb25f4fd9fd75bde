package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
	"github.com/san-kum/gridfit/internal/viz"
)

const (
	title      = "Fit the Curve Challenge"
	tileWidth  = 26
	plotHeight = 5
)

var sparks = []rune("▁▂▃▄▅▆▇█")

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Backdrop.Render(m.backdrop.view()))
	b.WriteString("\n")
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(viz.Separator(min(m.width, 3*(tileWidth+4)), m.styles.Muted))
	b.WriteString("\n")

	switch m.snap.Mode {
	case fitgame.ModeStart:
		b.WriteString(m.viewIntro())
	case fitgame.ModeVictory:
		b.WriteString(m.viewTiles())
		b.WriteString("\n")
		b.WriteString(m.viewVictory())
	default:
		b.WriteString(m.viewTiles())
		b.WriteString("\n")
		b.WriteString(m.viewPicker())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.KeyHint.Render(m.hints()))
	return b.String()
}

func (m model) viewHeader() string {
	head := viz.GradientText(title, m.theme.Primary, m.theme.Accent)
	var badge string
	switch m.snap.Mode {
	case fitgame.ModeAreal:
		label := m.snap.ArealBadge()
		style := m.styles.BadgeInfo
		switch label {
		case "HIGH":
			style = m.styles.BadgeHigh
		case "MED":
			style = m.styles.BadgeMed
		}
		badge = m.styles.Muted.Render("Total Error ") + style.Render(label)
	case fitgame.ModeGridwise:
		style := m.styles.BadgeHigh
		if m.snap.GridErrors == 0 {
			style = m.styles.BadgeWin
		}
		badge = m.styles.Muted.Render("Remaining Mismatches ") + style.Render(fmt.Sprint(m.snap.GridErrors))
	case fitgame.ModeVictory:
		badge = m.styles.BadgeWin.Render("0 mismatches")
	}
	if badge == "" {
		return head
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, head, "   ", badge)
}

func (m model) viewIntro() string {
	lines := []string{
		m.styles.Title.Render("One curve for a whole basin?"),
		m.styles.Text.Render("Areal SRI fits a single distribution to every grid cell."),
		m.styles.Text.Render("Try it, then fit each cell on its own."),
		"",
		m.styles.ButtonActive.Render("s  start experiment"),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m model) viewVictory() string {
	lines := []string{
		m.styles.Good.Render("Perfect Fit!"),
		m.styles.Text.Render("Every cell matched its own distribution."),
		m.styles.Muted.Render("r  replay"),
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

func (m model) viewTiles() string {
	tiles := make([]string, len(m.snap.Tiles))
	for i, t := range m.snap.Tiles {
		tiles[i] = m.viewTile(t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m model) viewTile(t fitgame.Tile) string {
	style := m.styles.Tile
	if t.Active {
		style = m.styles.ActiveTile
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Region.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(t.Region.Description))
	b.WriteString("\n")
	b.WriteString(m.styles.Backdrop.Render(histogramLine(t.Region.Canonical, tileWidth)))
	b.WriteString("\n")

	switch t.Status {
	case fitgame.FitGood:
		b.WriteString(m.styles.Good.Render(t.Status.Label()))
	case fitgame.FitBad:
		b.WriteString(m.styles.Bad.Render(t.Status.Label()))
	default:
		b.WriteString(m.styles.Muted.Render("no curve"))
	}
	b.WriteString(" ")
	b.WriteString(m.styles.Text.Render(t.Choice.Label()))
	if t.Choice.Valid() {
		b.WriteString("\n")
		b.WriteString(curvePlot(t.Choice, t.Status))
	}
	return style.Width(tileWidth + 2).Render(b.String())
}

func (m model) viewPicker() string {
	enabled := m.snap.Mode == fitgame.ModeAreal || m.snap.PickerEnabled()
	var current curve.Kind
	switch m.snap.Mode {
	case fitgame.ModeAreal:
		current = m.snap.Areal
	case fitgame.ModeGridwise:
		current = m.snap.Choices[m.snap.Active]
	}

	buttons := make([]string, 0, len(curve.Kinds)+1)
	for i, k := range curve.Kinds {
		label := fmt.Sprintf("%d %s", i+1, k.Label())
		switch {
		case !enabled:
			buttons = append(buttons, m.styles.ButtonInert.Render(label))
		case k == current:
			buttons = append(buttons, m.styles.ButtonActive.Render(label))
		default:
			buttons = append(buttons, m.styles.Button.Render(label))
		}
	}
	if m.snap.Mode == fitgame.ModeAreal {
		style := m.styles.ButtonInert
		if m.snap.CanTryGridwise() {
			style = m.styles.ButtonActive
		}
		buttons = append(buttons, style.Render("g try grid-wise"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m model) hints() string {
	switch m.snap.Mode {
	case fitgame.ModeStart:
		return "s start   t theme   q quit"
	case fitgame.ModeAreal:
		return "1-3 pick basin curve   g grid-wise   r replay   t theme   q quit"
	case fitgame.ModeGridwise:
		return "a/b/c or ←→ select cell   1-3 pick curve   r replay   t theme   q quit"
	default:
		return "r replay   t theme   q quit"
	}
}

// histogramLine draws the observed histogram of kind as a sparkline.
func histogramLine(kind curve.Kind, width int) string {
	top := float64(len(sparks) - 1)
	bars := curve.Histogram(kind, width, top, nil)
	out := make([]rune, len(bars))
	for i, h := range bars {
		out[i] = sparks[int(h+0.5)]
	}
	return string(out)
}

func curvePlot(kind curve.Kind, status fitgame.FitStatus) string {
	color := asciigraph.Green
	if status == fitgame.FitBad {
		color = asciigraph.Red
	}
	return asciigraph.Plot(curve.Series(kind, tileWidth-6),
		asciigraph.Height(plotHeight),
		asciigraph.Width(tileWidth-6),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(color),
	)
}
