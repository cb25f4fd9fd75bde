package paper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gridfit/internal/viz"
)

// Renderer formats the paper tables with a theme.
type Renderer struct {
	theme  viz.Theme
	styles viz.Styles
	// PlotWidth is the asciigraph width of the F1 plots.
	PlotWidth int
}

func NewRenderer(theme viz.Theme) *Renderer {
	return &Renderer{theme: theme, styles: viz.NewStyles(theme), PlotWidth: 40}
}

// Render returns every section separated by blank lines.
func (r *Renderer) Render() string {
	sections := []string{
		r.Header(),
		r.Stats(),
		r.SeverityTable(),
		r.MatrixTable(),
	}
	for _, rc := range RunoffClasses {
		sections = append(sections, r.F1Table(rc), r.F1Plot(rc))
	}
	return strings.Join(sections, "\n\n")
}

func (r *Renderer) Header() string {
	var b strings.Builder
	b.WriteString(viz.GradientText(Citation.Title, r.theme.Primary, r.theme.Accent))
	b.WriteString("\n")
	b.WriteString(r.styles.Text.Render(Citation.Authors))
	b.WriteString("\n")
	b.WriteString(r.styles.Muted.Render(Citation.Journal + "  " + Citation.DOI))
	b.WriteString("\n")
	b.WriteString(viz.Separator(72, r.styles.Muted))
	return b.String()
}

func (r *Renderer) Stats() string {
	rows := make([][]string, len(BasinStats))
	for i, s := range BasinStats {
		rows[i] = []string{s.Label, s.Value}
	}
	return r.table("Godavari basin", []string{"Metric", "Value"}, rows)
}

func (r *Renderer) SeverityTable() string {
	rows := make([][]string, len(SeverityScale))
	for i, s := range SeverityScale {
		rows[i] = []string{s.Range, s.Interpretation}
	}
	return r.table("SRI severity", []string{"SRI", "Class"}, rows)
}

func (r *Renderer) MatrixTable() string {
	headers := append([]string{"areal \\ grid"}, MatrixColumns...)
	rows := make([][]string, len(Matrix))
	for i, m := range Matrix {
		row := make([]string, 0, len(m.Values)+1)
		row = append(row, m.Label)
		for _, v := range m.Values {
			row = append(row, strconv.Itoa(v))
		}
		rows[i] = row
	}
	return r.table("Difference matrix (grid cells)", headers, rows)
}

func (r *Renderer) F1Table(rc RunoffClass) string {
	rows := make([][]string, len(rc.Scores))
	for i, s := range rc.Scores {
		rows[i] = []string{s.ReturnPeriod, fmt.Sprintf("%.2f", s.Dry), fmt.Sprintf("%.2f", s.Wet)}
	}
	return r.table("F1 score, "+strings.ToLower(rc.Name), []string{"Return period", "Dry", "Wet"}, rows)
}

// F1Plot draws dry and wet F1 scores against return period, longest first.
func (r *Renderer) F1Plot(rc RunoffClass) string {
	dry, wet := F1Series(rc.Scores)
	return asciigraph.PlotMany([][]float64{dry, wet},
		asciigraph.Height(8),
		asciigraph.Width(r.PlotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption(rc.Name+" F1 (dry red, wet blue)"),
	)
}

// F1Series splits scores into dry and wet series.
func F1Series(scores []F1Score) (dry, wet []float64) {
	dry = make([]float64, len(scores))
	wet = make([]float64, len(scores))
	for i, s := range scores {
		dry[i] = s.Dry
		wet[i] = s.Wet
	}
	return dry, wet
}

func (r *Renderer) table(title string, headers []string, rows [][]string) string {
	header := r.styles.Title.Foreground(r.theme.Primary)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Muted)).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return r.styles.Text.Padding(0, 1)
		})
	return r.styles.Subtitle.Render(title) + "\n" + t.Render()
}
