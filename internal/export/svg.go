package export

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
	"github.com/san-kum/gridfit/internal/viz"
)

const (
	goodStroke = "#4ade80"
	badStroke  = "#f87171"
	barFill    = "#334155"
	background = "#020617"
)

// TileOptions controls tile rendering.
type TileOptions struct {
	Width  int
	Height int
	Bars   int
	// Rand drives histogram jitter. Nil gives bars without jitter.
	Rand *rand.Rand
}

// DefaultTileOptions matches the on-page tile proportions.
func DefaultTileOptions() TileOptions {
	return TileOptions{Width: 300, Height: 150, Bars: 20}
}

func (o TileOptions) normalized() TileOptions {
	d := DefaultTileOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Bars <= 0 {
		o.Bars = d.Bars
	}
	return o
}

// TileSVG renders one region: the observed histogram drawn from the region's
// canonical family and, when choice is set, the fitted curve coloured by fit.
func TileSVG(region fitgame.Region, choice curve.Kind, opts TileOptions) string {
	opts = opts.normalized()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, opts.Width, opts.Height, opts.Width, opts.Height))
	writeTileBody(&sb, region, choice, opts)
	sb.WriteString("</svg>")
	return sb.String()
}

func writeTileBody(sb *strings.Builder, region fitgame.Region, choice curve.Kind, opts TileOptions) {
	w, h := float64(opts.Width), float64(opts.Height)
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s" rx="8"/>
`, opts.Width, opts.Height, background))
	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="#e2e8f0" font-size="12" font-family="monospace">%s</text>
`, region.Name))

	bars := curve.Histogram(region.Canonical, opts.Bars, h, opts.Rand)
	barW := w / float64(len(bars))
	sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, barFill))
	for i, bh := range bars {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(i)*barW+1, h-bh, barW-2, bh))
	}
	sb.WriteString("</g>\n")

	status := fitgame.ComputeFitStatus(region, choice)
	if status == fitgame.FitNone {
		return
	}
	stroke := goodStroke
	if status == fitgame.FitBad {
		stroke = badStroke
	}
	sb.WriteString(fmt.Sprintf(`<path class="fit" fill="none" stroke="%s" stroke-width="3" d="%s"/>
`, stroke, curve.SVGPath(curve.Path(choice, w, h))))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="16" fill="%s" font-size="12" font-family="monospace" text-anchor="end">%s</text>
`, opts.Width-8, stroke, status.Label()))
}

// BoardSVG lays the tiles of snap side by side.
func BoardSVG(snap fitgame.Snapshot, opts TileOptions) string {
	opts = opts.normalized()
	const gap = 16
	n := len(snap.Tiles)
	width := n*opts.Width + max(n-1, 0)*gap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, opts.Height, width, opts.Height))
	for i, tile := range snap.Tiles {
		sb.WriteString(fmt.Sprintf(`<g transform="translate(%d,0)">
`, i*(opts.Width+gap)))
		writeTileBody(&sb, tile.Region, tile.Choice, opts)
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width()) * scale
	height := float64(canvas.Height()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, color))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
