package curve

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// Step is the horizontal sampling distance of Path, in output units.
	Step = 5.0

	domainMin   = -3.0
	domainWidth = 6.0

	histogramJitter = 0.05
	histogramFloor  = 0.05
	histogramScale  = 0.8
)

// Point is a sample in screen coordinates.
type Point struct {
	X, Y float64
}

// Shape evaluates the unitless shape of kind at x, where x spans [-3, 3].
// Unset evaluates to zero everywhere.
func Shape(kind Kind, x float64) float64 {
	switch kind {
	case Normal:
		return math.Exp(-0.5 * x * x)
	case Gamma:
		s := x + 3
		if s <= 0 {
			return 0
		}
		return s * s * math.Exp(-s) * 1.5
	case GEV:
		s := x + 1.5
		return math.Exp(-(math.Exp(-s) + s + 1))
	}
	return 0
}

// PeakFraction is the share of the drawing height that a unit shape value
// deflects the curve by.
func PeakFraction(kind Kind) float64 {
	if kind == GEV {
		return 0.9
	}
	return 0.8
}

// Path samples kind across [0, width] every Step units. Returned y values
// are measured from the top, so a zero shape value sits on the baseline at
// y == height. Unset yields no points.
func Path(kind Kind, width, height float64) []Point {
	if !kind.Valid() || width <= 0 {
		return nil
	}
	frac := PeakFraction(kind)
	points := make([]Point, 0, int(width/Step)+1)
	for x := 0.0; x <= width; x += Step {
		nx := x/width*domainWidth + domainMin
		y := height - Shape(kind, nx)*height*frac
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// SVGPath renders points as an SVG path "M x,y L x,y ...".
func SVGPath(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	for i, p := range points {
		if i > 0 {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Histogram returns bar heights that loosely follow kind. Each bar gets
// uniform jitter in [-0.05, 0.05) from rng, is floored at 0.05, scaled to
// 80% of height and clamped into [0, height].
func Histogram(kind Kind, bars int, height float64, rng *rand.Rand) []float64 {
	if bars <= 0 {
		return nil
	}
	out := make([]float64, bars)
	for i := range out {
		x := float64(i)/float64(bars)*domainWidth + domainMin
		v := Shape(kind, x)
		if rng != nil {
			v += rng.Float64()*2*histogramJitter - histogramJitter
		}
		v = math.Max(histogramFloor, v)
		out[i] = clamp(v*histogramScale*height, 0, height)
	}
	return out
}

// Series samples the raw shape at n evenly spaced points, for plotting.
func Series(kind Kind, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		x := float64(i)/float64(n-1)*domainWidth + domainMin
		out[i] = Shape(kind, x)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
