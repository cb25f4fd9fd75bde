package waves

import (
	"math"

	"github.com/gogpu/gg"
)

// Band is one translucent wave layer.
type Band struct {
	// Baseline is the rest height as a fraction of the surface height.
	Baseline float64
	// Frequency is the spatial frequency in radians per pixel.
	Frequency float64
	// Amplitude is the peak sinusoid deflection in pixels.
	Amplitude float64
	// Speed scales how fast the phase drifts with the clock.
	Speed float64
	Color gg.RGBA
}

// DefaultBands are the three layers of the landing page backdrop.
var DefaultBands = []Band{
	{Baseline: 0.5, Frequency: 0.005, Amplitude: 80, Speed: 0.01, Color: gg.RGBA2(34.0/255, 211.0/255, 238.0/255, 0.05)},
	{Baseline: 0.5, Frequency: 0.008, Amplitude: 60, Speed: 0.02, Color: gg.RGBA2(34.0/255, 211.0/255, 238.0/255, 0.1)},
	{Baseline: 0.55, Frequency: 0.004, Amplitude: 100, Speed: 0.005, Color: gg.RGBA2(56.0/255, 189.0/255, 248.0/255, 0.05)},
}

const (
	bumpHeight = 150.0
	bumpWidth  = 100.0
	bumpSwing  = 200.0
)

// Edge returns the y coordinate of band's upper edge at column x for a
// surface of the given size at clock value inc. scale shrinks every pixel
// constant for small surfaces; 1 is the reference geometry.
func Edge(b Band, x, width, height, inc, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	y := b.Baseline*height +
		math.Sin(x*b.Frequency/scale+inc*b.Speed*100)*b.Amplitude*scale*math.Sin(inc)

	centre := width/2 + math.Sin(inc)*bumpSwing*scale
	d := (x - centre) / (bumpWidth * scale)
	bump := math.Exp(-d*d) * bumpHeight * scale

	return y - bump*math.Sin(inc*0.5)
}
