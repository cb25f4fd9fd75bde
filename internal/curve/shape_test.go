package curve

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"normal", Normal},
		{"Gamma", Gamma},
		{" GEV ", GEV},
		{"", Unset},
		{"unset", Unset},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKind("weibull")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("normal,gamma,gev")
	require.NoError(t, err)
	assert.Equal(t, []Kind{Normal, Gamma, GEV}, kinds)

	kinds, err = ParseKinds("")
	require.NoError(t, err)
	assert.Empty(t, kinds)

	_, err = ParseKinds("normal,lognormal")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPath_Unset(t *testing.T) {
	assert.Empty(t, Path(Unset, 100, 100))
	assert.Equal(t, "", SVGPath(Path(Unset, 100, 100)))
}

func TestPath_SamplesEveryStep(t *testing.T) {
	for _, k := range Kinds {
		pts := Path(k, 100, 100)
		require.Len(t, pts, 21, k.String())
		assert.Equal(t, 0.0, pts[0].X)
		assert.Equal(t, 100.0, pts[len(pts)-1].X)
		for i := 1; i < len(pts); i++ {
			assert.InDelta(t, Step, pts[i].X-pts[i-1].X, 1e-9)
		}
	}
}

func TestPath_Deterministic(t *testing.T) {
	for _, k := range Kinds {
		assert.Equal(t, Path(k, 240, 80), Path(k, 240, 80), k.String())
	}
}

func TestPath_PeakWithinFraction(t *testing.T) {
	const h = 100.0
	for _, k := range Kinds {
		apex := h
		for _, p := range Path(k, 100, h) {
			assert.LessOrEqual(t, p.Y, h)
			if p.Y < apex {
				apex = p.Y
			}
		}
		assert.GreaterOrEqual(t, apex, h-h*PeakFraction(k)-1e-9, k.String())
		assert.Less(t, apex, h, k.String())
	}
}

func TestPath_NormalPeaksAtCentre(t *testing.T) {
	pts := Path(Normal, 100, 100)
	mid := pts[10]
	assert.Equal(t, 50.0, mid.X)
	assert.InDelta(t, 20.0, mid.Y, 1e-9)
}

func TestPath_GammaIsRightSkewed(t *testing.T) {
	pts := Path(Gamma, 100, 100)
	apex := 0
	for i, p := range pts {
		if p.Y < pts[apex].Y {
			apex = i
		}
	}
	// s*s*exp(-s) peaks at s=2, a third of the way across.
	assert.InDelta(t, 33.3, pts[apex].X, Step)
}

func TestSVGPath_Format(t *testing.T) {
	got := SVGPath([]Point{{0, 100}, {5, 92.5}, {10, 80}})
	assert.Equal(t, "M 0,100 L 5,92.5 L 10,80", got)
	assert.True(t, strings.HasPrefix(SVGPath(Path(GEV, 100, 100)), "M 0,"))
}

func TestHistogram_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, k := range Kinds {
		for run := 0; run < 50; run++ {
			bars := Histogram(k, 20, 60, rng)
			require.Len(t, bars, 20)
			for _, b := range bars {
				assert.GreaterOrEqual(t, b, 0.0)
				assert.LessOrEqual(t, b, 60.0)
			}
		}
	}
}

func TestHistogram_FloorAndNoJitterWithoutSource(t *testing.T) {
	bars := Histogram(Gamma, 20, 100, nil)
	// The leftmost gamma bar has a zero shape value and sits on the floor.
	assert.InDelta(t, histogramFloor*histogramScale*100, bars[0], 1e-9)
	assert.Equal(t, bars, Histogram(Gamma, 20, 100, nil))
	assert.Nil(t, Histogram(Normal, 0, 100, nil))
}

func TestShape_UnsetIsZero(t *testing.T) {
	for x := -3.0; x <= 3; x += 0.5 {
		assert.Zero(t, Shape(Unset, x))
	}
}
