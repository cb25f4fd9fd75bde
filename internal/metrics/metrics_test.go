package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/san-kum/gridfit/internal/fitgame"
)

func TestTransitionCountsVictories(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Transition(fitgame.ModeStart, fitgame.ModeAreal)
	m.Transition(fitgame.ModeGridwise, fitgame.ModeVictory)
	m.Transition(fitgame.ModeGridwise, fitgame.ModeVictory)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Victories))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("start", "areal")))
}

func TestFrame(t *testing.T) {
	m := New(nil)
	m.Frame()
	m.Frame()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesRendered))
}
