package tui

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
)

func newTestModel(t *testing.T) (model, *fitgame.Game, *clockwork.FakeClock) {
	t.Helper()
	cfg := config.DefaultConfig()
	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.DiscardHandler)
	game := fitgame.New(fitgame.WithClock(clock), fitgame.WithVictoryDelay(cfg.VictoryDelay))
	t.Cleanup(game.Close)
	bd := newBackdrop(cfg.Waves, logger, nil)
	t.Cleanup(bd.stop)
	return newModel(cfg, game, bd, logger), game, clock
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel_ArealFlow(t *testing.T) {
	m, game, _ := newTestModel(t)
	assert.Contains(t, m.View(), "start experiment")

	m = press(t, m, "s", "2")
	assert.Equal(t, fitgame.ModeAreal, game.Mode())
	assert.Equal(t, curve.Gamma, m.snap.Areal)
	assert.Contains(t, m.View(), "Total Error")
	assert.Contains(t, m.View(), "HIGH")

	m = press(t, m, "g")
	assert.Equal(t, fitgame.ModeGridwise, m.snap.Mode)
	assert.Contains(t, m.View(), "Remaining Mismatches")
}

func TestModel_DigitsIgnoredWithoutActiveRegion(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "enter", "1", "g", "3")
	assert.Empty(t, m.snap.Choices)
	assert.False(t, m.snap.PickerEnabled())
}

func TestModel_ArrowsWrapAcrossRegions(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, "s", "1", "g", "right")
	assert.Equal(t, fitgame.RegionID(1), m.snap.Active)
	m = press(t, m, "left")
	assert.Equal(t, fitgame.RegionID(3), m.snap.Active)
	m = press(t, m, "left", "left")
	assert.Equal(t, fitgame.RegionID(1), m.snap.Active)
}

func TestModel_VictoryReachesView(t *testing.T) {
	m, game, clock := newTestModel(t)
	m = press(t, m, "s", "1", "g", "a", "1", "b", "2", "c", "3")
	require.True(t, game.VictoryPending())
	assert.Contains(t, m.View(), "Good Fit")

	clock.Advance(config.DefaultVictoryDelay)
	require.Eventually(t, func() bool { return game.Mode() == fitgame.ModeVictory }, time.Second, time.Millisecond)

	next, _ := m.Update(gameChangedMsg{})
	m = next.(model)
	assert.Contains(t, m.View(), "Perfect Fit!")

	m = press(t, m, "r")
	assert.Equal(t, fitgame.ModeStart, m.snap.Mode)
}

func TestModel_TickAdvancesBackdrop(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Init()
	before := m.backdrop.renderer.Frames()
	next, cmd := m.Update(tickMsg{})
	m = next.(model)
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.backdrop.renderer.Frames())
	assert.Greater(t, m.backdrop.renderer.Increment(), 0.0)
}

func TestModel_WindowResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(model)
	assert.Equal(t, 100, m.backdrop.canvas.Cols())
	assert.Equal(t, 10, m.backdrop.canvas.Rows())

	m.Update(tickMsg{})
	rows := strings.Split(m.backdrop.view(), "\n")
	assert.Len(t, rows, 10)
}

func TestModel_ThemeCycle(t *testing.T) {
	m, _, _ := newTestModel(t)
	first := m.theme.Name
	m = press(t, m, "t")
	assert.NotEqual(t, first, m.theme.Name)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Init()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHistogramLine(t *testing.T) {
	line := []rune(histogramLine(curve.Normal, 20))
	assert.Len(t, line, 20)
	assert.Less(t, strings.IndexRune(string(sparks), line[0]), strings.IndexRune(string(sparks), line[10]))
}
