package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
	"github.com/san-kum/gridfit/internal/viz"
)

type tickMsg time.Time

// gameChangedMsg wakes the loop after a game change made outside Update,
// such as the timer-driven victory.
type gameChangedMsg struct{}

type model struct {
	game     *fitgame.Game
	snap     fitgame.Snapshot
	backdrop *backdrop

	theme  viz.Theme
	styles viz.Styles

	interval time.Duration
	logger   *slog.Logger

	width  int
	height int
}

func newModel(cfg *config.Config, game *fitgame.Game, bd *backdrop, logger *slog.Logger) model {
	theme := viz.GetTheme(cfg.Theme)
	m := model{
		game:     game,
		snap:     game.Snapshot(),
		backdrop: bd,
		theme:    theme,
		styles:   viz.NewStyles(theme),
		interval: time.Second / time.Duration(cfg.FrameRate),
		logger:   logger,
		width:    80,
		height:   24,
	}
	m.resizeBackdrop()
	return m
}

func (m model) Init() tea.Cmd {
	m.backdrop.start()
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeBackdrop()
		return m, nil
	case tickMsg:
		m.backdrop.step()
		return m, m.tick()
	case gameChangedMsg:
		m.snap = m.game.Snapshot()
		return m, nil
	}
	return m, nil
}

var kindKeys = map[string]curve.Kind{
	"1": curve.Normal,
	"2": curve.Gamma,
	"3": curve.GEV,
}

var regionKeys = map[string]fitgame.RegionID{
	"a": 1,
	"b": 2,
	"c": 3,
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		m.backdrop.stop()
		m.game.Close()
		return m, tea.Quit
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
		return m, nil
	case "s", "enter":
		m.game.StartExperiment()
	case "g":
		m.game.TryGridwise()
	case "r":
		m.game.Replay()
	case "left", "h":
		m.game.ActivateRegion(m.neighbour(-1))
	case "right", "l":
		m.game.ActivateRegion(m.neighbour(1))
	default:
		if kind, ok := kindKeys[key]; ok {
			m.pick(kind)
		} else if id, ok := regionKeys[key]; ok {
			m.game.ActivateRegion(id)
		}
	}
	m.snap = m.game.Snapshot()
	return m, nil
}

// pick routes a family choice to whichever picker the mode exposes.
func (m model) pick(kind curve.Kind) {
	switch m.snap.Mode {
	case fitgame.ModeAreal:
		m.game.SelectArealDistribution(kind)
	case fitgame.ModeGridwise:
		m.game.SelectRegionDistribution(kind)
	}
}

// neighbour returns the region delta steps from the active one, wrapping.
// With nothing active it starts from the first or last region.
func (m model) neighbour(delta int) fitgame.RegionID {
	tiles := m.snap.Tiles
	if len(tiles) == 0 {
		return 0
	}
	idx := -1
	for i, t := range tiles {
		if t.Active {
			idx = i
		}
	}
	if idx < 0 {
		if delta > 0 {
			return tiles[0].Region.ID
		}
		return tiles[len(tiles)-1].Region.ID
	}
	n := len(tiles)
	return tiles[((idx+delta)%n+n)%n].Region.ID
}

// backdropRows is the height of the wave strip above the game panel.
func (m model) backdropRows() int {
	return min(max(m.height/3, 4), 12)
}

func (m *model) resizeBackdrop() {
	m.backdrop.resize(m.width, m.backdropRows())
}
