package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/fitgame"
	"github.com/san-kum/gridfit/internal/metrics"
)

// Run starts the full-screen lab and blocks until the user quits.
// m may be nil.
func Run(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) error {
	var p *tea.Program

	opts := []fitgame.Option{
		fitgame.WithVictoryDelay(cfg.VictoryDelay),
		fitgame.WithLogger(logger),
		// Send blocks until the loop receives, and actions taken inside
		// Update also report here, so it must not run inline.
		fitgame.WithOnChange(func(fitgame.Snapshot) { go p.Send(gameChangedMsg{}) }),
	}
	var onFrame func()
	if m != nil {
		opts = append(opts, fitgame.WithOnTransition(m.Transition))
		onFrame = m.Frame
	}
	game := fitgame.New(opts...)
	defer game.Close()

	bd := newBackdrop(cfg.Waves, logger, onFrame)
	defer bd.stop()

	p = tea.NewProgram(newModel(cfg, game, bd, logger), tea.WithAltScreen())
	logger.Info("tui started", "theme", cfg.Theme, "frame_rate", cfg.FrameRate)
	_, err := p.Run()
	return err
}
