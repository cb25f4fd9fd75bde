package tui

import (
	"log/slog"

	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/viz"
	"github.com/san-kum/gridfit/internal/waves"
)

// backdrop drives the wave renderer on a braille canvas. The Bubble Tea
// tick is its frame scheduler: every tick steps the manual scheduler once.
type backdrop struct {
	canvas   *viz.Canvas
	host     *waves.StaticHost
	sched    *waves.ManualScheduler
	renderer *waves.Renderer
}

func newBackdrop(cfg config.WavesConfig, logger *slog.Logger, onFrame func()) *backdrop {
	const cols, rows = 80, 8
	b := &backdrop{
		canvas: viz.NewCanvas(cols, rows),
		host:   waves.NewStaticHost(cols*2, rows*4),
		sched:  waves.NewManualScheduler(),
	}
	opts := []waves.Option{
		waves.WithBands(cfg.BandSet()),
		waves.WithStep(cfg.Step),
		waves.WithScale(cfg.TerminalScale),
		waves.WithGrid(cfg.TerminalGrid, waves.DefaultGridColor),
		waves.WithLogger(logger),
	}
	if onFrame != nil {
		opts = append(opts, waves.WithFrameHook(onFrame))
	}
	b.renderer = waves.New(b.canvas, b.host, b.sched, opts...)
	return b
}

func (b *backdrop) start() { b.renderer.Mount() }

func (b *backdrop) stop() { b.renderer.Unmount() }

// step advances one frame.
func (b *backdrop) step() { b.sched.Step() }

// resize fits the canvas to cols x rows character cells.
func (b *backdrop) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	b.host.Resize(cols*2, rows*4)
}

func (b *backdrop) view() string { return b.canvas.String() }
