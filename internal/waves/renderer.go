package waves

import (
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
)

const (
	// DefaultStep is the clock advance per tick.
	DefaultStep = 0.01
	// DefaultGridSpacing is the distance between grid lines in pixels.
	DefaultGridSpacing = 40.0
)

// DefaultGridColor is slate-400 at 5% opacity.
var DefaultGridColor = gg.RGBA2(148.0/255, 163.0/255, 184.0/255, 0.05)

// Renderer paints the backdrop once per scheduled frame.
type Renderer struct {
	mu sync.Mutex

	surface Surface
	host    Host
	sched   Scheduler
	logger  *slog.Logger
	onFrame func()

	bands       []Band
	step        float64
	scale       float64
	gridSpacing float64
	gridColor   gg.RGBA
	background  *gg.RGBA

	increment float64
	frames    uint64

	pending    FrameHandle
	hasPending bool
	unlisten   func()
	mounted    bool
	torn       bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBands replaces DefaultBands.
func WithBands(bands []Band) Option {
	return func(r *Renderer) { r.bands = append([]Band(nil), bands...) }
}

// WithStep sets the clock advance per tick.
func WithStep(step float64) Option {
	return func(r *Renderer) {
		if step > 0 {
			r.step = step
		}
	}
}

// WithScale shrinks the pixel geometry for small surfaces.
func WithScale(scale float64) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithGrid sets grid spacing and colour. A spacing of zero disables the grid.
func WithGrid(spacing float64, col gg.RGBA) Option {
	return func(r *Renderer) {
		r.gridSpacing = spacing
		r.gridColor = col
	}
}

// WithBackground paints an opaque colour after each clear.
func WithBackground(col gg.RGBA) Option {
	return func(r *Renderer) { r.background = &col }
}

// WithLogger sets the logger for non-fatal drawing errors.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFrameHook registers fn to run after every painted frame. Ticks that
// skip painting because the surface has no size do not call fn. fn runs
// without the renderer's lock held and may call Frames or Increment.
func WithFrameHook(fn func()) Option {
	return func(r *Renderer) { r.onFrame = fn }
}

// New creates a renderer. A nil host makes the surface keep its own size.
// A nil surface, typed or not, makes Mount a no-op.
func New(surface Surface, host Host, sched Scheduler, opts ...Option) *Renderer {
	if dc, ok := surface.(*gg.Context); ok && dc == nil {
		surface = nil
	}
	r := &Renderer{
		surface:     surface,
		host:        host,
		sched:       sched,
		logger:      slog.New(slog.DiscardHandler),
		bands:       append([]Band(nil), DefaultBands...),
		step:        DefaultStep,
		scale:       1,
		gridSpacing: DefaultGridSpacing,
		gridColor:   DefaultGridColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount sizes the surface, starts listening for resizes, paints the first
// frame and schedules the next. Mounting twice, or after Unmount, does
// nothing.
func (r *Renderer) Mount() {
	r.mu.Lock()
	if r.mounted || r.torn || r.surface == nil || r.sched == nil {
		r.mu.Unlock()
		return
	}
	r.mounted = true
	r.resizeLocked()
	r.mu.Unlock()

	var unlisten func()
	if r.host != nil {
		unlisten = r.host.OnResize(r.handleResize)
	}

	r.mu.Lock()
	if r.torn {
		r.mu.Unlock()
		if unlisten != nil {
			unlisten()
		}
		return
	}
	r.unlisten = unlisten
	painted := r.tickLocked()
	r.mu.Unlock()
	r.frameDone(painted)
}

// Unmount stops the animation. After it returns the surface is never
// touched again.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.torn {
		return
	}
	r.torn = true
	if r.unlisten != nil {
		r.unlisten()
		r.unlisten = nil
	}
	if r.hasPending {
		r.sched.CancelFrame(r.pending)
		r.hasPending = false
	}
}

// Increment returns the animation clock.
func (r *Renderer) Increment() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.increment
}

// Frames returns the number of painted frames.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Renderer) tick() {
	r.mu.Lock()
	r.hasPending = false
	if r.torn {
		r.mu.Unlock()
		return
	}
	painted := r.tickLocked()
	r.mu.Unlock()
	r.frameDone(painted)
}

// tickLocked advances the clock, paints and schedules the next frame. It
// reports whether a frame was painted.
func (r *Renderer) tickLocked() bool {
	r.increment += r.step
	painted := r.drawLocked()
	if painted {
		r.frames++
	}
	r.pending = r.sched.RequestFrame(r.tick)
	r.hasPending = true
	return painted
}

func (r *Renderer) frameDone(painted bool) {
	if painted && r.onFrame != nil {
		r.onFrame()
	}
}

func (r *Renderer) handleResize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.torn {
		return
	}
	r.resizeLocked()
}

func (r *Renderer) resizeLocked() {
	w, h := r.measure()
	if w <= 0 || h <= 0 {
		return
	}
	if err := r.surface.Resize(w, h); err != nil {
		r.logger.Debug("surface resize failed", "width", w, "height", h, "error", err)
	}
}

// measure prefers the container size and falls back to the viewport per
// dimension.
func (r *Renderer) measure() (int, int) {
	if r.host == nil {
		return r.surface.Width(), r.surface.Height()
	}
	w, h := r.host.ContainerSize()
	vw, vh := r.host.ViewportSize()
	if w <= 0 {
		w = vw
	}
	if h <= 0 {
		h = vh
	}
	return w, h
}

func (r *Renderer) drawLocked() bool {
	s := r.surface
	w, h := float64(s.Width()), float64(s.Height())
	if w <= 0 || h <= 0 {
		return false
	}

	s.Clear()
	if bg := r.background; bg != nil {
		s.SetRGBA(bg.R, bg.G, bg.B, bg.A)
		s.MoveTo(0, 0)
		s.LineTo(w, 0)
		s.LineTo(w, h)
		s.LineTo(0, h)
		s.ClosePath()
		r.check("background", s.Fill())
	}

	if r.gridSpacing > 0 {
		c := r.gridColor
		s.SetRGBA(c.R, c.G, c.B, c.A)
		s.SetLineWidth(1)
		for x := 0.0; x < w; x += r.gridSpacing {
			s.MoveTo(x, 0)
			s.LineTo(x, h)
			r.check("grid", s.Stroke())
		}
		for y := 0.0; y < h; y += r.gridSpacing {
			s.MoveTo(0, y)
			s.LineTo(w, y)
			r.check("grid", s.Stroke())
		}
	}

	for _, b := range r.bands {
		s.MoveTo(0, h/2)
		for x := 0.0; x < w; x++ {
			s.LineTo(x, Edge(b, x, w, h, r.increment, r.scale))
		}
		s.LineTo(w, h)
		s.LineTo(0, h)
		s.ClosePath()
		s.SetRGBA(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
		r.check("band", s.Fill())
	}
	return true
}

func (r *Renderer) check(what string, err error) {
	if err != nil {
		r.logger.Debug("draw failed", "what", what, "error", err)
	}
}
