package fitgame

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/san-kum/gridfit/internal/curve"
)

// DefaultVictoryDelay is how long a fully matched board is shown before the
// victory overlay.
const DefaultVictoryDelay = time.Second

// Game is the challenge state machine.
type Game struct {
	mu sync.Mutex

	regions []Region
	clock   clockwork.Clock
	delay   time.Duration
	logger  *slog.Logger

	onChange     func(Snapshot)
	onTransition func(from, to Mode)

	mode    Mode
	areal   curve.Kind
	choices map[RegionID]curve.Kind
	active  RegionID

	timer clockwork.Timer
	// armed is bumped whenever the victory timer is cancelled or re-armed;
	// a firing timer only acts if its generation is still current.
	armed  uint64
	closed bool
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source of the victory timer.
func WithClock(c clockwork.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithVictoryDelay overrides DefaultVictoryDelay.
func WithVictoryDelay(d time.Duration) Option {
	return func(g *Game) {
		if d >= 0 {
			g.delay = d
		}
	}
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOnChange registers a callback invoked after every applied action and
// after the timer-driven victory.
func WithOnChange(fn func(Snapshot)) Option {
	return func(g *Game) { g.onChange = fn }
}

// WithOnTransition registers a callback invoked whenever the mode changes.
func WithOnTransition(fn func(from, to Mode)) Option {
	return func(g *Game) { g.onTransition = fn }
}

// New creates a game in ModeStart.
func New(opts ...Option) *Game {
	g := &Game{
		regions: append([]Region(nil), DefaultRegions...),
		clock:   clockwork.NewRealClock(),
		delay:   DefaultVictoryDelay,
		logger:  slog.New(slog.DiscardHandler),
		choices: make(map[RegionID]curve.Kind),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartExperiment moves from ModeStart to ModeAreal.
func (g *Game) StartExperiment() bool {
	return g.apply(actStart, input{})
}

// SelectArealDistribution sets the single basin-wide choice. Valid in
// ModeAreal only; reselecting overwrites the previous choice.
func (g *Game) SelectArealDistribution(kind curve.Kind) bool {
	return g.apply(actSelectAreal, input{kind: kind})
}

// TryGridwise moves from ModeAreal to ModeGridwise once an areal choice has
// been made.
func (g *Game) TryGridwise() bool {
	return g.apply(actTryGridwise, input{})
}

// ActivateRegion selects the region the picker configures. Valid in
// ModeGridwise only.
func (g *Game) ActivateRegion(id RegionID) bool {
	return g.apply(actActivate, input{region: id})
}

// SelectRegionDistribution sets the active region's choice. It is a no-op
// while no region is active.
func (g *Game) SelectRegionDistribution(kind curve.Kind) bool {
	return g.apply(actSelectRegion, input{kind: kind})
}

// Replay returns to ModeStart from any mode and clears every choice.
func (g *Game) Replay() bool {
	return g.apply(actReplay, input{})
}

// Close cancels a pending victory timer. Later actions still work, but no
// timer will be armed again.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.cancelTimerLocked()
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// ArealErrorCount is the number of regions the areal choice misfits.
func (g *Game) ArealErrorCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ArealErrors(g.regions, g.areal)
}

// GridErrorCount is the number of regions whose own choice misfits.
func (g *Game) GridErrorCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GridErrors(g.regions, g.choices)
}

// Regions returns a copy of the configured regions.
func (g *Game) Regions() []Region {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Region(nil), g.regions...)
}

// VictoryPending reports whether a victory timer is armed.
func (g *Game) VictoryPending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

func (g *Game) apply(act action, in input) bool {
	g.mu.Lock()
	h, ok := dispatch[g.mode][act]
	if !ok {
		mode := g.mode
		g.mu.Unlock()
		g.logger.Debug("action ignored", "action", act.String(), "mode", mode.String())
		return false
	}
	from := g.mode
	applied := h(g, in)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	if applied {
		g.notify(act.String(), from, snap)
	}
	return applied
}

func (g *Game) notify(cause string, from Mode, snap Snapshot) {
	if from != snap.Mode {
		g.logger.Info("mode changed", "from", from.String(), "to", snap.Mode.String(), "cause", cause)
		if g.onTransition != nil {
			g.onTransition(from, snap.Mode)
		}
	}
	if g.onChange != nil {
		g.onChange(snap)
	}
}

func (g *Game) doStart(input) bool {
	g.mode = ModeAreal
	return true
}

func (g *Game) doSelectAreal(in input) bool {
	if !in.kind.Valid() {
		return false
	}
	g.areal = in.kind
	return true
}

func (g *Game) doTryGridwise(input) bool {
	if g.areal == curve.Unset {
		return false
	}
	g.mode = ModeGridwise
	return true
}

func (g *Game) doActivate(in input) bool {
	if !g.hasRegionLocked(in.region) {
		return false
	}
	g.active = in.region
	return true
}

func (g *Game) doSelectRegion(in input) bool {
	if g.active == 0 || !in.kind.Valid() {
		return false
	}
	g.choices[g.active] = in.kind
	g.rearmLocked()
	return true
}

func (g *Game) doReplay(input) bool {
	g.cancelTimerLocked()
	g.mode = ModeStart
	g.areal = curve.Unset
	g.choices = make(map[RegionID]curve.Kind)
	g.active = 0
	return true
}

func (g *Game) hasRegionLocked(id RegionID) bool {
	for _, r := range g.regions {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (g *Game) cancelTimerLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.armed++
}

// rearmLocked cancels any pending victory and arms a new one if the board
// is fully matched.
func (g *Game) rearmLocked() {
	g.cancelTimerLocked()
	if g.closed || g.mode != ModeGridwise || GridErrors(g.regions, g.choices) != 0 {
		return
	}
	gen := g.armed
	g.timer = g.clock.AfterFunc(g.delay, func() { g.fireVictory(gen) })
	g.logger.Debug("victory armed", "delay", g.delay)
}

func (g *Game) fireVictory(gen uint64) {
	g.mu.Lock()
	if gen != g.armed || g.mode != ModeGridwise || GridErrors(g.regions, g.choices) != 0 {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.mode = ModeVictory
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify("victory_timer", ModeGridwise, snap)
}
