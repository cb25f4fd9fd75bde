package fitgame

import "github.com/san-kum/gridfit/internal/curve"

// Mode is the phase of the challenge.
type Mode int

const (
	ModeStart Mode = iota
	ModeAreal
	ModeGridwise
	ModeVictory
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeAreal:
		return "areal"
	case ModeGridwise:
		return "gridwise"
	case ModeVictory:
		return "victory"
	}
	return "unknown"
}

type action int

const (
	actStart action = iota
	actSelectAreal
	actTryGridwise
	actActivate
	actSelectRegion
	actReplay
)

func (a action) String() string {
	return [...]string{"start", "select_areal", "try_gridwise", "activate", "select_region", "replay"}[a]
}

// input carries the argument of an action; unused fields stay zero.
type input struct {
	kind   curve.Kind
	region RegionID
}

// handler mutates g under its lock and reports whether the action applied.
type handler func(g *Game, in input) bool

// dispatch lists the actions each mode accepts. Anything missing is a no-op.
var dispatch = map[Mode]map[action]handler{
	ModeStart: {
		actStart:  (*Game).doStart,
		actReplay: (*Game).doReplay,
	},
	ModeAreal: {
		actSelectAreal: (*Game).doSelectAreal,
		actTryGridwise: (*Game).doTryGridwise,
		actReplay:      (*Game).doReplay,
	},
	ModeGridwise: {
		actActivate:     (*Game).doActivate,
		actSelectRegion: (*Game).doSelectRegion,
		actReplay:       (*Game).doReplay,
	},
	ModeVictory: {
		actReplay: (*Game).doReplay,
	},
}
