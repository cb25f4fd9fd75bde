// Package fitgame implements the "Fit the Curve" challenge: a small state
// machine that contrasts one distribution for the whole basin (areal) with
// one distribution per grid cell (grid-wise).
//
// A [Game] moves through four modes:
//
//	ModeStart -> ModeAreal -> ModeGridwise -> ModeVictory
//	    ^                                        |
//	    +---------------- Replay ----------------+
//
// Every mutating operation is looked up in a dispatch table keyed by the
// current mode. Operations without an entry are no-ops and return false.
//
// The transition into ModeVictory is not immediate: once every region's
// choice matches its canonical family a one-shot timer is armed, and the
// win condition is checked again when it fires. Any change to the per-region
// choices cancels and re-arms the timer.
//
// # Thread Safety
//
// Game is safe for concurrent use. The victory timer fires on the clock's
// goroutine; change callbacks are invoked without the internal lock held.
package fitgame
