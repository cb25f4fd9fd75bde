// Package waves draws the animated probability-wave backdrop.
//
// A [Renderer] repaints a [Surface] from scratch on every tick: a faint
// square grid, then a translucent filled band per [Band] whose upper edge is
// a clock-driven sinusoid plus a drifting Gaussian bump. The renderer owns
// its pending frame handle; [Renderer.Unmount] cancels it and guarantees
// that no surface call happens after it returns.
//
// Collaborators are small interfaces so the same renderer runs in a
// terminal, headless into a PNG, or under test:
//
//   - [Surface]: drawing target, satisfied by *gg.Context
//   - [Host]: container and viewport sizes plus resize notifications
//   - [Scheduler]: register and cancel the next frame
//
// The backdrop is decorative. A missing surface or a zero-sized one turns
// the renderer into a silent no-op, and drawing errors are only logged.
package waves
