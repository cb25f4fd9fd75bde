// Package curve provides the closed-form distribution shapes used by the
// fitting challenge.
//
// Three families are modelled, each as a unitless shape on x in [-3, 3]:
//
//   - [Normal]: symmetric bell
//   - [Gamma]: right-skewed unimodal
//   - [GEV]: sharp peak with a heavy tail (Gumbel form)
//
// [Path] samples a shape into screen coordinates (y grows downwards) and
// [SVGPath] turns the samples into an SVG path string. [Histogram] produces
// jittered bar heights that loosely follow a shape; jitter is cosmetic and
// never feeds into scoring.
package curve
