// Package paper holds the published figures of the grid-wise SRI study and
// renders them for the terminal.
//
// The data is fixed: it summarises the paper and is never recomputed.
// Classify maps an SRI value onto the severity scale used throughout.
package paper
