// Package viz provides terminal drawing primitives for the gridfit TUI.
//
//   - [Canvas]: braille pixel canvas; implements waves.Surface so the
//     backdrop renderer can paint into a terminal
//   - [Theme] and [Styles]: lipgloss palettes, four built in
//   - [GradientText], [Separator]: small decorations
package viz
