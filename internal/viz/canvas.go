package viz

import (
	"errors"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

var errCanvasSize = errors.New("viz: canvas size must be positive")

// Canvas is a braille pixel canvas. Each cell holds 2x4 sub-pixels, so a
// canvas of c columns and r rows draws on (2c) x (4r) pixels.
//
// Canvas implements waves.Surface. It has a single ink, so colour and alpha
// are ignored; fills draw the outline of the path except for edges lying on
// the canvas border.
type Canvas struct {
	cols, rows int
	grid       [][]rune

	path [][]pt
}

type pt struct{ x, y float64 }

// NewCanvas creates a canvas of cols x rows character cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.alloc(cols, rows)
	return c
}

func (c *Canvas) alloc(cols, rows int) {
	c.cols, c.rows = cols, rows
	c.grid = make([][]rune, rows)
	for i := range c.grid {
		c.grid[i] = make([]rune, cols)
	}
	c.Clear()
}

// Cols returns the width in character cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in character cells.
func (c *Canvas) Rows() int { return c.rows }

// Width returns the width in sub-pixels.
func (c *Canvas) Width() int { return c.cols * 2 }

// Height returns the height in sub-pixels.
func (c *Canvas) Height() int { return c.rows * 4 }

// Resize reallocates the canvas to hold at least w x h sub-pixels.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return errCanvasSize
	}
	cols, rows := (w+1)/2, (h+3)/4
	if cols == c.cols && rows == c.rows {
		return nil
	}
	c.alloc(cols, rows)
	c.path = nil
	return nil
}

// Set lights the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.cols || row >= c.rows {
		return
	}

	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Lit reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.cols || y/4 >= c.rows {
		return false
	}
	return c.grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) SetRGBA(_, _, _, _ float64) {}
func (c *Canvas) SetLineWidth(float64)      {}

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, []pt{{x, y}})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], pt{x, y})
}

func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	sub := c.path[len(c.path)-1]
	if len(sub) > 1 {
		c.path[len(c.path)-1] = append(sub, sub[0])
	}
}

// Stroke draws every segment of the current path and clears it.
func (c *Canvas) Stroke() error {
	c.drawPath(false)
	return nil
}

// Fill draws the path outline, skipping segments along the canvas border,
// and clears it.
func (c *Canvas) Fill() error {
	c.drawPath(true)
	return nil
}

func (c *Canvas) drawPath(skipBorder bool) {
	w, h := float64(c.Width()), float64(c.Height())
	onBorder := func(p pt) bool {
		return p.x <= 0 || p.y <= 0 || p.x >= w || p.y >= h
	}
	for _, sub := range c.path {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			if skipBorder && onBorder(a) && onBorder(b) {
				continue
			}
			c.DrawLine(round(a.x), round(a.y), round(b.x), round(b.y))
		}
	}
	c.path = c.path[:0]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func round(v float64) int {
	return int(math.Round(v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
