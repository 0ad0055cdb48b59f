package viz

import (
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

// Canvas renders a pixel grid into braille cells. Each terminal cell
// packs 2x4 pixels, so a WxH pixel display needs ceil(W/2) x ceil(H/4)
// cells.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas allocates a canvas for a display of w x h pixels.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  (w + 1) / 2,
		Height: (h + 3) / 4,
	}
	c.Grid = make([][]rune, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the pixel at (x, y). Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// FillRect turns on every pixel of the w x h rectangle anchored at (x, y).
func (c *Canvas) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.Set(px, py)
		}
	}
}

// StrokeRect turns on only the outline of the w x h rectangle anchored
// at (x, y). Used to pick out the player body.
func (c *Canvas) StrokeRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		c.Set(px, y)
		c.Set(px, y+h-1)
	}
	for py := y + 1; py < y+h-1; py++ {
		c.Set(x, py)
		c.Set(x+w-1, py)
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
