// Package render draws sky frames onto a rune canvas and exports them as
// styled terminal output, plain ASCII, or JSON.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// backgroundColor is the very dark canvas background.
const backgroundColor = lipgloss.Color("236")

// Canvas is a fixed-size grid of runes with per-cell foreground colors.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
	colors [][]lipgloss.Color
}

// NewCanvas creates an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
			colors[y][x] = backgroundColor
		}
	}
	return &Canvas{width: width, height: height, cells: cells, colors: colors}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set places a rune at a cell. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

// At returns the rune at a cell, or a space when out of bounds.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// SetString writes a horizontal label starting at a cell, clipping at the
// canvas edge.
func (c *Canvas) SetString(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, color)
	}
}

// String renders the canvas with terminal colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(c.cells[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Plain renders the canvas without any styling, for headless output.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.WriteString(strings.TrimRight(string(c.cells[y]), " "))
		b.WriteString("\n")
	}
	return b.String()
}
