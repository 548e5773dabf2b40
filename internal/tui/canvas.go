package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/siqnastee/internal/sketch"
)

type termCell struct {
	bg, fg sketch.RGB
	ch     rune
}

// canvas rasterises sketch commands onto terminal cells, one grid unit per
// character.
type canvas struct {
	width, height int
	cells         []termCell
}

func newCanvas(w, h int) *canvas {
	return &canvas{width: w, height: h, cells: make([]termCell, w*h)}
}

func (c *canvas) set(x, y int) *termCell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

func (c *canvas) Clear(col sketch.RGB) {
	for i := range c.cells {
		c.cells[i] = termCell{bg: col, fg: col, ch: ' '}
	}
}

func (c *canvas) FillRect(x, y, w, h float32, col sketch.RGB) {
	x0, y0 := int(x), int(y)
	x1, y1 := int(x+w), int(y+h)
	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			if cell := c.set(tx, ty); cell != nil {
				cell.bg = col
			}
		}
	}
}

func (c *canvas) DrawGlyph(r rune, cx, cy, _ float32, col sketch.RGB) {
	if cell := c.set(int(cx), int(cy)); cell != nil {
		cell.ch = r
		cell.fg = col
	}
}

// Lines renders the first n rows.
func (c *canvas) Lines(n int) []string {
	if n > c.height {
		n = c.height
	}
	lines := make([]string, 0, n)
	var b strings.Builder
	for y := 0; y < n; y++ {
		b.Reset()
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(cell.bg.Hex())).
				Foreground(lipgloss.Color(cell.fg.Hex()))
			b.WriteString(style.Render(string(cell.ch)))
		}
		lines = append(lines, b.String())
	}
	return lines
}
