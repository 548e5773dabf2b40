package sketch

import "math"

const (
	DefaultCellWidth  = 16.0
	DefaultCellHeight = 24.0
	DefaultFontSize   = 12.0

	// MaxCells bounds the size of a grid. Larger layouts build an empty grid.
	MaxCells = 1 << 22
)

// Cell is one rectangle of the grid. X and Y are the center of the cell in
// window coordinates (origin top-left, y down). Geometry is fixed once the
// grid is built; Color and Touched are changed by the touch reactor only.
type Cell struct {
	X, Y    float32
	W, H    float32
	Color   RGB
	Touched bool
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float32
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid is a rows x cols layout of cells stored row-major. Its fields are
// set by BuildGrid and must be treated as read-only.
type Grid struct {
	Rows, Cols            int
	CellWidth, CellHeight float32
	WindowWidth           float32
	WindowHeight          float32
	cells                 []Cell
}

// BuildGrid lays out ceil(windowW/cellW) x ceil(windowH/cellH) cells so that
// their union is centered on the window center. Each cell starts untouched
// with a random colour. Non-positive sizes, and layouts of more than MaxCells
// cells, produce an empty grid.
func BuildGrid(windowW, windowH, cellW, cellH float32, rng Source) *Grid {
	g := &Grid{
		CellWidth:    cellW,
		CellHeight:   cellH,
		WindowWidth:  windowW,
		WindowHeight: windowH,
	}
	if !positive(windowW) || !positive(windowH) || !positive(cellW) || !positive(cellH) {
		return g
	}

	cols := math.Ceil(float64(windowW) / float64(cellW))
	rows := math.Ceil(float64(windowH) / float64(cellH))
	if cols > MaxCells || rows > MaxCells || cols*rows > MaxCells {
		return g
	}
	g.Cols, g.Rows = int(cols), int(rows)

	centerX, centerY := windowW/2, windowH/2
	startX := centerX - float32(g.Cols)*cellW/2 + cellW/2
	startY := centerY - float32(g.Rows)*cellH/2 + cellH/2

	g.cells = make([]Cell, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			g.cells[row*g.Cols+col] = Cell{
				X:     startX + float32(col)*cellW,
				Y:     startY + float32(row)*cellH,
				W:     cellW,
				H:     cellH,
				Color: RandomColor(rng),
			}
		}
	}
	return g
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0
}

// At returns the cell at row, col. It panics when out of range, like a slice.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		panic("sketch: cell index out of range")
	}
	return &g.cells[row*g.Cols+col]
}

// Cells returns the cells in row-major order. The slice aliases the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Bounds returns the union of all cell boxes.
func (g *Grid) Bounds() Rect {
	if g.Empty() {
		return Rect{X: g.WindowWidth / 2, Y: g.WindowHeight / 2}
	}
	first := g.cells[0]
	return Rect{
		X: first.X - first.W/2,
		Y: first.Y - first.H/2,
		W: float32(g.Cols) * g.CellWidth,
		H: float32(g.Rows) * g.CellHeight,
	}
}

// CellAt returns the row and column of the cell containing the window point
// (x, y). ok is false when the point lies outside the grid.
func (g *Grid) CellAt(x, y float32) (row, col int, ok bool) {
	if g.Empty() {
		return 0, 0, false
	}
	b := g.Bounds()
	if x < b.X || y < b.Y || x >= b.X+b.W || y >= b.Y+b.H {
		return 0, 0, false
	}
	col = int((x - b.X) / g.CellWidth)
	row = int((y - b.Y) / g.CellHeight)
	// float rounding at the far edge
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return row, col, true
}

// TouchedCount returns how many cells have been touched.
func (g *Grid) TouchedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Touched {
			n++
		}
	}
	return n
}
