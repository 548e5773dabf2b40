package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h, cw, ch float32
		rows, cols   int
	}{
		{"1024x768", 1024, 768, 16, 24, 32, 64},
		{"exact fit", 160, 240, 16, 24, 10, 10},
		{"rounds up", 161, 241, 16, 24, 11, 11},
		{"smaller than one cell", 3, 5, 16, 24, 1, 1},
		{"unit cells", 80, 24, 1, 1, 24, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGrid(tt.w, tt.h, tt.cw, tt.ch, NewSource(1))
			assert.Equal(t, tt.rows, g.Rows)
			assert.Equal(t, tt.cols, g.Cols)
			assert.Equal(t, tt.rows*tt.cols, g.Len())
		})
	}
}

func TestBuildGrid_Degenerate(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name         string
		w, h, cw, ch float32
	}{
		{"zero window", 0, 0, 16, 24},
		{"zero width", 0, 768, 16, 24},
		{"negative height", 1024, -1, 16, 24},
		{"zero cell", 1024, 768, 0, 24},
		{"negative cell", 1024, 768, 16, -24},
		{"nan", nan, 768, 16, 24},
		{"huge window", 1e20, 1e20, 16, 24},
		{"tiny cells", 1024, 768, 1e-6, 1e-6},
		{"one row over the cap", MaxCells + 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGrid(tt.w, tt.h, tt.cw, tt.ch, NewSource(1))
			assert.Zero(t, g.Rows)
			assert.Zero(t, g.Cols)
			assert.True(t, g.Empty())
		})
	}
}

func TestBuildGrid_Centered(t *testing.T) {
	sizes := [][4]float32{
		{1024, 768, 16, 24},
		{1000, 700, 16, 24},
		{33, 47, 16, 24},
		{640, 480, 7, 13},
	}

	for _, s := range sizes {
		g := BuildGrid(s[0], s[1], s[2], s[3], NewSource(2))
		cx, cy := g.Bounds().Center()
		assert.InDelta(t, s[0]/2, cx, 1e-3, "size %v", s)
		assert.InDelta(t, s[1]/2, cy, 1e-3, "size %v", s)
	}
}

func TestBuildGrid_Geometry(t *testing.T) {
	g := BuildGrid(1024, 768, 16, 24, NewSource(3))

	first := g.At(0, 0)
	assert.Equal(t, float32(8), first.X)
	assert.Equal(t, float32(12), first.Y)

	last := g.At(g.Rows-1, g.Cols-1)
	assert.Equal(t, float32(1016), last.X)
	assert.Equal(t, float32(756), last.Y)

	for _, c := range g.Cells() {
		require.Equal(t, float32(16), c.W)
		require.Equal(t, float32(24), c.H)
		require.False(t, c.Touched)
		require.True(t, inUnit(c.Color), "color %v", c.Color)
	}
}

func TestBuildGrid_SameGeometryDifferentColors(t *testing.T) {
	a := BuildGrid(320, 240, 16, 24, NewSource(10))
	b := BuildGrid(320, 240, 16, 24, NewSource(11))
	require.Equal(t, a.Len(), b.Len())

	sameColors := 0
	for i := range a.Cells() {
		ca, cb := a.Cells()[i], b.Cells()[i]
		assert.Equal(t, ca.X, cb.X)
		assert.Equal(t, ca.Y, cb.Y)
		assert.Equal(t, ca.W, cb.W)
		assert.Equal(t, ca.H, cb.H)
		if ca.Color == cb.Color {
			sameColors++
		}
	}
	assert.Less(t, sameColors, a.Len())
}

func TestGrid_CellAt(t *testing.T) {
	g := BuildGrid(100, 100, 16, 24, NewSource(4))
	b := g.Bounds()

	row, col, ok := g.CellAt(b.X, b.Y)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	for _, c := range []struct{ row, col int }{{0, 0}, {2, 3}, {g.Rows - 1, g.Cols - 1}} {
		cell := g.At(c.row, c.col)
		row, col, ok := g.CellAt(cell.X, cell.Y)
		require.True(t, ok)
		assert.Equal(t, c.row, row)
		assert.Equal(t, c.col, col)
	}

	_, _, ok = g.CellAt(b.X-1, b.Y)
	assert.False(t, ok)
	_, _, ok = g.CellAt(b.X+b.W, b.Y+1)
	assert.False(t, ok)

	_, _, ok = BuildGrid(0, 0, 16, 24, NewSource(4)).CellAt(0, 0)
	assert.False(t, ok)
}

func TestGrid_AtPanicsOutOfRange(t *testing.T) {
	g := BuildGrid(32, 48, 16, 24, NewSource(5))
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
}

func inUnit(c RGB) bool {
	for _, v := range []float32{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func TestBuildGrid_FieldsMatchCells(t *testing.T) {
	for _, size := range [][2]float32{{1024, 768}, {1e20, 1e20}, {0, 0}} {
		g := BuildGrid(size[0], size[1], 16, 24, NewSource(1))
		assert.Len(t, g.Cells(), g.Rows*g.Cols)
		assert.Equal(t, g.Len(), g.Rows*g.Cols)
	}
}
