package sketch

// Options configure a Sketch.
type Options struct {
	CellWidth  float32
	CellHeight float32
	FontSize   float32
	Policy     Policy
	Touch      TouchMode
	// PinColor is stored into a touched cell under RandomUnlessPinned.
	PinColor RGB
	// Seed for the random source; 0 seeds from the clock.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		FontSize:   DefaultFontSize,
		Policy:     RandomUnlessPinned,
		Touch:      TouchRandom,
		PinColor:   Black,
	}
}

// Sketch owns a grid together with the rules that repaint and touch it.
type Sketch struct {
	opts    Options
	grid    *Grid
	rng     Source
	buf     []Command
	touches int
}

// New builds the grid for a window of the given size.
func New(opts Options, windowW, windowH float32) *Sketch {
	return NewWithSource(opts, windowW, windowH, NewSource(opts.Seed))
}

// NewWithSource is New with an explicit random source. It panics if the
// policy or touch mode is not one of the declared values.
func NewWithSource(opts Options, windowW, windowH float32, rng Source) *Sketch {
	if _, ok := policyNames[opts.Policy]; !ok {
		panic("sketch: unknown " + opts.Policy.String())
	}
	if _, ok := touchModeNames[opts.Touch]; !ok {
		panic("sketch: unknown " + opts.Touch.String())
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	g := BuildGrid(windowW, windowH, opts.CellWidth, opts.CellHeight, rng)
	return &Sketch{
		opts: opts,
		grid: g,
		rng:  rng,
		buf:  make([]Command, 0, 1+2*g.Len()),
	}
}

func (s *Sketch) Grid() *Grid       { return s.grid }
func (s *Sketch) Options() Options  { return s.opts }
func (s *Sketch) Touches() int      { return s.touches }
func (s *Sketch) TouchedCount() int { return s.grid.TouchedCount() }

// Render produces the draw commands of one frame: a black clear followed by
// a rectangle and a glyph per cell, row by row. The returned slice is reused
// by the next call. Render does not modify the grid.
func (s *Sketch) Render() []Command {
	cmds := append(s.buf[:0], Command{Kind: CmdClear, Color: Black})
	cells := s.grid.cells
	for i := range cells {
		c := &cells[i]
		cmds = append(cmds,
			Command{
				Kind:  CmdRect,
				X:     c.X,
				Y:     c.Y,
				W:     c.W,
				H:     c.H,
				Color: s.fill(c),
			},
			Command{
				Kind:     CmdGlyph,
				X:        c.X,
				Y:        c.Y,
				Glyph:    RandomGlyph(s.rng),
				FontSize: s.opts.FontSize,
				Color:    RandomColor(s.rng),
			},
		)
	}
	s.buf = cmds
	return cmds
}

func (s *Sketch) fill(c *Cell) RGB {
	switch s.opts.Policy {
	case RandomUnlessPinned:
		if c.Touched {
			return c.Color
		}
		return RandomColor(s.rng)
	case BlackUntilTouched:
		if c.Touched {
			return RandomColor(s.rng)
		}
		return Black
	}
	panic("sketch: unknown " + s.opts.Policy.String())
}

// PointerMoved reacts to one pointer-move event by touching a cell. Under
// TouchRandom the coordinates are ignored; under TouchCursor points outside
// the grid are ignored. It reports whether a cell was touched.
func (s *Sketch) PointerMoved(x, y float32) bool {
	if s.grid.Empty() {
		return false
	}
	var row, col int
	switch s.opts.Touch {
	case TouchCursor:
		var ok bool
		row, col, ok = s.grid.CellAt(x, y)
		if !ok {
			return false
		}
	case TouchRandom:
		row = s.rng.Intn(s.grid.Rows)
		col = s.rng.Intn(s.grid.Cols)
	default:
		panic("sketch: unknown " + s.opts.Touch.String())
	}
	s.Touch(row, col)
	return true
}

// Touch marks the cell at row, col as touched.
func (s *Sketch) Touch(row, col int) {
	c := s.grid.At(row, col)
	c.Touched = true
	if s.opts.Policy == RandomUnlessPinned {
		c.Color = s.opts.PinColor
	}
	s.touches++
}
