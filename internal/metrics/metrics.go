// Package metrics observes a running sketch once per frame and reduces what
// it sees to a single number.
package metrics

import "github.com/san-kum/siqnastee/internal/sketch"

type Metric interface {
	Name() string
	Observe(s *sketch.Sketch)
	Value() float64
	Reset()
}

// Coverage is the fraction of cells touched at the last observation.
type Coverage struct {
	name    string
	touched int
	cells   int
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(s *sketch.Sketch) {
	g := s.Grid()
	c.touched = g.TouchedCount()
	c.cells = g.Len()
}

func (c *Coverage) Value() float64 {
	if c.cells == 0 {
		return 0
	}
	return float64(c.touched) / float64(c.cells)
}

func (c *Coverage) Reset() {
	c.touched = 0
	c.cells = 0
}

// TouchRate is the mean number of pointer moves handled per observed frame.
type TouchRate struct {
	name    string
	first   int
	last    int
	samples int
}

func NewTouchRate() *TouchRate {
	return &TouchRate{name: "touch_rate"}
}

func (r *TouchRate) Name() string { return r.name }

func (r *TouchRate) Observe(s *sketch.Sketch) {
	if r.samples == 0 {
		r.first = s.Touches()
	}
	r.last = s.Touches()
	r.samples++
}

func (r *TouchRate) Value() float64 {
	if r.samples < 2 {
		return 0
	}
	return float64(r.last-r.first) / float64(r.samples-1)
}

func (r *TouchRate) Reset() {
	r.first = 0
	r.last = 0
	r.samples = 0
}
