package sketch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/siqnastee/internal/sketch"
)

func newSketch(policy sketch.Policy, touch sketch.TouchMode, w, h float32) *sketch.Sketch {
	opts := sketch.DefaultOptions()
	opts.Policy = policy
	opts.Touch = touch
	opts.Seed = 42
	return sketch.New(opts, w, h)
}

// fills returns the Rect colours of a frame in row-major order.
func fills(cmds []sketch.Command) []sketch.RGB {
	var out []sketch.RGB
	for _, c := range cmds {
		if c.Kind == sketch.CmdRect {
			out = append(out, c.Color)
		}
	}
	return out
}

type recorder struct {
	clears, rects, glyphs int
	lastRect              [4]float32
}

func (r *recorder) Clear(sketch.RGB) { r.clears++ }

func (r *recorder) FillRect(x, y, w, h float32, _ sketch.RGB) {
	r.rects++
	r.lastRect = [4]float32{x, y, w, h}
}

func (r *recorder) DrawGlyph(rune, float32, float32, float32, sketch.RGB) { r.glyphs++ }

var _ = Describe("Sketch", func() {
	Context("with a 1024x768 window and default cells", func() {
		var s *sketch.Sketch

		BeforeEach(func() {
			s = newSketch(sketch.RandomUnlessPinned, sketch.TouchRandom, 1024, 768)
		})

		It("lays out 64 columns by 32 rows of untouched cells", func() {
			g := s.Grid()
			Expect(g.Cols).To(Equal(64))
			Expect(g.Rows).To(Equal(32))
			Expect(g.Len()).To(Equal(2048))
			Expect(s.TouchedCount()).To(BeZero())
		})

		It("emits a clear then a rect and glyph per cell", func() {
			cmds := s.Render()
			Expect(cmds).To(HaveLen(1 + 2*2048))
			Expect(cmds[0].Kind).To(Equal(sketch.CmdClear))
			Expect(cmds[0].Color).To(Equal(sketch.Black))
			for i := 1; i < len(cmds); i += 2 {
				Expect(cmds[i].Kind).To(Equal(sketch.CmdRect))
				Expect(cmds[i+1].Kind).To(Equal(sketch.CmdGlyph))
				Expect(cmds[i+1].X).To(Equal(cmds[i].X))
				Expect(cmds[i+1].Y).To(Equal(cmds[i].Y))
				Expect(cmds[i+1].FontSize).To(BeNumerically("==", 12))
			}
		})

		It("visits cells row by row", func() {
			cmds := s.Render()
			g := s.Grid()
			second := g.At(0, 1)
			Expect(cmds[3].X).To(Equal(second.X))
			Expect(cmds[3].Y).To(Equal(second.Y))
		})

		It("does not change stored colors while rendering", func() {
			before := append([]sketch.Cell(nil), s.Grid().Cells()...)
			s.Render()
			s.Render()
			Expect(s.Grid().Cells()).To(Equal(before))
		})

		It("never decreases the touched count", func() {
			prev := 0
			for i := 0; i < 500; i++ {
				Expect(s.PointerMoved(0, 0)).To(BeTrue())
				n := s.TouchedCount()
				Expect(n).To(BeNumerically(">=", prev))
				Expect(n - prev).To(BeNumerically("<=", 1))
				prev = n
			}
			Expect(s.Touches()).To(Equal(500))
		})
	})

	Context("random-unless-pinned", func() {
		var s *sketch.Sketch

		BeforeEach(func() {
			s = newSketch(sketch.RandomUnlessPinned, sketch.TouchRandom, 160, 240)
		})

		It("pins touched cells to the pin color", func() {
			s.Touch(3, 4)
			c := s.Grid().At(3, 4)
			Expect(c.Touched).To(BeTrue())
			Expect(c.Color).To(Equal(sketch.Black))
		})

		It("renders touched cells with a stable color across frames", func() {
			s.Touch(0, 0)
			idx := 0
			first := fills(s.Render())[idx]
			second := fills(s.Render())[idx]
			Expect(first).To(Equal(second))
			Expect(first).To(Equal(sketch.Black))
		})

		It("flickers untouched cells", func() {
			a := fills(s.Render())
			b := fills(s.Render())
			Expect(a).NotTo(Equal(b))
		})
	})

	Context("black-until-touched", func() {
		var s *sketch.Sketch

		BeforeEach(func() {
			s = newSketch(sketch.BlackUntilTouched, sketch.TouchRandom, 160, 240)
		})

		It("paints untouched cells black", func() {
			for _, c := range fills(s.Render()) {
				Expect(c).To(Equal(sketch.Black))
			}
		})

		It("leaves the stored color alone on touch", func() {
			stored := s.Grid().At(1, 1).Color
			s.Touch(1, 1)
			Expect(s.Grid().At(1, 1).Color).To(Equal(stored))
		})

		It("re-randomizes touched cells every frame", func() {
			s.Touch(0, 0)
			a := fills(s.Render())[0]
			b := fills(s.Render())[0]
			Expect(a).NotTo(Equal(b))
		})
	})

	Context("cursor touch mode", func() {
		var s *sketch.Sketch

		BeforeEach(func() {
			s = newSketch(sketch.RandomUnlessPinned, sketch.TouchCursor, 160, 240)
		})

		It("touches the cell under the pointer", func() {
			target := s.Grid().At(2, 5)
			Expect(s.PointerMoved(target.X, target.Y)).To(BeTrue())
			Expect(s.Grid().At(2, 5).Touched).To(BeTrue())
			Expect(s.TouchedCount()).To(Equal(1))
		})

		It("ignores points outside the grid", func() {
			Expect(s.PointerMoved(-5, 10)).To(BeFalse())
			Expect(s.PointerMoved(10, 10000)).To(BeFalse())
			Expect(s.TouchedCount()).To(BeZero())
			Expect(s.Touches()).To(BeZero())
		})
	})

	Context("with a zero-size window", func() {
		var s *sketch.Sketch

		BeforeEach(func() {
			s = newSketch(sketch.RandomUnlessPinned, sketch.TouchRandom, 0, 0)
		})

		It("builds an empty grid", func() {
			Expect(s.Grid().Rows).To(BeZero())
			Expect(s.Grid().Cols).To(BeZero())
		})

		It("renders only the background clear", func() {
			cmds := s.Render()
			Expect(cmds).To(HaveLen(1))
			Expect(cmds[0].Kind).To(Equal(sketch.CmdClear))
		})

		It("ignores pointer moves", func() {
			Expect(s.PointerMoved(0, 0)).To(BeFalse())
		})
	})

	Describe("Replay", func() {
		It("forwards commands with rect corners", func() {
			s := newSketch(sketch.RandomUnlessPinned, sketch.TouchRandom, 32, 48)
			rec := &recorder{}
			sketch.Replay(s.Render(), rec)
			Expect(rec.clears).To(Equal(1))
			Expect(rec.rects).To(Equal(4))
			Expect(rec.glyphs).To(Equal(4))
			Expect(rec.lastRect).To(Equal([4]float32{16, 24, 16, 24}))
		})
	})
})
