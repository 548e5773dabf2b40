package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/san-kum/siqnastee/internal/sketch"
	"golang.org/x/image/font/gofont/goregular"
)

// Rasterizer draws frames with gg's software renderer.
type Rasterizer struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float32]text.Face
	glyph  [1]rune
}

func NewRasterizer(width, height int) (*Rasterizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("export: invalid image size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: failed to load font: %w", err)
	}
	return &Rasterizer{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float32]text.Face),
	}, nil
}

// Close releases the drawing context and the font.
func (r *Rasterizer) Close() error {
	_ = r.dc.Close()
	return r.source.Close()
}

// Context exposes the underlying drawing context.
func (r *Rasterizer) Context() *gg.Context {
	return r.dc
}

// Draw replays one frame.
func (r *Rasterizer) Draw(cmds []sketch.Command) {
	sketch.Replay(cmds, r)
}

// EncodePNG writes the current image.
func (r *Rasterizer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func rgb(c sketch.RGB) gg.RGBA {
	return gg.RGB(float64(c.R), float64(c.G), float64(c.B))
}

func (r *Rasterizer) Clear(c sketch.RGB) {
	r.dc.ClearWithColor(rgb(c))
}

func (r *Rasterizer) FillRect(x, y, w, h float32, c sketch.RGB) {
	r.dc.SetColor(rgb(c).Color())
	r.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	_ = r.dc.Fill()
}

func (r *Rasterizer) DrawGlyph(ch rune, cx, cy, size float32, c sketch.RGB) {
	face, ok := r.faces[size]
	if !ok {
		face = r.source.Face(float64(size))
		r.faces[size] = face
	}
	r.glyph[0] = ch
	r.dc.SetFont(face)
	r.dc.SetColor(rgb(c).Color())
	r.dc.DrawStringAnchored(string(r.glyph[:]), float64(cx), float64(cy), 0.5, 0.5)
}

// WritePNG renders cmds into a width x height PNG.
func WritePNG(w io.Writer, cmds []sketch.Command, width, height int) error {
	r, err := NewRasterizer(width, height)
	if err != nil {
		return err
	}
	defer r.Close()

	r.Draw(cmds)
	return r.EncodePNG(w)
}
