package web

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/siqnastee/internal/sketch"
	"golang.org/x/image/font/gofont/goregular"
)

// canvas replays sketch commands onto an ebiten image.
type canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float32]*text.GoTextFace
	glyph  [1]rune
}

func newCanvas() (*canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("web: failed to parse font: %w", err)
	}
	return &canvas{
		source: source,
		faces:  make(map[float32]*text.GoTextFace),
	}, nil
}

func toColor(c sketch.RGB) color.RGBA {
	r, g, b := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c *canvas) face(size float32) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.source, Size: float64(size)}
		c.faces[size] = f
	}
	return f
}

func (c *canvas) Clear(col sketch.RGB) {
	c.dst.Fill(toColor(col))
}

func (c *canvas) FillRect(x, y, w, h float32, col sketch.RGB) {
	vector.DrawFilledRect(c.dst, x, y, w, h, toColor(col), false)
}

func (c *canvas) DrawGlyph(r rune, cx, cy, size float32, col sketch.RGB) {
	c.glyph[0] = r
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(toColor(col))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, string(c.glyph[:]), c.face(size), op)
}
