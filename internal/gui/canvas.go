package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/siqnastee/internal/sketch"
)

// canvas draws sketch commands with raylib's immediate-mode calls. It must be
// used between BeginDrawing and EndDrawing.
type canvas struct {
	glyph [1]rune
}

func toColor(c sketch.RGB) color.RGBA {
	r, g, b := c.RGBA8()
	return rl.NewColor(r, g, b, 255)
}

func (c *canvas) Clear(col sketch.RGB) {
	rl.ClearBackground(toColor(col))
}

func (c *canvas) FillRect(x, y, w, h float32, col sketch.RGB) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, h), toColor(col))
}

func (c *canvas) DrawGlyph(r rune, cx, cy, size float32, col sketch.RGB) {
	c.glyph[0] = r
	text := string(c.glyph[:])
	fontSize := int32(size)
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(cx)-w/2, int32(cy)-fontSize/2, fontSize, toColor(col))
}
