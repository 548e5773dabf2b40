package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/siqnastee/internal/sketch"
)

// FrameToSVG converts one frame of draw commands to an SVG document of the
// given size.
func FrameToSVG(cmds []sketch.Command, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, width, height))

	svg := &svgCanvas{sb: &sb}
	sketch.Replay(cmds, svg)

	sb.WriteString("</svg>")
	return sb.String()
}

type svgCanvas struct {
	sb *strings.Builder
}

func (s *svgCanvas) Clear(c sketch.RGB) {
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, c.Hex()))
}

func (s *svgCanvas) FillRect(x, y, w, h float32, c sketch.RGB) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, w, h, c.Hex()))
}

func (s *svgCanvas) DrawGlyph(r rune, cx, cy, size float32, c sketch.RGB) {
	s.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.0f" font-family="monospace" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>
`, cx, cy, size, c.Hex(), html.EscapeString(string(r))))
}
