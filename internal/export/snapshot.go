package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/siqnastee/internal/sketch"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts png or svg, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// Snapshot renders the next frame of s in the given format. A PNG of an
// empty window is a single black pixel.
func Snapshot(w io.Writer, s *sketch.Sketch, f Format) error {
	g := s.Grid()
	width, height := int(g.WindowWidth), int(g.WindowHeight)
	cmds := s.Render()

	switch f {
	case FormatSVG:
		_, err := io.WriteString(w, FrameToSVG(cmds, width, height))
		return err
	case FormatPNG:
		if width <= 0 || height <= 0 {
			width, height = 1, 1
		}
		return WritePNG(w, cmds, width, height)
	}
	return fmt.Errorf("export: unknown format %q", f)
}
