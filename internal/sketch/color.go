package sketch

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a colour with each channel in [0, 1].
type RGB struct {
	R, G, B float32
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// RGBA8 converts the colour to 8-bit channels, clamping out-of-range values.
func (c RGB) RGBA8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	r, g, b := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses a #rrggbb (or rrggbb) string.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
