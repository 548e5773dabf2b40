package sketch

import (
	"time"

	"golang.org/x/exp/rand"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Source is the randomness the sketch consumes. *rand.Rand satisfies it.
type Source interface {
	Float32() float32
	Intn(n int) int
}

// NewSource returns a seeded generator. A zero seed picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// RandomColor draws a colour uniformly from the RGB unit cube.
func RandomColor(rng Source) RGB {
	return RGB{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
}

// RandomGlyph draws one character from [A-Za-z0-9].
func RandomGlyph(rng Source) rune {
	return rune(alphanumeric[rng.Intn(len(alphanumeric))])
}
