package web

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/siqnastee/internal/config"
	"github.com/san-kum/siqnastee/internal/sketch"
)

type point struct{ x, y int }

// Game implements ebiten.Game. The grid is built on the first Layout call,
// when the window or canvas size is known, and keeps that geometry.
type Game struct {
	opts     sketch.Options
	sketch   *sketch.Sketch
	canvas   *canvas
	cursor   point
	touchIDs []ebiten.TouchID
	touches  map[ebiten.TouchID]point
}

func NewGame(opts sketch.Options) (*Game, error) {
	c, err := newCanvas()
	if err != nil {
		return nil, err
	}
	return &Game{
		opts:    opts,
		canvas:  c,
		cursor:  point{-1, -1},
		touches: make(map[ebiten.TouchID]point),
	}, nil
}

// Sketch returns the running sketch, nil before the first Layout.
func (g *Game) Sketch() *sketch.Sketch {
	return g.sketch
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.sketch == nil {
		return nil
	}

	x, y := ebiten.CursorPosition()
	if p := (point{x, y}); p != g.cursor {
		g.cursor = p
		g.sketch.PointerMoved(float32(x), float32(y))
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p := point{tx, ty}
		if prev, ok := g.touches[id]; ok && prev == p {
			continue
		}
		g.touches[id] = p
		g.sketch.PointerMoved(float32(tx), float32(ty))
	}
	for id := range g.touches {
		if inpututil.IsTouchJustReleased(id) {
			delete(g.touches, id)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sketch == nil {
		return
	}
	g.canvas.dst = screen
	sketch.Replay(g.sketch.Render(), g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.sketch == nil {
		g.sketch = sketch.New(g.opts, float32(outsideWidth), float32(outsideHeight))
		log.Info().
			Int("width", outsideWidth).
			Int("height", outsideHeight).
			Int("rows", g.sketch.Grid().Rows).
			Int("cols", g.sketch.Grid().Cols).
			Msg("canvas ready")
	}
	return outsideWidth, outsideHeight
}

// Run opens the window (or attaches to the page canvas) and blocks until the
// game ends.
func Run(cfg *config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if s := g.Sketch(); s != nil {
		log.Info().Int("touched", s.TouchedCount()).Int("moves", s.Touches()).Msg("game ended")
	}
	return nil
}
