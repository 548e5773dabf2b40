package gui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/siqnastee/internal/config"
	"github.com/san-kum/siqnastee/internal/sketch"
)

// ErrWindow is returned when raylib could not open a window.
var ErrWindow = errors.New("gui: window creation failed")

type App struct {
	Sketch  *sketch.Sketch
	canvas  canvas
	lastPos rl.Vector2
}

// initWindow opens the window at the configured size and frame rate. Escape
// is left to Update so the loop can log the exit.
func initWindow(cfg *config.Config) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return ErrWindow
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
	return nil
}

// NewApp builds the grid from the size of the open window.
func NewApp(opts sketch.Options) *App {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	s := sketch.New(opts, w, h)
	log.Info().
		Float32("width", w).
		Float32("height", h).
		Int("rows", s.Grid().Rows).
		Int("cols", s.Grid().Cols).
		Str("policy", opts.Policy.String()).
		Str("touch", opts.Touch.String()).
		Msg("window ready")
	return &App{Sketch: s, lastPos: rl.GetMousePosition()}
}

// Run opens a native window and blocks until it is closed.
func Run(cfg *config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if err := initWindow(cfg); err != nil {
		return err
	}
	defer rl.CloseWindow()

	app := NewApp(opts)
	app.RunLoop()
	log.Info().Int("touched", app.Sketch.TouchedCount()).Int("moves", app.Sketch.Touches()).Msg("window closed")
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input for one frame. It returns false when the user asked
// to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}

	pos := rl.GetMousePosition()
	if pos != a.lastPos {
		a.Sketch.PointerMoved(pos.X, pos.Y)
		a.lastPos = pos
	}
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	sketch.Replay(a.Sketch.Render(), &a.canvas)
	rl.EndDrawing()
}
