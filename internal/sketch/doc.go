// Package sketch provides the grid model behind the siqnastee sketch.
//
// The package is split along the three things a frame loop needs:
//
//   - [BuildGrid]: lays out fixed-size cells centered in a window
//   - [Sketch.Render]: repaint policy, emits an ordered list of [Command]s
//   - [Sketch.PointerMoved]: touch reactor, marks one cell touched
//
// Frontends own the event loop. They build a [Sketch] once the window size is
// known, call Render every frame and replay the commands onto a [Canvas], and
// forward pointer moves to PointerMoved.
//
// # Example
//
//	s := sketch.New(sketch.DefaultOptions(), 1024, 768)
//	for frame := range ticks {
//		sketch.Replay(s.Render(), canvas)
//	}
//
// # Thread Safety
//
// A Sketch is NOT thread-safe. It is meant to be owned by the goroutine that
// runs the frame loop.
package sketch
