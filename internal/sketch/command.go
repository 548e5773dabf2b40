package sketch

// CommandKind identifies a draw command.
type CommandKind uint8

const (
	CmdClear CommandKind = iota // fill the whole canvas
	CmdRect                     // filled rectangle centered on X, Y
	CmdGlyph                    // single character centered on X, Y
)

// Command is one draw instruction of a frame. Rect and Glyph commands are
// centered on (X, Y).
type Command struct {
	Kind     CommandKind
	X, Y     float32
	W, H     float32
	Color    RGB
	Glyph    rune
	FontSize float32
}

// Canvas is implemented by every backend that can show a frame.
type Canvas interface {
	Clear(c RGB)
	FillRect(x, y, w, h float32, c RGB)
	DrawGlyph(r rune, cx, cy, size float32, c RGB)
}

// Replay submits cmds to canvas in order. FillRect receives the top-left
// corner of the rectangle.
func Replay(cmds []Command, canvas Canvas) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case CmdClear:
			canvas.Clear(cmd.Color)
		case CmdRect:
			canvas.FillRect(cmd.X-cmd.W/2, cmd.Y-cmd.H/2, cmd.W, cmd.H, cmd.Color)
		case CmdGlyph:
			canvas.DrawGlyph(cmd.Glyph, cmd.X, cmd.Y, cmd.FontSize, cmd.Color)
		}
	}
}
