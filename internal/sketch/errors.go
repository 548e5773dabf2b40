package sketch

import "errors"

var (
	// ErrUnknownPolicy indicates a repaint policy name that is not recognised.
	ErrUnknownPolicy = errors.New("sketch: unknown repaint policy")

	// ErrUnknownTouchMode indicates a touch mode name that is not recognised.
	ErrUnknownTouchMode = errors.New("sketch: unknown touch mode")

	// ErrInvalidColor indicates a colour string that is not #rrggbb.
	ErrInvalidColor = errors.New("sketch: invalid color")
)
