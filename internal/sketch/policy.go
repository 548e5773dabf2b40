package sketch

import (
	"fmt"
	"strings"
)

// Policy decides the fill colour of a cell on every frame.
type Policy int

const (
	// RandomUnlessPinned flickers untouched cells and shows the stored colour
	// of touched ones.
	RandomUnlessPinned Policy = iota
	// BlackUntilTouched keeps untouched cells black and flickers touched ones.
	BlackUntilTouched
)

var policyNames = map[Policy]string{
	RandomUnlessPinned: "random-unless-pinned",
	BlackUntilTouched:  "black-until-touched",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps a policy name to its value.
func ParsePolicy(name string) (Policy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for p, s := range policyNames {
		if s == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// PolicyNames lists the accepted policy names.
func PolicyNames() []string {
	return []string{RandomUnlessPinned.String(), BlackUntilTouched.String()}
}

// TouchMode decides which cell a pointer move touches.
type TouchMode int

const (
	// TouchRandom picks a uniformly random cell and ignores the pointer.
	TouchRandom TouchMode = iota
	// TouchCursor picks the cell under the pointer.
	TouchCursor
)

var touchModeNames = map[TouchMode]string{
	TouchRandom: "random",
	TouchCursor: "cursor",
}

func (m TouchMode) String() string {
	if name, ok := touchModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("touch(%d)", int(m))
}

// ParseTouchMode maps a touch mode name to its value.
func ParseTouchMode(name string) (TouchMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range touchModeNames {
		if s == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTouchMode, name)
}

// TouchModeNames lists the accepted touch mode names.
func TouchModeNames() []string {
	return []string{TouchRandom.String(), TouchCursor.String()}
}
