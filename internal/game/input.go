package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHold is how long a direction counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const keyHold = 150 * time.Millisecond

// heldKeys tracks which directions are currently held.
type heldKeys struct {
	last map[Direction]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{last: make(map[Direction]time.Time)}
}

// Press records a key event for dir at now.
func (h *heldKeys) Press(dir Direction, now time.Time) {
	h.last[dir] = now
}

// Held returns the directions still held at now, in Direction order.
func (h *heldKeys) Held(now time.Time) []Direction {
	var held []Direction
	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		at, ok := h.last[dir]
		if !ok {
			continue
		}
		if now.Sub(at) > keyHold {
			delete(h.last, dir)
			continue
		}
		held = append(held, dir)
	}
	return held
}

// Clear releases every direction.
func (h *heldKeys) Clear() {
	clear(h.last)
}

// directionForKey maps arrow keys and WASD to a direction.
func directionForKey(key tcell.Key, ch rune) (Direction, bool) {
	switch key {
	case tcell.KeyLeft:
		return DirLeft, true
	case tcell.KeyRight:
		return DirRight, true
	case tcell.KeyUp:
		return DirUp, true
	case tcell.KeyDown:
		return DirDown, true
	case tcell.KeyRune:
		switch ch {
		case 'a', 'A':
			return DirLeft, true
		case 'd', 'D':
			return DirRight, true
		case 'w', 'W':
			return DirUp, true
		case 's', 'S':
			return DirDown, true
		}
	}
	return 0, false
}
