// Package game provides the session state machine and the real-time game loop.
package game

// Mode represents the top-level game mode.
type Mode int

const (
	// ModeTitle is the idle screen waiting for a start command.
	ModeTitle Mode = iota
	// ModePlaying is active combat.
	ModePlaying
	// ModeGameOver shows the results of a finished session.
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Direction is a movement request from the input layer.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
