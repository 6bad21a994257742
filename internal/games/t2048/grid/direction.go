// Package grid provides the tile-sliding engine for 2048.
// It is UI-agnostic and deterministic: every operation takes a Grid value
// and returns a new one, and randomness is supplied by the caller.
package grid

// Direction represents a move direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases the row, Down increases it.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// towardStart reports whether tiles move toward index 0 in this direction,
// which means the scan must run in ascending index order.
func (d Direction) towardStart() bool {
	return d == Up || d == Left
}
