package core

// Direction is one of the four movement/facing directions
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Directions lists all directions in a fixed order
var Directions = [4]Direction{DirRight, DirLeft, DirUp, DirDown}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Unit returns the world-space unit offset, y grows upward
func (d Direction) Unit() (dx, dy float32) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	}
	return 0, 0
}
