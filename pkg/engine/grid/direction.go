package grid

// Direction represents one of the four board directions
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four board directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction.
// Rows grow downwards, so Up is a negative row offset.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}
