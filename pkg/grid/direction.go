// pkg/grid/direction.go
package grid

// Direction is one of the 9 discrete movement vectors on the grid.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// FlowDirections is the fixed neighbour order used by flow-field propagation.
// Diagonals are never used for propagation.
var FlowDirections = [4]Direction{East, North, South, West}

// Vector returns the (dx, dy) step for the direction. Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case None:
		return 0, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	}
	panic("grid: unknown direction")
}

// Opposite returns the reversed direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case None:
		return None
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case SouthWest:
		return NorthEast
	}
	panic("grid: unknown direction")
}

// IsCardinal reports whether d is one of N/E/S/W.
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	}
	return "?"
}
