package grid

import "fmt"

// Axis is the orientation of a move.
type Axis uint8

const (
	// Vertical covers Up and Down.
	Vertical Axis = iota
	// Horizontal covers Left and Right.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is a cardinal direction of travel. The zero value is None.
type Direction uint8

const (
	// None means no direction; used before the first step.
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Cardinals lists the four directions in the fixed fallback order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit (row, col) offset of d. None yields (0, 0).
func (d Direction) Delta() (dr, dc int) {
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

// Axis reports the axis d moves along. None reports Vertical.
func (d Direction) Axis() Axis {
	switch d {
	case Left, Right:
		return Horizontal
	default:
		return Vertical
	}
}

// Opposite returns the reverse direction; None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Position is a zero-based cell address.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbor of p one cell away in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(Move{Dir: d, Span: 1})
}

// Add translates p by m.
func (p Position) Add(m Move) Position {
	dr, dc := m.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Move is a directional move of Span cells. A regular step has Span 1,
// a jump across a crossing corridor has Span 2.
type Move struct {
	Dir  Direction
	Span int
}

// Delta returns the (row, col) offset of m.
func (m Move) Delta() (dr, dc int) {
	dr, dc = m.Dir.Delta()
	return dr * m.Span, dc * m.Span
}

// IsJump reports whether m skips over an intermediate cell.
func (m Move) IsJump() bool {
	return m.Span > 1
}
