// Package grid models a character map as an immutable, possibly jagged,
// 2D array of runes together with the small value types used to move
// across it.
//
// What:
//
//   - Grid wraps the rows of a map; rows may differ in length.
//   - Position addresses a cell by zero-based (Row, Col).
//   - Direction is one of the four cardinal directions (or None).
//   - Move is a directional step spanning one or two cells.
//   - VisitedSet records cells already entered during a single walk.
//
// Bounds:
//
//	A position is in bounds iff 0 ≤ Row < Rows() and 0 ≤ Col < RowLen(Row).
//	A column past the end of a short row is out of bounds and behaves like a
//	blank cell.
//
// Complexity:
//
//   - New:          O(R×W) time and memory (deep copy).
//   - At, InBounds: O(1).
//   - VisitedSet:   O(R×W) memory, O(1) Has/Mark.
package grid
