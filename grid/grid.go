package grid

// Grid is an immutable character map. Rows may have different lengths.
type Grid struct {
	cells [][]rune
	width int
}

// New builds a Grid from text rows. The input is copied, so later changes
// to rows do not affect the Grid. An empty rows slice yields an empty Grid.
// Complexity: O(R×W).
func New(rows []string) *Grid {
	cells := make([][]rune, len(rows))
	width := 0
	for r, line := range rows {
		cells[r] = []rune(line)
		if len(cells[r]) > width {
			width = len(cells[r])
		}
	}
	return &Grid{cells: cells, width: width}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// RowLen returns the length of row r, or 0 when r is out of range.
func (g *Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.cells) {
		return 0
	}
	return len(g.cells[r])
}

// Width returns the length of the longest row.
func (g *Grid) Width() int {
	return g.width
}

// Empty reports whether the grid holds no cells at all.
func (g *Grid) Empty() bool {
	return g.width == 0
}

// InBounds reports whether p addresses an existing cell.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < len(g.cells[p.Row])
}

// At returns the rune at p. ok is false when p is out of bounds.
func (g *Grid) At(p Position) (c rune, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Row][p.Col], true
}

// Row returns a copy of row r as a string, or "" when r is out of range.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= len(g.cells) {
		return ""
	}
	return string(g.cells[r])
}

// Lines returns all rows as strings.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.cells))
	for r := range g.cells {
		out[r] = string(g.cells[r])
	}
	return out
}

// Find returns every position holding c, scanning rows top to bottom and
// each row left to right.
func (g *Grid) Find(c rune) []Position {
	var out []Position
	for r, row := range g.cells {
		for col, v := range row {
			if v == c {
				out = append(out, Position{Row: r, Col: col})
			}
		}
	}
	return out
}

// index maps p to a row-major index over the bounding box.
func (g *Grid) index(p Position) int {
	return p.Row*g.width + p.Col
}
