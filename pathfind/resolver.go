package pathfind

import (
	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
)

// priority returns the order in which directions are tried: prev first
// when set, then Up, Down, Left, Right without prev.
func priority(prev grid.Direction) [4]grid.Direction {
	if prev == grid.None || prev > grid.Right {
		return grid.Cardinals
	}
	order := [4]grid.Direction{prev}
	i := 1
	for _, d := range grid.Cardinals {
		if d != prev {
			order[i] = d
			i++
		}
	}
	return order
}

// enterable reports whether c may be entered by a move in direction d.
func enterable(d grid.Direction, c rune) bool {
	switch d.Axis() {
	case grid.Vertical:
		return glyph.IsVerticalConnector(c)
	case grid.Horizontal:
		return glyph.IsHorizontalConnector(c)
	}
	return false
}

// eligible reports whether the neighbor of p in direction d is a legal
// continuation: in bounds, not visited along d's axis and enterable.
func eligible(g *grid.Grid, p grid.Position, d grid.Direction, visited *grid.VisitedSet) bool {
	next := p.Step(d)
	c, ok := g.At(next)
	if !ok || visited.Has(next, d.Axis()) {
		return false
	}
	return enterable(d, c)
}

// NextDirection picks the direction to leave p by. The previous direction of
// travel is tried first, then Up, Down, Left, Right. When several neighbors
// qualify (a fork) the first in that order wins. Returns grid.None when no
// neighbor qualifies.
// Complexity: O(1).
func NextDirection(g *grid.Grid, p grid.Position, visited *grid.VisitedSet, prev grid.Direction) grid.Direction {
	for _, d := range priority(prev) {
		if eligible(g, p, d, visited) {
			return d
		}
	}
	return grid.None
}
