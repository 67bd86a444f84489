package pathfind

import (
	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
)

// NextJump looks two cells ahead for a corridor that continues on the far
// side of a crossing. It is consulted only when NextDirection finds nothing.
//
// A direction d qualifies when:
//   - the intermediate cell (one step) is in bounds and holds any path
//     character; visits and axis rules are ignored there because it belongs
//     to the crossing corridor;
//   - the landing cell (two steps) is in bounds, holds a path character and
//     is not yet visited along d's axis;
//   - NextDirection from the landing cell, with no previous direction,
//     finds a continuation.
//
// tie selects between several qualifying directions. Returns grid.None when
// none qualifies.
func NextJump(g *grid.Grid, p grid.Position, visited *grid.VisitedSet, tie TieBreak) grid.Direction {
	found := grid.None
	for _, d := range grid.Cardinals {
		if !canJump(g, p, d, visited) {
			continue
		}
		if tie == FirstMatch {
			return d
		}
		found = d
	}
	return found
}

func canJump(g *grid.Grid, p grid.Position, d grid.Direction, visited *grid.VisitedSet) bool {
	mid, ok := g.At(p.Step(d))
	if !ok || !glyph.IsPathChar(mid) {
		return false
	}
	landing := p.Add(grid.Move{Dir: d, Span: 2})
	c, ok := g.At(landing)
	if !ok || !glyph.IsPathChar(c) || visited.Has(landing, d.Axis()) {
		return false
	}
	return NextDirection(g, landing, visited, grid.None) != grid.None
}
