package pathfind

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
)

// FindStart returns the position of the single start marker in g.
// Returns ErrNoStart when there is none and ErrMultipleStarts when there is
// more than one anywhere in the grid.
func FindStart(g *grid.Grid) (grid.Position, error) {
	if g == nil {
		return grid.Position{}, ErrGridNil
	}
	starts := g.Find(glyph.Start)
	switch len(starts) {
	case 0:
		return grid.Position{}, ErrNoStart
	case 1:
		return starts[0], nil
	default:
		return grid.Position{}, fmt.Errorf("%w: %d markers, first at %s", ErrMultipleStarts, len(starts), starts[0])
	}
}

// Find locates the start marker of g and walks the route from it.
// Start errors are reported before any walking, with empty Letters and Path.
func Find(g *grid.Grid, opts ...Option) Result {
	if o := buildOptions(opts); o.err != nil {
		return Result{Err: o.err}
	}
	start, err := FindStart(g)
	if err != nil {
		return Result{Err: err}
	}
	return Walk(g, start, opts...)
}

// FindRows is Find over text rows.
func FindRows(rows []string, opts ...Option) Result {
	return Find(grid.New(rows), opts...)
}
