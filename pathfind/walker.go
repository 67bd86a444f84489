package pathfind

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
)

// walkState is the state of the traversal loop.
type walkState uint8

const (
	walking walkState = iota
	succeeded
	failed
)

// walker encapsulates mutable walk state. It is owned by a single walk.
type walker struct {
	g       *grid.Grid
	opts    Options
	visited *grid.VisitedSet
	state   walkState
	pos     grid.Position
	prev    grid.Direction
	steps   int
	letters strings.Builder
	path    strings.Builder
	res     Result
}

// Walk traces the route from start until the end marker is reached or no
// continuation exists. It does not check that start holds a start marker;
// Find does that.
//
// Every committed move marks exactly one new cell (per axis under
// VisitByAxis), so the walk ends within Rows()×Width() moves, or twice that
// under VisitByAxis.
//
// Result.Err is nil on success, ErrNoValidDirection on a dead end,
// ErrStartOutOfBounds, ErrGridNil or ErrOptionViolation for bad input.
func Walk(g *grid.Grid, start grid.Position, opts ...Option) Result {
	o := buildOptions(opts)
	if o.err != nil {
		return Result{Start: start, Err: o.err}
	}
	if g == nil {
		return Result{Start: start, Err: ErrGridNil}
	}
	if !g.InBounds(start) {
		return Result{Start: start, Err: fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)}
	}

	w := &walker{
		g:       g,
		opts:    o,
		visited: grid.NewVisitedSet(g, o.Visit == VisitByAxis),
		state:   walking,
		pos:     start,
		prev:    grid.None,
		res:     Result{Start: start},
	}
	w.visited.MarkAll(start)

	for w.state == walking {
		w.advance()
	}
	w.res.Letters = w.letters.String()
	w.res.Path = w.path.String()
	w.res.Stop = w.pos
	return w.res
}

// advance performs one iteration of the loop.
func (w *walker) advance() {
	c, _ := w.g.At(w.pos)
	if c == glyph.End {
		w.record(c)
		w.state = succeeded
		return
	}

	m, ok := w.nextMove()
	if !ok {
		w.res.Err = fmt.Errorf("%w at %s", ErrNoValidDirection, w.pos)
		w.state = failed
		return
	}

	if glyph.IsLetter(c) {
		w.letters.WriteRune(c)
	}
	w.record(c)

	from := w.pos
	axis := m.Dir.Axis()
	// no-op under VisitByPosition; under VisitByAxis the departure axis is spent
	w.visited.Mark(from, axis)
	w.pos = from.Add(m)
	w.visited.Mark(w.pos, axis)
	w.prev = m.Dir

	w.opts.OnStep(Step{
		Index:      w.steps,
		From:       from,
		Char:       c,
		To:         w.pos,
		Move:       m,
		VisitedLen: w.visited.Len(),
	})
	w.steps++
}

// nextMove asks for a regular step first and falls back to a jump.
func (w *walker) nextMove() (grid.Move, bool) {
	if d := NextDirection(w.g, w.pos, w.visited, w.prev); d != grid.None {
		return grid.Move{Dir: d, Span: 1}, true
	}
	if d := NextJump(w.g, w.pos, w.visited, w.opts.TieBreak); d != grid.None {
		return grid.Move{Dir: d, Span: 2}, true
	}
	return grid.Move{}, false
}

// record appends c and the current position to the path.
func (w *walker) record(c rune) {
	w.path.WriteRune(c)
	w.res.Positions = append(w.res.Positions, w.pos)
}
