// Package pathfind traces a single route drawn on an ASCII grid, collecting
// the letters met along the way.
//
// What
//
//   - Find locates the unique start marker '@' and walks the route until it
//     reaches the end marker 'x' or runs out of continuations.
//   - Walk runs the same loop from an explicit start position.
//   - NextDirection decides the next regular step from a cell.
//   - NextJump resolves gap intersections: two corridors crossing without
//     sharing a cell, traversed with a two-cell lookahead.
//   - FindAll traces many independent grids on a bounded worker pool.
//   - Returns a Result containing:
//   - Letters:   collected letters, in walk order
//   - Path:      every rune walked on (start through end marker on success)
//   - Positions: the cell of each rune in Path
//   - Err:       nil, or a sentinel error describing why the walk stopped
//
// Direction rules
//
//	A neighbor is a legal continuation when it is in bounds, not visited, and
//	enterable along the move's axis: '|', '+' and letters vertically; '-',
//	'+', 'x' and letters horizontally. The previous direction of travel is
//	tried first, then Up, Down, Left, Right. Forks are not errors: the first
//	legal direction in that order wins.
//
// Gap intersections
//
//	When no neighbor qualifies the walker looks two cells ahead. The
//	intermediate cell may be any path character, visited or not; the landing
//	cell must be an unvisited path character with a continuation of its own.
//	When several jumps qualify, WithTieBreak selects FirstMatch (default) or
//	LastMatch. The intermediate cell is not recorded.
//
// Determinism
//
//	Direction order is fixed and the grid is read-only, so the same grid
//	always yields the same Result.
//
// Complexity (N = Rows × Width)
//
//   - Time:   O(N)   (each move marks a new cell; each decision is O(1))
//   - Memory: O(N)   (visited planes sized to the bounding box)
//
// Usage
//
//	res := pathfind.FindRows([]string{"@-A-x"})
//	if res.Err != nil {
//	    // ErrNoStart, ErrMultipleStarts or ErrNoValidDirection
//	}
//	fmt.Println(res.Letters, res.Path) // A @-A-x
//
//	res = pathfind.Find(g,
//	    pathfind.WithVisitPolicy(pathfind.VisitByAxis),
//	    pathfind.WithTieBreak(pathfind.LastMatch),
//	    pathfind.WithOnStep(func(s pathfind.Step) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions():      per-position visits, FirstMatch, no-op hook, GOMAXPROCS workers.
//   - WithVisitPolicy(p):    VisitByPosition or VisitByAxis.
//   - WithTieBreak(t):       FirstMatch or LastMatch for gap intersections.
//   - WithOnStep(fn):        hook after every committed move.
//   - WithWorkers(n):        FindAll concurrency (n ≥ 0).
//
// Errors
//
//   - ErrNoStart            no '@' in the grid (also for an empty grid).
//   - ErrMultipleStarts     more than one '@'.
//   - ErrNoValidDirection   dead end before 'x'; Path keeps what was walked.
//   - ErrStartOutOfBounds   Walk started outside the grid.
//   - ErrGridNil            nil grid.
//   - ErrOptionViolation    invalid Option.
package pathfind
