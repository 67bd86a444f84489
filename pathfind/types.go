// Package pathfind defines options, result types and sentinel errors for
// tracing a route across a grid.Grid.
package pathfind

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/pathtrace/grid"
)

// Sentinel errors reported in Result.Err.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrNoStart indicates the grid holds no start marker.
	ErrNoStart = errors.New("pathfind: no start marker found")

	// ErrMultipleStarts indicates the grid holds more than one start marker.
	ErrMultipleStarts = errors.New("pathfind: multiple start markers found")

	// ErrNoValidDirection indicates the walk reached a cell with neither a
	// legal neighbor nor a valid intersection jump before the end marker.
	ErrNoValidDirection = errors.New("pathfind: no valid direction found")

	// ErrStartOutOfBounds indicates Walk was given a start outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// errorNames maps the terminal sentinels to stable short names.
var errorNames = []struct {
	name string
	err  error
}{
	{"NoStart", ErrNoStart},
	{"MultipleStarts", ErrMultipleStarts},
	{"NoValidDirection", ErrNoValidDirection},
	{"StartOutOfBounds", ErrStartOutOfBounds},
	{"GridNil", ErrGridNil},
	{"OptionViolation", ErrOptionViolation},
}

// ErrorName returns the short name of the sentinel wrapped by err,
// "" for nil, or "Unknown" for foreign errors.
func ErrorName(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorNames {
		if errors.Is(err, e.err) {
			return e.name
		}
	}
	return "Unknown"
}

// ErrorByName is the inverse of ErrorName. The empty name maps to nil.
func ErrorByName(name string) (error, bool) {
	if name == "" {
		return nil, true
	}
	for _, e := range errorNames {
		if strings.EqualFold(e.name, name) {
			return e.err, true
		}
	}
	return nil, false
}

// VisitPolicy selects how revisits are prevented.
type VisitPolicy uint8

const (
	// VisitByPosition forbids entering any cell twice.
	VisitByPosition VisitPolicy = iota
	// VisitByAxis forbids entering a cell twice along the same axis, so a
	// cell passed straight through can be crossed once more perpendicularly.
	VisitByAxis
)

// String returns "position" or "axis".
func (p VisitPolicy) String() string {
	if p == VisitByAxis {
		return "axis"
	}
	return "position"
}

// ParseVisitPolicy parses "position" or "axis".
func ParseVisitPolicy(s string) (VisitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "position":
		return VisitByPosition, nil
	case "axis":
		return VisitByAxis, nil
	}
	return 0, fmt.Errorf("%w: unknown visit policy %q", ErrOptionViolation, s)
}

// TieBreak selects which gap intersection wins when several qualify.
type TieBreak uint8

const (
	// FirstMatch takes the first qualifying jump in Up, Down, Left, Right
	// order, the same rule used for regular steps.
	FirstMatch TieBreak = iota
	// LastMatch takes the last qualifying jump in that order.
	LastMatch
)

// String returns "first" or "last".
func (t TieBreak) String() string {
	if t == LastMatch {
		return "last"
	}
	return "first"
}

// ParseTieBreak parses "first" or "last".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return FirstMatch, nil
	case "last":
		return LastMatch, nil
	}
	return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
}

// Step describes one committed move of a walk. It is passed to the OnStep hook.
type Step struct {
	// Index is the zero-based number of the move.
	Index int
	// From is the cell the move leaves, Char its rune.
	From grid.Position
	Char rune
	// To is the cell the move lands on.
	To grid.Position
	// Move is the direction and span; Span 2 marks an intersection jump.
	Move grid.Move
	// VisitedLen is the size of the visited set after marking To.
	VisitedLen int
}

// Option configures a walk via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunable parameters of a walk.
type Options struct {
	// Visit selects revisit tracking. Default VisitByPosition.
	Visit VisitPolicy

	// TieBreak resolves several simultaneous gap intersections. Default FirstMatch.
	TieBreak TieBreak

	// OnStep is called after every committed move. FindAll may call it
	// from several goroutines at once.
	OnStep func(Step)

	// Workers bounds the goroutines used by FindAll. Default GOMAXPROCS.
	Workers int

	err error
}

// DefaultOptions returns Options with per-position visits, first-match
// tie-break, a no-op OnStep hook and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Visit:    VisitByPosition,
		TieBreak: FirstMatch,
		OnStep:   func(Step) {},
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithVisitPolicy sets the revisit tracking policy.
func WithVisitPolicy(p VisitPolicy) Option {
	return func(o *Options) {
		if p > VisitByAxis {
			o.err = fmt.Errorf("%w: visit policy %d", ErrOptionViolation, p)
			return
		}
		o.Visit = p
	}
}

// WithTieBreak sets the gap intersection tie-break.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t > LastMatch {
			o.err = fmt.Errorf("%w: tie-break %d", ErrOptionViolation, t)
			return
		}
		o.TieBreak = t
	}
}

// WithOnStep registers a hook run after every committed move.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithWorkers bounds FindAll concurrency.
//
//	n > 0:  at most n walks in flight
//	n == 0: GOMAXPROCS
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of one walk.
//   - Letters: letters collected, in walk order.
//   - Path: every rune walked on, start through end marker on success.
//   - Positions: the cell of each rune in Path.
//   - Start, Stop: where the walk began and where it ended; on a dead end
//     Stop is the cell that had no continuation (not part of Path).
//   - Err: nil on success, otherwise one of the sentinels above (possibly wrapped).
type Result struct {
	Letters   string
	Path      string
	Positions []grid.Position
	Start     grid.Position
	Stop      grid.Position
	Err       error
}

// OK reports whether the walk reached the end marker.
func (r Result) OK() bool {
	return r.Err == nil
}
