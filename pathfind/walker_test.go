package pathfind_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathfind"
)

// WalkSuite exercises the traversal loop.
type WalkSuite struct {
	suite.Suite
}

// TestStraightLine walks a single row and collects one letter.
func (s *WalkSuite) TestStraightLine() {
	res := pathfind.Walk(grid.New([]string{"@-A-x"}), at(0, 0))
	require.NoError(s.T(), res.Err)
	require.Equal(s.T(), "A", res.Letters)
	require.Equal(s.T(), "@-A-x", res.Path)
	require.Equal(s.T(), at(0, 0), res.Start)
	require.Equal(s.T(), at(0, 4), res.Stop)
}

// TestRunsOffEdge stops without appending the dead-end cell.
func (s *WalkSuite) TestRunsOffEdge() {
	res := pathfind.Walk(grid.New([]string{"@-A-"}), at(0, 0))
	require.ErrorIs(s.T(), res.Err, pathfind.ErrNoValidDirection)
	require.Contains(s.T(), res.Err.Error(), "(0,3)")
	require.Equal(s.T(), "A", res.Letters)
	require.Equal(s.T(), "@-A", res.Path)
	require.Len(s.T(), res.Positions, 3)
	require.Equal(s.T(), at(0, 3), res.Stop)
}

// TestImmediateEnd accepts an end marker right after the start.
func (s *WalkSuite) TestImmediateEnd() {
	res := pathfind.Walk(grid.New([]string{"@x"}), at(0, 0))
	require.NoError(s.T(), res.Err)
	require.Equal(s.T(), "@x", res.Path)
	require.Empty(s.T(), res.Letters)
}

// TestStartOnEnd finishes at once when started on an end marker.
func (s *WalkSuite) TestStartOnEnd() {
	res := pathfind.Walk(grid.New([]string{"-x-"}), at(0, 1))
	require.NoError(s.T(), res.Err)
	require.Equal(s.T(), "x", res.Path)
	require.Equal(s.T(), []grid.Position{at(0, 1)}, res.Positions)
}

// TestLowercaseLetters collects lowercase letters too.
func (s *WalkSuite) TestLowercaseLetters() {
	res := pathfind.Walk(grid.New([]string{"@-a-b-x"}), at(0, 0))
	require.NoError(s.T(), res.Err)
	require.Equal(s.T(), "ab", res.Letters)
}

// TestNonLettersNotCollected ignores digits and symbols on the path.
func (s *WalkSuite) TestNonLettersNotCollected() {
	res := pathfind.Walk(grid.New([]string{"@-+-x"}), at(0, 0))
	require.NoError(s.T(), res.Err)
	require.Empty(s.T(), res.Letters)
	require.Equal(s.T(), "@-+-x", res.Path)
}

// TestStartOutOfBounds rejects a start outside the grid.
func (s *WalkSuite) TestStartOutOfBounds() {
	for _, p := range []grid.Position{at(-1, 0), at(0, 5), at(1, 0)} {
		res := pathfind.Walk(grid.New([]string{"@-x"}), p)
		require.ErrorIs(s.T(), res.Err, pathfind.ErrStartOutOfBounds, "start %v", p)
		require.Empty(s.T(), res.Path)
	}
}

// TestNilGrid rejects a nil grid.
func (s *WalkSuite) TestNilGrid() {
	res := pathfind.Walk(nil, at(0, 0))
	require.ErrorIs(s.T(), res.Err, pathfind.ErrGridNil)
}

// TestOptionViolation surfaces invalid options before walking.
func (s *WalkSuite) TestOptionViolation() {
	g := grid.New([]string{"@-x"})
	bad := []pathfind.Option{
		pathfind.WithVisitPolicy(pathfind.VisitPolicy(9)),
		pathfind.WithTieBreak(pathfind.TieBreak(9)),
		pathfind.WithWorkers(-1),
	}
	for _, opt := range bad {
		res := pathfind.Walk(g, at(0, 0), opt)
		require.ErrorIs(s.T(), res.Err, pathfind.ErrOptionViolation)
		require.Empty(s.T(), res.Path)
	}
}

// TestVisitedGrowsByOne observes the visited set through the step hook.
func (s *WalkSuite) TestVisitedGrowsByOne() {
	var steps []pathfind.Step
	res := pathfind.Walk(grid.New(crossing), at(0, 0), pathfind.WithOnStep(func(st pathfind.Step) {
		steps = append(steps, st)
	}))
	require.NoError(s.T(), res.Err)
	require.Len(s.T(), steps, len(res.Positions)-1)
	for i, st := range steps {
		require.Equal(s.T(), i, st.Index)
		require.Equal(s.T(), i+2, st.VisitedLen, "step %d", i)
		require.Equal(s.T(), res.Positions[i], st.From)
		require.Equal(s.T(), res.Positions[i+1], st.To)
	}
}

// TestJumpSkipsIntermediate records the landing cell but never the cell
// jumped over.
func (s *WalkSuite) TestJumpSkipsIntermediate() {
	var jumps []pathfind.Step
	res := pathfind.Walk(grid.New(crossing), at(0, 0), pathfind.WithOnStep(func(st pathfind.Step) {
		if st.Move.IsJump() {
			jumps = append(jumps, st)
		}
	}))
	require.NoError(s.T(), res.Err)
	require.Len(s.T(), jumps, 1)
	require.Equal(s.T(), at(2, 2), jumps[0].From)
	require.Equal(s.T(), at(4, 2), jumps[0].To)
	require.Equal(s.T(), grid.Down, jumps[0].Move.Dir)

	count := 0
	for _, p := range res.Positions {
		if p == at(3, 2) {
			count++
		}
	}
	require.Equal(s.T(), 1, count, "the crossing cell is walked once, horizontally")
}

// TestIgnoresAfterEnd never reads past the end marker.
func (s *WalkSuite) TestIgnoresAfterEnd() {
	res := pathfind.Walk(grid.New([]string{"@-A--+", "     |", "     +-B--x-C--D"}), at(0, 0))
	require.NoError(s.T(), res.Err)
	require.Equal(s.T(), "AB", res.Letters)
	require.Equal(s.T(), "@-A--+|+-B--x", res.Path)
	require.NotContains(s.T(), res.Path, "C")
	require.NotContains(s.T(), res.Path, "D")
}

// crossTwice passes the letter B vertically and later meets it horizontally.
var crossTwice = []string{
	"   @",
	"   |",
	"x--B--+",
	"   |  |",
	"   +--+",
}

// TestVisitPolicy compares both visit policies on a route that meets
// itself at a letter.
func (s *WalkSuite) TestVisitPolicy() {
	g := grid.New(crossTwice)

	byPos := pathfind.Walk(g, at(0, 3))
	require.NoError(s.T(), byPos.Err)
	require.Equal(s.T(), "B", byPos.Letters)
	require.Equal(s.T(), "@|B|+--+|+----x", byPos.Path)

	byAxis := pathfind.Walk(g, at(0, 3), pathfind.WithVisitPolicy(pathfind.VisitByAxis))
	require.NoError(s.T(), byAxis.Err)
	require.Equal(s.T(), "BB", byAxis.Letters)
	require.Equal(s.T(), "@|B|+--+|+--B--x", byAxis.Path)
}

// TestLettersSubsequenceOfPath checks that Letters is a subsequence of Path on every sample.
func (s *WalkSuite) TestLettersSubsequenceOfPath() {
	for _, tc := range sampleCases {
		res := pathfind.FindRows(tc.rows)
		var fromPath strings.Builder
		for _, c := range res.Path {
			if glyph.IsLetter(c) && c != glyph.End {
				fromPath.WriteRune(c)
			}
		}
		require.Equal(s.T(), fromPath.String(), res.Letters, tc.name)
		require.Equal(s.T(), len([]rune(res.Path)), len(res.Positions), tc.name)
	}
}

// TestDeterministic repeats the same walk.
func (s *WalkSuite) TestDeterministic() {
	first := pathfind.FindRows(crossing)
	for i := 0; i < 5; i++ {
		again := pathfind.FindRows(crossing)
		require.Equal(s.T(), first.Path, again.Path)
		require.Equal(s.T(), first.Letters, again.Letters)
		require.Equal(s.T(), first.Positions, again.Positions)
		require.True(s.T(), errors.Is(again.Err, first.Err) || (again.Err == nil && first.Err == nil))
	}
}

func TestWalkSuite(t *testing.T) {
	suite.Run(t, new(WalkSuite))
}
