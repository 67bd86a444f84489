package pathfind_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathfind"
)

func sampleGrids() []*grid.Grid {
	grids := make([]*grid.Grid, len(sampleCases))
	for i, tc := range sampleCases {
		grids[i] = grid.New(tc.rows)
	}
	return grids
}

// TestFindAll_Order returns one result per grid, in input order.
func TestFindAll_Order(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, workers := range []int{0, 1, 3, 64} {
		results, err := pathfind.FindAll(context.Background(), sampleGrids(), pathfind.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, results, len(sampleCases))
		for i, tc := range sampleCases {
			require.Equal(t, tc.path, results[i].Path, "workers=%d %s", workers, tc.name)
			require.Equal(t, tc.letters, results[i].Letters, "workers=%d %s", workers, tc.name)
			require.ErrorIs(t, results[i].Err, tc.err, "workers=%d %s", workers, tc.name)
		}
	}
}

// TestFindAll_SharedHook calls a concurrency-safe hook from every walk.
func TestFindAll_SharedHook(t *testing.T) {
	defer goleak.VerifyNone(t)

	var steps atomic.Int64
	results, err := pathfind.FindAll(context.Background(), sampleGrids(),
		pathfind.WithWorkers(4),
		pathfind.WithOnStep(func(pathfind.Step) { steps.Add(1) }),
	)
	require.NoError(t, err)

	var want int64
	for _, r := range results {
		if n := len(r.Positions); n > 0 {
			want += int64(n - 1)
			if r.Err != nil {
				// a dead end records every cell it stepped off of
				want++
			}
		}
	}
	require.Equal(t, want, steps.Load())
}

// TestFindAll_Cancelled stops before tracing when the context is done.
func TestFindAll_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := pathfind.FindAll(ctx, sampleGrids(), pathfind.WithWorkers(1))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, len(sampleCases))
	for _, r := range results {
		require.Empty(t, r.Path)
	}
}

// TestFindAll_BadOption rejects invalid options up front.
func TestFindAll_BadOption(t *testing.T) {
	_, err := pathfind.FindAll(context.Background(), sampleGrids(), pathfind.WithWorkers(-2))
	require.ErrorIs(t, err, pathfind.ErrOptionViolation)
}

// TestFindAll_Empty handles an empty batch.
func TestFindAll_Empty(t *testing.T) {
	results, err := pathfind.FindAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
