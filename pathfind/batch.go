package pathfind

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathtrace/grid"
)

// FindAll runs Find over every grid concurrently, bounded by WithWorkers.
// Results are returned in input order. Walks share no state, so no locking
// is involved; an OnStep hook, if any, must be safe for concurrent use.
//
// The only errors returned are ErrOptionViolation and ctx.Err(). When ctx is
// cancelled, grids not yet started keep a zero Result.
func FindAll(ctx context.Context, grids []*grid.Grid, opts ...Option) ([]Result, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	results := make([]Result, len(grids))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)

	for i, g := range grids {
		i, g := i, g
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = Find(g, opts...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
