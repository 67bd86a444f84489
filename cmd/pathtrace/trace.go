package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/maps"
	"github.com/katalvlaran/pathtrace/pathfind"
)

var errTraceFailed = errors.New("one or more routes could not be traced")

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE...",
		Short: "Trace the routes in text map files",
		Long: `Reads each file as a map (one row per line) and traces its route.
Maps are traced in parallel; output keeps argument order. The exit status is
non-zero when any route fails to reach its end marker.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runTrace,
	}
}

func (a *app) runTrace(cmd *cobra.Command, args []string) error {
	opts, err := a.options()
	if err != nil {
		return err
	}

	grids := make([]*grid.Grid, len(args))
	for i, path := range args {
		g, err := maps.LoadFile(path)
		if err != nil {
			return err
		}
		grids[i] = g
		a.logger.Debug("map loaded", zap.String("path", path), zap.Int("rows", g.Rows()), zap.Int("width", g.Width()))
	}

	began := time.Now()
	results, err := pathfind.FindAll(cmd.Context(), grids, opts...)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	a.logger.Debug("maps traced", zap.Int("count", len(grids)), zap.Duration("elapsed", time.Since(began)))

	reports := make([]report, len(results))
	failed := 0
	for i, res := range results {
		reports[i] = newReport(args[i], grids[i], res)
		if !res.OK() {
			failed++
			a.logger.Info("route not traced", zap.String("path", args[i]), zap.Error(res.Err))
		}
	}
	if err := a.writeReports(a.out, reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errTraceFailed, failed, len(results))
	}
	return nil
}
