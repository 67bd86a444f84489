// Command pathtrace traces routes drawn on ASCII maps.
//
//	pathtrace trace maps/*.txt
//	pathtrace samples goonies tight-spaces --render
//	pathtrace list
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathtrace/pathfind"
)

// app carries the state shared by all subcommands.
type app struct {
	out    io.Writer
	logger *zap.Logger
	cfg    Config

	// flag values, merged over cfg in PersistentPreRunE
	verbose    bool
	configPath string
	flags      Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, nil).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. A nil logger is built from flags.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}

	root := &cobra.Command{
		Use:   "pathtrace",
		Short: "Trace routes drawn on ASCII maps",
		Long: `pathtrace follows a route from its start marker '@' to its end marker 'x',
collecting the letters met along the way.

Routes are drawn with '-' and '|' connectors, '+' turns and letters. Where two
corridors cross without sharing a cell the route jumps over the crossing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				a.logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return a.loadConfig(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.flags.Visit, "visit", "position", "revisit policy: position or axis")
	pf.StringVar(&a.flags.TieBreak, "tie-break", "first", "gap intersection tie-break: first or last")
	pf.IntVarP(&a.flags.Workers, "workers", "w", 0, "maps traced in parallel (0 = GOMAXPROCS)")
	pf.StringVarP(&a.flags.Format, "format", "f", "text", "output format: text, json or yaml")
	pf.BoolVarP(&a.flags.Render, "render", "r", false, "draw the route over the map (text format)")
	pf.StringVar(&a.flags.Catalogue, "catalogue", "", "YAML sample catalogue (default: built-in samples)")

	root.AddCommand(a.traceCmd(), a.samplesCmd(), a.listCmd())
	return root
}

// options converts the merged config into walk options.
func (a *app) options() ([]pathfind.Option, error) {
	visit, err := pathfind.ParseVisitPolicy(a.cfg.Visit)
	if err != nil {
		return nil, err
	}
	tie, err := pathfind.ParseTieBreak(a.cfg.TieBreak)
	if err != nil {
		return nil, err
	}
	opts := []pathfind.Option{
		pathfind.WithVisitPolicy(visit),
		pathfind.WithTieBreak(tie),
		pathfind.WithWorkers(a.cfg.Workers),
	}
	if a.verbose {
		opts = append(opts, pathfind.WithOnStep(func(s pathfind.Step) {
			if s.Move.IsJump() {
				a.logger.Debug("gap intersection",
					zap.Stringer("from", s.From),
					zap.Stringer("to", s.To),
					zap.Stringer("direction", s.Move.Dir),
				)
			}
		}))
	}
	return opts, nil
}
