package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/maps"
	"github.com/katalvlaran/pathtrace/pathfind"
)

var errUnexpected = errors.New("samples did not trace as expected")

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [NAME...]",
		Short: "Trace catalogue samples and compare with their expected output",
		Long: `Traces the named samples (all of them when no name is given) from the
built-in catalogue, or from --catalogue, and checks each trace against the
sample's expected letters, path and error.`,
		RunE: a.runSamples,
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalogue samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := a.catalogue()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, s := range samples {
				fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
			}
			return tw.Flush()
		},
	}
}

// catalogue returns the configured sample catalogue.
func (a *app) catalogue() ([]maps.Sample, error) {
	if a.cfg.Catalogue == "" {
		return maps.Samples()
	}
	f, err := os.Open(a.cfg.Catalogue)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return maps.LoadCatalogue(f)
}

// selectSamples picks samples by name, keeping argument order.
func selectSamples(all []maps.Sample, names []string) ([]maps.Sample, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]maps.Sample, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	out := make([]maps.Sample, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", maps.ErrUnknownSample, n)
		}
		out = append(out, s)
	}
	return out, nil
}

func (a *app) runSamples(cmd *cobra.Command, args []string) error {
	opts, err := a.options()
	if err != nil {
		return err
	}
	all, err := a.catalogue()
	if err != nil {
		return err
	}
	samples, err := selectSamples(all, args)
	if err != nil {
		return err
	}

	grids := make([]*grid.Grid, len(samples))
	for i, s := range samples {
		grids[i] = s.Grid()
	}
	results, err := pathfind.FindAll(cmd.Context(), grids, opts...)
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	reports := make([]report, len(results))
	mismatched := 0
	for i, res := range results {
		check := samples[i].Check(res)
		if check != nil {
			mismatched++
			a.logger.Warn("sample mismatch", zap.String("sample", samples[i].Name), zap.Error(check))
		}
		reports[i] = newReport(samples[i].Name, grids[i], res).withCheck(check)
	}
	if err := a.writeReports(a.out, reports); err != nil {
		return err
	}
	if mismatched > 0 {
		return fmt.Errorf("%w: %d of %d", errUnexpected, mismatched, len(results))
	}
	return nil
}
