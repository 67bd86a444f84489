package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathfind"
	"github.com/katalvlaran/pathtrace/render"
)

// report is the machine-readable form of one trace.
type report struct {
	Name     string `json:"name" yaml:"name"`
	Letters  string `json:"letters" yaml:"letters"`
	Path     string `json:"path" yaml:"path"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Steps    int    `json:"steps" yaml:"steps"`
	Expected *bool  `json:"expected,omitempty" yaml:"expected,omitempty"`
	Mismatch string `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`

	g   *grid.Grid
	res pathfind.Result
}

func newReport(name string, g *grid.Grid, res pathfind.Result) report {
	steps := len(res.Positions)
	if res.OK() && steps > 0 {
		steps--
	}
	return report{
		Name:    name,
		Letters: res.Letters,
		Path:    res.Path,
		Error:   pathfind.ErrorName(res.Err),
		Steps:   steps,
		g:       g,
		res:     res,
	}
}

// withCheck records the outcome of a sample expectation check.
func (r report) withCheck(err error) report {
	ok := err == nil
	r.Expected = &ok
	if err != nil {
		r.Mismatch = err.Error()
	}
	return r
}

// writeReports prints reports in the configured format.
func (a *app) writeReports(w io.Writer, reports []report) error {
	switch a.cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	rd := render.New(lipgloss.NewRenderer(w))
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, rd.Summary(r.Name, r.res))
		if r.Expected != nil {
			if *r.Expected {
				fmt.Fprintln(w, "expected: yes")
			} else {
				fmt.Fprintf(w, "expected: no (%s)\n", r.Mismatch)
			}
		}
		if a.cfg.Render && r.g != nil {
			fmt.Fprintln(w, rd.Route(r.g, r.res))
		}
	}
	return nil
}
