// Package maps provides the built-in sample route maps and loaders for
// route maps stored as text files or YAML catalogues.
package maps

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathfind"
)

//go:embed samples.yaml
var builtin []byte

var (
	// ErrUnknownSample is returned by Lookup for a name not in the catalogue.
	ErrUnknownSample = errors.New("maps: unknown sample")

	// ErrInvalidCatalogue is returned when a catalogue cannot be used.
	ErrInvalidCatalogue = errors.New("maps: invalid catalogue")

	// ErrMismatch is returned by Sample.Check when a trace differs from Want.
	ErrMismatch = errors.New("maps: trace does not match expectation")
)

// Expectation is the trace a sample is expected to produce.
type Expectation struct {
	Letters string `yaml:"letters"`
	Path    string `yaml:"path"`
	Error   string `yaml:"error,omitempty"`
}

// Sample is a named route map with its expected trace.
type Sample struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Rows        []string    `yaml:"rows"`
	Want        Expectation `yaml:"want"`
}

// Grid builds the sample's grid.
func (s Sample) Grid() *grid.Grid {
	return grid.New(s.Rows)
}

// Check compares res with the sample's expectation.
func (s Sample) Check(res pathfind.Result) error {
	var diffs []string
	if res.Letters != s.Want.Letters {
		diffs = append(diffs, fmt.Sprintf("letters %q, want %q", res.Letters, s.Want.Letters))
	}
	if res.Path != s.Want.Path {
		diffs = append(diffs, fmt.Sprintf("path %q, want %q", res.Path, s.Want.Path))
	}
	if got := pathfind.ErrorName(res.Err); !strings.EqualFold(got, s.Want.Error) {
		diffs = append(diffs, fmt.Sprintf("error %q, want %q", got, s.Want.Error))
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrMismatch, s.Name, strings.Join(diffs, "; "))
	}
	return nil
}

type catalogue struct {
	Samples []Sample `yaml:"samples"`
}

// LoadCatalogue decodes a YAML catalogue and validates it: names must be
// present and unique, and expected error names must be known.
func LoadCatalogue(r io.Reader) ([]Sample, error) {
	var c catalogue
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}
	seen := make(map[string]bool, len(c.Samples))
	for i, s := range c.Samples {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: sample %d has no name", ErrInvalidCatalogue, i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate sample %q", ErrInvalidCatalogue, s.Name)
		}
		seen[s.Name] = true
		if _, ok := pathfind.ErrorByName(s.Want.Error); !ok {
			return nil, fmt.Errorf("%w: sample %q expects unknown error %q", ErrInvalidCatalogue, s.Name, s.Want.Error)
		}
	}
	return c.Samples, nil
}

var (
	builtinOnce    sync.Once
	builtinSamples []Sample
	builtinErr     error
)

// Samples returns the built-in catalogue in file order. The slice is a
// copy; callers may modify it.
func Samples() ([]Sample, error) {
	builtinOnce.Do(func() {
		builtinSamples, builtinErr = LoadCatalogue(bytes.NewReader(builtin))
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Sample, len(builtinSamples))
	copy(out, builtinSamples)
	return out, nil
}

// Lookup returns the built-in sample called name.
func Lookup(name string) (Sample, error) {
	all, err := Samples()
	if err != nil {
		return Sample{}, err
	}
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, fmt.Errorf("%w: %q", ErrUnknownSample, name)
}

// Names returns the built-in sample names, sorted.
func Names() []string {
	all, err := Samples()
	if err != nil {
		return nil
	}
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

// Parse reads a text map: one row per line, "\r\n" and "\n" endings both
// accepted. Trailing blank lines are dropped; leading and inner ones kept.
func Parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maps: read map: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// LoadFile reads the text map at path.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maps: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid.New(rows), nil
}
