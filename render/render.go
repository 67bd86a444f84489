// Package render draws a traced route on top of its grid for terminal output.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathtrace/glyph"
	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathfind"
)

// Styles holds the cell styles used by Route.
type Styles struct {
	Route  lipgloss.Style // connectors walked on
	Letter lipgloss.Style // collected letters
	Marker lipgloss.Style // start and end markers walked on
	Idle   lipgloss.Style // cells not on the route
	Stop   lipgloss.Style // cell the walk got stuck on
	Label  lipgloss.Style // summary labels
	Error  lipgloss.Style // summary error text
}

// DefaultStyles returns the standard palette for r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Route:  r.NewStyle().Foreground(lipgloss.Color("39")),
		Letter: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Marker: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Idle:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Stop:   r.NewStyle().Foreground(lipgloss.Color("196")).Reverse(true),
		Label:  r.NewStyle().Bold(true),
		Error:  r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Renderer formats results. The zero value is not usable; use New.
type Renderer struct {
	styles Styles
}

// New returns a Renderer with DefaultStyles. A nil r uses lipgloss's
// default renderer (stdout).
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{styles: DefaultStyles(r)}
}

// WithStyles returns a Renderer using s.
func WithStyles(s Styles) *Renderer {
	return &Renderer{styles: s}
}

// Route draws every row of g, styling the cells in res.Positions. When the
// walk failed, the cell it got stuck on is highlighted with Stop.
func (rd *Renderer) Route(g *grid.Grid, res pathfind.Result) string {
	onRoute := make(map[grid.Position]bool, len(res.Positions))
	for _, p := range res.Positions {
		onRoute[p] = true
	}
	stuck, hasStuck := stuckAt(res)

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.RowLen(r); c++ {
			p := grid.Position{Row: r, Col: c}
			ch, _ := g.At(p)
			b.WriteString(rd.cell(ch, onRoute[p], hasStuck && p == stuck))
		}
		if r < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (rd *Renderer) cell(ch rune, onRoute, stuck bool) string {
	s := string(ch)
	switch {
	case stuck:
		return rd.styles.Stop.Render(s)
	case !onRoute:
		return rd.styles.Idle.Render(s)
	case ch == glyph.Start || ch == glyph.End:
		return rd.styles.Marker.Render(s)
	case glyph.IsLetter(ch):
		return rd.styles.Letter.Render(s)
	default:
		return rd.styles.Route.Render(s)
	}
}

// stuckAt returns the dead-end cell of a walk that ran out of directions.
func stuckAt(res pathfind.Result) (grid.Position, bool) {
	if !errors.Is(res.Err, pathfind.ErrNoValidDirection) {
		return grid.Position{}, false
	}
	return res.Stop, true
}

// Summary formats the letters, path and error of res on labelled lines.
func (rd *Renderer) Summary(name string, res pathfind.Result) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s %s\n", rd.styles.Label.Render("map:"), name)
	}
	fmt.Fprintf(&b, "%s %s\n", rd.styles.Label.Render("letters:"), res.Letters)
	fmt.Fprintf(&b, "%s %s", rd.styles.Label.Render("path:"), res.Path)
	if res.Err != nil {
		fmt.Fprintf(&b, "\n%s %s", rd.styles.Label.Render("error:"), rd.styles.Error.Render(pathfind.ErrorName(res.Err)))
	}
	return b.String()
}
