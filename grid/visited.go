package grid

// VisitedSet records the cells entered during one walk. It is backed by
// boolean planes sized to the grid's bounding box and never shrinks.
//
// A set built with perAxis=false keeps one plane: a cell is either visited
// or not. With perAxis=true it keeps one plane per Axis, so a cell may be
// marked along one axis and still be free along the other.
type VisitedSet struct {
	g       *Grid
	perAxis bool
	planes  [2][]bool
	n       int
}

// NewVisitedSet returns an empty set sized to g.
func NewVisitedSet(g *Grid, perAxis bool) *VisitedSet {
	size := g.Rows() * g.Width()
	v := &VisitedSet{g: g, perAxis: perAxis}
	v.planes[Vertical] = make([]bool, size)
	if perAxis {
		v.planes[Horizontal] = make([]bool, size)
	}
	return v
}

// PerAxis reports whether marks are tracked per axis.
func (v *VisitedSet) PerAxis() bool {
	return v.perAxis
}

func (v *VisitedSet) plane(a Axis) []bool {
	if v.perAxis {
		return v.planes[a]
	}
	return v.planes[Vertical]
}

// Has reports whether p is marked along a. Without per-axis tracking the
// axis is ignored. Out-of-bounds positions are never marked.
func (v *VisitedSet) Has(p Position, a Axis) bool {
	if !v.g.InBounds(p) {
		return false
	}
	return v.plane(a)[v.g.index(p)]
}

// Mark records p along a and reports whether the set grew.
// Out-of-bounds positions are ignored.
func (v *VisitedSet) Mark(p Position, a Axis) bool {
	if !v.g.InBounds(p) {
		return false
	}
	pl := v.plane(a)
	i := v.g.index(p)
	if pl[i] {
		return false
	}
	pl[i] = true
	v.n++
	return true
}

// MarkAll records p along every tracked axis.
func (v *VisitedSet) MarkAll(p Position) {
	v.Mark(p, Vertical)
	if v.perAxis {
		v.Mark(p, Horizontal)
	}
}

// Len returns the number of marks recorded so far.
func (v *VisitedSet) Len() int {
	return v.n
}
