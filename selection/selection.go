// Package selection implements the multi-select model of the editor. A
// marquee Region is built from one or more screen rectangles projected to
// world space and merged by polygon union; the nodes inside the region form
// the Set that batch operations such as alignment consume.
package selection

import (
	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"

	"github.com/kferber/pathedit"
	"github.com/kferber/pathedit/roadnet"
)

// tracer writes to trace with key 'pathedit.selection'
func tracer() tracing.Trace {
	return tracing.Select("pathedit.selection")
}

// Region is a marquee selection area on the map plane.
type Region struct {
	poly polyclip.Polygon
}

// AddRect grows the region by the axis-aligned rectangle spanned by two
// corner points (any corner order). Overlapping rectangles are merged.
func (r *Region) AddRect(a, b pathedit.Pair) {
	minX, maxX := a.X(), b.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minZ, maxZ := a.Y(), b.Y()
	if minZ > maxZ {
		minZ, maxZ = maxZ, minZ
	}
	rect := polyclip.Polygon{{
		{X: minX, Y: minZ},
		{X: maxX, Y: minZ},
		{X: maxX, Y: maxZ},
		{X: minX, Y: maxZ},
	}}
	if len(r.poly) == 0 {
		r.poly = rect
		return
	}
	r.poly = r.poly.Construct(polyclip.UNION, rect)
	tracer().Debugf("selection region grown to %d contours", len(r.poly))
}

// IsEmpty is a predicate: does the region cover no area?
func (r *Region) IsEmpty() bool {
	return len(r.poly) == 0
}

// Contains is a predicate: does the region cover the given world position?
// Contours of the union may describe holes, so containment is decided by
// parity over all contours.
func (r *Region) Contains(p pathedit.Pair) bool {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	inside := false
	for _, c := range r.poly {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Set is an ordered collection of selected nodes. Adding a node marks its
// transient selection state; clearing the set unmarks every node.
type Set struct {
	nodes []*roadnet.Node
}

// Add appends a node to the selection, ignoring duplicates and nil.
func (s *Set) Add(n *roadnet.Node) {
	if n == nil || n.Selected {
		return
	}
	n.Selected = true
	s.nodes = append(s.nodes, n)
}

// Clear unselects every node and empties the set.
func (s *Set) Clear() {
	for _, n := range s.nodes {
		n.Selected = false
	}
	s.nodes = nil
}

// Nodes returns the selected nodes in selection order.
func (s *Set) Nodes() []*roadnet.Node {
	return s.nodes
}

// Len returns the selection size.
func (s *Set) Len() int {
	return len(s.nodes)
}

// FromRegion collects every permanent node of the map lying inside the
// region into a fresh selection set.
func FromRegion(m *roadnet.RoadMap, r *Region) *Set {
	s := &Set{}
	if m == nil || r == nil || r.IsEmpty() {
		return s
	}
	m.Each(func(n *roadnet.Node) {
		if r.Contains(n.Pos()) {
			s.Add(n)
		}
	})
	return s
}
