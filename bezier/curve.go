// Package bezier implements the interactive Bezier curve engine of the
// editor. A single generic curve type covers the quadratic through quintic
// orders; the point at parameter t is evaluated with the Bernstein basis
//
//	B(t) = Σ_{i=0..n} C(n,i) · (1−t)^(n−i) · t^i · P_i
//
// where P_0 and P_n are the anchor nodes and the P_i in between are the
// curve's control points. The curve keeps a transient list of interpolated
// preview nodes which is regenerated synchronously on every mutation, so
// the render layer never observes stale curve state.
package bezier

import (
	"math"

	"github.com/kferber/pathedit"
	"github.com/kferber/pathedit/roadnet"
)

// ControlPoint shapes the curve between the anchors. The displayable node
// carries the "actual" position used for hit-testing and rendering; the
// virtual position feeds the curve evaluation. Both move together on every
// drag, but the virtual position may receive a fine-motion scale, so the
// two can diverge by design of the drag transform.
type ControlPoint struct {
	Node    *roadnet.Node
	virtual pathedit.Pair
}

// Virtual returns the control point's position as used by the evaluator.
func (cp *ControlPoint) Virtual() pathedit.Pair {
	return cp.virtual
}

// Curve is one active curve instance between two anchor nodes. It is owned
// by the curve tool session that created it and lives until it is committed
// into the road map or cancelled.
type Curve struct {
	order    int
	start    *roadnet.Node
	end      *roadnet.Node
	controls []*ControlPoint
	binom    []float64
	nodes    []*roadnet.Node // interpolated sequence, anchors included
	count    int             // interpolation count (number of segments)
	kind     roadnet.Kind
	reverse  bool
	dual     bool
}

// New creates a curve of the given order between two anchors. Control points
// are laid out at an order-specific default derived from the anchors' map
// coordinates. The interpolation count comes from the caller's default
// setting and is clamped to a minimum of 2. The curve is recomputed once
// before New returns.
func New(start, end *roadnet.Node, order, count int) (*Curve, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, ErrUnsupportedOrder
	}
	if start == nil || end == nil {
		return nil, ErrMissingAnchor
	}
	if count < 2 {
		count = 2
	}
	c := &Curve{
		order: order,
		start: start,
		end:   end,
		binom: binomialRow(order),
		count: count,
		kind:  roadnet.KindRegular,
	}
	for i, p := range defaultControlLayout(start, end, order) {
		node := roadnet.NewTransientNode(i, p.X(), 0, p.Y(), roadnet.KindControl)
		c.controls = append(c.controls, &ControlPoint{Node: node, virtual: p})
	}
	c.Recompute()
	return c, nil
}

// Default control point positions, built from combinations of the anchors'
// x/z coordinates. The first control point sits at (start.x, end.z), the
// last at (end.x, start.z); quartic and quintic curves fill the middle from
// the midpoint.
func defaultControlLayout(start, end *roadnet.Node, order int) []pathedit.Pair {
	sx, sz := start.X, start.Z
	ex, ez := end.X, end.Z
	mx, mz := (sx+ex)/2, (sz+ez)/2
	switch order {
	case 2:
		return []pathedit.Pair{pathedit.P(sx, ez)}
	case 3:
		return []pathedit.Pair{pathedit.P(sx, ez), pathedit.P(ex, sz)}
	case 4:
		return []pathedit.Pair{pathedit.P(sx, ez), pathedit.P(mx, mz), pathedit.P(ex, sz)}
	}
	return []pathedit.Pair{
		pathedit.P(sx, ez), pathedit.P(mx, ez),
		pathedit.P(mx, sz), pathedit.P(ex, sz),
	}
}

// Row n of Pascal's triangle: the Bernstein coefficients C(n,i).
func binomialRow(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		row[i] = row[i-1] * float64(n-i+1) / float64(i)
	}
	return row
}

// Evaluate returns the point on the curve at parameter t ∈ [0,1]. Anchors
// contribute their map positions, control points their virtual positions.
// With an anchor missing, the origin is returned.
func (c *Curve) Evaluate(t float64) pathedit.Pair {
	if c.start == nil || c.end == nil {
		return pathedit.Origin
	}
	n := c.order
	var x, z float64
	for i := 0; i <= n; i++ {
		p := c.point(i)
		w := c.binom[i] * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += w * p.X()
		z += w * p.Y()
	}
	return pathedit.P(x, z)
}

func (c *Curve) point(i int) pathedit.Pair {
	if i == 0 {
		return c.start.Pos()
	}
	if i == c.order {
		return c.end.Pos()
	}
	return c.controls[i-1].virtual
}

// Recompute regenerates the interpolated node sequence: the start anchor,
// one transient preview node per interior step, the end anchor. With the
// step loop guarded at i+step < 1.0001 the sequence has count+1 entries for
// every count ≥ 1; a count below 1 degenerates to the two anchors. Missing
// anchors make Recompute a no-op.
func (c *Curve) Recompute() {
	if c.start == nil || c.end == nil {
		return
	}
	c.nodes = c.nodes[:0]
	c.nodes = append(c.nodes, c.start)
	if c.count >= 1 {
		step := 1.0 / float64(c.count)
		id := 0
		for i := step; i+step < stepTolerance; i += step {
			p := c.Evaluate(i)
			c.nodes = append(c.nodes, roadnet.NewTransientNode(id, p.X(), roadnet.NoElevation, p.Y(), c.kind))
			id++
		}
		if id != c.count-1 {
			tracer().Errorf("interpolation produced %d interior points, expected %d -- step = %g", id, c.count-1, step)
		}
	}
	c.nodes = append(c.nodes, c.end)
}

// Nodes returns the interpolated node sequence, anchors included. The
// interior nodes are transient previews owned by the curve until commit.
func (c *Curve) Nodes() []*roadnet.Node {
	return c.nodes
}

// Order returns the curve order (2..5).
func (c *Curve) Order() int {
	return c.order
}

// Tool returns the identity of the editing tool owning curves of this order.
func (c *Curve) Tool() Tool {
	return toolForOrder(c.order)
}

// Start returns the start anchor.
func (c *Curve) Start() *roadnet.Node {
	return c.start
}

// End returns the end anchor.
func (c *Curve) End() *roadnet.Node {
	return c.end
}

// ControlPoints returns the curve's control points in order.
func (c *Curve) ControlPoints() []*ControlPoint {
	return c.controls
}

// InterpolationCount returns the number of curve segments.
func (c *Curve) InterpolationCount() int {
	return c.count
}

// NodeKind returns the node kind applied to interpolated and committed nodes.
func (c *Curve) NodeKind() roadnet.Kind {
	return c.kind
}

// IsReverse is a predicate: will committed connections be reverse?
func (c *Curve) IsReverse() bool {
	return c.reverse
}

// IsDual is a predicate: will committed connections be dual?
func (c *Curve) IsDual() bool {
	return c.dual
}

// IsAnchor is a predicate: is this node one of the curve's anchors?
func (c *Curve) IsAnchor(n *roadnet.Node) bool {
	return n != nil && (n == c.start || n == c.end)
}

// IsControlPoint is a predicate: is this node one of the curve's control
// point nodes?
func (c *Curve) IsControlPoint(n *roadnet.Node) bool {
	if n == nil {
		return false
	}
	for _, cp := range c.controls {
		if cp.Node == n {
			return true
		}
	}
	return false
}

// SetStartAnchor replaces the start anchor and recomputes.
func (c *Curve) SetStartAnchor(n *roadnet.Node) {
	c.start = n
	c.Recompute()
}

// SetEndAnchor replaces the end anchor and recomputes.
func (c *Curve) SetEndAnchor(n *roadnet.Node) {
	c.end = n
	c.Recompute()
}

// SetNodeKind sets the curve-wide node kind and retags every interior
// interpolated node. The anchors are never retagged.
func (c *Curve) SetNodeKind(kind roadnet.Kind) {
	c.kind = kind
	for j := 1; j < len(c.nodes)-1; j++ {
		c.nodes[j].Kind = kind
	}
}

// SetReversePath marks committed connections as reverse. Attribute only,
// no recompute.
func (c *Curve) SetReversePath(reverse bool) {
	c.reverse = reverse
}

// SetDualPath marks committed connections as dual. Attribute only, no
// recompute.
func (c *Curve) SetDualPath(dual bool) {
	c.dual = dual
}

// SetInterpolationCount updates the segment count and recomputes if both
// anchors are present.
func (c *Curve) SetInterpolationCount(count int) {
	c.count = count
	if c.start != nil && c.end != nil {
		c.Recompute()
	}
}

// Clear releases the anchors and control points and empties the
// interpolated list. Clear is idempotent; a cleared curve ignores all
// further operations.
func (c *Curve) Clear() {
	c.start = nil
	c.end = nil
	c.controls = nil
	c.nodes = nil
}
