package editor

import (
	"github.com/kferber/pathedit/roadnet"
)

// nodeDelta stores the per-axis offsets of one aligned node. A zero delta
// means the axis was not touched by the alignment; undo and redo skip it.
type nodeDelta struct {
	node       *roadnet.Node
	dx, dy, dz float64
}

// Alignment is the reversible record of one batch alignment: the prior
// modified flag plus the per-node, per-axis deltas.
type Alignment struct {
	session  *Session
	wasStale bool
	deltas   []nodeDelta
}

// Undo restores each node's pre-alignment coordinates on exactly the axes
// the alignment touched.
func (a *Alignment) Undo() {
	for _, d := range a.deltas {
		d.node.X += d.dx
		d.node.Y += d.dy
		d.node.Z += d.dz
	}
	a.session.stale = a.wasStale
	a.session.requestRedraw()
}

// Redo re-applies the same deltas.
func (a *Alignment) Redo() {
	for _, d := range a.deltas {
		d.node.X -= d.dx
		d.node.Y -= d.dy
		d.node.Z -= d.dz
	}
	a.session.stale = true
	a.session.requestRedraw()
}

// Align snaps every selected node to the given target coordinates, axis by
// axis. A zero target value is a sentinel meaning "leave this axis alone",
// not a coordinate to move to. The whole batch registers as one history
// entry; the active curve is recomputed since its anchors or control points
// may be among the moved nodes, and the selection is cleared afterwards.
// With an empty selection Align is a no-op.
func (s *Session) Align(x, y, z float64) {
	nodes := s.selection.Nodes()
	if len(nodes) == 0 {
		return
	}
	defer s.suspendAutosave()()

	change := &Alignment{session: s, wasStale: s.stale}
	for _, n := range nodes {
		d := nodeDelta{node: n}
		if x != 0 {
			d.dx = n.X - x
		}
		if y != 0 {
			d.dy = n.Y - y
		}
		if z != 0 {
			d.dz = n.Z - z
		}
		n.X -= d.dx
		n.Y -= d.dy
		n.Z -= d.dz
		change.deltas = append(change.deltas, d)
	}
	if s.curve != nil {
		s.curve.Recompute()
	}
	s.stale = true
	s.selection.Clear()
	s.requestRedraw()
	s.History.Record(change)
	tracer().Debugf("aligned %d nodes to (%g,%g,%g)", len(change.deltas), x, y, z)
}

// AlignToNode aligns the selection to a target node on the requested axes.
// The target node's coordinate is passed through the zero-sentinel
// convention of Align, so aligning to a coordinate of exactly 0 leaves
// that axis untouched.
func (s *Session) AlignToNode(target *roadnet.Node, alignX, alignY, alignZ bool) {
	if target == nil {
		return
	}
	var x, y, z float64
	if alignX {
		x = target.X
	}
	if alignY {
		y = target.Y
	}
	if alignZ {
		z = target.Z
	}
	s.Align(x, y, z)
}
