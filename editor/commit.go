package editor

import (
	"github.com/kferber/pathedit/roadnet"
)

// CurveCommit is the reversible record of one committed curve: the interior
// nodes created from the interpolated points plus every connection of the
// sequence. A single undo removes the whole curve from the map.
type CurveCommit struct {
	session     *Session
	interior    []*roadnet.Node
	connections []*roadnet.Connection
	wasStale    bool
}

// Undo removes the committed nodes and connections and restores the
// modified flag captured before the commit.
func (c *CurveCommit) Undo() {
	for _, conn := range c.connections {
		c.session.Map.RemoveConnection(conn)
	}
	for _, n := range c.interior {
		c.session.Map.RemoveNode(n)
	}
	c.session.stale = c.wasStale
	c.session.requestRedraw()
}

// Redo puts the nodes back under their old ids and re-registers the
// connections.
func (c *CurveCommit) Redo() {
	for _, n := range c.interior {
		c.session.Map.RestoreNode(n)
	}
	for _, conn := range c.connections {
		c.session.Map.RestoreConnection(conn)
	}
	c.session.stale = true
	c.session.requestRedraw()
}

// CommitCurve converts the active curve into permanent graph state: one
// node per interior interpolated point with linearly interpolated
// elevation, sequential connections over start anchor, interior nodes and
// end anchor, and exactly one history entry covering it all. The curve is
// cleared afterwards. Without an active curve CommitCurve is a no-op.
//
// If exactly one anchor has an assigned elevation, the other inherits it
// before the elevation step is computed.
func (s *Session) CommitCurve() {
	if s.curve == nil {
		return
	}
	curve := s.curve
	if curve.Start() == nil || curve.End() == nil {
		return
	}
	nodes := curve.Nodes()
	if len(nodes) < 2 {
		return
	}
	defer s.suspendAutosave()()

	start, end := curve.Start(), curve.End()
	if start.HasElevation() && !end.HasElevation() {
		end.Y = start.Y
	}
	if end.HasElevation() && !start.HasElevation() {
		start.Y = end.Y
	}
	yStep := (end.Y - start.Y) / float64(len(nodes)-1)

	merged := make([]*roadnet.Node, 0, len(nodes))
	merged = append(merged, start)
	for j := 1; j < len(nodes)-1; j++ {
		n := nodes[j]
		merged = append(merged, s.Map.NewNode(n.X, start.Y+yStep*float64(j), n.Z, curve.NodeKind()))
	}
	merged = append(merged, end)

	conns := s.connectSequence(merged, curve.IsReverse(), curve.IsDual())
	s.History.Record(&CurveCommit{
		session:     s,
		interior:    merged[1 : len(merged)-1],
		connections: conns,
		wasStale:    s.stale,
	})
	s.stale = true
	curve.Clear()
	s.curve = nil
	s.requestRedraw()
	tracer().Infof("curve committed: %d new nodes, %d connections", len(merged)-2, len(conns))
}

// Sequential connections between consecutive nodes. Reverse takes
// precedence over dual when both attributes are set.
func (s *Session) connectSequence(nodes []*roadnet.Node, reverse, dual bool) []*roadnet.Connection {
	kind := roadnet.ConnectionStandard
	if reverse {
		kind = roadnet.ConnectionReverse
	} else if dual {
		kind = roadnet.ConnectionDual
	}
	conns := make([]*roadnet.Connection, 0, len(nodes)-1)
	for j := 0; j < len(nodes)-1; j++ {
		conns = append(conns, s.Map.Connect(nodes[j], nodes[j+1], kind))
	}
	return conns
}
