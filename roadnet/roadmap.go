// Package roadnet holds the persistent node/edge graph of the route network.
// Nodes are stored in an ordered map keyed by id so that iteration order is
// deterministic for rendering and persistence.
package roadnet

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"

	"github.com/kferber/pathedit"
)

// tracer writes to trace with key 'pathedit.roadnet'
func tracer() tracing.Trace {
	return tracing.Select("pathedit.roadnet")
}

// ConnectionKind tags a directed connection between two nodes.
type ConnectionKind int

const (
	ConnectionStandard ConnectionKind = iota
	ConnectionReverse
	ConnectionDual
)

// Connection is a directed edge of the road network.
type Connection struct {
	From, To *Node
	Kind     ConnectionKind
}

// RoadMap is the road network graph: nodes keyed by id plus the connections
// between them.
type RoadMap struct {
	nodes       *treemap.Map // id -> *Node, sorted by id
	connections []*Connection
	nextID      int
}

// New creates an empty road map.
func New() *RoadMap {
	return &RoadMap{
		nodes:  treemap.NewWithIntComparator(),
		nextID: 1,
	}
}

// NewNode creates a permanent node, assigns it the next free id and stores
// it in the map.
func (m *RoadMap) NewNode(x, y, z float64, kind Kind) *Node {
	n := &Node{ID: m.nextID, X: x, Y: y, Z: z, Kind: kind}
	m.nextID++
	m.nodes.Put(n.ID, n)
	return n
}

// Node looks up a node by id.
func (m *RoadMap) Node(id int) (*Node, bool) {
	v, ok := m.nodes.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Node), true
}

// NodeCount returns the number of permanent nodes.
func (m *RoadMap) NodeCount() int {
	return m.nodes.Size()
}

// Each calls f for every permanent node, in ascending id order.
func (m *RoadMap) Each(f func(*Node)) {
	it := m.nodes.Iterator()
	for it.Next() {
		f(it.Value().(*Node))
	}
}

// NodeAt returns the first node whose map position lies within radius of p,
// or nil. Used for pointer hit-testing.
func (m *RoadMap) NodeAt(p pathedit.Pair, radius float64) *Node {
	var hit *Node
	it := m.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		d := n.Pos() - p
		if real(d)*real(d)+imag(d)*imag(d) <= radius*radius {
			hit = n
			break
		}
	}
	return hit
}

// RemoveNode removes a node and every connection touching it.
func (m *RoadMap) RemoveNode(n *Node) {
	if n == nil {
		return
	}
	m.nodes.Remove(n.ID)
	kept := m.connections[:0]
	for _, c := range m.connections {
		if c.From != n && c.To != n {
			kept = append(kept, c)
		}
	}
	m.connections = kept
}

// RestoreNode puts a previously removed node back under its old id.
// Undo of a commit relies on node identity being preserved.
func (m *RoadMap) RestoreNode(n *Node) {
	if n == nil {
		return
	}
	if _, exists := m.nodes.Get(n.ID); exists {
		tracer().Errorf("restoring node #%d over an existing node", n.ID)
	}
	m.nodes.Put(n.ID, n)
	if n.ID >= m.nextID {
		m.nextID = n.ID + 1
	}
}

// Connect creates a connection between two nodes and registers it.
func (m *RoadMap) Connect(from, to *Node, kind ConnectionKind) *Connection {
	if from == nil || to == nil {
		return nil
	}
	c := &Connection{From: from, To: to, Kind: kind}
	m.connections = append(m.connections, c)
	return c
}

// RemoveConnection unregisters a connection.
func (m *RoadMap) RemoveConnection(c *Connection) {
	for i, cc := range m.connections {
		if cc == c {
			m.connections = append(m.connections[:i], m.connections[i+1:]...)
			return
		}
	}
}

// RestoreConnection re-registers a previously removed connection.
func (m *RoadMap) RestoreConnection(c *Connection) {
	if c == nil {
		return
	}
	m.connections = append(m.connections, c)
}

// ConnectionCount returns the number of connections.
func (m *RoadMap) ConnectionCount() int {
	return len(m.connections)
}

// Connections returns the connections in creation order.
func (m *RoadMap) Connections() []*Connection {
	return m.connections
}
