package roadnet

import (
	"fmt"

	"github.com/kferber/pathedit"
)

// NoElevation is the sentinel marking a node whose elevation has not been
// assigned yet. Node elevations are copied from a height map or neighbouring
// nodes when edits are committed.
const NoElevation = -1.0

// Kind classifies a node within the road network. The numeric values are
// part of the persisted map format and must not change.
type Kind int

const (
	KindRegular Kind = iota
	KindSubPrio
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindSubPrio:
		return "subprio"
	case KindControl:
		return "control"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is a single waypoint of the road network. X and Z span the map plane,
// Y is the elevation (NoElevation if unset). Selected is transient state of
// the interactive session and never persisted.
type Node struct {
	ID       int
	X, Y, Z  float64
	Kind     Kind
	Selected bool
}

// NewTransientNode creates a node that is not part of any road map. Curve
// previews and control points are transient until a curve is committed.
func NewTransientNode(id int, x, y, z float64, kind Kind) *Node {
	return &Node{ID: id, X: x, Y: y, Z: z, Kind: kind}
}

// Pos returns the node's position on the map plane.
func (n *Node) Pos() pathedit.Pair {
	return pathedit.P(n.X, n.Z)
}

// MoveBy translates the node on the map plane, keeping coordinates at
// 3 decimal places.
func (n *Node) MoveBy(dx, dz float64) {
	n.X = pathedit.RoundPlaces(n.X+dx, 3)
	n.Z = pathedit.RoundPlaces(n.Z+dz, 3)
}

// HasElevation is a predicate: has this node an assigned elevation?
func (n *Node) HasElevation() bool {
	return n.Y != NoElevation
}

func (n *Node) String() string {
	return fmt.Sprintf("node #%d %s at (%g,%g,%g)", n.ID, n.Kind, n.X, n.Y, n.Z)
}
