package bezier

import (
	"github.com/kferber/pathedit"
	"github.com/kferber/pathedit/roadnet"
)

// GridConfig is the grid-snap configuration the drag transform consults.
// Spacing is given per map axis; with SnapSubdivisions set, positions snap
// to the subdivision lines instead of the main grid lines.
type GridConfig struct {
	Snap             bool
	SnapSubdivisions bool
	SpacingX         float64
	SpacingZ         float64
	Subdivisions     int
}

func (g GridConfig) spacing() (float64, float64) {
	sx, sz := g.SpacingX, g.SpacingZ
	if g.SnapSubdivisions {
		div := float64(g.Subdivisions + 1)
		sx /= div
		sz /= div
	}
	return sx, sz
}

// DragContext carries the external state a control-point drag depends on:
// the viewport for screen/world conversion, the grid configuration, the
// fine-motion scaler with the identity of the currently active tool, and
// the pointer's screen position before the drag.
type DragContext struct {
	View       pathedit.Viewport
	Grid       GridConfig
	MoveScaler float64
	ActiveTool Tool
	Pointer    pathedit.Pair
}

// The world-space delta for a pointer drag. In free mode the screen delta is
// scaled by mapScale/zoom and rounded to 3 decimal places. In grid-snap mode
// the new absolute pointer position is converted to world space, rounded to
// the nearest grid (or subdivision) line, and the delta derived against the
// node's current position.
func (ctx DragContext) worldDelta(node *roadnet.Node, screenDelta pathedit.Pair) pathedit.Pair {
	if ctx.Grid.Snap {
		p := ctx.View.ScreenToWorld(ctx.Pointer.Shifted(screenDelta))
		sx, sz := ctx.Grid.spacing()
		newX := pathedit.SnapTo(p.X(), sx)
		newZ := pathedit.SnapTo(p.Y(), sz)
		return pathedit.P(newX-node.X, newZ-node.Z)
	}
	return ctx.View.ScaleDelta(screenDelta)
}

// HitControlPoint returns the index of the control point whose map position
// lies within radius of the pointer's screen position projected to world
// space, or -1.
func (c *Curve) HitControlPoint(screen pathedit.Pair, view pathedit.Viewport, radius float64) int {
	if c.start == nil || c.end == nil {
		return -1
	}
	world := view.ScreenToWorld(screen)
	for i, cp := range c.controls {
		d := cp.Node.Pos() - world
		if real(d)*real(d)+imag(d)*imag(d) <= radius*radius {
			return i
		}
	}
	return -1
}

// Drag is the reversible record of one control-point move. Undo restores
// both the actual and the virtual position.
type Drag struct {
	curve *Curve
	cp    *ControlPoint
	delta pathedit.Pair
	scale float64
}

// Delta returns the applied world-space delta.
func (d *Drag) Delta() pathedit.Pair {
	return d.delta
}

// Undo moves the control point back and recomputes the curve.
func (d *Drag) Undo() {
	d.cp.Node.MoveBy(-d.delta.X(), -d.delta.Y())
	d.cp.virtual = d.cp.virtual.Shifted(d.delta.Scaled(-d.scale))
	d.curve.Recompute()
}

// Redo re-applies the move and recomputes the curve.
func (d *Drag) Redo() {
	d.curve.applyControlDelta(d.cp, d.delta, d.scale)
}

// MoveControlPoint translates a pointer drag into control-point motion.
// The displayable node always receives the unscaled world delta; the
// virtual position receives the fine-motion scaler when the curve's own
// tool is the active one, so switching tools never implicitly rescales the
// curve shape. The curve is recomputed before MoveControlPoint returns.
// The returned Drag is ready to be recorded in the undo history; a move on
// an incomplete curve or with an index out of range returns nil.
func (c *Curve) MoveControlPoint(index int, screenDelta pathedit.Pair, ctx DragContext) *Drag {
	if c.start == nil || c.end == nil {
		return nil
	}
	if index < 0 || index >= len(c.controls) {
		return nil
	}
	cp := c.controls[index]
	delta := ctx.worldDelta(cp.Node, screenDelta)
	scale := 1.0
	if ctx.ActiveTool == c.Tool() && ctx.MoveScaler > 0 {
		scale = ctx.MoveScaler
	}
	c.applyControlDelta(cp, delta, scale)
	return &Drag{curve: c, cp: cp, delta: delta, scale: scale}
}

func (c *Curve) applyControlDelta(cp *ControlPoint, delta pathedit.Pair, scale float64) {
	cp.Node.MoveBy(delta.X(), delta.Y())
	cp.virtual = cp.virtual.Shifted(delta.Scaled(scale))
	c.Recompute()
}
