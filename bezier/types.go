package bezier

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pathedit.bezier'
func tracer() tracing.Trace {
	return tracing.Select("pathedit.bezier")
}

// The boundary guard for the interpolation step loop. Stepping t by 1/count
// accumulates floating-point error; the tolerance keeps the final interior
// point from being dropped. The exact constant is observable behaviour: it
// determines which interpolated points exist.
const stepTolerance = 1.0001

const (
	// MinOrder is the lowest supported curve order (quadratic).
	MinOrder = 2
	// MaxOrder is the highest supported curve order (quintic).
	MaxOrder = 5
)

var (
	// ErrUnsupportedOrder indicates a curve order outside [MinOrder,MaxOrder].
	ErrUnsupportedOrder = errors.New("unsupported curve order")
	// ErrMissingAnchor indicates a curve constructed without both anchors.
	ErrMissingAnchor = errors.New("curve needs a start and an end anchor")
)

// Tool names the editing tool owning a curve of a given order. The active
// tool identity decides whether the fine-motion scaler applies to virtual
// control point movement.
type Tool string

const (
	ToolQuad    Tool = "quad"
	ToolCubic   Tool = "cubic"
	ToolQuartic Tool = "quartic"
	ToolQuintic Tool = "quintic"
)

func toolForOrder(order int) Tool {
	switch order {
	case 2:
		return ToolQuad
	case 3:
		return ToolCubic
	case 4:
		return ToolQuartic
	}
	return ToolQuintic
}
