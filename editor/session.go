// Package editor ties the editing machinery together: a Session owns the
// road map, the undo/redo history, the active curve and the multi-node
// selection, and implements the compound edits (curve commit, alignment)
// that register with the history.
package editor

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"

	"github.com/kferber/pathedit"
	"github.com/kferber/pathedit/bezier"
	"github.com/kferber/pathedit/history"
	"github.com/kferber/pathedit/roadnet"
	"github.com/kferber/pathedit/selection"
	"github.com/kferber/pathedit/settings"
)

// tracer writes to trace with key 'pathedit.editor'
func tracer() tracing.Trace {
	return tracing.Select("pathedit.editor")
}

// ErrCurveActive indicates a curve tool tried to start a second curve while
// one is still being edited.
var ErrCurveActive = errors.New("a curve is already being edited")

// Autosaver is the background persistence scheduler. Compound edits suspend
// it so a save never observes a half-applied edit.
type Autosaver interface {
	Suspend()
	Resume()
}

// Session is one interactive editing session. All curve mutation, alignment
// and undo/redo run synchronously on the session's event thread; the session
// owns its state exclusively, so no locking is involved.
type Session struct {
	Map     *roadnet.RoadMap
	History *history.Manager
	Prefs   settings.Settings

	curve     *bezier.Curve
	selection *selection.Set
	autosave  Autosaver
	redraw    func()
	stale     bool
}

// NewSession creates a session over the given road map with default
// preferences and an empty history.
func NewSession(m *roadnet.RoadMap) *Session {
	return &Session{
		Map:       m,
		History:   history.NewManager(),
		Prefs:     settings.Default(),
		selection: &selection.Set{},
	}
}

// SetAutosaver registers the background persistence scheduler. A nil
// autosaver is allowed; suspension then is a no-op.
func (s *Session) SetAutosaver(a Autosaver) {
	s.autosave = a
}

// OnRedraw registers the callback notifying the render layer that curve or
// graph state changed.
func (s *Session) OnRedraw(f func()) {
	s.redraw = f
}

func (s *Session) requestRedraw() {
	if s.redraw != nil {
		s.redraw()
	}
}

// Suspend autosave for the duration of a compound edit. The returned
// release must run on every exit path, so callers defer it immediately.
func (s *Session) suspendAutosave() func() {
	if s.autosave != nil {
		s.autosave.Suspend()
	}
	return func() {
		if s.autosave != nil {
			s.autosave.Resume()
		}
	}
}

// IsStale is a predicate: has the document unsaved modifications?
func (s *Session) IsStale() bool {
	return s.stale
}

// MarkSaved resets the modified flag after a successful save.
func (s *Session) MarkSaved() {
	s.stale = false
}

// Curve returns the curve currently being edited, or nil.
func (s *Session) Curve() *bezier.Curve {
	return s.curve
}

// Selection returns the session's multi-select set.
func (s *Session) Selection() *selection.Set {
	return s.selection
}

// BeginCurve starts editing a curve of the given order between two anchor
// nodes. The interpolation count defaults from the session preferences.
func (s *Session) BeginCurve(start, end *roadnet.Node, order int) (*bezier.Curve, error) {
	if s.curve != nil {
		return nil, ErrCurveActive
	}
	c, err := bezier.New(start, end, order, s.Prefs.InterpolationPoints)
	if err != nil {
		return nil, err
	}
	s.curve = c
	s.requestRedraw()
	return c, nil
}

// CancelCurve discards the active curve. The graph is untouched and no
// history entry is produced.
func (s *Session) CancelCurve() {
	if s.curve == nil {
		return
	}
	s.curve.Clear()
	s.curve = nil
	s.requestRedraw()
}

// DragContext assembles the context for a control-point drag from the
// session preferences and the given viewport, pointer position and active
// tool identity.
func (s *Session) DragContext(view pathedit.Viewport, pointer pathedit.Pair, tool bezier.Tool) bezier.DragContext {
	return bezier.DragContext{
		View: view,
		Grid: bezier.GridConfig{
			Snap:             s.Prefs.GridSnap,
			SnapSubdivisions: s.Prefs.GridSnapSubs,
			SpacingX:         s.Prefs.GridSpacingX,
			SpacingZ:         s.Prefs.GridSpacingZ,
			Subdivisions:     s.Prefs.GridSubDivisions,
		},
		MoveScaler: s.Prefs.MoveScaler,
		ActiveTool: tool,
		Pointer:    pointer,
	}
}

// DragControlPoint moves a control point of the active curve and records
// the move in the history. Without an active curve this is a no-op.
func (s *Session) DragControlPoint(index int, screenDelta pathedit.Pair, ctx bezier.DragContext) {
	if s.curve == nil {
		return
	}
	drag := s.curve.MoveControlPoint(index, screenDelta, ctx)
	if drag == nil {
		return
	}
	s.History.Record(drag)
	s.requestRedraw()
}
