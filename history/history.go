// Package history implements a linear undo/redo record of reversible edits.
// Every mutating operation of the editor (curve commits, node alignment,
// control-point drags) registers a Changeable; the manager replays them in
// strict order with no redo branching.
package history

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pathedit.history'
func tracer() tracing.Trace {
	return tracing.Select("pathedit.history")
}

// Changeable is a reversible edit. A Changeable must capture enough state at
// construction time to restore the world exactly on Undo, and to re-apply
// itself exactly on Redo.
type Changeable interface {
	Undo()
	Redo()
}

// Manager keeps an ordered list of changes plus the current position.
// Positions 0..index-1 have been applied; index..len-1 are redoable.
type Manager struct {
	changes []Changeable
	index   int
}

// NewManager creates an empty history.
func NewManager() *Manager {
	return &Manager{}
}

// Record appends a change after the current position. Any redoable changes
// beyond the position are discarded.
func (m *Manager) Record(c Changeable) {
	if c == nil {
		return
	}
	m.changes = append(m.changes[:m.index], c)
	m.index = len(m.changes)
	tracer().Debugf("recorded change %d of %d", m.index, len(m.changes))
}

// Undo reverts the change before the current position. Calling Undo at the
// start of the history is a no-op.
func (m *Manager) Undo() {
	if m.index == 0 {
		tracer().Debugf("undo at history start, ignored")
		return
	}
	m.index--
	m.changes[m.index].Undo()
}

// Redo re-applies the change at the current position. Calling Redo at the
// end of the history is a no-op.
func (m *Manager) Redo() {
	if m.index == len(m.changes) {
		tracer().Debugf("redo at history end, ignored")
		return
	}
	m.changes[m.index].Redo()
	m.index++
}

// CanUndo reports whether Undo would revert a change. The UI uses this to
// enable or disable the undo action.
func (m *Manager) CanUndo() bool {
	return m.index > 0
}

// CanRedo reports whether Redo would re-apply a change.
func (m *Manager) CanRedo() bool {
	return m.index < len(m.changes)
}

// Len returns the number of recorded changes.
func (m *Manager) Len() int {
	return len(m.changes)
}
