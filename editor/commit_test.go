package editor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/kferber/pathedit/roadnet"
)

// saveRecorder counts autosave suspend/resume calls.
type saveRecorder struct {
	suspends, resumes int
}

func (r *saveRecorder) Suspend() { r.suspends++ }
func (r *saveRecorder) Resume()  { r.resumes++ }

func quarticSession(t *testing.T) (*Session, *roadnet.Node, *roadnet.Node) {
	t.Helper()
	m := roadnet.New()
	s := NewSession(m)
	start := m.NewNode(0, 0, 0, roadnet.KindRegular)
	end := m.NewNode(10, 0, 10, roadnet.KindRegular)
	if _, err := s.BeginCurve(start, end, 4); err != nil {
		t.Fatalf("BeginCurve failed: %v", err)
	}
	s.Curve().SetInterpolationCount(4)
	return s, start, end
}

func TestCommitQuarticCreatesNodesAndConnections(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _, _ := quarticSession(t)
	s.CommitCurve()

	if got := s.Map.NodeCount(); got != 5 {
		t.Errorf("expected 2 anchors + 3 interior nodes, got %d", got)
	}
	if got := s.Map.ConnectionCount(); got != 4 {
		t.Errorf("expected 4 sequential connections, got %d", got)
	}
	if got := s.History.Len(); got != 1 {
		t.Errorf("expected exactly one history entry, got %d", got)
	}
	if s.Curve() != nil {
		t.Errorf("expected curve to be cleared after commit")
	}
	if !s.IsStale() {
		t.Errorf("expected commit to mark the document modified")
	}
}

func TestCommitUndoRemovesWholeCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _, _ := quarticSession(t)
	s.CommitCurve()
	s.History.Undo()
	if got := s.Map.NodeCount(); got != 2 {
		t.Errorf("expected only the anchors after undo, got %d nodes", got)
	}
	if got := s.Map.ConnectionCount(); got != 0 {
		t.Errorf("expected no connections after undo, got %d", got)
	}
	if s.IsStale() {
		t.Errorf("expected undo to restore the unmodified flag")
	}
	s.History.Redo()
	if s.Map.NodeCount() != 5 || s.Map.ConnectionCount() != 4 {
		t.Errorf("expected redo to restore 5 nodes and 4 connections, got %d/%d",
			s.Map.NodeCount(), s.Map.ConnectionCount())
	}
	if !s.IsStale() {
		t.Errorf("expected redo to mark the document modified")
	}
}

func TestCommitElevationResolutionAndStep(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := roadnet.New()
	s := NewSession(m)
	start := m.NewNode(0, 1, 0, roadnet.KindRegular)
	end := m.NewNode(10, 5, 10, roadnet.KindRegular)
	if _, err := s.BeginCurve(start, end, 4); err != nil {
		t.Fatal(err)
	}
	s.Curve().SetInterpolationCount(4)
	s.CommitCurve()

	// yStep = (5-1)/4 = 1; interior elevations 2, 3, 4
	var interior []*roadnet.Node
	m.Each(func(n *roadnet.Node) {
		if n != start && n != end {
			interior = append(interior, n)
		}
	})
	if len(interior) != 3 {
		t.Fatalf("expected 3 interior nodes, got %d", len(interior))
	}
	for i, n := range interior {
		assert.InDelta(t, float64(i+2), n.Y, 1e-9, "interior node %d elevation", i)
	}
}

func TestCommitCopiesElevationOverSentinel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := roadnet.New()
	s := NewSession(m)
	start := m.NewNode(0, 7, 0, roadnet.KindRegular)
	end := m.NewNode(10, roadnet.NoElevation, 10, roadnet.KindRegular)
	if _, err := s.BeginCurve(start, end, 2); err != nil {
		t.Fatal(err)
	}
	s.CommitCurve()
	assert.InDelta(t, 7.0, end.Y, 1e-9, "unset end elevation must inherit the start's")
}

func TestCommitWithoutInteriorPointsConnectsAnchors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := roadnet.New()
	s := NewSession(m)
	start := m.NewNode(0, 0, 0, roadnet.KindRegular)
	end := m.NewNode(4, 0, 4, roadnet.KindRegular)
	if _, err := s.BeginCurve(start, end, 2); err != nil {
		t.Fatal(err)
	}
	s.Curve().SetInterpolationCount(1) // anchors only
	s.CommitCurve()
	if m.NodeCount() != 2 {
		t.Errorf("expected no interior nodes, got %d total", m.NodeCount())
	}
	if m.ConnectionCount() != 1 {
		t.Errorf("expected a direct anchor-to-anchor connection, got %d", m.ConnectionCount())
	}
	if s.History.Len() != 1 {
		t.Errorf("expected one history entry, got %d", s.History.Len())
	}
	conn := m.Connections()[0]
	if conn.From != start || conn.To != end {
		t.Errorf("expected connection start->end, got %v -> %v", conn.From, conn.To)
	}
}

func TestCommitConnectionKindPrecedence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		reverse, dual bool
		want          roadnet.ConnectionKind
	}{
		{false, false, roadnet.ConnectionStandard},
		{false, true, roadnet.ConnectionDual},
		{true, false, roadnet.ConnectionReverse},
		{true, true, roadnet.ConnectionReverse}, // reverse wins over dual
	}
	for _, tc := range cases {
		m := roadnet.New()
		s := NewSession(m)
		start := m.NewNode(0, 0, 0, roadnet.KindRegular)
		end := m.NewNode(4, 0, 4, roadnet.KindRegular)
		if _, err := s.BeginCurve(start, end, 2); err != nil {
			t.Fatal(err)
		}
		s.Curve().SetReversePath(tc.reverse)
		s.Curve().SetDualPath(tc.dual)
		s.CommitCurve()
		for _, c := range m.Connections() {
			if c.Kind != tc.want {
				t.Errorf("reverse=%v dual=%v: expected kind %v, got %v",
					tc.reverse, tc.dual, tc.want, c.Kind)
			}
		}
	}
}

func TestCommitTagsNodesWithCurveKind(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, start, end := quarticSession(t)
	s.Curve().SetNodeKind(roadnet.KindSubPrio)
	s.CommitCurve()
	s.Map.Each(func(n *roadnet.Node) {
		if n == start || n == end {
			return
		}
		if n.Kind != roadnet.KindSubPrio {
			t.Errorf("expected committed node tagged subprio, got %v", n.Kind)
		}
	})
}

func TestCommitSuspendsAndResumesAutosave(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _, _ := quarticSession(t)
	rec := &saveRecorder{}
	s.SetAutosaver(rec)
	s.CommitCurve()
	if rec.suspends != 1 || rec.resumes != 1 {
		t.Errorf("expected paired suspend/resume, got %d/%d", rec.suspends, rec.resumes)
	}
	s.CommitCurve() // no active curve, must not touch autosave
	if rec.suspends != 1 || rec.resumes != 1 {
		t.Errorf("no-op commit must not touch autosave, got %d/%d", rec.suspends, rec.resumes)
	}
}

func TestCancelCurveLeavesNoTrace(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _, _ := quarticSession(t)
	s.CancelCurve()
	if s.Curve() != nil {
		t.Errorf("expected no active curve after cancel")
	}
	if s.Map.NodeCount() != 2 || s.Map.ConnectionCount() != 0 {
		t.Errorf("cancel must not mutate the graph")
	}
	if s.History.Len() != 0 {
		t.Errorf("cancel must not produce a history entry")
	}
	if s.IsStale() {
		t.Errorf("cancel must not mark the document modified")
	}
}

func TestBeginCurveGuardsActiveCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, start, end := quarticSession(t)
	if _, err := s.BeginCurve(start, end, 2); err != ErrCurveActive {
		t.Errorf("expected ErrCurveActive, got %v", err)
	}
}

func TestBeginCurveDefaultsCountFromPrefs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := roadnet.New()
	s := NewSession(m)
	s.Prefs.InterpolationPoints = 7
	start := m.NewNode(0, 0, 0, roadnet.KindRegular)
	end := m.NewNode(4, 0, 4, roadnet.KindRegular)
	c, err := s.BeginCurve(start, end, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.InterpolationCount() != 7 {
		t.Errorf("expected count 7 from preferences, got %d", c.InterpolationCount())
	}
}
