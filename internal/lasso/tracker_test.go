package lasso

import (
	"image/color"
	"slices"
	"testing"
	"time"

	"freeselect/internal/geom"
)

func newTestTracker(always bool, sig ModifierSignal) (*Tracker[string], *fakeHost, *fakeFallback) {
	h := newFakeHost()
	h.add("in", geom.BoxAround(geom.Pt(5, 5), 2, 2))
	h.add("out", geom.BoxAround(geom.Pt(50, 50), 2, 2))
	fb := &fakeFallback{}
	sel := NewSelector[string](h, Options{GridSize: 1, PointsAsBoxes: true}, nil)
	tr := NewTracker(fb, sel, sig, TrackerConfig{AlwaysEnabled: always, Color: color.RGBA{R: 1, G: 2, B: 3, A: 200}}, nil)
	fb.guard = tr
	return tr, h, fb
}

func drag(tr *Tracker[string], pts ...geom.Point) {
	tr.OnBegin(pts[0])
	for _, p := range pts[1:] {
		tr.OnMove(p)
	}
	tr.OnEnd(pts[len(pts)-1])
}

var squarePath = []geom.Point{geom.Pt(0, 0), geom.Pt(0, 10), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 0)}

func TestEnabledInversionLaw(t *testing.T) {
	for _, always := range []bool{false, true} {
		if Enabled(always, false) == Enabled(always, true) {
			t.Errorf("always=%v: toggling the modifier did not flip the mode", always)
		}
	}
	if Enabled(true, false) != Enabled(false, true) {
		t.Error("Enabled(true, false) != Enabled(false, true)")
	}
	if Enabled(false, false) || Enabled(true, true) {
		t.Error("rectangle mode expected when modifier and toggle agree")
	}
}

func TestTrackerLassoSelects(t *testing.T) {
	tr, h, fb := newTestTracker(true, &Binding{})
	drag(tr, squarePath...)

	if fb.rectCommits != 0 {
		t.Errorf("rectangle selection committed %d times, want 0", fb.rectCommits)
	}
	if fb.suppressed != 1 || fb.ends != 1 {
		t.Errorf("fallback end: suppressed=%d ends=%d, want 1/1", fb.suppressed, fb.ends)
	}
	if tr.SuppressSelection() {
		t.Error("suppression still set after the gesture")
	}
	if !slices.Equal(h.selected, []string{"in"}) {
		t.Errorf("selected = %v, want [in]", h.selected)
	}
	last := tr.LastPolygon()
	if !last.IsClosed() || len(last) != len(squarePath) {
		t.Errorf("LastPolygon() = %v, want closed path of %d points", last, len(squarePath))
	}
	if len(tr.Points()) != 0 {
		t.Errorf("Points() = %v after end, want empty", tr.Points())
	}
}

func TestTrackerRectangleMode(t *testing.T) {
	tr, h, fb := newTestTracker(false, &Binding{})
	drag(tr, squarePath...)
	if fb.rectCommits != 1 {
		t.Errorf("rectangle commits = %d, want 1", fb.rectCommits)
	}
	if h.commits != 0 {
		t.Errorf("lasso commits = %d, want 0", h.commits)
	}
}

func TestTrackerModifierFlipsMode(t *testing.T) {
	b := &Binding{}
	tr, h, fb := newTestTracker(false, b)
	b.Press()
	tr.Refresh()
	drag(tr, squarePath...)
	if h.commits != 1 || fb.rectCommits != 0 {
		t.Errorf("held modifier: lasso commits=%d rect commits=%d", h.commits, fb.rectCommits)
	}
	b.Release()
	tr.Refresh()
	drag(tr, squarePath...)
	if h.commits != 1 || fb.rectCommits != 1 {
		t.Errorf("released modifier: lasso commits=%d rect commits=%d", h.commits, fb.rectCommits)
	}
}

func TestTrackerRecordsWhileDisabled(t *testing.T) {
	b := &Binding{}
	tr, h, _ := newTestTracker(false, b)
	tr.OnBegin(squarePath[0])
	for _, p := range squarePath[1:] {
		tr.OnMove(p)
	}
	// modifier pressed mid-drag; the frame callback picks it up
	b.Press()
	tr.OnDraw(&recordOverlay{}, 0)
	tr.OnEnd(squarePath[len(squarePath)-1])
	if !slices.Equal(h.selected, []string{"in"}) {
		t.Errorf("selected = %v, want [in]", h.selected)
	}
}

func TestTrackerShortGestureIsNoop(t *testing.T) {
	tr, h, fb := newTestTracker(true, &Binding{})
	drag(tr, geom.Pt(0, 0), geom.Pt(1, 1))
	if h.commits != 0 || h.undos != 0 {
		t.Errorf("short gesture committed: commits=%d undos=%d", h.commits, h.undos)
	}
	if fb.rectCommits != 0 {
		t.Errorf("short gesture leaked a rectangle commit")
	}
}

func TestTrackerEndWithoutPoints(t *testing.T) {
	tr, h, fb := newTestTracker(true, &Binding{})
	tr.OnEnd(geom.Pt(3, 3))
	if fb.ends != 1 {
		t.Errorf("fallback ends = %d, want 1", fb.ends)
	}
	if h.commits != 0 {
		t.Errorf("commits = %d, want 0", h.commits)
	}
	if len(tr.LastPolygon()) != 0 {
		t.Errorf("LastPolygon() = %v, want empty", tr.LastPolygon())
	}
}

func TestTrackerBeginRefused(t *testing.T) {
	tr, _, fb := newTestTracker(true, &Binding{})
	fb.refuse = true
	if tr.OnBegin(geom.Pt(0, 0)) {
		t.Error("OnBegin() = true when the host refused")
	}
}

func TestTrackerBeginClearsOnlyInLassoMode(t *testing.T) {
	b := &Binding{}
	tr, _, _ := newTestTracker(false, b)
	tr.OnMove(geom.Pt(1, 1))
	tr.OnBegin(geom.Pt(2, 2))
	if len(tr.Points()) != 1 {
		t.Errorf("rectangle mode begin: points = %v, want kept", tr.Points())
	}
	b.Press()
	tr.Refresh()
	tr.OnBegin(geom.Pt(2, 2))
	if len(tr.Points()) != 0 {
		t.Errorf("lasso mode begin: points = %v, want cleared", tr.Points())
	}
}

func TestTrackerCancel(t *testing.T) {
	tr, h, fb := newTestTracker(true, &Binding{})
	tr.OnBegin(geom.Pt(0, 0))
	tr.OnMove(geom.Pt(0, 10))
	tr.OnMove(geom.Pt(10, 10))
	tr.Cancel()
	if len(tr.Points()) != 0 || fb.active || fb.cancels != 1 {
		t.Errorf("after Cancel: points=%v active=%v cancels=%d", tr.Points(), fb.active, fb.cancels)
	}
	tr.OnEnd(geom.Pt(10, 10))
	if h.commits != 0 {
		t.Errorf("cancelled gesture committed")
	}
}

func TestTrackerDraw(t *testing.T) {
	b := &Binding{}
	tr, _, _ := newTestTracker(true, b)
	o := &recordOverlay{}

	tr.OnDraw(o, 0)
	if len(o.lines)+len(o.rects) != 0 {
		t.Error("drew an overlay without an active swipe")
	}

	tr.OnBegin(geom.Pt(0, 0))
	tr.OnMove(geom.Pt(0, 10))
	tr.OnMove(geom.Pt(10, 10))
	tr.OnMove(geom.Pt(10, 0))
	tr.OnDraw(o, 0)
	if len(o.lines) != 2 || len(o.rects) != 0 {
		t.Fatalf("lasso overlay: lines=%d rects=%d, want 2/0", len(o.lines), len(o.rects))
	}
	if o.lines[0].c != (color.RGBA{R: 1, G: 2, B: 3, A: 200}) {
		t.Errorf("line colour = %v", o.lines[0].c)
	}

	b.Press()
	o = &recordOverlay{}
	tr.OnDraw(o, 0)
	if tr.LassoEnabled() {
		t.Error("modifier should switch to rectangle mode")
	}
	if len(o.rects) != 1 || len(o.lines) != 0 {
		t.Fatalf("rectangle overlay: lines=%d rects=%d, want 0/1", len(o.lines), len(o.rects))
	}
	if !o.rects[0].a.Eq(geom.Pt(0, 0)) || !o.rects[0].b.Eq(geom.Pt(10, 0)) {
		t.Errorf("rect = %v..%v", o.rects[0].a, o.rects[0].b)
	}
}

func TestTrackerChromaColour(t *testing.T) {
	tr, _, _ := newTestTracker(true, &Binding{})
	tr.cfg.UseChroma = true
	tr.cfg.Chroma = Chroma{Segment: time.Second}
	c := tr.OverlayColor(time.Second)
	if c.A != 200 {
		t.Errorf("chroma alpha = %d, want select colour alpha 200", c.A)
	}
	if c.R != 128 || c.G != 255 || c.B != 255 {
		t.Errorf("chroma at 1s = %v, want first keyframe", c)
	}
}

// jitterPath walks the square path in small steps, wobbling by less than
// MinMoveDistance around each step.
func jitterPath(steps int) []geom.Point {
	var pts []geom.Point
	for i := 0; i+1 < len(squarePath); i++ {
		a, b := squarePath[i], squarePath[i+1]
		for k := 0; k < steps; k++ {
			p := a.Add(b.Sub(a).Scale(float64(k) / float64(steps)))
			wobble := 0.3
			if k%2 == 1 {
				wobble = -0.3
			}
			pts = append(pts, p.Add(geom.Pt(wobble, wobble)), p)
		}
	}
	return append(pts, squarePath[len(squarePath)-1])
}

func TestTrackerLongJitteryDragStaysBounded(t *testing.T) {
	for _, always := range []bool{true, false} {
		tr, h, _ := newTestTracker(always, &Binding{})
		path := jitterPath(5000)
		tr.OnBegin(path[0])
		for _, p := range path[1:] {
			tr.OnMove(p)
			if n := len(tr.Points()); n > MaxPathPoints {
				t.Fatalf("always=%v: Points() grew to %d", always, n)
			}
		}
		if len(tr.Points()) == 0 {
			t.Errorf("always=%v: nothing recorded", always)
		}
		tr.OnEnd(path[len(path)-1])
		if always && !slices.Equal(h.selected, []string{"in"}) {
			t.Errorf("selected = %v, want [in]", h.selected)
		}
	}
}

func TestTrackerLongDragThinsPath(t *testing.T) {
	tr, h, _ := newTestTracker(true, &Binding{})
	tr.OnBegin(geom.Pt(0, 0))
	// a long zigzag, each move far enough to record
	for i := 0; i < 4*MaxPathPoints; i++ {
		x := i % 200
		if x > 100 {
			x = 200 - x
		}
		tr.OnMove(geom.Pt(float64(x)*1.5, float64(i)*0.01))
	}
	if n := len(tr.Points()); n > MaxPathPoints || n < MaxPathPoints/2 {
		t.Errorf("Points() = %d, want between %d and %d", n, MaxPathPoints/2, MaxPathPoints)
	}
	tr.OnEnd(geom.Pt(0, 10))
	if h.commits != 1 {
		t.Errorf("lasso commits = %d, want 1", h.commits)
	}
}

func TestTrackerDropsNearbyMoves(t *testing.T) {
	tr, _, fb := newTestTracker(false, &Binding{})
	tr.OnBegin(geom.Pt(0, 0))
	tr.OnMove(geom.Pt(0, 0))
	tr.OnMove(geom.Pt(0.5, 0))
	tr.OnMove(geom.Pt(0.5, 0.5))
	tr.OnMove(geom.Pt(3, 0))
	want := geom.Polygon{geom.Pt(0, 0), geom.Pt(3, 0)}
	if !slices.Equal(tr.Points(), want) {
		t.Errorf("Points() = %v, want %v", tr.Points(), want)
	}
	// the host still sees every move
	if fb.moves != 4 {
		t.Errorf("fallback moves = %d, want 4", fb.moves)
	}
}
