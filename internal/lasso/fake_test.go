package lasso

import (
	"image/color"

	"freeselect/internal/geom"
)

// fakeHost is an identity-transform host whose objects are boxes keyed by name.
type fakeHost struct {
	scale   float64
	objects map[string]geom.BBox
	order   []string

	probes    []geom.BBox
	selected  []string
	commits   int
	undos     int
	refreshes int
	labels    int
}

func newFakeHost() *fakeHost {
	return &fakeHost{scale: 1, objects: map[string]geom.BBox{}}
}

func (h *fakeHost) add(name string, b geom.BBox) {
	h.objects[name] = b
	h.order = append(h.order, name)
}

func (h *fakeHost) ToWorld(p geom.Point) geom.Point { return p.Scale(1 / h.scale) }
func (h *fakeHost) ViewScale() float64              { return h.scale }
func (h *fakeHost) CreateUndoSelection()            { h.undos++ }
func (h *fakeHost) UpdateButtons()                  { h.refreshes++ }
func (h *fakeHost) UpdateObjectInfoLabel()          { h.labels++ }

func (h *fakeHost) ObjectsInRect(r geom.BBox) []string {
	h.probes = append(h.probes, r)
	var out []string
	for _, name := range h.order {
		if h.objects[name].Intersects(r) {
			out = append(out, name)
		}
	}
	return out
}

func (h *fakeHost) SelectObjects(objs []string) {
	h.commits++
	h.selected = append([]string(nil), objs...)
}

// fakeFallback mimics a rectangle select that commits through the guard.
type fakeFallback struct {
	guard  SelectionGuard
	refuse bool

	active     bool
	start, end geom.Point
	begins     int
	moves      int
	ends       int
	cancels    int
	// rectCommits counts rectangle selections that got past the guard
	rectCommits int
	suppressed  int
}

func (f *fakeFallback) BeginSwipe(p geom.Point) bool {
	f.begins++
	if f.refuse {
		return false
	}
	f.active = true
	f.start, f.end = p, p
	return true
}

func (f *fakeFallback) MoveSwipe(p geom.Point) {
	f.moves++
	f.end = p
}

func (f *fakeFallback) EndSwipe(p geom.Point) {
	f.ends++
	if f.active {
		if f.guard != nil && f.guard.SuppressSelection() {
			f.suppressed++
		} else {
			f.rectCommits++
		}
	}
	f.active = false
}

func (f *fakeFallback) CancelSwipe() {
	f.cancels++
	f.active = false
}

func (f *fakeFallback) SwipeActive() bool                  { return f.active }
func (f *fakeFallback) SwipeRect() (start, end geom.Point) { return f.start, f.end }

type drawnLine struct {
	a, b geom.Point
	c    color.RGBA
}

type recordOverlay struct {
	lines []drawnLine
	rects []drawnLine
}

func (o *recordOverlay) Line(a, b geom.Point, c color.RGBA) { o.lines = append(o.lines, drawnLine{a, b, c}) }
func (o *recordOverlay) Rect(a, b geom.Point, c color.RGBA) { o.rects = append(o.rects, drawnLine{a, b, c}) }
