package lasso

import (
	"image/color"
	"time"

	"go.uber.org/zap"

	"freeselect/internal/geom"
)

const (
	// MinMoveDistance is the node-space distance a move must cover from the
	// last recorded point to be recorded.
	MinMoveDistance = 1.0
	// MaxPathPoints bounds the recorded path.
	MaxPathPoints = 2048
)

// gesture is the per-drag state.
type gesture struct {
	// enabled is the lasso mode as last refreshed from the modifier signal
	enabled bool
	points  geom.Polygon
	// suppress is set while the host's default end handler runs inside a
	// lasso release, so the host's rectangle selection does not commit.
	suppress bool
	// last is the closed polygon of the previous gesture
	last geom.Polygon
}

// TrackerConfig carries the settings the tracker reads.
type TrackerConfig struct {
	AlwaysEnabled bool
	Color         color.RGBA
	UseChroma     bool
	Chroma        Chroma
}

// Tracker is the lasso GestureHandler. It records the drag path and decides
// between the host's rectangle selection and a lasso selection on release.
type Tracker[O comparable] struct {
	fallback Fallback
	selector *Selector[O]
	signal   ModifierSignal
	cfg      TrackerConfig
	log      *zap.Logger

	g gesture
}

var (
	_ GestureHandler = (*Tracker[int])(nil)
	_ SelectionGuard = (*Tracker[int])(nil)
)

func NewTracker[O comparable](fallback Fallback, sel *Selector[O], signal ModifierSignal, cfg TrackerConfig, log *zap.Logger) *Tracker[O] {
	if log == nil {
		log = zap.NewNop()
	}
	if signal == nil {
		signal = &Binding{}
	}
	t := &Tracker[O]{fallback: fallback, selector: sel, signal: signal, cfg: cfg, log: log}
	t.Refresh()
	return t
}

// Refresh re-reads the modifier signal and updates lasso mode.
func (t *Tracker[O]) Refresh() bool {
	t.g.enabled = Enabled(t.cfg.AlwaysEnabled, t.signal.Active())
	return t.g.enabled
}

func (t *Tracker[O]) LassoEnabled() bool { return t.g.enabled }

// SetAlwaysEnabled flips the persistent toggle and refreshes the mode.
func (t *Tracker[O]) SetAlwaysEnabled(v bool) {
	t.cfg.AlwaysEnabled = v
	t.Refresh()
}

func (t *Tracker[O]) Config() TrackerConfig { return t.cfg }

// Points returns the path recorded so far. It must not be modified.
func (t *Tracker[O]) Points() geom.Polygon { return t.g.points }

func (t *Tracker[O]) SuppressSelection() bool { return t.g.suppress }

// OnBegin lets the host start its own swipe first; a refusal aborts the gesture.
func (t *Tracker[O]) OnBegin(p geom.Point) bool {
	if !t.fallback.BeginSwipe(p) {
		return false
	}
	if t.g.enabled {
		t.g.points = t.g.points[:0]
	}
	return true
}

// OnMove records p regardless of mode, so toggling the modifier mid-drag
// still has the full path. Points closer than MinMoveDistance to the last
// recorded one are dropped, and a path reaching MaxPathPoints is thinned
// to every other point.
func (t *Tracker[O]) OnMove(p geom.Point) {
	t.record(p)
	t.fallback.MoveSwipe(p)
}

func (t *Tracker[O]) record(p geom.Point) {
	pts := t.g.points
	if n := len(pts); n > 0 && pts[n-1].Dist(p) < MinMoveDistance {
		return
	}
	if len(pts) >= MaxPathPoints {
		pts = thin(pts)
		t.log.Debug("lasso path thinned", zap.Int("points", len(pts)))
	}
	t.g.points = append(pts, p)
}

// thin keeps the even-indexed points, in place.
func thin(pts geom.Polygon) geom.Polygon {
	n := 0
	for i := 0; i < len(pts); i += 2 {
		pts[n] = pts[i]
		n++
	}
	return pts[:n]
}

// LastPolygon is the closed path of the most recently finished gesture.
func (t *Tracker[O]) LastPolygon() geom.Polygon { return t.g.last }

// OnEnd closes the path. In lasso mode with an active swipe the host's end
// handling still runs, with its selection suppressed, before the lasso
// selection is committed. The path is consumed either way.
func (t *Tracker[O]) OnEnd(p geom.Point) {
	if len(t.g.points) > 0 {
		t.g.points = append(t.g.points, t.g.points[0])
	}
	defer t.consume()
	if !t.g.enabled || !t.fallback.SwipeActive() {
		t.fallback.EndSwipe(p)
		return
	}
	t.g.suppress = true
	t.fallback.EndSwipe(p)
	t.g.suppress = false
	if !t.selector.Select(t.g.points) {
		t.log.Debug("lasso too short, selection unchanged", zap.Int("points", len(t.g.points)))
	}
}

func (t *Tracker[O]) consume() {
	t.g.last = append(t.g.last[:0], t.g.points...)
	t.g.points = t.g.points[:0]
}

// Cancel drops the recorded path without selecting anything.
func (t *Tracker[O]) Cancel() {
	t.g.points = t.g.points[:0]
	t.g.suppress = false
	if t.fallback.SwipeActive() {
		t.fallback.CancelSwipe()
	}
}

// OnDraw refreshes the mode and draws the swipe overlay: the lasso path or
// the host's rectangle.
func (t *Tracker[O]) OnDraw(o Overlay, elapsed time.Duration) {
	t.Refresh()
	if !t.fallback.SwipeActive() {
		return
	}
	c := t.OverlayColor(elapsed)
	if t.g.enabled {
		pts := t.g.points
		for i := 0; i+1 < len(pts); i++ {
			o.Line(pts[i], pts[i+1], c)
		}
		return
	}
	start, end := t.fallback.SwipeRect()
	o.Rect(start, end, c)
}

// OverlayColor is the select colour, or the chroma colour at elapsed with the
// select colour's alpha.
func (t *Tracker[O]) OverlayColor(elapsed time.Duration) color.RGBA {
	if !t.cfg.UseChroma {
		return t.cfg.Color
	}
	c := t.cfg.Chroma.At(elapsed)
	c.A = t.cfg.Color.A
	return c
}
