package lasso

import (
	"math"

	"go.uber.org/zap"

	"freeselect/internal/geom"
)

const (
	// MinPoints is the smallest closed polygon the selector acts on.
	MinPoints = 3
	// MaxCandidates bounds the samples of one scan. A finer grid is widened
	// to fit.
	MaxCandidates = 1 << 16
)

// Options control how a polygon is sampled and probed.
type Options struct {
	// GridSize is the sample spacing in world units.
	GridSize float64
	// GuaranteeCenter adds the bounding box centre as the first sample.
	GuaranteeCenter bool
	// PointsAsBoxes probes a GridSize x GridSize box around each sample
	// instead of the bare point.
	PointsAsBoxes bool
}

// Selector turns a closed lasso polygon into a selection on its host.
type Selector[O comparable] struct {
	host Host[O]
	opts Options
	log  *zap.Logger

	// reused between gestures
	samples []geom.Point
}

func NewSelector[O comparable](host Host[O], opts Options, log *zap.Logger) *Selector[O] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector[O]{host: host, opts: opts, log: log}
}

func (s *Selector[O]) Options() Options     { return s.opts }
func (s *Selector[O]) SetOptions(o Options) { s.opts = o }

// Step is the sample spacing in node space at the host's current zoom.
func (s *Selector[O]) Step() float64 {
	return s.opts.GridSize * s.host.ViewScale()
}

// Candidates returns the node-space sample points that fall inside poly.
// The optional centre comes first, then a column-major scan from the box
// minimum up to, but excluding, the maximum. A polygon with fewer than
// MinPoints points or a non-positive step yields nothing.
func (s *Selector[O]) Candidates(poly geom.Polygon) []geom.Point {
	s.samples = s.samples[:0]
	if len(poly) < MinPoints {
		return nil
	}
	bbox, _ := poly.Bounds()
	step := s.Step()
	if !(step > 0) || math.IsInf(step, 0) {
		s.log.Warn("lasso grid step is not positive, skipping scan", zap.Float64("step", step))
		return nil
	}
	if !bbox.Min().Finite() || !bbox.Max().Finite() {
		return nil
	}
	if wide := fitStep(bbox.Width(), bbox.Height(), step); wide != step {
		s.log.Warn("lasso grid too fine, widening step",
			zap.Float64("step", step),
			zap.Float64("widened", wide),
			zap.Int("max_candidates", MaxCandidates))
		step = wide
	}
	if s.opts.GuaranteeCenter {
		// the centre is added without testing it against the polygon
		s.samples = append(s.samples, bbox.Center())
	}
	for i := 0; ; i++ {
		x := bbox.MinX + float64(i)*step
		if x >= bbox.MaxX {
			break
		}
		for j := 0; ; j++ {
			y := bbox.MinY + float64(j)*step
			if y >= bbox.MaxY {
				break
			}
			pt := geom.Pt(x, y)
			if poly.Contains(pt) {
				s.samples = append(s.samples, pt)
			}
		}
	}
	return s.samples
}

// fitStep returns step, or the smallest wider step whose w x h scan stays
// within MaxCandidates samples.
func fitStep(w, h, step float64) float64 {
	tooMany := func(step float64) bool {
		cols, rows := math.Ceil(w/step), math.Ceil(h/step)
		return cols > MaxCandidates || rows > MaxCandidates || cols*rows > MaxCandidates
	}
	if !tooMany(step) {
		return step
	}
	step = max(step, math.Sqrt(w*h/MaxCandidates), max(w, h)/MaxCandidates)
	for tooMany(step) {
		step *= 1.05
	}
	return step
}

// Collect probes the host around every candidate and returns the union of
// the hits, each object once, in first-hit order.
func (s *Selector[O]) Collect(poly geom.Polygon) []O {
	candidates := s.Candidates(poly)
	if len(candidates) == 0 {
		return nil
	}
	var unit float64
	if s.opts.PointsAsBoxes {
		unit = s.opts.GridSize
	}
	var objs []O
	seen := make(map[O]struct{})
	for _, pt := range candidates {
		probe := geom.BoxAround(s.host.ToWorld(pt), unit, unit)
		for _, o := range s.host.ObjectsInRect(probe) {
			if _, dup := seen[o]; dup {
				continue
			}
			seen[o] = struct{}{}
			objs = append(objs, o)
		}
	}
	s.log.Debug("lasso collect",
		zap.Int("points", len(poly)),
		zap.Int("candidates", len(candidates)),
		zap.Int("objects", len(objs)))
	return objs
}

// Select replaces the host selection with the objects under poly. It is a
// no-op, and returns false, when poly has fewer than MinPoints points.
func (s *Selector[O]) Select(poly geom.Polygon) bool {
	if len(poly) < MinPoints {
		return false
	}
	objs := s.Collect(poly)
	s.host.CreateUndoSelection()
	s.host.SelectObjects(objs)
	s.host.UpdateButtons()
	s.host.UpdateObjectInfoLabel()
	return true
}
