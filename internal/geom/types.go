package geom

import "math"

// Point is a 2D coordinate. Which space it lives in (node or world) is up to the caller.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Dist(q Point) float64  { return math.Hypot(p.X-q.X, p.Y-q.Y) }
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }
func (p Point) Finite() bool          { return isFinite(p.X) && isFinite(p.Y) }
func (p Point) Eq(q Point) bool       { return p.X == q.X && p.Y == q.Y }
func (p Point) In(b BBox) bool        { return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY }

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Bounds returns the axis-aligned box over pts. ok is false for an empty slice.
func Bounds(pts []Point) (bbox BBox, ok bool) {
	for i, p := range pts {
		if i == 0 {
			bbox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			continue
		}
		bbox = bbox.Extend(p)
	}
	return bbox, len(pts) > 0
}

// Extend grows the box to include p.
func (b BBox) Extend(p Point) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

func (b BBox) Min() Point      { return Point{X: b.MinX, Y: b.MinY} }
func (b BBox) Max() Point      { return Point{X: b.MaxX, Y: b.MaxY} }
func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center is the exact midpoint of the box, independent of any grid alignment.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Intersects reports whether the boxes overlap. Touching edges count, so a
// zero-size box acts as a point probe.
func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// BoxAround returns a w x h box centred on c.
func BoxAround(c Point, w, h float64) BBox {
	return BBox{MinX: c.X - w/2, MinY: c.Y - h/2, MaxX: c.X + w/2, MaxY: c.Y + h/2}
}

// RectOf normalizes two drag corners into a box.
func RectOf(a, b Point) BBox {
	return BBox{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
