package editor

import (
	"github.com/go-gl/mathgl/mgl64"

	"freeselect/internal/geom"
)

const (
	MinScale = 0.05
	MaxScale = 64
)

// View maps world units onto node space: node = (world - Origin) * Scale.
type View struct {
	Scale  float64
	Origin geom.Point
}

func (v View) matrix() mgl64.Mat3 {
	return mgl64.Scale2D(v.Scale, v.Scale).Mul3(mgl64.Translate2D(-v.Origin.X, -v.Origin.Y))
}

func apply(m mgl64.Mat3, p geom.Point) geom.Point {
	r := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return geom.Pt(r.X(), r.Y())
}

func (v View) ToNode(p geom.Point) geom.Point { return apply(v.matrix(), p) }

func (v View) ToWorld(p geom.Point) geom.Point {
	if v.Scale == 0 {
		return v.Origin
	}
	return apply(v.matrix().Inv(), p)
}

// ZoomAt multiplies the scale by f, keeping the world point under the node
// point anchor fixed. The scale is clamped to [MinScale, MaxScale].
func (v View) ZoomAt(f float64, anchor geom.Point) View {
	world := v.ToWorld(anchor)
	v.Scale = min(MaxScale, max(MinScale, v.Scale*f))
	v.Origin = world.Sub(anchor.Scale(1 / v.Scale))
	return v
}

// Pan shifts the view by a node-space delta.
func (v View) Pan(dx, dy float64) View {
	v.Origin = v.Origin.Add(geom.Pt(dx, dy).Scale(1 / v.Scale))
	return v
}

// Fit returns a view showing box inside a w x h node area with a margin.
func Fit(box geom.BBox, w, h float64) View {
	bw, bh := box.Width(), box.Height()
	if bw <= 0 || bh <= 0 || w <= 0 || h <= 0 {
		return View{Scale: 1, Origin: box.Min()}
	}
	s := min(w/bw, h/bh) * 0.9
	s = min(MaxScale, max(MinScale, s))
	c := box.Center()
	return View{Scale: s, Origin: geom.Pt(c.X-w/(2*s), c.Y-h/(2*s))}
}
