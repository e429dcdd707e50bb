package geom

// Polygon is an ordered ring of points. A closed polygon repeats its first
// point at the end.
type Polygon []Point

// Closed returns the ring with a copy of the first point appended. An empty
// polygon stays empty.
func (p Polygon) Closed() Polygon {
	if len(p) == 0 {
		return p
	}
	out := make(Polygon, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

func (p Polygon) IsClosed() bool {
	return len(p) > 1 && p[0].Eq(p[len(p)-1])
}

// Bounds returns the bounding box of all vertices.
func (p Polygon) Bounds() (BBox, bool) { return Bounds(p) }

// Reversed returns the same ring with opposite winding.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Contains classifies pt with the even-odd rule: a horizontal ray is cast
// towards +x and the parity of edge crossings decides. Edges are consecutive
// point pairs plus the closing edge; horizontal edges are skipped. Points on
// the boundary get whatever the strict comparisons give them.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		if a.Y == b.Y {
			continue
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
