package geom

import "testing"

func square(size float64) Polygon {
	return Polygon{Pt(0, 0), Pt(0, size), Pt(size, size), Pt(size, 0)}.Closed()
}

func TestClosed(t *testing.T) {
	p := Polygon{Pt(1, 2), Pt(3, 4), Pt(5, 0)}
	c := p.Closed()
	if len(c) != 4 {
		t.Fatalf("len(Closed()) = %d, want 4", len(c))
	}
	if !c[3].Eq(p[0]) {
		t.Errorf("last point = %v, want %v", c[3], p[0])
	}
	if len(p) != 3 {
		t.Errorf("Closed() modified receiver: len = %d", len(p))
	}
	if !c.IsClosed() || p.IsClosed() {
		t.Errorf("IsClosed() mismatch: closed=%v open=%v", c.IsClosed(), p.IsClosed())
	}
	if got := (Polygon{}).Closed(); len(got) != 0 {
		t.Errorf("empty Closed() = %v, want empty", got)
	}
}

func TestContainsSquare(t *testing.T) {
	sq := square(10)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"interior", Pt(5, 5), true},
		{"near corner", Pt(0.5, 9.5), true},
		{"min corner", Pt(0, 0), true},
		{"left edge", Pt(0, 4), true},
		{"right edge", Pt(10, 4), false},
		{"top edge", Pt(4, 10), false},
		{"outside left", Pt(-1, 5), false},
		{"outside right", Pt(11, 5), false},
		{"outside above", Pt(5, 11), false},
		{"outside below", Pt(5, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContainsConcave(t *testing.T) {
	// U shape opening upwards
	u := Polygon{
		Pt(0, 0), Pt(9, 0), Pt(9, 9), Pt(6, 9),
		Pt(6, 3), Pt(3, 3), Pt(3, 9), Pt(0, 9),
	}.Closed()
	if !u.Contains(Pt(1, 6)) {
		t.Error("left arm should be inside")
	}
	if !u.Contains(Pt(7.5, 6)) {
		t.Error("right arm should be inside")
	}
	if u.Contains(Pt(4.5, 6)) {
		t.Error("notch should be outside")
	}
	if !u.Contains(Pt(4.5, 1)) {
		t.Error("base should be inside")
	}
}

func TestContainsWindingIndependent(t *testing.T) {
	shapes := []Polygon{
		square(10),
		{Pt(0, 0), Pt(7, 2), Pt(3, 9)},
		{Pt(0, 0), Pt(9, 0), Pt(9, 9), Pt(6, 9), Pt(6, 3), Pt(3, 3), Pt(3, 9), Pt(0, 9)},
		// self-intersecting bow tie
		{Pt(0, 0), Pt(8, 8), Pt(8, 0), Pt(0, 8)},
	}
	for si, s := range shapes {
		fwd := s.Closed()
		rev := s.Reversed().Closed()
		for x := -1.0; x <= 10; x += 0.5 {
			for y := -1.0; y <= 10; y += 0.5 {
				pt := Pt(x, y)
				if fwd.Contains(pt) != rev.Contains(pt) {
					t.Errorf("shape %d: Contains(%v) differs between windings", si, pt)
				}
			}
		}
	}
}

func TestContainsDegenerate(t *testing.T) {
	if (Polygon{Pt(0, 0), Pt(1, 1)}).Contains(Pt(0.5, 0.5)) {
		t.Error("two-point polygon contains nothing")
	}
	flat := Polygon{Pt(0, 0), Pt(5, 0), Pt(9, 0)}.Closed()
	if flat.Contains(Pt(3, 0)) {
		t.Error("zero-area polygon contains nothing")
	}
}

func TestBounds(t *testing.T) {
	b, ok := Bounds([]Point{Pt(3, -1), Pt(-2, 4), Pt(0, 0)})
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	want := BBox{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
	if c := b.Center(); !c.Eq(Pt(0.5, 1.5)) {
		t.Errorf("Center() = %v, want (0.5, 1.5)", c)
	}
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true")
	}
}

func TestIntersectsPointProbe(t *testing.T) {
	obj := BoxAround(Pt(10, 10), 4, 4)
	if !obj.Intersects(BoxAround(Pt(11, 9), 0, 0)) {
		t.Error("point inside box should intersect")
	}
	if !obj.Intersects(BoxAround(Pt(12, 12), 0, 0)) {
		t.Error("point on corner should intersect")
	}
	if obj.Intersects(BoxAround(Pt(13, 10), 0, 0)) {
		t.Error("point outside box should not intersect")
	}
	if r := RectOf(Pt(5, 1), Pt(1, 5)); r != (BBox{MinX: 1, MinY: 1, MaxX: 5, MaxY: 5}) {
		t.Errorf("RectOf() = %+v", r)
	}
}
