package level

import (
	"fmt"
	"math"
	"slices"

	"freeselect/internal/geom"
)

// BlockSize is the edge length of one editor grid block in world units.
const BlockSize = 30.0

// BucketSize is the cell size of the rectangle query index.
const BucketSize = 4 * BlockSize

type ObjectID uint32

// Object is a placed level object. Pos is its centre in world units and Size
// the edge length of its square hit box.
type Object struct {
	ID   ObjectID
	Kind string
	Pos  geom.Point
	Size float64
}

func (o Object) Box() geom.BBox { return geom.BoxAround(o.Pos, o.Size, o.Size) }

type cell struct{ x, y int }

// Level holds the objects of one level and a bucket index over their boxes.
type Level struct {
	Name string

	objects []Object
	byID    map[ObjectID]int
	buckets map[cell][]int
	bbox    geom.BBox
}

// New builds a level. Objects keep their IDs; a zero ID is replaced by the
// next free one so loaders do not have to number things.
func New(name string, objs []Object) *Level {
	l := &Level{
		Name:    name,
		byID:    make(map[ObjectID]int, len(objs)),
		buckets: make(map[cell][]int),
	}
	var next ObjectID
	for _, o := range objs {
		next = max(next, o.ID)
	}
	for _, o := range objs {
		if o.ID == 0 {
			next++
			o.ID = next
		}
		if _, dup := l.byID[o.ID]; dup {
			next++
			o.ID = next
		}
		if o.Size <= 0 || math.IsNaN(o.Size) {
			o.Size = BlockSize
		}
		l.add(o)
	}
	return l
}

func (l *Level) add(o Object) {
	idx := len(l.objects)
	l.objects = append(l.objects, o)
	l.byID[o.ID] = idx
	b := o.Box()
	if idx == 0 {
		l.bbox = b
	} else {
		l.bbox = l.bbox.Extend(b.Min()).Extend(b.Max())
	}
	c0, c1 := cellOf(b.Min()), cellOf(b.Max())
	for x := c0.x; x <= c1.x; x++ {
		for y := c0.y; y <= c1.y; y++ {
			k := cell{x, y}
			l.buckets[k] = append(l.buckets[k], idx)
		}
	}
}

func cellOf(p geom.Point) cell {
	return cell{int(math.Floor(p.X / BucketSize)), int(math.Floor(p.Y / BucketSize))}
}

func (l *Level) Len() int { return len(l.objects) }

// Objects returns the objects in insertion order. The slice must not be modified.
func (l *Level) Objects() []Object { return l.objects }

func (l *Level) Object(id ObjectID) (Object, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Object{}, false
	}
	return l.objects[i], true
}

// Bounds covers every object box. It is the zero box for an empty level.
func (l *Level) Bounds() geom.BBox { return l.bbox }

// ObjectsInRect returns the IDs of objects whose box intersects r, in
// ascending ID order. A zero-size r is a point probe.
func (l *Level) ObjectsInRect(r geom.BBox) []ObjectID {
	if len(l.objects) == 0 || !r.Min().Finite() || !r.Max().Finite() {
		return nil
	}
	c0, c1 := cellOf(r.Min()), cellOf(r.Max())
	var out []ObjectID
	seen := make(map[int]struct{})
	for x := c0.x; x <= c1.x; x++ {
		for y := c0.y; y <= c1.y; y++ {
			for _, idx := range l.buckets[cell{x, y}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}
				if l.objects[idx].Box().Intersects(r) {
					out = append(out, l.objects[idx].ID)
				}
			}
		}
	}
	slices.Sort(out)
	return out
}

var gridKinds = []string{"block", "spike", "orb", "pad"}

// Grid lays out cols x rows objects one spacing apart, starting at the origin.
func Grid(cols, rows int, spacing float64) *Level {
	objs := make([]Object, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			objs = append(objs, Object{
				Kind: gridKinds[(x+y)%len(gridKinds)],
				Pos:  geom.Pt(float64(x)*spacing+spacing/2, float64(y)*spacing+spacing/2),
				Size: BlockSize,
			})
		}
	}
	return New(fmt.Sprintf("grid %dx%d", cols, rows), objs)
}
