package lasso

import (
	"image/color"
	"time"

	"freeselect/internal/geom"
)

// Host is the editor the selector reads from and commits to. O is the host's
// object reference; selection sets are deduplicated by O's equality.
type Host[O comparable] interface {
	// ToWorld converts a point from the editor's node space (where gesture
	// points live) into the grid/object space.
	ToWorld(p geom.Point) geom.Point
	// ViewScale is the current zoom of the object layer.
	ViewScale() float64
	ObjectsInRect(r geom.BBox) []O

	// CreateUndoSelection registers an undo checkpoint for the current selection.
	CreateUndoSelection()
	// SelectObjects replaces the current selection.
	SelectObjects(objs []O)
	UpdateButtons()
	UpdateObjectInfoLabel()
}

// Fallback is the host's own drag handling, usually a rectangle select.
type Fallback interface {
	BeginSwipe(p geom.Point) bool
	MoveSwipe(p geom.Point)
	EndSwipe(p geom.Point)
	// CancelSwipe abandons the swipe without selecting.
	CancelSwipe()
	SwipeActive() bool
	SwipeRect() (start, end geom.Point)
}

// SelectionGuard is consulted by the host before it commits a selection of
// its own. While SuppressSelection is true the host must not commit.
type SelectionGuard interface {
	SuppressSelection() bool
}

// Overlay receives the gesture overlay once per frame, in node space.
type Overlay interface {
	Line(a, b geom.Point, c color.RGBA)
	Rect(a, b geom.Point, c color.RGBA)
}

// GestureHandler is the capability the host invokes for drag input and per-frame drawing.
type GestureHandler interface {
	OnBegin(p geom.Point) bool
	OnMove(p geom.Point)
	OnEnd(p geom.Point)
	OnDraw(o Overlay, elapsed time.Duration)
}
