// Package editor is a small level editor host: a view over a level, a
// rectangle swipe selection, an undo stack of selections and the button and
// info label state that depends on them. It implements the lasso host and
// fallback interfaces.
package editor

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"freeselect/internal/geom"
	"freeselect/internal/lasso"
	"freeselect/internal/level"
)

// MaxUndo bounds the selection undo stack.
const MaxUndo = 100

// Buttons is the enablement of selection-dependent actions.
type Buttons struct {
	Deselect bool
	Undo     bool
}

type swipe struct {
	active     bool
	start, end geom.Point
}

type Editor struct {
	lvl  *level.Level
	view View
	log  *zap.Logger

	selected []level.ObjectID
	selSet   map[level.ObjectID]struct{}
	undo     [][]level.ObjectID

	sw    swipe
	guard lasso.SelectionGuard

	buttons Buttons
	info    string
}

var (
	_ lasso.Host[level.ObjectID] = (*Editor)(nil)
	_ lasso.Fallback             = (*Editor)(nil)
)

func New(lvl *level.Level, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	if lvl == nil {
		lvl = level.New("empty", nil)
	}
	e := &Editor{lvl: lvl, view: View{Scale: 1}, log: log, selSet: map[level.ObjectID]struct{}{}}
	e.UpdateButtons()
	e.UpdateObjectInfoLabel()
	return e
}

// SetGuard installs the check run before the editor commits a selection itself.
func (e *Editor) SetGuard(g lasso.SelectionGuard) { e.guard = g }

func (e *Editor) Level() *level.Level { return e.lvl }

// SetLevel swaps the level and drops selection and undo history.
func (e *Editor) SetLevel(l *level.Level) {
	e.lvl = l
	e.selected = nil
	clear(e.selSet)
	e.undo = nil
	e.sw = swipe{}
	e.UpdateButtons()
	e.UpdateObjectInfoLabel()
}

func (e *Editor) View() View     { return e.view }
func (e *Editor) SetView(v View) { e.view = v }

func (e *Editor) ToWorld(p geom.Point) geom.Point { return e.view.ToWorld(p) }
func (e *Editor) ToNode(p geom.Point) geom.Point  { return e.view.ToNode(p) }
func (e *Editor) ViewScale() float64              { return e.view.Scale }

func (e *Editor) ObjectsInRect(r geom.BBox) []level.ObjectID { return e.lvl.ObjectsInRect(r) }

// Selected returns the selection in commit order. It must not be modified.
func (e *Editor) Selected() []level.ObjectID { return e.selected }

func (e *Editor) IsSelected(id level.ObjectID) bool {
	_, ok := e.selSet[id]
	return ok
}

func (e *Editor) Buttons() Buttons { return e.buttons }
func (e *Editor) Info() string     { return e.info }

func (e *Editor) CreateUndoSelection() {
	e.undo = append(e.undo, slices.Clone(e.selected))
	if len(e.undo) > MaxUndo {
		e.undo = slices.Delete(e.undo, 0, len(e.undo)-MaxUndo)
	}
}

// Undo restores the selection saved by the last checkpoint.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	prev := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.replace(prev)
	e.UpdateButtons()
	e.UpdateObjectInfoLabel()
	return true
}

// SelectObjects replaces the selection unless the guard suppresses it.
func (e *Editor) SelectObjects(objs []level.ObjectID) {
	if e.suppressed() {
		e.log.Debug("selection suppressed", zap.Int("objects", len(objs)))
		return
	}
	e.replace(objs)
}

func (e *Editor) suppressed() bool { return e.guard != nil && e.guard.SuppressSelection() }

func (e *Editor) replace(objs []level.ObjectID) {
	e.selected = make([]level.ObjectID, 0, len(objs))
	clear(e.selSet)
	for _, id := range objs {
		if _, dup := e.selSet[id]; dup {
			continue
		}
		e.selSet[id] = struct{}{}
		e.selected = append(e.selected, id)
	}
}

func (e *Editor) UpdateButtons() {
	e.buttons = Buttons{Deselect: len(e.selected) > 0, Undo: len(e.undo) > 0}
}

func (e *Editor) UpdateObjectInfoLabel() {
	switch n := len(e.selected); n {
	case 0:
		e.info = ""
	case 1:
		o, _ := e.lvl.Object(e.selected[0])
		e.info = fmt.Sprintf("1 object selected (%s #%d)", o.Kind, o.ID)
	default:
		e.info = fmt.Sprintf("%d objects selected", n)
	}
}

// BeginSwipe starts a rectangle swipe. A second swipe while one is active is refused.
func (e *Editor) BeginSwipe(p geom.Point) bool {
	if e.sw.active {
		return false
	}
	e.sw = swipe{active: true, start: p, end: p}
	return true
}

func (e *Editor) MoveSwipe(p geom.Point) {
	if e.sw.active {
		e.sw.end = p
	}
}

// EndSwipe selects the objects under the swept rectangle.
func (e *Editor) EndSwipe(p geom.Point) {
	if !e.sw.active {
		return
	}
	e.sw.end = p
	start, end := e.sw.start, e.sw.end
	e.sw = swipe{}
	if e.suppressed() {
		return
	}
	r := geom.RectOf(e.ToWorld(start), e.ToWorld(end))
	e.CreateUndoSelection()
	e.SelectObjects(e.ObjectsInRect(r))
	e.UpdateButtons()
	e.UpdateObjectInfoLabel()
}

func (e *Editor) CancelSwipe() { e.sw = swipe{} }

func (e *Editor) SwipeActive() bool { return e.sw.active }

func (e *Editor) SwipeRect() (start, end geom.Point) { return e.sw.start, e.sw.end }
