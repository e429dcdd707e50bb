package tui

import (
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"freeselect/internal/geom"
	"freeselect/internal/lasso"
)

// overlayCanvas is the lasso overlay drawn into its own braille layer.
type overlayCanvas struct {
	buf   *brailleBuf
	color color.RGBA
	drawn bool
}

var _ lasso.Overlay = (*overlayCanvas)(nil)

func (o *overlayCanvas) Line(a, b geom.Point, c color.RGBA) {
	x0, y0 := micro(a)
	x1, y1 := micro(b)
	o.buf.drawLineMicro(x0, y0, x1, y1)
	o.color, o.drawn = c, true
}

func (o *overlayCanvas) Rect(a, b geom.Point, c color.RGBA) {
	x0, y0 := micro(a)
	x1, y1 := micro(b)
	o.buf.rectMicro(x0, y0, x1, y1)
	o.color, o.drawn = c, true
}

type layer uint8

const (
	layerNone layer = iota
	layerObject
	layerSelected
	layerOverlay
	layerHover
)

// renderCanvas draws the visible objects, the selection and the gesture
// overlay into a w x h cell area.
func (m Model) renderCanvas(w, h int) string {
	objs := newBrailleBuf(w, h)
	sel := newBrailleBuf(w, h)
	ov := &overlayCanvas{buf: newBrailleBuf(w, h)}

	wMic, hMic := w*2, h*4
	visible := geom.RectOf(m.ed.ToWorld(geom.Pt(0, 0)), m.ed.ToWorld(geom.Pt(float64(wMic), float64(hMic))))
	lvl := m.ed.Level()
	for _, id := range lvl.ObjectsInRect(visible) {
		o, ok := lvl.Object(id)
		if !ok {
			continue
		}
		box := o.Box()
		x0, y0 := micro(m.ed.ToNode(box.Min()))
		x1, y1 := micro(m.ed.ToNode(box.Max()))
		x0, x1 = clamp(x0, -1, wMic), clamp(x1, -1, wMic)
		y0, y1 = clamp(y0, -1, hMic), clamp(y1, -1, hMic)
		switch {
		case m.ed.IsSelected(id):
			sel.fillRectMicro(x0, y0, x1, y1)
		case abs(x1-x0) < 2 || abs(y1-y0) < 2:
			objs.setPixel(x0, y0)
		default:
			objs.rectMicro(x0, y0, x1, y1)
		}
	}

	m.tracker.OnDraw(ov, time.Since(m.start))
	overStyle := lipgloss.NewStyle().Foreground(terminalColor(ov.color))

	lines := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		run := make([]rune, 0, w)
		cur := layerNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			switch cur {
			case layerObject:
				s = objectStyle.Render(s)
			case layerSelected:
				s = selStyle.Render(s)
			case layerOverlay:
				s = overStyle.Render(s)
			case layerHover:
				s = hoverStyle.Render(s)
			}
			sb.WriteString(s)
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			om, sm, vm := objs.mask(x, y), sel.mask(x, y), ov.buf.mask(x, y)
			r, l := glyph(om|sm|vm), layerNone
			switch {
			case vm != 0:
				l = layerOverlay
			case sm != 0:
				l = layerSelected
			case om != 0:
				l = layerObject
			}
			if m.hovering && !m.dragging && x == m.hoverCellX && y == m.hoverCellY {
				r, l = '+', layerHover
			}
			if l != cur {
				flush()
				cur = l
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
