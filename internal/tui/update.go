package tui

import (
	"fmt"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"freeselect/internal/editor"
	"freeselect/internal/geom"
)

const (
	zoomStep = 1.2
	panCells = 4
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
		if !m.fitted {
			m.fitView()
			m.fitted = true
		}
	case frameMsg:
		if !m.dragging || !m.settings.Chroma {
			m.ticking = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		// While the picker filters, keys belong to the list.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "esc", "s":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.zoom(zoomStep)
		case "-", "_":
			m.zoom(1 / zoomStep)
		case "up":
			m.pan(0, -panCells*4)
		case "down":
			m.pan(0, panCells*4)
		case "left":
			m.pan(-panCells*2, 0)
		case "right":
			m.pan(panCells*2, 0)
		case "f":
			m.fitView()
			m.status = "fit level"
		case "u":
			if m.ed.Undo() {
				m.status = "undo"
			} else {
				m.status = "nothing to undo"
			}
		case "t":
			always := !m.tracker.Config().AlwaysEnabled
			m.tracker.SetAlwaysEnabled(always)
			m.settings.LassoAlwaysEnabled = always
			m.status = fmt.Sprintf("lasso always enabled: %v", always)
		case "g":
			o := m.sel.Options()
			o.GuaranteeCenter = !o.GuaranteeCenter
			m.sel.SetOptions(o)
			m.status = fmt.Sprintf("guarantee center: %v", o.GuaranteeCenter)
		case "b":
			o := m.sel.Options()
			o.PointsAsBoxes = !o.PointsAsBoxes
			m.sel.SetOptions(o)
			m.status = fmt.Sprintf("points as boxes: %v", o.PointsAsBoxes)
		case "esc":
			if m.dragging {
				m.tracker.Cancel()
				m.dragging = false
				m.status = "gesture cancelled"
			} else if len(m.ed.Selected()) > 0 {
				m.ed.CreateUndoSelection()
				m.ed.SelectObjects(nil)
				m.ed.UpdateButtons()
				m.ed.UpdateObjectInfoLabel()
				m.status = "deselected"
			}
		case "s":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshSelectionTable()
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "h":
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse turns left-button drags on the map into gesture events. Node
// space is the braille micro grid of the map area.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	*m.mods = modState{alt: msg.Alt, ctrl: msg.Ctrl, shift: msg.Shift}
	m.binding.Set(msg.Alt)
	m.tracker.Refresh()

	ox, oy := m.mapOrigin()
	w, h := m.mapSize()
	cx, cy := msg.X-ox, msg.Y-oy
	inside := cx >= 0 && cx < w && cy >= 0 && cy < h
	m.hovering = inside
	if inside {
		m.hoverCellX, m.hoverCellY = cx, cy
	}
	p := cellToNode(cx, cy)

	var cmd tea.Cmd
	switch {
	case msg.Button == tea.MouseButtonWheelUp && inside:
		m.zoomAt(zoomStep, p)
	case msg.Button == tea.MouseButtonWheelDown && inside:
		m.zoomAt(1/zoomStep, p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside || m.showTable {
			break
		}
		if m.dragging {
			// a press without release means the terminal lost the release
			m.tracker.Cancel()
		}
		m.dragging = m.tracker.OnBegin(p)
		if m.dragging {
			m.start = time.Now()
			if m.settings.Chroma && !m.ticking {
				m.ticking = true
				cmd = m.tick()
			}
		}
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.tracker.OnMove(p)
	case msg.Action == tea.MouseActionRelease && m.dragging:
		mode := "rectangle"
		if m.tracker.LassoEnabled() {
			mode = "lasso"
		}
		m.tracker.OnEnd(p)
		m.dragging = false
		m.status = fmt.Sprintf("%s: %d selected", mode, len(m.ed.Selected()))
		m.log.Debug("gesture end", zap.String("mode", mode), zap.Int("selected", len(m.ed.Selected())))
		if m.showTable {
			m.refreshSelectionTable()
		}
	}
	return m, cmd
}

// cellToNode maps a map cell to the centre of its 2x4 micro pixel block.
func cellToNode(cx, cy int) geom.Point {
	return geom.Pt(float64(cx*2)+1, float64(cy*4)+2)
}

func (m *Model) zoom(f float64) {
	w, h := m.mapSize()
	m.zoomAt(f, geom.Pt(float64(w), float64(h*2)))
}

func (m *Model) zoomAt(f float64, anchor geom.Point) {
	v := m.ed.View().ZoomAt(f, anchor)
	m.ed.SetView(v)
	m.status = fmt.Sprintf("zoom: %.2fx", v.Scale)
}

func (m *Model) pan(dx, dy float64) {
	m.ed.SetView(m.ed.View().Pan(dx, dy))
}

func (m *Model) fitView() {
	w, h := m.mapSize()
	m.ed.SetView(editor.Fit(m.ed.Level().Bounds(), float64(w*2), float64(h*4)))
}

func (m Model) contentHeight() int {
	return max(4, m.height-headerHeight-footerHeight)
}

func (m Model) mapSize() (int, int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	return max(10, max(10, m.width)-sw), m.contentHeight()
}

func (m Model) mapOrigin() (int, int) {
	if m.showSidebar {
		return sidebarWidth + 1, headerHeight
	}
	return 0, headerHeight
}
