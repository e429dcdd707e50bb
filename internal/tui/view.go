package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)

	name := m.ed.Level().Name
	header := titleStyle.Render(" freeselect ─ " + name + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	mapWidth, mapHeight := m.mapSize()
	var mapView string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderCanvas(mapWidth, mapHeight))
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	status := dimStyle.Render(" " + m.status + " ")
	info := m.ed.Info()
	if info != "" {
		info = selStyle.Render("  " + info + "  ")
	}
	right := modeStyle.Render(m.modeLabel()) + dimStyle.Render(fmt.Sprintf("  zoom %.2fx ", m.ed.View().Scale))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, info)
	spacer := strings.Repeat(" ", max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(right)))
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(left+spacer+right),
		m.renderHelp(),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) modeLabel() string {
	if m.tracker.LassoEnabled() {
		return "lasso"
	}
	return "rectangle"
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag select",
		"t lasso toggle",
		"u undo",
		"esc deselect",
		"↑↓←→ pan",
		"+/- zoom",
		"f fit",
		"s selection",
		"Tab levels",
		"g center",
		"b boxes",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
