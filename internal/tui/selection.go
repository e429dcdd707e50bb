package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

var selectionColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "id", Width: 8},
	{Title: "kind", Width: 12},
	{Title: "x", Width: 10},
	{Title: "y", Width: 10},
	{Title: "size", Width: 6},
}

// refreshSelectionTable lists the selected objects in commit order.
func (m *Model) refreshSelectionTable() {
	lvl := m.ed.Level()
	sel := m.ed.Selected()
	rows := make([]table.Row, 0, len(sel))
	for i, id := range sel {
		o, ok := lvl.Object(id)
		if !ok {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", o.ID),
			o.Kind,
			fmt.Sprintf("%.1f", o.Pos.X),
			fmt.Sprintf("%.1f", o.Pos.Y),
			fmt.Sprintf("%g", o.Size),
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
	if len(rows) == 0 {
		m.status = "selection is empty"
	}
}
