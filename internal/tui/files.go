package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"freeselect/internal/level"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the level files in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !level.Supported(e.Name()) {
			continue
		}
		name := e.Name()
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no level files in current directory"
	}
}

// loadPath replaces the level with the file at p. On error the current level stays.
func (m *Model) loadPath(p string) {
	lvl, err := level.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("load level", zap.String("path", p), zap.Error(err))
		return
	}
	if m.dragging {
		m.tracker.Cancel()
		m.dragging = false
	}
	m.selPath = p
	m.ed.SetLevel(lvl)
	m.fitView()
	if m.showTable {
		m.refreshSelectionTable()
	}
	m.status = fmt.Sprintf("loaded: %s  objects=%d", filepath.Base(p), lvl.Len())
	m.log.Info("level loaded", zap.String("path", p), zap.Int("objects", lvl.Len()))
}
