package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"freeselect/internal/config"
	"freeselect/internal/editor"
	"freeselect/internal/lasso"
	"freeselect/internal/level"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	frameRate    = 50 * time.Millisecond
)

// modState is the modifier state carried by the latest mouse event. Terminals
// report no key releases, so this is the closest thing to live key state.
type modState struct {
	alt, ctrl, shift bool
}

// macKeys maps macOS virtual key codes onto terminal modifier flags.
var macKeys = map[uint16]func(modState) bool{
	56: func(s modState) bool { return s.shift }, // left shift
	60: func(s modState) bool { return s.shift }, // right shift
	58: func(s modState) bool { return s.alt },   // left option
	61: func(s modState) bool { return s.alt },   // right option
	59: func(s modState) bool { return s.ctrl },  // left control
	62: func(s modState) bool { return s.ctrl },  // right control
}

func (s *modState) poll(code uint16) bool {
	if f, ok := macKeys[code]; ok {
		return f(*s)
	}
	return false
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	log    *zap.Logger

	settings config.Settings
	ed       *editor.Editor
	sel      *lasso.Selector[level.ObjectID]
	tracker  *lasso.Tracker[level.ObjectID]
	mods     *modState
	binding  *lasso.Binding

	// gesture bookkeeping
	dragging bool
	start    time.Time
	ticking  bool
	fitted   bool

	// level picker
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// selection table
	showTable bool
	tbl       table.Model

	// hover, in map cells
	hovering   bool
	hoverCellX int
	hoverCellY int
}

// New builds the editor UI around lvl with the given settings.
func New(lvl *level.Level, s config.Settings, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		helpVisible: true,
		status:      "freeselect ready",
		log:         log,
		settings:    s,
		mods:        &modState{},
		binding:     &lasso.Binding{},
		start:       time.Now(),
	}
	m.ed = editor.New(lvl, log)
	m.sel = lasso.NewSelector[level.ObjectID](m.ed, lasso.Options{
		GridSize:        s.GridSize,
		GuaranteeCenter: s.GuaranteeCenter,
		PointsAsBoxes:   s.MakePointsBoxes,
	}, log)
	m.tracker = lasso.NewTracker(m.ed, m.sel, m.signal(), lasso.TrackerConfig{
		AlwaysEnabled: s.LassoAlwaysEnabled,
		Color:         s.Color(),
		UseChroma:     s.Chroma,
		Chroma:        lasso.Chroma{Segment: s.ChromaSegment()},
	}, log)
	m.ed.SetGuard(m.tracker)

	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Levels"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(selectionColumns))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath loads a level file before start; on failure the given level stays.
func NewWithPath(path string, fallback *level.Level, s config.Settings, log *zap.Logger) Model {
	m := New(fallback, s, log)
	m.loadPath(path)
	return m
}

// signal picks the modifier backend named in the settings.
func (m Model) signal() lasso.ModifierSignal {
	switch m.settings.Modifier {
	case config.ModifierPoll:
		return lasso.PolledKeys{Poll: m.mods.poll, Primary: m.settings.MacKeycode, Secondary: m.settings.SecondMacKeycode}
	case config.ModifierTouch:
		return lasso.Touch{}
	default:
		return m.binding
	}
}

func (m Model) Init() tea.Cmd { return nil }

type frameMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}
