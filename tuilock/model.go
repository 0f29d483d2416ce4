// Package tuilock runs a pattern lock in a terminal with Bubble Tea.
//
// The lock surface is mapped onto a block of terminal cells; mouse presses,
// drags and releases in that block drive the gesture, and the display list
// is rasterized cell by cell with Lip Gloss colors. Enable mouse motion
// reporting when starting the program:
//
//	m := tuilock.New(tuilock.Options{Callbacks: cb})
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
package tuilock

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/patternlock"
)

// MousePointerID is the adapter pointer ID used for the terminal mouse.
const MousePointerID = 0

const (
	defaultCols = 30
	defaultRows = 15
	defaultSize = 300
	defaultTick = time.Second / 30
)

// Options configures a Model.
type Options struct {
	// Cols and Rows give the size of the lock area in terminal cells.
	// Default 30x15, which looks square in most fonts.
	Cols, Rows int
	// Size is the side length of the lock surface. Default 300.
	Size float64
	// Tick is the animation frame interval. Default 1/30 s.
	Tick time.Duration

	Config    patternlock.Config
	Callbacks patternlock.Callbacks
	Keys      *KeyMap
}

func (o Options) withDefaults() Options {
	if o.Cols <= 0 {
		o.Cols = defaultCols
	}
	if o.Rows <= 0 {
		o.Rows = defaultRows
	}
	if o.Size <= 0 {
		o.Size = defaultSize
	}
	if o.Tick <= 0 {
		o.Tick = defaultTick
	}
	return o
}

type tickMsg time.Time

// Model is the Bubble Tea model hosting one lock.
type Model struct {
	lock    *patternlock.Lock
	adapter *patternlock.PointerAdapter
	list    *patternlock.DisplayList
	keys    KeyMap

	cols, rows int
	scaleX     float64 // surface units per cell column
	scaleY     float64 // surface units per cell row
	tick       time.Duration
	styles     *styleCache
}

// New creates the model and its lock.
func New(opts Options) Model {
	opts = opts.withDefaults()
	list := patternlock.NewDisplayList()
	lock := patternlock.New(opts.Size, opts.Callbacks,
		patternlock.WithRenderer(list),
		patternlock.WithConfig(opts.Config),
	)
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	return Model{
		lock:    lock,
		adapter: patternlock.NewPointerAdapter(lock),
		list:    list,
		keys:    keys,
		cols:    opts.Cols,
		rows:    opts.Rows,
		scaleX:  opts.Size / float64(opts.Cols),
		scaleY:  opts.Size / float64(opts.Rows),
		tick:    opts.Tick,
		styles:  newStyleCache(),
	}
}

// Lock returns the hosted lock.
func (m Model) Lock() *patternlock.Lock { return m.lock }

// Adapter returns the pointer adapter.
func (m Model) Adapter() *patternlock.PointerAdapter { return m.adapter }

// CellCenter returns the surface position at the centre of a cell.
func (m Model) CellCenter(col, row int) patternlock.Vec2 {
	return patternlock.Vec2{
		X: (float64(col) + 0.5) * m.scaleX,
		Y: (float64(row) + 0.5) * m.scaleY,
	}
}

// CellAt returns the cell containing a surface position.
func (m Model) CellAt(p patternlock.Vec2) (col, row int) {
	return int(p.X / m.scaleX), int(p.Y / m.scaleY)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the animation ticker.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.lock.Reset()
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		m.adapter.Update(float32(m.tick.Seconds()))
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	p := m.CellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.adapter.Press(MousePointerID, p.X, p.Y)
		}
	case tea.MouseActionMotion:
		m.adapter.Move(MousePointerID, p.X, p.Y)
	case tea.MouseActionRelease:
		m.adapter.Release(MousePointerID, p.X, p.Y)
	}
}
