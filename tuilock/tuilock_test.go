package tuilock

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/patternlock"
)

func newModel(t *testing.T, cb patternlock.Callbacks) Model {
	t.Helper()
	return New(Options{Cols: 30, Rows: 15, Size: 300, Callbacks: cb})
}

func mouse(col, row int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Action: action, Button: button}
}

func TestCellMapping(t *testing.T) {
	m := newModel(t, patternlock.Callbacks{})
	assert.Equal(t, patternlock.Vec2{X: 55, Y: 50}, m.CellCenter(5, 2))

	col, row := m.CellAt(m.Lock().Grid().Point("3").Position)
	assert.Equal(t, 24, col)
	assert.Equal(t, 2, row)
}

func TestMouseGesture(t *testing.T) {
	var got string
	m := newModel(t, patternlock.Callbacks{Complete: func(v string) { got = v }})

	updated, _ := m.Update(mouse(5, 2, tea.MouseActionPress, tea.MouseButtonLeft))
	m = updated.(Model)
	require.Equal(t, patternlock.StateCapturing, m.Lock().State())

	updated, _ = m.Update(mouse(24, 2, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = updated.(Model)
	updated, _ = m.Update(mouse(24, 2, tea.MouseActionRelease, tea.MouseButtonNone))
	m = updated.(Model)

	assert.Equal(t, "123", got)
	assert.Equal(t, patternlock.StateLocked, m.Lock().State())
}

func TestRightClickIgnored(t *testing.T) {
	m := newModel(t, patternlock.Callbacks{})
	m.Update(mouse(5, 2, tea.MouseActionPress, tea.MouseButtonRight))
	assert.Equal(t, patternlock.StateIdle, m.Lock().State())
}

func TestTickAdvancesCooldown(t *testing.T) {
	m := New(Options{Tick: patternlock.DefaultConfig().ResetDelay / 2})
	m.Lock().BeginAt(0)
	m.Lock().End()

	_, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.Equal(t, patternlock.StateLocked, m.Lock().State())
	m.Update(tickMsg{})
	assert.Equal(t, patternlock.StateIdle, m.Lock().State())
}

func TestKeys(t *testing.T) {
	m := newModel(t, patternlock.Callbacks{})
	m.Lock().BeginAt(4)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, patternlock.StateIdle, m.Lock().State())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRaster(t *testing.T) {
	m := newModel(t, patternlock.Callbacks{})
	pal := m.Lock().Config().Palette

	grid := m.raster()
	require.Len(t, grid, 15)
	require.Len(t, grid[0], 30)
	assert.Equal(t, glyphBlank, grid[0][0].glyph)
	assert.Equal(t, cell{glyph: glyphDot, color: pal.Dot}, grid[7][15], "centre dot")

	m.Lock().BeginAtID("1")
	p := m.Lock().Grid().Point("2").Position
	m.Lock().MoveTo(p.X, p.Y)

	grid = m.raster()
	col, row := m.CellAt(m.Lock().Grid().Point("1").Position)
	assert.Equal(t, glyphInner, grid[row][col].glyph)
	// Cell centre (105, 50) sits between dots 1 and 2 on the trace.
	assert.Equal(t, cell{glyph: glyphTrace, color: pal.Trace}, grid[2][10])
}

func TestView(t *testing.T) {
	m := newModel(t, patternlock.Callbacks{Verify: func(string) bool { return false }})
	v := m.View()
	lines := strings.Split(v, "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, lines[15], "idle")
	assert.Contains(t, v, string(glyphDot))

	m.Lock().BeginAtID("7")
	m.Lock().End()
	assert.Contains(t, m.View(), "locked 7 ✗")
}
