package tuilock

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/patternlock"
)

const (
	glyphBlank = ' '
	glyphDot   = '○'
	glyphTrace = '•'
	glyphInner = '●'
)

// cell is one rasterized terminal cell.
type cell struct {
	glyph rune
	color patternlock.Color
}

type styleCache struct {
	byHex map[string]lipgloss.Style
	help  lipgloss.Style
}

func newStyleCache() *styleCache {
	return &styleCache{
		byHex: make(map[string]lipgloss.Style),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

func (c *styleCache) get(clr patternlock.Color) lipgloss.Style {
	hex := clr.Hex()
	s, ok := c.byHex[hex]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		c.byHex[hex] = s
	}
	return s
}

// raster samples the display list at every cell centre. Later layers win:
// dots, then the trace, then inner dots.
func (m Model) raster() [][]cell {
	out := make([][]cell, m.rows)
	// A cell counts as on the trace when the path passes within half a cell.
	traceTol := math.Max(m.scaleX, m.scaleY) / 2
	tr := m.list.Trace()

	for row := range out {
		out[row] = make([]cell, m.cols)
		for col := range out[row] {
			p := m.CellCenter(col, row)
			c := cell{glyph: glyphBlank}
			m.list.Each(patternlock.StyleDot, func(mk patternlock.Marker) {
				if patternlock.WithinHitRadius(p, mk.Position, mk.Radius) {
					c = cell{glyph: glyphDot, color: mk.Fill}
				}
			})
			if tr.Visible && onTrace(p, tr.Points, math.Max(traceTol, tr.Width/2)) {
				c = cell{glyph: glyphTrace, color: tr.Stroke}
			}
			m.list.Each(patternlock.StyleInner, func(mk patternlock.Marker) {
				if patternlock.WithinHitRadius(p, mk.Position, mk.Radius) {
					c = cell{glyph: glyphInner, color: mk.Fill}
				}
			})
			out[row][col] = c
		}
	}
	return out
}

func onTrace(p patternlock.Vec2, pts []patternlock.Vec2, tol float64) bool {
	for i := 1; i < len(pts); i++ {
		if patternlock.OnSegment(p, pts[i-1], pts[i], tol) {
			return true
		}
	}
	return false
}

// View renders the lock area followed by a status line.
func (m Model) View() string {
	var b strings.Builder
	for _, row := range m.raster() {
		m.renderRow(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

// renderRow writes a row, styling runs of same-colored cells together.
func (m Model) renderRow(b *strings.Builder, row []cell) {
	var run strings.Builder
	var runColor patternlock.Color
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.styles.get(runColor).Render(run.String()))
		run.Reset()
	}
	for _, c := range row {
		if c.glyph == glyphBlank {
			flush()
			b.WriteRune(glyphBlank)
			continue
		}
		if run.Len() > 0 && c.color != runColor {
			flush()
		}
		runColor = c.color
		run.WriteRune(c.glyph)
	}
	flush()
}

func (m Model) status() string {
	value := m.lock.Value()
	line := m.lock.State().String()
	if value != "" {
		line += " " + value
	}
	if m.lock.State() == patternlock.StateLocked {
		if m.lock.Accepted() {
			line += " ✓"
		} else {
			line += " ✗"
		}
	}
	help := m.keys.Reset.Help().Key + " " + m.keys.Reset.Help().Desc + " • " +
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc
	return line + "  " + m.styles.help.Render(help)
}
