package ebitenlock

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/patternlock"
)

func newPollerLock(t *testing.T) (*Poller, *patternlock.Lock) {
	t.Helper()
	l := patternlock.New(300, patternlock.Callbacks{})
	return NewPoller(patternlock.NewPointerAdapter(l)), l
}

func centre(l *patternlock.Lock, id string) patternlock.Vec2 {
	return l.Grid().Point(id).Position
}

func TestPollerFeedEdges(t *testing.T) {
	p, l := newPollerLock(t)
	p1, p3 := centre(l, "1"), centre(l, "3")

	p.feed(MousePointerID, p1.X, p1.Y, true)
	assert.Equal(t, patternlock.StateCapturing, l.State())

	// Held still: no move is forwarded.
	p.feed(MousePointerID, p1.X, p1.Y, true)
	assert.Equal(t, []string{"1"}, l.Visited())

	p.feed(MousePointerID, p3.X, p3.Y, true)
	assert.Equal(t, "123", l.Value())

	p.feed(MousePointerID, p3.X, p3.Y, false)
	assert.Equal(t, patternlock.StateLocked, l.State())

	// Button stays up: nothing happens.
	p.feed(MousePointerID, 0, 0, false)
	assert.Equal(t, patternlock.StateLocked, l.State())
}

func TestTouchSlots(t *testing.T) {
	p, _ := newPollerLock(t)

	a := p.touchSlot(ebiten.TouchID(11))
	b := p.touchSlot(ebiten.TouchID(22))
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, a, p.touchSlot(ebiten.TouchID(11)), "existing touch keeps its slot")

	for i := 0; i < maxPointers-3; i++ {
		require.NotEqual(t, -1, p.touchSlot(ebiten.TouchID(100+i)))
	}
	assert.Equal(t, -1, p.touchSlot(ebiten.TouchID(999)), "slots exhausted")
}

func TestReleaseTouches(t *testing.T) {
	p, l := newPollerLock(t)
	p5 := centre(l, "5")

	slot := p.touchSlot(ebiten.TouchID(7))
	p.feed(slot, p5.X, p5.Y, true)
	require.Equal(t, patternlock.StateCapturing, l.State())

	var active [maxPointers]bool
	p.releaseTouches(active)

	assert.Equal(t, patternlock.StateLocked, l.State())
	assert.False(t, p.touchUsed[slot])
	assert.False(t, p.pointers[slot].down)
}

func TestHUDText(t *testing.T) {
	l := patternlock.New(300, patternlock.Callbacks{})
	assert.Equal(t, "idle -\nFPS: 60.0\nTPS: 60.0", hudText(l, 60, 60))

	l.BeginAtID("4")
	assert.Contains(t, hudText(l, 30, 60), "capturing 4")
}

func TestRunConfigDefaults(t *testing.T) {
	c := RunConfig{}.withDefaults()
	assert.Equal(t, 300, c.Size)
	assert.Equal(t, 40, c.Padding)
	assert.Equal(t, "patternlock", c.Title)
	assert.Equal(t, defaultBackground, c.Background)

	assert.Equal(t, 0, RunConfig{Padding: -1}.withDefaults().Padding)
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(RunConfig{Size: 240, Padding: 10})
	require.NoError(t, err)

	w, h := g.Layout(800, 600)
	assert.Equal(t, 260, w)
	assert.Equal(t, 260, h)
	assert.Equal(t, patternlock.Vec2{X: 10, Y: 10}, g.Adapter().Origin)
	assert.Len(t, g.renderer.Markers(), patternlock.GridLen)
	assert.Equal(t, 240.0, g.Lock().Grid().Size())
}

func TestNewGame_BadScript(t *testing.T) {
	_, err := NewGame(RunConfig{Script: []byte(`{"steps": [{"action": "tap"}]}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new game")
}

func TestHapticsMagnitude(t *testing.T) {
	assert.Equal(t, 1.0, Haptics{}.magnitude())
	assert.Equal(t, 0.5, Haptics{Magnitude: 0.5}.magnitude())
	assert.Equal(t, 1.0, Haptics{Magnitude: 3}.magnitude())
}
