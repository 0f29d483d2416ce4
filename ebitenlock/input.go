package ebitenlock

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/patternlock"
)

// maxPointers is the mouse plus up to nine simultaneous touches.
const maxPointers = 10

// MousePointerID is the pointer ID used for the mouse. Touches use 1 and up.
const MousePointerID = 0

type pointerState struct {
	down bool
	x, y float64
}

// Poller converts Ebitengine's polled input into pointer edges. Call Poll
// once per frame from Game.Update.
type Poller struct {
	adapter  *patternlock.PointerAdapter
	pointers [maxPointers]pointerState

	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
}

// NewPoller creates a poller that drives a.
func NewPoller(a *patternlock.PointerAdapter) *Poller {
	return &Poller{adapter: a}
}

// Poll reads the mouse and every active touch.
func (p *Poller) Poll() {
	mx, my := ebiten.CursorPosition()
	p.feed(MousePointerID, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	var active [maxPointers]bool
	for _, tid := range p.touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		p.feed(slot, float64(tx), float64(ty), true)
	}
	p.releaseTouches(active)
}

// feed runs edge detection for one pointer and forwards the edges.
func (p *Poller) feed(id int, x, y float64, pressed bool) {
	ps := &p.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down = true
		p.adapter.Press(id, x, y)
	case pressed && ps.down:
		if x != ps.x || y != ps.y {
			p.adapter.Move(id, x, y)
		}
	case !pressed && ps.down:
		ps.down = false
		p.adapter.Release(id, x, y)
	}
	ps.x, ps.y = x, y
}

// releaseTouches lifts touch slots that were not reported this frame.
func (p *Poller) releaseTouches(active [maxPointers]bool) {
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] || active[i] {
			continue
		}
		ps := &p.pointers[i]
		if ps.down {
			p.feed(i, ps.x, ps.y, false)
		}
		p.touchUsed[i] = false
		p.touchMap[i] = 0
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *Poller) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}
