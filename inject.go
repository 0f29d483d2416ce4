package patternlock

// InjectedPointerID is the pointer ID used for injected events.
const InjectedPointerID = 0

type pointerEventKind uint8

const (
	pointerPress pointerEventKind = iota
	pointerMove
	pointerRelease
	pointerCancel
)

// syntheticPointerEvent is a single queued pointer event in global
// coordinates, identical in effect to real input.
type syntheticPointerEvent struct {
	kind pointerEventKind
	x, y float64
}

// InjectPress queues a press at global (x, y). Queued events are consumed
// one per frame by ProcessInjected.
func (a *PointerAdapter) InjectPress(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{kind: pointerPress, x: x, y: y})
}

// InjectMove queues a held move to global (x, y).
func (a *PointerAdapter) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{kind: pointerMove, x: x, y: y})
}

// InjectRelease queues a release at global (x, y).
func (a *PointerAdapter) InjectRelease(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{kind: pointerRelease, x: x, y: y})
}

// InjectCancel queues a cancel of the injected pointer.
func (a *PointerAdapter) InjectCancel() {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{kind: pointerCancel})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a move plus release at (toX, toY). frames is
// clamped to at least 2.
func (a *PointerAdapter) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	from := Vec2{X: fromX, Y: fromY}
	to := Vec2{X: toX, Y: toY}
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		p := from.Lerp(to, float64(i)/float64(steps+1))
		a.InjectMove(p.X, p.Y)
	}
	a.InjectMove(toX, toY)
	a.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (a *PointerAdapter) Pending() int {
	return len(a.injectQueue)
}

// ProcessInjected pops one queued event and feeds it through the adapter.
// It reports whether an event was consumed.
func (a *PointerAdapter) ProcessInjected() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	switch evt.kind {
	case pointerPress:
		a.Press(InjectedPointerID, evt.x, evt.y)
	case pointerMove:
		a.Move(InjectedPointerID, evt.x, evt.y)
	case pointerRelease:
		a.Release(InjectedPointerID, evt.x, evt.y)
	case pointerCancel:
		a.Cancel(InjectedPointerID)
	}
	return true
}
