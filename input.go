package patternlock

const noPointer = -1

// PointerAdapter translates platform pointer events into engine calls:
// press on a dot → BeginAt, move → MoveTo, release → End, cancel → Cancel.
//
// Only one pointer is tracked at a time. The first press claims it and every
// event from other pointers is ignored until it is released. Presses are
// also ignored while the lock is completed or locked, so no two sessions
// can overlap.
//
// Coordinates are global; Origin is subtracted to get surface coordinates.
type PointerAdapter struct {
	// Origin is the surface's top-left corner in global coordinates.
	Origin Vec2

	lock   *Lock
	active int
	down   bool
	last   Vec2 // last local position of the active pointer

	injectQueue []syntheticPointerEvent
}

// NewPointerAdapter creates an adapter that drives l.
func NewPointerAdapter(l *Lock) *PointerAdapter {
	return &PointerAdapter{lock: l, active: noPointer}
}

// Lock returns the driven lock.
func (a *PointerAdapter) Lock() *Lock { return a.lock }

// ActivePointer returns the claimed pointer ID, if any.
func (a *PointerAdapter) ActivePointer() (int, bool) {
	return a.active, a.down
}

// LastPosition returns the last surface position of the active pointer.
func (a *PointerAdapter) LastPosition() Vec2 { return a.last }

// ToLocal converts global coordinates to surface coordinates.
func (a *PointerAdapter) ToLocal(x, y float64) Vec2 {
	return Vec2{X: x - a.Origin.X, Y: y - a.Origin.Y}
}

// ToGlobal converts surface coordinates to global coordinates.
func (a *PointerAdapter) ToGlobal(p Vec2) Vec2 {
	return p.Add(a.Origin)
}

// Press handles a pointer going down at global (x, y). If it lands on a dot
// the session begins immediately; otherwise it begins as soon as the held
// pointer is dragged onto one.
func (a *PointerAdapter) Press(pointerID int, x, y float64) {
	if a.down || a.lock.Closed() || a.lock.State() != StateIdle {
		return
	}
	a.down = true
	a.active = pointerID
	a.last = a.ToLocal(x, y)
	Logger().Debug("patternlock: pointer claimed", "pointer", pointerID, "x", a.last.X, "y", a.last.Y)
	a.tryBegin(a.last)
}

// Move handles the active pointer moving to global (x, y) while held.
func (a *PointerAdapter) Move(pointerID int, x, y float64) {
	if !a.down || pointerID != a.active {
		return
	}
	a.last = a.ToLocal(x, y)
	switch a.lock.State() {
	case StateIdle:
		a.tryBegin(a.last)
	case StateCapturing:
		a.lock.MoveTo(a.last.X, a.last.Y)
	}
}

// Release handles the active pointer going up and ends the gesture.
func (a *PointerAdapter) Release(pointerID int, x, y float64) {
	if !a.down || pointerID != a.active {
		return
	}
	a.last = a.ToLocal(x, y)
	a.lock.End()
	a.releasePointer()
}

// Cancel handles the platform aborting the active pointer.
func (a *PointerAdapter) Cancel(pointerID int) {
	if !a.down || pointerID != a.active {
		return
	}
	a.lock.Cancel()
	a.releasePointer()
}

func (a *PointerAdapter) releasePointer() {
	Logger().Debug("patternlock: pointer released", "pointer", a.active)
	a.down = false
	a.active = noPointer
}

// tryBegin opens a session if p is over a dot. Presses use the full visual
// radius; the narrower hover radius applies only to moves.
func (a *PointerAdapter) tryBegin(p Vec2) {
	if a.lock.State() != StateIdle {
		return
	}
	g := a.lock.Grid()
	if i := g.PointAt(p.X, p.Y, g.Radius()); i >= 0 {
		a.lock.BeginAt(i)
	}
}

// Update consumes at most one injected event, then advances the lock by dt
// seconds. It reports whether an injected event was consumed, in which case
// hosts should skip real input for this frame.
func (a *PointerAdapter) Update(dt float32) bool {
	injected := a.ProcessInjected()
	a.lock.Update(dt)
	return injected
}
