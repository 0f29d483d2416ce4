package patternlock

import (
	"strings"
	"time"
)

// Callbacks is the constructor-time callback bundle.
type Callbacks struct {
	// Verify checks a finished gesture's value. Called exactly once per
	// completed session. A nil Verify accepts every value.
	Verify func(value string) bool
	// Complete is called after verification whatever its outcome.
	Complete func(value string)
	// OnReset is called after the lock has returned to idle. It may query
	// the lock.
	OnReset func()
}

// Option configures a Lock during creation.
type Option func(*lockOptions)

type lockOptions struct {
	renderer Renderer
	haptics  Haptics
	store    EventStore
	config   Config
}

// WithRenderer sets the presentation collaborator. Without one the lock
// runs headless.
func WithRenderer(r Renderer) Option {
	return func(o *lockOptions) {
		o.renderer = r
	}
}

// WithHaptics sets the device vibration collaborator used on rejection.
func WithHaptics(h Haptics) Option {
	return func(o *lockOptions) {
		o.haptics = h
	}
}

// WithEventStore sets the optional event bridge.
func WithEventStore(s EventStore) Option {
	return func(o *lockOptions) {
		o.store = s
	}
}

// WithConfig overrides the default configuration. Zero fields keep their
// defaults.
func WithConfig(c Config) Option {
	return func(o *lockOptions) {
		o.config = c
	}
}

// session is the mutable state of one gesture between BeginAt and Reset.
type session struct {
	visited  []string
	order    []int  // definition indices, parallel to visited
	previous Vec2   // second-to-last waypoint
	current  Vec2   // last waypoint
	pointer  Vec2   // live pointer tip, render only
	trace    []Vec2 // committed waypoints
	traceBuf []Vec2 // scratch for trace+tip
}

func (s *session) append(id string, index int) {
	s.visited = append(s.visited, id)
	s.order = append(s.order, index)
}

// Lock is the gesture capture engine. It owns the grid and at most one
// session, and cycles Idle → Capturing → Completed → Locked → Idle.
//
// Lock is single-threaded: call it from one goroutine, normally the host's
// input or game loop. Every method is a silent no-op when called in a state
// that does not accept it.
type Lock struct {
	cfg      Config
	cb       Callbacks
	renderer Renderer
	resizer  MarkerResizer
	haptics  Haptics
	store    EventStore

	grid     *Grid
	state    State
	session  *session
	accepted bool

	cooldown cooldown
	pulses   []pulse

	debug  bool
	closed bool
}

// New creates a lock over a square surface of the given side length and
// draws the nine dots.
func New(size float64, cb Callbacks, opts ...Option) *Lock {
	o := lockOptions{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = &nopRenderer{}
	}

	l := &Lock{
		cfg:      o.config.withDefaults(),
		cb:       cb,
		renderer: o.renderer,
		haptics:  o.haptics,
		store:    o.store,
		grid:     BuildGrid(size),
	}
	l.resizer, _ = o.renderer.(MarkerResizer)
	l.drawGrid()
	return l
}

func (l *Lock) drawGrid() {
	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		p.Marker = l.renderer.DrawMarker(p.Position, l.grid.Radius(), l.cfg.Palette.Dot, StyleDot)
	}
}

// State returns the current phase.
func (l *Lock) State() State { return l.state }

// Grid returns the grid. Callers must treat it as read-only.
func (l *Lock) Grid() *Grid { return l.grid }

// Config returns the effective configuration.
func (l *Lock) Config() Config { return l.cfg }

// Dirty reports whether a session is open.
func (l *Lock) Dirty() bool { return l.session != nil }

// Accepted reports the verification outcome of the last completed session.
// Only meaningful in StateLocked.
func (l *Lock) Accepted() bool { return l.accepted }

// Value returns the visited identifiers concatenated, or "" when no session
// is open. Once the session completes the value is fixed until Reset.
func (l *Lock) Value() string {
	if l.session == nil {
		return ""
	}
	return strings.Join(l.session.visited, "")
}

// Visited returns a copy of the visited identifiers in order.
func (l *Lock) Visited() []string {
	if l.session == nil {
		return nil
	}
	out := make([]string, len(l.session.visited))
	copy(out, l.session.visited)
	return out
}

// BeginAt opens a session on the point at definition index i. Ignored unless
// the lock is idle, and ignored for an out-of-range or already selected point.
func (l *Lock) BeginAt(i int) {
	if l.closed || l.state != StateIdle {
		return
	}
	p := l.grid.At(i)
	if p == nil || p.Selected {
		return
	}

	l.session = &session{
		previous: p.Position,
		current:  p.Position,
		pointer:  p.Position,
		trace:    []Vec2{p.Position},
	}
	l.state = StateCapturing
	l.accepted = false

	l.selectPoint(i)
	l.session.append(p.ID, i)

	l.renderer.BeginTrace(l.grid.Radius()/4, l.cfg.Palette.Trace)
	l.renderer.UpdateTrace(l.session.trace)

	Logger().Debug("patternlock: session started", "id", p.ID)
	l.emit(GestureEvent{Type: EventSessionStarted, PointID: p.ID, Position: p.Position, Value: p.ID})
	l.debugCheck("begin")
}

// BeginAtID is BeginAt by point identifier.
func (l *Lock) BeginAtID(id string) {
	l.BeginAt(l.grid.Index(id))
}

// MoveTo feeds a pointer position in surface coordinates. While capturing,
// the first unselected point whose hover radius contains (x, y) is added to
// the value, preceded by any unselected points lying on the segment from
// the previous waypoint to it. The live trace tip always follows the pointer.
func (l *Lock) MoveTo(x, y float64) {
	if l.closed || l.state != StateCapturing {
		return
	}
	s := l.session
	pos := Vec2{X: x, Y: y}
	hover := l.grid.Radius() * l.cfg.HoverFactor

	hit := false
	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		if p.Selected || !WithinHitRadius(pos, p.Position, hover) {
			continue
		}
		hit = true

		s.previous = s.current
		s.current = p.Position
		s.trace = append(s.trace, p.Position)
		l.selectPoint(i)

		tol := l.cfg.tolerance(l.grid.Size())
		for j := 0; j < GridLen; j++ {
			d := l.grid.At(j)
			if d.Selected || !OnSegment(d.Position, s.previous, s.current, tol) {
				continue
			}
			l.selectPoint(j)
			l.commitPoint(j, true)
		}
		l.commitPoint(i, false)
		break
	}

	if !hit && pos == s.pointer {
		return
	}
	s.pointer = pos
	s.traceBuf = append(append(s.traceBuf[:0], s.trace...), pos)
	l.renderer.UpdateTrace(s.traceBuf)
	l.debugCheck("move")
}

// selectPoint marks the point selected and lights it.
func (l *Lock) selectPoint(i int) {
	p := l.grid.At(i)
	p.Selected = true
	l.renderer.SetMarkerFill(p.Marker, l.cfg.Palette.DotLit)
	base := l.grid.Radius() / innerDivisor
	p.Inner = l.renderer.DrawMarker(p.Position, base, l.cfg.Palette.Inner, StyleInner)
	l.startPulse(p.Inner, base)
}

// commitPoint appends an already selected point to the value.
func (l *Lock) commitPoint(i int, passThrough bool) {
	p := l.grid.At(i)
	l.session.append(p.ID, i)
	Logger().Debug("patternlock: point lit", "id", p.ID, "pass_through", passThrough)
	l.emit(GestureEvent{
		Type:        EventPointLit,
		PointID:     p.ID,
		Position:    p.Position,
		PassThrough: passThrough,
		Value:       strings.Join(l.session.visited, ""),
	})
}

// Update advances animations and the post-verification cooldown by dt
// seconds. Call it once per frame from the host loop; the automatic reset
// runs from inside Update.
func (l *Lock) Update(dt float32) {
	if l.closed {
		return
	}
	l.updatePulses(dt)
	if l.cooldown.update(dt) {
		l.Reset()
	}
}

// PendingReset returns the time left before the automatic reset, or zero
// when none is scheduled.
func (l *Lock) PendingReset() time.Duration {
	return l.cooldown.remaining()
}

// Resize rebuilds the grid for a new side length and redraws the dots. It
// only applies while idle and reports whether it did.
func (l *Lock) Resize(size float64) bool {
	if l.closed || l.state != StateIdle {
		return false
	}
	for i := 0; i < GridLen; i++ {
		l.renderer.RemoveMarker(l.grid.At(i).Marker)
	}
	l.grid = BuildGrid(size)
	l.drawGrid()
	Logger().Debug("patternlock: resized", "size", size, "radius", l.grid.Radius())
	return true
}
