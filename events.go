package patternlock

// EventStore is the interface for optional event integration (ECS worlds,
// audit hooks, UI observers). When set on a Lock, every gesture event is
// forwarded to it synchronously.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries one engine transition.
type GestureEvent struct {
	Type EventType
	// PointID is the point concerned (EventSessionStarted, EventPointLit).
	PointID string
	// Position is the point's position (EventSessionStarted, EventPointLit).
	Position Vec2
	// PassThrough is set when a point was selected for lying on the segment
	// between two waypoints rather than being reached directly.
	PassThrough bool
	// Value is the visited sequence so far, or the final value for
	// EventSessionCompleted.
	Value string
	// Accepted is the verification outcome (EventSessionCompleted).
	Accepted bool
}

// SetEventStore sets the optional event bridge. Pass nil to detach.
func (l *Lock) SetEventStore(store EventStore) {
	l.store = store
}

func (l *Lock) emit(ev GestureEvent) {
	if l.store == nil {
		return
	}
	l.store.EmitEvent(ev)
}
