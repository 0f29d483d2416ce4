package patternlock

import (
	"testing"
	"time"
)

const testSize = 300

// countingRenderer records every call on top of a DisplayList.
type countingRenderer struct {
	*DisplayList
	calls   int
	updates int
}

func newCountingRenderer() *countingRenderer {
	return &countingRenderer{DisplayList: NewDisplayList()}
}

func (r *countingRenderer) DrawMarker(pos Vec2, radius float64, fill Color, style Style) MarkerHandle {
	r.calls++
	return r.DisplayList.DrawMarker(pos, radius, fill, style)
}

func (r *countingRenderer) SetMarkerFill(h MarkerHandle, fill Color) {
	r.calls++
	r.DisplayList.SetMarkerFill(h, fill)
}

func (r *countingRenderer) SetMarkerRadius(h MarkerHandle, radius float64) {
	r.calls++
	r.DisplayList.SetMarkerRadius(h, radius)
}

func (r *countingRenderer) RemoveMarker(h MarkerHandle) {
	r.calls++
	r.DisplayList.RemoveMarker(h)
}

func (r *countingRenderer) BeginTrace(width float64, stroke Color) {
	r.calls++
	r.DisplayList.BeginTrace(width, stroke)
}

func (r *countingRenderer) UpdateTrace(points []Vec2) {
	r.calls++
	r.updates++
	r.DisplayList.UpdateTrace(points)
}

func (r *countingRenderer) SetTraceStroke(stroke Color) {
	r.calls++
	r.DisplayList.SetTraceStroke(stroke)
}

func (r *countingRenderer) ClearTrace() {
	r.calls++
	r.DisplayList.ClearTrace()
}

// vibrator records vibration requests.
type vibrator struct {
	pulses []time.Duration
}

func (v *vibrator) Vibrate(d time.Duration) { v.pulses = append(v.pulses, d) }

// eventLog is an EventStore that keeps every event.
type eventLog struct {
	events []GestureEvent
}

func (e *eventLog) EmitEvent(ev GestureEvent) { e.events = append(e.events, ev) }

func (e *eventLog) types() []EventType {
	out := make([]EventType, len(e.events))
	for i, ev := range e.events {
		out[i] = ev.Type
	}
	return out
}

// moveToPoint moves the pointer onto the centre of the point with the given ID.
func moveToPoint(l *Lock, id string) {
	p := l.Grid().Point(id).Position
	l.MoveTo(p.X, p.Y)
}

func assertVisited(t *testing.T, l *Lock, want ...string) {
	t.Helper()
	got := l.Visited()
	if len(got) != len(want) {
		t.Fatalf("Visited() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visited() = %v, want %v", got, want)
		}
	}
}

func assertState(t *testing.T, l *Lock, want State) {
	t.Helper()
	if got := l.State(); got != want {
		t.Fatalf("State() = %v, want %v", got, want)
	}
}

func countSelected(l *Lock) int {
	n := 0
	for _, p := range l.Grid().Points() {
		if p.Selected {
			n++
		}
	}
	return n
}
