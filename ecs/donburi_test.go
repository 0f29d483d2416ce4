package ecs

import (
	"testing"

	"github.com/phanxgames/patternlock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []patternlock.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e patternlock.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(patternlock.GestureEvent{
		Type:     patternlock.EventPointLit,
		PointID:  "5",
		Position: patternlock.Vec2{X: 150, Y: 150},
		Value:    "15",
	})
	store.EmitEvent(patternlock.GestureEvent{
		Type:     patternlock.EventSessionCompleted,
		Value:    "159",
		Accepted: true,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events should not be delivered before ProcessEvents")
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != patternlock.EventPointLit || e.PointID != "5" || e.Position.X != 150 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != patternlock.EventSessionCompleted || !e.Accepted || e.Value != "159" {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_DrivenByLock(t *testing.T) {
	world := donburi.NewWorld()
	lock := patternlock.New(300, patternlock.Callbacks{}, patternlock.WithEventStore(NewDonburiStore(world)))

	var types []patternlock.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e patternlock.GestureEvent) {
		types = append(types, e.Type)
	})

	lock.BeginAtID("1")
	p := lock.Grid().Point("3").Position
	lock.MoveTo(p.X, p.Y)
	lock.End()
	events.ProcessAllEvents(world)

	want := []patternlock.EventType{
		patternlock.EventSessionStarted,
		patternlock.EventPointLit,
		patternlock.EventPointLit,
		patternlock.EventSessionCompleted,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("events = %v, want %v", types, want)
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e patternlock.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e patternlock.GestureEvent) {
		count2++
	})

	store.EmitEvent(patternlock.GestureEvent{Type: patternlock.EventReset})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
