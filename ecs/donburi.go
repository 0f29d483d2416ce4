// Package ecs provides ECS adapters for patternlock.
package ecs

import (
	"github.com/phanxgames/patternlock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for patternlock gesture events.
// Subscribe to this in your ECS systems to receive session, point, and reset
// events.
var GestureEventType = events.NewEventType[patternlock.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) patternlock.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event patternlock.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
