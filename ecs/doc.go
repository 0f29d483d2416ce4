// Package ecs provides ECS adapters for patternlock's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// (session started, point lit, session completed, reset) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	lock := patternlock.New(300, cb, patternlock.WithEventStore(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
