// Package patternlock is the gesture capture engine behind a 3x3 pattern
// lock.
//
// A user drags one pointer across nine dots. The ordered, deduplicated
// sequence of visited dot IDs ("1" through "9", row-major) is the value,
// checked by a caller-supplied predicate. Dots lying on the straight segment
// between two consecutively reached dots are selected automatically and
// recorded before the dot that was reached.
//
// # Quick start
//
//	lock := patternlock.New(300, patternlock.Callbacks{
//		Verify:   func(v string) bool { return v == "14789" },
//		Complete: func(v string) { log.Println("entered", v) },
//	}, patternlock.WithRenderer(myRenderer))
//
//	input := patternlock.NewPointerAdapter(lock)
//	input.Origin = patternlock.Vec2{X: 40, Y: 80}
//
//	// from the host event loop:
//	input.Press(id, x, y)
//	input.Move(id, x, y)
//	input.Release(id, x, y)
//	input.Update(dt) // once per frame
//
// # Lifecycle
//
// A [Lock] cycles Idle → Capturing → Completed → Locked → Idle. Verification
// runs synchronously when the gesture ends; the lock then ignores input
// until a cooldown (one second by default) elapses in [Lock.Update] and
// [Lock.Reset] runs. Calls that arrive in the wrong state are silent no-ops.
//
// # Rendering
//
// The engine never draws. It emits intents through a [Renderer]; the
// retained [DisplayList] records them for front ends to paint. Ready-made
// front ends live in sub-packages: ebitenlock (Ebitengine window), gglock
// (software raster to PNG), and tuilock (terminal via Bubble Tea).
// The ecs sub-package forwards gesture events into a Donburi world.
package patternlock
