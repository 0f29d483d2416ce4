// Package ebitenlock runs a pattern lock in an [Ebitengine] window.
//
// [Renderer] is a [patternlock.DisplayList] that paints itself with the
// vector package. [Poller] turns Ebitengine's polled mouse and touch state
// into press, move and release edges for a [patternlock.PointerAdapter].
// [Game] wires both to a lock and implements [ebiten.Game]; [Run] opens a
// window for it.
//
//	err := ebitenlock.Run(ebitenlock.RunConfig{
//		Title: "Unlock",
//		Size:  300,
//		Callbacks: patternlock.Callbacks{
//			Verify: func(v string) bool { return v == "14789" },
//		},
//	})
//
// [Ebitengine]: https://ebitengine.org
package ebitenlock
