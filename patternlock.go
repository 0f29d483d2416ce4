package patternlock

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to an 8-bit straight-alpha color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for grid positions and pointer coordinates in the
// drawing surface's coordinate space. The origin is top-left with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// State is a phase of the gesture engine's capture cycle.
type State uint8

const (
	StateIdle      State = iota // no session; waiting for a press on a point
	StateCapturing              // session open, accepting moves
	StateCompleted              // session closed, value final, verifying
	StateLocked                 // post-verification cooldown, input suppressed
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateCompleted:
		return "completed"
	case StateLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Style distinguishes the two kinds of marker the engine draws.
type Style uint8

const (
	StyleDot   Style = iota // large grid dot, always present
	StyleInner              // small dot drawn over a selected point
)

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventSessionStarted   EventType = iota // fires when the first point is selected
	EventPointLit                          // fires for every point appended to the value
	EventSessionCompleted                  // fires after verification of a finished gesture
	EventReset                             // fires when the lock returns to idle
)

// String returns a short name for the event type.
func (e EventType) String() string {
	switch e {
	case EventSessionStarted:
		return "session_started"
	case EventPointLit:
		return "point_lit"
	case EventSessionCompleted:
		return "session_completed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}
