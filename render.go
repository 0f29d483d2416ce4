package patternlock

import "time"

// MarkerHandle identifies a marker drawn by a Renderer. Zero means "no
// marker". The engine stores handles but never interprets them.
type MarkerHandle uint32

// Renderer is the presentation collaborator. The engine only emits drawing
// intents through it and never reads presentation state back.
type Renderer interface {
	// DrawMarker draws a filled circle and returns a handle for later updates.
	DrawMarker(pos Vec2, radius float64, fill Color, style Style) MarkerHandle
	// SetMarkerFill recolors a previously drawn marker.
	SetMarkerFill(h MarkerHandle, fill Color)
	// RemoveMarker deletes a previously drawn marker.
	RemoveMarker(h MarkerHandle)

	// BeginTrace starts a new connecting path with the given stroke.
	BeginTrace(width float64, stroke Color)
	// UpdateTrace replaces the path's points: the committed waypoints
	// followed, while capturing, by the live pointer tip.
	UpdateTrace(points []Vec2)
	// SetTraceStroke recolors the path.
	SetTraceStroke(stroke Color)
	// ClearTrace removes the path.
	ClearTrace()
}

// MarkerResizer is implemented by renderers that can animate marker radii.
// When present, the engine pulses inner dots as they light up.
type MarkerResizer interface {
	SetMarkerRadius(h MarkerHandle, radius float64)
}

// Haptics is implemented by hosts that can vibrate the device.
type Haptics interface {
	Vibrate(d time.Duration)
}

// nopRenderer hands out handles and draws nothing.
type nopRenderer struct {
	next MarkerHandle
}

func (r *nopRenderer) DrawMarker(Vec2, float64, Color, Style) MarkerHandle {
	r.next++
	return r.next
}

func (*nopRenderer) SetMarkerFill(MarkerHandle, Color) {}
func (*nopRenderer) RemoveMarker(MarkerHandle)         {}
func (*nopRenderer) BeginTrace(float64, Color)         {}
func (*nopRenderer) UpdateTrace([]Vec2)                {}
func (*nopRenderer) SetTraceStroke(Color)              {}
func (*nopRenderer) ClearTrace()                       {}
