package patternlock

// Marker is a retained filled circle.
type Marker struct {
	Handle   MarkerHandle
	Position Vec2
	Radius   float64
	Fill     Color
	Style    Style
}

// Trace is the retained connecting path.
type Trace struct {
	Visible bool
	Width   float64
	Stroke  Color
	Points  []Vec2
}

// DisplayList is a retained-mode Renderer: it records what the engine asked
// for and lets a front end paint it each frame. Markers keep draw order.
// It implements MarkerResizer.
type DisplayList struct {
	next    MarkerHandle
	markers []Marker
	trace   Trace
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{markers: make([]Marker, 0, GridLen*2)}
}

// DrawMarker appends a marker and returns its handle.
func (d *DisplayList) DrawMarker(pos Vec2, radius float64, fill Color, style Style) MarkerHandle {
	d.next++
	d.markers = append(d.markers, Marker{
		Handle:   d.next,
		Position: pos,
		Radius:   radius,
		Fill:     fill,
		Style:    style,
	})
	return d.next
}

func (d *DisplayList) find(h MarkerHandle) int {
	for i := range d.markers {
		if d.markers[i].Handle == h {
			return i
		}
	}
	return -1
}

// SetMarkerFill recolors the marker. Unknown handles are ignored.
func (d *DisplayList) SetMarkerFill(h MarkerHandle, fill Color) {
	if i := d.find(h); i >= 0 {
		d.markers[i].Fill = fill
	}
}

// SetMarkerRadius resizes the marker. Unknown handles are ignored.
func (d *DisplayList) SetMarkerRadius(h MarkerHandle, radius float64) {
	if i := d.find(h); i >= 0 {
		d.markers[i].Radius = radius
	}
}

// RemoveMarker deletes the marker, preserving the order of the rest.
func (d *DisplayList) RemoveMarker(h MarkerHandle) {
	i := d.find(h)
	if i < 0 {
		return
	}
	copy(d.markers[i:], d.markers[i+1:])
	d.markers[len(d.markers)-1] = Marker{}
	d.markers = d.markers[:len(d.markers)-1]
}

// BeginTrace shows an empty path with the given stroke.
func (d *DisplayList) BeginTrace(width float64, stroke Color) {
	d.trace = Trace{Visible: true, Width: width, Stroke: stroke}
}

// UpdateTrace replaces the path's points with a copy of points.
func (d *DisplayList) UpdateTrace(points []Vec2) {
	d.trace.Points = append(d.trace.Points[:0], points...)
}

// SetTraceStroke recolors the path.
func (d *DisplayList) SetTraceStroke(stroke Color) {
	d.trace.Stroke = stroke
}

// ClearTrace hides the path and drops its points.
func (d *DisplayList) ClearTrace() {
	d.trace = Trace{}
}

// Markers returns the markers in draw order. The returned slice MUST NOT be
// mutated and is only valid until the next change.
func (d *DisplayList) Markers() []Marker {
	return d.markers
}

// Marker returns the marker with handle h.
func (d *DisplayList) Marker(h MarkerHandle) (Marker, bool) {
	if i := d.find(h); i >= 0 {
		return d.markers[i], true
	}
	return Marker{}, false
}

// Trace returns the current path. Points MUST NOT be mutated.
func (d *DisplayList) Trace() Trace {
	return d.trace
}

// Each calls fn for every marker of the given style in draw order.
func (d *DisplayList) Each(style Style, fn func(Marker)) {
	for i := range d.markers {
		if d.markers[i].Style == style {
			fn(d.markers[i])
		}
	}
}
