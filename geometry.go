package patternlock

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// WithinHitRadius reports whether p lies inside or on the circle of the given
// radius around center.
func WithinHitRadius(p, center Vec2, radius float64) bool {
	return Distance(p, center) <= radius
}

// OnSegment reports whether p lies on the segment from a to b: its
// perpendicular distance to the line through a and b is at most tolerance and
// its projection onto that line falls between a and b, inclusive.
// When a == b the test degenerates to a distance check against a.
func OnSegment(p, a, b Vec2, tolerance float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a) <= tolerance
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 || t > 1 {
		return false
	}

	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	return math.Abs(cross)/math.Sqrt(lenSq) <= tolerance
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
