package patternlock

import "strconv"

// GridLen is the number of points in the lock grid.
const GridLen = 9

const (
	gridCols     = 3
	radiusFactor = 0.7 // dot radius as a fraction of a sixth of the grid size
)

// GridPoint is one of the nine selectable positions. ID and Position never
// change after BuildGrid; Selected and the marker handles are mutated by the
// Lock that owns the grid.
type GridPoint struct {
	ID       string
	Position Vec2
	Selected bool

	// Marker is the handle of the large dot, Inner the handle of the small
	// dot drawn while the point is selected (zero when unlit).
	Marker MarkerHandle
	Inner  MarkerHandle
}

// Grid is the fixed 3x3 layout derived from a single side length.
type Grid struct {
	size   float64
	radius float64
	margin float64
	points [GridLen]GridPoint
}

// BuildGrid lays out nine points over a square surface of the given side
// length in row-major order with IDs "1" through "9". It is pure; call it
// again on resize to get a fresh grid.
func BuildGrid(size float64) *Grid {
	radius := size / 6 * radiusFactor
	margin := (size - radius*6) / 4
	offsets := [gridCols]float64{
		radius + margin,
		radius*3 + margin*2,
		radius*5 + margin*3,
	}

	g := &Grid{size: size, radius: radius, margin: margin}
	for i := range g.points {
		g.points[i] = GridPoint{
			ID:       strconv.Itoa(i + 1),
			Position: Vec2{X: offsets[i%gridCols], Y: offsets[i/gridCols]},
		}
	}
	return g
}

// Size returns the side length the grid was built for.
func (g *Grid) Size() float64 { return g.size }

// Radius returns the visual dot radius.
func (g *Grid) Radius() float64 { return g.radius }

// Margin returns the spacing between dots and from dots to the edge.
func (g *Grid) Margin() float64 { return g.margin }

// At returns the point at definition index i, or nil if i is out of range.
func (g *Grid) At(i int) *GridPoint {
	if i < 0 || i >= GridLen {
		return nil
	}
	return &g.points[i]
}

// Index returns the definition index of the point with the given ID, or -1.
func (g *Grid) Index(id string) int {
	for i := range g.points {
		if g.points[i].ID == id {
			return i
		}
	}
	return -1
}

// Point returns the point with the given ID, or nil.
func (g *Grid) Point(id string) *GridPoint {
	return g.At(g.Index(id))
}

// Points returns a copy of the nine points in definition order.
func (g *Grid) Points() []GridPoint {
	out := make([]GridPoint, GridLen)
	copy(out, g.points[:])
	return out
}

// PointAt returns the index of the first point whose circle of the given
// radius contains (x, y), or -1 if none does.
func (g *Grid) PointAt(x, y, radius float64) int {
	for i := range g.points {
		p := g.points[i].Position
		if (HitCircle{CenterX: p.X, CenterY: p.Y, Radius: radius}).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Reset clears every point's Selected flag and forgets the inner marker
// handles. Removing the markers themselves is the caller's job.
func (g *Grid) Reset() {
	for i := range g.points {
		g.points[i].Selected = false
		g.points[i].Inner = 0
	}
}
