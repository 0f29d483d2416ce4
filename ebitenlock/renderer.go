package ebitenlock

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/patternlock"
)

// Renderer records drawing intents from a lock and paints them each frame.
type Renderer struct {
	*patternlock.DisplayList
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{DisplayList: patternlock.NewDisplayList()}
}

// Draw paints the dots, then the trace, then the inner dots, offset by
// origin.
func (r *Renderer) Draw(dst *ebiten.Image, origin patternlock.Vec2) {
	r.Each(patternlock.StyleDot, func(m patternlock.Marker) {
		drawMarker(dst, m, origin)
	})
	r.drawTrace(dst, origin)
	r.Each(patternlock.StyleInner, func(m patternlock.Marker) {
		drawMarker(dst, m, origin)
	})
}

func drawMarker(dst *ebiten.Image, m patternlock.Marker, origin patternlock.Vec2) {
	p := m.Position.Add(origin)
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(m.Radius), m.Fill.RGBA(), true)
}

// drawTrace strokes each segment and fills a disc at every vertex so joints
// and ends come out round.
func (r *Renderer) drawTrace(dst *ebiten.Image, origin patternlock.Vec2) {
	tr := r.Trace()
	if !tr.Visible || len(tr.Points) == 0 {
		return
	}
	clr := tr.Stroke.RGBA()
	w := float32(tr.Width)
	for i, pt := range tr.Points {
		a := pt.Add(origin)
		vector.DrawFilledCircle(dst, float32(a.X), float32(a.Y), w/2, clr, true)
		if i == 0 {
			continue
		}
		b := tr.Points[i-1].Add(origin)
		vector.StrokeLine(dst, float32(b.X), float32(b.Y), float32(a.X), float32(a.Y), w, clr, true)
	}
}
