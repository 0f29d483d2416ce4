// Package gglock rasterizes a pattern lock in software with gogpu/gg.
//
// It needs no window or GPU and is meant for snapshots, documentation
// images and golden tests:
//
//	r := gglock.NewRenderer()
//	lock := patternlock.New(300, cb, patternlock.WithRenderer(r))
//	// ... drive the lock ...
//	err := r.SavePNG(lock.Grid().Size(), "lock.png")
package gglock

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/patternlock"
)

// Renderer is a display list that can paint itself onto a gg.Context.
type Renderer struct {
	*patternlock.DisplayList

	// Background fills the image before anything is drawn. The zero value
	// leaves it transparent.
	Background patternlock.Color
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{DisplayList: patternlock.NewDisplayList()}
}

// Render paints the current display list onto a new square context of the
// given side length.
func (r *Renderer) Render(size float64) (*gg.Context, error) {
	side := int(math.Ceil(size))
	if side <= 0 {
		return nil, fmt.Errorf("render: invalid size %v", size)
	}
	dc := gg.NewContext(side, side)
	if err := r.Paint(dc); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// Paint draws the dots, the trace, then the inner dots onto dc.
func (r *Renderer) Paint(dc *gg.Context) error {
	if r.Background.A > 0 {
		b := r.Background
		dc.ClearWithColor(gg.RGBA{R: b.R, G: b.G, B: b.B, A: b.A})
	}

	var err error
	fill := func(m patternlock.Marker) {
		if err != nil {
			return
		}
		dc.SetRGBA(m.Fill.R, m.Fill.G, m.Fill.B, m.Fill.A)
		dc.DrawCircle(m.Position.X, m.Position.Y, m.Radius)
		if ferr := dc.Fill(); ferr != nil {
			err = fmt.Errorf("paint marker %d: %w", m.Handle, ferr)
		}
	}

	r.Each(patternlock.StyleDot, fill)
	if err != nil {
		return err
	}
	if err := r.paintTrace(dc); err != nil {
		return err
	}
	r.Each(patternlock.StyleInner, fill)
	return err
}

func (r *Renderer) paintTrace(dc *gg.Context) error {
	tr := r.Trace()
	if !tr.Visible || len(tr.Points) < 2 {
		return nil
	}
	s := tr.Stroke
	dc.SetRGBA(s.R, s.G, s.B, s.A)
	dc.SetLineWidth(tr.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(tr.Points[0].X, tr.Points[0].Y)
	for _, p := range tr.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("paint trace: %w", err)
	}
	return nil
}

// Image renders and returns the result as an image.
func (r *Renderer) Image(size float64) (image.Image, error) {
	dc, err := r.Render(size)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG renders and writes the result to path.
func (r *Renderer) SavePNG(size float64, path string) error {
	dc, err := r.Render(size)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
