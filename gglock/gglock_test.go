package gglock

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/patternlock"
)

func newLock(t *testing.T) (*Renderer, *patternlock.Lock) {
	t.Helper()
	r := NewRenderer()
	r.Background = patternlock.Color{A: 1}
	return r, patternlock.New(300, patternlock.Callbacks{}, patternlock.WithRenderer(r))
}

// assertPixel checks the pixel at (x, y) against want, allowing for
// anti-aliasing rounding.
func assertPixel(t *testing.T, img image.Image, x, y int, want patternlock.Color, msg string) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	w := want.RGBA()
	near := func(got uint32, want uint8) bool {
		d := int(got>>8) - int(want)
		return d >= -3 && d <= 3
	}
	assert.True(t, near(r, w.R) && near(g, w.G) && near(b, w.B),
		"%s: pixel (%d,%d) = %d,%d,%d, want %d,%d,%d", msg, x, y, r>>8, g>>8, b>>8, w.R, w.G, w.B)
}

func TestRenderIdle(t *testing.T) {
	r, l := newLock(t)
	img, err := r.Image(l.Grid().Size())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 300, 300), img.Bounds())
	pal := l.Config().Palette
	assertPixel(t, img, 5, 5, patternlock.Color{A: 1}, "background")
	assertPixel(t, img, 150, 150, pal.Dot, "centre dot")
	assertPixel(t, img, 242, 242, pal.Dot, "corner dot")
}

func TestRenderGesture(t *testing.T) {
	r, l := newLock(t)
	l.BeginAtID("1")
	p2 := l.Grid().Point("2").Position
	l.MoveTo(p2.X, p2.Y)
	l.End()

	img, err := r.Image(l.Grid().Size())
	require.NoError(t, err)

	pal := l.Config().Palette
	assertPixel(t, img, 103, 57, pal.Trace, "trace between 1 and 2")
	assertPixel(t, img, 57, 57, pal.Inner, "inner dot of 1")
	assertPixel(t, img, 72, 42, pal.DotLit, "lit dot 1")
	assertPixel(t, img, 242, 242, pal.Dot, "unlit dot 9")
}

func TestRenderRejected(t *testing.T) {
	r := NewRenderer()
	l := patternlock.New(300, patternlock.Callbacks{
		Verify: func(string) bool { return false },
	}, patternlock.WithRenderer(r))
	l.BeginAtID("1")
	p3 := l.Grid().Point("3").Position
	l.MoveTo(p3.X, p3.Y)
	l.End()

	img, err := r.Image(300)
	require.NoError(t, err)

	pal := l.Config().Palette
	assertPixel(t, img, 196, 57, pal.TraceFailed, "failed trace")
	assertPixel(t, img, 165, 42, pal.DotFailed, "failed dot 2")
}

func TestRenderInvalidSize(t *testing.T) {
	r := NewRenderer()
	_, err := r.Render(0)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	r, l := newLock(t)
	path := filepath.Join(t.TempDir(), "lock.png")
	require.NoError(t, r.SavePNG(l.Grid().Size(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
