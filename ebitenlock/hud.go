package ebitenlock

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/patternlock"
)

const hudRefresh = 0.5 // seconds between HUD redraws

// hud is a small overlay showing the lock state, the value and the frame
// rate. It redraws its image only every hudRefresh seconds.
type hud struct {
	img     *ebiten.Image
	elapsed float64
}

func newHUD() *hud {
	// 160x48 fits three lines of debug text.
	return &hud{img: ebiten.NewImage(160, 48), elapsed: hudRefresh}
}

func (h *hud) update(dt float64, l *patternlock.Lock) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0

	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, hudText(l, ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (h *hud) draw(dst *ebiten.Image) {
	dst.DrawImage(h.img, nil)
}

func hudText(l *patternlock.Lock, fps, tps float64) string {
	value := l.Value()
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\nFPS: %.1f\nTPS: %.1f", l.State(), value, fps, tps)
}
