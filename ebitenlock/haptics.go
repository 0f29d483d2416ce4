package ebitenlock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics vibrates the device through Ebitengine. It is a no-op on
// platforms without a vibrator.
type Haptics struct {
	// Magnitude is the strength in [0, 1]. Zero means full strength.
	Magnitude float64
}

// Vibrate requests a vibration of duration d.
func (h Haptics) Vibrate(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: h.magnitude()})
}

func (h Haptics) magnitude() float64 {
	if h.Magnitude <= 0 || h.Magnitude > 1 {
		return 1
	}
	return h.Magnitude
}
