package patternlock

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	innerDivisor = 2.5  // inner dot radius is the dot radius over this
	pulseScale   = 1.25 // peak inner radius relative to its resting radius
)

// cooldown is the one-shot countdown between verification and reset,
// advanced by Lock.Update. The tween value is the elapsed fraction.
type cooldown struct {
	tween    *gween.Tween
	duration float32
	progress float32
}

func (c *cooldown) start(d time.Duration) {
	c.duration = float32(d.Seconds())
	c.progress = 0
	c.tween = gween.New(0, 1, c.duration, ease.Linear)
}

// stop drops the countdown and reports whether one was running.
func (c *cooldown) stop() bool {
	running := c.tween != nil
	c.tween = nil
	c.progress = 0
	return running
}

// update advances the countdown and reports whether it just elapsed.
func (c *cooldown) update(dt float32) bool {
	if c.tween == nil {
		return false
	}
	val, done := c.tween.Update(dt)
	c.progress = val
	if done {
		c.tween = nil
		return true
	}
	return false
}

func (c *cooldown) remaining() time.Duration {
	if c.tween == nil {
		return 0
	}
	left := c.duration * (1 - c.progress)
	return time.Duration(float64(left) * float64(time.Second))
}

// pulse pops an inner dot from its resting radius to pulseScale times that
// and back, ease-in both ways.
type pulse struct {
	handle MarkerHandle
	grow   *gween.Tween
	shrink *gween.Tween
}

func newPulse(h MarkerHandle, base float64, d time.Duration) pulse {
	half := float32(d.Seconds() / 2)
	peak := float32(base * pulseScale)
	return pulse{
		handle: h,
		grow:   gween.New(float32(base), peak, half, ease.InQuad),
		shrink: gween.New(peak, float32(base), half, ease.InQuad),
	}
}

// update advances the pulse and returns the radius to apply.
func (p *pulse) update(dt float32) (radius float64, done bool) {
	if p.grow != nil {
		val, finished := p.grow.Update(dt)
		if finished {
			p.grow = nil
		}
		return float64(val), false
	}
	val, finished := p.shrink.Update(dt)
	return float64(val), finished
}

func (l *Lock) startPulse(h MarkerHandle, base float64) {
	if l.resizer == nil || l.cfg.PulseDuration <= 0 {
		return
	}
	l.pulses = append(l.pulses, newPulse(h, base, l.cfg.PulseDuration))
}

func (l *Lock) updatePulses(dt float32) {
	if len(l.pulses) == 0 {
		return
	}
	n := 0
	for i := range l.pulses {
		r, done := l.pulses[i].update(dt)
		l.resizer.SetMarkerRadius(l.pulses[i].handle, r)
		if !done {
			l.pulses[n] = l.pulses[i]
			n++
		}
	}
	l.pulses = l.pulses[:n]
}
