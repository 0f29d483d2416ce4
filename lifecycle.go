package patternlock

// End closes the open session, drops any drag beyond the last selected
// point from the trace, and verifies the value. Ignored unless capturing.
func (l *Lock) End() {
	l.finish("end")
}

// Cancel is End for an interrupted gesture (e.g. a cancelled touch). The
// finished value is verified all the same.
func (l *Lock) Cancel() {
	l.finish("cancel")
}

func (l *Lock) finish(reason string) {
	if l.closed || l.state != StateCapturing {
		return
	}
	s := l.session
	s.pointer = s.current
	l.renderer.UpdateTrace(s.trace)
	l.state = StateCompleted

	value := l.Value()
	l.accepted = l.verify(value)
	if !l.accepted {
		l.markFailed()
	}
	Logger().Info("patternlock: gesture completed", "reason", reason, "points", len(s.visited), "accepted", l.accepted)

	if l.cb.Complete != nil {
		l.cb.Complete(value)
	}
	l.emit(GestureEvent{Type: EventSessionCompleted, Value: value, Accepted: l.accepted})

	// A callback may have reset or closed the lock already.
	if l.state != StateCompleted || l.session != s {
		return
	}
	l.state = StateLocked
	l.cooldown.start(l.cfg.ResetDelay)
	l.debugCheck(reason)
}

func (l *Lock) verify(value string) bool {
	if l.cb.Verify == nil {
		return true
	}
	return l.cb.Verify(value)
}

// markFailed requests the rejection styling and a short vibration.
func (l *Lock) markFailed() {
	pal := l.cfg.Palette
	l.renderer.SetTraceStroke(pal.TraceFailed)
	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		if !p.Selected {
			continue
		}
		l.renderer.SetMarkerFill(p.Marker, pal.DotFailed)
		if p.Inner != 0 {
			l.renderer.SetMarkerFill(p.Inner, pal.InnerFailed)
		}
	}
	if l.haptics != nil && l.cfg.VibrateDuration > 0 {
		l.haptics.Vibrate(l.cfg.VibrateDuration)
	}
}

// Reset clears the session and every selection, removes the trace and inner
// dots, returns to idle, then calls OnReset. It runs automatically when the
// cooldown elapses and may also be called directly in any state.
func (l *Lock) Reset() {
	if l.closed {
		return
	}
	l.cooldown.stop()
	l.pulses = l.pulses[:0]

	if l.session != nil {
		l.renderer.ClearTrace()
	}
	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		if p.Inner != 0 {
			l.renderer.RemoveMarker(p.Inner)
		}
		if p.Selected {
			l.renderer.SetMarkerFill(p.Marker, l.cfg.Palette.Dot)
		}
	}
	l.grid.Reset()
	l.session = nil
	l.state = StateIdle
	l.accepted = false

	Logger().Info("patternlock: reset")
	l.emit(GestureEvent{Type: EventReset})
	l.debugCheck("reset")

	if l.cb.OnReset != nil {
		l.cb.OnReset()
	}
}

// CancelPendingReset drops a scheduled automatic reset and reports whether
// one was pending. The lock stays in its current state until Reset is
// called.
func (l *Lock) CancelPendingReset() bool {
	return l.cooldown.stop()
}

// Close cancels any pending reset and removes everything the lock drew.
// After Close every method is a no-op.
func (l *Lock) Close() {
	if l.closed {
		return
	}
	l.cooldown.stop()
	l.pulses = nil
	if l.session != nil {
		l.renderer.ClearTrace()
	}
	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		if p.Inner != 0 {
			l.renderer.RemoveMarker(p.Inner)
		}
		l.renderer.RemoveMarker(p.Marker)
		p.Marker = 0
	}
	l.grid.Reset()
	l.session = nil
	l.state = StateIdle
	l.closed = true
}

// Closed reports whether Close has been called.
func (l *Lock) Closed() bool { return l.closed }
