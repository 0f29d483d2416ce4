package patternlock

import "fmt"

// SetDebugMode enables or disables debug mode. When enabled, the lock checks
// its invariants after every mutation and logs violations at warn level
// through Logger. It never panics.
func (l *Lock) SetDebugMode(enabled bool) {
	l.debug = enabled
}

func (l *Lock) debugCheck(op string) {
	if !l.debug {
		return
	}
	if err := l.checkInvariants(); err != nil {
		Logger().Warn("patternlock: invariant violated", "op", op, "state", l.state.String(), "err", err)
	}
}

// checkInvariants verifies that the session and grid agree.
func (l *Lock) checkInvariants() error {
	if (l.session == nil) != (l.state == StateIdle) {
		return fmt.Errorf("state %s with session open=%v", l.state, l.session != nil)
	}

	var visited [GridLen]bool
	if l.session != nil {
		if len(l.session.visited) != len(l.session.order) {
			return fmt.Errorf("visited has %d ids but %d indices", len(l.session.visited), len(l.session.order))
		}
		for k, i := range l.session.order {
			if visited[i] {
				return fmt.Errorf("point %s visited twice", l.session.visited[k])
			}
			visited[i] = true
		}
	}

	for i := 0; i < GridLen; i++ {
		p := l.grid.At(i)
		if p.Selected != visited[i] {
			return fmt.Errorf("point %s selected=%v but visited=%v", p.ID, p.Selected, visited[i])
		}
	}
	return nil
}
