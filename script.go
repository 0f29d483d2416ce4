package patternlock

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames. Coordinates
// in the script are global; the "point" and "visit" actions take a point ID
// and resolve it against the adapter's grid and Origin.
//
// Actions:
//
//	{"action": "press",   "x": 57.5, "y": 57.5}
//	{"action": "move",    "x": 150,  "y": 57.5}
//	{"action": "release", "x": 150,  "y": 57.5}
//	{"action": "cancel"}
//	{"action": "drag",    "fromX": 0, "fromY": 0, "toX": 300, "toY": 300, "frames": 10}
//	{"action": "point",   "id": "1"}   // press at the centre of point 1
//	{"action": "visit",   "id": "3"}   // move to the centre of point 3
//	{"action": "wait",    "frames": 60}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "press", "move", "release", "cancel", "drag", "wait":
		return nil
	case "point", "visit":
		n, err := strconv.Atoi(st.ID)
		if err != nil || n < 1 || n > GridLen {
			return fmt.Errorf("%s: unknown point id %q", st.Action, st.ID)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// Done reports whether every step has run and all injections drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing injections on a. Call it
// before a.Update each frame.
func (r *ScriptRunner) Step(a *PointerAdapter) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if a.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		a.InjectPress(st.X, st.Y)
	case "move":
		a.InjectMove(st.X, st.Y)
	case "release":
		a.InjectRelease(st.X, st.Y)
	case "cancel":
		a.InjectCancel()
	case "drag":
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "point", "visit":
		if p := a.Lock().Grid().Point(st.ID); p != nil {
			g := a.ToGlobal(p.Position)
			if st.Action == "point" {
				a.InjectPress(g.X, g.Y)
			} else {
				a.InjectMove(g.X, g.Y)
			}
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.Pending() == 0 {
		r.done = true
	}
}

// Run steps the runner and updates the adapter with a fixed dt until the
// script is done or maxFrames frames have elapsed. It returns the number of
// frames run.
func (r *ScriptRunner) Run(a *PointerAdapter, dt float32, maxFrames int) int {
	frames := 0
	for frames < maxFrames && !(r.done && a.Pending() == 0) {
		r.Step(a)
		a.Update(dt)
		frames++
	}
	return frames
}
