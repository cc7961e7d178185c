package host

import (
	"encoding/json"
	"fmt"

	sw "github.com/phanxgames/smallworld"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Dy      float64 `json:"dy,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Seconds float32 `json:"seconds,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input, camera resets, and screenshots
// across frames for automated runs. Attach to a Session via SetScriptRunner.
//
// Supported actions: click, cancel (secondary click), move, scroll, drag
// (middle-button pan), reset (camera), wait, screenshot.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "click", "cancel", "move", "scroll", "drag", "reset", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from
// Session.Update before injected input is processed.
func (s *Session) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.Pending() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		// Finish only once the host has drawn and captured queued shots.
		if len(s.screenshotQueue) == 0 {
			r.done = true
		}
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y, sw.MouseButtonLeft)
	case "cancel":
		s.InjectClick(st.X, st.Y, sw.MouseButtonRight)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "scroll":
		s.InjectScroll(st.X, st.Y, st.Dy)
	case "drag":
		s.InjectDrag(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "reset":
		s.Camera.Reset(st.Seconds)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

}
