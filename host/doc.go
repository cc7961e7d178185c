// Package host drives a game.Game frame by frame independent of any window
// system. A [Session] owns the camera, pointer, and button state, turns
// input events into camera moves and game actions, and renders each frame
// through any smallworld.Backend.
//
// Input can be injected for automated runs, either directly (InjectClick,
// InjectDrag, ...) or from a JSON script loaded with [LoadScript]:
//
//	{"steps": [
//	  {"action": "click", "x": 50, "y": 440},
//	  {"action": "screenshot", "label": "holding"},
//	  {"action": "click", "x": 50, "y": 150},
//	  {"action": "wait", "frames": 10}
//	]}
package host
