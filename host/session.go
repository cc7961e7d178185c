package host

import (
	"math"

	sw "github.com/phanxgames/smallworld"
	"github.com/phanxgames/smallworld/game"

	"github.com/rs/zerolog"
)

// zoomStep is the zoom factor applied per scroll unit.
const zoomStep = 1.1

// Session is the per-frame context threaded through builder, interpreter,
// and dispatcher: camera, pointer, button state, and the action hovered in
// the last frame. It is driven by one goroutine, one event or frame at a
// time.
type Session struct {
	Game   *game.Game
	Camera *Camera
	Interp sw.Interpreter

	pointer   sw.Vec2
	buttons   [3]bool
	hovered   sw.Action
	hoveredOK bool

	injectQueue     [][]sw.Event
	injectedFrame   uint64 // s.frame when the last injected batch was handled
	injectedOK      bool
	runner          *ScriptRunner
	screenshotQueue []string

	log   zerolog.Logger
	debug bool
	frame uint64
}

// NewSession creates a session for g viewed through cam.
func NewSession(g *game.Game, cam *Camera) *Session {
	return &Session{
		Game:   g,
		Camera: cam,
		log:    zerolog.Nop(),
	}
}

// SetLogger sets the logger for input handling and debug frame stats.
func (s *Session) SetLogger(l zerolog.Logger) {
	s.log = l
}

// SetDebugMode enables per-frame timing and stats logging.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.Interp.Debug = enabled
}

// Pointer returns the last known pointer position in screen space.
func (s *Session) Pointer() sw.Vec2 {
	return s.pointer
}

// Hovered returns the action hovered in the last frame.
func (s *Session) Hovered() (sw.Action, bool) {
	return s.hovered, s.hoveredOK
}

// Frames returns the number of frames drawn.
func (s *Session) Frames() uint64 {
	return s.frame
}

// Update advances the camera and the script runner, then feeds input: one
// batch of injected events if any are queued and a frame has been drawn
// since the previous batch, otherwise events from the real input source.
// It reports whether injected input was in progress.
func (s *Session) Update(dt float32, events []sw.Event) bool {
	s.Camera.Update(dt)
	if s.runner != nil {
		s.runner.step(s)
	}
	if s.processInjectedInput() {
		return true
	}
	for _, ev := range events {
		s.HandleEvent(ev)
	}
	return false
}

// HandleEvent applies one input event. A primary release dispatches the
// action hovered in the last frame; a secondary release cancels a held
// card; dragging with the middle button pans; scrolling zooms around the
// pointer.
func (s *Session) HandleEvent(ev sw.Event) {
	switch ev.Kind {
	case sw.EventPointerMove:
		s.movePointer(sw.Vec2{X: ev.X, Y: ev.Y})
	case sw.EventPointerDelta:
		s.movePointer(s.pointer.Add(sw.Vec2{X: ev.X, Y: ev.Y}))
	case sw.EventPointerDown:
		if int(ev.Button) < len(s.buttons) {
			s.buttons[ev.Button] = true
		}
	case sw.EventPointerUp:
		if int(ev.Button) < len(s.buttons) {
			s.buttons[ev.Button] = false
		}
		s.release(ev.Button)
	case sw.EventScroll:
		if ev.Y != 0 {
			s.Camera.ZoomAt(s.pointer, math.Pow(zoomStep, ev.Y))
		}
	}
}

func (s *Session) movePointer(p sw.Vec2) {
	if s.buttons[sw.MouseButtonMiddle] {
		d := p.Sub(s.pointer)
		s.Camera.Pan(d.X, d.Y)
	}
	s.pointer = p
}

func (s *Session) release(b sw.MouseButton) {
	switch b {
	case sw.MouseButtonLeft:
		hovered, ok := s.hovered, s.hoveredOK
		// The hover result belongs to the frame that computed it; a second
		// release before the next frame must not replay it.
		s.hovered, s.hoveredOK = nil, false
		if s.Game.Release(hovered, ok) {
			s.log.Debug().Interface("action", hovered).Msg("dispatched")
		}
	case sw.MouseButtonRight:
		s.Game.Cancel()
	}
}

// Frame clears b, builds the scene for the current state, renders it, and
// records the hovered action for the next primary release.
func (s *Session) Frame(b sw.Backend) {
	w, h := b.ViewportSize()
	b.Clear(game.BackgroundColor)
	scene := s.Game.Scene(game.View{
		Shift:    s.Camera.Shift,
		Zoom:     s.Camera.Zoom,
		Pointer:  s.pointer,
		Viewport: sw.Vec2{X: w, Y: h},
	})
	s.hovered, s.hoveredOK = s.Interp.Run(b, scene, s.pointer)
	s.frame++

	if s.debug {
		stats := s.Interp.Stats()
		s.log.Debug().Uint64("frame", s.frame).Object("stats", stats).Msg("frame")
		if stats.DeepTraversal() {
			s.log.Warn().Int("peak_depth", stats.PeakDepth).Msg("scene work-list unusually deep")
		}
	}
}

// Screenshot queues a labeled screenshot for the host to capture after the
// next frame.
func (s *Session) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Session) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
