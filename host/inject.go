package host

import sw "github.com/phanxgames/smallworld"

// Injected input is queued in per-frame batches so that every release is
// preceded by a frame that hit-tests the pointer's new position, identical
// to real mouse input.

// InjectMove queues a pointer move to the given screen coordinates.
// Consumes one frame.
func (s *Session) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, []sw.Event{sw.PointerMoved(x, y)})
}

// InjectClick queues a move and press of button at (x, y), then its release
// on the following frame. Consumes two frames.
func (s *Session) InjectClick(x, y float64, button sw.MouseButton) {
	s.injectQueue = append(s.injectQueue,
		[]sw.Event{sw.PointerMoved(x, y), sw.PointerPressed(button)},
		[]sw.Event{sw.PointerReleased(button)},
	)
}

// InjectScroll queues a scroll at (x, y). Consumes one frame.
func (s *Session) InjectScroll(x, y, dy float64) {
	s.injectQueue = append(s.injectQueue, []sw.Event{sw.PointerMoved(x, y), sw.Scrolled(0, dy)})
}

// InjectDrag queues a middle-button drag from (fromX, fromY) to (toX, toY)
// over the given number of frames (minimum 2: press and release).
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.injectQueue = append(s.injectQueue, []sw.Event{sw.PointerMoved(fromX, fromY), sw.PointerPressed(sw.MouseButtonMiddle)})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.injectQueue = append(s.injectQueue, []sw.Event{sw.PointerMoved(toX, toY), sw.PointerReleased(sw.MouseButtonMiddle)})
}

// Pending reports whether injected input is still queued.
func (s *Session) Pending() bool {
	return len(s.injectQueue) > 0
}

// processInjectedInput pops one batch from the inject queue and handles it.
// At most one batch is handled per drawn frame; while the next batch waits
// for Frame, it still returns true so real input stays suppressed.
// Returns true if injected input is in progress.
func (s *Session) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	if s.injectedOK && s.injectedFrame == s.frame {
		return true
	}
	s.injectedFrame, s.injectedOK = s.frame, true
	batch := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = nil
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	for _, ev := range batch {
		s.HandleEvent(ev)
	}
	return true
}
