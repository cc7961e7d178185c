package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	sw "github.com/phanxgames/smallworld"
)

// polledButtons lists the mouse buttons translated into events.
var polledButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// toMouseButton maps an ebiten mouse button to a smallworld button.
func toMouseButton(b ebiten.MouseButton) (sw.MouseButton, bool) {
	switch b {
	case ebiten.MouseButtonLeft:
		return sw.MouseButtonLeft, true
	case ebiten.MouseButtonRight:
		return sw.MouseButtonRight, true
	case ebiten.MouseButtonMiddle:
		return sw.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// inputPoller converts ebiten's polled input state into discrete events.
type inputPoller struct {
	last    image.Point
	hasLast bool
	events  []sw.Event
}

// poll returns this tick's events. The returned slice is reused by the next
// call. Moves come first so presses and releases apply at the new position.
func (p *inputPoller) poll() []sw.Event {
	p.events = p.events[:0]

	x, y := ebiten.CursorPosition()
	p.events = appendMove(p.events, &p.last, &p.hasLast, image.Pt(x, y))

	for _, eb := range polledButtons {
		b, ok := toMouseButton(eb)
		if !ok {
			continue
		}
		if inpututil.IsMouseButtonJustPressed(eb) {
			p.events = append(p.events, sw.PointerPressed(b))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			p.events = append(p.events, sw.PointerReleased(b))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		p.events = append(p.events, sw.Scrolled(wx, wy))
	}
	return p.events
}

// appendMove appends a move event when the cursor changed since last.
func appendMove(events []sw.Event, last *image.Point, hasLast *bool, cur image.Point) []sw.Event {
	if *hasLast && cur == *last {
		return events
	}
	*last = cur
	*hasLast = true
	return append(events, sw.PointerMoved(float64(cur.X), float64(cur.Y)))
}
