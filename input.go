package smallworld

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventPointerMove  EventKind = iota // absolute pointer position in X, Y
	EventPointerDelta                  // relative pointer movement in X, Y
	EventPointerDown                   // Button pressed
	EventPointerUp                     // Button released
	EventScroll                        // scroll delta in X, Y
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "move"
	case EventPointerDelta:
		return "delta"
	case EventPointerDown:
		return "down"
	case EventPointerUp:
		return "up"
	case EventScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Event is one discrete input event delivered by the host event loop.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button MouseButton
}

// PointerMoved returns an EventPointerMove.
func PointerMoved(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerDelta returns an EventPointerDelta.
func PointerDelta(dx, dy float64) Event {
	return Event{Kind: EventPointerDelta, X: dx, Y: dy}
}

// PointerPressed returns an EventPointerDown.
func PointerPressed(b MouseButton) Event {
	return Event{Kind: EventPointerDown, Button: b}
}

// PointerReleased returns an EventPointerUp.
func PointerReleased(b MouseButton) Event {
	return Event{Kind: EventPointerUp, Button: b}
}

// Scrolled returns an EventScroll.
func Scrolled(dx, dy float64) Event {
	return Event{Kind: EventScroll, X: dx, Y: dy}
}
