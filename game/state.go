package game

import "fmt"

// State is the interaction state: idle, or holding a card taken from a deck
// slot. The zero value is idle.
type State struct {
	Placing bool
	Card    Card // valid while Placing
	Slot    int  // deck slot the card came from; valid while Placing
}

// Idle returns the idle state.
func Idle() State {
	return State{}
}

// PlacingCard returns the state of holding card taken from slot.
func PlacingCard(card Card, slot int) State {
	return State{Placing: true, Card: card, Slot: slot}
}

// IsIdle reports whether no card is held.
func (s State) IsIdle() bool {
	return !s.Placing
}

// Holding returns the held card and its slot.
func (s State) Holding() (card Card, slot int, ok bool) {
	return s.Card, s.Slot, s.Placing
}

// String implements fmt.Stringer.
func (s State) String() string {
	if !s.Placing {
		return "Idle"
	}
	return fmt.Sprintf("PlacingCard(%s, %d)", s.Card, s.Slot)
}

// ActionKind distinguishes clickable regions.
type ActionKind uint8

const (
	ActionFieldClick ActionKind = iota // a map tile
	ActionDeckClick                    // a deck slot
)

// Action is the payload of a clickable region, reported by the interpreter
// when hovered and applied by Game.Dispatch.
type Action struct {
	Kind  ActionKind
	Coord Coord // ActionFieldClick
	Card  Card  // ActionDeckClick
	Slot  int   // ActionDeckClick
}

// FieldClick returns the action of clicking the tile at c.
func FieldClick(c Coord) Action {
	return Action{Kind: ActionFieldClick, Coord: c}
}

// DeckClick returns the action of clicking card in deck slot.
func DeckClick(card Card, slot int) Action {
	return Action{Kind: ActionDeckClick, Card: card, Slot: slot}
}

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a.Kind {
	case ActionFieldClick:
		return fmt.Sprintf("FieldClick(%d,%d)", a.Coord.X, a.Coord.Y)
	case ActionDeckClick:
		return fmt.Sprintf("DeckClick(%s, %d)", a.Card, a.Slot)
	default:
		return "Action(?)"
	}
}
