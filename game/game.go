package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// EventSink is the interface for optional ECS integration.
// When set on a Game, every applied action is forwarded to it.
type EventSink interface {
	EmitAction(event ActionEvent)
}

// ActionEvent describes one applied state transition.
type ActionEvent struct {
	Action    Action
	Cancelled bool  // true for Cancel; Action is the zero value then
	From      State // state before the transition
	To        State // state after the transition
}

// Game owns the persistent state between frames: the map, the deck, and the
// interaction state. It is mutated only between frames, from one goroutine.
type Game struct {
	Map   *Map
	Deck  *Deck
	State State

	sink EventSink
	log  zerolog.Logger
}

// New returns an idle game on m with a deck drawn from rng.
func New(m *Map, rng *rand.Rand) *Game {
	return &Game{
		Map:   m,
		Deck:  NewDeck(rng),
		State: Idle(),
		log:   zerolog.Nop(),
	}
}

// SetLogger sets the logger used for state transitions.
func (g *Game) SetLogger(l zerolog.Logger) {
	g.log = l
}

// SetEventSink sets the optional ECS bridge.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// Release handles a primary pointer release. hovered is the action the
// interpreter reported for the last frame; values that are not an Action are
// ignored.
func (g *Game) Release(hovered any, ok bool) bool {
	if !ok {
		return false
	}
	a, isAction := hovered.(Action)
	if !isAction {
		return false
	}
	return g.Dispatch(a)
}

// Dispatch applies a to the current state and reports whether anything
// changed. Actions that do not fit the state are no-ops:
//
//	Idle        + DeckClick(card, i)       -> PlacingCard(card, i)
//	PlacingCard + FieldClick(c), c legal   -> place card, redraw slot, Idle
func (g *Game) Dispatch(a Action) bool {
	from := g.State
	switch {
	case a.Kind == ActionDeckClick && from.IsIdle():
		g.State = PlacingCard(a.Card, a.Slot)
	case a.Kind == ActionFieldClick && !from.IsIdle():
		if !g.Map.Matches(a.Coord, from.Card) {
			g.log.Debug().Stringer("action", a).Stringer("state", from).Msg("placement rejected")
			return false
		}
		g.Map.PlaceCard(a.Coord, from.Card)
		g.Deck.RemoveCard(from.Slot)
		g.State = Idle()
	default:
		g.log.Debug().Stringer("action", a).Stringer("state", from).Msg("action ignored")
		return false
	}
	g.log.Info().Stringer("action", a).Stringer("from", from).Stringer("to", g.State).Msg("transition")
	g.emit(ActionEvent{Action: a, From: from, To: g.State})
	return true
}

// Cancel drops a held card without consuming its deck slot. No-op when idle.
func (g *Game) Cancel() bool {
	if g.State.IsIdle() {
		return false
	}
	from := g.State
	g.State = Idle()
	g.log.Info().Stringer("from", from).Msg("placement cancelled")
	g.emit(ActionEvent{Cancelled: true, From: from, To: g.State})
	return true
}

func (g *Game) emit(ev ActionEvent) {
	if g.sink == nil {
		return
	}
	g.sink.EmitAction(ev)
}
