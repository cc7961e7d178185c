package ecs

import (
	"github.com/phanxgames/smallworld/game"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEventType is the Donburi event type for applied game actions.
var ActionEventType = events.NewEventType[game.ActionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on ActionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) game.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitAction(event game.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}

// PlacementCounter is a ready-made subscriber that counts placed cards by
// kind. Attach it with Subscribe.
type PlacementCounter struct {
	Placed        map[game.Card]int
	Cancellations int
}

// NewPlacementCounter returns an empty counter.
func NewPlacementCounter() *PlacementCounter {
	return &PlacementCounter{Placed: make(map[game.Card]int)}
}

// Subscribe registers the counter on world.
func (c *PlacementCounter) Subscribe(world donburi.World) {
	ActionEventType.Subscribe(world, c.handle)
}

func (c *PlacementCounter) handle(_ donburi.World, e game.ActionEvent) {
	switch {
	case e.Cancelled:
		c.Cancellations++
	case e.Action.Kind == game.ActionFieldClick:
		c.Placed[e.From.Card]++
	}
}
