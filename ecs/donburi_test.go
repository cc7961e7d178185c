package ecs

import (
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/smallworld/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	require.NotNil(t, sink)
}

func TestDonburiSink_EmitAction(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []game.ActionEvent
	ActionEventType.Subscribe(world, func(w donburi.World, e game.ActionEvent) {
		received = append(received, e)
	})

	sink.EmitAction(game.ActionEvent{
		Action: game.DeckClick(game.CardLumber, 2),
		From:   game.Idle(),
		To:     game.PlacingCard(game.CardLumber, 2),
	})
	sink.EmitAction(game.ActionEvent{
		Cancelled: true,
		From:      game.PlacingCard(game.CardLumber, 2),
		To:        game.Idle(),
	})

	// Events are queued; process them.
	ActionEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, game.DeckClick(game.CardLumber, 2), received[0].Action)
	assert.True(t, received[1].Cancelled)
	assert.True(t, received[1].To.IsIdle())
}

func TestPlacementCounter_CountsDispatchedPlacements(t *testing.T) {
	world := donburi.NewWorld()
	counter := NewPlacementCounter()
	counter.Subscribe(world)

	g := game.New(game.TestMap(), rand.New(rand.NewPCG(1, 2)))
	g.SetEventSink(NewDonburiSink(world))

	require.True(t, g.Dispatch(game.DeckClick(game.CardFarm, 0)))
	require.True(t, g.Dispatch(game.FieldClick(game.Coord{X: 0, Y: 1})))
	require.True(t, g.Dispatch(game.DeckClick(game.CardLumber, 1)))
	require.True(t, g.Cancel())

	ActionEventType.ProcessEvents(world)

	assert.Equal(t, 1, counter.Placed[game.CardFarm])
	assert.Equal(t, 0, counter.Placed[game.CardLumber])
	assert.Equal(t, 1, counter.Cancellations)
}
