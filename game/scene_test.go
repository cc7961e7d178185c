package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sw "github.com/phanxgames/smallworld"
)

func frame(g *Game, v View) (*sw.CommandBuffer, sw.Action, bool) {
	if v.Viewport == (sw.Vec2{}) {
		v.Viewport = sw.Vec2{X: 512, Y: 512}
	}
	buf := sw.NewCommandBuffer(v.Viewport.X, v.Viewport.Y)
	var it sw.Interpreter
	a, ok := it.Run(buf, g.Scene(v), v.Pointer)
	return buf, a, ok
}

func TestSceneIdleTilesNotClickable(t *testing.T) {
	g, _ := newTestGame()
	_, a, ok := frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 50, Y: 150}})
	assert.False(t, ok, "hovered %v", a)
}

func TestSceneDeckClick(t *testing.T) {
	g, _ := newTestGame()
	// Deck strip starts at 512-140; card 3 spans x 310..390.
	_, a, ok := frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 350, Y: 400}})
	require.True(t, ok)
	assert.Equal(t, DeckClick(g.Deck.Card(3), 3), a)
}

func TestSceneFieldClickWhilePlacing(t *testing.T) {
	g, _ := newTestGame()
	g.Dispatch(DeckClick(CardFarm, 1))

	_, a, ok := frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 50, Y: 150}})
	require.True(t, ok)
	assert.Equal(t, FieldClick(Coord{0, 1}), a)

	_, _, ok = frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 50, Y: 50}})
	assert.False(t, ok, "forest does not accept a farm")

	_, a, _ = frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 350, Y: 400}})
	assert.Equal(t, occluder{}, a, "deck cards are inert while placing")
}

func TestSceneCameraTransform(t *testing.T) {
	g, _ := newTestGame()
	g.Dispatch(DeckClick(CardFarm, 0))
	v := View{Shift: sw.Vec2{X: 40, Y: 40}, Zoom: 2}

	// Tile (0,1) spans screen y 240..440 at this zoom.
	v.Pointer = sw.Vec2{X: 100, Y: 300}
	_, a, ok := frame(g, v)
	require.True(t, ok)
	assert.Equal(t, FieldClick(Coord{0, 1}), a)

	// Below 372 the deck strip covers the same tile.
	v.Pointer = sw.Vec2{X: 100, Y: 400}
	_, a, _ = frame(g, v)
	assert.Equal(t, occluder{}, a)
	assert.False(t, g.Release(a, true))
}

func TestSceneTileRectangles(t *testing.T) {
	g, _ := newTestGame()
	buf, _, _ := frame(g, View{Shift: sw.Vec2{X: 10, Y: 20}, Zoom: 0.5, Pointer: sw.Vec2{X: -1, Y: -1}})

	rects := buf.Filter(sw.CommandRectangle)
	require.NotEmpty(t, rects)
	first := rects[0]
	assert.Equal(t, Forest().Color(), first.Color)
	assert.Equal(t, sw.Vec2{X: TileSize, Y: TileSize}, first.Size)
	assert.Equal(t, sw.Transform{0.5, 0, 0, 0.5, 10, 20}, first.Transform)

	_, ok := buf.FindText("Forest")
	assert.True(t, ok)
	_, ok = buf.FindText("City")
	assert.True(t, ok)
}

func TestSceneHUD(t *testing.T) {
	g, _ := newTestGame()
	buf, _, _ := frame(g, View{Zoom: 1})
	cmd, ok := buf.FindText("Population 1000 / needed 100")
	require.True(t, ok)
	assert.Equal(t, sw.ColorWhite, cmd.Color)

	g.Map.SetTile(Coord{1, 1}, Mountain())
	buf, _, _ = frame(g, View{Zoom: 1})
	_, ok = buf.FindText("Game over: no population")
	assert.True(t, ok)
}

func TestScenePlacedCardDrawn(t *testing.T) {
	g, _ := newTestGame()
	g.Dispatch(DeckClick(CardFarm, 0))
	g.Dispatch(FieldClick(Coord{0, 2}))

	buf, _, _ := frame(g, View{Zoom: 1})
	var found bool
	for _, cmd := range buf.Filter(sw.CommandRectangle) {
		if cmd.Color == CardFarm.Color() && cmd.Size == (sw.Vec2{X: CardWidth, Y: CardHeight}) &&
			cmd.Transform[4] == 20 && cmd.Transform[5] == 2*TileSize+15 {
			found = true
		}
	}
	assert.True(t, found, "placed farm should be drawn on tile (0,2)")
}

func TestSceneHeldCardFollowsPointer(t *testing.T) {
	g, _ := newTestGame()
	g.Dispatch(DeckClick(CardLumber, 0))

	buf, _, _ := frame(g, View{Zoom: 1, Pointer: sw.Vec2{X: 200, Y: 250}})
	rects := buf.Filter(sw.CommandRectangle)
	held := rects[len(rects)-1]
	assert.Equal(t, CardLumber.Color(), held.Color)
	assert.Equal(t, sw.Transform{2, 0, 0, 2, 200 - CardWidth, 250 - CardHeight}, held.Transform)

	texts := buf.Filter(sw.CommandText)
	assert.Equal(t, "Lumbermill", texts[len(texts)-1].Text)
}
