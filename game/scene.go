package game

import (
	"fmt"

	sw "github.com/phanxgames/smallworld"
)

// Map layout, in local units before camera zoom.
const (
	TileSize      = 100.0
	tileLabelSize = 12
	hudTextSize   = 14
)

// Offsets of a tile's label and placed card from the tile origin.
var (
	tileLabelOffset = sw.Vec2{X: 10, Y: 10}
	tileCardOffset  = sw.Vec2{X: 20, Y: 15}
)

var (
	// BackgroundColor is the clear color behind the map.
	BackgroundColor = sw.RGB(0.5, 0.5, 0.5)
	deckStripColor  = sw.Color{R: 0.15, G: 0.15, B: 0.2, A: 0.9}
)

// View is the per-frame context owned by the host loop: camera, pointer, and
// viewport. The builder reads it and never keeps it.
type View struct {
	Shift    sw.Vec2 // screen position of the map origin
	Zoom     float64 // map scale; 0 is treated as 1
	Pointer  sw.Vec2 // pointer position in screen space
	Viewport sw.Vec2 // viewport size in screen pixels
}

// occluder is the action of regions that only shield what lies beneath
// them, like the deck strip background. Release ignores it.
type occluder struct{}

// Scene builds this frame's scene: the map under the camera, the HUD, the
// deck strip along the bottom edge, and the held card following the pointer.
func (g *Game) Scene(v View) sw.Graphics {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return sw.NewGroup(
		sw.Translated(v.Shift.X, v.Shift.Y, sw.Scaled(zoom, g.mapGraphics())),
		g.hudGraphics(),
		g.deckStrip(v.Viewport),
		g.heldCard(v.Pointer),
	)
}

// mapGraphics draws every tile with its label and placed card. While a card
// is held, tiles that accept it are FieldClick regions.
func (g *Game) mapGraphics() sw.Graphics {
	held, _, placing := g.State.Holding()
	tiles := make([]sw.Graphics, 0, int(g.Map.Width()*g.Map.Height()))
	g.Map.Each(func(c Coord, t Tile) {
		var bg sw.Graphics = sw.Rectangle{Width: TileSize, Height: TileSize}
		if placing && g.Map.Matches(c, held) {
			bg = sw.Clickable(FieldClick(c), bg)
		}
		parts := []sw.Graphics{
			sw.Colored(t.Color(), bg),
			sw.Translated(tileLabelOffset.X, tileLabelOffset.Y, sw.Text{Size: tileLabelSize, Content: t.Label()}),
		}
		if card, ok := g.Map.CardAt(c); ok {
			parts = append(parts, sw.Translated(tileCardOffset.X, tileCardOffset.Y, card.Graphics()))
		}
		tiles = append(tiles, sw.Translated(float64(c.X)*TileSize, float64(c.Y)*TileSize, sw.Group{Children: parts}))
	})
	return sw.Group{Children: tiles}
}

// hudGraphics shows the economy summary. It never affects interaction.
func (g *Game) hudGraphics() sw.Graphics {
	line := fmt.Sprintf("Population %d / needed %d", g.Map.Pops(), g.Map.NecPops())
	if _, err := g.Map.Effectivity(); err != nil {
		line = "Game over: no population"
	}
	return sw.Translated(10, 24, sw.Colored(sw.ColorWhite, sw.Text{Size: hudTextSize, Content: line}))
}

// deckStrip draws the deck along the bottom of the viewport over a
// background that shields the map beneath it from clicks.
func (g *Game) deckStrip(viewport sw.Vec2) sw.Graphics {
	bg := sw.Clickable(occluder{}, sw.Colored(deckStripColor, sw.Rectangle{Width: viewport.X, Height: DeckHeight}))
	return sw.Translated(0, viewport.Y-DeckHeight, sw.NewGroup(bg, g.Deck.Graphics(viewport.X, g.State)))
}

// heldCard draws the held card centered on the pointer. It is drawn last
// and is never clickable, so it cannot hide the tile under the pointer.
func (g *Game) heldCard(pointer sw.Vec2) sw.Graphics {
	card, _, ok := g.State.Holding()
	if !ok {
		return nil
	}
	x := pointer.X - CardWidth*deckCardScale/2
	y := pointer.Y - CardHeight*deckCardScale/2
	return sw.Translated(x, y, sw.Scaled(deckCardScale, card.Graphics()))
}
