package game

import (
	"errors"
	"fmt"
)

// Coord is a grid coordinate. X grows to the right, Y downward.
type Coord struct {
	X, Y uint32
}

// Placement is a legal (coordinate, card) pair.
type Placement struct {
	Coord Coord
	Card  Card
}

// ErrNoPopulation is returned by Effectivity when the map has no population
// left, which ends the game.
var ErrNoPopulation = errors.New("smallworld: no population")

// adminDivisor is the share of the population needed for administration.
const adminDivisor = 10

// Map is a width x height grid of tiles plus the cards placed on it.
type Map struct {
	tiles  []Tile
	width  uint32
	height uint32
	cards  map[Coord]Card
}

// NewMap creates a map from row-major tiles (index = y*width + x).
// Panics if len(tiles) != width*height.
func NewMap(width, height uint32, tiles []Tile) *Map {
	if uint64(len(tiles)) != uint64(width)*uint64(height) {
		panic(fmt.Sprintf("smallworld: map has %d tiles, want %dx%d", len(tiles), width, height))
	}
	own := make([]Tile, len(tiles))
	copy(own, tiles)
	return &Map{
		tiles:  own,
		width:  width,
		height: height,
		cards:  make(map[Coord]Card),
	}
}

// TestMap returns the 2x3 starting map:
//
//	Forest   Mountain
//	Farmland City(1000)
//	Farmland Coal
func TestMap() *Map {
	return NewMap(2, 3, []Tile{
		Forest(), Mountain(),
		Farmland(), City(1000),
		Farmland(), Coal(),
	})
}

// Width returns the number of columns.
func (m *Map) Width() uint32 { return m.width }

// Height returns the number of rows.
func (m *Map) Height() uint32 { return m.height }

func (m *Map) index(c Coord) int {
	if c.X >= m.width || c.Y >= m.height {
		panic(fmt.Sprintf("smallworld: coordinate (%d,%d) outside %dx%d map", c.X, c.Y, m.width, m.height))
	}
	return int(c.Y*m.width + c.X)
}

// Tile returns the tile at c. Panics if c is outside the map.
func (m *Map) Tile(c Coord) Tile {
	return m.tiles[m.index(c)]
}

// SetTile replaces the tile at c. Panics if c is outside the map.
func (m *Map) SetTile(c Coord, t Tile) {
	m.tiles[m.index(c)] = t
}

// Each calls fn for every tile in row-major order, x fastest.
func (m *Map) Each(fn func(c Coord, t Tile)) {
	for y := uint32(0); y < m.height; y++ {
		for x := uint32(0); x < m.width; x++ {
			fn(Coord{x, y}, m.tiles[y*m.width+x])
		}
	}
}

// CardAt returns the card placed at c, if any.
func (m *Map) CardAt(c Coord) (Card, bool) {
	card, ok := m.cards[c]
	return card, ok
}

// Cards returns the placed cards in row-major order.
func (m *Map) Cards() []Placement {
	out := make([]Placement, 0, len(m.cards))
	m.Each(func(c Coord, _ Tile) {
		if card, ok := m.cards[c]; ok {
			out = append(out, Placement{Coord: c, Card: card})
		}
	})
	return out
}

// Pops returns the total city population.
func (m *Map) Pops() uint32 {
	var sum uint32
	for _, t := range m.tiles {
		if t.Kind == TileCity {
			sum += t.Population
		}
	}
	return sum
}

// NecPops returns the population needed to run the map: the worker cost of
// every placed card plus a tenth of the population for administration.
func (m *Map) NecPops() uint32 {
	var workers uint32
	for _, card := range m.cards {
		workers += card.WorkerCost()
	}
	return workers + m.Pops()/adminDivisor
}

// Effectivity returns how much of the available population is needed,
// capped at 1. It returns ErrNoPopulation when no one is left.
func (m *Map) Effectivity() (float64, error) {
	pops := m.Pops()
	if pops == 0 {
		return 0, ErrNoPopulation
	}
	nec := m.NecPops()
	if nec >= pops {
		return 1, nil
	}
	return float64(nec) / float64(pops), nil
}

// cardFor returns the card a tile accepts.
func cardFor(t Tile) (Card, bool) {
	switch t.Kind {
	case TileForest:
		return CardLumber, true
	case TileFarmland:
		return CardFarm, true
	case TileMountain, TileCoal, TileIron, TileCity:
		return 0, false
	default:
		panic(fmt.Sprintf("smallworld: unknown tile kind %d", t.Kind))
	}
}

// CardOptions returns every legal placement on the map in row-major order,
// x fastest. Occupied coordinates are never offered.
func (m *Map) CardOptions() []Placement {
	var places []Placement
	m.Each(func(c Coord, t Tile) {
		if _, taken := m.cards[c]; taken {
			return
		}
		if card, ok := cardFor(t); ok {
			places = append(places, Placement{Coord: c, Card: card})
		}
	})
	return places
}

// Matches reports whether (c, card) is currently among CardOptions.
func (m *Map) Matches(c Coord, card Card) bool {
	if c.X >= m.width || c.Y >= m.height {
		return false
	}
	if _, taken := m.cards[c]; taken {
		return false
	}
	want, ok := cardFor(m.tiles[c.Y*m.width+c.X])
	return ok && want == card
}

// PlaceCard puts card at c. Placing onto an occupied coordinate or placing a
// pair that Matches rejects is a programming error and panics; callers are
// expected to check Matches first.
func (m *Map) PlaceCard(c Coord, card Card) {
	if prev, taken := m.cards[c]; taken {
		panic(fmt.Sprintf("smallworld: coordinate (%d,%d) already holds %s", c.X, c.Y, prev))
	}
	if !m.Matches(c, card) {
		panic(fmt.Sprintf("smallworld: %s cannot be placed at (%d,%d)", card, c.X, c.Y))
	}
	m.cards[c] = card
}
