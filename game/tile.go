package game

import (
	"fmt"
	"strconv"
	"strings"

	sw "github.com/phanxgames/smallworld"
)

// TileKind distinguishes the terrain of a map tile.
type TileKind uint8

const (
	TileForest   TileKind = iota // yields Lumber placements
	TileFarmland                 // yields Farm placements
	TileMountain
	TileCoal
	TileIron
	TileCity // carries a population
)

// Tile is one map cell. Population is only meaningful for TileCity.
type Tile struct {
	Kind       TileKind
	Population uint32
}

// Forest returns a forest tile.
func Forest() Tile { return Tile{Kind: TileForest} }

// Farmland returns a farmland tile.
func Farmland() Tile { return Tile{Kind: TileFarmland} }

// Mountain returns a mountain tile.
func Mountain() Tile { return Tile{Kind: TileMountain} }

// Coal returns a coal tile.
func Coal() Tile { return Tile{Kind: TileCoal} }

// Iron returns an iron tile.
func Iron() Tile { return Tile{Kind: TileIron} }

// City returns a city tile with the given population.
func City(population uint32) Tile { return Tile{Kind: TileCity, Population: population} }

// Color returns the tile's display color.
func (t Tile) Color() sw.Color {
	switch t.Kind {
	case TileForest:
		return sw.RGB(0.2, 0.8, 0.4)
	case TileFarmland:
		return sw.RGB(0.4, 1.0, 0.4)
	case TileMountain:
		return sw.RGB(0.4, 0.4, 0.4)
	case TileCoal:
		return sw.RGB(0.2, 0.2, 0.2)
	case TileIron:
		return sw.RGB(0.8, 0.2, 0.2)
	case TileCity:
		return sw.RGB(0.8, 0.6, 0.6)
	default:
		panic(fmt.Sprintf("smallworld: unknown tile kind %d", t.Kind))
	}
}

// Label returns the tile's display text.
func (t Tile) Label() string {
	switch t.Kind {
	case TileForest:
		return "Forest"
	case TileFarmland:
		return "Farmland"
	case TileMountain:
		return "Mountain"
	case TileCoal:
		return "Coal"
	case TileIron:
		return "Iron"
	case TileCity:
		return "City"
	default:
		panic(fmt.Sprintf("smallworld: unknown tile kind %d", t.Kind))
	}
}

// String returns the ParseTile form of t.
func (t Tile) String() string {
	if t.Kind == TileCity {
		return "city:" + strconv.FormatUint(uint64(t.Population), 10)
	}
	return strings.ToLower(t.Label())
}

// ParseTile parses a tile written as its lower-case label, with cities
// written as "city:<population>".
func ParseTile(s string) (Tile, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(strings.ToLower(s)), ":")
	if hasArg && name != "city" {
		return Tile{}, fmt.Errorf("parse tile %q: only city takes a population", s)
	}
	switch name {
	case "forest":
		return Forest(), nil
	case "farmland":
		return Farmland(), nil
	case "mountain":
		return Mountain(), nil
	case "coal":
		return Coal(), nil
	case "iron":
		return Iron(), nil
	case "city":
		if !hasArg {
			return City(0), nil
		}
		pop, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 32)
		if err != nil {
			return Tile{}, fmt.Errorf("parse tile %q: population: %w", s, err)
		}
		return City(uint32(pop)), nil
	default:
		return Tile{}, fmt.Errorf("parse tile %q: unknown kind", s)
	}
}
