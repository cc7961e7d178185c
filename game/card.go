package game

import (
	"fmt"
	"math/rand/v2"

	sw "github.com/phanxgames/smallworld"
)

// Card is a building that can be placed on a matching tile.
type Card uint8

const (
	CardFarm   Card = iota // placed on farmland
	CardLumber             // placed on forest
	numCards
)

// Mini drawing dimensions of a card, in local units.
const (
	CardWidth  = 40.0
	CardHeight = 60.0
)

const (
	cardTitleSize = 6
	workerCost    = 100
)

// Color returns the card's display color.
func (c Card) Color() sw.Color {
	switch c {
	case CardFarm:
		return sw.RGB(0.2, 0.8, 0.4)
	case CardLumber:
		return sw.RGB(0.8, 0.6, 0.4)
	default:
		panic(fmt.Sprintf("smallworld: unknown card %d", c))
	}
}

// Title returns the card's display name.
func (c Card) Title() string {
	switch c {
	case CardFarm:
		return "Farm"
	case CardLumber:
		return "Lumbermill"
	default:
		panic(fmt.Sprintf("smallworld: unknown card %d", c))
	}
}

// String implements fmt.Stringer.
func (c Card) String() string {
	return c.Title()
}

// WorkerCost returns the population a placed card employs.
func (c Card) WorkerCost() uint32 {
	switch c {
	case CardFarm, CardLumber:
		return workerCost
	default:
		panic(fmt.Sprintf("smallworld: unknown card %d", c))
	}
}

// Graphics returns the card's mini drawing: a CardWidth x CardHeight
// rectangle in the card color with the title near the top.
func (c Card) Graphics() sw.Graphics {
	return sw.NewGroup(
		sw.Colored(c.Color(), sw.Rectangle{Width: CardWidth, Height: CardHeight}),
		sw.Translated(0, 8, sw.Text{Size: cardTitleSize, Content: c.Title()}),
	)
}

// RandomCard draws a card uniformly from all card kinds.
func RandomCard(rng *rand.Rand) Card {
	return Card(rng.IntN(int(numCards)))
}
