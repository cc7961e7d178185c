package game

import (
	"fmt"
	"math/rand/v2"

	sw "github.com/phanxgames/smallworld"
)

// DeckSize is the fixed number of slots in a Deck.
const DeckSize = 5

// Deck layout, in screen pixels.
const (
	deckCardScale = 2.0
	deckMargin    = 10.0
)

// DeckHeight is the height of the rendered deck strip including margins.
const DeckHeight = CardHeight*deckCardScale + 2*deckMargin

// Deck is a fixed row of DeckSize cards. Taking a card redraws its slot, so
// the deck never shrinks.
type Deck struct {
	cards [DeckSize]Card
	rng   *rand.Rand
}

// NewDeck returns a deck whose slots are filled from rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Fill()
	return d
}

// Fill redraws every slot.
func (d *Deck) Fill() {
	for i := range d.cards {
		d.cards[i] = RandomCard(d.rng)
	}
}

// Len returns the number of slots, always DeckSize.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card in slot i.
func (d *Deck) Card(i int) Card {
	d.checkSlot(i)
	return d.cards[i]
}

// Cards returns a copy of all slots in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards[:])
	return out
}

// RemoveCard replaces slot i with a freshly drawn card.
// Panics if i is not a valid slot.
func (d *Deck) RemoveCard(i int) {
	d.checkSlot(i)
	d.cards[i] = RandomCard(d.rng)
}

func (d *Deck) checkSlot(i int) {
	if i < 0 || i >= len(d.cards) {
		panic(fmt.Sprintf("smallworld: deck slot %d out of range [0,%d)", i, len(d.cards)))
	}
}

// cardSpacing returns the horizontal distance between card origins: cards
// never overlap, and on wide viewports they spread over the available width.
func cardSpacing(availableWidth float64) float64 {
	minSpacing := CardWidth*deckCardScale + 2*deckMargin
	even := (availableWidth - 2*deckMargin) / DeckSize
	return max(minSpacing, even)
}

// Graphics lays the cards out left to right starting at (deckMargin,
// deckMargin). While st is idle each card is a DeckClick region; during a
// placement the deck is drawn but not clickable.
func (d *Deck) Graphics(availableWidth float64, st State) sw.Graphics {
	spacing := cardSpacing(availableWidth)
	children := make([]sw.Graphics, 0, len(d.cards))
	for i, card := range d.cards {
		g := card.Graphics()
		if st.IsIdle() {
			g = sw.Clickable(DeckClick(card, i), g)
		}
		x := deckMargin + float64(i)*spacing
		children = append(children, sw.Translated(x, deckMargin, sw.Scaled(deckCardScale, g)))
	}
	return sw.Group{Children: children}
}
