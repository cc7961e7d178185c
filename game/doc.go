// Package game holds the rules of smallworld: a grid of terrain tiles, a
// five-card deck, and the two-state interaction machine that moves cards from
// the deck onto matching tiles.
//
// Each frame the host calls [Game.Scene] to build a smallworld.Graphics tree
// for the current state. Clickable regions carry an [Action]; when the
// primary button is released the host hands the action hovered in the last
// frame to [Game.Release], which applies it through [Game.Dispatch]:
//
//	Idle          --DeckClick(card, i)-->  PlacingCard(card, i)
//	PlacingCard   --FieldClick(c)------->  Idle  (card placed, slot i redrawn)
//	PlacingCard   --Cancel-------------->  Idle
//
// A Farm goes on Farmland and a Lumbermill on Forest; every other tile
// accepts nothing, and a tile holds at most one card.
package game
