// Package smallworld is the rendering core of a small tile-placement game.
//
// A frame is described by an immutable [Graphics] tree: rectangles, text,
// color, translation, scale, groups, and clickable regions. The tree is built
// fresh every frame and handed to an [Interpreter], which walks it with an
// explicit work-list instead of recursion. A single pass both issues draw
// calls through a [Backend] and decides which [ClickWrap] region, if any,
// contains the pointer:
//
//	var it smallworld.Interpreter
//	scene := smallworld.NewGroup(
//		smallworld.Colored(smallworld.RGB(0.2, 0.8, 0.4),
//			smallworld.Clickable("farm", smallworld.Rectangle{Width: 40, Height: 60})),
//		smallworld.Translated(0, 8, smallworld.Text{Size: 6, Content: "Farm"}),
//	)
//	action, ok := it.Run(backend, scene, pointer)
//
// The returned action is opaque to this package; the game package decides
// what it means on pointer release.
//
// Backends are small: rectangles, text at an integer pixel
// size, clear, and viewport size. [CommandBuffer] records calls for tests;
// the ebitenhost package draws them with [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
package smallworld
