package smallworld

import (
	"fmt"
	"math"
	"time"
)

// instrKind identifies a work-list instruction.
type instrKind uint8

const (
	instrDraw             instrKind = iota // draw node
	instrDrawSiblings                      // draw siblings[0], then the rest
	instrRestoreColor                      // color = saved color
	instrRestoreTransform                  // transform = saved transform
	instrResolveClick                      // record action if the hit flag is set
)

// instr is one work-list entry. Only the fields relevant to kind are set.
type instr struct {
	kind      instrKind
	node      Graphics
	siblings  []Graphics
	color     Color
	transform Transform
	action    Action
}

// Interpreter renders a Graphics tree and hit-tests it against the pointer
// in a single pass. Traversal uses an explicit work-list, so depth is limited
// only by memory. The zero value is ready to use; an Interpreter reuses its
// work-list between frames and must not be shared between goroutines.
type Interpreter struct {
	// LegacyColorRestore makes the end of a ColorWrap reinstate the wrap's
	// own color instead of the color that was current before it. Siblings
	// following a ColorWrap then inherit its color.
	LegacyColorRestore bool

	// Debug enables timing in Stats.
	Debug bool

	stack     []instr
	transform Transform
	color     Color
	hit       bool
	pointer   Vec2
	hovered   Action
	hoveredOK bool
	stats     Stats
}

// Run draws root through b and returns the action of the hovered ClickWrap.
// The pass starts with the identity transform, opaque black, and a cleared
// hit flag. When hovered regions overlap, the ClickWrap resolved last wins.
func (it *Interpreter) Run(b Backend, root Graphics, pointer Vec2) (Action, bool) {
	var t0 time.Time
	if it.Debug {
		t0 = time.Now()
	}

	it.transform = IdentityTransform
	it.color = ColorBlack
	it.hit = false
	it.pointer = pointer
	it.hovered = nil
	it.hoveredOK = false
	it.stats = Stats{}
	it.stack = it.stack[:0]

	if root != nil {
		it.push(instr{kind: instrDraw, node: root})
	}
	for len(it.stack) > 0 {
		last := len(it.stack) - 1
		in := it.stack[last]
		it.stack[last] = instr{} // release node references held by the backing array
		it.stack = it.stack[:last]
		it.stats.Instructions++
		it.exec(b, in)
	}

	if it.Debug {
		it.stats.Elapsed = time.Since(t0)
	}
	action, ok := it.hovered, it.hoveredOK
	it.hovered = nil
	return action, ok
}

// Stats returns the statistics of the most recent Run.
func (it *Interpreter) Stats() Stats {
	return it.stats
}

func (it *Interpreter) push(in instr) {
	it.stack = append(it.stack, in)
	if len(it.stack) > it.stats.PeakDepth {
		it.stats.PeakDepth = len(it.stack)
	}
}

func (it *Interpreter) exec(b Backend, in instr) {
	switch in.kind {
	case instrDraw:
		it.draw(b, in.node)
	case instrDrawSiblings:
		if len(in.siblings) > 1 {
			it.push(instr{kind: instrDrawSiblings, siblings: in.siblings[1:]})
		}
		it.push(instr{kind: instrDraw, node: in.siblings[0]})
	case instrRestoreColor:
		it.color = in.color
	case instrRestoreTransform:
		it.transform = in.transform
	case instrResolveClick:
		if it.hit {
			it.hovered = in.action
			it.hoveredOK = true
		}
	}
}

func (it *Interpreter) draw(b Backend, node Graphics) {
	switch n := node.(type) {
	case nil:
		// Empty slot, e.g. a wrapper without a child.
	case Rectangle:
		b.DrawRectangle(it.color, Vec2{n.Width, n.Height}, it.transform)
		it.stats.DrawCalls++
		if lx, ly, ok := it.transform.ToLocal(it.pointer.X, it.pointer.Y); ok {
			if (Rect{Width: n.Width, Height: n.Height}).Contains(lx, ly) {
				it.hit = true
				it.stats.RectangleHits++
			}
		}
	case Text:
		scale := it.transform.VerticalScale()
		px := int(math.Ceil(scale * float64(n.Size)))
		if px <= 0 || n.Content == "" {
			return
		}
		k := float64(n.Size) / float64(px)
		b.DrawText(it.color, px, n.Content, it.transform.Scale(k, k))
		it.stats.DrawCalls++
	case ColorWrap:
		restore := it.color
		if it.LegacyColorRestore {
			restore = n.Color
		}
		it.push(instr{kind: instrRestoreColor, color: restore})
		it.color = n.Color
		it.push(instr{kind: instrDraw, node: n.Child})
	case TranslateWrap:
		it.push(instr{kind: instrRestoreTransform, transform: it.transform})
		it.transform = it.transform.Translate(n.Offset.X, n.Offset.Y)
		it.push(instr{kind: instrDraw, node: n.Child})
	case ScaleWrap:
		it.push(instr{kind: instrRestoreTransform, transform: it.transform})
		it.transform = it.transform.Scale(n.Factor.X, n.Factor.Y)
		it.push(instr{kind: instrDraw, node: n.Child})
	case Group:
		if len(n.Children) == 0 {
			return
		}
		if len(n.Children) > 1 {
			it.push(instr{kind: instrDrawSiblings, siblings: n.Children[1:]})
		}
		it.push(instr{kind: instrDraw, node: n.Children[0]})
	case ClickWrap:
		it.push(instr{kind: instrResolveClick, action: n.Action})
		it.hit = false
		it.push(instr{kind: instrDraw, node: n.Child})
	default:
		panic(fmt.Sprintf("smallworld: unknown graphics node %T", node))
	}
}
