package smallworld

// Graphics is one node of a scene description. The set of node types is
// closed: Rectangle, Text, ColorWrap, TranslateWrap, ScaleWrap, Group, and
// ClickWrap. Trees are plain values, rebuilt every frame; each wrapper owns
// its child and a Group owns its children.
type Graphics interface {
	isGraphics()
}

// Action is the opaque payload of a ClickWrap. The interpreter reports it
// back when its region is hovered and never inspects it.
type Action = any

// Rectangle is a filled, hit-testable rectangle with its top-left corner at
// the local origin.
type Rectangle struct {
	Width, Height float64
}

// Text draws Content at a nominal font Size. The baseline sits at the local
// origin.
type Text struct {
	Size    int
	Content string
}

// ColorWrap draws Child with Color as the current draw color.
type ColorWrap struct {
	Color Color
	Child Graphics
}

// TranslateWrap draws Child offset by Offset in the current local space.
type TranslateWrap struct {
	Offset Vec2
	Child  Graphics
}

// ScaleWrap draws Child scaled by Factor in the current local space.
type ScaleWrap struct {
	Factor Vec2
	Child  Graphics
}

// Group draws Children in order, each subtree fully before the next.
type Group struct {
	Children []Graphics
}

// ClickWrap marks Child as a clickable region. The region is hovered when
// the pointer lies inside any Rectangle drawn within Child.
type ClickWrap struct {
	Action Action
	Child  Graphics
}

func (Rectangle) isGraphics()     {}
func (Text) isGraphics()          {}
func (ColorWrap) isGraphics()     {}
func (TranslateWrap) isGraphics() {}
func (ScaleWrap) isGraphics()     {}
func (Group) isGraphics()         {}
func (ClickWrap) isGraphics()     {}

// --- Builder helpers ---

// Colored wraps g in a ColorWrap.
func Colored(c Color, g Graphics) Graphics {
	return ColorWrap{Color: c, Child: g}
}

// Translated wraps g in a TranslateWrap.
func Translated(x, y float64, g Graphics) Graphics {
	return TranslateWrap{Offset: Vec2{x, y}, Child: g}
}

// Scaled wraps g in a uniform ScaleWrap.
func Scaled(f float64, g Graphics) Graphics {
	return ScaleWrap{Factor: Vec2{f, f}, Child: g}
}

// ScaledXY wraps g in a ScaleWrap with independent axis factors.
func ScaledXY(sx, sy float64, g Graphics) Graphics {
	return ScaleWrap{Factor: Vec2{sx, sy}, Child: g}
}

// Clickable wraps g in a ClickWrap carrying a.
func Clickable(a Action, g Graphics) Graphics {
	return ClickWrap{Action: a, Child: g}
}

// NewGroup returns a Group of the given children. Nil children are dropped
// so optional parts of a frame can be passed inline.
func NewGroup(children ...Graphics) Graphics {
	kept := make([]Graphics, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return Group{Children: kept}
}
