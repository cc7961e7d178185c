package smallworld

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the interpreter's initial draw color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is used for text drawn over dark tiles and the deck strip.
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// ToRGBA converts the color to a premultiplied 8-bit color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(0, c.R*c.A, 1)*255 + 0.5),
		G: uint8(Clamp(0, c.G*c.A, 1)*255 + 0.5),
		B: uint8(Clamp(0, c.B*c.A, 1)*255 + 0.5),
		A: uint8(Clamp(0, c.A, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and scale factors
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Clamp returns val limited to [lo, hi]. The lower bound is checked first,
// so with lo > hi values below lo yield lo and everything else yields hi.
func Clamp[T ~int | ~float64](lo, val, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
