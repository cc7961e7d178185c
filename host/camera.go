package host

import (
	"math"

	sw "github.com/phanxgames/smallworld"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom limits.
const (
	DefaultMinZoom = 0.25
	DefaultMaxZoom = 4.0
)

// resetAnim holds the tweens of an animated return to the home view.
type resetAnim struct {
	x, y, zoom          *gween.Tween
	doneX, doneY, doneZ bool
}

// Camera is the map view: the screen position of the map origin and a zoom
// factor. It belongs to the host loop; the game only sees it through
// game.View.
type Camera struct {
	Shift sw.Vec2
	Zoom  float64

	// MinZoom and MaxZoom bound ZoomAt.
	MinZoom, MaxZoom float64

	// Home is the view Reset returns to.
	HomeShift sw.Vec2
	HomeZoom  float64

	reset *resetAnim
}

// NewCamera creates a camera at the given home view.
func NewCamera(shift sw.Vec2, zoom float64) *Camera {
	return &Camera{
		Shift:     shift,
		Zoom:      zoom,
		MinZoom:   DefaultMinZoom,
		MaxZoom:   DefaultMaxZoom,
		HomeShift: shift,
		HomeZoom:  zoom,
	}
}

// Pan moves the map by (dx, dy) screen pixels and stops any reset animation.
func (c *Camera) Pan(dx, dy float64) {
	c.reset = nil
	c.Shift.X += dx
	c.Shift.Y += dy
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom],
// keeping the map point under the screen point p fixed.
func (c *Camera) ZoomAt(p sw.Vec2, factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	c.reset = nil
	old := c.Zoom
	next := sw.Clamp(c.MinZoom, old*factor, c.MaxZoom)
	if next == old {
		return
	}
	// Map point under p: (p - shift) / old. Keep it at p after zooming.
	c.Shift.X = p.X - (p.X-c.Shift.X)*next/old
	c.Shift.Y = p.Y - (p.Y-c.Shift.Y)*next/old
	c.Zoom = next
}

// ScreenToMap converts a screen point to map-local coordinates.
func (c *Camera) ScreenToMap(p sw.Vec2) sw.Vec2 {
	return sw.Vec2{X: (p.X - c.Shift.X) / c.Zoom, Y: (p.Y - c.Shift.Y) / c.Zoom}
}

// Reset animates back to the home view over duration seconds. A duration of
// zero or less snaps immediately.
func (c *Camera) Reset(duration float32) {
	if duration <= 0 {
		c.reset = nil
		c.Shift = c.HomeShift
		c.Zoom = c.HomeZoom
		return
	}
	c.reset = &resetAnim{
		x:    gween.New(float32(c.Shift.X), float32(c.HomeShift.X), duration, ease.OutQuad),
		y:    gween.New(float32(c.Shift.Y), float32(c.HomeShift.Y), duration, ease.OutQuad),
		zoom: gween.New(float32(c.Zoom), float32(c.HomeZoom), duration, ease.OutQuad),
	}
}

// Resetting reports whether a reset animation is in progress.
func (c *Camera) Resetting() bool {
	return c.reset != nil
}

// Update advances the reset animation by dt seconds.
func (c *Camera) Update(dt float32) {
	r := c.reset
	if r == nil {
		return
	}
	if !r.doneX {
		val, done := r.x.Update(dt)
		c.Shift.X = float64(val)
		r.doneX = done
	}
	if !r.doneY {
		val, done := r.y.Update(dt)
		c.Shift.Y = float64(val)
		r.doneY = done
	}
	if !r.doneZ {
		val, done := r.zoom.Update(dt)
		c.Zoom = float64(val)
		r.doneZ = done
	}
	if r.doneX && r.doneY && r.doneZ {
		// Land exactly on home; float32 tweening is lossy.
		c.Shift = c.HomeShift
		c.Zoom = c.HomeZoom
		c.reset = nil
	}
}
