package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	sw "github.com/phanxgames/smallworld"
)

// ScreenBackend draws interpreter output onto an *ebiten.Image.
type ScreenBackend struct {
	// Screen is the current render target; set before every frame.
	Screen *ebiten.Image
	Faces  *FaceCache

	whitePixel *ebiten.Image
}

// NewScreenBackend creates a backend rendering text with faces.
func NewScreenBackend(faces *FaceCache) *ScreenBackend {
	px := ebiten.NewImage(1, 1)
	px.Fill(sw.ColorWhite.ToRGBA())
	return &ScreenBackend{Faces: faces, whitePixel: px}
}

// geoM converts an affine Transform to an ebiten.GeoM.
func geoM(t sw.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t[0])
	g.SetElement(0, 1, t[2])
	g.SetElement(0, 2, t[4])
	g.SetElement(1, 0, t[1])
	g.SetElement(1, 1, t[3])
	g.SetElement(1, 2, t[5])
	return g
}

// DrawRectangle draws the white pixel stretched to size and tinted with c.
func (b *ScreenBackend) DrawRectangle(c sw.Color, size sw.Vec2, t sw.Transform) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size.X, size.Y)
	op.GeoM.Concat(geoM(t))
	op.ColorScale.ScaleWithColor(c.ToRGBA())
	b.Screen.DrawImage(b.whitePixel, &op)
}

// DrawText draws s with the face for pixelSize, baseline at the local origin.
func (b *ScreenBackend) DrawText(c sw.Color, pixelSize int, s string, t sw.Transform) {
	face := b.Faces.Face(pixelSize)
	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -face.Metrics().HAscent)
	op.GeoM.Concat(geoM(t))
	op.ColorScale.ScaleWithColor(c.ToRGBA())
	text.Draw(b.Screen, s, face, op)
}

// Clear fills the screen.
func (b *ScreenBackend) Clear(c sw.Color) {
	b.Screen.Fill(c.ToRGBA())
}

// ViewportSize returns the screen size in pixels.
func (b *ScreenBackend) ViewportSize() (w, h float64) {
	r := b.Screen.Bounds()
	return float64(r.Dx()), float64(r.Dy())
}
