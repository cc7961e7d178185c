package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceCache hands out text faces by integer pixel size. Glyph rasterization
// and caching per (glyph, size) happen inside text/v2; the cache only keeps
// one face value per size so repeated sizes share glyph cache entries.
type FaceCache struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewFaceCache parses a TrueType or OpenType font.
func NewFaceCache(fontData []byte) (*FaceCache, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &FaceCache{source: src, faces: make(map[int]*text.GoTextFace)}, nil
}

// DefaultFaceCache returns a cache for the Go Regular font.
func DefaultFaceCache() (*FaceCache, error) {
	return NewFaceCache(goregular.TTF)
}

// Face returns the face for pixelSize, creating it on first use.
func (c *FaceCache) Face(pixelSize int) *text.GoTextFace {
	if f, ok := c.faces[pixelSize]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: float64(pixelSize)}
	c.faces[pixelSize] = f
	return f
}

// Advance returns the horizontal advance of s at pixelSize.
func (c *FaceCache) Advance(s string, pixelSize int) float64 {
	return text.Advance(s, c.Face(pixelSize))
}

// Len returns the number of cached sizes.
func (c *FaceCache) Len() int {
	return len(c.faces)
}
