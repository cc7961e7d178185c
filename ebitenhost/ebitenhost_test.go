package ebitenhost

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	sw "github.com/phanxgames/smallworld"
)

func TestGeoMMatchesTransform(t *testing.T) {
	tr := sw.IdentityTransform.Translate(30, 40).Scale(2, 0.5)
	g := geoM(tr)
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {-7, 12.5}} {
		wantX, wantY := tr.Apply(p[0], p[1])
		gotX, gotY := g.Apply(p[0], p[1])
		if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
			t.Errorf("Apply(%v) = (%v, %v), want (%v, %v)", p, gotX, gotY, wantX, wantY)
		}
	}
}

func TestToMouseButton(t *testing.T) {
	tests := []struct {
		in   ebiten.MouseButton
		want sw.MouseButton
		ok   bool
	}{
		{ebiten.MouseButtonLeft, sw.MouseButtonLeft, true},
		{ebiten.MouseButtonRight, sw.MouseButtonRight, true},
		{ebiten.MouseButtonMiddle, sw.MouseButtonMiddle, true},
		{ebiten.MouseButton3, 0, false},
	}
	for _, tt := range tests {
		got, ok := toMouseButton(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("toMouseButton(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAppendMove(t *testing.T) {
	var (
		last    image.Point
		hasLast bool
		events  []sw.Event
	)
	events = appendMove(events, &last, &hasLast, image.Pt(0, 0))
	if len(events) != 1 {
		t.Fatalf("first position should emit a move, got %d events", len(events))
	}
	events = appendMove(events, &last, &hasLast, image.Pt(0, 0))
	if len(events) != 1 {
		t.Errorf("unchanged position emitted a move")
	}
	events = appendMove(events, &last, &hasLast, image.Pt(4, 9))
	if len(events) != 2 || events[1] != sw.PointerMoved(4, 9) {
		t.Errorf("events = %+v", events)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":                "unlabeled",
		"  ":              "unlabeled",
		"holding":         "holding",
		"place farm/1":    "place_farm_1",
		"v1.2-final":      "v1.2-final",
		"../../etc/x":     ".._.._etc_x",
		"deck:slot=3 ok?": "deck_slot_3_ok_",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG file")
	}
}

func TestFaceCache(t *testing.T) {
	faces, err := DefaultFaceCache()
	if err != nil {
		t.Fatal(err)
	}
	a := faces.Face(12)
	if faces.Face(12) != a {
		t.Error("same size should return the cached face")
	}
	faces.Face(24)
	if faces.Len() != 2 {
		t.Errorf("Len = %d, want 2", faces.Len())
	}
	if small, big := faces.Advance("Farm", 12), faces.Advance("Farm", 24); !(small > 0 && big > small) {
		t.Errorf("Advance = %v at 12px, %v at 24px", small, big)
	}
}

func TestNewFaceCacheInvalidFont(t *testing.T) {
	if _, err := NewFaceCache([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
