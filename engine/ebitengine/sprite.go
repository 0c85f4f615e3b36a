package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is one drawable scene instance. Position and size are in screen
// pixels; Layer groups sprites for hit tests and draw order.
type Sprite struct {
	ID    string
	Image *ebiten.Image
	X, Y  float64
	W, H  int
	Layer string
}

// Identifier ties the sprite back to its world entity.
func (s *Sprite) Identifier() string { return s.ID }

// contains reports whether the pixel position hits the sprite. With an
// image present, transparent pixels below threshold do not count, so
// clicks land on the silhouette rather than the bounding box.
func (s *Sprite) contains(x, y int, threshold int) bool {
	lx, ly := x-int(s.X), y-int(s.Y)
	if lx < 0 || ly < 0 || lx >= s.W || ly >= s.H {
		return false
	}
	if s.Image == nil {
		return true
	}
	_, _, _, a := s.Image.At(lx, ly).RGBA()
	return int(a>>8) >= threshold
}

// outlineColor converts outline RGB to an ebiten color.
func outlineColor(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
