package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/flappy"
)

// spriteCache uploads each generated image to the GPU once.
type spriteCache struct {
	images map[*image.RGBA]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{images: make(map[*image.RGBA]*ebiten.Image)}
}

// Get returns the GPU copy of src.
func (c *spriteCache) Get(src *image.RGBA) *ebiten.Image {
	if img, ok := c.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	c.images[src] = img
	return img
}

// spriteGeoM positions a w x h sprite, rotating it about its centre.
// Sprite rotation is counter-clockwise; Ebitengine rotates clockwise on screen.
func spriteGeoM(s flappy.Sprite, w, h int) ebiten.GeoM {
	var m ebiten.GeoM
	if s.Rotation != 0 {
		m.Translate(-float64(w)/2, -float64(h)/2)
		m.Rotate(-s.Rotation * math.Pi / 180)
		m.Translate(float64(w)/2, float64(h)/2)
	}
	m.Translate(s.X, s.Y)
	return m
}

var hitboxColors = map[flappy.HitboxKind]color.RGBA{
	flappy.HitboxPlayer: {R: 0xff, G: 0x20, B: 0x20, A: 0xff},
	flappy.HitboxPipe:   {R: 0x20, G: 0x40, B: 0xff, A: 0xff},
	flappy.HitboxFloor:  {R: 0xff, G: 0xd0, B: 0x20, A: 0xff},
}

func hitboxColor(kind flappy.HitboxKind) color.RGBA {
	if c, ok := hitboxColors[kind]; ok {
		return c
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func drawHitboxes(screen *ebiten.Image, boxes []flappy.Hitbox) {
	for _, b := range boxes {
		r := b.Rect
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, hitboxColor(b.Kind), false)
	}
}
