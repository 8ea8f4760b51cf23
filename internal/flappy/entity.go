package flappy

import (
	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
)

// SpriteSizer reports sprite dimensions. *assets.Images satisfies it; the game
// only needs sizes, never pixels.
type SpriteSizer interface {
	Size(id assets.SpriteID) (w, h int)
}

// soundFunc receives the sound effects entities trigger during a tick.
type soundFunc func(assets.Sound)

// Entity is a positioned sprite. Positions are floats; the hitbox truncates
// them to whole pixels.
type Entity struct {
	X, Y   float64
	W, H   int
	Sprite assets.SpriteID
}

func newEntity(sizes SpriteSizer, id assets.SpriteID, x, y float64) Entity {
	w, h := sizes.Size(id)
	return Entity{X: x, Y: y, W: w, H: h, Sprite: id}
}

// Rect returns the entity's hitbox.
func (e Entity) Rect() core.Rect {
	return core.RectF(e.X, e.Y, float64(e.W), float64(e.H))
}

// CX returns the horizontal centre.
func (e Entity) CX() float64 {
	return e.X + float64(e.W)/2
}


// Collide reports whether the two hitboxes overlap.
func (e Entity) Collide(other Entity) bool {
	return e.Rect().Intersects(other.Rect())
}

func (e Entity) sprite() Sprite {
	return Sprite{ID: e.Sprite, X: e.X, Y: e.Y, Alpha: 1}
}
