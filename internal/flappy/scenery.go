package flappy

import (
	"math"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
)

// Background is the static full-window backdrop.
type Background struct {
	Entity
}

// NewBackground places the backdrop at the origin.
func NewBackground(sizes SpriteSizer) *Background {
	return &Background{Entity: newEntity(sizes, assets.SpriteBackground, 0, 0)}
}

// Floor is the scrolling base below the viewport.
type Floor struct {
	Entity
	VelX float64

	// wrap is how far the sprite extends past the window; scrolling loops over it.
	wrap float64
}

// NewFloor places the floor at the bottom of the viewport.
func NewFloor(cfg config.GameConfig, sizes SpriteSizer) *Floor {
	f := &Floor{
		Entity: newEntity(sizes, assets.SpriteFloor, 0, cfg.Window.ViewportHeight()),
		VelX:   cfg.Floor.VelX,
	}
	f.wrap = float64(f.W - cfg.Window.Width)
	return f
}

// Tick scrolls the floor left, wrapping once it has moved by the extra width.
func (f *Floor) Tick() {
	if f.wrap <= 0 {
		return
	}
	f.X = -math.Mod(-f.X+f.VelX, f.wrap)
}

// Stop freezes the floor.
func (f *Floor) Stop() {
	f.VelX = 0
}
