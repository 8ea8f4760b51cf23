package flappy

import (
	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
)

// Sprite is one entry of the draw list.
type Sprite struct {
	ID   assets.SpriteID
	X, Y float64
	// Rotation in degrees, counter-clockwise about the sprite centre.
	Rotation float64
	// Alpha in [0, 1].
	Alpha float64
}

// HitboxKind tells debug overlays how to colour a hitbox.
type HitboxKind int

const (
	HitboxPlayer HitboxKind = iota
	HitboxPipe
	HitboxFloor
)

// Hitbox is a collision rectangle exposed for the debug overlay.
type Hitbox struct {
	Rect core.Rect
	Kind HitboxKind
}

// Scene is everything a frontend needs to present one frame.
type Scene struct {
	Width, Height int
	// Sprites in paint order, back to front.
	Sprites  []Sprite
	Hitboxes []Hitbox
	Debug    bool
	State    State
}

// Scene builds the draw list for the current frame. Scenery and pipes come
// first, then the floor, the score and the bird, then any overlay.
func (g *Game) Scene() Scene {
	sc := Scene{
		Width:  g.cfg.Window.Width,
		Height: g.cfg.Window.Height,
		Debug:  g.debug,
		State:  g.State(),
	}

	sc.Sprites = append(sc.Sprites, g.background.sprite())
	if g.phase != PhaseSplash {
		for i := range g.pipes.Upper {
			sc.Sprites = append(sc.Sprites, g.pipes.Upper[i].sprite(), g.pipes.Lower[i].sprite())
		}
	}
	sc.Sprites = append(sc.Sprites, g.floor.sprite())
	if g.phase != PhaseSplash {
		sc.Sprites = append(sc.Sprites, g.score.Sprites()...)
	}
	sc.Sprites = append(sc.Sprites, g.player.spriteWithRotation())

	switch g.phase {
	case PhaseSplash:
		sc.Sprites = append(sc.Sprites, g.welcome.sprite())
	case PhaseGameOver:
		if g.gameOver.Visible() {
			sc.Sprites = append(sc.Sprites, g.gameOver.spriteWithAlpha())
		}
	}

	if g.debug {
		sc.Hitboxes = g.hitboxes()
	}
	return sc
}

func (g *Game) hitboxes() []Hitbox {
	out := []Hitbox{
		{Rect: g.player.Rect(), Kind: HitboxPlayer},
		{Rect: g.floor.Rect(), Kind: HitboxFloor},
	}
	if g.phase == PhaseSplash {
		return out
	}
	for _, p := range g.pipes.Upper {
		out = append(out, Hitbox{Rect: p.Rect(), Kind: HitboxPipe})
	}
	for _, p := range g.pipes.Lower {
		out = append(out, Hitbox{Rect: p.Rect(), Kind: HitboxPipe})
	}
	return out
}
