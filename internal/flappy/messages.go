package flappy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
)

// WelcomeMessage is the splash screen overlay.
type WelcomeMessage struct {
	Entity
}

// NewWelcomeMessage centres the overlay horizontally.
func NewWelcomeMessage(cfg config.GameConfig, sizes SpriteSizer) *WelcomeMessage {
	w, _ := sizes.Size(assets.SpriteWelcome)
	x := float64((cfg.Window.Width - w) / 2)
	y := float64(int(float64(cfg.Window.Height) * cfg.Messages.WelcomeYRatio))
	return &WelcomeMessage{Entity: newEntity(sizes, assets.SpriteWelcome, x, y)}
}

// GameOver is the banner shown after a crash. It drops in from above the
// window and fades in while it falls.
type GameOver struct {
	Entity

	restY   float64
	alpha   float64
	dt      float32
	drop    *gween.Tween
	fade    *gween.Tween
	started bool
	play    soundFunc
}

// NewGameOver creates the banner; it stays hidden until its first Tick.
// tick is the length of one frame in seconds.
func NewGameOver(cfg config.GameConfig, sizes SpriteSizer, tick float64, play soundFunc) *GameOver {
	w, h := sizes.Size(assets.SpriteGameOver)
	x := float64((cfg.Window.Width - w) / 2)
	restY := float64(int(float64(cfg.Window.Height) * cfg.Messages.GameOverYRatio))

	g := &GameOver{
		Entity: newEntity(sizes, assets.SpriteGameOver, x, restY),
		restY:  restY,
		alpha:  1,
		dt:     float32(tick),
		play:   play,
	}
	if d := float32(cfg.Messages.GameOverDrop); d > 0 {
		g.Y = float64(-h)
		g.alpha = 0
		g.drop = gween.New(float32(-h), float32(restY), d, ease.OutBounce)
		g.fade = gween.New(0, 1, d/2, ease.Linear)
	}
	return g
}

// Tick advances the drop-in animation by one frame.
func (g *GameOver) Tick() {
	if !g.started {
		g.started = true
		if g.play != nil {
			g.play(assets.SoundSwoosh)
		}
	}
	if g.drop != nil {
		y, done := g.drop.Update(g.dt)
		g.Y = float64(y)
		if done {
			g.Y = g.restY
			g.drop = nil
		}
	}
	if g.fade != nil {
		a, done := g.fade.Update(g.dt)
		g.alpha = float64(a)
		if done {
			g.alpha = 1
			g.fade = nil
		}
	}
}

// Visible reports whether the banner has started showing.
func (g *GameOver) Visible() bool { return g.started }

func (g *GameOver) spriteWithAlpha() Sprite {
	s := g.sprite()
	s.Alpha = g.alpha
	return s
}
