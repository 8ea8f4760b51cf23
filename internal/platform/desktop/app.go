package desktop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/registry"
)

// app implements ebiten.Game around a flappy.Game.
type app struct {
	ctx     context.Context
	game    *flappy.Game
	images  *assets.Images
	sprites *spriteCache
	sounds  *soundBoard
	logger  *log.Logger

	width, height int
	phase         flappy.Phase
	touches       []ebiten.TouchID
}

func newApp(ctx context.Context, game *flappy.Game, opts registry.Options, sounds *soundBoard) *app {
	return &app{
		ctx:     ctx,
		game:    game,
		images:  opts.Images,
		sprites: newSpriteCache(),
		sounds:  sounds,
		logger:  opts.Logger,
		width:   opts.Config.Window.Width,
		height:  opts.Config.Window.Height,
		phase:   game.Phase(),
	}
}

// Update advances the game by one tick.
func (a *app) Update() error {
	if err := a.ctx.Err(); err != nil {
		a.logger.Info("shutting down", "reason", err)
		return ebiten.Termination
	}

	var in inputState
	in, a.touches = readInput(a.touches)
	res := a.game.Step(in.frame())
	if res.Quit {
		a.logger.Info("quit", "best", res.State.Best, "rounds", res.State.Round)
		return ebiten.Termination
	}

	for _, snd := range res.Sounds {
		a.sounds.Play(snd)
		a.logger.Debug("sound", "name", snd)
	}
	a.trackPhase(res.State)
	return nil
}

func (a *app) trackPhase(st flappy.State) {
	if st.Phase == a.phase {
		return
	}
	a.phase = st.Phase
	switch st.Phase {
	case flappy.PhasePlay:
		a.logger.Debug("round started", "round", st.Round)
	case flappy.PhaseGameOver:
		a.logger.Info("round over", "round", st.Round, "score", st.Score, "best", st.Best, "crash", st.Crash)
	case flappy.PhaseSplash:
		a.logger.Debug("restart", "round", st.Round)
	}
}

// Draw paints the scene.
func (a *app) Draw(screen *ebiten.Image) {
	sc := a.game.Scene()
	for _, s := range sc.Sprites {
		a.drawSprite(screen, s)
	}
	if sc.Debug {
		drawHitboxes(screen, sc.Hitboxes)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f\n%s %s\nscore %d best %d",
			ebiten.ActualTPS(), sc.State.Phase, a.game.Player().Mode(), sc.State.Score, sc.State.Best))
	}
}

// Layout keeps the logical screen fixed; Ebitengine scales it to the window.
func (a *app) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

func (a *app) drawSprite(screen *ebiten.Image, s flappy.Sprite) {
	src := a.images.Image(s.ID)
	if src == nil {
		return
	}
	img := a.sprites.Get(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(s, w, h)
	if s.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
	}
	screen.DrawImage(img, op)
}
