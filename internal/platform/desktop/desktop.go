// Package desktop runs the game in a native window using Ebitengine.
// Ebitengine's fixed TPS is the game clock; each Update is one Step.
package desktop

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/registry"
)

// ID is the registry name of this frontend.
const ID = "desktop"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend is the Ebitengine window frontend.
type Frontend struct{}

// ID returns the registry name.
func (f *Frontend) ID() string { return ID }

// Title returns a description for listings.
func (f *Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until the player quits, the window is
// closed or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	if opts.Images == nil {
		return errors.New("desktop: no images")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := flappy.New(opts.Config, opts.Images)
	game.Reset(opts.Runtime)

	sounds, err := newSoundBoard(opts.Sounds, opts.Config.Audio.Volume)
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}

	a := newApp(ctx, game, opts, sounds)

	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Runtime.FPS)
	ebiten.SetWindowClosingHandled(true)

	opts.Logger.Info("window opened",
		"size", fmt.Sprintf("%dx%d", opts.Config.Window.Width, opts.Config.Window.Height),
		"tps", opts.Runtime.FPS,
		"theme", opts.Images.Theme(),
	)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
