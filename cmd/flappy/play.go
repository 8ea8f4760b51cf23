package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/desktop"
	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start playing with the specified frontend (default: desktop).

Controls:
  Space/Up/Click/Touch - Flap, start a round, restart after game over
  Esc/Q                - Quit
  F3/D                 - Toggle hitboxes

Examples:
  flappy play
  flappy play terminal
  flappy play desktop --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := desktop.ID
	if len(args) > 0 {
		id = args[0]
	}
	return runFrontend(cmd, id)
}

// termCmd is a shortcut for "play terminal".
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the current terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFrontend(cmd, tui.ID)
	},
}

func runFrontend(cmd *cobra.Command, id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q; run 'flappy list' to see available frontends", id)
	}
	fe, err := registry.Create(id)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	if err := fe.Run(cmd.Context(), opts); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}
