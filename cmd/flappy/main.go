// flappy is a Flappy Bird clone that runs in a desktop window or a terminal.
//
// Usage:
//
//	flappy                   - Play in a desktop window
//	flappy play [frontend]   - Play with the given frontend (default: desktop)
//	flappy term              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy list              - List available frontends
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate (default: from config, 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--debug             - Start with the hitbox overlay
//	--mute              - Disable sound
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDebug    bool
	flagMute     bool
	flagLogLevel string
)

// logger writes to stderr so it never mixes with a terminal frontend's output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to keep the bird between the pipes",
	Long: `Flappy is a Flappy Bird clone. Tap (space, up, click or touch) to flap,
fly through the gaps between the pipes and score a point for each pair passed.

Available commands:
  play     - Play with a frontend (desktop by default)
  term     - Play in the current terminal
  serve    - Start SSH server for remote play
  list     - Show all available frontends
  config   - Print the effective configuration

Examples:
  flappy
  flappy play terminal
  flappy --seed 42 --debug
  flappy serve --ssh :2222
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the hitbox overlay enabled")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}
