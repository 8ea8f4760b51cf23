package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
)

// overrides are the command line values that take precedence over the config file.
type overrides struct {
	FPS   int
	Debug bool
	Mute  bool
}

func flagOverrides() overrides {
	return overrides{FPS: flagFPS, Debug: flagDebug, Mute: flagMute}
}

// apply writes the set overrides into cfg.
func (o overrides) apply(cfg *config.GameConfig) {
	if o.FPS > 0 {
		cfg.FPS = o.FPS
	}
	if o.Debug {
		cfg.Debug = true
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}
}

// loadConfig loads the config file and applies the command line flags.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	flagOverrides().apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig derives the per-run settings. A zero seed is replaced with one
// taken from the clock so every frontend sees the same value.
func runtimeConfig(cfg config.GameConfig, seed int64) core.RuntimeConfig {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		FPS:    cfg.FPS,
		Seed:   seed,
		Debug:  cfg.Debug,
	}
}

// buildOptions prepares everything a frontend needs: config, artwork with a
// theme picked for this process, and synthesized sounds unless muted.
func buildOptions() (registry.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Options{}, err
	}
	rc := runtimeConfig(cfg, flagSeed)

	images := assets.NewImages()
	theme := images.Randomize(rand.New(rand.NewSource(rc.Seed)), cfg.Theme)

	var sounds *assets.Sounds
	if cfg.Audio.Enabled {
		sounds, err = assets.NewSounds(cfg.Audio.SampleRate)
		if err != nil {
			return registry.Options{}, fmt.Errorf("sounds: %w", err)
		}
	}

	logger.Debug("options ready",
		"seed", rc.Seed,
		"fps", rc.FPS,
		"player", theme.Player,
		"background", theme.Background,
		"pipe", theme.Pipe,
		"audio", sounds != nil,
	)

	return registry.Options{
		Config:  cfg,
		Runtime: rc,
		Images:  images,
		Sounds:  sounds,
		Logger:  logger,
	}, nil
}
