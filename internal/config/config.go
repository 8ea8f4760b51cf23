// Package config provides YAML-based game configuration loading and
// validation for Flappy.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// GameConfig contains all tunable values of the game.
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	FPS      int            `yaml:"fps"`
	Player   PlayerConfig   `yaml:"player"`
	Pipes    PipesConfig    `yaml:"pipes"`
	Floor    FloorConfig    `yaml:"floor"`
	Score    ScoreConfig    `yaml:"score"`
	Messages MessagesConfig `yaml:"messages"`
	Theme    ThemeConfig    `yaml:"theme"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    bool           `yaml:"debug"`
}

// WindowConfig defines the logical screen.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// ViewportRatio is the share of the height above the floor.
	ViewportRatio float64 `yaml:"viewport_ratio"`
}

// ViewportHeight returns the playable height above the floor in pixels.
func (w WindowConfig) ViewportHeight() float64 {
	return float64(w.Height) * w.ViewportRatio
}

// MotionConfig holds the vertical motion and rotation values of one player mode.
type MotionConfig struct {
	VelY    float64 `yaml:"vel_y"`
	MaxVelY float64 `yaml:"max_vel_y"`
	MinVelY float64 `yaml:"min_vel_y"`
	AccY    float64 `yaml:"acc_y"`
	Rot     float64 `yaml:"rot"`
	VelRot  float64 `yaml:"vel_rot"`
	RotMin  float64 `yaml:"rot_min"`
	RotMax  float64 `yaml:"rot_max"`
	FlapAcc float64 `yaml:"flap_acc"`
}

// CrashConfig overrides part of the normal motion once the player has crashed.
type CrashConfig struct {
	VelY    float64 `yaml:"vel_y"`
	MaxVelY float64 `yaml:"max_vel_y"`
	AccY    float64 `yaml:"acc_y"`
	VelRot  float64 `yaml:"vel_rot"`
}

// PlayerConfig defines the bird.
type PlayerConfig struct {
	XRatio          float64      `yaml:"x_ratio"`
	AnimationPeriod int          `yaml:"animation_period"`
	AnimationCycle  []int        `yaml:"animation_cycle"`
	SHM             MotionConfig `yaml:"shm"`
	Normal          MotionConfig `yaml:"normal"`
	Crash           CrashConfig  `yaml:"crash"`
}

// PipesConfig defines obstacle spawning and movement.
// Offsets and distances are expressed in pipe widths.
type PipesConfig struct {
	Gap           float64 `yaml:"gap"`
	VelX          float64 `yaml:"vel_x"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
	FirstOffset   float64 `yaml:"first_offset"`
	SecondOffset  float64 `yaml:"second_offset"`
	SpawnDistance float64 `yaml:"spawn_distance"`
	GapBandStart  float64 `yaml:"gap_band_start"`
	GapBandHeight float64 `yaml:"gap_band_height"`
}

// FloorConfig defines the scrolling base.
type FloorConfig struct {
	VelX float64 `yaml:"vel_x"`
}

// ScoreConfig defines the score display.
type ScoreConfig struct {
	YRatio float64 `yaml:"y_ratio"`
}

// MessagesConfig defines the welcome and game over overlays.
type MessagesConfig struct {
	WelcomeYRatio  float64 `yaml:"welcome_y_ratio"`
	GameOverYRatio float64 `yaml:"game_over_y_ratio"`
	// GameOverDrop is how long the game over banner takes to drop in, in seconds.
	GameOverDrop float64 `yaml:"game_over_drop"`
}

// ThemeConfig pins sprite colours. Empty values are picked at random on start-up.
type ThemeConfig struct {
	Player     string `yaml:"player"`
	Background string `yaml:"background"`
	Pipe       string `yaml:"pipe"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Known theme names.
var (
	PlayerColors    = []string{"red", "blue", "yellow"}
	BackgroundKinds = []string{"day", "night"}
	PipeColors      = []string{"green", "red"}
)

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.ViewportRatio <= 0 || c.Window.ViewportRatio > 1:
		return fmt.Errorf("%w: viewport_ratio %.2f not in (0, 1]", ErrInvalid, c.Window.ViewportRatio)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Player.AnimationPeriod <= 0:
		return fmt.Errorf("%w: animation_period %d", ErrInvalid, c.Player.AnimationPeriod)
	case len(c.Player.AnimationCycle) == 0:
		return fmt.Errorf("%w: animation_cycle is empty", ErrInvalid)
	case c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipe gap %.1f", ErrInvalid, c.Pipes.Gap)
	case c.Pipes.GapBandStart < 0 || c.Pipes.GapBandHeight <= 0 || c.Pipes.GapBandStart+c.Pipes.GapBandHeight > 1:
		return fmt.Errorf("%w: gap band %.2f+%.2f not inside the viewport", ErrInvalid, c.Pipes.GapBandStart, c.Pipes.GapBandHeight)
	case c.Pipes.Gap >= c.Window.ViewportHeight()*c.Pipes.GapBandHeight:
		return fmt.Errorf("%w: pipe gap %.1f does not fit the gap band", ErrInvalid, c.Pipes.Gap)
	case c.Pipes.VelX >= 0:
		return fmt.Errorf("%w: pipes vel_x %.1f must be negative", ErrInvalid, c.Pipes.VelX)
	case c.Floor.VelX < 0:
		return fmt.Errorf("%w: floor vel_x %.1f is negative", ErrInvalid, c.Floor.VelX)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %.2f not in [0, 1]", ErrInvalid, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}

	for _, frame := range c.Player.AnimationCycle {
		if frame < 0 || frame > 2 {
			return fmt.Errorf("%w: animation frame %d not in [0, 2]", ErrInvalid, frame)
		}
	}
	if err := checkName("theme.player", c.Theme.Player, PlayerColors); err != nil {
		return err
	}
	if err := checkName("theme.background", c.Theme.Background, BackgroundKinds); err != nil {
		return err
	}
	return checkName("theme.pipe", c.Theme.Pipe, PipeColors)
}

// checkName accepts an empty value or one of the known names.
func checkName(field, value string, known []string) error {
	if value == "" {
		return nil
	}
	for _, k := range known {
		if value == k {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (want one of %v)", ErrInvalid, field, value, known)
}
