package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
}

func TestViewportHeight(t *testing.T) {
	w := Default().Window
	if got := w.ViewportHeight(); got < 404.47 || got > 404.49 {
		t.Errorf("ViewportHeight() = %f, expected 404.48", got)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("fps: 60\npipes:\n  gap: 100\ntheme:\n  player: blue\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.FPS)
	}
	if cfg.Pipes.Gap != 100 {
		t.Errorf("Pipes.Gap = %f, expected 100", cfg.Pipes.Gap)
	}
	if cfg.Pipes.VelX != -5 {
		t.Errorf("Pipes.VelX should keep default -5, got %f", cfg.Pipes.VelX)
	}
	if cfg.Theme.Player != "blue" {
		t.Errorf("Theme.Player = %q, expected blue", cfg.Theme.Player)
	}
	if cfg.Window.Width != 288 {
		t.Errorf("Window.Width should keep default 288, got %d", cfg.Window.Width)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero fps", func(c *GameConfig) { c.FPS = 0 }},
		{"negative width", func(c *GameConfig) { c.Window.Width = -1 }},
		{"viewport ratio above one", func(c *GameConfig) { c.Window.ViewportRatio = 1.5 }},
		{"gap larger than band", func(c *GameConfig) { c.Pipes.Gap = 400 }},
		{"gap band below the floor", func(c *GameConfig) { c.Pipes.GapBandStart, c.Pipes.GapBandHeight = 0.5, 0.6 }},
		{"negative gap band start", func(c *GameConfig) { c.Pipes.GapBandStart = -0.1 }},
		{"pipes standing still", func(c *GameConfig) { c.Pipes.VelX = 0 }},
		{"pipes moving right", func(c *GameConfig) { c.Pipes.VelX = 5 }},
		{"floor scrolling backwards", func(c *GameConfig) { c.Floor.VelX = -4 }},
		{"empty animation", func(c *GameConfig) { c.Player.AnimationCycle = nil }},
		{"animation frame out of range", func(c *GameConfig) { c.Player.AnimationCycle = []int{0, 3} }},
		{"unknown player colour", func(c *GameConfig) { c.Theme.Player = "purple" }},
		{"unknown background", func(c *GameConfig) { c.Theme.Background = "dusk" }},
		{"volume too loud", func(c *GameConfig) { c.Audio.Volume = 2 }},
		{"no sample rate", func(c *GameConfig) { c.Audio.SampleRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateAllowsGapBandToFloor(t *testing.T) {
	cfg := Default()
	cfg.Pipes.GapBandStart, cfg.Pipes.GapBandHeight = 0.25, 0.75
	if err := cfg.Validate(); err != nil {
		t.Errorf("band ending at the floor should be valid: %v", err)
	}

	cfg.Floor.VelX = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("still floor should be valid: %v", err)
	}
}

func TestValidateAllowsMutedZeroSampleRate(t *testing.T) {
	cfg := Default()
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled audio should not need a sample rate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("floor:\n  vel_x: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Floor.VelX != 6 {
		t.Errorf("Floor.VelX = %f, expected 6", cfg.Floor.VelX)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("fps: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("fps: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid file should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Load(\"\") with no files should return the defaults")
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LocalPath), []byte("debug: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("local configs/flappy.yaml should be picked up")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Theme.Background = "night"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshalled config failed: %v", err)
	}
	if back.Theme.Background != "night" {
		t.Errorf("Theme.Background = %q after round trip", back.Theme.Background)
	}
}
