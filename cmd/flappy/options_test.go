package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

func TestOverridesApply(t *testing.T) {
	cfg := config.Default()
	overrides{}.apply(&cfg)
	if cfg.FPS != config.Default().FPS || cfg.Debug || !cfg.Audio.Enabled {
		t.Errorf("empty overrides changed config: fps=%d debug=%v audio=%v", cfg.FPS, cfg.Debug, cfg.Audio.Enabled)
	}

	overrides{FPS: 60, Debug: true, Mute: true}.apply(&cfg)
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if !cfg.Debug {
		t.Error("Debug not set")
	}
	if cfg.Audio.Enabled {
		t.Error("audio still enabled")
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true

	rc := runtimeConfig(cfg, 42)
	if rc.Seed != 42 || rc.FPS != cfg.FPS || !rc.Debug {
		t.Errorf("runtimeConfig = %+v", rc)
	}
	if rc.Width != cfg.Window.Width || rc.Height != cfg.Window.Height {
		t.Errorf("size = %dx%d, want %dx%d", rc.Width, rc.Height, cfg.Window.Width, cfg.Window.Height)
	}

	if rc := runtimeConfig(cfg, 0); rc.Seed == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestListShowsFrontends(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)

	out := buf.String()
	for _, id := range []string{"desktop", "terminal"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestRunFrontendUnknown(t *testing.T) {
	err := runFrontend(playCmd, "no-such-frontend")
	if err == nil || !strings.Contains(err.Error(), "flappy list") {
		t.Errorf("err = %v, want hint to run 'flappy list'", err)
	}
}
