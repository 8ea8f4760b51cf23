package desktop

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/registry"
)

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q frontend should register itself", ID)
	}
	f, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if f.ID() != ID {
		t.Errorf("ID() = %q", f.ID())
	}
}

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name string
		in   inputState
		want []core.Action
	}{
		{"nothing", inputState{}, nil},
		{"space", inputState{keys: []ebiten.Key{ebiten.KeySpace}}, []core.Action{core.ActionTap}},
		{"up", inputState{keys: []ebiten.Key{ebiten.KeyUp}}, []core.Action{core.ActionTap}},
		{"escape", inputState{keys: []ebiten.Key{ebiten.KeyEscape}}, []core.Action{core.ActionQuit}},
		{"f3", inputState{keys: []ebiten.Key{ebiten.KeyF3}}, []core.Action{core.ActionDebug}},
		{"unmapped key", inputState{keys: []ebiten.Key{ebiten.KeyA}}, nil},
		{"click", inputState{mouseLeft: true}, []core.Action{core.ActionTap}},
		{"touch", inputState{newTouches: 2}, []core.Action{core.ActionTap}},
		{"window closing", inputState{closing: true}, []core.Action{core.ActionQuit}},
		{
			"space and escape",
			inputState{keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEscape}},
			[]core.Action{core.ActionTap, core.ActionQuit},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.in.frame()
			for _, a := range tc.want {
				if !f.Has(a) {
					t.Errorf("expected %s", a)
				}
			}
			if len(tc.want) == 0 && len(f.Actions) != 0 {
				t.Errorf("expected no actions, got %v", f.Actions)
			}
		})
	}
}

func TestSpriteGeoMTranslates(t *testing.T) {
	m := spriteGeoM(flappy.Sprite{X: 57, Y: 244}, 34, 24)
	x, y := m.Apply(0, 0)
	if x != 57 || y != 244 {
		t.Errorf("origin maps to (%v, %v), expected (57, 244)", x, y)
	}
}

func TestSpriteGeoMRotatesAboutCentre(t *testing.T) {
	m := spriteGeoM(flappy.Sprite{X: 10, Y: 20, Rotation: 90}, 34, 24)

	// The centre stays put.
	cx, cy := m.Apply(17, 12)
	if math.Abs(cx-27) > 1e-9 || math.Abs(cy-32) > 1e-9 {
		t.Errorf("centre moved to (%v, %v)", cx, cy)
	}

	// A counter-clockwise quarter turn brings the right edge to the top.
	rx, ry := m.Apply(34, 12)
	if math.Abs(rx-27) > 1e-9 || math.Abs(ry-15) > 1e-9 {
		t.Errorf("right edge centre maps to (%v, %v), expected (27, 15)", rx, ry)
	}
}

func TestHitboxColors(t *testing.T) {
	if hitboxColor(flappy.HitboxPlayer) == hitboxColor(flappy.HitboxPipe) {
		t.Error("player and pipe hitboxes should differ")
	}
	if c := hitboxColor(flappy.HitboxKind(99)); c.A != 0xff {
		t.Error("unknown kinds should still be visible")
	}
}

func TestSilentSoundBoard(t *testing.T) {
	b, err := newSoundBoard(nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Playing on a silent board is a no-op.
	b.Play(assets.SoundWing)
}
