package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is the fallback when the embedded file
// cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Title:         "Flappy Bird",
			Width:         288,
			Height:        512,
			ViewportRatio: 0.79,
		},
		FPS: 30,
		Player: PlayerConfig{
			XRatio:          0.2,
			AnimationPeriod: 5,
			AnimationCycle:  []int{0, 1, 2, 1},
			SHM: MotionConfig{
				VelY:    1,
				MaxVelY: 4,
				MinVelY: -4,
				AccY:    0.5,
			},
			Normal: MotionConfig{
				VelY:    -9,
				MaxVelY: 10,
				MinVelY: -8,
				AccY:    1,
				Rot:     80,
				VelRot:  -3,
				RotMin:  -90,
				RotMax:  20,
				FlapAcc: -9,
			},
			Crash: CrashConfig{
				VelY:    7,
				MaxVelY: 15,
				AccY:    2,
				VelRot:  -8,
			},
		},
		Pipes: PipesConfig{
			Gap:           120,
			VelX:          -5,
			SpawnOffset:   10,
			FirstOffset:   3,
			SecondOffset:  3.5,
			SpawnDistance: 2.5,
			GapBandStart:  0.2,
			GapBandHeight: 0.6,
		},
		Floor: FloorConfig{
			VelX: 4,
		},
		Score: ScoreConfig{
			YRatio: 0.1,
		},
		Messages: MessagesConfig{
			WelcomeYRatio:  0.12,
			GameOverYRatio: 0.2,
			GameOverDrop:   0.6,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}
