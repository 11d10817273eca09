package config

import (
	_ "embed"
)

//go:embed defaults/swoop.yaml
var defaultSwoopYAML []byte

// Default returns the default Swoop configuration.
// Kept in sync with defaults/swoop.yaml, which is the preferred source;
// this is the fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:        400,
			Height:       700,
			GroundMargin: 50,
		},
		Physics: Physics{
			Gravity:       1300.0,
			JumpVelocity:  -420.0,
			MaxFallSpeed:  650.0,
			MaxStep:       1.0 / 30.0,
			MaxFrameDelta: 0.25,
		},
		Player: Player{
			XRatio:          0.15,
			YRatio:          0.40,
			VisualSize:      77,
			CollisionRatio:  0.5,
			ProximityBuffer: 20,
		},
		Obstacles: Obstacles{
			Width:      75,
			MinSpacing: 120,
			GapMargin:  30,
		},
		Lives: Lives{
			MaxLives:         3,
			BoostedMaxLives:  6,
			MaxContinues:     3,
			InvulnerableSecs: 2.0,
		},
		Scoring: Scoring{
			PassAward: 1,
		},
		Phases: Phases{
			Easy:   PhaseParams{GapSize: 320, Speed: 40, SpawnInterval: 4.5, Tag: "meadow"},
			Medium: PhaseParams{GapSize: 280, Speed: 46, SpawnInterval: 4.2, Tag: "forest"},
			Hard:   PhaseParams{GapSize: 240, Speed: 52, SpawnInterval: 3.9, Tag: "canyon"},
			Expert: PhaseParams{GapSize: 200, Speed: 58, SpawnInterval: 3.6, Tag: "storm"},
		},
	}
}
