package config

import (
	_ "embed"
)

//go:embed defaults/birdsplanes.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/birdsplanes.yaml and is used when even that fails to parse.
func Default() Config {
	return Config{
		NumLanes:                    5,
		Lives:                       3,
		PointsPerCross:              100,
		SpawnRate:                   1.0,
		PlaneSpeedRange:             []float64{150, 320},
		DifficultyStepEveryXSeconds: 15,
		DifficultySpeedMultiplier:   1.08,
		MinSpawnDistancePx:          120,
		ScreenWidth:                 800,
		ScreenHeight:                600,
		BirdSpeed:                   200,
		SoundEnabled:                true,

		SafeZoneHeight:   60,
		FinishZoneY:      50,
		FinishZoneHeight: 50,
		BirdSize:         40,
		BirdHitboxInset:  10,
		PlaneHitboxInset: 5,
		SpawnJitter:      0.3,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
