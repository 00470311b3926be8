// Package config provides YAML-based configuration loading, validation and
// the difficulty model for Birds & Planes.
package config

import "fmt"

// Config holds every tunable of the game. Keys mirror the config file.
type Config struct {
	NumLanes                    int       `yaml:"numLanes"`
	Lives                       int       `yaml:"lives"`
	PointsPerCross              int       `yaml:"pointsPerCross"`
	SpawnRate                   float64   `yaml:"spawnRate"`       // spawns per second per lane, before difficulty
	PlaneSpeedRange             []float64 `yaml:"planeSpeedRange"` // [min, max] px/s
	DifficultyStepEveryXSeconds float64   `yaml:"difficultyStepEveryXSeconds"`
	DifficultySpeedMultiplier   float64   `yaml:"difficultySpeedMultiplier"`
	MinSpawnDistancePx          float64   `yaml:"minSpawnDistancePx"`
	ScreenWidth                 int       `yaml:"screenWidth"`
	ScreenHeight                int       `yaml:"screenHeight"`
	BirdSpeed                   float64   `yaml:"birdSpeed"` // px/s
	SoundEnabled                bool      `yaml:"soundEnabled"`

	// Layout and feel
	SafeZoneHeight   float64 `yaml:"safeZoneHeight"`
	FinishZoneY      float64 `yaml:"finishZoneY"`
	FinishZoneHeight float64 `yaml:"finishZoneHeight"`
	BirdSize         float64 `yaml:"birdSize"`
	BirdHitboxInset  float64 `yaml:"birdHitboxInset"`
	PlaneHitboxInset float64 `yaml:"planeHitboxInset"`
	SpawnJitter      float64 `yaml:"spawnJitter"` // seconds, +/- on each spawn interval
}

// MinPlaneSpeed returns the lower bound of the plane speed range.
func (c Config) MinPlaneSpeed() float64 {
	return c.PlaneSpeedRange[0]
}

// MaxPlaneSpeed returns the upper bound of the plane speed range.
func (c Config) MaxPlaneSpeed() float64 {
	return c.PlaneSpeedRange[1]
}

// PlayAreaTop returns the y coordinate where the first lane begins
// (the lower boundary of the finish zone).
func (c Config) PlayAreaTop() float64 {
	return c.FinishZoneY + c.FinishZoneHeight
}

// PlayAreaBottom returns the y coordinate where the last lane ends
// (the upper boundary of the safe zone).
func (c Config) PlayAreaBottom() float64 {
	return float64(c.ScreenHeight) - c.SafeZoneHeight
}

// Problem describes one invalid setting that Validate replaced.
type Problem struct {
	Key    string
	Value  any
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s=%v: %s", p.Key, p.Value, p.Reason)
}

// Validate replaces every invalid setting with its default and returns what
// it replaced. A validated Config satisfies all preconditions the game
// relies on (positive spawn rate, ordered speed range, lanes that fit).
func (c *Config) Validate() []Problem {
	def := Default()
	var problems []Problem

	fix := func(bad bool, key string, value any, reason string, reset func()) {
		if bad {
			problems = append(problems, Problem{Key: key, Value: value, Reason: reason})
			reset()
		}
	}

	fix(c.NumLanes <= 0, "numLanes", c.NumLanes, "must be > 0",
		func() { c.NumLanes = def.NumLanes })
	fix(c.Lives <= 0, "lives", c.Lives, "must be > 0",
		func() { c.Lives = def.Lives })
	fix(c.PointsPerCross < 0, "pointsPerCross", c.PointsPerCross, "must be >= 0",
		func() { c.PointsPerCross = def.PointsPerCross })
	fix(c.SpawnRate <= 0, "spawnRate", c.SpawnRate, "must be > 0",
		func() { c.SpawnRate = def.SpawnRate })
	fix(len(c.PlaneSpeedRange) != 2 || c.PlaneSpeedRange[0] < 0 || c.PlaneSpeedRange[0] > c.PlaneSpeedRange[1],
		"planeSpeedRange", c.PlaneSpeedRange, "must be [min, max] with 0 <= min <= max",
		func() { c.PlaneSpeedRange = append([]float64(nil), def.PlaneSpeedRange...) })
	fix(c.DifficultyStepEveryXSeconds <= 0, "difficultyStepEveryXSeconds", c.DifficultyStepEveryXSeconds, "must be > 0",
		func() { c.DifficultyStepEveryXSeconds = def.DifficultyStepEveryXSeconds })
	fix(c.DifficultySpeedMultiplier < 1, "difficultySpeedMultiplier", c.DifficultySpeedMultiplier, "must be >= 1",
		func() { c.DifficultySpeedMultiplier = def.DifficultySpeedMultiplier })
	fix(c.MinSpawnDistancePx < 0, "minSpawnDistancePx", c.MinSpawnDistancePx, "must be >= 0",
		func() { c.MinSpawnDistancePx = def.MinSpawnDistancePx })
	fix(c.ScreenWidth <= 0, "screenWidth", c.ScreenWidth, "must be > 0",
		func() { c.ScreenWidth = def.ScreenWidth })
	fix(c.ScreenHeight <= 0, "screenHeight", c.ScreenHeight, "must be > 0",
		func() { c.ScreenHeight = def.ScreenHeight })
	fix(c.BirdSpeed <= 0, "birdSpeed", c.BirdSpeed, "must be > 0",
		func() { c.BirdSpeed = def.BirdSpeed })
	fix(c.BirdSize <= 0, "birdSize", c.BirdSize, "must be > 0",
		func() { c.BirdSize = def.BirdSize })
	fix(c.BirdHitboxInset < 0, "birdHitboxInset", c.BirdHitboxInset, "must be >= 0",
		func() { c.BirdHitboxInset = def.BirdHitboxInset })
	fix(c.PlaneHitboxInset < 0, "planeHitboxInset", c.PlaneHitboxInset, "must be >= 0",
		func() { c.PlaneHitboxInset = def.PlaneHitboxInset })
	fix(c.SpawnJitter < 0, "spawnJitter", c.SpawnJitter, "must be >= 0",
		func() { c.SpawnJitter = def.SpawnJitter })

	// Zones last: they depend on the screen height fixed above.
	fix(c.SafeZoneHeight < 0 || c.FinishZoneY < 0 || c.FinishZoneHeight < 0 || c.PlayAreaBottom() <= c.PlayAreaTop(),
		"zones", []float64{c.FinishZoneY, c.FinishZoneHeight, c.SafeZoneHeight}, "lanes need room between finish and safe zones",
		func() {
			c.SafeZoneHeight = def.SafeZoneHeight
			c.FinishZoneY = def.FinishZoneY
			c.FinishZoneHeight = def.FinishZoneHeight
		})
	if c.PlayAreaBottom() <= c.PlayAreaTop() {
		// Screen too short even for the default zones.
		problems = append(problems, Problem{Key: "screenHeight", Value: c.ScreenHeight, Reason: "too small for the zones"})
		c.ScreenHeight = def.ScreenHeight
	}

	return problems
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset adjusts lives and the difficulty curve for a preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.DifficultySpeedMultiplier = 1.04
		cfg.DifficultyStepEveryXSeconds = 20
	case DifficultyHard:
		cfg.Lives = 2
		cfg.DifficultySpeedMultiplier = 1.12
		cfg.DifficultyStepEveryXSeconds = 10
	case DifficultyFixed:
		cfg.DifficultySpeedMultiplier = 1.0
	case DifficultyNormal:
	}
}
