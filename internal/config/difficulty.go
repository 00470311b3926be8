package config

import "math"

// DifficultyModel turns elapsed play time into the multiplier applied to
// spawn rate and plane speed. The curve is a staircase:
//
//	multiplier = growth ^ floor(elapsed / stepInterval)
type DifficultyModel struct {
	StepInterval float64 // seconds per step
	Growth       float64 // factor applied per step
}

// NewDifficultyModel builds the model from a validated configuration.
func NewDifficultyModel(cfg Config) DifficultyModel {
	return DifficultyModel{
		StepInterval: cfg.DifficultyStepEveryXSeconds,
		Growth:       cfg.DifficultySpeedMultiplier,
	}
}

// Steps returns how many difficulty steps have elapsed.
func (d DifficultyModel) Steps(elapsed float64) int {
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed / d.StepInterval))
}

// Multiplier returns the difficulty multiplier after elapsed seconds.
// It is exactly 1.0 during the first step.
func (d DifficultyModel) Multiplier(elapsed float64) float64 {
	steps := d.Steps(elapsed)
	if steps == 0 {
		return 1.0
	}
	return math.Pow(d.Growth, float64(steps))
}
