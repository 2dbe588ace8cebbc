package config

import "math"

// Progress is the player's advancement used to compute difficulty.
type Progress struct {
	Lines int
	Score int
	Ticks int
}

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "lines":
		progress = float64(p.Lines) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the fall speed multiplier for the current progress.
// It grows from 1 to 1 + speed_multiplier at max difficulty.
func (d *DifficultyManager) Speed(p Progress) float64 {
	return 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
}

// GravityTicks returns how many ticks a piece waits before falling one row.
// gameLevel is the line-based game level; each level adds LevelSpeedFactor to the speed.
func (d *DifficultyManager) GravityTicks(g Gameplay, gameLevel int, p Progress) int {
	speed := d.Speed(p) * (1.0 + float64(gameLevel)*g.LevelSpeedFactor)
	ticks := int(math.Round(float64(g.GravityTicks) / speed))
	if ticks < g.MinGravityTicks {
		ticks = g.MinGravityTicks
	}
	return ticks
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
