package config

import "math"

// Progress is what the game has achieved so far; it drives difficulty.
type Progress struct {
	Wave  int
	Score int
	Ticks int
}

// DifficultyManager derives enemy speed and fire rate from progress.
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

// Level returns the current difficulty level in [0, 1].
// With progression off it stays at the initial level; a disabled manager is always 0.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "wave":
		progress = float64(p.Wave) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales the base descent speed with the difficulty level.
func (d *DifficultyManager) EnemySpeed(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// FireChanceFrames shrinks the "1 in N" enemy fire roll as difficulty rises.
// The result is never below 1.
func (d *DifficultyManager) FireChanceFrames(base int, p Progress) int {
	n := float64(base) / (1.0 + d.Level(p)*d.cfg.Scaling.FireRateMultiplier)
	return max(int(math.Round(n)), 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
