package config

import (
	_ "embed"
)

//go:embed defaults/terminal.yaml
var defaultTerminalYAML []byte

//go:embed defaults/window.yaml
var defaultWindowYAML []byte

// DefaultTerminalConfig returns the built-in terminal profile.
// It mirrors defaults/terminal.yaml and is used if the embedded file fails to parse.
func DefaultTerminalConfig() InvadersConfig {
	return InvadersConfig{
		Player: PlayerConfig{
			Velocity:     0.5,
			Health:       100,
			HitDamage:    10,
			GunOffset:    2,
			BottomMargin: 2,
			HealthBarGap: 1,
		},
		Enemies: EnemyConfig{
			Velocity:         0.04,
			FireChanceFrames: 120,
			GunOffset:        1,
			Points:           10,
		},
		Lasers: LaserConfig{
			Velocity: 0.5,
			Cooldown: 25,
		},
		Waves: WaveConfig{
			InitialLength:    5,
			Increment:        5,
			SpawnMarginLeft:  2,
			SpawnMarginRight: 8,
			SpawnMinY:        -40,
			SpawnMaxY:        -4,
		},
		Gameplay: GameplayConfig{
			Lives:        5,
			GraceSeconds: 5,
		},
		Difficulty: defaultDifficulty(),
	}
}

// DefaultWindowConfig returns the built-in window profile (750x750 pixels).
func DefaultWindowConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 750, Height: 750},
		Player: PlayerConfig{
			Velocity:     5,
			Health:       100,
			HitDamage:    10,
			GunOffset:    0,
			BottomMargin: 30,
			HealthBarGap: 15,
		},
		Enemies: EnemyConfig{
			Velocity:         1,
			FireChanceFrames: 120,
			GunOffset:        -20,
			Points:           10,
		},
		Lasers: LaserConfig{
			Velocity: 5,
			Cooldown: 25,
		},
		Waves: WaveConfig{
			InitialLength:    5,
			Increment:        5,
			SpawnMarginLeft:  50,
			SpawnMarginRight: 100,
			SpawnMinY:        -1500,
			SpawnMaxY:        -100,
		},
		Gameplay: GameplayConfig{
			Lives:        5,
			GraceSeconds: 5,
		},
		Difficulty: defaultDifficulty(),
	}
}

// Default returns the built-in config for a profile.
func Default(profile Profile) InvadersConfig {
	if profile == ProfileWindow {
		return DefaultWindowConfig()
	}
	return DefaultTerminalConfig()
}

func defaultDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "none",
			MaxAt: 20,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier:    1.0,
			FireRateMultiplier: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(profile Profile) []byte {
	switch profile {
	case ProfileTerminal:
		return defaultTerminalYAML
	case ProfileWindow:
		return defaultWindowYAML
	default:
		return nil
	}
}
