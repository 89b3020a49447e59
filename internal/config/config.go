// Package config provides YAML/TOML game configuration loading and
// difficulty management for the space shooter.
package config

// Profile names a set of defaults tuned for one frontend.
type Profile string

const (
	// ProfileTerminal measures everything in terminal cells.
	ProfileTerminal Profile = "terminal"
	// ProfileWindow measures everything in window pixels (750x750 field).
	ProfileWindow Profile = "window"
)

// InvadersConfig contains all tunables of the game rules.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Lasers     LaserConfig      `yaml:"lasers" toml:"lasers"`
	Waves      WaveConfig       `yaml:"waves" toml:"waves"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig sets the play area size. Zero means "use the screen size".
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Velocity     float64 `yaml:"velocity" toml:"velocity"`             // Units moved per tick while a direction is held
	Health       int     `yaml:"health" toml:"health"`                 // Starting and maximum health
	HitDamage    int     `yaml:"hit_damage" toml:"hit_damage"`         // Damage taken per laser or ramming enemy
	GunOffset    float64 `yaml:"gun_offset" toml:"gun_offset"`         // Horizontal laser spawn offset
	BottomMargin int     `yaml:"bottom_margin" toml:"bottom_margin"`   // Start distance between ship and bottom edge
	HealthBarGap int     `yaml:"health_bar_gap" toml:"health_bar_gap"` // Strip under the ship kept free for the health bar
}

// EnemyConfig defines enemy ships.
type EnemyConfig struct {
	Velocity         float64 `yaml:"velocity" toml:"velocity"`                     // Descent per tick
	FireChanceFrames int     `yaml:"fire_chance_frames" toml:"fire_chance_frames"` // Each enemy fires with probability 1/N per tick
	GunOffset        float64 `yaml:"gun_offset" toml:"gun_offset"`                 // Horizontal laser spawn offset
	Points           int     `yaml:"points" toml:"points"`                         // Score for shooting one down
}

// LaserConfig defines projectiles and fire rate.
type LaserConfig struct {
	Velocity float64 `yaml:"velocity" toml:"velocity"` // Units per tick
	Cooldown int     `yaml:"cooldown" toml:"cooldown"` // Ticks between shots of one ship
}

// WaveConfig defines enemy wave spawning.
type WaveConfig struct {
	InitialLength    int `yaml:"initial_length" toml:"initial_length"`
	Increment        int `yaml:"increment" toml:"increment"`
	SpawnMarginLeft  int `yaml:"spawn_margin_left" toml:"spawn_margin_left"`
	SpawnMarginRight int `yaml:"spawn_margin_right" toml:"spawn_margin_right"`
	SpawnMinY        int `yaml:"spawn_min_y" toml:"spawn_min_y"`
	SpawnMaxY        int `yaml:"spawn_max_y" toml:"spawn_max_y"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives        int `yaml:"lives" toml:"lives"`
	GraceSeconds int `yaml:"grace_seconds" toml:"grace_seconds"` // End screen duration before the session ends
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "wave", "score", "time" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Wave/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`         // Added to enemy speed at max difficulty
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier" toml:"fire_rate_multiplier"` // Added to enemy fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	if preset == DifficultyHard {
		return 0.5
	}
	return 0.0
}

// ApplyPreset adjusts cfg for a difficulty preset.
// Normal leaves the rules as configured.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Enemies.FireChanceFrames = cfg.Enemies.FireChanceFrames * 3 / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = max(cfg.Gameplay.Lives-2, 1)
		cfg.Enemies.FireChanceFrames = max(cfg.Enemies.FireChanceFrames*2/3, 1)
	}
}
