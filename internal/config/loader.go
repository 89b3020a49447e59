package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration for a profile.
// Search order: customPath -> ~/.invaders/configs/<profile>.yaml -> ./configs/<profile>.yaml -> embedded default.
// Only a failing customPath is an error; the other locations are skipped when unreadable.
func Load(profile Profile, customPath string) (InvadersConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(profile, customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	filename := string(profile) + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(profile, userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(profile, filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	cfg := Default(profile)
	if err := yaml.Unmarshal(GetDefaultYAML(profile), &cfg); err != nil {
		return Default(profile), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a YAML or TOML file over the profile defaults, so a file
// only needs to mention the values it changes.
func loadFile(profile Profile, path string) (InvadersConfig, error) {
	cfg := Default(profile)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with.
func Validate(cfg InvadersConfig) error {
	switch {
	case cfg.Field.Width < 0 || cfg.Field.Height < 0:
		return fmt.Errorf("field size must not be negative")
	case cfg.Player.Health <= 0:
		return fmt.Errorf("player.health must be positive")
	case cfg.Enemies.FireChanceFrames <= 0:
		return fmt.Errorf("enemies.fire_chance_frames must be positive")
	case cfg.Lasers.Cooldown <= 0:
		return fmt.Errorf("lasers.cooldown must be positive")
	case cfg.Waves.SpawnMinY >= cfg.Waves.SpawnMaxY:
		return fmt.Errorf("waves.spawn_min_y must be below spawn_max_y")
	case cfg.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive")
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
