package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	for _, profile := range []Profile{ProfileTerminal, ProfileWindow} {
		t.Run(string(profile), func(t *testing.T) {
			var cfg InvadersConfig
			require.NoError(t, yaml.Unmarshal(GetDefaultYAML(profile), &cfg))
			assert.Equal(t, Default(profile), cfg)
			assert.NoError(t, Validate(cfg))
		})
	}
}

func TestWindowDefaults(t *testing.T) {
	cfg := DefaultWindowConfig()

	assert.Equal(t, 750, cfg.Field.Width)
	assert.Equal(t, 750, cfg.Field.Height)
	assert.Equal(t, 25, cfg.Lasers.Cooldown)
	assert.Equal(t, 120, cfg.Enemies.FireChanceFrames)
	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Equal(t, 10, cfg.Player.HitDamage)
	assert.Equal(t, 50, cfg.Waves.SpawnMarginLeft)
	assert.Equal(t, 100, cfg.Waves.SpawnMarginRight)
}

func TestLoadCustomYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  lives: 9\n"), 0o600))

	cfg, err := Load(ProfileWindow, path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Gameplay.Lives)
	assert.Equal(t, 750, cfg.Field.Width, "unspecified values keep the profile default")
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := "[enemies]\nvelocity = 2.5\nfire_chance_frames = 60\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(ProfileWindow, path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Enemies.Velocity)
	assert.Equal(t, 60, cfg.Enemies.FireChanceFrames)
	assert.Equal(t, 25, cfg.Lasers.Cooldown)
}

func TestLoadCustomMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(ProfileTerminal, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lasers:\n  cooldown: 0\n"), 0o600))

	_, err := Load(ProfileTerminal, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cooldown")
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultWindowConfig()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, 7, easy.Gameplay.Lives)
	assert.Equal(t, 180, easy.Enemies.FireChanceFrames)

	hard := DefaultWindowConfig()
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 3, hard.Gameplay.Lives)
	assert.Equal(t, 80, hard.Enemies.FireChanceFrames)
	assert.Equal(t, 0.5, hard.Difficulty.InitialLevel)

	normal := DefaultWindowConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultWindowConfig(), normal)

	fixed := DefaultWindowConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyNormal, ParsePreset(""))
	assert.Equal(t, DifficultyNormal, ParsePreset("insane"))
}
