// Package audio plays procedurally generated sound effects for game events.
package audio

import "github.com/patricklapgar/Space-Shooter-Game/internal/core"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player laser
	SoundEnemyShot                  // Enemy laser
	SoundExplosion                  // Enemy destroyed
	SoundHit                        // Player damaged
	SoundLifeLost                   // Enemy slipped past
	SoundLevelUp                    // New wave
	SoundGameOver                   // End screen
	soundTypeCount
)

// String returns the sound name used in config and logs.
func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundEnemyShot:
		return "enemy_shot"
	case SoundExplosion:
		return "explosion"
	case SoundHit:
		return "hit"
	case SoundLifeLost:
		return "life_lost"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventSound maps a game event to its sound.
func EventSound(kind core.EventKind) (SoundType, bool) {
	switch kind {
	case core.EventShot:
		return SoundShot, true
	case core.EventEnemyShot:
		return SoundEnemyShot, true
	case core.EventEnemyDestroyed:
		return SoundExplosion, true
	case core.EventPlayerHit:
		return SoundHit, true
	case core.EventLifeLost:
		return SoundLifeLost, true
	case core.EventLevelUp:
		return SoundLevelUp, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// AudioConfig holds mixing settings.
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default mix. Enemy fire is quiet because
// a full wave fires often.
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   44100,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.6,
			SoundEnemyShot: 0.2,
			SoundExplosion: 0.8,
			SoundHit:       0.7,
			SoundLifeLost:  0.8,
			SoundLevelUp:   0.6,
			SoundGameOver:  0.9,
		},
	}
}
