package invaders

import (
	"math/rand"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// SpawnFunc builds one enemy at the given position.
type SpawnFunc func(x, y float64, color EnemyColor) *Enemy

// WaveManager spawns a new, larger wave each time the field is cleared.
type WaveManager struct {
	Level      int
	WaveLength int

	cfg config.WaveConfig
	rng *rand.Rand
}

// NewWaveManager creates a wave manager drawing positions and colors from rng.
func NewWaveManager(cfg config.WaveConfig, rng *rand.Rand) *WaveManager {
	return &WaveManager{
		Level:      0,
		WaveLength: cfg.InitialLength,
		cfg:        cfg,
		rng:        rng,
	}
}

// Update spawns the next wave when enemies is empty. It returns the
// (possibly new) enemy list and whether a wave was spawned.
func (w *WaveManager) Update(enemies []*Enemy, field core.Field, spawn SpawnFunc) ([]*Enemy, bool) {
	if len(enemies) > 0 {
		return enemies, false
	}

	w.Level++
	w.WaveLength += w.cfg.Increment

	for i := 0; i < w.WaveLength; i++ {
		x, y := w.position(field)
		color := EnemyColor(w.rng.Intn(int(enemyColorCount)))
		enemies = append(enemies, spawn(float64(x), float64(y), color))
	}
	return enemies, true
}

// position draws x from [left, width-right] and y from [minY, maxY).
func (w *WaveManager) position(field core.Field) (int, int) {
	lo := w.cfg.SpawnMarginLeft
	hi := field.W - w.cfg.SpawnMarginRight
	x := lo
	if hi > lo {
		x = lo + w.rng.Intn(hi-lo+1)
	}

	y := w.cfg.SpawnMinY
	if span := w.cfg.SpawnMaxY - w.cfg.SpawnMinY; span > 0 {
		y += w.rng.Intn(span)
	}
	return x, y
}
