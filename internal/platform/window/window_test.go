package window

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patricklapgar/Space-Shooter-Game/internal/assets"
	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

func keys(down ...ebiten.Key) keyFunc {
	return func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
}

func TestReadInput(t *testing.T) {
	in := readInput(keys(ebiten.KeyArrowLeft, ebiten.KeySpace), keys(ebiten.KeyP))

	assert.True(t, in.Has(core.ActionLeft))
	assert.True(t, in.Has(core.ActionFire))
	assert.True(t, in.Has(core.ActionPause))
	assert.False(t, in.Has(core.ActionRight))
}

func TestReadInputPressOnlyActions(t *testing.T) {
	// Holding P must not toggle pause every tick.
	in := readInput(keys(ebiten.KeyP, ebiten.KeyR), keys())

	assert.False(t, in.Has(core.ActionPause))
	assert.False(t, in.Has(core.ActionRestart))
}

func TestReadInputWASD(t *testing.T) {
	in := readInput(keys(ebiten.KeyW, ebiten.KeyD), keys())

	dx, dy := in.Axis()
	assert.Equal(t, 1, dx)
	assert.Equal(t, -1, dy)
}

func TestOverlayLines(t *testing.T) {
	snap := invaders.Snapshot{State: invaders.StatePlaying}
	assert.Nil(t, overlayLines(snap, 60))

	snap.State = invaders.StatePaused
	assert.Equal(t, "PAUSED", overlayLines(snap, 60)[0])

	snap = invaders.Snapshot{State: invaders.StateLost, Score: 120, GraceTicks: 300, LostTicks: 61}
	lines := overlayLines(snap, 60)
	require.Len(t, lines, 2)
	assert.Equal(t, "You Lost!!", lines[0])
	assert.Equal(t, "Score: 120  |  R to restart  |  closing in 4s", lines[1])
}

func TestPlayerHealthBar(t *testing.T) {
	snap := invaders.Snapshot{
		Health:    40,
		MaxHealth: 100,
		Player:    invaders.EntityView{Sprite: invaders.SpritePlayer, X: 100, Y: 600},
	}

	bar := playerHealthBar(snap, 90, 48, 15)
	assert.True(t, bar.Visible)
	assert.Equal(t, float32(100), bar.X)
	assert.Equal(t, float32(650), bar.Y)
	assert.Equal(t, float32(90), bar.W)
	assert.Equal(t, float32(11), bar.H)
	assert.InDelta(t, 36, bar.Filled, 1e-4)

	snap.Health = -10
	assert.Zero(t, playerHealthBar(snap, 90, 48, 15).Filled)
}

func TestTitleLines(t *testing.T) {
	assert.Len(t, titleLines("normal", 0), 3)

	lines := titleLines("hard", 250)
	assert.Equal(t, "Difficulty: hard", lines[2])
	assert.Equal(t, "High score: 250", lines[3])
}

func newTestGame(t *testing.T, store *storage.Store) *Game {
	t.Helper()

	rules := config.DefaultWindowConfig()
	sprites, err := assets.Builtin(rules.Field.Width, rules.Field.Height, 1).Sprites()
	require.NoError(t, err)

	return &Game{
		opts: Options{
			Rules:      rules,
			Difficulty: config.DifficultyNormal,
			Player:     "pilot",
			TickRate:   60,
			Seed:       99,
			Store:      store,
		},
		game: invaders.New(invaders.WithConfig(rules), invaders.WithSprites(sprites)),
	}
}

func TestStepPlaysAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := newTestGame(t, store)
	g.start()
	require.Equal(t, phasePlaying, g.phase)

	for i := 0; i < 10; i++ {
		require.NoError(t, g.step(core.NewInputFrame()))
	}
	assert.Equal(t, 1, g.game.State().Level)

	g.game.Player().Health = 0
	require.NoError(t, g.step(core.NewInputFrame()))
	require.True(t, g.game.State().GameOver)
	require.NoError(t, g.step(core.NewInputFrame()))

	runs, err := store.TopRuns("normal", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "pilot", runs[0].Player)
	assert.Equal(t, 1, runs[0].Level)
}

func TestSaveRunLogging(t *testing.T) {
	tests := []struct {
		name     string
		closed   bool
		want     string
		unwanted string
	}{
		{"saved", false, "run finished", "could not save run"},
		{"store closed", true, "could not save run", "run finished"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
			require.NoError(t, err)
			defer store.Close()
			if tt.closed {
				require.NoError(t, store.Close())
			}

			var buf bytes.Buffer
			g := newTestGame(t, store)
			g.opts.Logger = log.New(&buf)
			g.start()
			g.saveRun()

			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), tt.unwanted)
		})
	}
}

func TestStepRestart(t *testing.T) {
	g := newTestGame(t, nil)
	g.start()
	g.game.Player().Health = 0
	require.NoError(t, g.step(core.NewInputFrame()))

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	require.NoError(t, g.step(restart))

	assert.False(t, g.game.State().GameOver)
	assert.Equal(t, 100, g.game.Player().Health)
}

func TestStepReturnsToTitleWhenDone(t *testing.T) {
	g := newTestGame(t, nil)
	g.opts.Rules.Gameplay.GraceSeconds = 0
	g.game = invaders.New(invaders.WithConfig(g.opts.Rules))
	g.start()

	g.game.Player().Health = 0
	require.NoError(t, g.step(core.NewInputFrame()))
	assert.Equal(t, phaseTitle, g.phase)
}

func TestStepQuit(t *testing.T) {
	g := newTestGame(t, nil)
	g.start()

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	assert.ErrorIs(t, g.step(quit), ebiten.Termination)
}

func TestLayoutIsFieldSize(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 750, w)
	assert.Equal(t, 750, h)
}
