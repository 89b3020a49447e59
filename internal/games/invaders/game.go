// Package invaders implements the space shooter rules: a player ship at the
// bottom of the field shoots down waves of descending enemy ships.
//
// The package is frontend agnostic. Sizes come from the sprite masks and the
// config profile, so the same rules drive the terminal (cells) and the
// window (pixels).
package invaders

import (
	"math/rand"

	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// State is the phase of a session.
type State string

const (
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateLost    State = "lost"
	StateQuit    State = "quit"
)

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the rule tunables. Defaults to the terminal profile.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithSprites sets the sprite masks. Defaults to TerminalSprites.
func WithSprites(s *Sprites) Option {
	return func(g *Game) {
		if s != nil {
			g.sprites = s
		}
	}
}

// star is a background dot for the terminal renderer.
type star struct {
	x, y   int
	bright bool
}

// Game implements the space shooter game logic.
type Game struct {
	cfg        config.InvadersConfig
	sprites    *Sprites
	runtime    core.RuntimeConfig
	field      core.Field
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player  *Player
	enemies []*Enemy
	waves   *WaveManager
	stars   []star

	lives     int
	score     int
	kills     int
	tick      int
	state     State
	lostTicks int // Ticks spent on the end screen
	events    []core.Event
}

// New creates a game reset for the default 80x24 screen.
// Frontends call Reset again with their real size and seed.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultTerminalConfig(),
		sprites: TerminalSprites(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.runtime = rc
	g.field = core.Field{W: g.cfg.Field.Width, H: g.cfg.Field.Height}
	if g.field.W <= 0 {
		g.field.W = rc.ScreenW
	}
	if g.field.H <= 0 {
		g.field.H = rc.ScreenH
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.waves = NewWaveManager(g.cfg.Waves, g.rng)

	pw, ph := g.sprites.Size(SpritePlayer)
	g.player = newPlayer(
		float64((g.field.W-pw)/2),
		float64(g.field.H-ph-g.cfg.Player.BottomMargin),
		g.cfg.Player.Health,
		g.sprites,
		g.cfg.Player.GunOffset,
		g.cfg.Lasers.Cooldown,
	)
	g.player.Pos.Y = max(g.player.Pos.Y, 0)

	g.enemies = nil
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.kills = 0
	g.tick = 0
	g.state = StatePlaying
	g.lostTicks = 0
	g.events = nil
	g.stars = nil
}

// backdrop returns the background dots, scattering them on first use.
// They use their own source so the gameplay random sequence does not depend
// on the field size.
func (g *Game) backdrop() []star {
	if g.stars != nil {
		return g.stars
	}
	rng := rand.New(rand.NewSource(g.runtime.Seed ^ 0x5eed))
	n := g.field.W * g.field.H / 60
	stars := make([]star, 0, n)
	for i := 0; i < n; i++ {
		stars = append(stars, star{
			x:      rng.Intn(max(g.field.W, 1)),
			y:      rng.Intn(max(g.field.H, 1)),
			bright: rng.Intn(4) == 0,
		})
	}
	g.stars = stars
	return stars
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionQuit) {
		g.state = StateQuit
	}
	if g.state == StateQuit {
		return g.result()
	}

	if g.state != StateLost && in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	// Losing is detected one tick after the fatal hit, like the end screen
	// that follows it.
	if g.state == StatePlaying && (g.lives <= 0 || g.player.Health <= 0) {
		g.state = StateLost
		g.emit(core.EventGameOver, g.score)
	}
	if g.state == StateLost {
		g.lostTicks++
		if g.lostTicks > g.GraceTicks() {
			g.state = StateQuit
		}
		return g.result()
	}

	g.tick++
	g.advance(in)
	return g.result()
}

// advance runs one tick of play.
func (g *Game) advance(in core.InputFrame) {
	progress := g.progress()
	speed := g.difficulty.EnemySpeed(g.cfg.Enemies.Velocity, progress)
	fireChance := g.difficulty.FireChanceFrames(g.cfg.Enemies.FireChanceFrames, progress)
	laserVel := g.cfg.Lasers.Velocity
	damage := g.cfg.Player.HitDamage

	var spawned bool
	g.enemies, spawned = g.waves.Update(g.enemies, g.field, g.spawnEnemy)
	if spawned {
		g.emit(core.EventLevelUp, g.waves.Level)
	}

	dx, dy := in.Axis()
	g.player.Move(dx, dy, g.cfg.Player.Velocity, g.field, g.cfg.Player.HealthBarGap)
	if in.Has(core.ActionFire) && g.player.Shoot() {
		g.emit(core.EventShot, 0)
	}

	destroyed := make([]bool, len(g.enemies))
	for i, e := range g.enemies {
		e.Move(speed)

		for hits := e.MoveLasers(laserVel, g.player, g.field, damage); hits > 0; hits-- {
			g.emit(core.EventPlayerHit, damage)
		}

		if g.rng.Intn(fireChance) == 0 && e.Shoot() {
			g.emit(core.EventEnemyShot, 0)
		}

		if collision.Collide(e, g.player) {
			g.player.TakeDamage(damage)
			destroyed[i] = true
			g.emit(core.EventPlayerHit, damage)
		} else if e.Pos.Y+float64(e.Height()) > float64(g.field.H) {
			g.lives--
			destroyed[i] = true
			g.emit(core.EventLifeLost, g.lives)
		}
	}
	g.enemies = removeDestroyed(g.enemies, destroyed)

	var kills int
	g.enemies, kills = g.player.MoveLasers(-laserVel, g.enemies, g.field)
	for i := 0; i < kills; i++ {
		g.kills++
		g.score += g.cfg.Enemies.Points
		g.emit(core.EventEnemyDestroyed, g.cfg.Enemies.Points)
	}
}

// removeDestroyed compacts enemies, keeping those not flagged in destroyed.
func removeDestroyed(enemies []*Enemy, destroyed []bool) []*Enemy {
	kept := enemies[:0]
	for i, e := range enemies {
		if !destroyed[i] {
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])
	return kept
}

func (g *Game) spawnEnemy(x, y float64, color EnemyColor) *Enemy {
	return newEnemy(x, y, color, g.cfg.Player.Health, g.sprites, g.cfg.Enemies.GunOffset, g.cfg.Lasers.Cooldown)
}

func (g *Game) progress() config.Progress {
	return config.Progress{Wave: g.waves.Level, Score: g.score, Ticks: g.tick}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// GraceTicks is how long the end screen shows before the session ends.
func (g *Game) GraceTicks() int {
	return g.cfg.Gameplay.GraceSeconds * g.runtime.TickRate
}

// Phase returns the session phase.
func (g *Game) Phase() State {
	return g.state
}

// Player returns the player ship.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Waves returns the wave manager.
func (g *Game) Waves() *WaveManager {
	return g.waves
}

// Field returns the play area.
func (g *Game) Field() core.Field {
	return g.field
}

// Config returns the rules in effect.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.waves.Level,
		Lives:    g.lives,
		Health:   g.player.Health,
		GameOver: g.state == StateLost || g.state == StateQuit,
		Paused:   g.state == StatePaused,
		Done:     g.state == StateQuit,
	}
}
