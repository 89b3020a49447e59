package invaders

import "github.com/patricklapgar/Space-Shooter-Game/internal/core"

// EntityView is a read-only view of one sprite on the field.
type EntityView struct {
	Sprite SpriteID
	X, Y   float64
}

// Snapshot captures the game state for the window renderer and for
// determinism tests.
type Snapshot struct {
	Tick       int
	State      State
	Field      core.Field
	Level      int
	WaveLength int
	Lives      int
	Score      int
	Kills      int
	Health     int
	MaxHealth  int
	LostTicks  int
	GraceTicks int
	Player     EntityView
	Enemies    []EntityView
	Lasers     []EntityView // Player and enemy lasers
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Field:      g.field,
		Level:      g.waves.Level,
		WaveLength: g.waves.WaveLength,
		Lives:      g.lives,
		Score:      g.score,
		Kills:      g.kills,
		Health:     g.player.Health,
		MaxHealth:  g.player.MaxHealth,
		LostTicks:  g.lostTicks,
		GraceTicks: g.GraceTicks(),
		Player:     EntityView{Sprite: SpritePlayer, X: g.player.Pos.X, Y: g.player.Pos.Y},
		Enemies:    make([]EntityView, 0, len(g.enemies)),
	}

	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EntityView{Sprite: e.Sprite(), X: e.Pos.X, Y: e.Pos.Y})
		for _, l := range e.Lasers {
			s.Lasers = append(s.Lasers, EntityView{Sprite: l.Sprite, X: l.Pos.X, Y: l.Pos.Y})
		}
	}
	for _, l := range g.player.Lasers {
		s.Lasers = append(s.Lasers, EntityView{Sprite: l.Sprite, X: l.Pos.X, Y: l.Pos.Y})
	}
	return s
}

// RemainingGraceSeconds returns the whole seconds left on the end screen.
func (s Snapshot) RemainingGraceSeconds(tickRate int) int {
	if tickRate <= 0 {
		return 0
	}
	left := max(s.GraceTicks-s.LostTicks, 0)
	return (left + tickRate - 1) / tickRate
}
