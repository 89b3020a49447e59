package invaders

import (
	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Ship
	MaxHealth int
}

func newPlayer(x, y float64, health int, sprites *Sprites, gunOffset float64, cooldown int) *Player {
	return &Player{
		Ship:      newShip(x, y, health, SpritePlayer, SpritePlayerLaser, sprites, gunOffset, cooldown),
		MaxHealth: health,
	}
}

// HealthRatio returns remaining health in [0, 1] for the health bar.
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.Clamp(float64(p.Health)/float64(p.MaxHealth), 0, 1)
}

// TakeDamage subtracts n from health, stopping at zero.
func (p *Player) TakeDamage(n int) {
	p.Health = max(p.Health-n, 0)
}

// Move shifts the ship by (dx, dy) steps of vel and keeps it inside the field.
// barGap rows below the ship stay reserved for the health bar.
func (p *Player) Move(dx, dy int, vel float64, field core.Field, barGap int) {
	maxX := float64(max(field.W-p.Width(), 0))
	maxY := float64(max(field.H-p.Height()-barGap, 0))
	p.Pos.X = core.Clamp(p.Pos.X+float64(dx)*vel, 0, maxX)
	p.Pos.Y = core.Clamp(p.Pos.Y+float64(dy)*vel, 0, maxY)
}

// MoveLasers ticks the gun cooldown, advances the player's lasers and destroys the first enemy each
// one touches. Destroyed enemies are filtered out after the sweep; the
// surviving enemies and the number of kills are returned.
func (p *Player) MoveLasers(vel float64, enemies []*Enemy, field core.Field) ([]*Enemy, int) {
	p.Cooldown()

	dead := make(map[*Enemy]bool)
	kills := p.sweepLasers(vel, field, func(l *Laser) bool {
		for _, e := range enemies {
			if dead[e] {
				continue
			}
			if collision.Collide(l, e) {
				dead[e] = true
				return true
			}
		}
		return false
	})
	if kills == 0 {
		return enemies, 0
	}

	alive := enemies[:0]
	for _, e := range enemies {
		if !dead[e] {
			alive = append(alive, e)
		}
	}
	clear(enemies[len(alive):])
	return alive, kills
}
