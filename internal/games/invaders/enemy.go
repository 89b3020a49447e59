package invaders

import "github.com/patricklapgar/Space-Shooter-Game/internal/core"

// EnemyColor selects an enemy's ship and laser sprites.
type EnemyColor int

const (
	EnemyRed EnemyColor = iota
	EnemyGreen
	EnemyBlue
	enemyColorCount
)

// String returns the color name.
func (c EnemyColor) String() string {
	switch c {
	case EnemyRed:
		return "red"
	case EnemyGreen:
		return "green"
	case EnemyBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// colorSprites maps each color to its (ship, laser) sprite pair.
var colorSprites = map[EnemyColor][2]SpriteID{
	EnemyRed:   {SpriteRedShip, SpriteRedLaser},
	EnemyGreen: {SpriteGreenShip, SpriteGreenLaser},
	EnemyBlue:  {SpriteBlueShip, SpriteBlueLaser},
}

// Enemy is a descending hostile ship.
type Enemy struct {
	Ship
	Color EnemyColor
}

func newEnemy(x, y float64, color EnemyColor, health int, sprites *Sprites, gunOffset float64, cooldown int) *Enemy {
	pair, ok := colorSprites[color]
	if !ok {
		pair = colorSprites[EnemyRed]
		color = EnemyRed
	}
	return &Enemy{
		Ship:  newShip(x, y, health, pair[0], pair[1], sprites, gunOffset, cooldown),
		Color: color,
	}
}

// Move descends by vel.
func (e *Enemy) Move(vel float64) {
	e.Pos.Y += vel
}

// MoveLasers ticks the gun cooldown and advances the enemy's lasers. Each laser that hits the player
// deals damage and is removed. It returns the number of hits.
func (e *Enemy) MoveLasers(vel float64, p *Player, field core.Field, damage int) int {
	e.Cooldown()
	return e.sweepLasers(vel, field, func(l *Laser) bool {
		if l.Collides(p) {
			p.TakeDamage(damage)
			return true
		}
		return false
	})
}
