package invaders

import (
	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// Laser is a projectile travelling vertically at a constant velocity.
type Laser struct {
	Pos    core.Vec
	Sprite SpriteID
	mask   *collision.Mask
}

func newLaser(x, y float64, id SpriteID, sprites *Sprites) *Laser {
	return &Laser{
		Pos:    core.Vec{X: x, Y: y},
		Sprite: id,
		mask:   sprites.Mask(id),
	}
}

// Move advances the laser by vel (negative travels up).
func (l *Laser) Move(vel float64) {
	l.Pos.Y += vel
}

// OffScreen reports whether the laser has left the field vertically.
func (l *Laser) OffScreen(field core.Field) bool {
	return !field.InsideY(l.Pos.Y)
}

// Collides reports whether the laser overlaps b.
func (l *Laser) Collides(b collision.Body) bool {
	return collision.Collide(l, b)
}

// Origin implements collision.Body.
func (l *Laser) Origin() (int, int) {
	return l.Pos.Pixel()
}

// Mask implements collision.Body.
func (l *Laser) Mask() *collision.Mask {
	return l.mask
}
