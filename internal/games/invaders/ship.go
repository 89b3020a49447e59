package invaders

import (
	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// Ship holds what the player and enemies have in common: a position,
// health, a gun with a cooldown and the lasers it has fired.
type Ship struct {
	Pos    core.Vec
	Health int
	Lasers []*Laser

	body      SpriteID
	laser     SpriteID
	sprites   *Sprites
	gunOffset float64

	cooldownCounter   int // 0 means ready to fire
	cooldownThreshold int
}

func newShip(x, y float64, health int, body, laser SpriteID, sprites *Sprites, gunOffset float64, cooldown int) Ship {
	return Ship{
		Pos:               core.Vec{X: x, Y: y},
		Health:            health,
		body:              body,
		laser:             laser,
		sprites:           sprites,
		gunOffset:         gunOffset,
		cooldownThreshold: cooldown,
	}
}

// Shoot fires a laser if the gun is ready. It reports whether a laser was fired.
func (s *Ship) Shoot() bool {
	if s.cooldownCounter != 0 {
		return false
	}
	s.Lasers = append(s.Lasers, newLaser(s.Pos.X+s.gunOffset, s.Pos.Y, s.laser, s.sprites))
	s.cooldownCounter = 1
	return true
}

// Cooldown advances the gun cooldown by one tick.
func (s *Ship) Cooldown() {
	if s.cooldownCounter >= s.cooldownThreshold {
		s.cooldownCounter = 0
	} else if s.cooldownCounter > 0 {
		s.cooldownCounter++
	}
}

// CooldownCounter returns ticks since the last shot, or 0 when ready.
func (s *Ship) CooldownCounter() int {
	return s.cooldownCounter
}

// Sprite returns the ship's body sprite.
func (s *Ship) Sprite() SpriteID {
	return s.body
}

// Width returns the sprite width.
func (s *Ship) Width() int {
	return s.Mask().Width()
}

// Height returns the sprite height.
func (s *Ship) Height() int {
	return s.Mask().Height()
}

// Origin implements collision.Body.
func (s *Ship) Origin() (int, int) {
	return s.Pos.Pixel()
}

// Mask implements collision.Body.
func (s *Ship) Mask() *collision.Mask {
	return s.sprites.Mask(s.body)
}

// sweepLasers moves every laser by vel and drops those that left the field
// or for which hit returns true. Survivors are compacted in place after
// each laser has been evaluated. It returns the number of hits.
func (s *Ship) sweepLasers(vel float64, field core.Field, hit func(*Laser) bool) int {
	hits := 0
	kept := s.Lasers[:0]
	for _, l := range s.Lasers {
		l.Move(vel)
		switch {
		case l.OffScreen(field):
		case hit(l):
			hits++
		default:
			kept = append(kept, l)
		}
	}
	clear(s.Lasers[len(kept):])
	s.Lasers = kept
	return hits
}
