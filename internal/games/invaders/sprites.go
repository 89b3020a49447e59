package invaders

import (
	"fmt"

	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// SpriteID names one of the fixed images used by the game.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteRedShip
	SpriteGreenShip
	SpriteBlueShip
	SpritePlayerLaser
	SpriteRedLaser
	SpriteGreenLaser
	SpriteBlueLaser
	spriteCount
)

// AllSprites lists every sprite in load order.
func AllSprites() []SpriteID {
	ids := make([]SpriteID, 0, spriteCount)
	for id := SpriteID(0); id < spriteCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// String returns the sprite name.
func (id SpriteID) String() string {
	switch id {
	case SpritePlayer:
		return "player"
	case SpriteRedShip:
		return "red_ship"
	case SpriteGreenShip:
		return "green_ship"
	case SpriteBlueShip:
		return "blue_ship"
	case SpritePlayerLaser:
		return "player_laser"
	case SpriteRedLaser:
		return "red_laser"
	case SpriteGreenLaser:
		return "green_laser"
	case SpriteBlueLaser:
		return "blue_laser"
	default:
		return "unknown"
	}
}

// Color returns the terminal color used to draw the sprite.
func (id SpriteID) Color() core.Color {
	switch id {
	case SpritePlayer, SpritePlayerLaser:
		return core.ColorBrightYellow
	case SpriteRedShip, SpriteRedLaser:
		return core.ColorBrightRed
	case SpriteGreenShip, SpriteGreenLaser:
		return core.ColorBrightGreen
	case SpriteBlueShip, SpriteBlueLaser:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// Glyphs holds the terminal art for each sprite. Spaces are transparent
// and every other rune is part of the collision mask.
var Glyphs = map[SpriteID][]string{
	SpritePlayer: {
		"  ▲  ",
		"◢███◣",
	},
	SpriteRedShip: {
		"╲█╱",
		" ▼ ",
	},
	SpriteGreenShip: {
		"▛█▜",
		" ▼ ",
	},
	SpriteBlueShip: {
		"◤█◥",
		" ▼ ",
	},
	SpritePlayerLaser: {"│"},
	SpriteRedLaser:    {"¦"},
	SpriteGreenLaser:  {"¦"},
	SpriteBlueLaser:   {"¦"},
}

// Sprites maps every SpriteID to its collision mask.
// The window frontend builds one from decoded images, the terminal uses Glyphs.
type Sprites struct {
	masks [spriteCount]*collision.Mask
}

// NewSprites builds a sprite set and fails if any sprite is missing.
func NewSprites(masks map[SpriteID]*collision.Mask) (*Sprites, error) {
	s := &Sprites{}
	for _, id := range AllSprites() {
		m, ok := masks[id]
		if !ok || m == nil {
			return nil, fmt.Errorf("invaders: missing mask for sprite %s", id)
		}
		if m.Width() == 0 || m.Height() == 0 {
			return nil, fmt.Errorf("invaders: empty mask for sprite %s", id)
		}
		s.masks[id] = m
	}
	return s, nil
}

// TerminalSprites returns masks built from Glyphs.
func TerminalSprites() *Sprites {
	s := &Sprites{}
	for id, rows := range Glyphs {
		s.masks[id] = collision.FromPattern(rows)
	}
	return s
}

// Mask returns the mask for id.
func (s *Sprites) Mask(id SpriteID) *collision.Mask {
	if id < 0 || id >= spriteCount {
		return nil
	}
	return s.masks[id]
}

// Size returns the width and height of the sprite.
func (s *Sprites) Size(id SpriteID) (int, int) {
	m := s.Mask(id)
	if m == nil {
		return 0, 0
	}
	return m.Width(), m.Height()
}
