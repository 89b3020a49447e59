package assets

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
)

// Pattern is a sprite drawn as text: '#' pixels take Color, anything else is
// transparent. Each pattern pixel becomes a Scale×Scale block.
type Pattern struct {
	Rows  []string
	Color color.NRGBA
	Scale int
}

var (
	yellow = color.NRGBA{R: 255, G: 214, B: 0, A: 255}
	red    = color.NRGBA{R: 230, G: 48, B: 48, A: 255}
	green  = color.NRGBA{R: 48, G: 220, B: 88, A: 255}
	blue   = color.NRGBA{R: 64, G: 128, B: 255, A: 255}
)

// Enemy lasers are wider than their beam so that the enemy gun offset
// centres the beam under the ship, like the classic image set.
var (
	enemyLaser = []string{
		"         ###         ",
		"         ###         ",
		"         ###         ",
		"         ###         ",
		"         ###         ",
		"          #          ",
		"          #          ",
	}
	playerLaser = []string{
		"       #       ",
		"       #       ",
		"       #       ",
		"       #       ",
		"       #       ",
		"       #       ",
	}
)

// Patterns holds the built-in art for every sprite.
var Patterns = map[invaders.SpriteID]Pattern{
	invaders.SpritePlayer: {
		Rows: []string{
			"       #       ",
			"      ###      ",
			"      ###      ",
			" ############# ",
			"###############",
			"###############",
			"###############",
			"###############",
		},
		Color: yellow,
		Scale: 6,
	},
	invaders.SpriteRedShip: {
		Rows: []string{
			"  #      #  ",
			"   #    #   ",
			"  ########  ",
			" ## #### ## ",
			"############",
			"# ######## #",
			"# #      # #",
			"   ##  ##   ",
		},
		Color: red,
		Scale: 4,
	},
	invaders.SpriteGreenShip: {
		Rows: []string{
			"     ##     ",
			"    ####    ",
			"   ######   ",
			"  ## ## ##  ",
			"  ########  ",
			"   # ## #   ",
			"  #      #  ",
			"   #    #   ",
		},
		Color: green,
		Scale: 4,
	},
	invaders.SpriteBlueShip: {
		Rows: []string{
			"    ####    ",
			" ########## ",
			"############",
			"###  ##  ###",
			"############",
			"  ###  ###  ",
			" ##  ##  ## ",
			"  ##    ##  ",
		},
		Color: blue,
		Scale: 4,
	},
	invaders.SpritePlayerLaser: {Rows: playerLaser, Color: yellow, Scale: 6},
	invaders.SpriteRedLaser:    {Rows: enemyLaser, Color: red, Scale: 4},
	invaders.SpriteGreenLaser:  {Rows: enemyLaser, Color: green, Scale: 4},
	invaders.SpriteBlueLaser:   {Rows: enemyLaser, Color: blue, Scale: 4},
}

// Rasterize renders p to an image.
func Rasterize(p Pattern) *image.NRGBA {
	w := 0
	for _, row := range p.Rows {
		w = max(w, len(row))
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, len(p.Rows)))
	for y, row := range p.Rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				img.SetNRGBA(x, y, p.Color)
			}
		}
	}
	return Scale(img, p.Scale)
}

// Builtin rasterizes every pattern and paints a starfield background of
// the given size.
func Builtin(width, height int, seed int64) *Set {
	set := &Set{
		Source:     "builtin",
		Background: starfield(width, height, seed),
		Images:     make(map[invaders.SpriteID]image.Image, len(Patterns)),
	}
	for id, p := range Patterns {
		set.Images[id] = Rasterize(p)
	}
	return set
}

func starfield(width, height int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	black := color.NRGBA{A: 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = black.A
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < width*height/1500; i++ {
		v := uint8(90 + rng.Intn(166))
		img.SetNRGBA(rng.Intn(width), rng.Intn(height), color.NRGBA{R: v, G: v, B: v, A: 255})
	}
	return img
}
