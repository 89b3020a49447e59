// Package assets loads the sprite and background images used by the window
// frontend and derives their collision masks.
//
// Images come either from a directory holding the fixed file names below or
// from the built-in pixel patterns, rasterized at start-up.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/patricklapgar/Space-Shooter-Game/internal/collision"
	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
)

// BackgroundFile is the background image file name.
const BackgroundFile = "background-black.png"

// FileNames maps each sprite to its file name inside an asset directory.
var FileNames = map[invaders.SpriteID]string{
	invaders.SpritePlayer:      "pixel_ship_yellow.png",
	invaders.SpriteRedShip:     "pixel_ship_red_small.png",
	invaders.SpriteGreenShip:   "pixel_ship_green_small.png",
	invaders.SpriteBlueShip:    "pixel_ship_blue_small.png",
	invaders.SpritePlayerLaser: "pixel_laser_yellow.png",
	invaders.SpriteRedLaser:    "pixel_laser_red.png",
	invaders.SpriteGreenLaser:  "pixel_laser_green.png",
	invaders.SpriteBlueLaser:   "pixel_laser_blue.png",
}

// Set is a complete collection of game images.
type Set struct {
	Source     string // Directory the images came from, or "builtin"
	Background image.Image
	Images     map[invaders.SpriteID]image.Image
}

// LoadImage decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// LoadDir loads every image from dir. The first missing or unreadable file
// aborts loading and its path is named in the error.
func LoadDir(dir string) (*Set, error) {
	set := &Set{
		Source: dir,
		Images: make(map[invaders.SpriteID]image.Image, len(FileNames)),
	}

	for _, id := range invaders.AllSprites() {
		img, err := LoadImage(filepath.Join(dir, FileNames[id]))
		if err != nil {
			return nil, err
		}
		set.Images[id] = img
	}

	bg, err := LoadImage(filepath.Join(dir, BackgroundFile))
	if err != nil {
		return nil, err
	}
	set.Background = bg

	return set, nil
}

// Scale enlarges img by an integer factor using nearest-neighbour sampling,
// which keeps pixel art crisp.
func Scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	if factor < 1 {
		factor = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Sprites derives collision masks for every image in the set.
func (s *Set) Sprites() (*invaders.Sprites, error) {
	masks := make(map[invaders.SpriteID]*collision.Mask, len(s.Images))
	for id, img := range s.Images {
		masks[id] = collision.FromImage(img)
	}

	sprites, err := invaders.NewSprites(masks)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", s.Source, err)
	}
	return sprites, nil
}
