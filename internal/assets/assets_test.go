package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func solid(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func writeAssetDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range FileNames {
		writePNG(t, filepath.Join(dir, name), solid(10, 8))
	}
	writePNG(t, filepath.Join(dir, BackgroundFile), solid(750, 750))
	return dir
}

func TestLoadDir(t *testing.T) {
	dir := writeAssetDir(t)

	set, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, set.Source)
	assert.Len(t, set.Images, len(invaders.AllSprites()))
	assert.Equal(t, 750, set.Background.Bounds().Dx())

	sprites, err := set.Sprites()
	require.NoError(t, err)
	w, h := sprites.Size(invaders.SpriteRedShip)
	assert.Equal(t, 10, w)
	assert.Equal(t, 8, h)
}

func TestLoadDirMissingFileNamesPath(t *testing.T) {
	dir := writeAssetDir(t)
	missing := filepath.Join(dir, FileNames[invaders.SpriteBlueLaser])
	require.NoError(t, os.Remove(missing))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	_, err := LoadImage(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	dst := Scale(src, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), dst.Bounds())
	assert.Equal(t, uint8(255), dst.NRGBAAt(2, 2).A)
	assert.Equal(t, uint8(0), dst.NRGBAAt(3, 0).A)

	same := Scale(src, 0)
	assert.Equal(t, src.Bounds(), same.Bounds())
}

func TestRasterizeSizes(t *testing.T) {
	tests := []struct {
		id   invaders.SpriteID
		w, h int
	}{
		{invaders.SpritePlayer, 90, 48},
		{invaders.SpriteRedShip, 48, 32},
		{invaders.SpritePlayerLaser, 90, 36},
		{invaders.SpriteGreenLaser, 84, 28},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			b := Rasterize(Patterns[tt.id]).Bounds()
			assert.Equal(t, tt.w, b.Dx())
			assert.Equal(t, tt.h, b.Dy())
		})
	}
}

func TestBuiltinSprites(t *testing.T) {
	set := Builtin(750, 750, 1)
	assert.Equal(t, "builtin", set.Source)

	sprites, err := set.Sprites()
	require.NoError(t, err)

	// Beam only: 3 columns × 5 rows plus 1 × 2, each pattern pixel 4×4.
	laser := sprites.Mask(invaders.SpriteRedLaser)
	assert.Equal(t, (3*5+2)*16, laser.Count())

	// The beam sits at x 36..47 of an 84 wide image, so a -20 gun offset
	// lands it on the 48 wide ship's centre columns.
	assert.True(t, laser.Get(40, 0))
	assert.False(t, laser.Get(0, 0))
}

func TestBuiltinBackgroundIsOpaque(t *testing.T) {
	set := Builtin(100, 50, 7)
	b := set.Background.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 50, b.Dy())

	_, _, _, a := set.Background.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}
