package collision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	x, y int
	mask *Mask
}

func (b body) Origin() (int, int) { return b.x, b.y }
func (b body) Mask() *Mask        { return b.mask }

var ring = []string{
	"#####",
	"#...#",
	"#...#",
	"#####",
}

func TestFromPattern(t *testing.T) {
	m := FromPattern(ring)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, 14, m.Count())
	assert.True(t, m.Get(0, 0))
	assert.False(t, m.Get(2, 1), "'.' is transparent")
	assert.False(t, m.Get(9, 9), "out of range is transparent")
}

func TestFromPatternWideRows(t *testing.T) {
	// Rows wider than one storage word
	row := ""
	for i := 0; i < 70; i++ {
		row += " "
	}
	row += "#"
	m := FromPattern([]string{row})

	require.Equal(t, 71, m.Width())
	assert.True(t, m.Get(70, 0))
	assert.Equal(t, 1, m.Count())
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.SetNRGBA(10, 10, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(12, 11, color.NRGBA{G: 255, A: 128})
	img.SetNRGBA(11, 11, color.NRGBA{B: 255, A: 127})

	m := FromImage(img)

	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	assert.True(t, m.Get(0, 0), "opaque pixel maps to mask origin")
	assert.True(t, m.Get(2, 1), "alpha 128 is above the threshold")
	assert.False(t, m.Get(1, 1), "alpha 127 is not above the threshold")
	assert.Equal(t, 2, m.Count())
}

func TestOverlap(t *testing.T) {
	box := FromPattern(ring)
	dot := FromPattern([]string{"#"})

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"on the frame", 0, 0, true},
		{"inside the hole", 2, 1, false},
		{"right edge", 4, 3, true},
		{"just outside", 5, 0, false},
		{"above", 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, box.Overlap(dot, tc.dx, tc.dy))
		})
	}
}

func TestOverlapNil(t *testing.T) {
	m := FromPattern(ring)
	assert.False(t, m.Overlap(nil, 0, 0))

	var none *Mask
	assert.False(t, none.Overlap(m, 0, 0))
}

func TestCollideIsPixelExact(t *testing.T) {
	// Bounding boxes overlap but only transparent pixels coincide.
	a := body{x: 0, y: 0, mask: FromPattern(ring)}
	b := body{x: 0, y: 1, mask: FromPattern([]string{"###", "..."})}
	bb := body{x: 2, y: 2, mask: FromPattern([]string{"#"})}

	assert.True(t, Collide(a, b))
	assert.False(t, Collide(a, bb), "dot sits in the ring's hole")
}

func TestCollideSymmetric(t *testing.T) {
	ship := FromPattern([]string{
		"..#..",
		".###.",
		"#####",
	})
	laser := FromPattern([]string{"#", "#"})

	for dx := -6; dx <= 6; dx++ {
		for dy := -4; dy <= 4; dy++ {
			a := body{x: 10, y: 20, mask: ship}
			b := body{x: 10 + dx, y: 20 + dy, mask: laser}
			assert.Equal(t, Collide(a, b), Collide(b, a), "offset (%d, %d)", dx, dy)
		}
	}
}
