// Package collision implements pixel-mask collision between sprites.
//
// A Mask records which pixels of a sprite are opaque. Two positioned masks
// collide when at least one opaque pixel of each lands on the same spot, which
// is tighter than a bounding-box test for irregular ship shapes.
package collision

import (
	"image"
	"math/bits"

	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// AlphaThreshold is the alpha above which an image pixel counts as opaque.
const AlphaThreshold = 127

// Mask is a width×height bitmap of opaque pixels, stored row-major in 64-bit words.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	w, h = max(w, 0), max(h, 0)
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// FromPattern builds a mask from text rows. Every rune other than a space or
// '.' is opaque. Short rows are padded with transparent pixels.
func FromPattern(rows []string) *Mask {
	w := 0
	for _, row := range rows {
		w = max(w, len([]rune(row)))
	}

	m := NewMask(w, len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r != ' ' && r != '.' {
				m.Set(x, y)
			}
			x++
		}
	}
	return m
}

// FromImage builds a mask from an image's alpha channel.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks (x, y) opaque. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Get reports whether (x, y) is opaque. Out-of-range coordinates are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Bounds returns the mask rectangle with its origin at (0, 0).
func (m *Mask) Bounds() core.Rect {
	return core.NewRect(0, 0, m.w, m.h)
}

// Overlap reports whether any opaque pixel of m coincides with an opaque pixel
// of other when other's origin is placed at (dx, dy) relative to m's origin.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	area := m.Bounds().Intersection(core.NewRect(dx, dy, other.w, other.h))
	if area.Empty() {
		return false
	}

	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
