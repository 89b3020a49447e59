package collision

// Body is anything with a position in the play field and a mask.
type Body interface {
	// Origin returns the integer top-left corner of the body's sprite.
	Origin() (x, y int)
	// Mask returns the body's opaque-pixel mask.
	Mask() *Mask
}

// Collide reports whether the masks of a and b overlap at their current
// positions. It is symmetric: Collide(a, b) == Collide(b, a).
func Collide(a, b Body) bool {
	ax, ay := a.Origin()
	bx, by := b.Origin()
	return a.Mask().Overlap(b.Mask(), bx-ax, by-ay)
}
