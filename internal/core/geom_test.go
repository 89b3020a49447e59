package core

import "testing"

func TestRectIntersection(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Intersection(NewRect(6, 4, 10, 10))
	want := NewRect(6, 4, 4, 6)
	if got != want {
		t.Errorf("Intersection() = %+v, expected %+v", got, want)
	}

	none := NewRect(0, 0, 4, 4).Intersection(NewRect(8, 8, 2, 2))
	if !none.Empty() {
		t.Errorf("disjoint rects should give an empty intersection, got %+v", none)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right (exclusive)", 30, 25, false},
		{"left of", 5, 15, false},
		{"below", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestVecPixel(t *testing.T) {
	tests := []struct {
		v      Vec
		px, py int
	}{
		{Vec{X: 3.7, Y: 2.1}, 3, 2},
		{Vec{X: -0.5, Y: -1500}, -1, -1500},
		{Vec{X: 0, Y: 0}, 0, 0},
	}

	for _, tc := range tests {
		x, y := tc.v.Pixel()
		if x != tc.px || y != tc.py {
			t.Errorf("Pixel(%v) = (%d, %d), expected (%d, %d)", tc.v, x, y, tc.px, tc.py)
		}
	}
}

func TestFieldInsideY(t *testing.T) {
	f := Field{W: 750, H: 750}

	tests := []struct {
		y        float64
		expected bool
	}{
		{0, true},
		{750, true},
		{375.5, true},
		{-0.1, false},
		{750.1, false},
	}

	for _, tc := range tests {
		if got := f.InsideY(tc.y); got != tc.expected {
			t.Errorf("InsideY(%v) = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(15.5, 0.0, 10.0); got != 10.0 {
		t.Errorf("Clamp(15.5, 0, 10) = %f, expected 10", got)
	}
}
