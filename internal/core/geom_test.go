package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 30, 25, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectFExpand(t *testing.T) {
	r := NewRectF(10, 20, 30, 40)
	e := r.Expand(5)

	if e.X != 5 || e.Y != 15 {
		t.Errorf("Expand top-left = (%v, %v), expected (5, 15)", e.X, e.Y)
	}
	if e.W != 40 || e.H != 50 {
		t.Errorf("Expand size = (%v, %v), expected (40, 50)", e.W, e.H)
	}

	// A point just outside the rect but within the margin is now contained.
	if !e.Contains(8, 20) {
		t.Error("expanded rect should contain points within the margin")
	}
	if e.Contains(4, 20) {
		t.Error("expanded rect should not contain points beyond the margin")
	}
}

func TestRectFClosestPoint(t *testing.T) {
	r := NewRectF(10, 10, 20, 10) // spans x 10..30, y 10..20

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside stays put", 15, 15, 15, 15},
		{"left of rect", 0, 15, 10, 15},
		{"right of rect", 40, 15, 30, 15},
		{"above rect", 15, 0, 15, 10},
		{"below rect", 15, 30, 15, 20},
		{"diagonal to corner", 0, 0, 10, 10},
		{"on the edge", 10, 15, 10, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotX, gotY := r.ClosestPoint(tc.x, tc.y)
			if gotX != tc.wantX || gotY != tc.wantY {
				t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestRectFCenterX(t *testing.T) {
	r := NewRectF(10, 0, 30, 5)
	if r.CenterX() != 25 {
		t.Errorf("CenterX() = %v, expected 25", r.CenterX())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
