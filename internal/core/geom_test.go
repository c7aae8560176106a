package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, -15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(1, 1, 2, 2),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.9, 9.9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxShrink(t *testing.T) {
	b := NewBox(3, 4, 20, 10).Shrink(4)
	if b.Center != (Vec2{X: 3, Y: 4}) {
		t.Errorf("Shrink moved the center to %+v", b.Center)
	}
	if b.Size != (Vec2{X: 16, Y: 6}) {
		t.Errorf("Shrink size = %+v, expected {16 6}", b.Size)
	}

	tiny := NewBox(0, 0, 2, 2).Shrink(5)
	if tiny.Size.X != 0 || tiny.Size.Y != 0 {
		t.Errorf("Shrink should floor sizes at zero, got %+v", tiny.Size)
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(10, -10, 4, 6)
	if b.Min() != (Vec2{X: 8, Y: -13}) {
		t.Errorf("Min() = %+v", b.Min())
	}
	if b.Max() != (Vec2{X: 12, Y: -7}) {
		t.Errorf("Max() = %+v", b.Max())
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -1}).Scale(2)
	if v != (Vec2{X: 8, Y: 2}) {
		t.Errorf("Add/Scale = %+v, expected {8 2}", v)
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
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
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

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5.5) != 5.5 {
		t.Error("Abs(-5.5) should be 5.5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
