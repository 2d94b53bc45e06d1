package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFScale(t *testing.T) {
	// Full logical canvas maps onto the full target.
	full := RectF{X: 0, Y: 0, W: 480, H: 272}.Scale(480, 272, 240, 136)
	if full != NewRect(0, 0, 240, 136) {
		t.Errorf("full canvas scaled to %+v, expected {0 0 240 136}", full)
	}

	half := RectF{X: 240, Y: 136, W: 120, H: 68}.Scale(480, 272, 240, 136)
	if half != NewRect(120, 68, 60, 34) {
		t.Errorf("quarter rect scaled to %+v, expected {120 68 60 34}", half)
	}

	// A sliver still covers one cell.
	thin := RectF{X: 10, Y: 10, W: 0.1, H: 0.1}.Scale(480, 272, 80, 24)
	if thin.W < 1 || thin.H < 1 {
		t.Errorf("thin rect scaled to %+v, expected at least 1x1", thin)
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

	if got := ClampF(-1.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-1.5, 0, 1) = %f, expected 0", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-0.5, 2*math.Pi - 0.5},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
		{-4*math.Pi - 1, 2*math.Pi - 1},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%f) = %f, outside [0, 2π)", tc.in, got)
		}
	}
}

func TestDeadZone(t *testing.T) {
	tests := []struct {
		v, expected float64
	}{
		{0.1, 0},
		{-0.2, 0},
		{0.21, 0.21},
		{-0.9, -0.9},
	}

	for _, tc := range tests {
		if got := DeadZone(tc.v, 0.2); got != tc.expected {
			t.Errorf("DeadZone(%f, 0.2) = %f, expected %f", tc.v, got, tc.expected)
		}
	}
}

func TestRamp(t *testing.T) {
	ramp := []Color{ColorWhite, ColorGray, ColorGrayDark}
	if Ramp(ramp, 0) != ColorWhite {
		t.Error("Ramp(0) should pick the first color")
	}
	if Ramp(ramp, 1) != ColorGrayDark {
		t.Error("Ramp(1) should pick the last color")
	}
	if Ramp(ramp, 7) != ColorGrayDark {
		t.Error("Ramp should clamp t above 1")
	}
	if Ramp(nil, 0.5) != ColorDefault {
		t.Error("Ramp of an empty slice should be ColorDefault")
	}
}
