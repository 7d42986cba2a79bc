package core

import (
	"math"
	"testing"
)

const geomEps = 1e-9

func vecClose(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < geomEps && math.Abs(a.Y-b.Y) < geomEps
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-1, 2)

	if got := a.Add(b); !vecClose(got, Vec2{2, 6}) {
		t.Errorf("Add() = %v, expected (2, 6)", got)
	}
	if got := a.Sub(b); !vecClose(got, Vec2{4, 2}) {
		t.Errorf("Sub() = %v, expected (4, 2)", got)
	}
	if got := a.Scale(2); !vecClose(got, Vec2{6, 8}) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot() = %v, expected 5", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq() = %v, expected 25", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{"axis-aligned", Vec2{5, 0}, Vec2{1, 0}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"negative components", Vec2{0, -2}, Vec2{0, -1}},
		{"zero vector stays zero", Vec2{}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalized()
			if !vecClose(got, tc.expected) {
				t.Errorf("Normalized() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec2
		expected Vec2
	}{
		{"head-on flips", Vec2{1, 0}, Vec2{-1, 0}, Vec2{-1, 0}},
		{"vertical wall flips x only", Vec2{1, 1}, Vec2{-1, 0}, Vec2{-1, 1}},
		{"horizontal wall flips y only", Vec2{0.5, -0.5}, Vec2{0, 1}, Vec2{0.5, 0.5}},
		{"parallel to surface unchanged", Vec2{0, 1}, Vec2{1, 0}, Vec2{0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Reflect(tc.n)
			if !vecClose(got, tc.expected) {
				t.Errorf("Reflect(%v, %v) = %v, expected %v", tc.v, tc.n, got, tc.expected)
			}
		})
	}
}

func TestVec2ReflectPreservesLength(t *testing.T) {
	v := NewVec2(0.6, -0.8)
	n := NewVec2(0.7071067811865476, 0.7071067811865476)

	got := v.Reflect(n)
	if math.Abs(got.Len()-v.Len()) > geomEps {
		t.Errorf("Reflect() changed length: %v -> %v", v.Len(), got.Len())
	}
}

func TestVec2Rotate(t *testing.T) {
	v := NewVec2(1, 0)

	quarter := v.Rotate(math.Pi / 2)
	if !vecClose(quarter, Vec2{0, 1}) {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", quarter)
	}

	full := v.Rotate(2 * math.Pi)
	if !vecClose(full, v) {
		t.Errorf("Rotate(2pi) = %v, expected %v", full, v)
	}
}

func TestVec2IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected bool
	}{
		{"ordinary vector", Vec2{1, -2}, true},
		{"zero vector", Vec2{}, true},
		{"NaN x", Vec2{math.NaN(), 0}, false},
		{"NaN y", Vec2{0, math.NaN()}, false},
		{"positive infinity", Vec2{math.Inf(1), 0}, false},
		{"negative infinity", Vec2{0, math.Inf(-1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsFinite(); got != tc.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	a := NewVec2(1, 1)
	b := NewVec2(4, 5)

	if got := Dist(a, b); got != 5 {
		t.Errorf("Dist() = %v, expected 5", got)
	}
	if got := Dist(b, a); got != 5 {
		t.Errorf("Dist() (reversed) = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner", Vec2{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec2{30, 25}, false},
		{"outside left", Vec2{5, 15}, false},
		{"outside right", Vec2{35, 15}, false},
		{"outside top", Vec2{15, 5}, false},
		{"outside bottom", Vec2{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if !vecClose(c, Vec2{15, 17.5}) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	e := r.Expand(3)

	if e.X != 7 || e.Y != 7 || e.W != 26 || e.H != 26 {
		t.Errorf("Expand(3) = %+v, expected {7 7 26 26}", e)
	}

	// A point just outside the original is inside the expansion.
	p := NewVec2(31, 15)
	if r.Contains(p) {
		t.Error("point should be outside original rect")
	}
	if !e.Contains(p) {
		t.Error("point should be inside expanded rect")
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
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{1.5, 0, 1, 1},
		{0, 0, 1, 0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min() returned wrong value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max() returned wrong value")
	}
}
