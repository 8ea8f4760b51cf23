package core

import "testing"

func TestRectIntersects(t *testing.T) {
	bird := Rect{X: 57, Y: 244, W: 34, H: 24}

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "bird inside pipe column",
			a:        bird,
			b:        Rect{X: 60, Y: 200, W: 52, H: 320},
			expected: true,
		},
		{
			name:     "pipe ahead of bird",
			a:        bird,
			b:        Rect{X: 120, Y: 0, W: 52, H: 320},
			expected: false,
		},
		{
			name:     "pipe touching right edge",
			a:        bird,
			b:        Rect{X: 91, Y: 0, W: 52, H: 320},
			expected: false,
		},
		{
			name:     "floor touching bottom edge",
			a:        bird,
			b:        Rect{X: 0, Y: 268, W: 336, H: 112},
			expected: false,
		},
		{
			name:     "floor one pixel into bird",
			a:        bird,
			b:        Rect{X: 0, Y: 267, W: 336, H: 112},
			expected: true,
		},
		{
			name:     "empty rect never intersects",
			a:        bird,
			b:        Rect{X: 60, Y: 250, W: 0, H: 0},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectF(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		expected   Rect
	}{
		{"whole numbers", 10, 20, 30, 40, Rect{X: 10, Y: 20, W: 30, H: 40}},
		{"fractions truncate", 404.48, 51.2, 33.9, 24.5, Rect{X: 404, Y: 51, W: 33, H: 24}},
		{"negative truncates toward zero", -52.5, -300.7, 52, 320, Rect{X: -52, Y: -300, W: 52, H: 320}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectF(tc.x, tc.y, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("RectF() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	// Player rotation range used by the game
	tests := []struct {
		val, min, max, expected float64
	}{
		{80, -90, 20, 20},
		{-95, -90, 20, -90},
		{-3, -90, 20, -3},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
