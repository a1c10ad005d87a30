package core

import "testing"

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

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 40, 20), 20, 10, NewRect(10, 5, 20, 10)},
		{"odd remainder", NewRect(0, 0, 41, 21), 20, 10, NewRect(10, 5, 20, 10)},
		{"offset outer", NewRect(4, 2, 10, 6), 4, 2, NewRect(7, 4, 4, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
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
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		set      []Action
		expected Action
	}{
		{"none", nil, ActionNone},
		{"single", []Action{ActionLeft}, ActionLeft},
		{"up wins", []Action{ActionRight, ActionUp}, ActionUp},
		{"non-directional ignored", []Action{ActionPause}, ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.set {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestColorFromHex(t *testing.T) {
	if got := ColorFromHex("#ff0000", ColorWhite); got != ColorBrightRed {
		t.Errorf("ColorFromHex(#ff0000) = %v, expected %v", got, ColorBrightRed)
	}
	if got := ColorFromHex("#123456", ColorWhite); got != ColorWhite {
		t.Errorf("ColorFromHex(#123456) = %v, expected fallback %v", got, ColorWhite)
	}
}
