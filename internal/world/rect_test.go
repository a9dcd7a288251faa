package world

import "testing"

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 5, 6, 6)
	x, y := r.Center()
	if x != 13 || y != 8 {
		t.Errorf("Center() = (%d,%d), want (13,8)", x, y)
	}

	// Odd sums truncate
	r = NewRect(0, 0, 7, 9)
	x, y = r.Center()
	if x != 3 || y != 4 {
		t.Errorf("Center() = (%d,%d), want (3,4)", x, y)
	}
}

func TestNewRectBounds(t *testing.T) {
	r := NewRect(3, 4, 7, 8)
	if r.X1 != 3 || r.Y1 != 4 || r.X2 != 10 || r.Y2 != 12 {
		t.Errorf("NewRect(3,4,7,8) = %+v", r)
	}
	if r.Width() != 7 || r.Height() != 8 {
		t.Errorf("size = %dx%d, want 7x8", r.Width(), r.Height())
	}
}

func TestNewRectDegeneratePanics(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRect(0,0,%d,%d) did not panic", tt.width, tt.height)
				}
			}()
			NewRect(0, 0, tt.width, tt.height)
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 5, 5) // x 0..5, y 0..5

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(2, 2, 5, 5), true},
		{"contained", NewRect(1, 1, 2, 2), true},
		{"shared vertical edge", NewRect(5, 0, 5, 5), true},
		{"shared horizontal edge", NewRect(0, 5, 5, 5), true},
		{"shared corner", NewRect(5, 5, 3, 3), true},
		{"one tile gap right", NewRect(6, 0, 5, 5), false},
		{"one tile gap below", NewRect(0, 6, 5, 5), false},
		{"overlaps on x only", NewRect(2, 10, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersect(tt.other); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersect(a); got != tt.want {
				t.Errorf("reverse Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsInterior(t *testing.T) {
	r := NewRect(10, 5, 6, 6) // interior x 11..16, y 6..11

	inside := [][2]int{{11, 6}, {16, 11}, {13, 8}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = false, want true", p[0], p[1])
		}
	}

	outside := [][2]int{{10, 6}, {11, 5}, {17, 8}, {13, 12}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = true, want false", p[0], p[1])
		}
	}
}
