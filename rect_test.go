package gfx

import (
	"image"
	"testing"
)

func TestRectContainsHalfOpen(t *testing.T) {
	r := IntRect{Left: 0, Top: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 0, 0, true},
		{"inside", 9, 9, true},
		{"right edge", 10, 5, false},
		{"bottom edge", 5, 10, false},
		{"bottom-right corner", 10, 10, false},
		{"left of rect", -1, 5, false},
		{"above rect", 5, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("%v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContainsNegativeSize(t *testing.T) {
	// Spans x in [0, 10) and y in [0, 10) once normalized.
	r := FloatRect{Left: 10, Top: 10, Width: -10, Height: -10}

	if !r.Contains(0, 0) {
		t.Error("normalized min corner should be inside")
	}
	if !r.Contains(9.5, 9.5) {
		t.Error("interior point should be inside")
	}
	if r.Contains(10, 5) {
		t.Error("normalized max edge should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	base := IntRect{Left: 0, Top: 0, Width: 10, Height: 10}

	tests := []struct {
		name    string
		other   IntRect
		want    bool
		overlap IntRect
	}{
		{"edge touching", IntRect{Left: 10, Top: 0, Width: 10, Height: 10}, false, IntRect{}},
		{"corner touching", IntRect{Left: 10, Top: 10, Width: 5, Height: 5}, false, IntRect{}},
		{"one column overlap", IntRect{Left: 9, Top: 0, Width: 10, Height: 10}, true, IntRect{Left: 9, Top: 0, Width: 1, Height: 10}},
		{"contained", IntRect{Left: 2, Top: 3, Width: 4, Height: 5}, true, IntRect{Left: 2, Top: 3, Width: 4, Height: 5}},
		{"disjoint", IntRect{Left: 50, Top: 50, Width: 1, Height: 1}, false, IntRect{}},
		{"negative size other", IntRect{Left: 15, Top: 15, Width: -10, Height: -10}, true, IntRect{Left: 5, Top: 5, Width: 5, Height: 5}},
		{"zero area other", IntRect{Left: 5, Top: 5, Width: 0, Height: 3}, false, IntRect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			overlap, ok := base.Intersection(tt.other)
			if ok != tt.want {
				t.Errorf("Intersection(%v) ok = %v, want %v", tt.other, ok, tt.want)
			}
			if overlap != tt.overlap {
				t.Errorf("Intersection(%v) = %v, want %v", tt.other, overlap, tt.overlap)
			}
		})
	}
}

func TestRectIntersectionSymmetric(t *testing.T) {
	a := FloatRect{Left: -3, Top: 1.5, Width: 8, Height: 4}
	b := FloatRect{Left: 2, Top: -1, Width: 3, Height: 10}

	ab, okAB := a.Intersection(b)
	ba, okBA := b.Intersection(a)
	if okAB != okBA || ab != ba {
		t.Errorf("a∩b = %v,%v  b∩a = %v,%v", ab, okAB, ba, okBA)
	}
	want := FloatRect{Left: 2, Top: 1.5, Width: 3, Height: 4}
	if ab != want {
		t.Errorf("a∩b = %v, want %v", ab, want)
	}
}

func TestRectEquality(t *testing.T) {
	a := FloatRect{Left: 1, Top: 2, Width: 3, Height: 4}
	b := FloatRect{Left: 1, Top: 2, Width: 3, Height: 4}
	if !a.Equal(b) || a != b {
		t.Error("identical rects must be equal")
	}
	b.Height = 4.0000001
	if a.Equal(b) {
		t.Error("rects differing in one component must not be equal")
	}
}

func TestRectConversion(t *testing.T) {
	f := FloatRect{Left: 1.9, Top: -1.9, Width: 2.5, Height: 0.99}
	got := ToIntRect(f)
	want := IntRect{Left: 1, Top: -1, Width: 2, Height: 0}
	if got != want {
		t.Errorf("ToIntRect(%v) = %v, want %v (truncation)", f, got, want)
	}

	i := IntRect{Left: -4, Top: 7, Width: 100, Height: -3}
	back := ToFloatRect(i)
	if back != (FloatRect{Left: -4, Top: 7, Width: 100, Height: -3}) {
		t.Errorf("ToFloatRect(%v) = %v", i, back)
	}
	if ToIntRect(back) != i {
		t.Error("int -> float -> int must round-trip")
	}

	f32 := ConvertRect[float32](i)
	if f32.Width != 100 {
		t.Errorf("ConvertRect[float32] width = %v", f32.Width)
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(V2(10, 20), V2(30, 40))
	if r.Position() != V2(10, 20) {
		t.Errorf("Position() = %v", r.Position())
	}
	if r.Size() != V2(30, 40) {
		t.Errorf("Size() = %v", r.Size())
	}
	if r.Center() != V2(25, 40) {
		t.Errorf("Center() = %v", r.Center())
	}
}

func TestRectImageInterop(t *testing.T) {
	r := IntRect{Left: 2, Top: 3, Width: 4, Height: 5}
	ir := ImageRect(r)
	if ir != image.Rect(2, 3, 6, 8) {
		t.Errorf("ImageRect = %v", ir)
	}
	if RectFromImage(ir) != r {
		t.Errorf("RectFromImage(%v) = %v, want %v", ir, RectFromImage(ir), r)
	}
}
