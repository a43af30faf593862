package gfx

import (
	"slices"
	"testing"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name   string
		want   Color
		wantOK bool
	}{
		{"red", Red, true},
		{"SteelBlue", RGB(70, 130, 180), true},
		{"dark olive green", RGB(85, 107, 47), true},
		{"alice-blue", RGB(240, 248, 255), true},
		{"Light_Gray", RGB(211, 211, 211), true},
		{"not a color", Transparent, false},
		{"", Transparent, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Named(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Named(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMustNamedPanics(t *testing.T) {
	if got := MustNamed("navy"); got != RGB(0, 0, 128) {
		t.Errorf("MustNamed(navy) = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown name")
		}
	}()
	MustNamed("octarine")
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if !slices.IsSorted(names) {
		t.Error("ColorNames() is not sorted")
	}
	for _, n := range names {
		if _, ok := Named(n); !ok {
			t.Errorf("Named(%q) failed for a listed name", n)
		}
	}
	names[0] = "changed"
	if ColorNames()[0] == "changed" {
		t.Error("ColorNames() exposes internal storage")
	}
}
