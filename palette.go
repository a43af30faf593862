package gfx

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Named returns the color with the given SVG/CSS name, such as "steelblue"
// or "Dark Olive Green". Case, spaces, hyphens and underscores are ignored.
// The second result is false for an unknown name.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[normalizeColorName(name)]
	if !ok {
		return Transparent, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// MustNamed is like Named but panics on an unknown name. It is meant for
// package-level color variables.
func MustNamed(name string) Color {
	c, ok := Named(name)
	if !ok {
		panic("gfx: unknown color name " + name)
	}
	return c
}

// ColorNames returns every name accepted by Named, sorted.
func ColorNames() []string {
	return append([]string(nil), colornames.Names...)
}

func normalizeColorName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
