package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
)

// Color is an 8-bit per channel, non-premultiplied RGBA color.
// It implements the standard color.Color interface.
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, G: 0, B: 0, A: 255}
	Green       = Color{R: 0, G: 255, B: 0, A: 255}
	Blue        = Color{R: 0, G: 0, B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, B: 0, A: 255}
	Magenta     = Color{R: 255, G: 0, B: 255, A: 255}
	Cyan        = Color{R: 0, G: 255, B: 255, A: 255}
	Transparent = Color{R: 0, G: 0, B: 0, A: 0}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA8 creates a color from its four channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromInteger unpacks a 32-bit 0xRRGGBBAA value.
func ColorFromInteger(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// ToInteger packs the color into a 32-bit 0xRRGGBBAA value.
func (c Color) ToInteger() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Add returns the component-wise sum, saturated at 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: uint8(min(int(c.R)+int(o.R), 255)),
		G: uint8(min(int(c.G)+int(o.G), 255)),
		B: uint8(min(int(c.B)+int(o.B), 255)),
		A: uint8(min(int(c.A)+int(o.A), 255)),
	}
}

// Sub returns the component-wise difference, saturated at 0.
func (c Color) Sub(o Color) Color {
	return Color{
		R: uint8(max(int(c.R)-int(o.R), 0)),
		G: uint8(max(int(c.G)-int(o.G), 0)),
		B: uint8(max(int(c.B)-int(o.B), 0)),
		A: uint8(max(int(c.A)-int(o.A), 0)),
	}
}

// Modulate returns the component-wise product, scaled back to [0, 255].
func (c Color) Modulate(o Color) Color {
	return Color{
		R: uint8(int(c.R) * int(o.R) / 255),
		G: uint8(int(c.G) * int(o.G) / 255),
		B: uint8(int(c.B) * int(o.B) / 255),
		A: uint8(int(c.A) * int(o.A) / 255),
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(o Color, t float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(clamp255(math.Round(float64(a) + (float64(b)-float64(a))*t)))
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B), A: mix(c.A, o.A)}
}

// ToGPU converts the color to the normalized float form used for GPU clear
// values and uniforms.
func (c Color) ToGPU() gputypes.Color {
	return gputypes.NewColor(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(c.A)/255,
	)
}

// String returns the color in #RRGGBBAA form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Unrecognized lengths return opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	to8 := func(v float64) uint8 { return uint8(clamp255(math.Round((v + m) * 255))) }
	return Color{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
