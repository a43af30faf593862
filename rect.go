package gfx

import (
	"fmt"
	"image"
)

// Number is the set of scalar types a Rect can be built from.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
//
// Width and Height may be negative: the rectangle then spans from
// Left+Width to Left (and Top+Height to Top). Every query normalizes the
// corners with min/max, so a rectangle and its mirrored-corner twin behave
// the same for Contains and Intersects. Equality is exact and structural.
type Rect[T Number] struct {
	Left, Top, Width, Height T
}

// IntRect is a rectangle with integer coordinates (pixels, texture rects).
type IntRect = Rect[int]

// FloatRect is a rectangle with float64 coordinates (world bounds).
type FloatRect = Rect[float64]

// NewRect creates a rectangle from its position and size vectors.
func NewRect(position, size Vec2) FloatRect {
	return FloatRect{Left: position.X, Top: position.Y, Width: size.X, Height: size.Y}
}

// Position returns the top-left corner as a vector.
func (r Rect[T]) Position() Vec2 {
	return Vec2{X: float64(r.Left), Y: float64(r.Top)}
}

// Size returns the size as a vector.
func (r Rect[T]) Size() Vec2 {
	return Vec2{X: float64(r.Width), Y: float64(r.Height)}
}

// Center returns the center point of the rectangle.
func (r Rect[T]) Center() Vec2 {
	return Vec2{
		X: float64(r.Left) + float64(r.Width)/2,
		Y: float64(r.Top) + float64(r.Height)/2,
	}
}

// normalized returns the min and max corners on both axes.
func (r Rect[T]) normalized() (minX, minY, maxX, maxY T) {
	minX = min(r.Left, r.Left+r.Width)
	maxX = max(r.Left, r.Left+r.Width)
	minY = min(r.Top, r.Top+r.Height)
	maxY = max(r.Top, r.Top+r.Height)
	return minX, minY, maxX, maxY
}

// Contains reports whether (x, y) lies inside the rectangle.
// The interval is half-open: the left and top edges are inside, the right
// and bottom edges are not.
func (r Rect[T]) Contains(x, y T) bool {
	minX, minY, maxX, maxY := r.normalized()
	return x >= minX && x < maxX && y >= minY && y < maxY
}

// Intersects reports whether r and other overlap with a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	_, ok := r.Intersection(other)
	return ok
}

// Intersection returns the overlapping area of r and other.
// If the rectangles do not overlap with a non-zero area, it returns the
// zero rectangle and false.
func (r Rect[T]) Intersection(other Rect[T]) (Rect[T], bool) {
	r1MinX, r1MinY, r1MaxX, r1MaxY := r.normalized()
	r2MinX, r2MinY, r2MaxX, r2MaxY := other.normalized()

	interLeft := max(r1MinX, r2MinX)
	interTop := max(r1MinY, r2MinY)
	interRight := min(r1MaxX, r2MaxX)
	interBottom := min(r1MaxY, r2MaxY)

	if interLeft < interRight && interTop < interBottom {
		return Rect[T]{
			Left:   interLeft,
			Top:    interTop,
			Width:  interRight - interLeft,
			Height: interBottom - interTop,
		}, true
	}
	return Rect[T]{}, false
}

// Equal reports whether the two rectangles have identical components.
func (r Rect[T]) Equal(other Rect[T]) bool {
	return r == other
}

// String returns a human readable form of the rectangle.
func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.Left, r.Top, r.Width, r.Height)
}

// ConvertRect converts a rectangle between scalar types. Conversions from a
// floating point type to an integer type truncate toward zero.
func ConvertRect[To, From Number](r Rect[From]) Rect[To] {
	return Rect[To]{
		Left:   To(r.Left),
		Top:    To(r.Top),
		Width:  To(r.Width),
		Height: To(r.Height),
	}
}

// ToFloatRect widens an IntRect to a FloatRect.
func ToFloatRect(r IntRect) FloatRect {
	return ConvertRect[float64](r)
}

// ToIntRect truncates a FloatRect to an IntRect (no rounding).
func ToIntRect(r FloatRect) IntRect {
	return ConvertRect[int](r)
}

// ImageRect converts an IntRect to an image.Rectangle. Negative sizes are
// normalized by image.Rectangle.Canon.
func ImageRect(r IntRect) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// RectFromImage converts an image.Rectangle to an IntRect.
func RectFromImage(r image.Rectangle) IntRect {
	return IntRect{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
