package gfx

import (
	"fmt"
	"math"
)

// singularEpsilon is the determinant magnitude below which a transform is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Transform is a 3x3 homogeneous 2D affine transformation matrix stored in
// row-major order:
//
//	| M00  M01  M02 |
//	| M10  M11  M12 |
//	| M20  M21  M22 |
//
// A point is transformed as:
//
//	x' = M00*x + M01*y + M02
//	y' = M10*x + M11*y + M12
//
// The bottom row is [0 0 1] for every transform built by this package, but
// it is stored explicitly so that Combine is a plain 3x3 product.
//
// Transform is a value type. Two transforms compare equal with == only when
// every coefficient is bit-for-bit equal, so equality is sensitive to the
// order in which operations were applied.
//
// Angles are in degrees. With the y axis pointing down, a positive angle
// rotates clockwise on screen.
type Transform struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// NewTransform creates a transform from its nine coefficients.
func NewTransform(a00, a01, a02, a10, a11, a12, a20, a21, a22 float64) Transform {
	return Transform{
		M00: a00, M01: a01, M02: a02,
		M10: a10, M11: a11, M12: a12,
		M20: a20, M21: a21, M22: a22,
	}
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		M00: 1, M01: 0, M02: 0,
		M10: 0, M11: 1, M12: 0,
		M20: 0, M21: 0, M22: 1,
	}
}

// Translation returns a pure translation transform.
func Translation(x, y float64) Transform {
	return Transform{
		M00: 1, M01: 0, M02: x,
		M10: 0, M11: 1, M12: y,
		M20: 0, M21: 0, M22: 1,
	}
}

// Rotation returns a rotation transform around the origin (angle in degrees).
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Transform{
		M00: cos, M01: -sin, M02: 0,
		M10: sin, M11: cos, M12: 0,
		M20: 0, M21: 0, M22: 1,
	}
}

// Scaling returns a scaling transform around the origin.
func Scaling(sx, sy float64) Transform {
	return Transform{
		M00: sx, M01: 0, M02: 0,
		M10: 0, M11: sy, M12: 0,
		M20: 0, M21: 0, M22: 1,
	}
}

// Mul returns the matrix product t · other. Transforming a point with the
// result applies other first, then t.
func (t Transform) Mul(other Transform) Transform {
	a, b := t, other
	return Transform{
		M00: a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		M01: a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		M02: a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,

		M10: a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		M11: a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		M12: a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,

		M20: a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		M21: a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		M22: a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}

// Combine replaces t with t · other and returns t for chaining.
//
//	var tr gfx.Transform = gfx.Identity()
//	tr.Translate(100, 50).Rotate(30).Scale(2, 2)
func (t *Transform) Combine(other Transform) *Transform {
	*t = t.Mul(other)
	return t
}

// Translate combines t with a translation.
func (t *Transform) Translate(x, y float64) *Transform {
	return t.Combine(Translation(x, y))
}

// Rotate combines t with a rotation around the origin (degrees).
func (t *Transform) Rotate(angle float64) *Transform {
	return t.Combine(Rotation(angle))
}

// RotateAround combines t with a rotation around (cx, cy) (degrees).
//
// The result equals Translate(cx, cy).Rotate(angle).Translate(-cx, -cy),
// which moves points by -c, rotates them and moves them back by +c, collapsed
// into a single combine.
func (t *Transform) RotateAround(angle, cx, cy float64) *Transform {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return t.Combine(Transform{
		M00: cos, M01: -sin, M02: cx*(1-cos) + cy*sin,
		M10: sin, M11: cos, M12: cy*(1-cos) - cx*sin,
		M20: 0, M21: 0, M22: 1,
	})
}

// Scale combines t with a scaling around the origin.
func (t *Transform) Scale(sx, sy float64) *Transform {
	return t.Combine(Scaling(sx, sy))
}

// ScaleAround combines t with a scaling around (cx, cy).
// The result equals Translate(cx, cy).Scale(sx, sy).Translate(-cx, -cy).
func (t *Transform) ScaleAround(sx, sy, cx, cy float64) *Transform {
	return t.Combine(Transform{
		M00: sx, M01: 0, M02: cx * (1 - sx),
		M10: 0, M11: sy, M12: cy * (1 - sy),
		M20: 0, M21: 0, M22: 1,
	})
}

// TransformPoint applies the transformation to a point.
func (t Transform) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: t.M00*p.X + t.M01*p.Y + t.M02,
		Y: t.M10*p.X + t.M11*p.Y + t.M12,
	}
}

// TransformVector applies the linear part of the transformation (no translation).
func (t Transform) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: t.M00*v.X + t.M01*v.Y,
		Y: t.M10*v.X + t.M11*v.Y,
	}
}

// TransformRect returns the axis-aligned bounding rectangle of r after the
// transformation.
//
// Transforms without rotation or shear map each edge directly, so the
// identity returns r unchanged and a rect with a negative size keeps its
// sign. Otherwise the four corners are transformed and their bounds are
// returned with a non-negative size; when t rotates by an angle that is not
// a multiple of 90 degrees the result is larger than the rotated rectangle.
func (t Transform) TransformRect(r FloatRect) FloatRect {
	if t.M01 == 0 && t.M10 == 0 {
		left, width := mapSpan(t.M00, t.M02, r.Left, r.Width)
		top, height := mapSpan(t.M11, t.M12, r.Top, r.Height)
		return FloatRect{Left: left, Top: top, Width: width, Height: height}
	}

	corners := [4]Vec2{
		t.TransformPoint(Vec2{X: r.Left, Y: r.Top}),
		t.TransformPoint(Vec2{X: r.Left, Y: r.Top + r.Height}),
		t.TransformPoint(Vec2{X: r.Left + r.Width, Y: r.Top}),
		t.TransformPoint(Vec2{X: r.Left + r.Width, Y: r.Top + r.Height}),
	}

	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	return FloatRect{Left: lo.X, Top: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// mapSpan scales and offsets the interval [start, start+size] along one
// axis. A negative scale swaps the ends so the size keeps its sign.
func mapSpan(scale, offset, start, size float64) (float64, float64) {
	start = scale*start + offset
	size *= scale
	if scale < 0 {
		start += size
		size = -size
	}
	return start, size
}

// Determinant returns the determinant of the full 3x3 matrix.
func (t Transform) Determinant() float64 {
	return t.M00*(t.M22*t.M11-t.M21*t.M12) -
		t.M10*(t.M22*t.M01-t.M21*t.M02) +
		t.M20*(t.M12*t.M01-t.M11*t.M02)
}

// Inverse returns the inverse transform.
// Returns the identity transform if t is not invertible (determinant near
// zero, NaN or infinite).
func (t Transform) Inverse() Transform {
	det := t.Determinant()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity()
	}

	invDet := 1.0 / det
	return Transform{
		M00: (t.M22*t.M11 - t.M21*t.M12) * invDet,
		M01: -(t.M22*t.M01 - t.M21*t.M02) * invDet,
		M02: (t.M12*t.M01 - t.M11*t.M02) * invDet,

		M10: -(t.M22*t.M10 - t.M20*t.M12) * invDet,
		M11: (t.M22*t.M00 - t.M20*t.M02) * invDet,
		M12: -(t.M12*t.M00 - t.M10*t.M02) * invDet,

		M20: (t.M21*t.M10 - t.M20*t.M11) * invDet,
		M21: -(t.M21*t.M00 - t.M20*t.M01) * invDet,
		M22: (t.M11*t.M00 - t.M10*t.M01) * invDet,
	}
}

// Equal reports whether every coefficient of t equals the one in other.
// No tolerance is applied.
func (t Transform) Equal(other Transform) bool {
	return t == other
}

// Approx reports whether every coefficient of t is within epsilon of the
// one in other.
func (t Transform) Approx(other Transform, epsilon float64) bool {
	a, b := t.coefficients(), other.coefficients()
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// IsIdentity returns true if t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsTranslation returns true if t only translates.
func (t Transform) IsTranslation() bool {
	return t.M00 == 1 && t.M01 == 0 && t.M10 == 0 && t.M11 == 1 &&
		t.M20 == 0 && t.M21 == 0 && t.M22 == 1
}

// Matrix4 returns the transform as a column-major 4x4 matrix, the layout
// expected by GPU uniform buffers.
func (t Transform) Matrix4() [16]float32 {
	return [16]float32{
		float32(t.M00), float32(t.M10), 0, float32(t.M20),
		float32(t.M01), float32(t.M11), 0, float32(t.M21),
		0, 0, 1, 0,
		float32(t.M02), float32(t.M12), 0, float32(t.M22),
	}
}

func (t Transform) coefficients() [9]float64 {
	return [9]float64{
		t.M00, t.M01, t.M02,
		t.M10, t.M11, t.M12,
		t.M20, t.M21, t.M22,
	}
}

// String returns the coefficients in row-major order.
func (t Transform) String() string {
	return fmt.Sprintf("Transform[%g %g %g; %g %g %g; %g %g %g]",
		t.M00, t.M01, t.M02,
		t.M10, t.M11, t.M12,
		t.M20, t.M21, t.M22)
}
