package gfx

import "math"

// View is a 2D camera: it selects which part of the world is shown and
// where on the target it appears.
//
// The center, size and rotation select the world rectangle. The viewport is
// the part of the target the view is drawn into, as fractions of the target
// size, so (0, 0, 1, 1) covers the whole target.
//
// Like Transformable, View caches its transforms and is not safe for
// concurrent use.
type View struct {
	center   Vec2
	size     Vec2
	rotation float64
	viewport FloatRect

	transform      Transform
	inverse        Transform
	transformDirty bool
	inverseDirty   bool
}

// NewView creates a view centered on center showing a world area of size.
func NewView(center, size Vec2) *View {
	return &View{
		center:         center,
		size:           size,
		viewport:       FloatRect{Width: 1, Height: 1},
		transformDirty: true,
		inverseDirty:   true,
	}
}

// NewViewFromRect creates a view showing exactly r.
func NewViewFromRect(r FloatRect) *View {
	v := NewView(Vec2{}, Vec2{})
	v.Reset(r)
	return v
}

// Clone returns an independent copy of v.
func (v *View) Clone() *View {
	c := *v
	return &c
}

func (v *View) invalidate() {
	v.transformDirty = true
	v.inverseDirty = true
}

// Center returns the center of the view in world coordinates.
func (v *View) Center() Vec2 { return v.center }

// SetCenter sets the center of the view.
func (v *View) SetCenter(c Vec2) {
	v.center = c
	v.invalidate()
}

// Size returns the size of the world area shown.
func (v *View) Size() Vec2 { return v.size }

// SetSize sets the size of the world area shown.
func (v *View) SetSize(s Vec2) {
	v.size = s
	v.invalidate()
}

// Rotation returns the view rotation in degrees, in [0, 360).
func (v *View) Rotation() float64 { return v.rotation }

// SetRotation sets the view rotation in degrees.
func (v *View) SetRotation(angle float64) {
	v.rotation = normalizeAngle(angle)
	v.invalidate()
}

// Viewport returns the target area covered by the view, as fractions of the
// target size.
func (v *View) Viewport() FloatRect { return v.viewport }

// SetViewport sets the target area covered by the view.
func (v *View) SetViewport(r FloatRect) {
	v.viewport = r
}

// Reset makes the view show exactly r, with no rotation.
func (v *View) Reset(r FloatRect) {
	v.center = r.Center()
	v.size = r.Size()
	v.rotation = 0
	v.invalidate()
}

// Move shifts the view center by offset.
func (v *View) Move(offset Vec2) {
	v.SetCenter(v.center.Add(offset))
}

// Rotate adds angle degrees to the view rotation.
func (v *View) Rotate(angle float64) {
	v.SetRotation(v.rotation + angle)
}

// Zoom scales the shown area by factor. Factors above 1 show more of the
// world (zoom out), below 1 less (zoom in).
func (v *View) Zoom(factor float64) {
	v.SetSize(v.size.Mul(factor))
}

// Transform returns the projection from world coordinates to normalized
// device coordinates, where the view area maps to [-1, 1] with y up.
func (v *View) Transform() Transform {
	if v.transformDirty {
		sin, cos := math.Sincos(v.rotation * math.Pi / 180)
		cx, cy := v.center.X, v.center.Y
		tx := -cx*cos - cy*sin + cx
		ty := cx*sin - cy*cos + cy

		a := 2 / v.size.X
		b := -2 / v.size.Y
		c := -a * cx
		d := -b * cy

		v.transform = NewTransform(
			a*cos, a*sin, a*tx+c,
			-b*sin, b*cos, b*ty+d,
			0, 0, 1,
		)
		v.transformDirty = false
	}
	return v.transform
}

// InverseTransform returns the projection from normalized device
// coordinates back to world coordinates.
func (v *View) InverseTransform() Transform {
	if v.inverseDirty {
		v.inverse = v.Transform().Inverse()
		v.inverseDirty = false
	}
	return v.inverse
}

func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
