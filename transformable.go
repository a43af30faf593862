package gfx

import "math"

// Transformable holds the position, rotation, scale and origin of an entity
// and derives its Transform from them.
//
// The transform and its inverse are computed lazily: every setter marks both
// as stale and the next call to Transform or InverseTransform recomputes
// them. Transformable is not safe for concurrent use; a value shared between
// goroutines must be guarded by the caller, since even the getters write to
// the cache.
//
// The zero value has a zero scale. Use NewTransformable, or embed a value
// obtained from it.
type Transformable struct {
	origin   Vec2
	position Vec2
	rotation float64
	scale    Vec2

	transform      Transform
	inverse        Transform
	transformDirty bool
	inverseDirty   bool
}

// NewTransformable returns a Transformable with origin (0,0), position
// (0,0), rotation 0 and scale (1,1).
func NewTransformable() Transformable {
	return Transformable{
		scale:          Vec2{X: 1, Y: 1},
		transformDirty: true,
		inverseDirty:   true,
	}
}

// Clone returns a copy holding the same origin, position, rotation and
// scale. The cached transforms are not copied.
func (t *Transformable) Clone() Transformable {
	return Transformable{
		origin:         t.origin,
		position:       t.position,
		rotation:       t.rotation,
		scale:          t.scale,
		transformDirty: true,
		inverseDirty:   true,
	}
}

func (t *Transformable) invalidate() {
	t.transformDirty = true
	t.inverseDirty = true
}

// Position returns the position of the origin in the parent coordinate space.
func (t *Transformable) Position() Vec2 { return t.position }

// SetPosition sets the position.
func (t *Transformable) SetPosition(p Vec2) {
	t.position = p
	t.invalidate()
}

// Rotation returns the rotation in degrees. The value is never normalized.
func (t *Transformable) Rotation() float64 { return t.rotation }

// SetRotation sets the rotation in degrees. Positive angles rotate clockwise
// on a y-down screen.
func (t *Transformable) SetRotation(angle float64) {
	t.rotation = angle
	t.invalidate()
}

// Scale returns the scale factors.
func (t *Transformable) Scale() Vec2 { return t.scale }

// SetScale sets the scale factors.
func (t *Transformable) SetScale(s Vec2) {
	t.scale = s
	t.invalidate()
}

// Origin returns the local point that position, rotation and scale are
// applied around.
func (t *Transformable) Origin() Vec2 { return t.origin }

// SetOrigin sets the local origin.
func (t *Transformable) SetOrigin(o Vec2) {
	t.origin = o
	t.invalidate()
}

// Move adds offset to the position.
func (t *Transformable) Move(offset Vec2) {
	t.SetPosition(t.position.Add(offset))
}

// Rotate adds angle degrees to the rotation.
func (t *Transformable) Rotate(angle float64) {
	t.SetRotation(t.rotation + angle)
}

// ScaleBy multiplies the scale component-wise by factors.
func (t *Transformable) ScaleBy(factors Vec2) {
	t.SetScale(t.scale.MulVec(factors))
}

// Transform returns the combined transform: scale and rotate around the
// origin, then translate the origin to the position. It equals
//
//	Translation(position) · Rotation(rotation) · Scaling(scale) · Translation(-origin)
func (t *Transformable) Transform() Transform {
	if t.transformDirty {
		angle := -t.rotation * math.Pi / 180
		sin, cos := math.Sincos(angle)
		sxc := t.scale.X * cos
		syc := t.scale.Y * cos
		sxs := t.scale.X * sin
		sys := t.scale.Y * sin
		tx := -t.origin.X*sxc - t.origin.Y*sys + t.position.X
		ty := t.origin.X*sxs - t.origin.Y*syc + t.position.Y

		t.transform = Transform{
			M00: sxc, M01: sys, M02: tx,
			M10: -sxs, M11: syc, M12: ty,
			M20: 0, M21: 0, M22: 1,
		}
		t.transformDirty = false
	}
	return t.transform
}

// InverseTransform returns the inverse of Transform. It is the identity
// when the transform is not invertible (for example a zero scale).
func (t *Transformable) InverseTransform() Transform {
	if t.inverseDirty {
		t.inverse = t.Transform().Inverse()
		t.inverseDirty = false
	}
	return t.inverse
}
