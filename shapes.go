package gfx

// CircleShape is a circle approximated by a regular polygon. With a small
// point count it draws regular polygons: 3 for a triangle, 6 for a hexagon.
type CircleShape struct {
	Shape
	circle Circle
}

// NewCircleShape creates a circle of the given radius. The point count
// defaults to DefaultCirclePointCount and can be set with WithPointCount.
func NewCircleShape(radius float64, opts ...ShapeOption) *CircleShape {
	o := applyShapeOptions(opts)
	c := &CircleShape{circle: Circle{Radius: radius, Count: max(o.pointCount, 0)}}
	c.Shape = newShape(c.circle, o)
	c.checkCount()
	return c
}

// Radius returns the radius.
func (c *CircleShape) Radius() float64 { return c.circle.Radius }

// SetRadius sets the radius.
func (c *CircleShape) SetRadius(r float64) {
	c.circle.Radius = r
	c.setGeometry(c.circle)
}

// SetPointCount sets the number of points approximating the circle.
// Negative counts are treated as zero.
func (c *CircleShape) SetPointCount(n int) {
	c.circle.Count = max(n, 0)
	c.setGeometry(c.circle)
	c.checkCount()
}

func (c *CircleShape) checkCount() {
	if c.circle.Count < 3 {
		Logger().Debug("gfx: degenerate circle, nothing will be drawn",
			"points", c.circle.Count, "radius", c.circle.Radius)
	}
}

// Clone returns an independent copy of the circle.
func (c *CircleShape) Clone() *CircleShape {
	return &CircleShape{Shape: *c.Shape.Clone(), circle: c.circle}
}

// RectangleShape is an axis-aligned rectangle in local coordinates.
type RectangleShape struct {
	Shape
	rect Rectangle
}

// NewRectangleShape creates a rectangle of the given size with its top-left
// corner at the local origin.
func NewRectangleShape(size Vec2, opts ...ShapeOption) *RectangleShape {
	r := &RectangleShape{rect: Rectangle{Size: size}}
	r.Shape = newShape(r.rect, applyShapeOptions(opts))
	return r
}

// Size returns the rectangle size.
func (r *RectangleShape) Size() Vec2 { return r.rect.Size }

// SetSize sets the rectangle size.
func (r *RectangleShape) SetSize(size Vec2) {
	r.rect.Size = size
	r.setGeometry(r.rect)
}

// Clone returns an independent copy of the rectangle.
func (r *RectangleShape) Clone() *RectangleShape {
	return &RectangleShape{Shape: *r.Shape.Clone(), rect: r.rect}
}

// ConvexShape is a convex polygon defined point by point.
type ConvexShape struct {
	Shape
	poly Convex
}

// NewConvexShape creates a polygon from points. The points are copied.
func NewConvexShape(points []Vec2, opts ...ShapeOption) *ConvexShape {
	c := &ConvexShape{poly: Convex{Points: append([]Vec2(nil), points...)}}
	c.Shape = newShape(c.poly, applyShapeOptions(opts))
	return c
}

// SetPointCount resizes the polygon. New points are at the local origin.
// Negative counts are treated as zero.
func (c *ConvexShape) SetPointCount(n int) {
	n = max(n, 0)
	if n <= len(c.poly.Points) {
		c.poly.Points = c.poly.Points[:n]
	} else {
		c.poly.Points = append(c.poly.Points, make([]Vec2, n-len(c.poly.Points))...)
	}
	c.setGeometry(c.poly)
}

// SetPoint sets the i-th point. It panics if i is out of range.
func (c *ConvexShape) SetPoint(i int, p Vec2) {
	checkIndex("convex polygon", i, len(c.poly.Points))
	c.poly.Points[i] = p
	c.setGeometry(c.poly)
}

// SetPoints replaces all points. The points are copied.
func (c *ConvexShape) SetPoints(points []Vec2) {
	c.poly.Points = append(c.poly.Points[:0], points...)
	c.setGeometry(c.poly)
}

// Points returns a copy of the points.
func (c *ConvexShape) Points() []Vec2 {
	return append([]Vec2(nil), c.poly.Points...)
}

// Clone returns an independent copy of the polygon.
func (c *ConvexShape) Clone() *ConvexShape {
	cl := &ConvexShape{Shape: *c.Shape.Clone(), poly: Convex{Points: c.Points()}}
	cl.setGeometry(cl.poly)
	return cl
}
