package gfx

import (
	"fmt"
	"math"
)

// DefaultCirclePointCount is the number of points used to approximate a
// circle when no count is given.
const DefaultCirclePointCount = 30

// Geometry generates the ordered outline points of a shape in local
// coordinates.
//
// Point panics if i is outside [0, PointCount()).
type Geometry interface {
	PointCount() int
	Point(i int) Vec2
}

// Circle approximates a circle with Count evenly spaced points.
// The first point is at the top of the circle and points advance clockwise
// on a y-down screen. The circle's bounding box has its top-left corner at
// local (0, 0), so its center is at (Radius, Radius).
//
// Counts below 3 are accepted and produce a degenerate outline. A negative
// Count behaves like zero.
type Circle struct {
	Radius float64
	Count  int
}

// PointCount returns Count, or 0 when Count is negative.
func (c Circle) PointCount() int { return max(c.Count, 0) }

// Point returns the i-th point of the circle.
func (c Circle) Point(i int) Vec2 {
	checkIndex("circle", i, c.PointCount())
	angle := float64(i)*2*math.Pi/float64(c.Count) - math.Pi/2
	sin, cos := math.Sincos(angle)
	return Vec2{X: c.Radius + c.Radius*cos, Y: c.Radius + c.Radius*sin}
}

// Rectangle is an axis-aligned box with its top-left corner at local (0, 0).
// It always has four points, even when Size is zero.
type Rectangle struct {
	Size Vec2
}

// PointCount always returns 4.
func (r Rectangle) PointCount() int { return 4 }

// Point returns the corners in order: top-left, top-right, bottom-right,
// bottom-left.
func (r Rectangle) Point(i int) Vec2 {
	switch i {
	case 0:
		return Vec2{}
	case 1:
		return Vec2{X: r.Size.X}
	case 2:
		return r.Size
	case 3:
		return Vec2{Y: r.Size.Y}
	}
	panic(indexError("rectangle", i, 4))
}

// Convex is an explicit, ordered list of points. The points must describe a
// convex polygon in clockwise or counter-clockwise order to render
// correctly; this is not validated.
type Convex struct {
	Points []Vec2
}

// PointCount returns the number of points.
func (c Convex) PointCount() int { return len(c.Points) }

// Point returns the i-th point.
func (c Convex) Point(i int) Vec2 {
	checkIndex("convex polygon", i, len(c.Points))
	return c.Points[i]
}

// GeometryBounds returns the smallest rectangle enclosing every point of g.
// A geometry with no points has zero bounds.
func GeometryBounds(g Geometry) FloatRect {
	n := g.PointCount()
	if n <= 0 {
		return FloatRect{}
	}

	lo := g.Point(0)
	hi := lo
	for i := 1; i < n; i++ {
		p := g.Point(i)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return FloatRect{Left: lo.X, Top: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// GeometryPoints collects all points of g into a new slice.
func GeometryPoints(g Geometry) []Vec2 {
	pts := make([]Vec2, max(g.PointCount(), 0))
	for i := range pts {
		pts[i] = g.Point(i)
	}
	return pts
}

func checkIndex(kind string, i, n int) {
	if i < 0 || i >= n {
		panic(indexError(kind, i, n))
	}
}

func indexError(kind string, i, n int) string {
	return fmt.Sprintf("gfx: %s point index %d out of range [0, %d)", kind, i, n)
}
