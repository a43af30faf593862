package gfx

import "github.com/gogpu/gputypes"

// Vertex is a point with a color and texture coordinates, the unit of data
// handed to a RenderTarget.
type Vertex struct {
	Position  Vec2
	Color     Color
	TexCoords Vec2
}

// PrimitiveType describes how a sequence of vertices is assembled into
// points, lines or triangles.
type PrimitiveType uint8

const (
	// Points draws each vertex as a single point.
	Points PrimitiveType = iota
	// Lines draws each pair of vertices as an independent segment.
	Lines
	// LineStrip draws a connected polyline.
	LineStrip
	// Triangles draws each group of three vertices as a triangle.
	Triangles
	// TriangleStrip draws triangles sharing an edge with the previous one.
	TriangleStrip
	// TriangleFan draws triangles sharing the first vertex.
	TriangleFan
)

var primitiveTypeNames = [...]string{
	Points:        "Points",
	Lines:         "Lines",
	LineStrip:     "LineStrip",
	Triangles:     "Triangles",
	TriangleStrip: "TriangleStrip",
	TriangleFan:   "TriangleFan",
}

// String returns the name of the primitive type.
func (p PrimitiveType) String() string {
	if int(p) < len(primitiveTypeNames) {
		return primitiveTypeNames[p]
	}
	return "Unknown"
}

// Topology returns the GPU primitive topology for p. Triangle fans have no
// GPU equivalent; for them ok is false and callers should Triangulate first.
func (p PrimitiveType) Topology() (topology gputypes.PrimitiveTopology, ok bool) {
	switch p {
	case Points:
		return gputypes.PrimitiveTopologyPointList, true
	case Lines:
		return gputypes.PrimitiveTopologyLineList, true
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case Triangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	}
	return gputypes.PrimitiveTopologyTriangleList, false
}

// IsTriangles reports whether p assembles triangles.
func (p PrimitiveType) IsTriangles() bool {
	return p == Triangles || p == TriangleStrip || p == TriangleFan
}

// Triangulate expands a triangle strip or fan into an independent triangle
// list. Triangles are returned as-is (truncated to a multiple of three);
// other primitive types return nil.
func Triangulate(vertices []Vertex, p PrimitiveType) []Vertex {
	n := len(vertices)
	switch p {
	case Triangles:
		return vertices[:n-n%3]
	case TriangleStrip:
		if n < 3 {
			return nil
		}
		out := make([]Vertex, 0, (n-2)*3)
		for i := 0; i+2 < n; i++ {
			out = append(out, vertices[i], vertices[i+1], vertices[i+2])
		}
		return out
	case TriangleFan:
		if n < 3 {
			return nil
		}
		out := make([]Vertex, 0, (n-2)*3)
		for i := 1; i+1 < n; i++ {
			out = append(out, vertices[0], vertices[i], vertices[i+1])
		}
		return out
	}
	return nil
}

// VertexBounds returns the bounding rectangle of the vertex positions.
// An empty slice has zero bounds.
func VertexBounds(vertices []Vertex) FloatRect {
	if len(vertices) == 0 {
		return FloatRect{}
	}
	lo := vertices[0].Position
	hi := lo
	for _, v := range vertices[1:] {
		lo = lo.Min(v.Position)
		hi = hi.Max(v.Position)
	}
	return FloatRect{Left: lo.X, Top: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// VertexArray is a growable list of vertices drawn with a single primitive
// type. It implements Drawable.
type VertexArray struct {
	Primitive PrimitiveType
	Vertices  []Vertex
}

// NewVertexArray creates a vertex array with count zero-valued vertices.
func NewVertexArray(p PrimitiveType, count int) *VertexArray {
	return &VertexArray{Primitive: p, Vertices: make([]Vertex, count)}
}

// Len returns the number of vertices.
func (va *VertexArray) Len() int { return len(va.Vertices) }

// Append adds a vertex at the end.
func (va *VertexArray) Append(v ...Vertex) {
	va.Vertices = append(va.Vertices, v...)
}

// Resize grows or shrinks the array to count vertices. New vertices are zero.
func (va *VertexArray) Resize(count int) {
	if count <= len(va.Vertices) {
		va.Vertices = va.Vertices[:count]
		return
	}
	va.Vertices = append(va.Vertices, make([]Vertex, count-len(va.Vertices))...)
}

// Clear removes all vertices, keeping the allocated storage.
func (va *VertexArray) Clear() {
	va.Vertices = va.Vertices[:0]
}

// Bounds returns the bounding rectangle of all vertex positions.
func (va *VertexArray) Bounds() FloatRect {
	return VertexBounds(va.Vertices)
}

// Draw submits the vertices to target.
func (va *VertexArray) Draw(target RenderTarget, states RenderStates) {
	if len(va.Vertices) == 0 {
		return
	}
	target.DrawPrimitives(va.Vertices, va.Primitive, states)
}
