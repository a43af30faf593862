package gfx

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPrimitiveTypeTopology(t *testing.T) {
	tests := []struct {
		p    PrimitiveType
		want gputypes.PrimitiveTopology
		ok   bool
	}{
		{Points, gputypes.PrimitiveTopologyPointList, true},
		{Lines, gputypes.PrimitiveTopologyLineList, true},
		{LineStrip, gputypes.PrimitiveTopologyLineStrip, true},
		{Triangles, gputypes.PrimitiveTopologyTriangleList, true},
		{TriangleStrip, gputypes.PrimitiveTopologyTriangleStrip, true},
		{TriangleFan, gputypes.PrimitiveTopologyTriangleList, false},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			got, ok := tt.p.Topology()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Topology() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
	if got := PrimitiveType(42).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func verts(pts ...Vec2) []Vertex {
	v := make([]Vertex, len(pts))
	for i, p := range pts {
		v[i].Position = p
	}
	return v
}

func positions(v []Vertex) []Vec2 {
	p := make([]Vec2, len(v))
	for i := range v {
		p[i] = v[i].Position
	}
	return p
}

func TestTriangulate(t *testing.T) {
	a, b, c, d := V2(0, 0), V2(1, 0), V2(1, 1), V2(0, 1)

	tests := []struct {
		name string
		in   []Vertex
		p    PrimitiveType
		want []Vec2
	}{
		{"fan", verts(a, b, c, d), TriangleFan, []Vec2{a, b, c, a, c, d}},
		{"strip", verts(a, b, c, d), TriangleStrip, []Vec2{a, b, c, b, c, d}},
		{"list truncated", verts(a, b, c, d), Triangles, []Vec2{a, b, c}},
		{"short fan", verts(a, b), TriangleFan, nil},
		{"lines", verts(a, b), Lines, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positions(Triangulate(tt.in, tt.p))
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("vertex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVertexArray(t *testing.T) {
	va := NewVertexArray(LineStrip, 2)
	if va.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", va.Len())
	}
	if got := va.Bounds(); got != (FloatRect{}) {
		t.Errorf("Bounds() of zero vertices = %v", got)
	}

	va.Vertices[0].Position = V2(-1, 4)
	va.Append(Vertex{Position: V2(3, -2)})
	if got := va.Bounds(); got != (FloatRect{Left: -1, Top: -2, Width: 4, Height: 6}) {
		t.Errorf("Bounds() = %v", got)
	}

	va.Resize(5)
	if va.Len() != 5 || va.Vertices[4] != (Vertex{}) {
		t.Errorf("Resize(5): len %d last %v", va.Len(), va.Vertices[4])
	}
	va.Resize(1)
	if va.Len() != 1 {
		t.Errorf("Resize(1): len %d", va.Len())
	}

	va.Clear()
	if va.Len() != 0 || va.Bounds() != (FloatRect{}) {
		t.Errorf("after Clear: len %d bounds %v", va.Len(), va.Bounds())
	}

	target := newFakeTarget(10, 10)
	Draw(target, va)
	if len(target.calls) != 0 {
		t.Error("empty vertex array was drawn")
	}
	va.Append(Vertex{}, Vertex{Position: V2(1, 1)})
	Draw(target, va)
	if len(target.calls) != 1 || target.calls[0].prim != LineStrip {
		t.Errorf("calls = %+v", target.calls)
	}
}
