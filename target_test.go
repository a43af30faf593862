package gfx

import (
	"image"
	"testing"
)

// drawCall is one DrawPrimitives invocation captured by fakeTarget.
type drawCall struct {
	vertices []Vertex
	prim     PrimitiveType
	states   RenderStates
}

// fakeTarget is a RenderTarget that records draw calls.
type fakeTarget struct {
	w, h    int
	view    *View
	cleared []Color
	calls   []drawCall
}

func newFakeTarget(w, h int) *fakeTarget {
	t := &fakeTarget{w: w, h: h}
	t.view = t.DefaultView()
	return t
}

func (t *fakeTarget) Size() (int, int) { return t.w, t.h }
func (t *fakeTarget) View() *View      { return t.view }
func (t *fakeTarget) SetView(v *View) {
	if v == nil {
		v = t.DefaultView()
	}
	t.view = v.Clone()
}

func (t *fakeTarget) Clear(c Color) { t.cleared = append(t.cleared, c) }
func (t *fakeTarget) DefaultView() *View {
	return NewViewFromRect(FloatRect{Width: float64(t.w), Height: float64(t.h)})
}

func (t *fakeTarget) DrawPrimitives(v []Vertex, p PrimitiveType, s RenderStates) {
	t.calls = append(t.calls, drawCall{vertices: append([]Vertex(nil), v...), prim: p, states: s})
}

func TestDefaultRenderStates(t *testing.T) {
	s := DefaultRenderStates()
	if !s.Transform.IsIdentity() {
		t.Errorf("Transform = %v, want identity", s.Transform)
	}
	if s.BlendMode != BlendAlpha {
		t.Errorf("BlendMode = %+v, want BlendAlpha", s.BlendMode)
	}
	if s.Texture != nil {
		t.Errorf("Texture = %v, want nil", s.Texture)
	}
}

func TestImageTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 42, 36))
	tex := NewImageTexture(img)
	w, h := tex.Size()
	if w != 32 || h != 16 {
		t.Errorf("Size() = %d,%d, want 32,16", w, h)
	}
	if tex.Image() != img {
		t.Error("Image() does not return the wrapped image")
	}
	if tex.Smooth() {
		t.Error("textures should not be smooth by default")
	}
	tex.SetSmooth(true)
	if !tex.Smooth() {
		t.Error("SetSmooth(true) had no effect")
	}
}

func TestViewportRounding(t *testing.T) {
	target := newFakeTarget(101, 51)
	v := target.DefaultView()
	v.SetViewport(FloatRect{Left: 0.5, Top: 0, Width: 0.5, Height: 0.5})

	got := Viewport(target, v)
	want := IntRect{Left: 51, Top: 0, Width: 51, Height: 26}
	if got != want {
		t.Errorf("Viewport = %v, want %v", got, want)
	}
}

func TestMapPixelCoordsDefaultView(t *testing.T) {
	target := newFakeTarget(200, 100)

	tests := []struct {
		px, py int
		want   Vec2
	}{
		{0, 0, V2(0, 0)},
		{100, 50, V2(100, 50)},
		{200, 100, V2(200, 100)},
		{25, 75, V2(25, 75)},
	}
	for _, tt := range tests {
		got := MapPixelToCoords(target, tt.px, tt.py, nil)
		if !got.Approx(tt.want, 1e-9) {
			t.Errorf("MapPixelToCoords(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
		x, y := MapCoordsToPixel(target, tt.want, nil)
		if x != tt.px || y != tt.py {
			t.Errorf("MapCoordsToPixel(%v) = %d,%d, want %d,%d", tt.want, x, y, tt.px, tt.py)
		}
	}
}

func TestMapPixelToCoordsZoomedView(t *testing.T) {
	target := newFakeTarget(200, 200)
	v := NewView(V2(0, 0), V2(100, 100))
	target.SetView(v)

	got := MapPixelToCoords(target, 0, 0, nil)
	if !got.Approx(V2(-50, -50), 1e-9) {
		t.Errorf("top-left pixel = %v, want (-50,-50)", got)
	}
	got = MapPixelToCoords(target, 100, 100, nil)
	if !got.Approx(V2(0, 0), 1e-9) {
		t.Errorf("center pixel = %v, want (0,0)", got)
	}
}

func TestPixelTransformMatchesMapCoords(t *testing.T) {
	target := newFakeTarget(320, 240)
	v := NewView(V2(10, 20), V2(160, 120))
	v.SetRotation(30)
	v.SetViewport(FloatRect{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5})

	pt := PixelTransform(target, v)
	vp := ToFloatRect(Viewport(target, v))
	for _, p := range []Vec2{V2(10, 20), V2(0, 0), V2(-40, 35)} {
		n := v.Transform().TransformPoint(p)
		want := V2((n.X+1)/2*vp.Width+vp.Left, (-n.Y+1)/2*vp.Height+vp.Top)
		if got := pt.TransformPoint(p); !got.Approx(want, 1e-9) {
			t.Errorf("PixelTransform(%v) = %v, want %v", p, got, want)
		}
	}
	if got := pt.TransformPoint(V2(10, 20)); !got.Approx(V2(160, 120), 1e-9) {
		t.Errorf("view center maps to %v, want viewport center (160,120)", got)
	}
}

func TestDrawUsesDefaultStates(t *testing.T) {
	target := newFakeTarget(10, 10)
	va := &VertexArray{Primitive: Lines, Vertices: []Vertex{{Position: V2(0, 0)}, {Position: V2(1, 1)}}}
	Draw(target, va)

	if len(target.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(target.calls))
	}
	c := target.calls[0]
	if c.prim != Lines || len(c.vertices) != 2 {
		t.Errorf("call = %v %d vertices", c.prim, len(c.vertices))
	}
	if !c.states.Transform.IsIdentity() || c.states.BlendMode != BlendAlpha {
		t.Errorf("states = %+v", c.states)
	}
}
