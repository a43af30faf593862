package gfx

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
)

// Texture is an image that can be mapped onto shapes and sprites. Only its
// pixel size is needed to compute texture coordinates; rendering backends
// type-assert to the concrete type they can sample.
type Texture interface {
	Size() (width, height int)
}

// ImageTexture is a Texture backed by an in-memory image.
type ImageTexture struct {
	img    image.Image
	smooth bool
}

// NewImageTexture wraps img as a texture. The image bounds origin is
// treated as texel (0, 0).
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

// Size returns the image dimensions.
func (t *ImageTexture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the wrapped image.
func (t *ImageTexture) Image() image.Image {
	return t.img
}

// Smooth reports whether the texture is sampled with bilinear filtering.
func (t *ImageTexture) Smooth() bool {
	return t.smooth
}

// SetSmooth enables or disables bilinear filtering. Textures are sampled
// nearest-neighbor by default, so pixel art stays sharp when scaled.
func (t *ImageTexture) SetSmooth(smooth bool) {
	t.smooth = smooth
}

// BlendMode describes how drawn pixels combine with the pixels already in
// the target. It is the GPU blend state, so render states can be handed to a
// GPU pipeline unchanged.
type BlendMode = gputypes.BlendState

// Predefined blend modes.
var (
	// BlendAlpha blends pixels by their alpha (source over).
	BlendAlpha = gputypes.BlendStateAlpha()

	// BlendAdd adds the source, weighted by its alpha, to the destination.
	BlendAdd = BlendMode{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	// BlendMultiply multiplies the source and destination colors.
	BlendMultiply = BlendMode{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorDst,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorDst,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	// BlendNone overwrites the destination.
	BlendNone = gputypes.BlendStateReplace()
)

// RenderStates are the parameters of a single draw call.
type RenderStates struct {
	Transform Transform
	BlendMode BlendMode
	Texture   Texture
}

// DefaultRenderStates returns identity transform, alpha blending and no
// texture.
func DefaultRenderStates() RenderStates {
	return RenderStates{
		Transform: Identity(),
		BlendMode: BlendAlpha,
	}
}

// Drawable is anything that can draw itself onto a RenderTarget.
type Drawable interface {
	Draw(target RenderTarget, states RenderStates)
}

// RenderTarget receives vertex batches. It is the boundary between the
// geometry in this package and whatever rasterizes it: a software canvas, a
// recorder or a GPU backend.
type RenderTarget interface {
	// Size returns the target size in pixels.
	Size() (width, height int)
	// View returns the current view.
	View() *View
	// SetView replaces the current view. The target keeps a copy. A nil
	// view restores the default view.
	SetView(v *View)
	// DefaultView returns the view covering the whole target one-to-one.
	DefaultView() *View
	// Clear fills the whole target with c.
	Clear(c Color)
	// DrawPrimitives draws vertices assembled as p. The vertex positions are
	// transformed by states.Transform and then by the current view.
	DrawPrimitives(vertices []Vertex, p PrimitiveType, states RenderStates)
}

// Draw draws d onto target with default render states.
func Draw(target RenderTarget, d Drawable) {
	d.Draw(target, DefaultRenderStates())
}

// Viewport returns the pixel rectangle of target covered by view.
func Viewport(target RenderTarget, view *View) IntRect {
	w, h := target.Size()
	vp := view.Viewport()
	fw, fh := float64(w), float64(h)
	return IntRect{
		Left:   int(0.5 + fw*vp.Left),
		Top:    int(0.5 + fh*vp.Top),
		Width:  int(0.5 + fw*vp.Width),
		Height: int(0.5 + fh*vp.Height),
	}
}

// MapPixelToCoords converts a target pixel to world coordinates through
// view. A nil view means the target's current view.
func MapPixelToCoords(target RenderTarget, px, py int, view *View) Vec2 {
	if view == nil {
		view = target.View()
	}
	vp := Viewport(target, view)
	n := Vec2{
		X: -1 + 2*float64(px-vp.Left)/float64(vp.Width),
		Y: 1 - 2*float64(py-vp.Top)/float64(vp.Height),
	}
	return view.InverseTransform().TransformPoint(n)
}

// MapCoordsToPixel converts world coordinates to a target pixel through
// view. A nil view means the target's current view.
func MapCoordsToPixel(target RenderTarget, p Vec2, view *View) (x, y int) {
	if view == nil {
		view = target.View()
	}
	n := view.Transform().TransformPoint(p)
	vp := Viewport(target, view)
	x = int(math.Floor((n.X+1)/2*float64(vp.Width) + float64(vp.Left)))
	y = int(math.Floor((-n.Y+1)/2*float64(vp.Height) + float64(vp.Top)))
	return x, y
}

// PixelTransform returns the transform from world coordinates to target
// pixels for view: the view projection followed by the viewport mapping.
// Rasterizing targets apply it after the per-draw transform.
func PixelTransform(target RenderTarget, view *View) Transform {
	vp := ToFloatRect(Viewport(target, view))
	ndc := NewTransform(
		vp.Width/2, 0, vp.Left+vp.Width/2,
		0, -vp.Height/2, vp.Top+vp.Height/2,
		0, 0, 1,
	)
	return ndc.Mul(view.Transform())
}
