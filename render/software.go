// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/gfx"
)

// imageSource is implemented by textures that can be sampled on the CPU,
// such as *gfx.ImageTexture.
type imageSource interface {
	Image() image.Image
}

// smoothSource is implemented by textures that choose their filtering.
type smoothSource interface {
	Smooth() bool
}

// interpolator picks the sampling filter for tex.
func interpolator(tex gfx.Texture) xdraw.Transformer {
	if s, ok := tex.(smoothSource); ok && s.Smooth() {
		return xdraw.ApproxBiLinear
	}
	return xdraw.NearestNeighbor
}

// softwareRasterizer turns pixel-space vertex batches into coverage masks
// and composites them onto an *image.RGBA.
//
// Every primitive is reduced to triangles. Each triangle is shaded with a
// single color, the average of its vertex colors; consecutive triangles of
// the same color share one coverage pass so that the seams of a triangle
// fan are not visible.
//
// The rasterizer reuses its buffers between calls and is not safe for
// concurrent use.
type softwareRasterizer struct {
	z       vector.Rasterizer
	mask    *image.Alpha
	scratch *image.RGBA
	tris    []gfx.Vertex
}

// draw renders vertices, already mapped to pixel coordinates, into dst.
// Nothing outside clip is touched.
func (r *softwareRasterizer) draw(dst *image.RGBA, clip image.Rectangle, vertices []gfx.Vertex, p gfx.PrimitiveType, states gfx.RenderStates) {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	var tris []gfx.Vertex
	switch p {
	case gfx.Triangles, gfx.TriangleStrip, gfx.TriangleFan:
		tris = gfx.Triangulate(vertices, p)
	case gfx.Lines:
		tris = r.lineTriangles(vertices, 2)
	case gfx.LineStrip:
		tris = r.lineTriangles(vertices, 1)
	case gfx.Points:
		tris = r.pointTriangles(vertices)
	default:
		gfx.Logger().Warn("render: unknown primitive type", "type", p)
		return
	}

	var src image.Image
	if states.Texture != nil {
		if is, ok := states.Texture.(imageSource); ok {
			src = is.Image()
		} else {
			gfx.Logger().Warn("render: texture cannot be sampled, drawing untextured",
				"texture", states.Texture)
		}
	}

	if src != nil && p.IsTriangles() {
		filter := interpolator(states.Texture)
		for i := 0; i+2 < len(tris); i += 3 {
			r.texturedTriangle(dst, clip, tris[i:i+3], src, filter, states.BlendMode)
		}
		return
	}

	for start := 0; start+2 < len(tris); {
		c := flatColor(tris[start : start+3])
		end := start + 3
		for end+2 < len(tris) && flatColor(tris[end:end+3]) == c {
			end += 3
		}
		r.fillTriangles(dst, clip, tris[start:end], c, states.BlendMode)
		start = end
	}
}

// lineTriangles expands segments into one pixel wide quads. step is 2 for
// independent segments and 1 for a strip.
func (r *softwareRasterizer) lineTriangles(vertices []gfx.Vertex, step int) []gfx.Vertex {
	r.tris = r.tris[:0]
	for i := 0; i+1 < len(vertices); i += step {
		a, b := vertices[i].Position, vertices[i+1].Position
		n := b.Sub(a).Perp().Normalize().Mul(0.5)
		if n.IsZero() {
			continue
		}
		c := vertices[i].Color.Lerp(vertices[i+1].Color, 0.5)
		p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
		r.tris = append(r.tris,
			gfx.Vertex{Position: p0, Color: c}, gfx.Vertex{Position: p1, Color: c}, gfx.Vertex{Position: p2, Color: c},
			gfx.Vertex{Position: p0, Color: c}, gfx.Vertex{Position: p2, Color: c}, gfx.Vertex{Position: p3, Color: c},
		)
	}
	return r.tris
}

// pointTriangles expands points into pixel sized squares.
func (r *softwareRasterizer) pointTriangles(vertices []gfx.Vertex) []gfx.Vertex {
	r.tris = r.tris[:0]
	for _, v := range vertices {
		p, c := v.Position, v.Color
		tl := gfx.Vertex{Position: p.Add(gfx.V2(-0.5, -0.5)), Color: c}
		tr := gfx.Vertex{Position: p.Add(gfx.V2(0.5, -0.5)), Color: c}
		br := gfx.Vertex{Position: p.Add(gfx.V2(0.5, 0.5)), Color: c}
		bl := gfx.Vertex{Position: p.Add(gfx.V2(-0.5, 0.5)), Color: c}
		r.tris = append(r.tris, tl, tr, br, tl, br, bl)
	}
	return r.tris
}

func (r *softwareRasterizer) fillTriangles(dst *image.RGBA, clip image.Rectangle, tris []gfx.Vertex, c gfx.Color, blend gfx.BlendMode) {
	bbox := triangleBounds(tris).Intersect(clip)
	if bbox.Empty() {
		return
	}
	mask := r.coverage(bbox, tris)
	composite(dst, bbox, image.NewUniform(c), bbox.Min, mask, blend)
}

func (r *softwareRasterizer) texturedTriangle(dst *image.RGBA, clip image.Rectangle, tri []gfx.Vertex, src image.Image, filter xdraw.Transformer, blend gfx.BlendMode) {
	bbox := triangleBounds(tri).Intersect(clip)
	if bbox.Empty() {
		return
	}

	p := gfx.NewTransform(
		tri[0].Position.X, tri[1].Position.X, tri[2].Position.X,
		tri[0].Position.Y, tri[1].Position.Y, tri[2].Position.Y,
		1, 1, 1,
	)
	uv := gfx.NewTransform(
		tri[0].TexCoords.X, tri[1].TexCoords.X, tri[2].TexCoords.X,
		tri[0].TexCoords.Y, tri[1].TexCoords.Y, tri[2].TexCoords.Y,
		1, 1, 1,
	)
	tint := flatColor(tri)
	if math.Abs(uv.Determinant()) < 1e-10 {
		// Collapsed texture coordinates sample a single texel at best.
		r.fillTriangles(dst, clip, tri, tint, blend)
		return
	}

	sb := src.Bounds()
	m := p.Mul(uv.Inverse()).Mul(gfx.Translation(-float64(sb.Min.X), -float64(sb.Min.Y)))
	s2d := f64.Aff3{m.M00, m.M01, m.M02, m.M10, m.M11, m.M12}

	scratch := r.scratchFor(bbox)
	filter.Transform(scratch, s2d, src, sb, xdraw.Src, nil)
	if tint != gfx.White {
		modulate(scratch, tint)
	}

	mask := r.coverage(bbox, tri)
	composite(dst, bbox, scratch, bbox.Min, mask, blend)
}

// coverage rasterizes tris into an anti-aliased mask covering bbox. The
// mask origin corresponds to bbox.Min.
func (r *softwareRasterizer) coverage(bbox image.Rectangle, tris []gfx.Vertex) *image.Alpha {
	w, h := bbox.Dx(), bbox.Dy()
	r.z.Reset(w, h)
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)

	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i].Position, tris[i+1].Position, tris[i+2].Position
		// Opposite windings would cancel out where triangles overlap.
		if b.Sub(a).Cross(c.Sub(a)) < 0 {
			b, c = c, b
		}
		r.z.MoveTo(float32(a.X-ox), float32(a.Y-oy))
		r.z.LineTo(float32(b.X-ox), float32(b.Y-oy))
		r.z.LineTo(float32(c.X-ox), float32(c.Y-oy))
		r.z.ClosePath()
	}

	mask := r.maskFor(w, h)
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (r *softwareRasterizer) maskFor(w, h int) *image.Alpha {
	if r.mask == nil || cap(r.mask.Pix) < w*h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return r.mask
	}
	r.mask.Pix = r.mask.Pix[:w*h]
	clear(r.mask.Pix)
	r.mask.Stride = w
	r.mask.Rect = image.Rect(0, 0, w, h)
	return r.mask
}

func (r *softwareRasterizer) scratchFor(bbox image.Rectangle) *image.RGBA {
	n := bbox.Dx() * bbox.Dy() * 4
	if r.scratch == nil || cap(r.scratch.Pix) < n {
		r.scratch = image.NewRGBA(bbox)
		return r.scratch
	}
	r.scratch.Pix = r.scratch.Pix[:n]
	clear(r.scratch.Pix)
	r.scratch.Stride = bbox.Dx() * 4
	r.scratch.Rect = bbox
	return r.scratch
}

// triangleBounds returns the pixel rectangle enclosing every vertex.
func triangleBounds(tris []gfx.Vertex) image.Rectangle {
	b := gfx.VertexBounds(tris)
	return image.Rect(
		int(math.Floor(b.Left)),
		int(math.Floor(b.Top)),
		int(math.Ceil(b.Left+b.Width)),
		int(math.Ceil(b.Top+b.Height)),
	)
}

// flatColor returns the average color of a triangle.
func flatColor(tri []gfx.Vertex) gfx.Color {
	a, b, c := tri[0].Color, tri[1].Color, tri[2].Color
	if a == b && b == c {
		return a
	}
	avg := func(x, y, z uint8) uint8 {
		return uint8((int(x) + int(y) + int(z) + 1) / 3)
	}
	return gfx.Color{
		R: avg(a.R, b.R, c.R),
		G: avg(a.G, b.G, c.G),
		B: avg(a.B, b.B, c.B),
		A: avg(a.A, b.A, c.A),
	}
}

// modulate multiplies every premultiplied pixel of img by c.
func modulate(img *image.RGBA, c gfx.Color) {
	ca := uint32(c.A)
	cr := uint32(c.R) * ca / 255
	cg := uint32(c.G) * ca / 255
	cb := uint32(c.B) * ca / 255
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(uint32(img.Pix[i]) * cr / 255)
		img.Pix[i+1] = uint8(uint32(img.Pix[i+1]) * cg / 255)
		img.Pix[i+2] = uint8(uint32(img.Pix[i+2]) * cb / 255)
		img.Pix[i+3] = uint8(uint32(img.Pix[i+3]) * ca / 255)
	}
}
