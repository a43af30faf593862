package gfx

// Shape is a filled convex polygon with an optional outline and texture,
// built from a Geometry. CircleShape, RectangleShape and ConvexShape wrap
// it with the matching geometry; NewShape accepts any Geometry.
//
// The fill is rendered as a triangle fan around the center of the shape's
// bounds and the outline as a triangle strip. Both are rebuilt lazily after
// any change to the geometry, colors, outline thickness or texture rect.
//
// Shape is not safe for concurrent use.
type Shape struct {
	Transformable

	geometry         Geometry
	fillColor        Color
	outlineColor     Color
	outlineThickness float64
	texture          Texture
	textureRect      IntRect

	vertices     []Vertex
	outline      []Vertex
	insideBounds FloatRect
	bounds       FloatRect
	dirty        bool
}

// NewShape creates a shape from an arbitrary geometry.
//
// The geometry is queried again whenever the shape is rebuilt, so a
// geometry that changes must be followed by a call to Update.
func NewShape(g Geometry, opts ...ShapeOption) *Shape {
	s := newShape(g, applyShapeOptions(opts))
	return &s
}

func newShape(g Geometry, o shapeOptions) Shape {
	s := Shape{
		Transformable:    NewTransformable(),
		geometry:         g,
		fillColor:        o.fillColor,
		outlineColor:     o.outlineColor,
		outlineThickness: o.outlineThickness,
		texture:          o.texture,
		textureRect:      o.textureRect,
		dirty:            true,
	}
	s.SetPosition(o.position)
	s.SetOrigin(o.origin)
	s.SetRotation(o.rotation)
	s.SetScale(o.scale)
	return s
}

func (s *Shape) setGeometry(g Geometry) {
	s.geometry = g
	s.dirty = true
}

// Update forces the cached vertices to be rebuilt on next use.
func (s *Shape) Update() {
	s.dirty = true
}

// Geometry returns the geometry the shape is built from.
func (s *Shape) Geometry() Geometry { return s.geometry }

// PointCount returns the number of outline points.
func (s *Shape) PointCount() int { return s.geometry.PointCount() }

// Point returns the i-th outline point in local coordinates.
// It panics if i is out of range.
func (s *Shape) Point(i int) Vec2 { return s.geometry.Point(i) }

// FillColor returns the fill color.
func (s *Shape) FillColor() Color { return s.fillColor }

// SetFillColor sets the fill color.
func (s *Shape) SetFillColor(c Color) {
	s.fillColor = c
	for i := range s.vertices {
		s.vertices[i].Color = c
	}
}

// OutlineColor returns the outline color.
func (s *Shape) OutlineColor() Color { return s.outlineColor }

// SetOutlineColor sets the outline color.
func (s *Shape) SetOutlineColor(c Color) {
	s.outlineColor = c
	for i := range s.outline {
		s.outline[i].Color = c
	}
}

// OutlineThickness returns the outline thickness.
func (s *Shape) OutlineThickness() float64 { return s.outlineThickness }

// SetOutlineThickness sets the outline thickness. Positive values grow the
// outline outward, negative values inward, and zero disables it.
func (s *Shape) SetOutlineThickness(thickness float64) {
	s.outlineThickness = thickness
	s.dirty = true
}

// Texture returns the fill texture, or nil.
func (s *Shape) Texture() Texture { return s.texture }

// SetTexture sets the fill texture. With resetRect, or when the shape had
// neither a texture nor a texture rect, the texture rect is reset to cover
// the whole texture. A nil texture disables texturing.
func (s *Shape) SetTexture(tex Texture, resetRect bool) {
	if tex != nil && (resetRect || (s.texture == nil && s.textureRect == IntRect{})) {
		w, h := tex.Size()
		s.SetTextureRect(IntRect{Width: w, Height: h})
	}
	s.texture = tex
}

// TextureRect returns the part of the texture mapped onto the shape.
func (s *Shape) TextureRect() IntRect { return s.textureRect }

// SetTextureRect sets the part of the texture mapped onto the shape.
func (s *Shape) SetTextureRect(r IntRect) {
	s.textureRect = r
	s.dirty = true
}

// LocalBounds returns the bounding rectangle of the outline points in local
// coordinates. The outline thickness is not included.
func (s *Shape) LocalBounds() FloatRect {
	return GeometryBounds(s.geometry)
}

// OutlineBounds returns the local bounding rectangle including the outline.
func (s *Shape) OutlineBounds() FloatRect {
	s.ensure()
	return s.bounds
}

// GlobalBounds returns the local bounds mapped through the shape transform.
// The result is axis-aligned, so a rotated shape gets a loose box.
func (s *Shape) GlobalBounds() FloatRect {
	return s.Transform().TransformRect(s.LocalBounds())
}

// Vertices returns the fill as a triangle fan in local coordinates:
// the center, every point, then the first point again. Shapes with fewer
// than three points have no fill. The slice is owned by the shape.
func (s *Shape) Vertices() []Vertex {
	s.ensure()
	return s.vertices
}

// OutlineVertices returns the outline as a triangle strip in local
// coordinates, or nil when the outline thickness is zero. The slice is owned
// by the shape.
func (s *Shape) OutlineVertices() []Vertex {
	s.ensure()
	return s.outline
}

// Draw submits the fill and then the outline to target.
func (s *Shape) Draw(target RenderTarget, states RenderStates) {
	s.ensure()
	states.Transform = states.Transform.Mul(s.Transform())

	if len(s.vertices) > 0 {
		fill := states
		fill.Texture = s.texture
		target.DrawPrimitives(s.vertices, TriangleFan, fill)
	}
	if len(s.outline) > 0 {
		states.Texture = nil
		target.DrawPrimitives(s.outline, TriangleStrip, states)
	}
}

// Clone returns an independent copy of the shape sharing the geometry and
// texture.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Transformable = s.Transformable.Clone()
	c.vertices = nil
	c.outline = nil
	c.dirty = true
	return &c
}

func (s *Shape) ensure() {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.updateFill()
	s.updateOutline()
}

func (s *Shape) updateFill() {
	n := s.geometry.PointCount()
	if n < 3 {
		s.vertices = s.vertices[:0]
		s.outline = s.outline[:0]
		s.insideBounds = FloatRect{}
		s.bounds = FloatRect{}
		return
	}

	s.vertices = resizeVertices(s.vertices, n+2)
	for i := 0; i < n; i++ {
		s.vertices[i+1].Position = s.geometry.Point(i)
	}
	s.vertices[n+1].Position = s.vertices[1].Position

	s.insideBounds = VertexBounds(s.vertices[1:])
	s.vertices[0].Position = s.insideBounds.Center()

	tr := ToFloatRect(s.textureRect)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.Color = s.fillColor
		var rx, ry float64
		if s.insideBounds.Width > 0 {
			rx = (v.Position.X - s.insideBounds.Left) / s.insideBounds.Width
		}
		if s.insideBounds.Height > 0 {
			ry = (v.Position.Y - s.insideBounds.Top) / s.insideBounds.Height
		}
		v.TexCoords = Vec2{X: tr.Left + tr.Width*rx, Y: tr.Top + tr.Height*ry}
	}
}

func (s *Shape) updateOutline() {
	n := len(s.vertices) - 2
	if n < 3 || s.outlineThickness == 0 {
		s.outline = s.outline[:0]
		s.bounds = s.insideBounds
		return
	}

	center := s.vertices[0].Position
	s.outline = resizeVertices(s.outline, (n+1)*2)
	for i := 0; i < n; i++ {
		idx := i + 1
		p0 := s.vertices[idx-1].Position
		if i == 0 {
			p0 = s.vertices[n].Position
		}
		p1 := s.vertices[idx].Position
		p2 := s.vertices[idx+1].Position

		n1 := edgeNormal(p0, p1)
		n2 := edgeNormal(p1, p2)
		// Normals must point away from the center.
		if n1.Dot(center.Sub(p1)) > 0 {
			n1 = n1.Neg()
		}
		if n2.Dot(center.Sub(p1)) > 0 {
			n2 = n2.Neg()
		}

		normal := n1
		if factor := 1 + n1.Dot(n2); factor != 0 {
			normal = n1.Add(n2).Div(factor)
		}

		s.outline[i*2] = Vertex{Position: p1, Color: s.outlineColor}
		s.outline[i*2+1] = Vertex{Position: p1.Add(normal.Mul(s.outlineThickness)), Color: s.outlineColor}
	}
	s.outline[n*2] = s.outline[0]
	s.outline[n*2+1] = s.outline[1]

	s.bounds = VertexBounds(s.outline)
}

// edgeNormal returns the unit normal of the segment p1→p2, or zero for a
// degenerate segment.
func edgeNormal(p1, p2 Vec2) Vec2 {
	n := Vec2{X: p1.Y - p2.Y, Y: p2.X - p1.X}
	if l := n.Length(); l != 0 {
		return n.Div(l)
	}
	return n
}

func resizeVertices(v []Vertex, n int) []Vertex {
	if cap(v) >= n {
		return v[:n]
	}
	return make([]Vertex, n)
}
