package gfx

import "math"

// Sprite draws a rectangular part of a texture, with its own transform and
// a color that tints the texture.
type Sprite struct {
	Transformable

	texture     Texture
	textureRect IntRect
	color       Color
	vertices    [4]Vertex
}

// NewSprite creates a sprite showing the whole texture. tex may be nil, in
// which case the sprite draws nothing until SetTexture is called.
func NewSprite(tex Texture) *Sprite {
	s := &Sprite{Transformable: NewTransformable(), color: White}
	s.SetTexture(tex, true)
	return s
}

// NewSpriteRect creates a sprite showing the part r of the texture.
func NewSpriteRect(tex Texture, r IntRect) *Sprite {
	s := &Sprite{Transformable: NewTransformable(), color: White, texture: tex}
	s.SetTextureRect(r)
	return s
}

// Texture returns the sprite texture, or nil.
func (s *Sprite) Texture() Texture { return s.texture }

// SetTexture sets the texture. With resetRect, or when the sprite had
// neither a texture nor a texture rect, the texture rect is reset to the
// whole texture.
func (s *Sprite) SetTexture(tex Texture, resetRect bool) {
	if tex != nil && (resetRect || (s.texture == nil && s.textureRect == IntRect{})) {
		w, h := tex.Size()
		s.SetTextureRect(IntRect{Width: w, Height: h})
	}
	s.texture = tex
}

// TextureRect returns the part of the texture shown.
func (s *Sprite) TextureRect() IntRect { return s.textureRect }

// SetTextureRect sets the part of the texture shown. A negative width or
// height flips the sprite.
func (s *Sprite) SetTextureRect(r IntRect) {
	s.textureRect = r
	s.updatePositions()
	s.updateTexCoords()
	s.SetColor(s.color)
}

// Color returns the tint color.
func (s *Sprite) Color() Color { return s.color }

// SetColor sets the tint color, multiplied with the texture.
func (s *Sprite) SetColor(c Color) {
	s.color = c
	for i := range s.vertices {
		s.vertices[i].Color = c
	}
}

// LocalBounds returns (0, 0, |width|, |height|) of the texture rect.
func (s *Sprite) LocalBounds() FloatRect {
	return FloatRect{
		Width:  math.Abs(float64(s.textureRect.Width)),
		Height: math.Abs(float64(s.textureRect.Height)),
	}
}

// GlobalBounds returns the local bounds mapped through the sprite transform.
func (s *Sprite) GlobalBounds() FloatRect {
	return s.Transform().TransformRect(s.LocalBounds())
}

// Vertices returns the four corners as a triangle strip.
func (s *Sprite) Vertices() []Vertex {
	return s.vertices[:]
}

// Draw submits the sprite to target. A sprite without texture draws nothing.
func (s *Sprite) Draw(target RenderTarget, states RenderStates) {
	if s.texture == nil {
		return
	}
	states.Transform = states.Transform.Mul(s.Transform())
	states.Texture = s.texture
	target.DrawPrimitives(s.vertices[:], TriangleStrip, states)
}

func (s *Sprite) updatePositions() {
	b := s.LocalBounds()
	s.vertices[0].Position = Vec2{}
	s.vertices[1].Position = Vec2{Y: b.Height}
	s.vertices[2].Position = Vec2{X: b.Width}
	s.vertices[3].Position = Vec2{X: b.Width, Y: b.Height}
}

func (s *Sprite) updateTexCoords() {
	r := ToFloatRect(s.textureRect)
	left, top := r.Left, r.Top
	right, bottom := left+r.Width, top+r.Height
	s.vertices[0].TexCoords = Vec2{X: left, Y: top}
	s.vertices[1].TexCoords = Vec2{X: left, Y: bottom}
	s.vertices[2].TexCoords = Vec2{X: right, Y: top}
	s.vertices[3].TexCoords = Vec2{X: right, Y: bottom}
}
