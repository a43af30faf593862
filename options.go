package gfx

// ShapeOption configures a shape during creation.
// Use functional options to customize shape appearance and placement.
//
// Example:
//
//	// Default white circle of radius 50
//	c := gfx.NewCircleShape(50)
//
//	// Red hexagon with a black outline, centered on (200, 150)
//	hex := gfx.NewCircleShape(50,
//	    gfx.WithPointCount(6),
//	    gfx.WithFillColor(gfx.Red),
//	    gfx.WithOutline(gfx.Black, 2),
//	    gfx.WithOrigin(gfx.V2(50, 50)),
//	    gfx.WithPosition(gfx.V2(200, 150)),
//	)
type ShapeOption func(*shapeOptions)

// shapeOptions holds optional configuration for shape creation.
type shapeOptions struct {
	fillColor        Color
	outlineColor     Color
	outlineThickness float64
	position         Vec2
	origin           Vec2
	rotation         float64
	scale            Vec2
	texture          Texture
	textureRect      IntRect
	pointCount       int
}

// defaultShapeOptions returns the default shape options.
func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		fillColor:    White,
		outlineColor: White,
		scale:        Vec2{X: 1, Y: 1},
		pointCount:   DefaultCirclePointCount,
	}
}

func applyShapeOptions(opts []ShapeOption) shapeOptions {
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFillColor sets the interior color. Defaults to White.
func WithFillColor(c Color) ShapeOption {
	return func(o *shapeOptions) {
		o.fillColor = c
	}
}

// WithOutlineColor sets the outline color. Defaults to White.
func WithOutlineColor(c Color) ShapeOption {
	return func(o *shapeOptions) {
		o.outlineColor = c
	}
}

// WithOutlineThickness sets the outline thickness. Positive values grow the
// outline outward, negative values inward. Defaults to 0 (no outline).
func WithOutlineThickness(thickness float64) ShapeOption {
	return func(o *shapeOptions) {
		o.outlineThickness = thickness
	}
}

// WithOutline sets both the outline color and thickness.
func WithOutline(c Color, thickness float64) ShapeOption {
	return func(o *shapeOptions) {
		o.outlineColor = c
		o.outlineThickness = thickness
	}
}

// WithPosition sets the initial position.
func WithPosition(p Vec2) ShapeOption {
	return func(o *shapeOptions) {
		o.position = p
	}
}

// WithOrigin sets the initial local origin.
func WithOrigin(origin Vec2) ShapeOption {
	return func(o *shapeOptions) {
		o.origin = origin
	}
}

// WithRotation sets the initial rotation in degrees.
func WithRotation(angle float64) ShapeOption {
	return func(o *shapeOptions) {
		o.rotation = angle
	}
}

// WithScale sets the initial scale factors.
func WithScale(s Vec2) ShapeOption {
	return func(o *shapeOptions) {
		o.scale = s
	}
}

// WithTexture sets the texture used to fill the shape. The texture rect
// covers the whole texture.
func WithTexture(tex Texture) ShapeOption {
	return func(o *shapeOptions) {
		o.texture = tex
		if tex != nil {
			w, h := tex.Size()
			o.textureRect = IntRect{Width: w, Height: h}
		}
	}
}

// WithTextureRect sets the sub-rectangle of the texture mapped onto the
// shape. Apply it after WithTexture.
func WithTextureRect(r IntRect) ShapeOption {
	return func(o *shapeOptions) {
		o.textureRect = r
	}
}

// WithPointCount sets the number of points of a circle. It has no effect on
// other shapes.
func WithPointCount(n int) ShapeOption {
	return func(o *shapeOptions) {
		o.pointCount = n
	}
}
