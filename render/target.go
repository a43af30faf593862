// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/draw"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gputypes"
)

// Canvas is a CPU-backed render target using *image.RGBA.
//
// Canvas implements gfx.RenderTarget: vertex batches are mapped through the
// draw transform, the current view and the viewport, then rasterized with
// anti-aliasing. Drawing is clipped to the view's viewport.
//
// Example:
//
//	canvas := render.NewCanvas(800, 600, render.WithBackground(gfx.Black))
//	gfx.Draw(canvas, shape)
//	canvas.SavePNG("out.png")
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img        *image.RGBA
	background gfx.Color
	view       *gfx.View
	raster     softwareRasterizer
	buf        []gfx.Vertex
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background gfx.Color
	img        *image.RGBA
}

// WithBackground sets the color the canvas starts with and that Begin
// clears to. Defaults to transparent.
func WithBackground(c gfx.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithImage draws into an existing image instead of allocating one. The
// image is used directly without copying and its size overrides the
// requested size.
func WithImage(img *image.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.img = img
	}
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := canvasOptions{background: gfx.Transparent}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{background: o.background}
	if o.img != nil {
		c.img = o.img
	} else {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
		if o.background != gfx.Transparent {
			c.Clear(o.background)
		}
	}
	c.view = c.DefaultView()

	gfx.Logger().Debug("render: canvas created",
		"width", c.Width(), "height", c.Height(), "shared", o.img != nil)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.Width(), c.Height()
}

// Format returns the pixel format (RGBA8).
func (c *Canvas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the premultiplied pixel data.
func (c *Canvas) Pixels() []byte {
	return c.img.Pix
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Texture wraps the current contents as a texture that can be drawn onto
// other targets. The texture shares memory with the canvas.
func (c *Canvas) Texture() *gfx.ImageTexture {
	return gfx.NewImageTexture(c.img)
}

// Clear fills the entire canvas with the given color, ignoring the view.
func (c *Canvas) Clear(col gfx.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetPixel sets a single pixel at the given coordinates.
func (c *Canvas) SetPixel(x, y int, col gfx.Color) {
	c.img.Set(c.img.Rect.Min.X+x, c.img.Rect.Min.Y+y, col)
}

// Pixel returns the non-premultiplied color at the given coordinates.
func (c *Canvas) Pixel(x, y int) gfx.Color {
	return gfx.FromColor(c.img.At(c.img.Rect.Min.X+x, c.img.Rect.Min.Y+y))
}

// Resize replaces the pixels with a new image of the given size cleared to
// the background, and resets the view. The contents are not preserved.
func (c *Canvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if c.background != gfx.Transparent {
		c.Clear(c.background)
	}
	c.view = c.DefaultView()
}

// View returns the current view. Changes to it are not seen by the canvas
// until SetView is called again.
func (c *Canvas) View() *gfx.View {
	return c.view.Clone()
}

// SetView replaces the current view. The canvas keeps a copy; nil restores
// the default view.
func (c *Canvas) SetView(v *gfx.View) {
	if v == nil {
		v = c.DefaultView()
	}
	c.view = v.Clone()
}

// DefaultView returns a view mapping world units one-to-one onto pixels,
// with (0, 0) at the top-left corner.
func (c *Canvas) DefaultView() *gfx.View {
	return gfx.NewViewFromRect(gfx.FloatRect{Width: float64(c.Width()), Height: float64(c.Height())})
}

// DrawPrimitives rasterizes vertices onto the canvas.
func (c *Canvas) DrawPrimitives(vertices []gfx.Vertex, p gfx.PrimitiveType, states gfx.RenderStates) {
	if len(vertices) == 0 {
		return
	}

	origin := c.img.Rect.Min
	m := gfx.Translation(float64(origin.X), float64(origin.Y)).
		Mul(gfx.PixelTransform(c, c.view)).
		Mul(states.Transform)
	c.buf = append(c.buf[:0], vertices...)
	for i := range c.buf {
		c.buf[i].Position = m.TransformPoint(c.buf[i].Position)
	}

	clip := gfx.ImageRect(gfx.Viewport(c, c.view)).Add(origin)
	c.raster.draw(c.img, clip, c.buf, p, states)
}

// Begin prepares the canvas for a playback of the given size: it is
// resized if needed, cleared to the background and its view is reset.
func (c *Canvas) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if width != c.Width() || height != c.Height() {
		c.Resize(width, height)
		return nil
	}
	c.Clear(c.background)
	c.view = c.DefaultView()
	return nil
}

// End finishes a playback. Rasterization is synchronous so there is
// nothing to flush.
func (c *Canvas) End() error {
	return nil
}

// Ensure Canvas implements gfx.RenderTarget.
var _ gfx.RenderTarget = (*Canvas)(nil)
