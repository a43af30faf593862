// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gfx"
)

// MaskFromColor replaces the alpha of every pixel equal to key with alpha.
// It is typically used with alpha 0 to make a background color transparent.
func (c *Canvas) MaskFromColor(key gfx.Color, alpha uint8) {
	masked := key
	masked.A = alpha
	b := c.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if gfx.FromColor(c.img.At(x, y)) == key {
				c.img.Set(x, y, masked)
			}
		}
	}
}

// FlipHorizontally mirrors the canvas contents left to right.
func (c *Canvas) FlipHorizontally() {
	w := c.Width()
	for y := range c.Height() {
		row := c.row(y)
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lp, rp := row[l*4:l*4+4], row[r*4:r*4+4]
			for i := range 4 {
				lp[i], rp[i] = rp[i], lp[i]
			}
		}
	}
}

// FlipVertically mirrors the canvas contents top to bottom.
func (c *Canvas) FlipVertically() {
	tmp := make([]byte, c.Width()*4)
	for t, b := 0, c.Height()-1; t < b; t, b = t+1, b-1 {
		top, bottom := c.row(t), c.row(b)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// row returns the pixel bytes of row y, relative to the canvas origin.
func (c *Canvas) row(y int) []byte {
	off := c.img.PixOffset(c.img.Rect.Min.X, c.img.Rect.Min.Y+y)
	return c.img.Pix[off : off+c.Width()*4]
}

// Copy draws the sr part of src with its top-left corner at (dx, dy) on the
// canvas. An empty sr copies all of src. With applyAlpha the source is
// blended over the canvas; otherwise its pixels replace the canvas pixels.
// The copy is clipped to the canvas and ignores the view.
func (c *Canvas) Copy(src image.Image, dx, dy int, sr image.Rectangle, applyAlpha bool) {
	if sr.Empty() {
		sr = src.Bounds()
	}
	sr = sr.Intersect(src.Bounds())
	if sr.Empty() {
		return
	}

	op := xdraw.Src
	if applyAlpha {
		op = xdraw.Over
	}
	at := c.img.Rect.Min.Add(image.Pt(dx, dy))
	r := image.Rectangle{Min: at, Max: at.Add(sr.Size())}
	xdraw.Draw(c.img, r, src, sr.Min, op)
}
