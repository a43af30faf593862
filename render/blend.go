// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gputypes"
)

// composite blends src through mask into the rectangle r of dst.
// sp is the point of src aligned with r.Min; mask is aligned with r.Min at
// its origin.
//
// Alpha blending, by far the most common mode, goes through draw.DrawMask.
// Every other blend state is evaluated per pixel on straight colors the way
// a GPU blend unit would, with the mask coverage folded into the source
// alpha. The result is stored premultiplied.
func composite(dst *image.RGBA, r image.Rectangle, src image.Image, sp image.Point, mask *image.Alpha, blend gfx.BlendMode) {
	if blend == gfx.BlendAlpha {
		xdraw.DrawMask(dst, r, src, sp, mask, image.Point{}, xdraw.Over)
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := mask.Pix[(y-r.Min.Y)*mask.Stride+(x-r.Min.X)]
			if cov == 0 {
				continue
			}

			sc := gfx.FromColor(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y))
			s := [4]float64{
				float64(sc.R) / 255,
				float64(sc.G) / 255,
				float64(sc.B) / 255,
				float64(sc.A) / 255 * float64(cov) / 255,
			}

			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			out := blendPixel(blend, s, unpremultiply(px))
			a := clamp01(out[3])
			px[0] = uint8(clamp01(out[0])*a*255 + 0.5)
			px[1] = uint8(clamp01(out[1])*a*255 + 0.5)
			px[2] = uint8(clamp01(out[2])*a*255 + 0.5)
			px[3] = uint8(a*255 + 0.5)
		}
	}
}

// unpremultiply converts a premultiplied RGBA pixel to straight channels in
// [0, 1]. Blend factors are defined on straight colors.
func unpremultiply(px []uint8) [4]float64 {
	a := float64(px[3]) / 255
	if a == 0 {
		return [4]float64{}
	}
	return [4]float64{
		float64(px[0]) / 255 / a,
		float64(px[1]) / 255 / a,
		float64(px[2]) / 255 / a,
		a,
	}
}

// blendPixel applies a blend state to one source and destination pixel.
// Channels are in [0, 1] ordered R, G, B, A.
func blendPixel(b gfx.BlendMode, s, d [4]float64) [4]float64 {
	var out [4]float64
	for c := 0; c < 3; c++ {
		out[c] = blendComponent(b.Color, c, s, d)
	}
	out[3] = blendComponent(b.Alpha, 3, s, d)
	return out
}

func blendComponent(bc gputypes.BlendComponent, c int, s, d [4]float64) float64 {
	sv := s[c] * blendFactor(bc.SrcFactor, c, s, d)
	dv := d[c] * blendFactor(bc.DstFactor, c, s, d)

	switch bc.Operation {
	case gputypes.BlendOperationSubtract:
		return sv - dv
	case gputypes.BlendOperationReverseSubtract:
		return dv - sv
	case gputypes.BlendOperationMin:
		return min(s[c], d[c])
	case gputypes.BlendOperationMax:
		return max(s[c], d[c])
	default:
		return sv + dv
	}
}

// blendFactor evaluates a blend factor for channel c. The blend constant is
// transparent black, the default of a GPU pipeline.
func blendFactor(f gputypes.BlendFactor, c int, s, d [4]float64) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return s[c]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - s[c]
	case gputypes.BlendFactorSrcAlpha:
		return s[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - s[3]
	case gputypes.BlendFactorDst:
		return d[c]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - d[c]
	case gputypes.BlendFactorDstAlpha:
		return d[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - d[3]
	case gputypes.BlendFactorSrcAlphaSaturated:
		if c == 3 {
			return 1
		}
		return min(s[3], 1-d[3])
	case gputypes.BlendFactorConstant:
		return 0
	case gputypes.BlendFactorOneMinusConstant:
		return 1
	}
	return 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
