// Package gfx provides 2D affine transforms and drawable shapes for Go.
//
// # Overview
//
// gfx is the geometry core of a multimedia toolkit: it describes where things
// are and what they look like, and hands the result to a RenderTarget as
// vertex batches. It does not open windows, load files or talk to a GPU.
// Rasterization lives in the render package, draw-call capture in the
// recording package and sound positioning in the audio package.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gfx"
//		"github.com/gogpu/gfx/render"
//	)
//
//	canvas := render.NewCanvas(640, 480, render.WithBackground(gfx.Black))
//
//	hex := gfx.NewCircleShape(50,
//		gfx.WithPointCount(6),
//		gfx.WithFillColor(gfx.Red),
//		gfx.WithOutline(gfx.White, 2),
//		gfx.WithOrigin(gfx.V2(50, 50)),
//		gfx.WithPosition(gfx.V2(320, 240)),
//	)
//	hex.Rotate(15)
//	gfx.Draw(canvas, hex)
//
//	canvas.SavePNG("hex.png")
//
// # Transforms
//
// Transform is a 3x3 matrix in row-major order acting on homogeneous 2D
// points. Combining is right-multiplication, so the most recently combined
// transform is applied to points first:
//
//	var t gfx.Transform = gfx.Identity()
//	t.Translate(100, 0).Rotate(90) // rotate, then translate
//
// Inverting a transform whose determinant is (numerically) zero yields the
// identity instead of failing.
//
// Transformable derives a transform from position, rotation, scale and
// origin, caching it until one of them changes. Shapes, sprites and views
// all use it.
//
// # Shapes
//
// A Geometry generates the ordered points of a convex polygon: Circle,
// Rectangle and Convex are provided. Shape turns any geometry into a filled
// triangle fan and an outline triangle strip, with optional texturing.
//
// # Coordinate System
//
// Uses standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees; positive angles rotate clockwise on screen
//
// # Concurrency
//
// Transform, Vec2, Rect and Color are values and safe to share. Types with
// cached state (Transformable, Shape, Sprite, View) are not safe for
// concurrent use and must be guarded by the caller.
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger that
// this package and its sub-packages use for diagnostics.
package gfx
