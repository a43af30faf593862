// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes gfx vertex batches on the CPU.
//
// The gfx package describes what to draw and hands it to a gfx.RenderTarget
// as vertices. This package provides Canvas, a render target backed by an
// *image.RGBA, so shapes and sprites can be turned into pixels without a GPU.
//
// # Canvas
//
//	canvas := render.NewCanvas(800, 600, render.WithBackground(gfx.Black))
//
//	rect := gfx.NewRectangleShape(gfx.V2(200, 100),
//	    gfx.WithPosition(gfx.V2(300, 250)),
//	    gfx.WithFillColor(gfx.Red))
//	gfx.Draw(canvas, rect)
//
//	canvas.SaveToFile("out.png") // or out.bmp
//
// Vertices go through the draw transform, the canvas view and its viewport
// exactly as they would on a GPU. Drawing is clipped to the viewport; Clear
// always fills the whole canvas.
//
// # Rasterization
//
// Every primitive type is reduced to triangles. Lines become one pixel wide
// quads and points become one pixel squares. Coverage is computed with
// anti-aliasing by golang.org/x/image/vector.
//
// Triangles are shaded with a single color, the average of their vertex
// colors. Textured triangles sample any texture exposing an Image method,
// such as *gfx.ImageTexture, nearest-neighbor unless the texture asks for
// smooth filtering, and the result is multiplied by the vertex color.
//
// # Blending
//
// gfx.BlendAlpha is composited with golang.org/x/image/draw. Other blend
// states are evaluated per pixel with the usual GPU factor and operation
// rules. Partial coverage at shape edges scales the source alpha; the blend
// constant is transparent black.
//
// # Output
//
// Canvas encodes to PNG and BMP and can be used as a texture for another
// draw. It also satisfies the recording backend lifecycle (Begin and End),
// which the recording/backends/raster package registers.
//
// # Thread Safety
//
// A Canvas is NOT safe for concurrent use. Use one canvas per goroutine, or
// external synchronization.
package render
