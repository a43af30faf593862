// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"fmt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/render"
)

// ExampleNewCanvas demonstrates creating a CPU render target.
func ExampleNewCanvas() {
	canvas := render.NewCanvas(400, 300)

	fmt.Printf("canvas size: %dx%d\n", canvas.Width(), canvas.Height())
	fmt.Printf("stride: %d bytes per row\n", canvas.Stride())
	fmt.Printf("pixels: %d bytes total\n", len(canvas.Pixels()))
	// Output:
	// canvas size: 400x300
	// stride: 1600 bytes per row
	// pixels: 480000 bytes total
}

// ExampleCanvas_Clear demonstrates clearing a canvas with a color.
func ExampleCanvas_Clear() {
	canvas := render.NewCanvas(100, 100)
	canvas.Clear(gfx.Red)

	fmt.Println("pixel at (50,50):", canvas.Pixel(50, 50))
	// Output: pixel at (50,50): #ff0000ff
}

// ExampleCanvas_DrawPrimitives demonstrates drawing a shape onto a canvas.
func ExampleCanvas_DrawPrimitives() {
	canvas := render.NewCanvas(100, 100, render.WithBackground(gfx.White))

	rect := gfx.NewRectangleShape(gfx.V2(40, 40),
		gfx.WithPosition(gfx.V2(30, 30)),
		gfx.WithFillColor(gfx.Blue))
	gfx.Draw(canvas, rect) // calls canvas.DrawPrimitives

	fmt.Println("inside:", canvas.Pixel(50, 50))
	fmt.Println("outside:", canvas.Pixel(10, 10))
	// Output:
	// inside: #0000ffff
	// outside: #ffffffff
}

// ExampleCanvas_SetView demonstrates zooming with a view.
func ExampleCanvas_SetView() {
	canvas := render.NewCanvas(200, 200, render.WithBackground(gfx.Black))

	view := canvas.DefaultView()
	view.Zoom(0.5) // show half as much, twice as big
	canvas.SetView(view)

	x, y := gfx.MapCoordsToPixel(canvas, gfx.V2(100.25, 100.25), nil)
	fmt.Printf("world center at pixel (%d, %d)\n", x, y)
	x, y = gfx.MapCoordsToPixel(canvas, gfx.V2(60.25, 60.25), nil)
	fmt.Printf("world (60.25, 60.25) at pixel (%d, %d)\n", x, y)
	// Output:
	// world center at pixel (100, 100)
	// world (60.25, 60.25) at pixel (20, 20)
}
