// Command gfxdemo records a small scene of shapes and sprites, replays it on
// the raster backend and writes the result as PNG or BMP.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/recording"
	_ "github.com/gogpu/gfx/recording/backends/raster"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .bmp)")
		backend = flag.String("backend", "raster", "recording backend")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gfx.SetLogger(logger)

	if err := run(*width, *height, *backend, *output); err != nil {
		logger.Error("gfxdemo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "path", *output, "width", *width, "height", *height)
}

func run(width, height int, backendName, output string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}

	rec := recording.NewRecorder(width, height)
	drawScene(rec)
	scene := rec.FinishRecording()

	b, err := recording.NewBackend(backendName)
	if err != nil {
		return err
	}
	if err := scene.Playback(b); err != nil {
		return err
	}

	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot save files", backendName)
	}
	return fb.SaveToFile(output)
}

// drawScene draws the demo into any render target.
func drawScene(target gfx.RenderTarget) {
	w, h := target.Size()
	fw, fh := float64(w), float64(h)

	target.Clear(gfx.RGB(24, 28, 40))
	drawBackground(target, fw, fh)
	drawShapes(target, fw, fh)
	drawSprites(target, fw, fh)
	drawMinimap(target, fw, fh)
}

// drawBackground fills the lower half with horizontal bands.
func drawBackground(target gfx.RenderTarget, w, h float64) {
	const bands = 16
	va := gfx.NewVertexArray(gfx.Triangles, 0)
	for i := range bands {
		t := float64(i) / bands
		c := gfx.RGB(40, 50, 80).Lerp(gfx.RGB(90, 60, 110), t)
		y0 := h/2 + t*h/2
		y1 := y0 + h/2/bands + 1
		va.Append(
			gfx.Vertex{Position: gfx.V2(0, y0), Color: c},
			gfx.Vertex{Position: gfx.V2(w, y0), Color: c},
			gfx.Vertex{Position: gfx.V2(0, y1), Color: c},
			gfx.Vertex{Position: gfx.V2(w, y0), Color: c},
			gfx.Vertex{Position: gfx.V2(w, y1), Color: c},
			gfx.Vertex{Position: gfx.V2(0, y1), Color: c},
		)
	}
	gfx.Draw(target, va)
}

func drawShapes(target gfx.RenderTarget, w, h float64) {
	r := min(w, h) / 10

	// Overlapping translucent circles.
	for i, c := range []gfx.Color{
		gfx.RGBA8(255, 80, 80, 200),
		gfx.RGBA8(80, 255, 80, 200),
		gfx.RGBA8(80, 80, 255, 200),
	} {
		offset := gfx.V2(float64(i%2)*r, float64(i/2)*r*0.9)
		circle := gfx.NewCircleShape(r,
			gfx.WithFillColor(c),
			gfx.WithOrigin(gfx.V2(r, r)),
			gfx.WithPosition(gfx.V2(w*0.2, h*0.25).Add(offset)))
		gfx.Draw(target, circle)
	}

	// A fan of outlined rectangles rotating around a shared origin.
	size := gfx.V2(r*2, r)
	for i := range 6 {
		rect := gfx.NewRectangleShape(size,
			gfx.WithFillColor(gfx.HSL(float64(i)*60, 0.7, 0.55)),
			gfx.WithOutline(gfx.White, 2),
			gfx.WithOrigin(size.Mul(0.5)),
			gfx.WithPosition(gfx.V2(w*0.55, h*0.3)),
			gfx.WithRotation(float64(i)*15))
		gfx.Draw(target, rect)
	}

	// A convex hexagon and a low-poly circle.
	hex := gfx.NewCircleShape(r*0.8,
		gfx.WithPointCount(6),
		gfx.WithFillColor(gfx.Yellow),
		gfx.WithOutline(gfx.RGB(200, 120, 0), 3),
		gfx.WithOrigin(gfx.V2(r*0.8, r*0.8)),
		gfx.WithPosition(gfx.V2(w*0.85, h*0.25)))
	gfx.Draw(target, hex)

	kite := gfx.NewConvexShape([]gfx.Vec2{
		gfx.V2(0, -r), gfx.V2(r*0.6, 0), gfx.V2(0, r*1.5), gfx.V2(-r*0.6, 0),
	},
		gfx.WithFillColor(gfx.Cyan),
		gfx.WithPosition(gfx.V2(w*0.85, h*0.7)),
		gfx.WithRotation(-20))
	gfx.Draw(target, kite)
}

// drawSprites draws a checkerboard texture three times with different
// transforms, tints and sub-rectangles.
func drawSprites(target gfx.RenderTarget, w, h float64) {
	tex := gfx.NewImageTexture(checkerboard(8, 8, gfx.White, gfx.RGB(60, 60, 60)))

	s := gfx.NewSprite(tex)
	s.SetPosition(gfx.V2(w*0.1, h*0.6))
	s.SetScale(gfx.V2(12, 12))
	gfx.Draw(target, s)

	tinted := gfx.NewSpriteRect(tex, gfx.IntRect{Width: 4, Height: 4})
	tinted.SetColor(gfx.RGB(255, 160, 60))
	tinted.SetOrigin(gfx.V2(2, 2))
	tinted.SetPosition(gfx.V2(w*0.45, h*0.75))
	tinted.SetScale(gfx.V2(20, 20))
	tinted.SetRotation(30)
	gfx.Draw(target, tinted)

	smooth := gfx.NewImageTexture(checkerboard(4, 4, gfx.Magenta, gfx.Black))
	smooth.SetSmooth(true)
	blurred := gfx.NewSprite(smooth)
	blurred.SetPosition(gfx.V2(w*0.6, h*0.55))
	blurred.SetScale(gfx.V2(16, 16))
	blurred.Draw(target, gfx.RenderStates{
		Transform: gfx.Identity(),
		BlendMode: gfx.BlendAdd,
	})
}

// drawMinimap redraws the shapes into a small viewport in the top-right
// corner, showing the whole scene at reduced scale.
func drawMinimap(target gfx.RenderTarget, w, h float64) {
	saved := target.View()

	mini := target.DefaultView()
	mini.SetViewport(gfx.FloatRect{Left: 0.75, Top: 0.75, Width: 0.24, Height: 0.24})
	target.SetView(mini)

	frame := gfx.NewRectangleShape(gfx.V2(w, h), gfx.WithFillColor(gfx.RGBA8(0, 0, 0, 160)))
	gfx.Draw(target, frame)
	drawShapes(target, w, h)

	target.SetView(saved)
}

func checkerboard(w, h int, a, b gfx.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := a
			if (x+y)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}
