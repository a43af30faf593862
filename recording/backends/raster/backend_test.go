package raster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/recording"
	"github.com/gogpu/gfx/render"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *raster.Backend", backend)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(100, 80); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if w, h := backend.Size(); w != 100 || h != 80 {
		t.Errorf("Size() = %dx%d, want 100x80", w, h)
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("Image bounds = %v, want 100x80", b)
	}

	if err := backend.Begin(0, 10); !errors.Is(err, render.ErrInvalidSize) {
		t.Errorf("Begin(0, 10) = %v, want ErrInvalidSize", err)
	}
}

func TestBackendPlayback(t *testing.T) {
	rec := recording.NewRecorder(40, 40)
	rec.Clear(gfx.Black)
	gfx.Draw(rec, gfx.NewRectangleShape(gfx.Vec2{X: 20, Y: 20},
		gfx.WithPosition(gfx.Vec2{X: 10, Y: 10}),
		gfx.WithFillColor(gfx.Red)))

	backend := NewBackend()
	if err := rec.FinishRecording().Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want gfx.Color
	}{
		{"inside", 20, 20, gfx.Red},
		{"outside", 2, 2, gfx.Black},
		{"right of rect", 35, 20, gfx.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backend.Pixel(tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBackendReplayClearsPreviousRun(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	r := rec.FinishRecording()

	backend := NewBackend(render.WithBackground(gfx.White))
	if err := backend.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	backend.SetPixel(5, 5, gfx.Blue)
	backend.SetView(gfx.NewView(gfx.Vec2{}, gfx.Vec2{X: 1, Y: 1}))

	if err := r.Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if got := backend.Pixel(5, 5); got != gfx.White {
		t.Errorf("Pixel(5, 5) = %v, want background white", got)
	}
	if c := backend.View().Center(); c != (gfx.Vec2{X: 5, Y: 5}) {
		t.Errorf("view center = %v, want default (5, 5)", c)
	}
}

func TestBackendWriteTo(t *testing.T) {
	backend := NewBackend(render.WithBackground(gfx.Green))
	if err := backend.Begin(16, 8); err != nil {
		t.Fatal(err)
	}
	_ = backend.End()

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 16x8", b)
	}
}

func TestBackendSaveToFile(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(4, 4); err != nil {
		t.Fatal(err)
	}
	_ = backend.End()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := backend.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("output file missing or empty: %v", err)
	}
}
