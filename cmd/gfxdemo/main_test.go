package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gfx/recording"
)

func TestRunWritesImage(t *testing.T) {
	for _, name := range []string{"demo.png", "demo.bmp"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)
			if err := run(64, 48, "raster", out); err != nil {
				t.Fatalf("run: %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("output file is empty")
			}
		})
	}
}

func TestRunPNGSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	if err := run(120, 80, "raster", out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 120 || cfg.Height != 80 {
		t.Errorf("decoded size = %dx%d, want 120x80", cfg.Width, cfg.Height)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name          string
		width, height int
		backend       string
		output        string
	}{
		{"zero width", 0, 10, "raster", filepath.Join(dir, "a.png")},
		{"unknown backend", 10, 10, "nope", filepath.Join(dir, "b.png")},
		{"unknown format", 10, 10, "raster", filepath.Join(dir, "c.gif")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.width, tt.height, tt.backend, tt.output); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDrawSceneRecords(t *testing.T) {
	rec := recording.NewRecorder(200, 100)
	drawScene(rec)
	r := rec.FinishRecording()
	if len(r.Commands()) < 10 {
		t.Errorf("recorded %d commands, want a full scene", len(r.Commands()))
	}
	if r.Resources().TextureCount() != 2 {
		t.Errorf("textures = %d, want 2", r.Resources().TextureCount())
	}
}
