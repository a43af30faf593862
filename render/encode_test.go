// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/gfx"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", PNG, false},
		{"dir/OUT.PNG", PNG, false},
		{"frame.bmp", BMP, false},
		{"photo.jpg", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCanvasEncode(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			c := NewCanvas(6, 3, WithBackground(gfx.Blue))
			c.SetPixel(2, 1, gfx.Red)

			var buf bytes.Buffer
			if err := c.Encode(&buf, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
				t.Errorf("bounds = %v, want 6x3", b)
			}
			if got := gfx.FromColor(img.At(2, 1)); got != gfx.Red {
				t.Errorf("At(2, 1) = %v, want red", got)
			}
			if got := gfx.FromColor(img.At(0, 0)); got != gfx.Blue {
				t.Errorf("At(0, 0) = %v, want blue", got)
			}
		})
	}
}

func TestCanvasEncodeUnknownFormat(t *testing.T) {
	c := NewCanvas(1, 1)
	if err := c.Encode(&bytes.Buffer{}, Format("tiff")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(tiff) = %v, want ErrUnknownFormat", err)
	}
}

func TestCanvasWriteTo(t *testing.T) {
	c := NewCanvas(8, 8, WithBackground(gfx.Green))

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("WriteTo output is not PNG")
	}
}

func TestCanvasSaveToFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCanvas(4, 4, WithBackground(gfx.White))

	tests := []struct {
		name    string
		save    func(string) error
		file    string
		wantErr error
	}{
		{"png by extension", c.SaveToFile, "a.png", nil},
		{"bmp by extension", c.SaveToFile, "b.bmp", nil},
		{"SavePNG", c.SavePNG, "c.png", nil},
		{"unknown extension", c.SaveToFile, "d.gif", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			err := tt.save(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
					t.Error("file should not be created on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("save failed: %v", err)
			}
			if info, err := os.Stat(path); err != nil || info.Size() == 0 {
				t.Errorf("output missing or empty: %v", err)
			}
		})
	}
}

func TestCanvasSaveToMissingDir(t *testing.T) {
	c := NewCanvas(1, 1)
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := c.SavePNG(path); err == nil {
		t.Error("expected error for missing directory")
	}
}
