// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Errors returned by Canvas output and lifecycle methods.
var (
	// ErrInvalidSize is returned when a canvas is asked to take a zero or
	// negative size.
	ErrInvalidSize = errors.New("render: invalid canvas size")

	// ErrUnknownFormat is returned when a file extension does not name a
	// supported image format.
	ErrUnknownFormat = errors.New("render: unknown image format")
)

// Format identifies an image file format the canvas can encode.
type Format string

// Supported image formats.
const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// FormatFromPath picks the image format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes the canvas contents to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, c.img)
	case BMP:
		err = bmp.Encode(w, c.img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}

// EncodePNG writes the canvas contents to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.Encode(w, PNG)
}

// EncodeBMP writes the canvas contents to w as BMP.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	return c.Encode(w, BMP)
}

// WriteTo writes the canvas contents to w as PNG.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := c.EncodePNG(cw)
	return cw.n, err
}

// SavePNG saves the canvas contents to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.save(path, PNG)
}

// SaveToFile saves the canvas contents to a file, choosing the format from
// the extension (.png or .bmp).
func (c *Canvas) SaveToFile(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return c.save(path, f)
}

func (c *Canvas) save(path string, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := c.Encode(bw, format); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
