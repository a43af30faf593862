// Package raster replays recordings onto a render.Canvas.
//
// Importing the package registers the backend as "raster":
//
//	import _ "github.com/gogpu/gfx/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := rec.Playback(b); err != nil {
//	    return err
//	}
//	err = b.(recording.FileBackend).SaveToFile("scene.png")
//
// Use NewBackend directly to pass canvas options such as a background
// color. The backend is also handy in tests: play a recording back and
// compare pixels.
package raster

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/recording"
	"github.com/gogpu/gfx/render"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image using render.Canvas.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	*render.Canvas
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend. The options configure the
// underlying canvas; the canvas is sized by Begin.
func NewBackend(opts ...render.CanvasOption) *Backend {
	return &Backend{Canvas: render.NewCanvas(0, 0, opts...)}
}

// Begin sizes the canvas for the recording, clears it to its background
// and resets the view.
func (b *Backend) Begin(width, height int) error {
	if err := b.Canvas.Begin(width, height); err != nil {
		return err
	}
	gfx.Logger().Debug("raster: playback started", "width", width, "height", height)
	return nil
}
