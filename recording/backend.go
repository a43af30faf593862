package recording

import (
	"image"
	"io"

	"github.com/gogpu/gfx"
)

// Backend is a render target that recordings can be replayed onto.
//
// Playback brackets the replayed Clear, SetView and DrawPrimitives calls
// with Begin and End. Begin receives the recording size; a backend resizes
// itself to it, clears to its background and resets its view to the
// default view. Whatever End produces stays available until the next Begin.
//
// Backends are usually created by name through NewBackend after their
// package registered a factory with Register.
type Backend interface {
	gfx.RenderTarget

	// Begin prepares a width x height output.
	Begin(width, height int) error

	// End completes the output.
	End() error
}

// WriterBackend is a Backend whose output can be streamed, for example as
// an encoded image.
type WriterBackend interface {
	Backend

	// WriteTo writes the output produced by the last End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can store its output in a file. The path
// extension may select the file format.
type FileBackend interface {
	Backend

	// SaveToFile writes the output produced by the last End to path.
	SaveToFile(path string) error
}

// ImageBackend is a Backend that renders to pixels.
type ImageBackend interface {
	Backend

	// Image returns the pixels produced by the last End.
	Image() *image.RGBA
}
