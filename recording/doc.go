// Package recording captures gfx render target calls so they can be replayed
// later, possibly more than once and onto different backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: a gfx.RenderTarget that stores calls instead of drawing
//   - Recording: the immutable command list plus its resources
//   - Backend: a gfx.RenderTarget with a Begin/End lifecycle
//
// # Basic Usage
//
// Anything that draws onto a render target draws onto a Recorder:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.Clear(gfx.Black)
//
//	circle := gfx.NewCircleShape(50,
//	    gfx.WithPosition(gfx.Vec2{X: 400, Y: 300}),
//	    gfx.WithFillColor(gfx.Red))
//	gfx.Draw(rec, circle)
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/gfx/recording/backends/raster"
//
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("output.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it. Register custom
// backends with [Register]:
//
//	func init() {
//	    recording.Register("myformat", func() recording.Backend {
//	        return NewMyBackend()
//	    })
//	}
//
// # Resource Management
//
// Vertex batches and views are copied into a [ResourcePool] as they are
// recorded, so callers may keep mutating their shapes. Textures are kept by
// reference and deduplicated.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is never modified after
// FinishRecording and can be played back from several goroutines, each to its
// own backend.
package recording
