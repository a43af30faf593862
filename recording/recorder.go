package recording

import (
	"fmt"

	"github.com/gogpu/gfx"
)

// Recorder captures render target calls as commands.
// It implements gfx.RenderTarget, so shapes, sprites and vertex arrays draw
// onto it exactly as they would onto a canvas. Use FinishRecording to obtain
// an immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.Clear(gfx.Black)
//	gfx.Draw(rec, gfx.NewCircleShape(50))
//	recording := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	view          *gfx.View
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with the default view of a target that size.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
	r.view = r.DefaultView()
	return r
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	gfx.Logger().Debug("recording: finished",
		"commands", len(r.commands), "batches", r.resources.VertexBatchCount())
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded render target calls.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend.
// The backend starts from its default view, the same as the Recorder did.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}

	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear(c.Color)
		case SetViewCommand:
			v := r.resources.GetView(c.View)
			if v == nil {
				return fmt.Errorf("recording: command %d: invalid view reference %d", i, c.View)
			}
			backend.SetView(v)
		case DrawCommand:
			vertices := r.resources.GetVertices(c.Vertices)
			if vertices == nil {
				return fmt.Errorf("recording: command %d: invalid vertex reference %d", i, c.Vertices)
			}
			backend.DrawPrimitives(vertices, c.Primitive, gfx.RenderStates{
				Transform: c.Transform,
				BlendMode: c.BlendMode,
				Texture:   r.resources.GetTexture(c.Texture),
			})
		default:
			gfx.Logger().Warn("recording: skipping unknown command", "index", i, "type", cmd.Type())
		}
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// gfx.RenderTarget
// --------------------------------------------------------------------------

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Size returns the dimensions of the recording canvas.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// View returns a copy of the current view.
func (r *Recorder) View() *gfx.View {
	return r.view.Clone()
}

// SetView records a view change. The recorder keeps a copy of v; nil
// records the default view.
func (r *Recorder) SetView(v *gfx.View) {
	if v == nil {
		v = r.DefaultView()
	}
	r.view = v.Clone()
	r.commands = append(r.commands, SetViewCommand{View: r.resources.AddView(v)})
}

// DefaultView returns the view mapping world units one-to-one onto pixels.
func (r *Recorder) DefaultView() *gfx.View {
	return gfx.NewViewFromRect(gfx.FloatRect{Width: float64(r.width), Height: float64(r.height)})
}

// Clear records a clear of the whole canvas.
func (r *Recorder) Clear(c gfx.Color) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// DrawPrimitives records a vertex batch. The vertices are copied, so the
// caller may reuse the slice. Empty batches are dropped.
func (r *Recorder) DrawPrimitives(vertices []gfx.Vertex, p gfx.PrimitiveType, states gfx.RenderStates) {
	if len(vertices) == 0 {
		return
	}
	r.commands = append(r.commands, DrawCommand{
		Vertices:  r.resources.AddVertices(vertices),
		Primitive: p,
		Transform: states.Transform,
		BlendMode: states.BlendMode,
		Texture:   r.resources.AddTexture(states.Texture),
	})
}

// Ensure Recorder implements gfx.RenderTarget.
var _ gfx.RenderTarget = (*Recorder)(nil)
