package recording

import "github.com/gogpu/gfx"

// CommandType identifies the type of a command.
// Each command type corresponds to one gfx.RenderTarget call.
type CommandType uint8

const (
	CmdClear   CommandType = iota // Clear the whole target
	CmdSetView                    // Replace the current view
	CmdDraw                       // Draw a vertex batch
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:   "Clear",
	CmdSetView: "SetView",
	CmdDraw:    "Draw",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual render target calls that can be
// inspected and replayed to different backends.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// VertexRef is a reference to a vertex batch in the resource pool.
type VertexRef uint32

// TextureRef is a reference to a texture in the resource pool.
type TextureRef uint32

// ViewRef is a reference to a view in the resource pool.
type ViewRef uint32

// InvalidRef is the sentinel value for an invalid reference.
// A DrawCommand without texture carries InvalidRef as its texture.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid vertex batch.
func (r VertexRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid texture.
func (r TextureRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid view.
func (r ViewRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// Commands
// --------------------------------------------------------------------------

// ClearCommand fills the whole target with a color.
type ClearCommand struct {
	Color gfx.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// SetViewCommand replaces the current view of the target.
type SetViewCommand struct {
	View ViewRef
}

// Type implements Command.
func (SetViewCommand) Type() CommandType { return CmdSetView }

// DrawCommand draws a vertex batch with the given render states.
// Texture is InvalidRef when the batch is untextured.
type DrawCommand struct {
	Vertices  VertexRef
	Primitive gfx.PrimitiveType
	Transform gfx.Transform
	BlendMode gfx.BlendMode
	Texture   TextureRef
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }
