package recording

import (
	"reflect"

	"github.com/gogpu/gfx"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Vertex batches and views are copied on Add so later changes by the caller
// do not leak into the recording. Textures are stored by reference and
// deduplicated when their dynamic type is comparable.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	vertices [][]gfx.Vertex
	textures []gfx.Texture
	views    []*gfx.View

	textureIndex map[gfx.Texture]TextureRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		vertices:     make([][]gfx.Vertex, 0, 64),
		textures:     make([]gfx.Texture, 0, 8),
		views:        make([]*gfx.View, 0, 4),
		textureIndex: make(map[gfx.Texture]TextureRef),
	}
}

// AddVertices copies a vertex batch into the pool and returns its reference.
func (p *ResourcePool) AddVertices(v []gfx.Vertex) VertexRef {
	p.vertices = append(p.vertices, append([]gfx.Vertex(nil), v...))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return VertexRef(uint32(len(p.vertices) - 1))
}

// GetVertices returns the vertex batch for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetVertices(ref VertexRef) []gfx.Vertex {
	if int(ref) >= len(p.vertices) {
		return nil
	}
	return p.vertices[ref]
}

// VertexBatchCount returns the number of vertex batches in the pool.
func (p *ResourcePool) VertexBatchCount() int {
	return len(p.vertices)
}

// AddTexture adds a texture to the pool and returns its reference.
// A nil texture yields InvalidRef. Adding the same texture twice returns
// the first reference.
func (p *ResourcePool) AddTexture(tex gfx.Texture) TextureRef {
	if tex == nil {
		return TextureRef(InvalidRef)
	}
	comparable := reflect.TypeOf(tex).Comparable()
	if comparable {
		if ref, ok := p.textureIndex[tex]; ok {
			return ref
		}
	}
	p.textures = append(p.textures, tex)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := TextureRef(uint32(len(p.textures) - 1))
	if comparable {
		p.textureIndex[tex] = ref
	}
	return ref
}

// GetTexture returns the texture for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetTexture(ref TextureRef) gfx.Texture {
	if int(ref) >= len(p.textures) {
		return nil
	}
	return p.textures[ref]
}

// TextureCount returns the number of distinct textures in the pool.
func (p *ResourcePool) TextureCount() int {
	return len(p.textures)
}

// AddView copies a view into the pool and returns its reference.
func (p *ResourcePool) AddView(v *gfx.View) ViewRef {
	p.views = append(p.views, v.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ViewRef(uint32(len(p.views) - 1))
}

// GetView returns the view for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetView(ref ViewRef) *gfx.View {
	if int(ref) >= len(p.views) {
		return nil
	}
	return p.views[ref]
}

// ViewCount returns the number of views in the pool.
func (p *ResourcePool) ViewCount() int {
	return len(p.views)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.vertices = p.vertices[:0]
	p.textures = p.textures[:0]
	p.views = p.views[:0]
	clear(p.textureIndex)
}

// Clone creates a deep copy of the resource pool.
// Vertex batches and views are copied; textures are shared.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		vertices:     make([][]gfx.Vertex, len(p.vertices)),
		textures:     make([]gfx.Texture, len(p.textures)),
		views:        make([]*gfx.View, len(p.views)),
		textureIndex: make(map[gfx.Texture]TextureRef, len(p.textureIndex)),
	}

	for i, v := range p.vertices {
		clone.vertices[i] = append([]gfx.Vertex(nil), v...)
	}
	for i, v := range p.views {
		clone.views[i] = v.Clone()
	}

	// Textures are shared by reference, like images in a display list.
	copy(clone.textures, p.textures)
	for k, v := range p.textureIndex {
		clone.textureIndex[k] = v
	}

	return clone
}
