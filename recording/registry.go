package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/gfx"
)

// ErrUnknownBackend is returned by NewBackend for a name nobody registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a fresh backend. Every NewBackend call invokes it
// once, so backends never share state.
type BackendFactory func() Backend

// registry maps backend names to factories.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var backends = &registry{factories: make(map[string]BackendFactory)}

func (r *registry) lookup(name string) (BackendFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]BackendFactory)
}

// Register makes a backend available under name. Backend packages call it
// from init, the way database/sql drivers do:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics on an empty name, a nil factory or a name that is already
// taken, so wiring mistakes surface at program start.
func Register(name string, factory BackendFactory) {
	if name == "" {
		panic("recording: Register with empty name")
	}
	if factory == nil {
		panic("recording: Register factory is nil for " + name)
	}

	backends.mu.Lock()
	defer backends.mu.Unlock()
	if _, dup := backends.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends.factories[name] = factory
	gfx.Logger().Debug("recording: backend registered", "name", name)
}

// Unregister removes name from the registry. Unknown names are ignored.
func Unregister(name string) {
	backends.mu.Lock()
	defer backends.mu.Unlock()
	delete(backends.factories, name)
}

// NewBackend creates a backend by its registered name:
//
//	import _ "github.com/gogpu/gfx/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//
// The error wraps ErrUnknownBackend and lists the registered names, which
// usually reveals a missing blank import.
func NewBackend(name string) (Backend, error) {
	factory, ok := backends.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", ErrUnknownBackend, name, strings.Join(backends.names(), ", "))
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics with the error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered names in alphabetical order.
func Backends() []string {
	return backends.names()
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	_, ok := backends.lookup(name)
	return ok
}

// Count returns the number of registered backends.
func Count() int {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	return len(backends.factories)
}
