package graphics

import (
	"errors"
	"sync"

	"github.com/LukeMS/love2d/image"
)

// Renderer errors.
var (
	// ErrRendererNotAvailable is returned when a requested renderer is
	// not registered.
	ErrRendererNotAvailable = errors.New("graphics: renderer not available")
)

// Renderer is the render backend contract. It owns GPU resources;
// everything above it (particle systems, canvases, quads) only holds
// non-owning handles.
type Renderer interface {
	// Name returns the backend identifier (e.g. "raylib").
	Name() string

	// Init initializes the backend. Must be called before any other
	// operation.
	Init() error

	// Close releases all backend resources.
	Close()

	// NewTexture uploads pixel data and returns a texture handle.
	NewTexture(img *image.ImageData) (Texture, error)

	// NewCanvas creates an offscreen render target.
	NewCanvas(w, h int) (CanvasTarget, error)

	// DrawQuads draws len(verts)/4 textured quads through the given
	// transform. Vertices are in triangle-strip order per quad.
	DrawQuads(tex Texture, verts []Vertex, t *Transform)
}

// CanvasTarget is a backend render target. Begin redirects drawing to
// the target until End; Pixels reads the target's contents back.
type CanvasTarget interface {
	Texture
	Begin()
	End()
	Clear(c Color)
	Pixels() ([]byte, error)
	Release()
}

// RendererFactory creates a renderer instance.
type RendererFactory func() Renderer

var (
	rendererMu sync.RWMutex
	renderers  = make(map[string]RendererFactory)
)

// RegisterRenderer registers a backend factory, typically from an
// init() in the backend package. Re-registering a name replaces it.
func RegisterRenderer(name string, factory RendererFactory) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	renderers[name] = factory
}

// GetRenderer returns a renderer by name.
func GetRenderer(name string) (Renderer, error) {
	rendererMu.RLock()
	defer rendererMu.RUnlock()

	factory, ok := renderers[name]
	if !ok {
		return nil, ErrRendererNotAvailable
	}
	return factory(), nil
}

// Renderers returns the names of all registered backends.
func Renderers() []string {
	rendererMu.RLock()
	defer rendererMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	return names
}
