package graphics

// FilterMode controls texture sampling.
type FilterMode int

const (
	FilterLinear FilterMode = iota
	FilterNearest
)

// WrapMode controls texture addressing outside [0, 1].
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
)

// Texture is a non-owning handle to pixel data living on the render
// backend. The holder must not outlive the backend resource.
type Texture interface {
	// Width returns the pixel width of the texture.
	Width() int

	// Height returns the pixel height of the texture.
	Height() int

	// Vertices returns a full-texture quad in triangle-strip order.
	Vertices() [4]Vertex
}

// FullVertices builds the vertices of a quad covering a w x h texture.
// Backends use it so every Texture agrees on vertex order.
func FullVertices(w, h int) [4]Vertex {
	var verts [4]Vertex
	verts[1].Y = float32(h)
	verts[1].T = 1
	verts[2].X = float32(w)
	verts[2].S = 1
	verts[3].X = float32(w)
	verts[3].Y = float32(h)
	verts[3].S = 1
	verts[3].T = 1
	return verts
}
