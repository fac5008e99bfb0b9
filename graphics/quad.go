package graphics

// Viewport describes a rectangular sub-region of a texture in pixels.
type Viewport struct {
	X, Y, W, H float64
}

// Quad selects a sub-region of a texture for drawing. It holds no
// reference to any texture; only the reference dimensions it was
// created against.
type Quad struct {
	viewport Viewport
	sw, sh   float64
	vertices [4]Vertex
}

// NewQuad creates a quad with the given viewport against a texture of
// dimensions sw x sh.
func NewQuad(v Viewport, sw, sh float64) *Quad {
	q := &Quad{sw: sw, sh: sh}
	q.refresh(v, sw, sh)
	return q
}

// Vertices are ordered for use with triangle strips:
// 0---2
// | / |
// 1---3
func (q *Quad) refresh(v Viewport, sw, sh float64) {
	q.viewport = v
	q.sw = sw
	q.sh = sh

	q.vertices[0].X = 0
	q.vertices[0].Y = 0
	q.vertices[1].X = 0
	q.vertices[1].Y = float32(v.H)
	q.vertices[2].X = float32(v.W)
	q.vertices[2].Y = 0
	q.vertices[3].X = float32(v.W)
	q.vertices[3].Y = float32(v.H)

	q.vertices[0].S = float32(v.X / sw)
	q.vertices[0].T = float32(v.Y / sh)
	q.vertices[1].S = float32(v.X / sw)
	q.vertices[1].T = float32((v.Y + v.H) / sh)
	q.vertices[2].S = float32((v.X + v.W) / sw)
	q.vertices[2].T = float32(v.Y / sh)
	q.vertices[3].S = float32((v.X + v.W) / sw)
	q.vertices[3].T = float32((v.Y + v.H) / sh)
}

// SetViewport changes the sub-region the quad selects.
func (q *Quad) SetViewport(v Viewport) {
	q.refresh(v, q.sw, q.sh)
}

// GetViewport returns the current sub-region.
func (q *Quad) GetViewport() Viewport {
	return q.viewport
}

// TextureWidth returns the reference texture width.
func (q *Quad) TextureWidth() float64 {
	return q.sw
}

// TextureHeight returns the reference texture height.
func (q *Quad) TextureHeight() float64 {
	return q.sh
}

// Vertices returns the quad's untransformed vertices.
func (q *Quad) Vertices() [4]Vertex {
	return q.vertices
}
