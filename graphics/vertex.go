package graphics

// Vertex is the wire format handed to the render backend: a screen
// position, normalized texture coordinates and an 8-bit color.
type Vertex struct {
	X, Y float32
	S, T float32
	R, G, B, A uint8
}

// SetColor stores the color on the vertex as bytes.
func (v *Vertex) SetColor(c Color) {
	v.R, v.G, v.B, v.A = c.Bytes()
}
