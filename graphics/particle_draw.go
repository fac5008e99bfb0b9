package graphics

// Batch fills and returns the system's vertex buffer for the current
// frame: four vertices per live particle in draw order, transformed by
// t. The returned slice aliases an internal buffer reused across calls.
func (ps *ParticleSystem) Batch(t *Transform) []Vertex {
	if ps.activeParticles == 0 {
		return ps.verts[:0]
	}

	var source [4]Vertex
	useQuads := len(ps.quads) > 0
	if !useQuads && ps.texture != nil {
		source = ps.texture.Vertices()
	}

	var local Transform
	n := 0
	for i := ps.head; i != noParticle; i = ps.pool[i].next {
		p := &ps.pool[i]

		if useQuads {
			qi := p.quadIndex
			if qi < 0 {
				qi = 0
			} else if qi >= len(ps.quads) {
				qi = len(ps.quads) - 1
			}
			source = ps.quads[qi].Vertices()
		}

		local.SetTransformation(p.position.X, p.position.Y, p.angle,
			p.size, p.size, ps.offsetX, ps.offsetY, 0, 0)

		out := ps.verts[n*4 : n*4+4]
		local.TransformVertices(out, source[:])

		for j := range out {
			out[j].SetColor(p.color)
		}
		n++
	}

	batch := ps.verts[:n*4]
	if t != nil {
		t.TransformVertices(batch, batch)
	}
	return batch
}

// Draw renders the system through r with the given transform. A nil
// transform draws in world coordinates as simulated.
func (ps *ParticleSystem) Draw(r Renderer, t *Transform) {
	if ps.activeParticles == 0 {
		return
	}
	r.DrawQuads(ps.texture, ps.Batch(t), nil)
}
