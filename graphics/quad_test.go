package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadTexcoords(t *testing.T) {
	q := NewQuad(Viewport{X: 32, Y: 16, W: 32, H: 48}, 128, 64)

	verts := q.Vertices()

	// Strip order: top-left, bottom-left, top-right, bottom-right.
	assert.InDelta(t, 0.0, float64(verts[0].X), 1e-6)
	assert.InDelta(t, 0.0, float64(verts[0].Y), 1e-6)
	assert.InDelta(t, 0.25, float64(verts[0].S), 1e-6)
	assert.InDelta(t, 0.25, float64(verts[0].T), 1e-6)

	assert.InDelta(t, 48.0, float64(verts[1].Y), 1e-6)
	assert.InDelta(t, 1.0, float64(verts[1].T), 1e-6)

	assert.InDelta(t, 32.0, float64(verts[2].X), 1e-6)
	assert.InDelta(t, 0.5, float64(verts[2].S), 1e-6)

	assert.InDelta(t, 32.0, float64(verts[3].X), 1e-6)
	assert.InDelta(t, 48.0, float64(verts[3].Y), 1e-6)
	assert.InDelta(t, 0.5, float64(verts[3].S), 1e-6)
	assert.InDelta(t, 1.0, float64(verts[3].T), 1e-6)
}

func TestQuadSetViewport(t *testing.T) {
	q := NewQuad(Viewport{X: 0, Y: 0, W: 16, H: 16}, 64, 64)
	q.SetViewport(Viewport{X: 16, Y: 0, W: 16, H: 16})

	got := q.GetViewport()
	assert.Equal(t, 16.0, got.X)

	verts := q.Vertices()
	assert.InDelta(t, 0.25, float64(verts[0].S), 1e-6)
	assert.InDelta(t, 0.5, float64(verts[2].S), 1e-6)
}
