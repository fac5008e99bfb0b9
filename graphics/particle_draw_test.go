package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeMS/love2d/image"
)

type recordingRenderer struct {
	draws    int
	lastTex  Texture
	lastLen  int
	lastCopy []Vertex
}

func (r *recordingRenderer) Name() string { return "recording" }
func (r *recordingRenderer) Init() error  { return nil }
func (r *recordingRenderer) Close()       {}

func (r *recordingRenderer) NewTexture(*image.ImageData) (Texture, error) {
	return nil, ErrRendererNotAvailable
}

func (r *recordingRenderer) NewCanvas(w, h int) (CanvasTarget, error) {
	return nil, ErrRendererNotAvailable
}

func (r *recordingRenderer) DrawQuads(tex Texture, verts []Vertex, t *Transform) {
	r.draws++
	r.lastTex = tex
	r.lastLen = len(verts)
	r.lastCopy = append(r.lastCopy[:0], verts...)
}

func TestBatchVertexPlacement(t *testing.T) {
	ps := newTestSystem(t, 4)
	ps.SetParticleLifetime(1, 1)
	ps.SetOffset(0, 0)
	ps.SetPosition(10, 20)
	ps.Emit(1)

	batch := ps.Batch(nil)
	require.Len(t, batch, 4)

	// Texture is 2x2; with no rotation, unit scale and a zero offset
	// the quad spans [10,12] x [20,22] in strip order.
	assert.InDelta(t, 10.0, float64(batch[0].X), 1e-5)
	assert.InDelta(t, 20.0, float64(batch[0].Y), 1e-5)
	assert.InDelta(t, 10.0, float64(batch[1].X), 1e-5)
	assert.InDelta(t, 22.0, float64(batch[1].Y), 1e-5)
	assert.InDelta(t, 12.0, float64(batch[2].X), 1e-5)
	assert.InDelta(t, 20.0, float64(batch[2].Y), 1e-5)
	assert.InDelta(t, 12.0, float64(batch[3].X), 1e-5)
	assert.InDelta(t, 22.0, float64(batch[3].Y), 1e-5)

	// Default color is opaque white.
	assert.Equal(t, uint8(255), batch[0].R)
	assert.Equal(t, uint8(255), batch[0].A)
}

func TestBatchAppliesColorCurve(t *testing.T) {
	ps := newTestSystem(t, 1)
	ps.SetParticleLifetime(1, 1)
	ps.SetColors(Color{R: 1, A: 1}, Color{R: 1})
	ps.Emit(1)
	ps.Update(0.5)

	batch := ps.Batch(nil)
	require.Len(t, batch, 4)
	assert.Equal(t, uint8(255), batch[0].R)
	assert.InDelta(t, 127, float64(batch[0].A), 1)
}

func TestBatchUsesQuadTexcoords(t *testing.T) {
	ps := newTestSystem(t, 1)
	ps.SetParticleLifetime(1, 1)
	ps.SetOffset(0, 0)
	ps.SetQuads(NewQuad(Viewport{X: 1, Y: 0, W: 1, H: 2}, 2, 2))
	ps.Emit(1)

	batch := ps.Batch(nil)
	require.Len(t, batch, 4)
	assert.InDelta(t, 0.5, float64(batch[0].S), 1e-6)
	assert.InDelta(t, 1.0, float64(batch[2].S), 1e-6)
	// Vertex spans the 1x2 viewport, not the full texture.
	assert.InDelta(t, 1.0, float64(batch[2].X), 1e-5)
	assert.InDelta(t, 2.0, float64(batch[3].Y), 1e-5)
}

func TestBatchOuterTransform(t *testing.T) {
	ps := newTestSystem(t, 1)
	ps.SetParticleLifetime(1, 1)
	ps.SetOffset(0, 0)
	ps.Emit(1)

	var outer Transform
	outer.SetTransformation(100, 50, 0, 1, 1, 0, 0, 0, 0)

	batch := ps.Batch(&outer)
	require.Len(t, batch, 4)
	assert.InDelta(t, 100.0, float64(batch[0].X), 1e-5)
	assert.InDelta(t, 50.0, float64(batch[0].Y), 1e-5)
}

func TestDraw(t *testing.T) {
	ps := newTestSystem(t, 4)
	ps.SetParticleLifetime(1, 1)

	r := &recordingRenderer{}
	ps.Draw(r, nil)
	assert.Equal(t, 0, r.draws, "empty systems issue no draw calls")

	ps.Emit(3)
	ps.Draw(r, nil)
	assert.Equal(t, 1, r.draws)
	assert.Equal(t, 12, r.lastLen)
	assert.Equal(t, ps.Texture(), r.lastTex)
}
