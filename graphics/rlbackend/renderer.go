// Package rlbackend implements the graphics.Renderer contract on top
// of raylib. Importing the package registers the backend under the
// name "raylib"; the caller owns the window and GL context.
package rlbackend

import (
	"errors"
	"fmt"
	stdimage "image"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LukeMS/love2d/graphics"
	"github.com/LukeMS/love2d/image"
	"github.com/LukeMS/love2d/internal/utils"
)

// Name is the registry key of this backend.
const Name = "raylib"

// ErrNoWindow is returned by Init when no raylib window (and thus no
// GL context) exists yet.
var ErrNoWindow = errors.New("rlbackend: raylib window is not ready")

func init() {
	graphics.RegisterRenderer(Name, func() graphics.Renderer {
		return &Renderer{}
	})
}

// Renderer draws through raylib. All methods must run on the thread
// that owns the GL context.
type Renderer struct {
	ready bool
}

// Name returns the backend identifier.
func (r *Renderer) Name() string { return Name }

// Init verifies the GL context. The window must be opened first with
// rl.InitWindow.
func (r *Renderer) Init() error {
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	r.ready = true
	utils.Debug("rlbackend: initialized")
	return nil
}

// Close marks the backend unusable. Texture and canvas handles release
// their own GPU resources.
func (r *Renderer) Close() {
	r.ready = false
}

type texture struct {
	tex rl.Texture2D
}

func (t *texture) Width() int  { return int(t.tex.Width) }
func (t *texture) Height() int { return int(t.tex.Height) }

func (t *texture) Vertices() [4]graphics.Vertex {
	return graphics.FullVertices(int(t.tex.Width), int(t.tex.Height))
}

// Release frees the GPU texture.
func (t *texture) Release() {
	rl.UnloadTexture(t.tex)
}

// NewTexture uploads RGBA8 pixel data to the GPU.
func (r *Renderer) NewTexture(img *image.ImageData) (graphics.Texture, error) {
	if !r.ready {
		return nil, ErrNoWindow
	}

	rgba := &stdimage.RGBA{
		Pix:    img.Pixels(),
		Stride: img.Width() * 4,
		Rect:   stdimage.Rect(0, 0, img.Width(), img.Height()),
	}
	rlImg := rl.NewImageFromImage(rgba)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)

	if tex.ID == 0 {
		return nil, fmt.Errorf("rlbackend: texture upload failed (%dx%d)", img.Width(), img.Height())
	}
	return &texture{tex: tex}, nil
}

type canvasTarget struct {
	rt rl.RenderTexture2D
}

func (c *canvasTarget) Width() int  { return int(c.rt.Texture.Width) }
func (c *canvasTarget) Height() int { return int(c.rt.Texture.Height) }

func (c *canvasTarget) Vertices() [4]graphics.Vertex {
	return graphics.FullVertices(c.Width(), c.Height())
}

func (c *canvasTarget) Begin() { rl.BeginTextureMode(c.rt) }
func (c *canvasTarget) End()   { rl.EndTextureMode() }

// Clear must be called between Begin and End.
func (c *canvasTarget) Clear(col graphics.Color) {
	cr, cg, cb, ca := col.Bytes()
	rl.ClearBackground(rl.NewColor(cr, cg, cb, ca))
}

// Pixels reads the target back, flipping rows: render textures are
// stored bottom-up.
func (c *canvasTarget) Pixels() ([]byte, error) {
	img := rl.LoadImageFromTexture(c.rt.Texture)
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	w, h := c.Width(), c.Height()
	if len(colors) < w*h {
		return nil, fmt.Errorf("rlbackend: readback returned %d pixels, want %d", len(colors), w*h)
	}

	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			col := colors[src+x]
			i := (y*w + x) * 4
			out[i] = col.R
			out[i+1] = col.G
			out[i+2] = col.B
			out[i+3] = col.A
		}
	}
	return out, nil
}

func (c *canvasTarget) Release() {
	rl.UnloadRenderTexture(c.rt)
}

// NewCanvas creates an offscreen render target.
func (r *Renderer) NewCanvas(w, h int) (graphics.CanvasTarget, error) {
	if !r.ready {
		return nil, ErrNoWindow
	}
	rt := rl.LoadRenderTexture(int32(w), int32(h))
	if rt.ID == 0 {
		return nil, fmt.Errorf("rlbackend: render texture creation failed (%dx%d)", w, h)
	}
	return &canvasTarget{rt: rt}, nil
}

// DrawQuads draws len(verts)/4 textured quads. Each quad's vertices
// arrive in triangle-strip order and carry a uniform rotation and
// scale, so every quad maps onto one DrawTexturePro call.
func (r *Renderer) DrawQuads(tex graphics.Texture, verts []graphics.Vertex, t *graphics.Transform) {
	rlTex, flip := resolveTexture(tex)
	if rlTex == nil {
		return
	}

	if t != nil {
		transformed := make([]graphics.Vertex, len(verts))
		t.TransformVertices(transformed, verts)
		verts = transformed
	}

	texW := float32(rlTex.Width)
	texH := float32(rlTex.Height)

	for i := 0; i+3 < len(verts); i += 4 {
		v0, v1, v2 := verts[i], verts[i+1], verts[i+2]

		srcX := v0.S * texW
		srcY := v0.T * texH
		srcW := (v2.S - v0.S) * texW
		srcH := (v1.T - v0.T) * texH
		if flip {
			srcY = texH - srcY
			srcH = -srcH
		}

		dx := float64(v2.X - v0.X)
		dy := float64(v2.Y - v0.Y)
		destW := float32(math.Hypot(dx, dy))
		destH := float32(math.Hypot(float64(v1.X-v0.X), float64(v1.Y-v0.Y)))
		rotation := float32(math.Atan2(dy, dx) * 180 / math.Pi)

		rl.DrawTexturePro(*rlTex,
			rl.NewRectangle(srcX, srcY, srcW, srcH),
			rl.NewRectangle(v0.X, v0.Y, destW, destH),
			rl.NewVector2(0, 0),
			rotation,
			rl.NewColor(v0.R, v0.G, v0.B, v0.A))
	}
}

type targetProvider interface {
	Target() graphics.CanvasTarget
}

// resolveTexture digs the raylib texture out of a handle. Canvas
// texcoords are flipped because render textures are stored bottom-up.
func resolveTexture(tex graphics.Texture) (*rl.Texture2D, bool) {
	switch h := tex.(type) {
	case *texture:
		return &h.tex, false
	case *canvasTarget:
		return &h.rt.Texture, true
	case targetProvider:
		return resolveTexture(h.Target())
	default:
		return nil, false
	}
}
