package graphics

import (
	"errors"
	"fmt"

	"github.com/LukeMS/love2d/image"
)

// Canvas errors.
var (
	ErrCanvasGrabbed    = errors.New("graphics: another canvas is already grabbing")
	ErrCanvasNotGrabbed = errors.New("graphics: canvas is not grabbing")
)

// currentCanvas tracks the canvas drawing is currently redirected to.
// Single-threaded by contract, like the rest of the render state.
var currentCanvas *Canvas

// Canvas is an offscreen render target that can itself be drawn as a
// texture.
type Canvas struct {
	target CanvasTarget
	width  int
	height int
	filter FilterMode
	wrap   WrapMode
}

// NewCanvas creates a w x h offscreen target on the given renderer.
func NewCanvas(r Renderer, w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("graphics: invalid canvas size %dx%d", w, h)
	}

	target, err := r.NewCanvas(w, h)
	if err != nil {
		return nil, err
	}

	return &Canvas{target: target, width: w, height: h}, nil
}

// StartGrab redirects all drawing to the canvas until StopGrab. Only
// one canvas can grab at a time.
func (c *Canvas) StartGrab() error {
	if currentCanvas == c {
		return nil
	}
	if currentCanvas != nil {
		return ErrCanvasGrabbed
	}
	currentCanvas = c
	c.target.Begin()
	return nil
}

// StopGrab restores drawing to the screen.
func (c *Canvas) StopGrab() error {
	if currentCanvas != c {
		return ErrCanvasNotGrabbed
	}
	currentCanvas = nil
	c.target.End()
	return nil
}

// Clear fills the canvas with a color.
func (c *Canvas) Clear(col Color) {
	c.target.Clear(col)
}

// Current returns the canvas drawing is redirected to, or nil.
func Current() *Canvas {
	return currentCanvas
}

// ImageData reads the canvas contents back into CPU-side pixel data.
func (c *Canvas) ImageData() (*image.ImageData, error) {
	pix, err := c.target.Pixels()
	if err != nil {
		return nil, err
	}
	return image.NewImageDataBytes(c.width, c.height, pix)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Vertices implements Texture so canvases can be drawn and used as
// particle textures.
func (c *Canvas) Vertices() [4]Vertex {
	return c.target.Vertices()
}

// SetFilter sets the sampling filter used when the canvas is drawn.
func (c *Canvas) SetFilter(f FilterMode) { c.filter = f }

// Filter returns the current sampling filter.
func (c *Canvas) Filter() FilterMode { return c.filter }

// SetWrap sets the addressing mode used outside the canvas bounds.
func (c *Canvas) SetWrap(w WrapMode) { c.wrap = w }

// Wrap returns the current addressing mode.
func (c *Canvas) Wrap() WrapMode { return c.wrap }

// Target exposes the backend handle for drawing through a renderer.
func (c *Canvas) Target() CanvasTarget { return c.target }

// Release frees the backend resources. The canvas must not be used
// afterwards.
func (c *Canvas) Release() {
	if currentCanvas == c {
		currentCanvas = nil
		c.target.End()
	}
	c.target.Release()
}
