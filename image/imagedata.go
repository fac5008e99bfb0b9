// Package image holds CPU-side pixel data: decoding from common
// formats, raw pixel access, pasting and re-encoding. GPU upload is the
// render backend's job.
package image

import (
	"errors"
	"fmt"
	stdimage "image"
	"image/draw"
	"io"

	_ "image/jpeg"
	_ "image/png"
)

var (
	// ErrInvalidDimensions is returned for zero or negative image
	// dimensions.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrPixelOutOfRange is returned for pixel access outside the
	// image bounds.
	ErrPixelOutOfRange = errors.New("image: pixel coordinates out of range")
)

// Pixel is a single RGBA8 pixel.
type Pixel struct {
	R, G, B, A uint8
}

// ImageData is raw RGBA8 pixel data in row-major order, top-left
// origin.
type ImageData struct {
	width  int
	height int
	pixels []byte
}

// NewImageData creates a w x h image with all pixels transparent black.
func NewImageData(w, h int) (*ImageData, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &ImageData{
		width:  w,
		height: h,
		pixels: make([]byte, w*h*4),
	}, nil
}

// NewImageDataBytes wraps an existing RGBA8 buffer without copying. The
// buffer length must be exactly w*h*4.
func NewImageDataBytes(w, h int, pixels []byte) (*ImageData, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(pixels) != w*h*4 {
		return nil, fmt.Errorf("image: pixel buffer is %d bytes, want %d", len(pixels), w*h*4)
	}
	return &ImageData{width: w, height: h, pixels: pixels}, nil
}

// Decode reads an encoded image (PNG or JPEG) and converts it to RGBA8.
func Decode(r io.Reader) (*ImageData, error) {
	src, _, err := stdimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	bounds := src.Bounds()
	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return NewImageDataBytes(bounds.Dx(), bounds.Dy(), rgba.Pix)
}

// Width returns the image width in pixels.
func (d *ImageData) Width() int { return d.width }

// Height returns the image height in pixels.
func (d *ImageData) Height() int { return d.height }

// Pixels returns the backing RGBA8 buffer. Mutations write through.
func (d *ImageData) Pixels() []byte { return d.pixels }

// Inside reports whether (x, y) lies within the image.
func (d *ImageData) Inside(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// GetPixel reads the pixel at (x, y).
func (d *ImageData) GetPixel(x, y int) (Pixel, error) {
	if !d.Inside(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d, %d)", ErrPixelOutOfRange, x, y)
	}
	i := (y*d.width + x) * 4
	return Pixel{R: d.pixels[i], G: d.pixels[i+1], B: d.pixels[i+2], A: d.pixels[i+3]}, nil
}

// SetPixel writes the pixel at (x, y).
func (d *ImageData) SetPixel(x, y int, p Pixel) error {
	if !d.Inside(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrPixelOutOfRange, x, y)
	}
	i := (y*d.width + x) * 4
	d.pixels[i] = p.R
	d.pixels[i+1] = p.G
	d.pixels[i+2] = p.B
	d.pixels[i+3] = p.A
	return nil
}

// MapPixel applies fn to every pixel, replacing each with the returned
// value. Rows are visited top to bottom.
func (d *ImageData) MapPixel(fn func(x, y int, p Pixel) Pixel) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			i := (y*d.width + x) * 4
			p := fn(x, y, Pixel{
				R: d.pixels[i],
				G: d.pixels[i+1],
				B: d.pixels[i+2],
				A: d.pixels[i+3],
			})
			d.pixels[i] = p.R
			d.pixels[i+1] = p.G
			d.pixels[i+2] = p.B
			d.pixels[i+3] = p.A
		}
	}
}

// Paste copies the sw x sh region of src at (sx, sy) into d at
// (dx, dy). The region is clipped against both images; a fully clipped
// paste is a no-op.
func (d *ImageData) Paste(src *ImageData, dx, dy, sx, sy, sw, sh int) {
	// Clip against the source.
	if sx < 0 {
		dx -= sx
		sw += sx
		sx = 0
	}
	if sy < 0 {
		dy -= sy
		sh += sy
		sy = 0
	}
	if sx+sw > src.width {
		sw = src.width - sx
	}
	if sy+sh > src.height {
		sh = src.height - sy
	}

	// Clip against the destination.
	if dx < 0 {
		sx -= dx
		sw += dx
		dx = 0
	}
	if dy < 0 {
		sy -= dy
		sh += dy
		dy = 0
	}
	if dx+sw > d.width {
		sw = d.width - dx
	}
	if dy+sh > d.height {
		sh = d.height - dy
	}

	if sw <= 0 || sh <= 0 {
		return
	}

	for row := 0; row < sh; row++ {
		srcOff := ((sy+row)*src.width + sx) * 4
		dstOff := ((dy+row)*d.width + dx) * 4
		copy(d.pixels[dstOff:dstOff+sw*4], src.pixels[srcOff:srcOff+sw*4])
	}
}

// Clone returns a deep copy of the image.
func (d *ImageData) Clone() *ImageData {
	return &ImageData{
		width:  d.width,
		height: d.height,
		pixels: append([]byte(nil), d.pixels...),
	}
}
