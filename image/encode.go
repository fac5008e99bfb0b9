package image

import (
	"encoding/binary"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
)

// EncodeFormat selects an output encoding.
type EncodeFormat int

const (
	// FormatPNG writes a PNG stream.
	FormatPNG EncodeFormat = iota
	// FormatTGA writes an uncompressed 32-bit Targa stream.
	FormatTGA
)

// Encode writes the image in the given format.
func (d *ImageData) Encode(w io.Writer, format EncodeFormat) error {
	switch format {
	case FormatPNG:
		return d.EncodePNG(w)
	case FormatTGA:
		return d.EncodeTGA(w)
	default:
		return fmt.Errorf("image: unknown encode format %d", format)
	}
}

// EncodePNG writes the image as PNG.
func (d *ImageData) EncodePNG(w io.Writer) error {
	rgba := &stdimage.RGBA{
		Pix:    d.pixels,
		Stride: d.width * 4,
		Rect:   stdimage.Rect(0, 0, d.width, d.height),
	}
	if err := png.Encode(w, rgba); err != nil {
		return fmt.Errorf("image: encode png: %w", err)
	}
	return nil
}

// EncodeTGA writes the image as an uncompressed 32-bit Targa file,
// top-left origin, BGRA channel order.
func (d *ImageData) EncodeTGA(w io.Writer) error {
	var header [18]byte
	header[2] = 2 // uncompressed true-color
	binary.LittleEndian.PutUint16(header[12:14], uint16(d.width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(d.height))
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // 8 alpha bits, top-left origin

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("image: encode tga: %w", err)
	}

	row := make([]byte, d.width*4)
	for y := 0; y < d.height; y++ {
		src := d.pixels[y*d.width*4:]
		for x := 0; x < d.width; x++ {
			row[x*4] = src[x*4+2]
			row[x*4+1] = src[x*4+1]
			row[x*4+2] = src[x*4]
			row[x*4+3] = src[x*4+3]
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("image: encode tga: %w", err)
		}
	}
	return nil
}
