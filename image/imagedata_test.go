package image

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageData(t *testing.T) {
	d, err := NewImageData(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width())
	assert.Equal(t, 3, d.Height())
	assert.Len(t, d.Pixels(), 48)

	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}} {
		_, err := NewImageData(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestNewImageDataBytes(t *testing.T) {
	_, err := NewImageDataBytes(2, 2, make([]byte, 15))
	assert.Error(t, err)

	d, err := NewImageDataBytes(2, 2, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Width())
}

func TestPixelAccess(t *testing.T) {
	d, err := NewImageData(3, 3)
	require.NoError(t, err)

	red := Pixel{R: 255, A: 255}
	require.NoError(t, d.SetPixel(1, 2, red))

	got, err := d.GetPixel(1, 2)
	require.NoError(t, err)
	assert.Equal(t, red, got)

	_, err = d.GetPixel(3, 0)
	assert.ErrorIs(t, err, ErrPixelOutOfRange)
	assert.ErrorIs(t, d.SetPixel(0, -1, red), ErrPixelOutOfRange)

	assert.True(t, d.Inside(0, 0))
	assert.True(t, d.Inside(2, 2))
	assert.False(t, d.Inside(3, 2))
	assert.False(t, d.Inside(-1, 0))
}

func TestMapPixel(t *testing.T) {
	d, err := NewImageData(2, 2)
	require.NoError(t, err)

	d.MapPixel(func(x, y int, p Pixel) Pixel {
		return Pixel{R: uint8(x), G: uint8(y), A: 255}
	})

	got, err := d.GetPixel(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 1, G: 0, A: 255}, got)

	got, err = d.GetPixel(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 0, G: 1, A: 255}, got)
}

func TestPaste(t *testing.T) {
	src, err := NewImageData(2, 2)
	require.NoError(t, err)
	src.MapPixel(func(x, y int, p Pixel) Pixel {
		return Pixel{R: 200, A: 255}
	})

	dst, err := NewImageData(4, 4)
	require.NoError(t, err)

	dst.Paste(src, 1, 1, 0, 0, 2, 2)

	got, err := dst.GetPixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got.R)

	got, err = dst.GetPixel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got.R)

	got, err = dst.GetPixel(3, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), got.R)
}

func TestPasteClipsAtEdges(t *testing.T) {
	src, err := NewImageData(2, 2)
	require.NoError(t, err)
	src.MapPixel(func(x, y int, p Pixel) Pixel {
		return Pixel{G: 128, A: 255}
	})

	dst, err := NewImageData(3, 3)
	require.NoError(t, err)

	// Hanging off the top-left corner: only (0, 0) lands.
	dst.Paste(src, -1, -1, 0, 0, 2, 2)
	got, err := dst.GetPixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), got.G)

	// Fully off-image pastes are no-ops.
	before := append([]byte(nil), dst.Pixels()...)
	dst.Paste(src, 5, 5, 0, 0, 2, 2)
	assert.Equal(t, before, dst.Pixels())
}

func TestClone(t *testing.T) {
	d, err := NewImageData(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.SetPixel(0, 0, Pixel{B: 9, A: 255}))

	c := d.Clone()
	require.NoError(t, c.SetPixel(0, 0, Pixel{R: 1, A: 255}))

	orig, err := d.GetPixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), orig.B, "clone writes must not affect the source")
}

func TestDecodePNGRoundTrip(t *testing.T) {
	d, err := NewImageData(3, 2)
	require.NoError(t, err)
	require.NoError(t, d.SetPixel(2, 1, Pixel{R: 10, G: 20, B: 30, A: 255}))

	var buf bytes.Buffer
	require.NoError(t, d.EncodePNG(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Width())
	assert.Equal(t, 2, decoded.Height())

	got, err := decoded.GetPixel(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 10, G: 20, B: 30, A: 255}, got)
}

func TestEncodeTGA(t *testing.T) {
	d, err := NewImageData(2, 1)
	require.NoError(t, err)
	require.NoError(t, d.SetPixel(0, 0, Pixel{R: 1, G: 2, B: 3, A: 4}))

	var buf bytes.Buffer
	require.NoError(t, d.EncodeTGA(&buf))

	out := buf.Bytes()
	require.Len(t, out, 18+2*4)
	assert.Equal(t, byte(2), out[2], "image type: uncompressed true-color")
	assert.Equal(t, byte(32), out[16], "bits per pixel")

	// First pixel in BGRA order.
	assert.Equal(t, []byte{3, 2, 1, 4}, out[18:22])
}

func TestEncodeDispatch(t *testing.T) {
	d, err := NewImageData(1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf, FormatPNG))
	_, err = png.Decode(&buf)
	assert.NoError(t, err)

	assert.Error(t, d.Encode(&buf, EncodeFormat(99)))
}
