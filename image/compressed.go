package image

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

var (
	// ErrNotDDS is returned when data does not start with a DDS magic.
	ErrNotDDS = errors.New("image: not a DDS file")

	// ErrUnsupportedDDSFormat is returned for DDS pixel formats other
	// than DXT1 and DXT5.
	ErrUnsupportedDDSFormat = errors.New("image: unsupported DDS pixel format")
)

const ddsHeaderSize = 4 + 124

// DecodeDDS decompresses the top-level mip of a DXT1 or DXT5 encoded
// DDS file into RGBA8 pixel data.
func DecodeDDS(data []byte) (*ImageData, error) {
	if len(data) < ddsHeaderSize || string(data[:4]) != "DDS " {
		return nil, ErrNotDDS
	}

	height := int(binary.LittleEndian.Uint32(data[12:16]))
	width := int(binary.LittleEndian.Uint32(data[16:20]))
	fourCC := string(data[84:88])
	payload := data[ddsHeaderSize:]

	var (
		pix []byte
		err error
	)
	switch fourCC {
	case "DXT1":
		if want := blockDataSize(width, height, 8); len(payload) < want {
			return nil, fmt.Errorf("image: DXT1 payload is %d bytes, want %d", len(payload), want)
		}
		pix, err = dxt.DecodeDXT1(payload, uint(width), uint(height))
	case "DXT5":
		if want := blockDataSize(width, height, 16); len(payload) < want {
			return nil, fmt.Errorf("image: DXT5 payload is %d bytes, want %d", len(payload), want)
		}
		pix, err = dxt.DecodeDXT5(payload, uint(width), uint(height))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDDSFormat, fourCC)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode DDS: %w", err)
	}

	return NewImageDataBytes(width, height, pix)
}

// DecodeLZ4Block decompresses a raw LZ4 block of a known decompressed
// size, as used by texture containers that LZ4-wrap their mip payloads.
func DecodeLZ4Block(src []byte, decompressedSize int) ([]byte, error) {
	if decompressedSize <= 0 {
		return nil, fmt.Errorf("image: invalid LZ4 decompressed size %d", decompressedSize)
	}
	dst := make([]byte, decompressedSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("image: decompress LZ4 block: %w", err)
	}
	return dst[:n], nil
}

// blockDataSize returns the byte size of a w x h image in 4x4 blocks of
// blockBytes each.
func blockDataSize(w, h, blockBytes int) int {
	return ((w + 3) / 4) * ((h + 3) / 4) * blockBytes
}
