// Package audio plays PCM audio through a pluggable playback backend.
// Sources come in three flavors: static (whole sound in memory),
// stream (decoded on the fly) and queue (caller-fed PCM buffers).
package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for unsupported sample rate,
	// channel or bit depth combinations.
	ErrInvalidFormat = errors.New("audio: invalid sound format")
)

// validFormat reports whether the PCM format is one the engine
// handles: mono or stereo, 8 or 16 bit.
func validFormat(sampleRate, channels, bitDepth int) bool {
	if sampleRate <= 0 {
		return false
	}
	if channels != 1 && channels != 2 {
		return false
	}
	return bitDepth == 8 || bitDepth == 16
}

// frameSize returns the byte size of one sample frame.
func frameSize(channels, bitDepth int) int {
	return channels * bitDepth / 8
}

// SoundData is a fully decoded PCM buffer.
type SoundData struct {
	sampleRate int
	channels   int
	bitDepth   int
	data       []byte
}

// NewSoundData wraps raw PCM bytes. The byte length must be a multiple
// of the frame size.
func NewSoundData(sampleRate, channels, bitDepth int, data []byte) (*SoundData, error) {
	if !validFormat(sampleRate, channels, bitDepth) {
		return nil, fmt.Errorf("%w: %d Hz, %d ch, %d bit", ErrInvalidFormat, sampleRate, channels, bitDepth)
	}
	if len(data)%frameSize(channels, bitDepth) != 0 {
		return nil, fmt.Errorf("audio: PCM length %d is not frame-aligned", len(data))
	}
	return &SoundData{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		data:       data,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (s *SoundData) SampleRate() int { return s.sampleRate }

// Channels returns the channel count (1 or 2).
func (s *SoundData) Channels() int { return s.channels }

// BitDepth returns the bits per sample (8 or 16).
func (s *SoundData) BitDepth() int { return s.bitDepth }

// Bytes returns the raw PCM buffer.
func (s *SoundData) Bytes() []byte { return s.data }

// SampleCount returns the number of sample frames.
func (s *SoundData) SampleCount() int {
	return len(s.data) / frameSize(s.channels, s.bitDepth)
}

// Duration returns the playback length in seconds.
func (s *SoundData) Duration() float64 {
	return float64(s.SampleCount()) / float64(s.sampleRate)
}

// Decoder produces PCM for stream sources, one chunk at a time.
type Decoder interface {
	// Decode fills buf with PCM bytes, returning how many were
	// written. Short or zero counts near the end of the stream are
	// expected; io errors are returned as is.
	Decode(buf []byte) (int, error)

	// Seek jumps to an absolute offset in seconds.
	Seek(seconds float64) error

	// Rewind restarts the stream from the beginning.
	Rewind() error

	SampleRate() int
	Channels() int
	BitDepth() int

	// Duration returns the total length in seconds, or a negative
	// value when unknown.
	Duration() float64

	// IsFinished reports whether the stream is exhausted.
	IsFinished() bool
}
