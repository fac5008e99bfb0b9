// Package rlaudio implements the audio.Backend contract on top of
// raylib's audio device. Static sources map to raylib Sounds, stream
// and queue sources to raylib AudioStreams fed with float32 samples.
package rlaudio

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LukeMS/love2d/audio"
	"github.com/LukeMS/love2d/internal/utils"
)

// Name is the backend identifier.
const Name = "raylib"

var (
	// ErrDeviceNotReady is returned when the audio device failed to
	// open.
	ErrDeviceNotReady = errors.New("rlaudio: audio device is not ready")

	// ErrSeekUnsupported is returned by voices raylib cannot seek.
	ErrSeekUnsupported = errors.New("rlaudio: seeking is not supported for this voice")

	// ErrQueueFull is returned when a queue voice has no free
	// submission slots.
	ErrQueueFull = errors.New("rlaudio: submission queue is full")
)

// streamChunk is the decode granularity for stream voices, in sample
// frames.
const streamChunk = 4096

// Backend plays audio through raylib.
type Backend struct {
	ownsDevice bool
}

// New returns an unopened backend. Call Init before creating voices.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// Init opens the audio device unless something else already did.
func (b *Backend) Init() error {
	if !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
		b.ownsDevice = true
	}
	if !rl.IsAudioDeviceReady() {
		return ErrDeviceNotReady
	}
	utils.Debug("rlaudio: audio device ready")
	return nil
}

// Close closes the audio device if this backend opened it.
func (b *Backend) Close() {
	if b.ownsDevice && rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
		b.ownsDevice = false
	}
}

// NewStaticVoice uploads the decoded buffer as a raylib Sound.
func (b *Backend) NewStaticVoice(d *audio.SoundData) (audio.Voice, error) {
	if !rl.IsAudioDeviceReady() {
		return nil, ErrDeviceNotReady
	}

	wave := rl.NewWave(
		uint32(d.SampleCount()),
		uint32(d.SampleRate()),
		uint32(d.BitDepth()),
		uint32(d.Channels()),
		d.Bytes(),
	)
	sound := rl.LoadSoundFromWave(wave)
	if sound.Stream.Buffer == nil {
		return nil, fmt.Errorf("rlaudio: sound upload failed (%d frames)", d.SampleCount())
	}
	return &staticVoice{sound: sound, duration: d.Duration()}, nil
}

// NewStreamVoice plays a decoder through an audio stream.
func (b *Backend) NewStreamVoice(dec audio.Decoder) (audio.Voice, error) {
	if !rl.IsAudioDeviceReady() {
		return nil, ErrDeviceNotReady
	}

	stream := rl.LoadAudioStream(uint32(dec.SampleRate()), 32, uint32(dec.Channels()))
	v := &streamVoice{
		stream:  stream,
		decoder: dec,
		pcm:     make([]byte, streamChunk*dec.Channels()*dec.BitDepth()/8),
	}
	return v, nil
}

// NewQueueVoice plays caller-submitted PCM through an audio stream.
func (b *Backend) NewQueueVoice(sampleRate, bitDepth, channels int) (audio.QueueVoice, error) {
	if !rl.IsAudioDeviceReady() {
		return nil, ErrDeviceNotReady
	}

	stream := rl.LoadAudioStream(uint32(sampleRate), 32, uint32(channels))
	return &queueVoice{
		stream:     stream,
		sampleRate: sampleRate,
		bitDepth:   bitDepth,
		channels:   channels,
	}, nil
}

// pcmToFloat32 converts 8-bit unsigned or 16-bit signed little-endian
// PCM to the float32 samples raylib streams consume.
func pcmToFloat32(pcm []byte, bitDepth int) []float32 {
	if bitDepth == 8 {
		out := make([]float32, len(pcm))
		for i, s := range pcm {
			out[i] = (float32(s) - 128) / 128
		}
		return out
	}

	out := make([]float32, len(pcm)/2)
	for i := range out {
		s := int16(uint16(pcm[i*2]) | uint16(pcm[i*2+1])<<8)
		out[i] = float32(s) / 32768
	}
	return out
}
