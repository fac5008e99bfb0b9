package audio

import (
	"errors"
	"fmt"
)

// Queue source errors.
var (
	// ErrQueueTypeMismatch is returned when queueing into a non-queue
	// source.
	ErrQueueTypeMismatch = errors.New("audio: cannot queue into a non-queue source")

	// ErrQueueFormatMismatch is returned when queued sound data does
	// not match the source's PCM format.
	ErrQueueFormatMismatch = errors.New("audio: queued data format does not match source")

	// ErrQueueMalformedLength is returned when a queued buffer is not
	// a whole number of sample frames.
	ErrQueueMalformedLength = errors.New("audio: queued data length is not frame-aligned")

	// ErrQueueLooping is returned when enabling looping on a queue
	// source.
	ErrQueueLooping = errors.New("audio: queue sources cannot loop")

	// ErrCloneUnsupported is returned when cloning a stream or queue
	// source.
	ErrCloneUnsupported = errors.New("audio: only static sources can be cloned")
)

// SourceType describes where a source's audio data comes from.
type SourceType int

const (
	// TypeStatic plays a fully decoded in-memory buffer.
	TypeStatic SourceType = iota
	// TypeStream decodes audio on the fly during playback.
	TypeStream
	// TypeQueue plays caller-submitted PCM buffers in order.
	TypeQueue
)

// Unit selects how playback offsets are expressed.
type Unit int

const (
	// UnitSeconds measures offsets in seconds.
	UnitSeconds Unit = iota
	// UnitSamples measures offsets in sample frames.
	UnitSamples
)

// Source is a playable sound. It wraps a backend voice with playback
// state, volume and pitch properties and queueing for queue sources.
type Source struct {
	typ     SourceType
	backend Backend
	voice   Voice

	data    *SoundData
	decoder Decoder

	sampleRate int
	channels   int
	bitDepth   int

	volume    float64
	pitch     float64
	looping   bool
	minVolume float64
	maxVolume float64

	position [3]float64
	velocity [3]float64
	relative bool

	paused bool
}

// NewStaticSource creates a source playing a decoded buffer.
func NewStaticSource(b Backend, d *SoundData) (*Source, error) {
	voice, err := b.NewStaticVoice(d)
	if err != nil {
		return nil, err
	}
	s := newSource(TypeStatic, b, voice, d.SampleRate(), d.Channels(), d.BitDepth())
	s.data = d
	return s, nil
}

// NewStreamSource creates a source decoding audio during playback.
func NewStreamSource(b Backend, dec Decoder) (*Source, error) {
	if !validFormat(dec.SampleRate(), dec.Channels(), dec.BitDepth()) {
		return nil, fmt.Errorf("%w: %d Hz, %d ch, %d bit",
			ErrInvalidFormat, dec.SampleRate(), dec.Channels(), dec.BitDepth())
	}
	voice, err := b.NewStreamVoice(dec)
	if err != nil {
		return nil, err
	}
	s := newSource(TypeStream, b, voice, dec.SampleRate(), dec.Channels(), dec.BitDepth())
	s.decoder = dec
	return s, nil
}

// NewQueueSource creates a source fed through Queue.
func NewQueueSource(b Backend, sampleRate, bitDepth, channels int) (*Source, error) {
	if !validFormat(sampleRate, channels, bitDepth) {
		return nil, fmt.Errorf("%w: %d Hz, %d ch, %d bit",
			ErrInvalidFormat, sampleRate, channels, bitDepth)
	}
	voice, err := b.NewQueueVoice(sampleRate, bitDepth, channels)
	if err != nil {
		return nil, err
	}
	return newSource(TypeQueue, b, voice, sampleRate, channels, bitDepth), nil
}

func newSource(typ SourceType, b Backend, voice Voice, rate, channels, depth int) *Source {
	return &Source{
		typ:        typ,
		backend:    b,
		voice:      voice,
		sampleRate: rate,
		channels:   channels,
		bitDepth:   depth,
		volume:     1,
		pitch:      1,
		maxVolume:  1,
	}
}

// Type returns the source type.
func (s *Source) Type() SourceType { return s.typ }

// SampleRate returns the PCM sample rate in Hz.
func (s *Source) SampleRate() int { return s.sampleRate }

// Channels returns the PCM channel count.
func (s *Source) Channels() int { return s.channels }

// BitDepth returns the PCM bits per sample.
func (s *Source) BitDepth() int { return s.bitDepth }

// Play starts or resumes playback.
func (s *Source) Play() error {
	if err := s.voice.Play(); err != nil {
		return err
	}
	s.paused = false
	return nil
}

// Pause halts playback keeping the current offset.
func (s *Source) Pause() {
	if s.voice.IsPlaying() {
		s.voice.Pause()
		s.paused = true
	}
}

// Stop halts playback and rewinds to the start.
func (s *Source) Stop() {
	s.voice.Stop()
	s.paused = false
	if s.typ == TypeStream {
		// Stream decoders rewind so the next Play starts clean.
		_ = s.decoder.Rewind()
	}
}

// IsPlaying reports whether the source is currently audible.
func (s *Source) IsPlaying() bool {
	return s.voice.IsPlaying()
}

// IsPaused reports whether playback is halted mid-way.
func (s *Source) IsPaused() bool {
	return s.paused
}

// IsFinished reports whether playback ran to the end.
func (s *Source) IsFinished() bool {
	if s.voice.IsPlaying() || s.paused {
		return false
	}
	if s.typ == TypeStream {
		return s.decoder.IsFinished()
	}
	return true
}

// Update services the backend voice. Stream sources must be updated
// regularly or playback starves.
func (s *Source) Update() {
	s.voice.Update()
}

// Seek jumps to an absolute playback offset.
func (s *Source) Seek(offset float64, unit Unit) error {
	return s.voice.Seek(s.toSeconds(offset, unit))
}

// Tell returns the current playback offset.
func (s *Source) Tell(unit Unit) float64 {
	seconds := s.voice.Tell()
	if unit == UnitSamples {
		return seconds * float64(s.sampleRate)
	}
	return seconds
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (s *Source) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.volume = v
	s.voice.SetVolume(v)
}

// Volume returns the playback volume.
func (s *Source) Volume() float64 { return s.volume }

// SetPitch sets the playback rate multiplier. Non-positive values are
// ignored.
func (s *Source) SetPitch(p float64) {
	if p <= 0 {
		return
	}
	s.pitch = p
	s.voice.SetPitch(p)
}

// Pitch returns the playback rate multiplier.
func (s *Source) Pitch() float64 { return s.pitch }

// SetLooping enables or disables looping. Queue sources cannot loop.
func (s *Source) SetLooping(loop bool) error {
	if s.typ == TypeQueue && loop {
		return ErrQueueLooping
	}
	s.looping = loop
	s.voice.SetLooping(loop)
	return nil
}

// IsLooping reports whether the source loops.
func (s *Source) IsLooping() bool { return s.looping }

// SetVolumeLimits sets the positional attenuation floor and ceiling.
func (s *Source) SetVolumeLimits(min, max float64) {
	s.minVolume = min
	s.maxVolume = max
}

// VolumeLimits returns the attenuation floor and ceiling.
func (s *Source) VolumeLimits() (min, max float64) {
	return s.minVolume, s.maxVolume
}

// SetPosition sets the 3D position used by spatial backends.
func (s *Source) SetPosition(x, y, z float64) {
	s.position = [3]float64{x, y, z}
	s.forwardSpatial()
}

// Position returns the 3D position.
func (s *Source) Position() (x, y, z float64) {
	return s.position[0], s.position[1], s.position[2]
}

// SetVelocity sets the 3D velocity used by spatial backends.
func (s *Source) SetVelocity(x, y, z float64) {
	s.velocity = [3]float64{x, y, z}
	s.forwardSpatial()
}

// Velocity returns the 3D velocity.
func (s *Source) Velocity() (x, y, z float64) {
	return s.velocity[0], s.velocity[1], s.velocity[2]
}

// SetRelative makes the position relative to the listener.
func (s *Source) SetRelative(relative bool) {
	s.relative = relative
	s.forwardSpatial()
}

// IsRelative reports whether the position is listener-relative.
func (s *Source) IsRelative() bool { return s.relative }

func (s *Source) forwardSpatial() {
	if sv, ok := s.voice.(SpatialVoice); ok {
		sv.SetSpatial(s.position, s.velocity, s.relative)
	}
}

// Queue submits a frame-aligned raw PCM buffer in the source's format.
// Only queue sources accept submissions.
func (s *Source) Queue(pcm []byte) error {
	if s.typ != TypeQueue {
		return ErrQueueTypeMismatch
	}
	if len(pcm)%frameSize(s.channels, s.bitDepth) != 0 {
		return ErrQueueMalformedLength
	}
	return s.voice.(QueueVoice).Submit(pcm)
}

// QueueSoundData submits decoded sound data, validating that its
// format matches the source.
func (s *Source) QueueSoundData(d *SoundData) error {
	if s.typ != TypeQueue {
		return ErrQueueTypeMismatch
	}
	if d.SampleRate() != s.sampleRate || d.Channels() != s.channels || d.BitDepth() != s.bitDepth {
		return ErrQueueFormatMismatch
	}
	return s.Queue(d.Bytes())
}

// FreeBufferCount returns how many buffers a queue source can accept
// without blocking. Zero for other source types.
func (s *Source) FreeBufferCount() int {
	if qv, ok := s.voice.(QueueVoice); ok {
		return qv.FreeBufferCount()
	}
	return 0
}

// Clone creates an independent source sharing the same decoded buffer.
// Stream and queue sources cannot be cloned.
func (s *Source) Clone() (*Source, error) {
	if s.typ != TypeStatic {
		return nil, ErrCloneUnsupported
	}
	c, err := NewStaticSource(s.backend, s.data)
	if err != nil {
		return nil, err
	}
	c.SetVolume(s.volume)
	c.SetPitch(s.pitch)
	if err := c.SetLooping(s.looping); err != nil {
		return nil, err
	}
	c.SetVolumeLimits(s.minVolume, s.maxVolume)
	return c, nil
}

// Release stops playback and frees the backend voice.
func (s *Source) Release() {
	s.voice.Stop()
	s.voice.Release()
}

func (s *Source) toSeconds(offset float64, unit Unit) float64 {
	if unit == UnitSamples {
		return offset / float64(s.sampleRate)
	}
	return offset
}
