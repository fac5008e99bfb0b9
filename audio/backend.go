package audio

// Backend is the playback backend contract. It owns device handles and
// voices; Source holds non-owning references.
type Backend interface {
	// Name returns the backend identifier (e.g. "raylib").
	Name() string

	// Init opens the audio device. Must be called before creating
	// voices.
	Init() error

	// Close stops all voices and closes the device.
	Close()

	// NewStaticVoice creates a voice playing a fully decoded buffer.
	NewStaticVoice(d *SoundData) (Voice, error)

	// NewStreamVoice creates a voice fed from a decoder.
	NewStreamVoice(dec Decoder) (Voice, error)

	// NewQueueVoice creates a voice fed by explicit PCM submissions.
	NewQueueVoice(sampleRate, bitDepth, channels int) (QueueVoice, error)
}

// Voice is a single backend playback channel.
type Voice interface {
	Play() error
	Pause()
	Stop()
	IsPlaying() bool

	// Update services the voice: stream refills, queue reclaims.
	// Cheap no-op for static voices.
	Update()

	SetVolume(v float64)
	SetPitch(p float64)
	SetLooping(loop bool)

	// Seek jumps to an absolute offset in seconds.
	Seek(seconds float64) error

	// Tell returns the playback offset in seconds.
	Tell() float64

	// Release frees the backend resources of the voice.
	Release()
}

// QueueVoice is a voice accepting caller-submitted PCM buffers.
type QueueVoice interface {
	Voice

	// Submit appends a frame-aligned PCM buffer to the playback queue.
	Submit(pcm []byte) error

	// FreeBufferCount returns how many more buffers can be submitted
	// without blocking.
	FreeBufferCount() int
}

// SpatialVoice is implemented by backends that support positional
// audio. Sources forward spatial state only when the voice provides it.
type SpatialVoice interface {
	SetSpatial(position, velocity [3]float64, relative bool)
}
