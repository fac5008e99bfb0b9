package audio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVoice struct {
	playing  bool
	offset   float64
	volume   float64
	pitch    float64
	looping  bool
	updates  int
	released bool
}

func (v *fakeVoice) Play() error { v.playing = true; return nil }
func (v *fakeVoice) Pause()      { v.playing = false }

func (v *fakeVoice) Stop() {
	v.playing = false
	v.offset = 0
}

func (v *fakeVoice) IsPlaying() bool      { return v.playing }
func (v *fakeVoice) Update()              { v.updates++ }
func (v *fakeVoice) SetVolume(f float64)  { v.volume = f }
func (v *fakeVoice) SetPitch(f float64)   { v.pitch = f }
func (v *fakeVoice) SetLooping(loop bool) { v.looping = loop }

func (v *fakeVoice) Seek(seconds float64) error {
	v.offset = seconds
	return nil
}

func (v *fakeVoice) Tell() float64 { return v.offset }
func (v *fakeVoice) Release()      { v.released = true }

type fakeQueueVoice struct {
	fakeVoice
	submitted [][]byte
}

func (v *fakeQueueVoice) Submit(pcm []byte) error {
	v.submitted = append(v.submitted, pcm)
	return nil
}

func (v *fakeQueueVoice) FreeBufferCount() int {
	return 8 - len(v.submitted)
}

type fakeBackend struct{}

func (fakeBackend) Name() string { return "fake" }
func (fakeBackend) Init() error  { return nil }
func (fakeBackend) Close()       {}

func (fakeBackend) NewStaticVoice(*SoundData) (Voice, error) {
	return &fakeVoice{}, nil
}

func (fakeBackend) NewStreamVoice(Decoder) (Voice, error) {
	return &fakeVoice{}, nil
}

func (fakeBackend) NewQueueVoice(int, int, int) (QueueVoice, error) {
	return &fakeQueueVoice{}, nil
}

type fakeDecoder struct {
	sampleRate int
	channels   int
	bitDepth   int
	remaining  int
	rewinds    int
}

func (d *fakeDecoder) Decode(buf []byte) (int, error) {
	if d.remaining == 0 {
		return 0, io.EOF
	}
	n := len(buf)
	if n > d.remaining {
		n = d.remaining
	}
	d.remaining -= n
	return n, nil
}

func (d *fakeDecoder) Seek(float64) error { return nil }

func (d *fakeDecoder) Rewind() error {
	d.rewinds++
	return nil
}

func (d *fakeDecoder) SampleRate() int   { return d.sampleRate }
func (d *fakeDecoder) Channels() int     { return d.channels }
func (d *fakeDecoder) BitDepth() int     { return d.bitDepth }
func (d *fakeDecoder) Duration() float64 { return -1 }
func (d *fakeDecoder) IsFinished() bool  { return d.remaining == 0 }

func mustSoundData(t *testing.T, rate, channels, depth, frames int) *SoundData {
	t.Helper()
	d, err := NewSoundData(rate, channels, depth, make([]byte, frames*frameSize(channels, depth)))
	require.NoError(t, err)
	return d
}

func TestNewSoundDataValidation(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		channels int
		depth    int
	}{
		{"zero rate", 0, 2, 16},
		{"three channels", 44100, 3, 16},
		{"24 bit", 44100, 2, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSoundData(tt.rate, tt.channels, tt.depth, nil)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}

	_, err := NewSoundData(44100, 2, 16, make([]byte, 7))
	assert.Error(t, err, "length must be frame-aligned")
}

func TestSoundDataDuration(t *testing.T) {
	d := mustSoundData(t, 44100, 2, 16, 44100)
	assert.Equal(t, 44100, d.SampleCount())
	assert.InDelta(t, 1.0, d.Duration(), 1e-9)
}

func TestStaticSourcePlayback(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 16, 100))
	require.NoError(t, err)
	assert.Equal(t, TypeStatic, s.Type())

	require.NoError(t, s.Play())
	assert.True(t, s.IsPlaying())
	assert.False(t, s.IsPaused())
	assert.False(t, s.IsFinished())

	s.Pause()
	assert.False(t, s.IsPlaying())
	assert.True(t, s.IsPaused())
	assert.False(t, s.IsFinished())

	require.NoError(t, s.Play())
	s.Stop()
	assert.False(t, s.IsPaused())
	assert.True(t, s.IsFinished())
}

func TestSourceSeekTellUnits(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 8000, 1, 16, 8000))
	require.NoError(t, err)

	require.NoError(t, s.Seek(0.5, UnitSeconds))
	assert.InDelta(t, 0.5, s.Tell(UnitSeconds), 1e-9)
	assert.InDelta(t, 4000.0, s.Tell(UnitSamples), 1e-9)

	require.NoError(t, s.Seek(2000, UnitSamples))
	assert.InDelta(t, 0.25, s.Tell(UnitSeconds), 1e-9)
}

func TestSourceVolumeAndPitch(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 8, 10))
	require.NoError(t, err)

	s.SetVolume(1.5)
	assert.Equal(t, 1.0, s.Volume())
	s.SetVolume(-0.1)
	assert.Equal(t, 0.0, s.Volume())

	s.SetPitch(2)
	assert.Equal(t, 2.0, s.Pitch())
	s.SetPitch(0)
	assert.Equal(t, 2.0, s.Pitch(), "non-positive pitch is ignored")
}

func TestStreamSource(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 22050, channels: 2, bitDepth: 16, remaining: 1024}
	s, err := NewStreamSource(fakeBackend{}, dec)
	require.NoError(t, err)
	assert.Equal(t, TypeStream, s.Type())
	assert.Equal(t, 22050, s.SampleRate())

	require.NoError(t, s.Play())
	s.Update()
	s.Stop()
	assert.Equal(t, 1, dec.rewinds, "stopping a stream rewinds the decoder")

	_, err = NewStreamSource(fakeBackend{}, &fakeDecoder{sampleRate: 44100, channels: 5, bitDepth: 16})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrCloneUnsupported)
}

func TestStreamSourceIsFinished(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 22050, channels: 1, bitDepth: 16, remaining: 4}
	s, err := NewStreamSource(fakeBackend{}, dec)
	require.NoError(t, err)

	var buf [16]byte
	_, _ = dec.Decode(buf[:])
	assert.True(t, s.IsFinished())
}

func TestQueueSource(t *testing.T) {
	s, err := NewQueueSource(fakeBackend{}, 44100, 16, 2)
	require.NoError(t, err)
	assert.Equal(t, TypeQueue, s.Type())

	require.NoError(t, s.Queue(make([]byte, 16)))
	assert.Equal(t, 7, s.FreeBufferCount())

	assert.ErrorIs(t, s.Queue(make([]byte, 5)), ErrQueueMalformedLength)
	assert.ErrorIs(t, s.SetLooping(true), ErrQueueLooping)
	require.NoError(t, s.SetLooping(false))

	match := mustSoundData(t, 44100, 2, 16, 4)
	require.NoError(t, s.QueueSoundData(match))

	mismatch := mustSoundData(t, 22050, 2, 16, 4)
	assert.ErrorIs(t, s.QueueSoundData(mismatch), ErrQueueFormatMismatch)

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrCloneUnsupported)

	_, err = NewQueueSource(fakeBackend{}, 44100, 12, 2)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestQueueIntoNonQueueSource(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 16, 10))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Queue(make([]byte, 4)), ErrQueueTypeMismatch)
	assert.ErrorIs(t, s.QueueSoundData(mustSoundData(t, 44100, 1, 16, 2)), ErrQueueTypeMismatch)
	assert.Equal(t, 0, s.FreeBufferCount())
}

func TestStaticSourceClone(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 16, 10))
	require.NoError(t, err)
	s.SetVolume(0.5)
	s.SetPitch(1.5)
	require.NoError(t, s.SetLooping(true))

	c, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Volume())
	assert.Equal(t, 1.5, c.Pitch())
	assert.True(t, c.IsLooping())
	assert.False(t, c.IsPlaying(), "clones start stopped")
}

func TestSpatialForwarding(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 16, 10))
	require.NoError(t, err)

	// The fake voice is not spatial; setters must still store state.
	s.SetPosition(1, 2, 3)
	s.SetVelocity(4, 5, 6)
	s.SetRelative(true)

	x, y, z := s.Position()
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64{x, y, z})
	x, y, z = s.Velocity()
	assert.Equal(t, [3]float64{4, 5, 6}, [3]float64{x, y, z})
	assert.True(t, s.IsRelative())
}

func TestSourceRelease(t *testing.T) {
	s, err := NewStaticSource(fakeBackend{}, mustSoundData(t, 44100, 1, 16, 10))
	require.NoError(t, err)
	require.NoError(t, s.Play())

	voice := s.voice.(*fakeVoice)
	s.Release()
	assert.True(t, voice.released)
	assert.False(t, voice.playing)
}
