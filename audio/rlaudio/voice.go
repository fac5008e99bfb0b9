package rlaudio

import (
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LukeMS/love2d/audio"
	"github.com/LukeMS/love2d/internal/utils"
)

// staticVoice plays a fully uploaded raylib Sound. raylib offers no
// seek or offset query for Sounds, so Tell tracks wall-clock time from
// Play as an approximation.
type staticVoice struct {
	sound    rl.Sound
	duration float64
	looping  bool
	paused   bool
	started  time.Time
}

func (v *staticVoice) Play() error {
	if v.paused {
		rl.ResumeSound(v.sound)
	} else {
		rl.PlaySound(v.sound)
		v.started = time.Now()
	}
	v.paused = false
	return nil
}

func (v *staticVoice) Pause() {
	rl.PauseSound(v.sound)
	v.paused = true
}

func (v *staticVoice) Stop() {
	rl.StopSound(v.sound)
	v.paused = false
}

func (v *staticVoice) IsPlaying() bool {
	return rl.IsSoundPlaying(v.sound)
}

// Update restarts a looping sound that ran off the end. raylib Sounds
// have no native looping.
func (v *staticVoice) Update() {
	if v.looping && !v.paused && !rl.IsSoundPlaying(v.sound) && !v.started.IsZero() {
		rl.PlaySound(v.sound)
		v.started = time.Now()
	}
}

func (v *staticVoice) SetVolume(f float64) { rl.SetSoundVolume(v.sound, float32(f)) }
func (v *staticVoice) SetPitch(f float64)  { rl.SetSoundPitch(v.sound, float32(f)) }

func (v *staticVoice) SetLooping(loop bool) { v.looping = loop }

func (v *staticVoice) Seek(float64) error { return ErrSeekUnsupported }

func (v *staticVoice) Tell() float64 {
	if v.started.IsZero() || !rl.IsSoundPlaying(v.sound) {
		return 0
	}
	elapsed := time.Since(v.started).Seconds()
	if v.duration > 0 && elapsed > v.duration {
		return v.duration
	}
	return elapsed
}

func (v *staticVoice) Release() {
	rl.UnloadSound(v.sound)
}

// streamVoice feeds decoder output into a raylib AudioStream, one
// chunk per Update when the stream has a processed buffer.
type streamVoice struct {
	stream  rl.AudioStream
	decoder audio.Decoder
	pcm     []byte
	looping bool
	paused  bool
	fed     int
}

func (v *streamVoice) Play() error {
	if v.paused {
		rl.ResumeAudioStream(v.stream)
	} else {
		rl.PlayAudioStream(v.stream)
	}
	v.paused = false
	return nil
}

func (v *streamVoice) Pause() {
	rl.PauseAudioStream(v.stream)
	v.paused = true
}

func (v *streamVoice) Stop() {
	rl.StopAudioStream(v.stream)
	v.paused = false
	v.fed = 0
}

func (v *streamVoice) IsPlaying() bool {
	return rl.IsAudioStreamPlaying(v.stream)
}

// Update refills the stream from the decoder. On exhaustion a looping
// voice rewinds and keeps feeding; a non-looping one starves out.
func (v *streamVoice) Update() {
	if v.paused || !rl.IsAudioStreamProcessed(v.stream) {
		return
	}

	n, err := v.decoder.Decode(v.pcm)
	if n == 0 && v.looping {
		if rerr := v.decoder.Rewind(); rerr != nil {
			utils.Warn("rlaudio: stream rewind failed: %v", rerr)
			return
		}
		n, err = v.decoder.Decode(v.pcm)
	}
	if err != nil && err != io.EOF {
		utils.Warn("rlaudio: stream decode failed: %v", err)
		return
	}
	if n == 0 {
		return
	}

	rl.UpdateAudioStream(v.stream, pcmToFloat32(v.pcm[:n], v.decoder.BitDepth()))
	v.fed += n / (v.decoder.Channels() * v.decoder.BitDepth() / 8)
}

func (v *streamVoice) SetVolume(f float64) { rl.SetAudioStreamVolume(v.stream, float32(f)) }
func (v *streamVoice) SetPitch(f float64)  { rl.SetAudioStreamPitch(v.stream, float32(f)) }

func (v *streamVoice) SetLooping(loop bool) { v.looping = loop }

func (v *streamVoice) Seek(seconds float64) error {
	return v.decoder.Seek(seconds)
}

// Tell reports the offset of the frames handed to the stream, which
// runs slightly ahead of the audible position.
func (v *streamVoice) Tell() float64 {
	return float64(v.fed) / float64(v.decoder.SampleRate())
}

func (v *streamVoice) Release() {
	rl.UnloadAudioStream(v.stream)
}

// queueVoice plays caller-submitted PCM buffers in order. Buffers are
// held until the stream signals a processed slot.
type queueVoice struct {
	stream     rl.AudioStream
	sampleRate int
	bitDepth   int
	channels   int
	pending    [][]byte
	paused     bool
	played     int
}

// maxPending bounds the submission queue.
const maxPending = 16

func (v *queueVoice) Play() error {
	if v.paused {
		rl.ResumeAudioStream(v.stream)
	} else {
		rl.PlayAudioStream(v.stream)
	}
	v.paused = false
	return nil
}

func (v *queueVoice) Pause() {
	rl.PauseAudioStream(v.stream)
	v.paused = true
}

func (v *queueVoice) Stop() {
	rl.StopAudioStream(v.stream)
	v.paused = false
	v.pending = v.pending[:0]
	v.played = 0
}

func (v *queueVoice) IsPlaying() bool {
	return rl.IsAudioStreamPlaying(v.stream)
}

// Update hands the oldest pending buffer to the stream when it has a
// free slot.
func (v *queueVoice) Update() {
	if len(v.pending) == 0 || !rl.IsAudioStreamProcessed(v.stream) {
		return
	}

	buf := v.pending[0]
	v.pending = v.pending[1:]
	rl.UpdateAudioStream(v.stream, pcmToFloat32(buf, v.bitDepth))
	v.played += len(buf) / (v.channels * v.bitDepth / 8)
}

func (v *queueVoice) SetVolume(f float64) { rl.SetAudioStreamVolume(v.stream, float32(f)) }
func (v *queueVoice) SetPitch(f float64)  { rl.SetAudioStreamPitch(v.stream, float32(f)) }

// SetLooping is a no-op: Source rejects looping on queue sources.
func (v *queueVoice) SetLooping(bool) {}

func (v *queueVoice) Seek(float64) error { return ErrSeekUnsupported }

func (v *queueVoice) Tell() float64 {
	return float64(v.played) / float64(v.sampleRate)
}

func (v *queueVoice) Release() {
	rl.UnloadAudioStream(v.stream)
}

// Submit appends a PCM buffer to the playback queue.
func (v *queueVoice) Submit(pcm []byte) error {
	if len(v.pending) >= maxPending {
		return ErrQueueFull
	}
	buf := append([]byte(nil), pcm...)
	v.pending = append(v.pending, buf)
	return nil
}

// FreeBufferCount returns the remaining submission slots.
func (v *queueVoice) FreeBufferCount() int {
	return maxPending - len(v.pending)
}
