package rlaudio

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LukeMS/love2d/internal/utils"
)

// Music plays an encoded audio file (ogg, mp3, wav...) through
// raylib's own decoders, bypassing the Decoder interface. Meant for
// background tracks where the file format is whatever ships on disk.
type Music struct {
	music  rl.Music
	loaded bool
}

// LoadMusic opens a music file for streamed playback.
func LoadMusic(path string) (*Music, error) {
	if !rl.IsAudioDeviceReady() {
		return nil, ErrDeviceNotReady
	}

	music := rl.LoadMusicStream(path)
	if music.Stream.Buffer == nil {
		return nil, fmt.Errorf("rlaudio: cannot load music %q", path)
	}
	utils.Info("rlaudio: loaded music %s (%.1fs)", path, rl.GetMusicTimeLength(music))
	return &Music{music: music, loaded: true}, nil
}

// Play starts playback.
func (m *Music) Play() {
	rl.PlayMusicStream(m.music)
}

// SetLooping makes the track restart when it ends.
func (m *Music) SetLooping(loop bool) {
	m.music.Looping = loop
}

// SetVolume sets the playback volume in [0, 1].
func (m *Music) SetVolume(v float64) {
	rl.SetMusicVolume(m.music, float32(v))
}

// Update refills the stream buffers. Call once per frame.
func (m *Music) Update() {
	if m.loaded {
		rl.UpdateMusicStream(m.music)
	}
}

// Close stops playback and frees the stream.
func (m *Music) Close() {
	if m.loaded {
		rl.StopMusicStream(m.music)
		rl.UnloadMusicStream(m.music)
		m.loaded = false
	}
}
