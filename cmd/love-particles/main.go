package main

import (
	"flag"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LukeMS/love2d/audio"
	"github.com/LukeMS/love2d/audio/rlaudio"
	"github.com/LukeMS/love2d/graphics"
	_ "github.com/LukeMS/love2d/graphics/rlbackend"
	"github.com/LukeMS/love2d/image"
	"github.com/LukeMS/love2d/internal/utils"
)

func main() {
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	bufferSize := flag.Int("particles", 2048, "Particle buffer size")
	musicPath := flag.String("music", "", "Optional path to a looping music file")
	backendName := flag.String("renderer", "raylib", "Render backend name")
	globalMouse := flag.Bool("global-mouse", false, "Track the mouse via X11 even outside the window")
	silent := flag.Bool("silent", false, "Disable audio entirely")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	utils.DebugMode = *debugFlag
	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	} else {
		utils.CurrentLevel = utils.LevelInfo
	}

	utils.Info("--- Particle Fountain Demo ---")

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.InitWindow(int32(*width), int32(*height), "love2d particles")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer, err := graphics.GetRenderer(*backendName)
	if err != nil {
		utils.Error("Renderer %q: %v (have: %v)", *backendName, err, graphics.Renderers())
		os.Exit(1)
	}
	if err := renderer.Init(); err != nil {
		utils.Error("Renderer init: %v", err)
		os.Exit(1)
	}
	defer renderer.Close()

	tex, err := renderer.NewTexture(sparkImage(16))
	if err != nil {
		utils.Error("Spark texture: %v", err)
		os.Exit(1)
	}

	ps, err := newFountain(tex, *bufferSize)
	if err != nil {
		utils.Error("Particle system: %v", err)
		os.Exit(1)
	}

	var (
		music *rlaudio.Music
		click *audio.Source
	)
	if !*silent {
		backend := rlaudio.New()
		if err := backend.Init(); err != nil {
			utils.Warn("Audio disabled: %v", err)
		} else {
			defer backend.Close()
			if *musicPath != "" {
				if music, err = rlaudio.LoadMusic(*musicPath); err != nil {
					utils.Warn("Music: %v", err)
				} else {
					defer music.Close()
					music.SetLooping(true)
					music.Play()
				}
			}
			if click, err = audio.NewStaticSource(backend, blipSound()); err != nil {
				utils.Warn("Click sound: %v", err)
			}
		}
	}

	if *globalMouse {
		if err := utils.InitX11(); err != nil {
			utils.Warn("X11 unavailable, falling back to window mouse: %v", err)
			*globalMouse = false
		}
	}

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		mx, my := mousePosition(*globalMouse)
		ps.MoveTo(mx, my)
		ps.Update(dt)

		if click != nil && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			click.Stop()
			if err := click.Play(); err != nil {
				utils.Debug("Click playback: %v", err)
			}
		}
		if click != nil {
			click.Update()
		}
		if music != nil {
			music.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		ps.Draw(renderer, nil)
		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}

	utils.Info("Shutting down (%d live particles)", ps.Count())
}

// newFountain configures a spark fountain shooting upward against
// gravity.
func newFountain(tex graphics.Texture, size int) (*graphics.ParticleSystem, error) {
	ps, err := graphics.NewParticleSystem(tex, size)
	if err != nil {
		return nil, err
	}

	if err := ps.SetEmissionRate(400); err != nil {
		return nil, err
	}
	ps.SetParticleLifetime(1, 2.5)
	ps.SetDirection(-math.Pi / 2)
	ps.SetSpread(0.8)
	ps.SetSpeed(250, 450)
	ps.SetLinearAcceleration(-20, 500, 20, 600)
	ps.SetLinearDamping(0, 0.4)
	ps.SetSizes(1.2, 0.6, 0.1)
	ps.SetSizeVariation(0.4)
	ps.SetSpin(-4, 4)
	ps.SetColors(
		graphics.Color{R: 1, G: 0.9, B: 0.4, A: 1},
		graphics.Color{R: 1, G: 0.4, B: 0.1, A: 0.9},
		graphics.Color{R: 0.4, G: 0.1, B: 0.1, A: 0},
	)
	return ps, nil
}

// sparkImage builds a radial falloff blob used as the particle texture.
func sparkImage(size int) *image.ImageData {
	img, _ := image.NewImageData(size, size)
	center := float64(size-1) / 2
	img.MapPixel(func(x, y int, p image.Pixel) image.Pixel {
		d := math.Hypot(float64(x)-center, float64(y)-center) / center
		if d > 1 {
			d = 1
		}
		v := uint8((1 - d) * 255)
		return image.Pixel{R: 255, G: 255, B: 255, A: v}
	})
	return img
}

// blipSound synthesizes a short sine blip as 16-bit mono PCM.
func blipSound() *audio.SoundData {
	const (
		rate     = 44100
		duration = 0.08
		freq     = 880.0
	)
	frames := int(rate * duration)
	pcm := make([]byte, frames*2)
	for i := 0; i < frames; i++ {
		env := 1 - float64(i)/float64(frames)
		s := int16(math.Sin(2*math.Pi*freq*float64(i)/rate) * env * 12000)
		pcm[i*2] = byte(s)
		pcm[i*2+1] = byte(s >> 8)
	}
	d, _ := audio.NewSoundData(rate, 1, 16, pcm)
	return d
}

// mousePosition returns the emitter target in window coordinates,
// preferring the X11 global pointer when enabled.
func mousePosition(global bool) (float64, float64) {
	if global {
		gx, gy, err := utils.GetGlobalMousePosition()
		if err == nil {
			win := rl.GetWindowPosition()
			return float64(gx) - float64(win.X), float64(gy) - float64(win.Y)
		}
		utils.Debug("Global mouse query failed: %v", err)
	}
	pos := rl.GetMousePosition()
	return float64(pos.X), float64(pos.Y)
}
