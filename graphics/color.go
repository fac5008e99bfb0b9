package graphics

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// White is the default particle color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// NewColorBytes builds a Color from 8-bit components.
func NewColorBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Bytes converts the color to 8-bit components, clamping each channel.
func (c Color) Bytes() (r, g, b, a uint8) {
	return clamp255(c.R * 255), clamp255(c.G * 255), clamp255(c.B * 255), clamp255(c.A * 255)
}

// Lerp linearly interpolates between c and d component-wise.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
