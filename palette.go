package mandel

import "image/color"

// Color holds four channels conceptually in [0,1]. During sampling it is used
// as an unnormalized accumulator, so channels may transiently exceed 1; callers
// divide by the sample count before the value is treated as a color.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Add returns the component-wise sum c + d.
func (c Color) Add(d Color) Color {
	return Color{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B, A: c.A + d.A}
}

// Scale returns c with every channel multiplied by f.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// RGBA8 converts to 8-bit channels by a truncating ×255 cast, clamping each
// channel to [0,1] first.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette is an ordered, nonempty sequence of colors indexed by iteration
// count modulo its length.
type Palette []Color

// At maps an iteration count to a palette color.
func (p Palette) At(iterations int) Color {
	return p[iterations%len(p)]
}

// DefaultPalette cycles through a blue-to-gold gradient with a dark anchor,
// the usual look for shallow Mandelbrot zooms.
func DefaultPalette() Palette {
	return Palette{
		{R: 0.02, G: 0.02, B: 0.10, A: 1},
		{R: 0.05, G: 0.10, B: 0.35, A: 1},
		{R: 0.10, G: 0.25, B: 0.60, A: 1},
		{R: 0.25, G: 0.45, B: 0.80, A: 1},
		{R: 0.55, G: 0.70, B: 0.90, A: 1},
		{R: 0.90, G: 0.92, B: 0.95, A: 1},
		{R: 0.95, G: 0.80, B: 0.45, A: 1},
		{R: 0.80, G: 0.55, B: 0.15, A: 1},
		{R: 0.50, G: 0.30, B: 0.05, A: 1},
		{R: 0.15, G: 0.08, B: 0.03, A: 1},
	}
}
