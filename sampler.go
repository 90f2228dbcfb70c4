package mandel

import "math/rand"

// planePoint maps a (possibly fractional) pixel coordinate to the complex
// plane. The mapping is affine per axis and places the canvas center on the
// viewport center.
func planePoint(px, py float64, t Tile) Complex {
	return Complex{
		Re: t.View.CenterRe + (px/float64(t.CanvasW)-0.5)*t.View.ExtentW,
		Im: t.View.CenterIm + (py/float64(t.CanvasH)-0.5)*t.View.ExtentH,
	}
}

// SamplePixel renders one pixel with box-filter antialiasing: Samples draws,
// each jittered by an independent uniform offset in [-0.5, 0.5) per axis,
// mapped to the plane, run through the escape-time kernel and the palette, and
// averaged. A nil rng disables jitter and samples every draw at the pixel
// center, which makes the result deterministic for test fixtures.
func SamplePixel(x, y int, t Tile, rng *rand.Rand) Color {
	var acc Color
	for s := 0; s < t.Samples; s++ {
		var jx, jy float64
		if rng != nil {
			jx = rng.Float64() - 0.5
			jy = rng.Float64() - 0.5
		}
		c := planePoint(float64(x)+0.5+jx, float64(y)+0.5+jy, t)
		acc = acc.Add(t.Palette.At(EscapeTime(c, t.MaxIter, t.Bailout)))
	}
	return acc.Scale(1 / float64(t.Samples))
}

// RenderTile renders a whole tile into a freshly allocated private buffer of
// t.W × t.H pixels in row-major order. It touches no shared state; the caller
// commits the buffer into the framebuffer afterwards.
func RenderTile(t Tile, rng *rand.Rand) []Color {
	pix := make([]Color, t.W*t.H)
	for ty := 0; ty < t.H; ty++ {
		for tx := 0; tx < t.W; tx++ {
			var c Color
			switch t.Mode {
			case ModeGradient:
				intensity := float64(t.Y0+ty) / float64(t.CanvasH)
				c = Color{R: intensity, G: intensity, B: intensity, A: 1}
			default:
				c = SamplePixel(t.X0+tx, t.Y0+ty, t, rng)
			}
			pix[ty*t.W+tx] = c
		}
	}
	return pix
}
