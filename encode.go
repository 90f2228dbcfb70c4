package mandel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SaveImage writes a row-major pixel buffer as an 8-bit RGBA PNG. Channels
// are scaled with a truncating ×255 cast. The parent directory is created if
// missing; the file itself is only created here, after the render, so a
// failed render never leaves a partial image behind.
func SaveImage(pix []Color, w, h int, path string) error {
	if len(pix) != w*h {
		return fmt.Errorf("pixel buffer holds %d entries, want %d", len(pix), w*h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, pix[y*w+x].RGBA8())
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
