package mandel

import (
	"fmt"
	"image"
	"sync"
)

// Framebuffer is the single shared pixel buffer of a render. Workers write
// disjoint tile regions, but the buffer sits behind one mutex so each commit
// is a short exclusive section — one lock acquisition per tile, never per
// pixel. Reads of the finished image must wait until every tile has committed;
// the scheduler enforces that by draining all workers first.
type Framebuffer struct {
	w, h int

	mu  sync.Mutex
	pix []Color // row-major, y*w+x
}

// NewFramebuffer returns a w×h buffer initialized to transparent black.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, pix: make([]Color, w*h)}
}

// Commit copies a tile's private buffer into the framebuffer at the tile's
// offset. pix must hold t.W*t.H colors in row-major order. A tile that does
// not fit the canvas is a partitioning bug and is rejected rather than
// clipped; the render treats it as fatal.
func (fb *Framebuffer) Commit(t Tile, pix []Color) error {
	if t.X0 < 0 || t.Y0 < 0 || t.X0+t.W > fb.w || t.Y0+t.H > fb.h {
		return fmt.Errorf("tile %d: rect %dx%d@(%d,%d) outside %dx%d canvas",
			t.Index, t.W, t.H, t.X0, t.Y0, fb.w, fb.h)
	}
	if len(pix) != t.W*t.H {
		return fmt.Errorf("tile %d: buffer holds %d pixels, want %d", t.Index, len(pix), t.W*t.H)
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for ty := 0; ty < t.H; ty++ {
		row := (t.Y0+ty)*fb.w + t.X0
		copy(fb.pix[row:row+t.W], pix[ty*t.W:(ty+1)*t.W])
	}
	return nil
}

// Pixels returns the underlying row-major buffer. Call only after the render
// has completed.
func (fb *Framebuffer) Pixels() []Color {
	return fb.pix
}

// Bounds returns the canvas dimensions.
func (fb *Framebuffer) Bounds() (w, h int) {
	return fb.w, fb.h
}

// Image converts the buffer to an 8-bit RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			img.SetRGBA(x, y, fb.pix[y*fb.w+x].RGBA8())
		}
	}
	return img
}
