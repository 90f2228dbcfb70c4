package mandel

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveImageRoundTrip(t *testing.T) {
	// 2x2: red, green, blue, half-gray.
	pix := []Color{
		{R: 1, A: 1}, {G: 1, A: 1},
		{B: 1, A: 1}, {R: 0.5, G: 0.5, B: 0.5, A: 1},
	}
	path := filepath.Join(t.TempDir(), "out", "img.png") // parent dir must be created

	if err := SaveImage(pix, 2, 2, path); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("decoded size %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = %d,%d,%d,%d, want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
	r, _, _, _ = img.At(1, 1).RGBA()
	if r>>8 != 127 { // truncating ×255 cast
		t.Errorf("pixel (1,1) red = %d, want 127", r>>8)
	}
}

func TestSaveImageFailures(t *testing.T) {
	pix := make([]Color, 4)

	if err := SaveImage(pix, 3, 3, filepath.Join(t.TempDir(), "img.png")); err == nil {
		t.Error("mismatched buffer size accepted")
	}

	// A file where the parent directory should be makes the path unwritable.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SaveImage(pix, 2, 2, filepath.Join(blocker, "img.png")); err == nil {
		t.Error("unwritable destination accepted")
	}
}
