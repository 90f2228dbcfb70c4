package mandel

import "testing"

func TestPaletteModularIndexing(t *testing.T) {
	p := Palette{
		{R: 0.1}, {R: 0.2}, {R: 0.3}, {R: 0.4}, {R: 0.5},
	}
	n := len(p)

	cases := []struct {
		k    int
		want float64
	}{
		{0, 0.1},
		{n - 1, 0.5},
		{n, 0.1},
		{2*n + 3, 0.4},
	}
	for _, tc := range cases {
		if got := p.At(tc.k); got.R != tc.want {
			t.Errorf("At(%d).R = %g, want %g", tc.k, got.R, tc.want)
		}
	}
}

func TestColorAccumulation(t *testing.T) {
	acc := Color{}
	for i := 0; i < 4; i++ {
		acc = acc.Add(Color{R: 0.5, G: 0.25, B: 1, A: 1})
	}
	// Unnormalized sums may exceed 1; dividing restores the channel range.
	if acc.R != 2 || acc.B != 4 {
		t.Fatalf("accumulated %+v, want R=2 B=4", acc)
	}
	avg := acc.Scale(1.0 / 4)
	if avg.R != 0.5 || avg.G != 0.25 || avg.B != 1 || avg.A != 1 {
		t.Errorf("average %+v, want the original color", avg)
	}
}

func TestColorRGBA8(t *testing.T) {
	cases := []struct {
		in   Color
		want [4]uint8
	}{
		{Color{R: 0, G: 0, B: 0, A: 0}, [4]uint8{0, 0, 0, 0}},
		{Color{R: 1, G: 1, B: 1, A: 1}, [4]uint8{255, 255, 255, 255}},
		{Color{R: 0.5, G: 0.25, B: 0.75, A: 1}, [4]uint8{127, 63, 191, 255}},
		// Out-of-range accumulator values are clamped before scaling.
		{Color{R: 1.5, G: -0.5, B: 0, A: 2}, [4]uint8{255, 0, 0, 255}},
	}
	for _, tc := range cases {
		got := tc.in.RGBA8()
		if got.R != tc.want[0] || got.G != tc.want[1] || got.B != tc.want[2] || got.A != tc.want[3] {
			t.Errorf("%+v.RGBA8() = %+v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDefaultPaletteNonEmptyOpaque(t *testing.T) {
	p := DefaultPalette()
	if len(p) == 0 {
		t.Fatal("default palette is empty")
	}
	for i, c := range p {
		if c.A != 1 {
			t.Errorf("palette[%d] alpha = %g, want 1", i, c.A)
		}
	}
}
