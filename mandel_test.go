package mandel

import (
	"math"
	"testing"
)

func TestComplexKernel(t *testing.T) {
	z := Complex{Re: 1, Im: 2}

	if got := z.Square(); got.Re != -3 || got.Im != 4 {
		t.Errorf("(1+2i)² = %+v, want -3+4i", got)
	}
	if got := z.Add(Complex{Re: -1, Im: 0.5}); got.Re != 0 || got.Im != 2.5 {
		t.Errorf("(1+2i)+(-1+0.5i) = %+v, want 0+2.5i", got)
	}
	if got := z.MagSqr(); got != 5 {
		t.Errorf("|1+2i|² = %g, want 5", got)
	}

	// Divergent orbits overflow to +Inf; that must stay well-defined.
	huge := Complex{Re: math.MaxFloat64, Im: 0}
	if got := huge.Square().MagSqr(); !math.IsInf(got, 1) {
		t.Errorf("overflowing square: MagSqr = %g, want +Inf", got)
	}
}

func TestEscapeTimeReferencePoints(t *testing.T) {
	const maxIter = 100

	cases := []struct {
		name string
		c    Complex
		want func(got int) bool
	}{
		{"origin never escapes", Complex{}, func(got int) bool { return got == maxIter }},
		{"-1 is in the set", Complex{Re: -1}, func(got int) bool { return got == maxIter }},
		{"-0.1+0.1i is in the main cardioid", Complex{Re: -0.1, Im: 0.1}, func(got int) bool { return got == maxIter }},
		{"|c|>2 escapes immediately", Complex{Re: 3}, func(got int) bool { return got == 0 }},
		{"-2.5 escapes immediately", Complex{Re: -2.5}, func(got int) bool { return got == 0 }},
		{"1+1i escapes within a few steps", Complex{Re: 1, Im: 1}, func(got int) bool { return got >= 1 && got <= 3 }},
		{"0.5 escapes quickly", Complex{Re: 0.5}, func(got int) bool { return got >= 1 && got < 10 }},
	}

	for _, tc := range cases {
		if got := EscapeTime(tc.c, maxIter, 2.0); !tc.want(got) {
			t.Errorf("%s: EscapeTime(%+v) = %d", tc.name, tc.c, got)
		}
	}
}

func TestEscapeTimeHonorsIterationCap(t *testing.T) {
	for _, maxIter := range []int{1, 5, 50} {
		if got := EscapeTime(Complex{}, maxIter, 2.0); got != maxIter {
			t.Errorf("maxIter=%d: got %d", maxIter, got)
		}
	}
}
