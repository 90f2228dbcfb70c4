// Package mandel renders escape-time fractals of the Mandelbrot family.
//
// The canvas is split into rectangular tiles; a fixed pool of workers renders
// each tile into a private buffer with jittered multi-sample antialiasing and
// commits the finished tile into a shared framebuffer. The finished buffer is
// saved as an RGBA PNG.
package mandel

// EscapeTime iterates z ← z² + c from z₀ = 0 and returns the loop index at
// which |z| first exceeds bailout, or maxIter if the orbit never escapes.
// Total over all finite inputs; always terminates within maxIter steps.
func EscapeTime(c Complex, maxIter int, bailout float64) int {
	limit := bailout * bailout
	z := Complex{}
	for i := 0; i < maxIter; i++ {
		z = z.Square().Add(c)
		if z.MagSqr() > limit {
			return i
		}
	}
	return maxIter
}
