package mandel

// Complex is a two-component complex value. Operations return new values;
// nothing mutates in place. Components may overflow to +Inf under a divergent
// orbit, which is fine — the escape test catches it on the same iteration.
type Complex struct {
	Re, Im float64
}

// Square returns z².
func (z Complex) Square() Complex {
	return Complex{
		Re: z.Re*z.Re - z.Im*z.Im,
		Im: 2 * (z.Re * z.Im),
	}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// MagSqr returns |z|². The escape loop compares against the squared
// threshold, so the square root is never needed.
func (z Complex) MagSqr() float64 {
	return z.Re*z.Re + z.Im*z.Im
}
