package mandel

// ProgressFunc receives the completed percentage, in [0,100], once per tile.
// It is called from the coordinator goroutine only, so implementations need no
// locking of their own. Purely observational; nothing feeds back into the
// render.
type ProgressFunc func(percent float64)

// NopProgress discards progress updates.
func NopProgress(float64) {}
