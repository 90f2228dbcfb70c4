package mandel

// Mode selects the per-pixel kernel a tile is rendered with.
type Mode int

const (
	// ModeMandelbrot renders the escape-time fractal through the palette.
	ModeMandelbrot Mode = iota
	// ModeGradient renders a vertical intensity gradient. It exists as a
	// cheap smoke-test kernel for the tile pipeline.
	ModeGradient
)

// Tile is one unit of work: a rectangle of the canvas plus everything needed
// to render it. Created by Partition, copied by value into exactly one worker,
// then discarded. Workers never share a descriptor.
type Tile struct {
	X0, Y0 int // top-left pixel in the canvas
	W, H   int // tile width and height

	CanvasW, CanvasH int
	View             Viewport
	Mode             Mode

	Samples  int
	NoJitter bool
	MaxIter  int
	Bailout  float64
	Palette  Palette

	Index int   // position in the partition sequence
	Seed  int64 // per-tile RNG seed, derived from Index
}

// Partition splits the canvas into tiles of size tileW × tileH in row-major
// scan order. Tiles at the right and bottom edges are clamped to the remaining
// extent, so the result covers the canvas exactly with no overlap and no
// zero-sized tile. Deterministic for given inputs.
func Partition(cfg Config) []Tile {
	var tiles []Tile

	for y0 := 0; y0 < cfg.Height; y0 += cfg.TileH {
		th := cfg.TileH
		if y0+th > cfg.Height {
			th = cfg.Height - y0
		}

		for x0 := 0; x0 < cfg.Width; x0 += cfg.TileW {
			tw := cfg.TileW
			if x0+tw > cfg.Width {
				tw = cfg.Width - x0
			}

			idx := len(tiles)
			tiles = append(tiles, Tile{
				X0: x0, Y0: y0,
				W: tw, H: th,
				CanvasW:  cfg.Width,
				CanvasH:  cfg.Height,
				View:     cfg.View,
				Mode:     cfg.Mode,
				Samples:  cfg.Samples,
				NoJitter: cfg.NoJitter,
				MaxIter:  cfg.MaxIter,
				Bailout:  cfg.Bailout,
				Palette:  cfg.Palette,
				Index:    idx,
				Seed:     tileSeed(cfg.Seed, idx),
			})
		}
	}

	return tiles
}

// tileSeed derives an independent RNG seed per tile so the finished image is
// identical across runs regardless of dispatch order.
func tileSeed(base int64, index int) int64 {
	return base ^ int64((uint64(index)+1)*0x9e3779b97f4a7c15)
}
