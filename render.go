package mandel

import (
	"context"
	"time"
)

// Observer receives render progress events. The zero value discards
// everything.
type Observer struct {
	// TileDone gets the completed percentage, in [0,100], once per tile.
	TileDone ProgressFunc
	// RenderDone gets the elapsed wall time once, after the last commit.
	RenderDone func(elapsed time.Duration)
}

// Render validates cfg, partitions the canvas, runs the worker pool and
// returns the finished framebuffer. The buffer is only handed back once every
// tile has committed, so callers may read it freely. Any failure aborts the
// whole render; nothing is retried.
func Render(ctx context.Context, cfg Config, obs Observer) (*Framebuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tiles := Partition(cfg)
	fb := NewFramebuffer(cfg.Width, cfg.Height)

	start := time.Now()
	if err := runPool(ctx, cfg.Workers, tiles, fb, obs.TileDone); err != nil {
		return nil, err
	}
	if obs.RenderDone != nil {
		obs.RenderDone(time.Since(start))
	}
	return fb, nil
}
