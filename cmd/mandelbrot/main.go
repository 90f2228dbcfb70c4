// mandelbrot renders an escape-time fractal to a PNG file.
//
// The render is configured through a JSON config file and/or flags; with no
// arguments it draws the full Mandelbrot set at 1024×1024 into
// output/image.png. Pass -watch to follow progress live over a websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	mandel "github.com/ElMarshal/MandelbrotSet"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "JSON config file; missing fields keep their defaults")
		output     = flag.String("o", "", "output PNG path (overrides config)")
		viewName   = flag.String("view", "", "named viewport: full, seahorse-valley, elephant-valley, spiral-minibrot, triple-spiral, valley-of-dragon, minibrot-spiral")
		workers    = flag.Int("workers", 0, "worker count (overrides config)")
		samples    = flag.Int("samples", 0, "antialiasing samples per pixel (overrides config)")
		gradient   = flag.Bool("gradient", false, "render the gradient test pattern instead of the fractal")
		watch      = flag.String("watch", "", "serve live progress over websocket on this address, e.g. :8080")
	)
	flag.Parse()

	cfg := mandel.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = mandel.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *viewName != "" {
		vp, err := mandel.ViewportByName(*viewName)
		if err != nil {
			return err
		}
		cfg.View = vp
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}
	if *gradient {
		cfg.Mode = mandel.ModeGradient
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := mandel.Observer{
		TileDone: func(percent float64) {
			log.Printf("finished: %.1f%%", percent)
		},
		RenderDone: func(elapsed time.Duration) {
			log.Printf("rendered in %s", elapsed.Round(time.Millisecond))
		},
	}

	if *watch != "" {
		hub := newProgressHub()
		srv := watchServer(ctx, *watch, hub)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("watch server: %v", err)
			}
		}()
		defer srv.Close()

		tileDone := obs.TileDone
		obs.TileDone = func(percent float64) {
			tileDone(percent)
			hub.broadcast(ctx, progressEvent{Percent: percent})
		}
		renderDone := obs.RenderDone
		obs.RenderDone = func(elapsed time.Duration) {
			renderDone(elapsed)
			hub.broadcast(ctx, progressEvent{Percent: 100, Done: true, ElapsedMs: elapsed.Milliseconds()})
		}
	}

	log.Printf("rendering %dx%d canvas in %dx%d tiles on %d workers", cfg.Width, cfg.Height, cfg.TileW, cfg.TileH, cfg.Workers)
	fb, err := mandel.Render(ctx, cfg, obs)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	w, h := fb.Bounds()
	log.Printf("saving image to %q", cfg.Output)
	if err := mandel.SaveImage(fb.Pixels(), w, h, cfg.Output); err != nil {
		return err
	}
	log.Printf("saved %q", cfg.Output)
	return nil
}
