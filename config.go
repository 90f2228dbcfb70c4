package mandel

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/bytedance/sonic"
)

// Config carries every knob of a render. All fields are fixed at startup;
// Validate rejects degenerate values before any worker is spawned.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	TileW  int `json:"tile_w"`
	TileH  int `json:"tile_h"`

	Workers int `json:"workers"`
	Samples int `json:"samples"`
	// NoJitter disables sub-pixel jitter so every sample hits the pixel
	// center. Only useful for deterministic fixtures.
	NoJitter bool `json:"no_jitter,omitempty"`

	MaxIter int     `json:"max_iter"`
	Bailout float64 `json:"bailout"`
	Seed    int64   `json:"seed"`

	View    Viewport `json:"view"`
	Mode    Mode     `json:"-"`
	Palette Palette  `json:"palette,omitempty"`

	Output string `json:"output"`
}

// DefaultConfig mirrors the constants the renderer grew up with: a 1024×1024
// canvas of 64-pixel tiles written to output/image.png.
func DefaultConfig() Config {
	return Config{
		Width:   1024,
		Height:  1024,
		TileW:   64,
		TileH:   64,
		Workers: runtime.NumCPU(),
		Samples: 4,
		MaxIter: 1000,
		Bailout: 2.0,
		View:    FullSet,
		Palette: DefaultPalette(),
		Output:  "output/image.png",
	}
}

// LoadConfig reads a JSON config file. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first degenerate setting found. A config that passes
// cannot fail the render for input reasons; the remaining failure modes are
// environmental (thread creation, output path).
func (cfg Config) Validate() error {
	switch {
	case cfg.Width < 1 || cfg.Height < 1:
		return fmt.Errorf("canvas %dx%d: both dimensions must be at least 1", cfg.Width, cfg.Height)
	case cfg.TileW < 1 || cfg.TileH < 1:
		return fmt.Errorf("tile size %dx%d: both dimensions must be at least 1", cfg.TileW, cfg.TileH)
	case cfg.Workers < 1:
		return fmt.Errorf("worker count %d: need at least 1", cfg.Workers)
	case cfg.Samples < 1:
		return fmt.Errorf("sample count %d: need at least 1", cfg.Samples)
	case cfg.MaxIter < 1:
		return fmt.Errorf("max iterations %d: need at least 1", cfg.MaxIter)
	case cfg.Bailout <= 0:
		return fmt.Errorf("bailout %g: must be positive", cfg.Bailout)
	case cfg.View.ExtentW <= 0 || cfg.View.ExtentH <= 0:
		return fmt.Errorf("view extent %gx%g: must be positive", cfg.View.ExtentW, cfg.View.ExtentH)
	case cfg.Mode == ModeMandelbrot && len(cfg.Palette) == 0:
		return errors.New("palette must not be empty")
	}
	return nil
}
