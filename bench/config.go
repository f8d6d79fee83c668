package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/fxbench"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("bench: invalid config")

// MaxPixelRatio caps the renderer pixel ratio.
const MaxPixelRatio = 2

// Config controls a benchmark run. It is loaded from TOML; command-line
// flags override file values.
type Config struct {
	Mode fxbench.Mode `toml:"mode"`

	// Width and Height are the viewport size in CSS pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// DevicePixelRatio is clamped to MaxPixelRatio by the renderer.
	DevicePixelRatio float32 `toml:"device_pixel_ratio"`

	// Frames is the number of frames to render.
	Frames int `toml:"frames"`

	// RefreshRate caps the frame rate. Zero is uncapped.
	RefreshRate float64 `toml:"refresh_rate"`

	// ResizeEvery toggles the viewport between its size and a size one
	// eighth smaller every that many frames. Zero disables resizing.
	ResizeEvery int `toml:"resize_every"`

	// Workers is the number of goroutines for full-screen passes.
	Workers int `toml:"workers"`

	// HUD draws the average frame rate onto the canvas.
	HUD bool `toml:"hud"`

	// Snapshot is a PNG path for the last frame. Empty disables it.
	Snapshot string `toml:"snapshot"`

	// RequireGPU makes a failed GPU check fatal.
	RequireGPU bool `toml:"require_gpu"`

	Scene SceneConfig `toml:"scene"`
}

// DefaultConfig returns a cached-mode run of 300 frames at 640x480.
func DefaultConfig() Config {
	return Config{
		Mode:             fxbench.ModeCached,
		Width:            640,
		Height:           480,
		DevicePixelRatio: 1,
		Frames:           300,
		Workers:          1,
		HUD:              true,
		Scene:            DefaultSceneConfig(),
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.DevicePixelRatio <= 0 {
		errs = append(errs, fmt.Errorf("device_pixel_ratio %v must be positive", c.DevicePixelRatio))
	}
	if c.Frames <= 0 {
		errs = append(errs, fmt.Errorf("frames %d must be positive", c.Frames))
	}
	if c.RefreshRate < 0 {
		errs = append(errs, fmt.Errorf("refresh_rate %v must not be negative", c.RefreshRate))
	}
	if c.ResizeEvery < 0 {
		errs = append(errs, fmt.Errorf("resize_every %d must not be negative", c.ResizeEvery))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", c.Workers))
	}
	if c.Scene.Spheres < 0 {
		errs = append(errs, fmt.Errorf("scene.spheres %d must not be negative", c.Scene.Spheres))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DecodeConfig reads TOML from r over the defaults. Unknown keys are
// rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("bench: decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: read config: %w", err)
	}
	return DecodeConfig(bytes.NewReader(data))
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("bench: encode config: %w", err)
	}
	return nil
}
