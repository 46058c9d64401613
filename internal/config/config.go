// Package config loads the renderer settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var ErrNotFound = errors.New("config: file not found")

type Config struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Scene  Scene  `toml:"scene"`
	Log    Log    `toml:"log"`
	Stats  Stats  `toml:"stats"`
}

// Window is the output surface. The raster is Width/ScaleDown by
// Height/ScaleDown pixels, scaled up to fill the window. Overlay prints the
// measured frame rate in the corner.
type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	ScaleDown int    `toml:"scale_down"`
	Title     string `toml:"title"`
	TPS       int    `toml:"tps"`
	Overlay   bool   `toml:"overlay"`
}

type Camera struct {
	Fov  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

// Scene selects the mesh and how it moves. An empty Mesh draws the
// built-in cube. Spin is in degrees per frame.
type Scene struct {
	Mesh     string     `toml:"mesh"`
	Position [3]float32 `toml:"position"`
	Spin     [3]float32 `toml:"spin"`
	Clear    [4]uint8   `toml:"clear"`
}

type Log struct {
	Level string `toml:"level"`
}

// Stats.Every is the number of frames between frame rate reports. When
// BenchmarkDir is set, reported rates are also appended to a per CPU file
// below it.
type Stats struct {
	Every        int    `toml:"every"`
	BenchmarkDir string `toml:"benchmark_dir"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, ScaleDown: 4, Title: "Rasterizer", TPS: 60, Overlay: true},
		Camera: Camera{Fov: 60, Near: 0.1, Far: 999},
		Scene: Scene{
			Position: [3]float32{0, 0, 25},
			Spin:     [3]float32{0.7, 0.5, 0},
			Clear:    [4]uint8{0, 0, 0, 0xff},
		},
		Log:   Log{Level: "info"},
		Stats: Stats{Every: 100},
	}
}

// Load reads path over the defaults. When the file does not exist the
// defaults are returned together with an error wrapping ErrNotFound.
func Load(path string) (Config, error) {
	var config Config = Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("%w: %s", ErrNotFound, path)
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := config.Decode(bytes.NewReader(data)); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Decode overlays the TOML document in reader onto config. Unknown keys are
// rejected.
func (config *Config) Decode(reader io.Reader) error {
	var decoder *toml.Decoder = toml.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return nil
}

// Encode writes config as TOML.
func (config Config) Encode(writer io.Writer) error {
	if err := toml.NewEncoder(writer).Encode(config); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// Validate reports every setting that cannot be rendered with.
func (config Config) Validate() error {
	var errs []error

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", config.Window.Width, config.Window.Height))
	}
	if config.Window.ScaleDown < 1 {
		errs = append(errs, fmt.Errorf("window scale_down %d must be at least 1", config.Window.ScaleDown))
	}
	if config.Window.TPS < 1 {
		errs = append(errs, fmt.Errorf("window tps %d must be at least 1", config.Window.TPS))
	}
	if config.Camera.Fov <= 0 || config.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be within (0, 180)", config.Camera.Fov))
	}
	if config.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("camera near %g must be positive", config.Camera.Near))
	}
	if config.Camera.Far <= config.Camera.Near {
		errs = append(errs, fmt.Errorf("camera far %g must be greater than near %g", config.Camera.Far, config.Camera.Near))
	}
	if config.Stats.Every < 1 {
		errs = append(errs, fmt.Errorf("stats every %d must be at least 1", config.Stats.Every))
	}
	if _, err := ParseLevel(config.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// RasterSize is the size of the raster for a window of the given size.
func (window Window) RasterSize(width, height int) (int, int) {
	var scale int = max(window.ScaleDown, 1)

	return max(width/scale, 1), max(height/scale, 1)
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
