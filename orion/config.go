package orion

import (
	"fmt"
	"os"
	"time"

	"github.com/oliverbestmann/glbridge/pulse"
	"github.com/pelletier/go-toml/v2"
)

// Config is the file representation of RunOptions. Zero values
// leave the corresponding option untouched.
type Config struct {
	ResourcePath string `toml:"resource_path"`
	APIVersion   int    `toml:"api_version"`
	Profile      string `toml:"profile"`

	// path to a shared library exposing the renderer entry points
	Library string `toml:"library"`

	SensorIntervalMillis int `toml:"sensor_interval_ms"`

	Window  WindowConfig   `toml:"window"`
	Surface *SurfaceConfig `toml:"surface"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// SurfaceConfig is the requested surface configuration.
type SurfaceConfig struct {
	Red     int `toml:"red"`
	Green   int `toml:"green"`
	Blue    int `toml:"blue"`
	Alpha   int `toml:"alpha"`
	Depth   int `toml:"depth"`
	Stencil int `toml:"stencil"`
}

// LoadConfig reads a toml file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	var config Config

	dec := toml.NewDecoder(fp).DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}

	return config, nil
}

// Apply copies all values that are set in the config to opts.
func (c Config) Apply(opts *RunOptions) error {
	if c.ResourcePath != "" {
		opts.ResourcePath = c.ResourcePath
	}

	if c.APIVersion != 0 {
		opts.APIVersion = c.APIVersion
	}

	if c.Profile != "" {
		opts.Profile = c.Profile
	}

	if c.SensorIntervalMillis != 0 {
		opts.SensorInterval = time.Duration(c.SensorIntervalMillis) * time.Millisecond
	}

	if c.Window.Width != 0 {
		opts.WindowWidth = c.Window.Width
	}

	if c.Window.Height != 0 {
		opts.WindowHeight = c.Window.Height
	}

	if c.Window.Title != "" {
		opts.WindowTitle = c.Window.Title
	}

	if c.Surface != nil {
		request, err := pulse.NewConfigRequest(pulse.BitDepths{
			Red:     c.Surface.Red,
			Green:   c.Surface.Green,
			Blue:    c.Surface.Blue,
			Alpha:   c.Surface.Alpha,
			Depth:   c.Surface.Depth,
			Stencil: c.Surface.Stencil,
		})

		if err != nil {
			return fmt.Errorf("surface config: %w", err)
		}

		opts.Config = request
	}

	return nil
}
