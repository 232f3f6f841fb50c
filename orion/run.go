package orion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oliverbestmann/glbridge/glimpse"
	"github.com/oliverbestmann/glbridge/native"
	"github.com/oliverbestmann/glbridge/pulse"
	"github.com/pkg/profile"
)

// DefaultConfigRequest matches the surface x/mobile creates
// and is available on common desktop systems.
var DefaultConfigRequest = pulse.MustConfigRequest(pulse.BitDepths{
	Red:   8,
	Green: 8,
	Blue:  8,
	Depth: 16,
})

const DefaultSensorInterval = 41 * time.Millisecond

type RunOptions struct {
	// renderer to run. This is the only field that is required
	Renderer native.Renderer

	// requested surface configuration. The zero value
	// selects DefaultConfigRequest
	Config pulse.ConfigRequest

	// client api version of the rendering context, defaults to 2
	APIVersion int

	// passed to the renderer on initialization
	ResourcePath string

	SensorInterval time.Duration

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// one of "cpu", "mem" or the empty string to disable profiling
	Profile string

	// Sensors feeds samples from a custom source. It runs on its own
	// goroutine until ctx is cancelled after the window was closed.
	Sensors func(ctx context.Context, sensor glimpse.SensorListener)

	// Window to use instead of the platform window
	Window glimpse.Window
}

func (opts *RunOptions) withDefaults() {
	if opts.Config == (pulse.ConfigRequest{}) {
		opts.Config = DefaultConfigRequest
	}

	if opts.APIVersion == 0 {
		opts.APIVersion = 2
	}

	if opts.SensorInterval == 0 {
		opts.SensorInterval = DefaultSensorInterval
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "glbridge"
	}
}

// Run hosts the renderer until the window is closed.
func Run(opts RunOptions) error {
	if opts.Renderer == nil {
		return ErrNoRenderer
	}

	opts.withDefaults()

	if opts.APIVersion < 1 {
		return fmt.Errorf("%w: %d", pulse.ErrInvalidAPIVersion, opts.APIVersion)
	}

	stopProfile, err := startProfile(opts.Profile)
	if err != nil {
		return err
	}

	defer stopProfile()

	renderer := native.Serialize(opts.Renderer)

	if exiter, ok := renderer.(native.Exiter); ok {
		defer exiter.Exit()
	}

	host := NewSurfaceHost(renderer, opts.ResourcePath)

	listeners := glimpse.Listeners{
		Surface: newSurfaceSession(host, opts.Config, opts.APIVersion),
		Pointer: glimpse.NewInputBridge(renderer),
		Sensor:  glimpse.NewSensorBridge(renderer),
	}

	win := opts.Window
	if win == nil {
		win, err = glimpse.NewWindow(glimpse.WindowOptions{
			Width:          opts.WindowWidth,
			Height:         opts.WindowHeight,
			Title:          opts.WindowTitle,
			SensorInterval: opts.SensorInterval,
		})

		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
	}

	defer win.Terminate()

	if opts.Sensors != nil {
		ctx, cancel := context.WithCancel(context.Background())

		var wg sync.WaitGroup
		wg.Add(1)

		go func() {
			defer wg.Done()
			opts.Sensors(ctx, listeners.Sensor)
		}()

		// stop the sensors before the renderer exits
		defer wg.Wait()
		defer cancel()
	}

	slog.Info(
		"Run renderer",
		slog.String("config", opts.Config.String()),
		slog.Int("apiVersion", opts.APIVersion),
		slog.String("resourcePath", opts.ResourcePath),
	)

	if err := win.Run(listeners); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	return nil
}

func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil

	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil

	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil

	default:
		return nil, fmt.Errorf("unknown profile %q", mode)
	}
}
