//go:build android || ios

package glimpse

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oliverbestmann/glbridge/pulse"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/sensor"
	"golang.org/x/mobile/gl"
)

// x/mobile chooses the egl config itself and only ever hands out
// a context of this shape.
var mobileConfig = pulse.StaticConfig{
	BitDepths: pulse.BitDepths{Red: 8, Green: 8, Blue: 8, Depth: 16},
}

const mobileMaxAPIVersion = 3

var notifySensors sync.Once

type mobileWindow struct {
	opts WindowOptions
}

func NewWindow(opts WindowOptions) (Window, error) {
	return &mobileWindow{opts: opts}, nil
}

func (m *mobileWindow) Terminate() {
}

func (m *mobileWindow) Run(listeners Listeners) error {
	var err error

	app.Main(func(a app.App) {
		err = m.loop(a, listeners)
	})

	return err
}

func (m *mobileWindow) loop(a app.App, listeners Listeners) error {
	notifySensors.Do(func() { sensor.Notify(a) })

	display := &mobileDisplay{}
	clock := time.Now()

	var touches touchFilter
	var visible bool
	var lastSize size.Event

	for ev := range a.Events() {
		switch ev := a.Filter(ev).(type) {
		case lifecycle.Event:
			switch ev.Crosses(lifecycle.StageVisible) {
			case lifecycle.CrossOn:
				glctx, ok := ev.DrawContext.(gl.Context)
				if !ok {
					slog.Warn("Lifecycle event without a gl context")
					continue
				}

				display.current = glctx

				if err := listeners.Surface.SurfaceCreated(display); err != nil {
					return fmt.Errorf("create surface: %w", err)
				}

				visible = true

				if lastSize.WidthPx > 0 && lastSize.HeightPx > 0 {
					listeners.Surface.SurfaceResized(uint32(lastSize.WidthPx), uint32(lastSize.HeightPx))
				}

				if err := sensor.Enable(sensor.Accelerometer, m.opts.SensorInterval); err != nil {
					slog.Warn("Accelerometer not available", slog.String("err", err.Error()))
				}

				a.Send(paint.Event{})

			case lifecycle.CrossOff:
				if err := sensor.Disable(sensor.Accelerometer); err != nil {
					slog.Warn("Disable accelerometer", slog.String("err", err.Error()))
				}

				if ev, ok := touches.cancel(listeners.Pointer); ok {
					logPointer(ev)
				}

				visible = false
				listeners.Surface.SurfaceDestroyed()
				display.current = nil
			}

			if ev.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			lastSize = ev

			if visible {
				listeners.Surface.SurfaceResized(uint32(ev.WidthPx), uint32(ev.HeightPx))
			}

		case paint.Event:
			if !visible || ev.External {
				continue
			}

			listeners.Surface.FrameTick()

			a.Publish()

			// keep drawing
			a.Send(paint.Event{})

		case touch.Event:
			timestamp := uint64(time.Since(clock).Milliseconds())
			if ev, ok := touches.dispatch(ev, listeners.Pointer, timestamp); ok {
				logPointer(ev)
			}

		case sensor.Event:
			if ev.Sensor != sensor.Accelerometer || len(ev.Data) < 3 {
				continue
			}

			listeners.Sensor.Accelerometer(float32(ev.Data[0]), float32(ev.Data[1]), float32(ev.Data[2]))
		}
	}

	return nil
}

// mobileDisplay adopts the context x/mobile created for the
// current visible stage.
type mobileDisplay struct {
	current gl.Context
}

func (d *mobileDisplay) Configs() ([]pulse.PlatformConfig, error) {
	return []pulse.PlatformConfig{mobileConfig}, nil
}

func (d *mobileDisplay) CreateContext(config pulse.PlatformConfig, attribs []int32) (pulse.ContextHandle, error) {
	if version, ok := pulse.ClientVersion(attribs); ok && version > mobileMaxAPIVersion {
		return nil, fmt.Errorf("api version %d not supported", version)
	}

	if d.current == nil {
		return nil, errors.New("no gl context available")
	}

	return d.current, nil
}

func (d *mobileDisplay) DestroyContext(handle pulse.ContextHandle) error {
	// owned by x/mobile
	return nil
}
