package glimpse

import "github.com/oliverbestmann/glbridge/pulse"

// SurfaceLifecycleListener receives the lifecycle of the drawing surface
// and the per frame ticks of the render loop.
type SurfaceLifecycleListener interface {
	// SurfaceCreated is called once the platform can create a rendering
	// context on display. Returning an error aborts the surface.
	SurfaceCreated(display pulse.Display) error

	SurfaceResized(width, height uint32)
	SurfaceDestroyed()
	FrameTick()
}

// PointerListener receives the primary pointer of the platform.
// Timestamps are in milliseconds.
type PointerListener interface {
	PointerDown(x, y float32, timestamp uint64) NormalizedEvent
	PointerMove(x, y float32) NormalizedEvent
	PointerUp(x, y float32) NormalizedEvent
	PointerCancel(x, y float32) NormalizedEvent
}

// SensorListener receives periodic sensor samples.
type SensorListener interface {
	Accelerometer(x, y, z float32)
}

// Listeners bundles everything a Window dispatches to.
type Listeners struct {
	Surface SurfaceLifecycleListener
	Pointer PointerListener
	Sensor  SensorListener
}
