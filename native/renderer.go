// Package native describes the boundary to the rendering engine. The engine
// usually lives in a shared library on the other side of a foreign function
// interface, see Open. Everything the host observes is pushed through the
// Renderer interface, so any implementation, including test doubles, can be
// substituted.
package native

// Renderer is the fixed set of entry points exposed by a rendering engine.
type Renderer interface {
	// Init is called at most once per surface lifetime, with the size of
	// the surface and the path to the application resources.
	Init(width, height int32, resourcePath string)

	// Draw is called once per frame.
	Draw()

	ToucheBegan(x, y float32, tapCount int32)
	ToucheMoved(x, y float32, tapCount int32)
	ToucheEnded(x, y float32, tapCount int32)

	Accelerometer(x, y, z float32)
}

// TouchCanceller is implemented by renderers that want to be told about
// touches the platform aborted, e.g. when a system gesture takes over.
type TouchCanceller interface {
	ToucheCancelled(x, y float32, tapCount int32)
}

// Exiter is implemented by renderers that need a final shutdown call.
type Exiter interface {
	Exit()
}
