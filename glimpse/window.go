package glimpse

import "time"

type WindowOptions struct {
	// initial size of the window on desktop platforms
	Width  int
	Height int
	Title  string

	// requested delay between two accelerometer samples
	SensorInterval time.Duration
}

// Window drives the listeners from the callbacks of the host platform.
// The implementation is selected at build time: glfw on desktop,
// golang.org/x/mobile on android and ios.
type Window interface {
	// Run blocks until the window is closed or the surface could
	// not be created.
	Run(listeners Listeners) error
	Terminate()
}
