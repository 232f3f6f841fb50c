package native

import "fmt"

type LibraryOptions struct {
	// Prefix is prepended to every entry point name when looking up
	// symbols, e.g. "templateApp" resolves "templateAppInit".
	Prefix string
}

// Library is a Renderer whose entry points are resolved from a shared
// library. Entry points other than Init and Draw are optional and are
// skipped if the library does not export them.
type Library struct {
	Funcs

	path   string
	handle uintptr
}

var _ Renderer = (*Library)(nil)

func (l *Library) Path() string {
	return l.path
}

// symbol describes a single entry point and where to bind it.
type symbol struct {
	name     string
	required bool
	target   any
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"Init", true, &l.InitFunc},
		{"Draw", true, &l.DrawFunc},
		{"ToucheBegan", false, &l.ToucheBeganFunc},
		{"ToucheMoved", false, &l.ToucheMovedFunc},
		{"ToucheEnded", false, &l.ToucheEndedFunc},
		{"ToucheCancelled", false, &l.ToucheCancelledFunc},
		{"Accelerometer", false, &l.AccelerometerFunc},
		{"Exit", false, &l.ExitFunc},
	}
}

func missingSymbol(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingSymbol, name)
}
