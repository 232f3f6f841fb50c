package native

import "errors"

var (
	// ErrMissingSymbol is returned by Open if a required entry
	// point is not exported by the library.
	ErrMissingSymbol = errors.New("native: missing symbol")

	// ErrUnsupported is returned by Open on platforms without dynamic loading.
	ErrUnsupported = errors.New("native: dynamic loading not supported on this platform")
)
