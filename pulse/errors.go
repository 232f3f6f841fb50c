package pulse

import "errors"

var (
	// ErrConfigNotFound is returned if no configuration offered by the
	// display satisfies the request. The surface must not be created.
	ErrConfigNotFound = errors.New("pulse: no matching config")

	// ErrContextCreationFailed is returned if the display refuses to create
	// a context for the selected config and api version.
	ErrContextCreationFailed = errors.New("pulse: context creation failed")

	ErrInvalidRequest    = errors.New("pulse: invalid config request")
	ErrInvalidAPIVersion = errors.New("pulse: invalid api version")
)
