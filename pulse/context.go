package pulse

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ContextFactory creates rendering contexts for a fixed client api version,
// instead of whatever version the platform would pick by default.
type ContextFactory struct {
	APIVersion int
}

// Context encapsulates a rendering context created by a Display, together
// with the config it was created for.
type Context struct {
	Handle     ContextHandle
	Config     PlatformConfig
	APIVersion int

	display  Display
	release  sync.Once
	released atomic.Bool
	err      error
}

func (f ContextFactory) Create(display Display, config PlatformConfig) (*Context, error) {
	if f.APIVersion < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAPIVersion, f.APIVersion)
	}

	handle, err := display.CreateContext(config, ContextAttribs(f.APIVersion))
	if err != nil {
		return nil, fmt.Errorf("%w: api version %d: %w", ErrContextCreationFailed, f.APIVersion, err)
	}

	if handle == nil {
		return nil, fmt.Errorf("%w: api version %d: no handle", ErrContextCreationFailed, f.APIVersion)
	}

	ctx := &Context{
		Handle:     handle,
		Config:     config,
		APIVersion: f.APIVersion,
		display:    display,
	}

	return ctx, nil
}

// Destroy releases the context, see Context.Release.
func (f ContextFactory) Destroy(ctx *Context) error {
	if ctx == nil {
		return nil
	}

	return ctx.Release()
}

// Release destroys the context on its display. Only the first call reaches
// the display, later calls return the result of the first one.
func (ctx *Context) Release() error {
	ctx.release.Do(func() {
		if err := ctx.display.DestroyContext(ctx.Handle); err != nil {
			ctx.err = fmt.Errorf("destroy context: %w", err)
		}

		ctx.Handle = nil
		ctx.released.Store(true)
	})

	return ctx.err
}

// Released returns true once Release was called.
// It is safe to call concurrently with Release.
func (ctx *Context) Released() bool {
	return ctx.released.Load()
}
