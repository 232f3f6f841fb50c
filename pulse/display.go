package pulse

// ContextHandle is the platform specific handle of a rendering context.
type ContextHandle any

// Display is the platform side of config negotiation and context creation.
type Display interface {
	// Configs returns the configurations offered by the platform,
	// in the order the platform prefers them.
	Configs() ([]PlatformConfig, error)

	// CreateContext creates a rendering context for the given config. attribs
	// is a list of attribute/value pairs terminated by AttribNone.
	CreateContext(config PlatformConfig, attribs []int32) (ContextHandle, error)

	DestroyContext(handle ContextHandle) error
}
