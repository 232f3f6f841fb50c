package orion

import (
	"sync"

	"github.com/oliverbestmann/glbridge/native"
)

type SurfaceState struct {
	Width       uint32
	Height      uint32
	Initialized bool
}

// SurfaceHost drives the renderer from surface notifications.
// The renderer is initialized exactly once, with the size of the first
// non empty surface. Later size changes are not propagated.
type SurfaceHost struct {
	mu           sync.Mutex
	renderer     native.Renderer
	resourcePath string
	state        SurfaceState
}

func NewSurfaceHost(renderer native.Renderer, resourcePath string) *SurfaceHost {
	return &SurfaceHost{
		renderer:     renderer,
		resourcePath: resourcePath,
	}
}

func (h *SurfaceHost) State() SurfaceState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *SurfaceHost) SurfaceCreated() {
}

func (h *SurfaceHost) SurfaceResized(width, height uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Initialized || width == 0 || height == 0 {
		return
	}

	h.state = SurfaceState{
		Width:       width,
		Height:      height,
		Initialized: true,
	}

	h.renderer.Init(int32(width), int32(height), h.resourcePath)
}

func (h *SurfaceHost) SurfaceDestroyed() {
}

func (h *SurfaceHost) FrameTick() {
	h.renderer.Draw()
}
