package native

import "sync"

// Serialize wraps the renderer so that no two entry points ever run at the
// same time. Input and sensor delivery may happen on a different goroutine
// than the render loop, the renderer on the other side of the boundary
// does not do any locking itself.
//
// The optional TouchCanceller and Exiter extensions of r stay visible on
// the returned value.
func Serialize(r Renderer) Renderer {
	if s, ok := r.(*serialized); ok {
		return s
	}

	s := &serialized{target: r}

	if c, ok := r.(TouchCanceller); ok {
		s.canceller = c
	}

	if e, ok := r.(Exiter); ok {
		s.exiter = e
	}

	return s
}

type serialized struct {
	mu        sync.Mutex
	target    Renderer
	canceller TouchCanceller
	exiter    Exiter
}

func (s *serialized) Init(width, height int32, resourcePath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.Init(width, height, resourcePath)
}

func (s *serialized) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.Draw()
}

func (s *serialized) ToucheBegan(x, y float32, tapCount int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.ToucheBegan(x, y, tapCount)
}

func (s *serialized) ToucheMoved(x, y float32, tapCount int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.ToucheMoved(x, y, tapCount)
}

func (s *serialized) ToucheEnded(x, y float32, tapCount int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.ToucheEnded(x, y, tapCount)
}

// ToucheCancelled is dropped if the wrapped renderer does not support it.
func (s *serialized) ToucheCancelled(x, y float32, tapCount int32) {
	if s.canceller == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceller.ToucheCancelled(x, y, tapCount)
}

func (s *serialized) Accelerometer(x, y, z float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.Accelerometer(x, y, z)
}

func (s *serialized) Exit() {
	if s.exiter == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exiter.Exit()
}
