package glimpse

import (
	"sync"
	"time"

	"github.com/oliverbestmann/glbridge/glm"
	"github.com/oliverbestmann/glbridge/native"
)

//go:generate go tool stringer -type=Phase -trimprefix=Phase

type Phase int

const (
	PhaseBegan Phase = iota
	PhaseMoved
	PhaseEnded
	PhaseCancelled
)

// TapWindow is the maximum time between two pointer downs
// for them to count as one multi tap gesture.
const TapWindow = 333 * time.Millisecond

// NormalizedEvent is the renderer facing shape of a pointer event.
type NormalizedEvent struct {
	Position glm.Vec2f
	TapCount uint
	Phase    Phase
}

// TapState tracks rapid successive pointer downs.
type TapState struct {
	// timestamp of the last pointer down in milliseconds
	LastTap uint64

	// number of taps in the current gesture
	Count uint

	tapped bool
}

func (s *TapState) press(timestamp uint64) uint {
	window := uint64(TapWindow.Milliseconds())

	if s.tapped && timestamp >= s.LastTap && timestamp-s.LastTap < window {
		s.Count += 1
	} else {
		s.Count = 1
	}

	s.LastTap = timestamp
	s.tapped = true

	return s.Count
}

// InputBridge normalizes pointer events, computes the tap count and
// forwards everything to the renderer.
type InputBridge struct {
	mu       sync.Mutex
	renderer native.Renderer
	taps     TapState
}

var _ PointerListener = (*InputBridge)(nil)

func NewInputBridge(renderer native.Renderer) *InputBridge {
	return &InputBridge{
		renderer: renderer,
		taps:     TapState{Count: 1},
	}
}

// TapState returns a copy of the current tap state.
func (b *InputBridge) TapState() TapState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.taps
}

func (b *InputBridge) PointerDown(x, y float32, timestamp uint64) NormalizedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := b.taps.press(timestamp)
	return b.forward(x, y, count, PhaseBegan)
}

// PointerMove reuses the tap count of the last pointer down.
func (b *InputBridge) PointerMove(x, y float32) NormalizedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.forward(x, y, b.taps.Count, PhaseMoved)
}

// PointerUp reuses the tap count of the last pointer down.
func (b *InputBridge) PointerUp(x, y float32) NormalizedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.forward(x, y, b.taps.Count, PhaseEnded)
}

// PointerCancel is only forwarded if the renderer implements
// native.TouchCanceller.
func (b *InputBridge) PointerCancel(x, y float32) NormalizedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.forward(x, y, b.taps.Count, PhaseCancelled)
}

func (b *InputBridge) forward(x, y float32, count uint, phase Phase) NormalizedEvent {
	ev := NormalizedEvent{
		Position: glm.Vec2f{x, y},
		TapCount: count,
		Phase:    phase,
	}

	tapCount := int32(count)

	switch phase {
	case PhaseBegan:
		b.renderer.ToucheBegan(x, y, tapCount)
	case PhaseMoved:
		b.renderer.ToucheMoved(x, y, tapCount)
	case PhaseEnded:
		b.renderer.ToucheEnded(x, y, tapCount)
	case PhaseCancelled:
		if canceller, ok := b.renderer.(native.TouchCanceller); ok {
			canceller.ToucheCancelled(x, y, tapCount)
		}
	}

	return ev
}
