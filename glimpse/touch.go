package glimpse

import "golang.org/x/mobile/event/touch"

// touchFilter reduces multi touch input to the first finger that went down.
// Further fingers are ignored until it is lifted.
type touchFilter struct {
	active touch.Sequence
	down   bool
	last   touch.Event
}

func (f *touchFilter) dispatch(ev touch.Event, pointer PointerListener, timestamp uint64) (NormalizedEvent, bool) {
	switch ev.Type {
	case touch.TypeBegin:
		if f.down {
			return NormalizedEvent{}, false
		}

		f.active = ev.Sequence
		f.down = true
		f.last = ev
		return pointer.PointerDown(ev.X, ev.Y, timestamp), true

	case touch.TypeMove:
		if !f.down || ev.Sequence != f.active {
			return NormalizedEvent{}, false
		}

		f.last = ev
		return pointer.PointerMove(ev.X, ev.Y), true

	case touch.TypeEnd:
		if !f.down || ev.Sequence != f.active {
			return NormalizedEvent{}, false
		}

		f.down = false
		return pointer.PointerUp(ev.X, ev.Y), true
	}

	return NormalizedEvent{}, false
}

// cancel aborts the active touch, e.g. when the surface goes away.
func (f *touchFilter) cancel(pointer PointerListener) (NormalizedEvent, bool) {
	if !f.down {
		return NormalizedEvent{}, false
	}

	f.down = false
	return pointer.PointerCancel(f.last.X, f.last.Y), true
}
