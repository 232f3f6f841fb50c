package glimpse

import (
	"testing"

	"github.com/oliverbestmann/glbridge/native/nativetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/touch"
)

func TestTouchFilterFollowsFirstFinger(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := NewInputBridge(rec)

	var filter touchFilter

	events := []touch.Event{
		{X: 1, Y: 1, Sequence: 1, Type: touch.TypeBegin},
		{X: 9, Y: 9, Sequence: 2, Type: touch.TypeBegin},
		{X: 2, Y: 2, Sequence: 1, Type: touch.TypeMove},
		{X: 8, Y: 8, Sequence: 2, Type: touch.TypeMove},
		{X: 7, Y: 7, Sequence: 2, Type: touch.TypeEnd},
		{X: 3, Y: 3, Sequence: 1, Type: touch.TypeEnd},
	}

	var forwarded int
	for _, ev := range events {
		if _, ok := filter.dispatch(ev, bridge, 0); ok {
			forwarded++
		}
	}

	assert.Equal(t, 3, forwarded)

	var names []string
	for _, call := range rec.Calls() {
		names = append(names, call.Name)
	}

	assert.Equal(t, []string{"ToucheBegan", "ToucheMoved", "ToucheEnded"}, names)
	assert.Equal(t, []any{float32(3), float32(3), int32(1)}, rec.Named("ToucheEnded")[0].Args)
}

func TestTouchFilterAcceptsNewFingerAfterLift(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := NewInputBridge(rec)

	var filter touchFilter
	filter.dispatch(touch.Event{Sequence: 1, Type: touch.TypeBegin}, bridge, 0)
	filter.dispatch(touch.Event{Sequence: 1, Type: touch.TypeEnd}, bridge, 0)

	ev, ok := filter.dispatch(touch.Event{X: 4, Y: 5, Sequence: 2, Type: touch.TypeBegin}, bridge, 100)
	require.True(t, ok)
	assert.Equal(t, uint(2), ev.TapCount)
}

func TestTouchFilterCancel(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := NewInputBridge(rec)

	var filter touchFilter

	_, ok := filter.cancel(bridge)
	assert.False(t, ok)

	filter.dispatch(touch.Event{X: 1, Y: 2, Sequence: 1, Type: touch.TypeBegin}, bridge, 0)
	filter.dispatch(touch.Event{X: 3, Y: 4, Sequence: 1, Type: touch.TypeMove}, bridge, 0)

	ev, ok := filter.cancel(bridge)
	require.True(t, ok)
	assert.Equal(t, PhaseCancelled, ev.Phase)

	require.Len(t, rec.Named("ToucheCancelled"), 1)
	assert.Equal(t, []any{float32(3), float32(4), int32(1)}, rec.Named("ToucheCancelled")[0].Args)

	// the cancelled finger is gone
	_, ok = filter.dispatch(touch.Event{Sequence: 1, Type: touch.TypeEnd}, bridge, 0)
	assert.False(t, ok)
}
