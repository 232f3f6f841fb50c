package glimpse_test

import (
	"sync"
	"testing"

	"github.com/oliverbestmann/glbridge/glimpse"
	"github.com/oliverbestmann/glbridge/glm"
	"github.com/oliverbestmann/glbridge/native/nativetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tapCounts(t *testing.T, timestamps ...uint64) []uint {
	t.Helper()

	bridge := glimpse.NewInputBridge(&nativetest.Recorder{})

	var counts []uint
	for _, ts := range timestamps {
		ev := bridge.PointerDown(0, 0, ts)
		counts = append(counts, ev.TapCount)
	}

	return counts
}

func TestTapCount(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []uint64
		want       []uint
	}{
		{"two double taps", []uint64{0, 100, 500, 600}, []uint{1, 2, 1, 2}},
		{"triple tap", []uint64{1000, 1100, 1200}, []uint{1, 2, 3}},
		{"first tap is always one", []uint64{200}, []uint{1}},
		{"gap of exactly the window", []uint64{1000, 1333}, []uint{1, 1}},
		{"gap just inside the window", []uint64{1000, 1332}, []uint{1, 2}},
		{"same timestamp", []uint64{50, 50}, []uint{1, 2}},
		{"timestamp going backwards", []uint64{1000, 900, 950}, []uint{1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tapCounts(t, tt.timestamps...))
		})
	}
}

func TestInputBridgeForwardsGesture(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewInputBridge(rec)

	down := bridge.PointerDown(10, 20, 0)
	bridge.PointerUp(10, 20)

	bridge.PointerDown(11, 21, 150)
	move := bridge.PointerMove(30, 40)
	up := bridge.PointerUp(31, 41)

	assert.Equal(t, glimpse.NormalizedEvent{Position: glm.Vec2f{10, 20}, TapCount: 1, Phase: glimpse.PhaseBegan}, down)
	assert.Equal(t, glimpse.NormalizedEvent{Position: glm.Vec2f{30, 40}, TapCount: 2, Phase: glimpse.PhaseMoved}, move)
	assert.Equal(t, glimpse.NormalizedEvent{Position: glm.Vec2f{31, 41}, TapCount: 2, Phase: glimpse.PhaseEnded}, up)

	calls := rec.Calls()
	require.Len(t, calls, 5)

	assert.Equal(t, "ToucheBegan", calls[0].Name)
	assert.Equal(t, []any{float32(10), float32(20), int32(1)}, calls[0].Args)

	assert.Equal(t, "ToucheEnded", calls[1].Name)
	assert.Equal(t, []any{float32(10), float32(20), int32(1)}, calls[1].Args)

	assert.Equal(t, "ToucheBegan", calls[2].Name)
	assert.Equal(t, []any{float32(11), float32(21), int32(2)}, calls[2].Args)

	assert.Equal(t, "ToucheMoved", calls[3].Name)
	assert.Equal(t, []any{float32(30), float32(40), int32(2)}, calls[3].Args)

	assert.Equal(t, "ToucheEnded", calls[4].Name)
	assert.Equal(t, []any{float32(31), float32(41), int32(2)}, calls[4].Args)
}

func TestInputBridgeMoveBeforeDown(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewInputBridge(rec)

	ev := bridge.PointerMove(1, 2)
	assert.Equal(t, uint(1), ev.TapCount)

	require.Len(t, rec.Named("ToucheMoved"), 1)
	assert.Equal(t, []any{float32(1), float32(2), int32(1)}, rec.Named("ToucheMoved")[0].Args)
}

func TestInputBridgeCancel(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewInputBridge(rec)

	bridge.PointerDown(1, 2, 0)
	ev := bridge.PointerCancel(3, 4)

	assert.Equal(t, glimpse.PhaseCancelled, ev.Phase)
	require.Len(t, rec.Named("ToucheCancelled"), 1)
	assert.Equal(t, []any{float32(3), float32(4), int32(1)}, rec.Named("ToucheCancelled")[0].Args)
}

func TestInputBridgeCancelWithoutExtension(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewInputBridge(nativetest.Minimal{Recorder: rec})

	bridge.PointerDown(1, 2, 0)
	ev := bridge.PointerCancel(3, 4)

	assert.Equal(t, glimpse.PhaseCancelled, ev.Phase)
	assert.Len(t, rec.Calls(), 1)
}

func TestInputBridgeTapState(t *testing.T) {
	bridge := glimpse.NewInputBridge(&nativetest.Recorder{})
	assert.Equal(t, uint(1), bridge.TapState().Count)

	bridge.PointerDown(0, 0, 100)
	bridge.PointerDown(0, 0, 200)

	state := bridge.TapState()
	assert.Equal(t, uint64(200), state.LastTap)
	assert.Equal(t, uint(2), state.Count)
}

func TestInputBridgeConcurrentDowns(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewInputBridge(rec)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bridge.PointerDown(0, 0, 0)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, uint(800), bridge.TapState().Count)
	assert.Len(t, rec.Named("ToucheBegan"), 800)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Began", glimpse.PhaseBegan.String())
	assert.Equal(t, "Cancelled", glimpse.PhaseCancelled.String())
	assert.Equal(t, "Phase(7)", glimpse.Phase(7).String())
}
