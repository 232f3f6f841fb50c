package glimpse_test

import (
	"testing"

	"github.com/oliverbestmann/glbridge/glimpse"
	"github.com/oliverbestmann/glbridge/native/nativetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorBridgeForwardsUnchanged(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewSensorBridge(rec)

	bridge.Accelerometer(0.1, -0.2, 9.81)
	bridge.Accelerometer(glimpse.AccelSample{1, 2, 3}.XYZ())

	calls := rec.Named("Accelerometer")
	require.Len(t, calls, 2)

	assert.Equal(t, []any{float32(0.1), float32(-0.2), float32(9.81)}, calls[0].Args)
	assert.Equal(t, []any{float32(1), float32(2), float32(3)}, calls[1].Args)
}

func TestSensorBridgeDoesNotDeduplicate(t *testing.T) {
	rec := &nativetest.Recorder{}
	bridge := glimpse.NewSensorBridge(rec)

	for range 3 {
		bridge.Accelerometer(0, 0, 1)
	}

	assert.Len(t, rec.Named("Accelerometer"), 3)
}
