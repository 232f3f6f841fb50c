package pulse_test

import (
	"testing"

	"github.com/oliverbestmann/glbridge/pulse"
	"github.com/oliverbestmann/glbridge/pulse/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCacheReusesNegotiation(t *testing.T) {
	display := pulsetest.Offer(rgb565(16, 8))
	cache := pulse.NewConfigCache(display)
	req := pulse.MustConfigRequest(rgb565(1, 1))

	first, err := cache.Choose(req)
	require.NoError(t, err)

	second, err := cache.Choose(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, display.ConfigCalls())
	assert.Same(t, display, cache.Display())
}

func TestConfigCacheDoesNotCacheFailures(t *testing.T) {
	display := pulsetest.Offer(rgba8888(24, 8))
	cache := pulse.NewConfigCache(display)
	req := pulse.MustConfigRequest(rgb565(1, 1))

	_, err := cache.Choose(req)
	assert.ErrorIs(t, err, pulse.ErrConfigNotFound)

	_, err = cache.Choose(req)
	assert.ErrorIs(t, err, pulse.ErrConfigNotFound)

	assert.Equal(t, 2, display.ConfigCalls())
}

func TestConfigCachePurge(t *testing.T) {
	display := pulsetest.Offer(rgb565(16, 8))
	cache := pulse.NewConfigCache(display)
	req := pulse.MustConfigRequest(rgb565(1, 1))

	_, err := cache.Choose(req)
	require.NoError(t, err)

	cache.Purge()

	_, err = cache.Choose(req)
	require.NoError(t, err)

	assert.Equal(t, 2, display.ConfigCalls())
}
