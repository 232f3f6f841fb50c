package orion_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oliverbestmann/glbridge/orion"
	"github.com/oliverbestmann/glbridge/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
resource_path = "/data/app.apk"
api_version = 3
library = "./librenderer.so"
sensor_interval_ms = 20

[window]
width = 800
title = "Renderer"

[surface]
red = 5
green = 6
blue = 5
depth = 1
stencil = 1
`)

	config, err := orion.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./librenderer.so", config.Library)

	opts := orion.RunOptions{WindowHeight: 300}
	require.NoError(t, config.Apply(&opts))

	assert.Equal(t, "/data/app.apk", opts.ResourcePath)
	assert.Equal(t, 3, opts.APIVersion)
	assert.Equal(t, 20*time.Millisecond, opts.SensorInterval)
	assert.Equal(t, 800, opts.WindowWidth)
	assert.Equal(t, 300, opts.WindowHeight)
	assert.Equal(t, "Renderer", opts.WindowTitle)

	want := pulse.MustConfigRequest(pulse.BitDepths{Red: 5, Green: 6, Blue: 5, Depth: 1, Stencil: 1})
	assert.Equal(t, want, opts.Config)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `colour_depth = 16`)

	_, err := orion.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := orion.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEmptyConfigKeepsOptions(t *testing.T) {
	opts := orion.RunOptions{APIVersion: 2, ResourcePath: "res"}
	require.NoError(t, orion.Config{}.Apply(&opts))

	assert.Equal(t, orion.RunOptions{APIVersion: 2, ResourcePath: "res"}, opts)
}

func TestApplyRejectsNegativeBitDepths(t *testing.T) {
	config := orion.Config{Surface: &orion.SurfaceConfig{Red: -1}}

	var opts orion.RunOptions
	err := config.Apply(&opts)
	assert.ErrorIs(t, err, pulse.ErrInvalidRequest)
}
