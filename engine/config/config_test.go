package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  title: demo
  width: 800
context:
  major: 3
  minor: 3
  profile: core
  singleBuffer: true
render:
  clearColor: [1, 0, 0, 1]
profiler:
  interval: 250ms
`)
	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", conf.Window.Title)
	assert.Equal(t, 800, conf.Window.Width)
	assert.Equal(t, 720, conf.Window.Height, "default kept")
	assert.Equal(t, 3, conf.Context.Major)
	assert.Equal(t, "core", conf.Context.Profile)
	assert.Equal(t, 24, conf.Context.DepthBits)
	assert.Equal(t, []float32{1, 0, 0, 1}, conf.Render.ClearColor)
	assert.Equal(t, 250*time.Millisecond, conf.Profiler.Interval)
	assert.False(t, conf.Context.Framebuffer().DoubleBuffer)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 800\n")
	t.Setenv("OXY_WINDOW_WIDTH", "1024")
	t.Setenv("OXY_LOG_DEBUG", "true")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, conf.Window.Width)
	assert.True(t, conf.Log.Debug)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "oxy-gl", conf.Window.Title)
	assert.Equal(t, 4, conf.Context.Major)
	assert.Equal(t, 3, conf.Context.Minor)
	assert.Equal(t, 60.0, conf.Render.FrameLimit)
	assert.Len(t, conf.Render.ClearColor, 4)
	assert.Equal(t, time.Second, conf.Profiler.Interval)
	assert.True(t, conf.Context.Framebuffer().DoubleBuffer)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"profile": "context:\n  profile: es2\n",
		"color":   "render:\n  clearColor: [1, 0]\n",
		"size":    "window:\n  width: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestNegotiatorOptions(t *testing.T) {
	conf, err := Load(writeConfig(t, "context:\n  profile: compat\n"))
	require.NoError(t, err)
	assert.Len(t, conf.Context.NegotiatorOptions(), 5)

	req := conf.Context.Framebuffer()
	assert.Equal(t, glx.FramebufferRequest{DepthBits: 24, StencilBits: 8, DoubleBuffer: true}, req)
}
