package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Canvas.Width)
	assert.Equal(t, 600.0, cfg.Canvas.Height)
	assert.Equal(t, 1.0, cfg.Placement.Buffer)
	assert.Equal(t, 50, cfg.Placement.MaxAttempts)
	assert.Equal(t, "file", cfg.Storage.Backend)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
canvas:
  width: 1280
  height: 720
placement:
  buffer: 2
  max_attempts: 100
storage:
  backend: sqlite
  path: /tmp/layouts.db
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280.0, cfg.Canvas.Width)
	assert.Equal(t, 2.0, cfg.Placement.Buffer)
	assert.Equal(t, 100, cfg.Placement.MaxAttempts)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/layouts.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"zero canvas":     "canvas:\n  width: 0\n  height: 600\n",
		"bad backend":     "storage:\n  backend: redis\n",
		"negative buffer": "placement:\n  buffer: -1\n",
		"malformed yaml":  "canvas: [",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
