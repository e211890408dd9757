// internal/config/discover_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	t.Setenv("PORTARR_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("PORTARR_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTARR_CONFIG")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "portarr", "config.toml"), DefaultPath())
}
