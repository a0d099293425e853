package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(cfg.Cache.Path, string(os.PathSeparator)+"hop"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "hop", "defaults"), cfg.Defaults.Path)
}

func TestLoadExpandsTilde(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("cache.path", "~/custom/cache")
	viper.Set("defaults.path", "~/custom/defaults")

	cfg, err := Load()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "custom", "cache"), cfg.Cache.Path)
	require.Equal(t, filepath.Join(home, "custom", "defaults"), cfg.Defaults.Path)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("cache.path", "/tmp/hop-cache")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/hop-cache", cfg.Cache.Path)
}
