package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
// Repository information is derived from scanning, not configuration.
type Config struct {
	Cache    CacheConfig    `mapstructure:"cache"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// CacheConfig holds scan cache configuration
type CacheConfig struct {
	Path string `mapstructure:"path"` // Location of the scan cache file
}

// DefaultsConfig holds default-rule configuration
type DefaultsConfig struct {
	Path string `mapstructure:"path"` // Location of the defaults (tie-breaking) file
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Expand paths
	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("cache.path", defaultCachePath())
	viper.SetDefault("defaults.path", defaultRulesPath())
}

// defaultCachePath places the cache file directly inside the per-user cache
// directory, falling back to a system-wide path when no home is resolvable.
func defaultCachePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = "/var/cache"
	}
	return filepath.Join(cacheDir, "hop")
}

func defaultRulesPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/etc", "hop", "defaults")
	}
	return filepath.Join(homeDir, ".config", "hop", "defaults")
}

// expandPaths expands ~ in configured paths
func expandPaths(config *Config) error {
	var err error

	config.Cache.Path, err = expandPath(config.Cache.Path)
	if err != nil {
		return err
	}

	config.Defaults.Path, err = expandPath(config.Defaults.Path)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
