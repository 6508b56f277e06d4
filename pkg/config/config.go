// Package config loads graphkit settings from a TOML file.
//
// The file lives at ~/.config/graphkit/config.toml by default and every
// field is optional - [Load] starts from [Default] and overlays whatever
// the file sets. A missing file is not an error.
//
//	# config.toml
//	cache_dir = "/var/cache/graphkit"
//
//	[serve]
//	listen = ":8080"
//	redis_addr = "localhost:6379"
//
//	[render]
//	format = "svg"
//	rankdir = "LR"
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all graphkit settings.
type Config struct {
	// CacheDir is the directory for the file-backed artifact cache.
	// Empty selects ~/.cache/graphkit.
	CacheDir string `toml:"cache_dir"`

	Serve  ServeConfig  `toml:"serve"`
	Render RenderConfig `toml:"render"`
}

// ServeConfig configures the HTTP service.
type ServeConfig struct {
	// Listen is the address the HTTP service binds to.
	Listen string `toml:"listen"`

	// RedisAddr enables the Redis artifact cache when non-empty;
	// otherwise the service uses the file cache.
	RedisAddr string `toml:"redis_addr"`

	// RedisPassword is the optional Redis auth password.
	RedisPassword string `toml:"redis_password"`

	// RedisDB is the logical Redis database number.
	RedisDB int `toml:"redis_db"`
}

// RenderConfig configures default render options.
type RenderConfig struct {
	// Format is the default output format ("dot" or "svg").
	Format string `toml:"format"`

	// Rankdir is the Graphviz layout direction.
	Rankdir string `toml:"rankdir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Serve: ServeConfig{
			Listen: ":8080",
		},
		Render: RenderConfig{
			Format:  "svg",
			Rankdir: "TB",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/graphkit/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "graphkit", "config.toml"), nil
}

// Load reads the config file at path, overlaying it on [Default].
// An empty path selects [DefaultPath]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveCacheDir returns the configured cache directory, falling back to
// ~/.cache/graphkit.
func (c Config) ResolveCacheDir() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return filepath.Join(base, "graphkit"), nil
}
