package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Serve.Listen != ":8080" {
		t.Errorf("Serve.Listen = %s, want :8080", cfg.Serve.Listen)
	}
	if cfg.Render.Format != "svg" || cfg.Render.Rankdir != "TB" {
		t.Errorf("Render defaults = %+v, want svg/TB", cfg.Render)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
cache_dir = "/tmp/gk-cache"

[serve]
listen = ":9090"
redis_addr = "localhost:6379"

[render]
rankdir = "LR"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CacheDir != "/tmp/gk-cache" {
		t.Errorf("CacheDir = %s, want /tmp/gk-cache", cfg.CacheDir)
	}
	if cfg.Serve.Listen != ":9090" {
		t.Errorf("Serve.Listen = %s, want :9090", cfg.Serve.Listen)
	}
	if cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("Serve.RedisAddr = %s, want localhost:6379", cfg.Serve.RedisAddr)
	}
	// Unset fields keep their defaults.
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format = %s, want default svg", cfg.Render.Format)
	}
	if cfg.Render.Rankdir != "LR" {
		t.Errorf("Render.Rankdir = %s, want LR", cfg.Render.Rankdir)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("cache_dir = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed TOML")
	}
}

func TestResolveCacheDir(t *testing.T) {
	cfg := Config{CacheDir: "/explicit"}
	dir, err := cfg.ResolveCacheDir()
	if err != nil {
		t.Fatalf("ResolveCacheDir() error = %v", err)
	}
	if dir != "/explicit" {
		t.Errorf("ResolveCacheDir() = %s, want /explicit", dir)
	}

	dir, err = Config{}.ResolveCacheDir()
	if err != nil {
		t.Fatalf("ResolveCacheDir() error = %v", err)
	}
	if filepath.Base(dir) != "graphkit" {
		t.Errorf("ResolveCacheDir() = %s, want */graphkit", dir)
	}
}
