package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphkit/internal/api"
	"github.com/matzehuels/graphkit/pkg/cache"
	"github.com/matzehuels/graphkit/pkg/config"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the graph HTTP API",
		Long: `Run the graph HTTP API.

The serve command exposes sorting, traversal, acyclicity checking, and
rendering over HTTP. Settings come from the config file
(~/.config/graphkit/config.toml by default); the --listen flag overrides
the configured address.

When a Redis address is configured, rendered artifacts are cached in
Redis; otherwise the local file cache is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, configPath, listen string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if listen == "" {
		listen = cfg.Serve.Listen
	}

	artifacts, err := c.newServeCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	srv := &http.Server{
		Addr:              listen,
		Handler:           api.New(c.Logger, artifacts).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// newServeCache picks the artifact cache backend from the config:
// Redis when an address is configured, the file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if cfg.Serve.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Serve.RedisAddr,
			Password: cfg.Serve.RedisPassword,
			DB:       cfg.Serve.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Serve.RedisAddr, err)
		}
		c.Logger.Debug("artifact cache", "backend", "redis", "addr", cfg.Serve.RedisAddr)
		return rc, nil
	}

	dir, err := cfg.ResolveCacheDir()
	if err != nil {
		c.Logger.Warn("cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("artifact cache", "backend", "file", "dir", dir)
	return fc, nil
}
