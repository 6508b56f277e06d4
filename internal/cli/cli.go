// Package cli implements the graphkit command-line interface.
//
// This package provides commands for sorting, traversing, and checking
// directed graphs read from edge-list files, rendering them with Graphviz,
// and serving the same operations over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - sort: Topologically order a graph (partial order on cycles)
//   - walk: Traverse a graph depth- or breadth-first from a start node
//   - check: Verify a graph is acyclic and report the offending edge
//   - render: Generate DOT or SVG output
//   - serve: Run the HTTP API
//   - cache: Manage the render artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/graphkit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphkit/pkg/buildinfo"
	"github.com/matzehuels/graphkit/pkg/cache"
	"github.com/matzehuels/graphkit/pkg/edgelist"
	"github.com/matzehuels/graphkit/pkg/graph"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphkit sorts, traverses, and renders directed graphs",
		Long:         `Graphkit is a CLI tool for working with directed graphs: topological sorting, depth- and breadth-first traversal, acyclicity checking, and Graphviz rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Input
// =============================================================================

// readGraph loads a graph from an edge-list file, or from stdin when the
// path is "-".
func readGraph(path string) (*graph.Digraph, error) {
	if path == "-" {
		g, err := edgelist.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return g, nil
	}
	return edgelist.ParseFile(path)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newArtifactCache returns the render artifact cache, or a no-op cache when
// caching is disabled or the cache directory is unavailable.
func newArtifactCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
