package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphkit/pkg/cache"
	apperrors "github.com/matzehuels/graphkit/pkg/errors"
	"github.com/matzehuels/graphkit/pkg/render"
)

// renderCommand creates the render command for Graphviz output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format   string
		output   string
		noCache  bool
		detailed bool
		rankdir  string
	)

	cmd := &cobra.Command{
		Use:   "render [graph.txt]",
		Short: "Render a directed graph as DOT or SVG",
		Long: `Render a directed graph as DOT or SVG.

The render command reads an edge-list file ("-" for stdin) and emits a
Graphviz visualization. DOT output goes to stdout unless --output is
given; SVG output defaults to the input name with an .svg extension.

SVG results are cached locally by content hash for faster subsequent
runs. Use --no-cache to force a fresh render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runRender(ctx, cmd.OutOrStdout(), args[0], renderParams{
				format:   format,
				output:   output,
				noCache:  noCache,
				detailed: detailed,
				rankdir:  rankdir,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg or dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot when omitted)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node values and degrees in labels")
	cmd.Flags().StringVar(&rankdir, "rankdir", "TB", "layout direction: TB, LR, BT, or RL")

	return cmd
}

// renderParams bundles the render command's flag values.
type renderParams struct {
	format   string
	output   string
	noCache  bool
	detailed bool
	rankdir  string
}

// runRender loads the graph and writes the requested artifact.
func runRender(ctx context.Context, out io.Writer, input string, p renderParams) error {
	logger := loggerFromContext(ctx)

	if err := apperrors.ValidateFormat(p.format); err != nil {
		return err
	}
	if err := apperrors.ValidateRankdir(p.rankdir); err != nil {
		return err
	}

	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	dot := render.ToDOT(g, render.Options{Detailed: p.detailed, Rankdir: p.rankdir})

	if p.format == "dot" {
		if p.output == "" {
			fmt.Fprint(out, dot)
			return nil
		}
		if err := os.WriteFile(p.output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p.output, err)
		}
		printSuccess("Wrote DOT")
		printFile(p.output)
		return nil
	}

	artifacts, err := newArtifactCache(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer artifacts.Close()

	key := cache.ArtifactKey(dot, p.format)
	svg, cached, err := artifacts.Get(ctx, key)
	if err != nil || !cached {
		spinner := newSpinnerWithContext(ctx, "Rendering graph...")
		spinner.Start()
		svg, err = render.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render: %w", err)
		}
		spinner.Stop()

		if err := artifacts.Set(ctx, key, svg, cache.DefaultTTL); err != nil {
			logger.Warn("cache artifact", "err", err)
		}
	}

	path := p.output
	if path == "" {
		path = outputPath(input, "svg")
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered graph")
	printStats(g.NodeCount(), g.EdgeCount(), cached)
	printFile(path)
	return nil
}

// outputPath derives an output filename from the input path and format.
// Stdin input maps to "graph.<ext>" in the working directory.
func outputPath(input, ext string) string {
	if input == "-" {
		return "graph." + ext
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+"."+ext)
}
