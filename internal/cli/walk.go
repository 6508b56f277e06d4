package cli

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/graphkit/pkg/errors"
	"github.com/matzehuels/graphkit/pkg/graph/traverse"
)

// walkCommand creates the walk command for graph traversal.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		order string
		start string
	)

	cmd := &cobra.Command{
		Use:   "walk [graph.txt]",
		Short: "Traverse a directed graph from a start node",
		Long: `Traverse a directed graph from a start node.

The walk command reads an edge-list file ("-" for stdin) and prints the
nodes reachable from the start node in visit order, one per line. Each
node appears at most once even when the graph contains cycles.

With --order dfs (the default) neighbors are explored depth-first in
insertion order; with --order bfs nodes are visited level by level.

When --start is omitted, an interactive picker lists the graph's nodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runWalk(ctx, cmd.OutOrStdout(), args[0], order, start)
		},
	}

	cmd.Flags().StringVar(&order, "order", "dfs", "traversal order: dfs or bfs")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node (interactive picker when omitted)")

	return cmd
}

// runWalk loads the graph and prints the traversal from the start node.
func runWalk(ctx context.Context, out io.Writer, input, order, start string) error {
	logger := loggerFromContext(ctx)

	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if start == "" {
		start, err = pickNode(g)
		if err != nil {
			return err
		}
		if start == "" {
			printInfo("No node selected")
			return nil
		}
	}

	if err := apperrors.ValidateOrder(order); err != nil {
		return err
	}

	var seq iter.Seq[string]
	if order == "bfs" {
		seq = traverse.BFS(g, start)
	} else {
		seq = traverse.DFS(g, start)
	}

	prog := newProgress(logger)
	visited := 0
	for id := range seq {
		fmt.Fprintln(out, id)
		visited++
	}
	prog.done(fmt.Sprintf("Visited %d of %d nodes", visited, g.NodeCount()))

	return nil
}
