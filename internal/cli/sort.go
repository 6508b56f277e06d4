package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphkit/pkg/graph/toposort"
)

// sortCommand creates the sort command for topological ordering.
func (c *CLI) sortCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "sort [graph.txt]",
		Short: "Topologically order a directed graph",
		Long: `Topologically order a directed graph.

The sort command reads an edge-list file (one "src dst" pair per line,
"-" for stdin) and prints a topological order, one node per line. Every
edge points from an earlier line to a later one.

For cyclic graphs the output is the partial order of the nodes outside
any cycle; nodes trapped in or downstream of a cycle are omitted and a
warning is printed. With --strict a cyclic graph is an error instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runSort(ctx, cmd.OutOrStdout(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on cyclic graphs instead of printing a partial order")

	return cmd
}

// runSort loads the graph and prints its topological order.
func runSort(ctx context.Context, out io.Writer, input string, strict bool) error {
	logger := loggerFromContext(ctx)

	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	prog := newProgress(logger)
	order := toposort.Sort(g)
	prog.done(fmt.Sprintf("Ordered %d of %d nodes", len(order), g.NodeCount()))

	if len(order) < g.NodeCount() {
		if strict {
			return toposort.ErrCyclic
		}
		printWarning("%d nodes trapped in or behind a cycle were omitted", g.NodeCount()-len(order))
	}

	for _, id := range order {
		fmt.Fprintln(out, id)
	}
	return nil
}
