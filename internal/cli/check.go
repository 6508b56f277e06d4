package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphkit/pkg/edgelist"
	"github.com/matzehuels/graphkit/pkg/graph/dag"
)

// checkCommand creates the check command for acyclicity verification.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [graph.txt]",
		Short: "Verify a directed graph is acyclic",
		Long: `Verify a directed graph is acyclic.

The check command replays the edge-list file ("-" for stdin) through the
acyclic guard. The first edge that would close a cycle is reported along
with its line number, and the command exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runCheck(ctx, args[0])
		},
	}

	return cmd
}

// runCheck replays the edge list through the guard and reports the result.
func runCheck(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)

	var (
		d   *dag.DAG
		err error
	)
	prog := newProgress(logger)
	if input == "-" {
		d, err = edgelist.ParseDAG(os.Stdin)
	} else {
		d, err = edgelist.ParseDAGFile(input)
	}

	var ce *dag.CycleError
	if errors.As(err, &ce) {
		printError("Cycle detected: adding %s %s %s closes a loop", ce.From, iconArrow, ce.To)
		printDetail("%v", err)
		return errors.New("graph is cyclic")
	}
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Checked %d edges", d.EdgeCount()))

	printSuccess("Graph is acyclic")
	printStats(d.NodeCount(), d.EdgeCount(), false)
	if input != "-" {
		printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
	}
	return nil
}
