// Package edgelist reads directed graphs from a line-based text format.
//
// Each non-blank line is either a lone node or an edge:
//
//	# comment
//	shirt                 lone node
//	shirt vest            edge shirt→vest
//	pants belt 2.5        weighted edge
//
// Fields are whitespace-separated; the optional third field is a float
// weight. The format is an input surface for the CLI and API only - the
// graph core itself has no persistence.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/graphkit/pkg/graph"
	"github.com/matzehuels/graphkit/pkg/graph/dag"
)

// Parse reads an edge list into an unguarded [graph.Digraph].
// Cycles are accepted - use [ParseDAG] to enforce acyclicity.
func Parse(r io.Reader) (*graph.Digraph, error) {
	g := graph.New()
	err := scan(r, func(n graph.Node) error {
		g.AddNode(n)
		return nil
	}, func(e graph.Edge) error {
		g.AddEdge(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ParseDAG reads an edge list through the acyclic guard. The first
// cycle-forming edge aborts the parse with an error that wraps the
// guard's [*dag.CycleError] and names the offending line.
func ParseDAG(r io.Reader) (*dag.DAG, error) {
	d := dag.New()
	err := scan(r, func(n graph.Node) error {
		d.AddNode(n)
		return nil
	}, d.AddEdge)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseFile reads an edge list from a file, see [Parse].
func ParseFile(path string) (*graph.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseDAGFile reads an edge list from a file through the acyclic guard,
// see [ParseDAG].
func ParseDAGFile(path string) (*dag.DAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseDAG(f)
}

// scan tokenizes the input line by line and feeds nodes and edges to the
// callbacks. Callback errors abort the scan annotated with the line number.
func scan(r io.Reader, addNode func(graph.Node) error, addEdge func(graph.Edge) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			if err := addNode(graph.Node{ID: fields[0]}); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		case 2:
			if err := addEdge(graph.Edge{From: fields[0], To: fields[1]}); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return fmt.Errorf("line %d: bad weight %q: %w", lineNo, fields[2], err)
			}
			if err := addEdge(graph.Edge{From: fields[0], To: fields[1], Weight: w}); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return fmt.Errorf("line %d: expected 1-3 fields, got %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read edge list: %w", err)
	}
	return nil
}
