// Package toposort computes topological orderings of a
// [github.com/matzehuels/graphkit/pkg/graph.Digraph] using Kahn's
// algorithm.
//
// [Sort] is the permissive form: on cyclic input it returns the nodes that
// can be ordered and silently omits the rest. [Total] is the strict form
// for callers that require every node in the result.
package toposort

import (
	"errors"
	"slices"

	"github.com/matzehuels/graphkit/pkg/graph"
)

// ErrCyclic is returned by [Total] when the graph contains a directed
// cycle, so no total topological order exists.
var ErrCyclic = errors.New("toposort: graph contains a cycle")

// Sort returns a topological order of g computed with Kahn's algorithm:
// in-degrees from one scan of the adjacency lists, a FIFO queue of
// zero-in-degree nodes, and repeated dequeue-and-decrement.
//
// If g is acyclic the result contains every node exactly once and every
// edge u→v has u before v. If g contains a cycle the result is a strict
// subsequence: nodes inside or only reachable through a cycle never reach
// zero in-degree and are omitted. That degenerate behavior is deliberate,
// not an error - use [Total] for a hard failure.
//
// The node set has no defined iteration order, so ties among
// zero-in-degree candidates are broken by sorting the initial seeds by ID.
// That makes the output deterministic for a fixed graph.
func Sort(g *graph.Digraph) []string {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	for _, id := range nodes {
		inDegree[id] = 0
	}
	for _, id := range nodes {
		for _, next := range g.Successors(id) {
			inDegree[next]++
		}
	}

	queue := make([]string, 0, len(nodes))
	for _, id := range nodes {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	slices.Sort(queue)

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, next := range g.Successors(curr) {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return order
}

// Total returns a complete topological order of g, or [ErrCyclic] when g
// contains a directed cycle. It is equivalent to [Sort] plus a length
// check against the node count.
func Total(g *graph.Digraph) ([]string, error) {
	order := Sort(g)
	if len(order) != g.NodeCount() {
		return nil, ErrCyclic
	}
	return order, nil
}
