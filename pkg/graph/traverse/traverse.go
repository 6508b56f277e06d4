package traverse

import (
	"iter"

	"github.com/matzehuels/graphkit/pkg/graph"
)

// DFS returns a lazy pre-order depth-first traversal starting at start.
// Each reachable node is yielded at most once; neighbors are expanded in
// adjacency insertion order. The start node is always yielded first, even
// when it is unknown to the graph (it simply has no neighbors).
//
// The sequence is finite and restartable: every range over it uses a fresh
// visited set, so two successive traversals of an unchanged graph yield
// identical sequences. Cycles are safe - a node already visited is skipped.
func DFS(g *graph.Digraph, start string) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]bool)
		var walk func(id string) bool
		walk = func(id string) bool {
			if visited[id] {
				return true
			}
			visited[id] = true
			if !yield(id) {
				return false
			}
			for _, next := range g.Successors(id) {
				if !walk(next) {
					return false
				}
			}
			return true
		}
		walk(start)
	}
}

// BFS returns a lazy level-order breadth-first traversal starting at start.
// The start node is marked visited immediately and yielded first; each
// dequeued node's unvisited neighbors are marked and enqueued in adjacency
// insertion order. Like [DFS], the sequence is finite, restartable, and
// safe on cyclic graphs.
func BFS(g *graph.Digraph, start string) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := map[string]bool{start: true}
		queue := []string{start}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if !yield(id) {
				return
			}
			for _, next := range g.Successors(id) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
}

// Reachable reports whether a directed path from→to exists. The empty path
// counts: Reachable(g, x, x) is always true, which is what makes the
// acyclic guard reject self-loops.
//
// The probe is an iterative depth-first search that stops as soon as the
// target is found, so it does not pay for the full traversal on a hit.
func Reachable(g *graph.Digraph, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.Successors(id) {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}
