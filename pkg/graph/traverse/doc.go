// Package traverse implements depth-first and breadth-first traversal over
// a [github.com/matzehuels/graphkit/pkg/graph.Digraph].
//
// Both [DFS] and [BFS] produce lazy iter.Seq sequences: each step runs
// synchronously on the caller's goroutine when the next element is pulled,
// and abandoning the range simply stops production - no goroutines, no
// cleanup. Traversals are read-only; running one concurrently with graph
// mutation is undefined.
//
//	for id := range traverse.BFS(g, "root") {
//	    fmt.Println(id)
//	}
//
// [Reachable] is the directed-path probe used by the acyclic guard in
// [github.com/matzehuels/graphkit/pkg/graph/dag].
package traverse
