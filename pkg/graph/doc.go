// Package graph provides a mutable directed graph with optional node
// values and edge weights.
//
// # Overview
//
// Graphkit models directed relations between string-identified nodes.
// This package is the storage core: it owns the node set and the adjacency
// relation and exposes a read-only query surface consumed by the traversal
// ([github.com/matzehuels/graphkit/pkg/graph/traverse]), ordering
// ([github.com/matzehuels/graphkit/pkg/graph/toposort]) and acyclic-guard
// ([github.com/matzehuels/graphkit/pkg/graph/dag]) layers.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Digraph.AddNode] and edges
// with [Digraph.AddEdge]. Edge insertion creates missing endpoints
// automatically, so a graph can be built from edges alone:
//
//	g := graph.New()
//	g.AddEdge(graph.Edge{From: "app", To: "lib"})
//	g.AddEdge(graph.Edge{From: "lib", To: "core", Weight: 2})
//
// Query the structure with [Digraph.Successors], [Digraph.Predecessors],
// [Digraph.Neighbors] and [Digraph.EdgeWeight]. Queries about unknown IDs
// return empty results, never errors.
//
// # Mutation Semantics
//
// There is no node or edge removal. Re-adding an existing node with a
// non-nil value overwrites the stored value (last write wins); re-adding
// with a nil value is a membership no-op. Parallel edges are permitted.
//
// Digraph is not safe for concurrent use; callers sharing a graph across
// goroutines must treat each logical operation, including a full
// traversal, as one externally synchronized unit.
package graph
