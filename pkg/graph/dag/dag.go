package dag

import (
	"errors"
	"fmt"

	"github.com/matzehuels/graphkit/pkg/graph"
	"github.com/matzehuels/graphkit/pkg/graph/toposort"
	"github.com/matzehuels/graphkit/pkg/graph/traverse"
)

// ErrCycle is the sentinel matched by errors.Is for rejected edges.
// The concrete error returned by [DAG.AddEdge] is a [*CycleError] carrying
// the offending endpoints.
var ErrCycle = errors.New("dag: edge would create a cycle")

// CycleError reports an edge rejected by [DAG.AddEdge] because inserting
// it would close a directed cycle. It unwraps to [ErrCycle].
type CycleError struct {
	From string // Source of the rejected edge
	To   string // Target of the rejected edge
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dag: edge %s→%s would create a cycle", e.From, e.To)
}

// Unwrap makes errors.Is(err, ErrCycle) match.
func (e *CycleError) Unwrap() error { return ErrCycle }

// DAG is a directed graph that enforces acyclicity on every edge
// insertion. It wraps an owned [graph.Digraph] by delegation: mutations
// pass through a reachability pre-check, queries pass straight through.
//
// The invariant holds by induction - the empty graph is acyclic, and
// AddEdge refuses any edge whose insertion would close a cycle - so every
// successful call leaves the graph acyclic and [DAG.Sort] is always total.
//
// Like Digraph, a DAG is not safe for concurrent use without external
// synchronization; the reachability check plus insertion must be treated
// as one atomic unit by callers sharing a DAG across goroutines.
type DAG struct {
	g *graph.Digraph
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{g: graph.New()}
}

// AddNode delegates to [graph.Digraph.AddNode]. Nodes can never introduce
// a cycle, so no check is performed.
func (d *DAG) AddNode(n graph.Node) { d.g.AddNode(n) }

// AddEdge inserts the edge unless doing so would create a directed cycle.
//
// The check runs before any mutation: the edge From→To closes a cycle
// exactly when To can already reach From (including From == To, the
// self-loop case). On rejection AddEdge returns a [*CycleError] and the
// graph is left untouched - the edge is not inserted and missing endpoints
// are not auto-created. On success the edge is inserted exactly as in the
// base store, auto-creating endpoints as needed.
func (d *DAG) AddEdge(e graph.Edge) error {
	if traverse.Reachable(d.g, e.To, e.From) {
		return &CycleError{From: e.From, To: e.To}
	}
	d.g.AddEdge(e)
	return nil
}

// Sort returns a topological order of the DAG. Because the acyclic
// invariant holds, the result always contains every node exactly once.
func (d *DAG) Sort() []string { return toposort.Sort(d.g) }

// Contains reports whether a node with the given ID exists.
func (d *DAG) Contains(id string) bool { return d.g.Contains(id) }

// Value returns the value stored for the node, see [graph.Digraph.Value].
func (d *DAG) Value(id string) (any, bool) { return d.g.Value(id) }

// Neighbors returns a copy of the node's outgoing edges in insertion order.
func (d *DAG) Neighbors(id string) []graph.Edge { return d.g.Neighbors(id) }

// Successors returns the targets of the node's outgoing edges.
func (d *DAG) Successors(id string) []string { return d.g.Successors(id) }

// Predecessors returns the sources of the node's incoming edges.
func (d *DAG) Predecessors(id string) []string { return d.g.Predecessors(id) }

// EdgeWeight returns the weight of the first edge from→to, see
// [graph.Digraph.EdgeWeight].
func (d *DAG) EdgeWeight(from, to string) (any, bool) { return d.g.EdgeWeight(from, to) }

// Nodes returns the IDs of all nodes. The order is not guaranteed.
func (d *DAG) Nodes() []string { return d.g.Nodes() }

// Edges returns a copy of all edges in the graph.
func (d *DAG) Edges() []graph.Edge { return d.g.Edges() }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return d.g.NodeCount() }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return d.g.EdgeCount() }

// Digraph exposes the underlying store for read-only consumers such as
// traversal and rendering. Mutating it directly bypasses the cycle guard
// and voids the acyclic invariant.
func (d *DAG) Digraph() *graph.Digraph { return d.g }
