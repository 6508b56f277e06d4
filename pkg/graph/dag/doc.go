// Package dag provides a directed graph that stays acyclic by
// construction.
//
// [DAG] wraps a [github.com/matzehuels/graphkit/pkg/graph.Digraph] and
// vets every edge insertion with a reachability probe: an edge From→To is
// rejected with a [*CycleError] when To already reaches From. Rejection
// happens before any mutation, so a failed call leaves no trace - not
// even auto-created endpoint nodes.
//
//	d := dag.New()
//	_ = d.AddEdge(graph.Edge{From: "shirt", To: "vest"})
//	if err := d.AddEdge(graph.Edge{From: "vest", To: "shirt"}); err != nil {
//	    var ce *dag.CycleError
//	    errors.As(err, &ce) // ce.From, ce.To name the offending edge
//	}
//
// Because acyclicity is invariant, [DAG.Sort] always returns a complete
// topological order.
package dag
