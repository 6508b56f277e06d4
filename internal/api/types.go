package api

import (
	"github.com/matzehuels/graphkit/pkg/graph"
	"github.com/matzehuels/graphkit/pkg/graph/dag"
)

// GraphRequest is the wire form of a graph: a flat node and edge list.
// It is transport encoding only - nothing is stored server-side.
type GraphRequest struct {
	Nodes []NodeJSON `json:"nodes,omitempty"`
	Edges []EdgeJSON `json:"edges"`
}

// NodeJSON is the wire form of a node.
type NodeJSON struct {
	ID    string `json:"id"`
	Value any    `json:"value,omitempty"`
}

// EdgeJSON is the wire form of an edge.
type EdgeJSON struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight any    `json:"weight,omitempty"`
}

// Digraph materializes the request into an unguarded graph.
func (r GraphRequest) Digraph() *graph.Digraph {
	g := graph.New()
	for _, n := range r.Nodes {
		g.AddNode(graph.Node{ID: n.ID, Value: n.Value})
	}
	for _, e := range r.Edges {
		g.AddEdge(graph.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}
	return g
}

// DAG materializes the request through the acyclic guard. The first
// cycle-forming edge aborts with the guard's *dag.CycleError.
func (r GraphRequest) DAG() (*dag.DAG, error) {
	d := dag.New()
	for _, n := range r.Nodes {
		d.AddNode(graph.Node{ID: n.ID, Value: n.Value})
	}
	for _, e := range r.Edges {
		if err := d.AddEdge(graph.Edge{From: e.From, To: e.To, Weight: e.Weight}); err != nil {
			return nil, err
		}
	}
	return d, nil
}
