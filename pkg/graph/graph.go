package graph

import "slices"

// Node represents a vertex in the graph: a unique identifier with an
// optional associated value. A nil Value means "no value" - see
// [Digraph.AddNode] for the update policy.
//
// The zero value is not usable - ID must be set before adding to a Digraph.
type Node struct {
	ID    string // Unique identifier (also used as display label)
	Value any    // Arbitrary payload, nil when absent
}

// Edge represents a directed connection between two nodes, optionally
// carrying a weight. A nil Weight means the edge is unweighted.
type Edge struct {
	From   string // Source node ID
	To     string // Target node ID
	Weight any    // Arbitrary weight, nil when absent
}

// Digraph is a mutable directed graph with optional node values and edge
// weights. Nodes are identified by string IDs; edges keep insertion order
// per source, and parallel edges between the same pair are allowed.
//
// All query methods follow a "missing means empty" policy: asking about an
// unknown ID returns an empty result rather than an error. The only index
// maintained is the forward adjacency list - [Digraph.Predecessors] scans
// all adjacency lists, which is linear in the edge count.
//
// The zero value is not usable - use New to create a valid Digraph instance.
// Digraph is not safe for concurrent use without external synchronization.
type Digraph struct {
	nodes     map[string]*Node
	outgoing  map[string][]Edge // nodeID -> outgoing edges, insertion order
	edgeCount int
}

// New creates an empty directed graph.
func New() *Digraph {
	return &Digraph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]Edge),
	}
}

// AddNode inserts the node, or updates it when a node with the same ID
// already exists. The update policy is last-non-nil-write-wins: re-adding
// with a nil Value leaves any stored value untouched, re-adding with a
// non-nil Value overwrites it. AddNode never fails.
func (g *Digraph) AddNode(n Node) {
	if existing, ok := g.nodes[n.ID]; ok {
		if n.Value != nil {
			existing.Value = n.Value
		}
		return
	}
	node := n
	g.nodes[node.ID] = &node
}

// AddEdge appends a directed edge to the graph. Missing endpoints are
// created automatically with no value. Parallel edges between the same
// ordered pair are allowed and kept in insertion order. AddEdge never
// fails - cycle rejection is layered on top by [dag.DAG], not here.
func (g *Digraph) AddEdge(e Edge) {
	g.ensure(e.From)
	g.ensure(e.To)
	g.outgoing[e.From] = append(g.outgoing[e.From], e)
	g.edgeCount++
}

// ensure inserts id with no value unless it is already present.
func (g *Digraph) ensure(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &Node{ID: id}
	}
}

// Contains reports whether a node with the given ID exists.
func (g *Digraph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Value returns the value stored for the node and true, or nil and false
// when the node is unknown or has no value.
func (g *Digraph) Value(id string) (any, bool) {
	n, ok := g.nodes[id]
	if !ok || n.Value == nil {
		return nil, false
	}
	return n.Value, true
}

// Neighbors returns a copy of the node's outgoing edges in insertion order.
// Unknown IDs yield an empty slice.
func (g *Digraph) Neighbors(id string) []Edge {
	return slices.Clone(g.outgoing[id])
}

// Successors returns the target IDs of the node's outgoing edges in
// insertion order, including duplicates for parallel edges. Unknown IDs
// yield an empty slice.
func (g *Digraph) Successors(id string) []string {
	edges := g.outgoing[id]
	succ := make([]string, len(edges))
	for i, e := range edges {
		succ[i] = e.To
	}
	return succ
}

// Predecessors returns the IDs of all nodes with an edge into id, in the
// iteration order of the node set (which is not defined). Each predecessor
// appears once per edge, so parallel edges produce duplicates.
//
// No reverse index is maintained: this scans every adjacency list and is
// O(E) in the number of edges.
func (g *Digraph) Predecessors(id string) []string {
	var preds []string
	for from, edges := range g.outgoing {
		for _, e := range edges {
			if e.To == id {
				preds = append(preds, from)
			}
		}
	}
	return preds
}

// EdgeWeight returns the weight of the first edge from→to in insertion
// order and true, or nil and false when no such edge exists or the edge
// carries no weight.
func (g *Digraph) EdgeWeight(from, to string) (any, bool) {
	for _, e := range g.outgoing[from] {
		if e.To == to {
			if e.Weight == nil {
				return nil, false
			}
			return e.Weight, true
		}
	}
	return nil, false
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Digraph) HasEdge(from, to string) bool {
	for _, e := range g.outgoing[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// Nodes returns the IDs of all nodes. The order is not guaranteed.
func (g *Digraph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}

// Edges returns a copy of all edges in the graph, grouped by source node.
// Within one source the order matches insertion order; across sources the
// order is not guaranteed.
func (g *Digraph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for _, out := range g.outgoing {
		edges = append(edges, out...)
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Digraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph, counting parallel
// edges individually.
func (g *Digraph) EdgeCount() int { return g.edgeCount }
