package graph

import (
	"slices"
	"testing"
)

func TestAddNode_Membership(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a"})

	if !g.Contains("a") {
		t.Error("Contains(a) = false, want true")
	}
	if g.Contains("b") {
		t.Error("Contains(b) = true, want false")
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestAddNode_LastNonNilValueWins(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "x", Value: 5})

	if v, ok := g.Value("x"); !ok || v != 5 {
		t.Errorf("Value(x) = %v, %v, want 5, true", v, ok)
	}

	// Re-adding without a value must not clear the stored value.
	g.AddNode(Node{ID: "x"})
	if v, ok := g.Value("x"); !ok || v != 5 {
		t.Errorf("Value(x) after bare re-add = %v, %v, want 5, true", v, ok)
	}

	// Re-adding with a value overwrites.
	g.AddNode(Node{ID: "x", Value: 7})
	if v, _ := g.Value("x"); v != 7 {
		t.Errorf("Value(x) after re-add = %v, want 7", v)
	}
}

func TestValue_UnknownOrUnset(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a"})

	if _, ok := g.Value("a"); ok {
		t.Error("Value(a) ok = true for node without value, want false")
	}
	if _, ok := g.Value("missing"); ok {
		t.Error("Value(missing) ok = true, want false")
	}
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})

	if !g.Contains("a") || !g.Contains("b") {
		t.Error("AddEdge did not create endpoint nodes")
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAddEdge_ParallelEdgesKeepOrder(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b", Weight: 1})
	g.AddEdge(Edge{From: "a", To: "c"})
	g.AddEdge(Edge{From: "a", To: "b", Weight: 9})

	if got := g.Successors("a"); !slices.Equal(got, []string{"b", "c", "b"}) {
		t.Errorf("Successors(a) = %v, want [b c b]", got)
	}

	// First matching edge wins for weight lookup.
	if w, ok := g.EdgeWeight("a", "b"); !ok || w != 1 {
		t.Errorf("EdgeWeight(a, b) = %v, %v, want 1, true", w, ok)
	}
}

func TestEdgeWeight_Absent(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})

	if _, ok := g.EdgeWeight("a", "b"); ok {
		t.Error("EdgeWeight(a, b) ok = true for unweighted edge, want false")
	}
	if _, ok := g.EdgeWeight("a", "z"); ok {
		t.Error("EdgeWeight(a, z) ok = true for missing edge, want false")
	}
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})

	edges := g.Neighbors("a")
	edges[0].To = "corrupted"

	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v after mutating Neighbors copy, want [b]", got)
	}
}

func TestNeighbors_UnknownIsEmpty(t *testing.T) {
	g := New()

	if got := g.Neighbors("ghost"); len(got) != 0 {
		t.Errorf("Neighbors(ghost) = %v, want empty", got)
	}
	if got := g.Successors("ghost"); len(got) != 0 {
		t.Errorf("Successors(ghost) = %v, want empty", got)
	}
	if got := g.Predecessors("ghost"); len(got) != 0 {
		t.Errorf("Predecessors(ghost) = %v, want empty", got)
	}
}

func TestPredecessors(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "c"})
	g.AddEdge(Edge{From: "b", To: "c"})
	g.AddEdge(Edge{From: "c", To: "d"})

	preds := g.Predecessors("c")
	slices.Sort(preds)
	if !slices.Equal(preds, []string{"a", "b"}) {
		t.Errorf("Predecessors(c) = %v, want [a b]", preds)
	}
}

func TestNodes_Unordered(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "c"})
	g.AddNode(Node{ID: "a"})
	g.AddEdge(Edge{From: "a", To: "b"})

	ids := g.Nodes()
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"a", "b", "c"}) {
		t.Errorf("Nodes() = %v, want [a b c]", ids)
	}
}

func TestEdges(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b", Weight: 3})
	g.AddEdge(Edge{From: "b", To: "c"})

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("len(Edges()) = %d, want 2", len(edges))
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "c") {
		t.Error("HasEdge missing inserted edges")
	}
	if g.HasEdge("b", "a") {
		t.Error("HasEdge(b, a) = true, want false")
	}
}
