package dag

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/graphkit/pkg/graph"
)

func mustAdd(t *testing.T, d *DAG, from, to string) {
	t.Helper()
	if err := d.AddEdge(graph.Edge{From: from, To: to}); err != nil {
		t.Fatalf("AddEdge(%s, %s) error = %v", from, to, err)
	}
}

func TestAddEdge_AcceptsAcyclic(t *testing.T) {
	d := New()
	mustAdd(t, d, "a", "b")
	mustAdd(t, d, "b", "c")
	mustAdd(t, d, "a", "c")

	if d.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", d.EdgeCount())
	}
}

func TestAddEdge_RejectsCycle(t *testing.T) {
	d := New()
	mustAdd(t, d, "a", "b")
	mustAdd(t, d, "b", "c")

	err := d.AddEdge(graph.Edge{From: "c", To: "a"})
	if err == nil {
		t.Fatal("AddEdge(c, a) = nil, want CycleError")
	}
	if !errors.Is(err, ErrCycle) {
		t.Errorf("errors.Is(err, ErrCycle) = false for %v", err)
	}

	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not a *CycleError", err)
	}
	if ce.From != "c" || ce.To != "a" {
		t.Errorf("CycleError = %s→%s, want c→a", ce.From, ce.To)
	}

	// No net mutation: the edge must not be visible.
	if slices.Contains(d.Successors("c"), "a") {
		t.Error("Successors(c) contains a after rejected insert")
	}
	if d.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d after rejection, want 2", d.EdgeCount())
	}
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	d := New()
	d.AddNode(graph.Node{ID: "a"})

	if err := d.AddEdge(graph.Edge{From: "a", To: "a"}); !errors.Is(err, ErrCycle) {
		t.Errorf("AddEdge(a, a) error = %v, want ErrCycle", err)
	}
}

func TestAddEdge_RejectionCreatesNoEndpoints(t *testing.T) {
	d := New()

	// Self-loop on unknown node: check runs before mutation, so the
	// endpoint must not be created either.
	if err := d.AddEdge(graph.Edge{From: "x", To: "x"}); err == nil {
		t.Fatal("AddEdge(x, x) = nil, want CycleError")
	}
	if d.Contains("x") {
		t.Error("rejected edge auto-created its endpoint")
	}
	if d.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", d.NodeCount())
	}
}

func TestAddEdge_RecoverableAfterRejection(t *testing.T) {
	d := New()
	mustAdd(t, d, "a", "b")

	if err := d.AddEdge(graph.Edge{From: "b", To: "a"}); err == nil {
		t.Fatal("expected cycle rejection")
	}

	// The graph stays usable: unrelated inserts still succeed.
	mustAdd(t, d, "b", "c")
	if !slices.Contains(d.Successors("b"), "c") {
		t.Error("Successors(b) missing c after recovery")
	}
}

func TestSort_AlwaysTotal(t *testing.T) {
	d := New()
	mustAdd(t, d, "shirt", "vest")
	mustAdd(t, d, "shirt", "pants")
	mustAdd(t, d, "vest", "jacket")
	mustAdd(t, d, "pants", "belt")
	mustAdd(t, d, "belt", "jacket")

	order := d.Sort()
	if len(order) != d.NodeCount() {
		t.Fatalf("Sort() has %d nodes, want %d", len(order), d.NodeCount())
	}

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range d.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("edge %s→%s violated by order %v", e.From, e.To, order)
		}
	}
	if pos["shirt"] >= pos["vest"] || pos["shirt"] >= pos["pants"] {
		t.Errorf("shirt not before vest/pants in %v", order)
	}
	if pos["belt"] >= pos["jacket"] {
		t.Errorf("belt not before jacket in %v", order)
	}
}

func TestDressing_GuardLeavesCountsUnchanged(t *testing.T) {
	d := New()
	mustAdd(t, d, "shirt", "vest")
	mustAdd(t, d, "shirt", "pants")
	mustAdd(t, d, "vest", "jacket")
	mustAdd(t, d, "pants", "belt")
	mustAdd(t, d, "belt", "jacket")

	nodes, edges := d.NodeCount(), d.EdgeCount()

	err := d.AddEdge(graph.Edge{From: "jacket", To: "shirt"})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("AddEdge(jacket, shirt) error = %v, want ErrCycle", err)
	}
	if d.NodeCount() != nodes || d.EdgeCount() != edges {
		t.Errorf("counts changed after rejection: nodes %d→%d, edges %d→%d",
			nodes, d.NodeCount(), edges, d.EdgeCount())
	}
}

func TestDelegation(t *testing.T) {
	d := New()
	d.AddNode(graph.Node{ID: "a", Value: 1})
	mustAdd(t, d, "a", "b")

	if v, ok := d.Value("a"); !ok || v != 1 {
		t.Errorf("Value(a) = %v, %v, want 1, true", v, ok)
	}
	if !d.Contains("b") {
		t.Error("Contains(b) = false, want true")
	}
	if got := d.Predecessors("b"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Predecessors(b) = %v, want [a]", got)
	}
	if got := d.Neighbors("a"); len(got) != 1 || got[0].To != "b" {
		t.Errorf("Neighbors(a) = %v, want one edge to b", got)
	}
}
