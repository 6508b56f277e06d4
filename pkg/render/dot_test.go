package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphkit/pkg/graph"
)

func sample() *graph.Digraph {
	g := graph.New()
	g.AddNode(graph.Node{ID: "app", Value: "entry"})
	g.AddEdge(graph.Edge{From: "app", To: "lib"})
	g.AddEdge(graph.Edge{From: "lib", To: "core", Weight: 2.5})
	return g
}

func TestToDOT_Structure(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"app" -> "lib";`,
		`"lib" -> "core" [label="2.5"];`,
		`"core" [label="core"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := sample()
	first := ToDOT(g, Options{})
	for i := 0; i < 5; i++ {
		if got := ToDOT(g, Options{}); got != first {
			t.Fatal("ToDOT() output differs between runs")
		}
	}
}

func TestToDOT_DetailedIncludesValues(t *testing.T) {
	dot := ToDOT(sample(), Options{Detailed: true})

	if !strings.Contains(dot, "value: entry") {
		t.Errorf("detailed ToDOT() missing node value:\n%s", dot)
	}
}

func TestToDOT_Rankdir(t *testing.T) {
	dot := ToDOT(sample(), Options{Rankdir: "LR"})

	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("ToDOT() missing rankdir=LR:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="10.00 5.00 100.00 50.00">body</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %s, want origin viewBox", out)
	}
	if !strings.Contains(out, "body</svg>") {
		t.Errorf("normalizeViewBox() lost document body: %s", out)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	in := []byte(`<svg>body</svg>`)
	if got := string(normalizeViewBox(in)); got != `<svg>body</svg>` {
		t.Errorf("normalizeViewBox() = %s, want unchanged", got)
	}
}
