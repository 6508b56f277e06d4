package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphkit/pkg/graph/toposort"
)

// writeGraphFile writes an edge-list file into a temp dir and returns its path.
func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSort(t *testing.T) {
	path := writeGraphFile(t, "compile link\nlink test\n")

	var out bytes.Buffer
	if err := runSort(context.Background(), &out, path, false); err != nil {
		t.Fatalf("runSort() error: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"compile", "link", "test"}
	if len(got) != len(want) {
		t.Fatalf("runSort() printed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunSortCyclicPartial(t *testing.T) {
	path := writeGraphFile(t, "a b\nb c\nc b\n")

	var out bytes.Buffer
	if err := runSort(context.Background(), &out, path, false); err != nil {
		t.Fatalf("runSort() error: %v", err)
	}

	got := strings.Fields(out.String())
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("runSort() printed %v, want [a]", got)
	}
}

func TestRunSortStrictCyclic(t *testing.T) {
	path := writeGraphFile(t, "a b\nb a\n")

	var out bytes.Buffer
	err := runSort(context.Background(), &out, path, true)
	if err != toposort.ErrCyclic {
		t.Errorf("runSort(strict) error = %v, want ErrCyclic", err)
	}
}

func TestRunWalkDFS(t *testing.T) {
	path := writeGraphFile(t, "a b\na c\nb d\n")

	var out bytes.Buffer
	if err := runWalk(context.Background(), &out, path, "dfs", "a"); err != nil {
		t.Fatalf("runWalk() error: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"a", "b", "d", "c"}
	if len(got) != len(want) {
		t.Fatalf("runWalk() printed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunWalkBFS(t *testing.T) {
	path := writeGraphFile(t, "a b\na c\nb d\n")

	var out bytes.Buffer
	if err := runWalk(context.Background(), &out, path, "bfs", "a"); err != nil {
		t.Fatalf("runWalk() error: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunWalkBadOrder(t *testing.T) {
	path := writeGraphFile(t, "a b\n")

	var out bytes.Buffer
	if err := runWalk(context.Background(), &out, path, "sideways", "a"); err == nil {
		t.Error("runWalk() should reject an unknown order")
	}
}

func TestRunCheckAcyclic(t *testing.T) {
	path := writeGraphFile(t, "a b\nb c\n")

	if err := runCheck(context.Background(), path); err != nil {
		t.Errorf("runCheck() error = %v for acyclic graph", err)
	}
}

func TestRunCheckCyclic(t *testing.T) {
	path := writeGraphFile(t, "a b\nb c\nc a\n")

	if err := runCheck(context.Background(), path); err == nil {
		t.Error("runCheck() should fail for a cyclic graph")
	}
}

func TestRunRenderDOT(t *testing.T) {
	path := writeGraphFile(t, "a b\n")

	var out bytes.Buffer
	err := runRender(context.Background(), &out, path, renderParams{format: "dot", rankdir: "TB"})
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	if !strings.Contains(out.String(), `"a" -> "b";`) {
		t.Errorf("DOT output missing edge:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "rankdir=TB") {
		t.Errorf("DOT output missing rankdir:\n%s", out.String())
	}
}

func TestRunRenderDOTToFile(t *testing.T) {
	path := writeGraphFile(t, "a b\n")
	outPath := filepath.Join(t.TempDir(), "out.dot")

	var out bytes.Buffer
	err := runRender(context.Background(), &out, path, renderParams{format: "dot", output: outPath, rankdir: "TB"})
	if err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Errorf("output file missing digraph header:\n%s", data)
	}
}

func TestRunRenderBadFormat(t *testing.T) {
	path := writeGraphFile(t, "a b\n")

	var out bytes.Buffer
	err := runRender(context.Background(), &out, path, renderParams{format: "bmp"})
	if err == nil {
		t.Error("runRender() should reject an unknown format")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{"deps.txt", "svg", "deps.svg"},
		{"sub/dir/graph.edges", "svg", "sub/dir/graph.svg"},
		{"-", "svg", "graph.svg"},
		{"noext", "svg", "noext.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
		}
	}
}
