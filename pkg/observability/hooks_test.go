package observability

import (
	"context"
	"testing"
	"time"
)

type testGraphHooks struct {
	NoopGraphHooks
	rejected int
}

func (h *testGraphHooks) OnEdgeRejected(context.Context, string, string) { h.rejected++ }

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGraphHooks{}
	g.OnTraverseStart(ctx, "dfs", "root")
	g.OnTraverseComplete(ctx, "dfs", "root", 10, time.Second)
	g.OnSortStart(ctx, 10)
	g.OnSortComplete(ctx, 10, time.Second)
	g.OnEdgeRejected(ctx, "a", "b")

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 10)
	r.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/sort")
	h.OnResponse(ctx, "POST", "/v1/sort", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Graph() should return NoopGraphHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customGraph := &testGraphHooks{}
	SetGraphHooks(customGraph)
	if Graph() != customGraph {
		t.Error("SetGraphHooks should set custom hooks")
	}
	Graph().OnEdgeRejected(context.Background(), "a", "b")
	if customGraph.rejected != 1 {
		t.Errorf("rejected = %d, want 1", customGraph.rejected)
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Nil registrations are ignored, keeping the previous hooks.
	SetCacheHooks(nil)
	if Cache() != customCache {
		t.Error("SetCacheHooks(nil) should keep previous hooks")
	}

	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset() should restore noop graph hooks")
	}
}
