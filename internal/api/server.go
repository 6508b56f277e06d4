// Package api exposes the graph engine over HTTP.
//
// Every endpoint accepts a JSON edge list, builds the graph in memory,
// answers, and forgets it - the service is stateless and stores no graph
// data. The only persistent state is the artifact cache for rendered
// output.
//
// # Endpoints
//
//	POST /v1/sort     topological order (strict mode optional)
//	POST /v1/walk     DFS/BFS traversal from a start node
//	POST /v1/check    acyclicity check via the edge guard
//	POST /v1/render   DOT or SVG rendering, cached by content hash
//	GET  /healthz     liveness probe
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/graphkit/pkg/cache"
	apperrors "github.com/matzehuels/graphkit/pkg/errors"
	"github.com/matzehuels/graphkit/pkg/graph/dag"
	"github.com/matzehuels/graphkit/pkg/graph/toposort"
	"github.com/matzehuels/graphkit/pkg/graph/traverse"
	"github.com/matzehuels/graphkit/pkg/observability"
	"github.com/matzehuels/graphkit/pkg/render"
)

// Server handles graph API requests.
type Server struct {
	logger    *log.Logger
	artifacts cache.Cache
}

// New creates a Server. A nil artifacts cache disables render caching.
func New(logger *log.Logger, artifacts cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if artifacts == nil {
		artifacts = cache.NewNullCache()
	}
	return &Server{logger: logger, artifacts: artifacts}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sort", s.handleSort)
		r.Post("/walk", s.handleWalk)
		r.Post("/check", s.handleCheck)
		r.Post("/render", s.handleRender)
	})
	return r
}

// sortRequest is the body of POST /v1/sort.
type sortRequest struct {
	Graph GraphRequest `json:"graph"`
	// Strict makes a cyclic graph an error instead of a partial order.
	Strict bool `json:"strict,omitempty"`
}

type sortResponse struct {
	Order []string `json:"order"`
	// Complete reports whether every node made it into the order.
	Complete bool `json:"complete"`
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}

	g := req.Graph.Digraph()
	observability.Graph().OnSortStart(r.Context(), g.NodeCount())
	start := time.Now()

	order := toposort.Sort(g)
	complete := len(order) == g.NodeCount()
	observability.Graph().OnSortComplete(r.Context(), len(order), time.Since(start))

	if req.Strict && !complete {
		writeErr(w, apperrors.Wrap(apperrors.ErrCodeCyclicGraph, toposort.ErrCyclic, "graph contains a cycle"))
		return
	}
	writeJSON(w, http.StatusOK, sortResponse{Order: order, Complete: complete})
}

// walkRequest is the body of POST /v1/walk.
type walkRequest struct {
	Graph GraphRequest `json:"graph"`
	Order string       `json:"order"` // "dfs" or "bfs"
	Start string       `json:"start"`
}

type walkResponse struct {
	Visited []string `json:"visited"`
}

func (s *Server) handleWalk(w http.ResponseWriter, r *http.Request) {
	var req walkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if err := apperrors.ValidateNodeID(req.Start); err != nil {
		writeErr(w, err)
		return
	}
	if req.Order == "" {
		req.Order = "dfs"
	}
	if err := apperrors.ValidateOrder(req.Order); err != nil {
		writeErr(w, err)
		return
	}

	g := req.Graph.Digraph()
	seq := traverse.DFS(g, req.Start)
	if req.Order == "bfs" {
		seq = traverse.BFS(g, req.Start)
	}

	observability.Graph().OnTraverseStart(r.Context(), req.Order, req.Start)
	start := time.Now()
	visited := make([]string, 0, g.NodeCount())
	for id := range seq {
		visited = append(visited, id)
	}
	observability.Graph().OnTraverseComplete(r.Context(), req.Order, req.Start, len(visited), time.Since(start))

	writeJSON(w, http.StatusOK, walkResponse{Visited: visited})
}

type checkResponse struct {
	Acyclic bool      `json:"acyclic"`
	Edge    *EdgeJSON `json:"edge,omitempty"` // first cycle-forming edge
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}

	if _, err := req.DAG(); err != nil {
		var ce *dag.CycleError
		if errors.As(err, &ce) {
			observability.Graph().OnEdgeRejected(r.Context(), ce.From, ce.To)
			writeJSON(w, http.StatusOK, checkResponse{
				Acyclic: false,
				Edge:    &EdgeJSON{From: ce.From, To: ce.To},
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Acyclic: true})
}

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	Graph    GraphRequest `json:"graph"`
	Format   string       `json:"format"` // "dot" or "svg", default svg
	Detailed bool         `json:"detailed,omitempty"`
	Rankdir  string       `json:"rankdir,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if req.Format == "" {
		req.Format = "svg"
	}
	if err := apperrors.ValidateFormat(req.Format); err != nil {
		writeErr(w, err)
		return
	}
	if err := apperrors.ValidateRankdir(req.Rankdir); err != nil {
		writeErr(w, err)
		return
	}

	g := req.Graph.Digraph()
	dot := render.ToDOT(g, render.Options{Detailed: req.Detailed, Rankdir: req.Rankdir})

	if req.Format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(dot))
		return
	}

	key := cache.ArtifactKey(dot, req.Format)
	if svg, ok, err := s.artifacts.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
		return
	}

	observability.Render().OnRenderStart(r.Context(), req.Format, g.NodeCount())
	start := time.Now()
	svg, err := render.RenderSVG(r.Context(), dot)
	observability.Render().OnRenderComplete(r.Context(), req.Format, len(svg), time.Since(start), err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render: "+err.Error())
		return
	}

	if err := s.artifacts.Set(r.Context(), key, svg, cache.DefaultTTL); err != nil {
		s.logger.Warn("cache artifact", "err", err)
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeErr maps a coded error to an HTTP status and JSON body.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidNode,
		apperrors.ErrCodeInvalidOrder, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidEdge:
		status = http.StatusBadRequest
	case apperrors.ErrCodeCyclicGraph:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}
