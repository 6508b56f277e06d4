// Package render produces node-link visualizations of graphkit graphs.
//
// [ToDOT] emits Graphviz DOT text; [RenderSVG] lays it out and renders it
// to SVG in-process via [github.com/goccy/go-graphviz], so no external
// Graphviz installation is needed.
//
// Output is deterministic: nodes and edges are emitted sorted by ID, so
// the same graph always produces the same DOT text. That property is what
// makes rendered artifacts cacheable by content hash (see
// [github.com/matzehuels/graphkit/pkg/cache]).
package render
