// Package graphio reads and writes simple undirected graphs as edge-list
// documents in YAML or JSON, the input format of the subiso command and
// HTTP API.
//
//	name: c4
//	vertices: [a, b, c, d]
//	edges: [[a, b], [b, c], [c, d], [d, a]]
//
// Read/ReadFile return a *core.Graph; Write/WriteFile emit the same shape.
// Errors: ErrUnknownFormat, ErrDecode, ErrInvalidDocument.
package graphio
