// Package bfs provides breadth-first traversal over core.Graph and the
// structural summaries built on it: connected components and a Profile
// (degree sequence, component sizes, diameter) used by the subiso info
// command.
//
// Walk visits vertices in increasing hop distance from a start vertex, with
// optional hooks (WithOnVisit), depth limiting (WithMaxDepth) and
// cancellation (WithContext).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
package bfs
