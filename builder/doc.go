// Package builder provides deterministic generators for simple undirected
// graphs, used as fixtures for the matcher, by the CLI generate command, and
// in benchmarks.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(20, 0.2),
//	)
//
// Topologies: Path, Cycle, Complete, Star, Wheel, CompleteBipartite,
// RandomSparse. ByKind resolves them by name ("path", "cycle", "complete",
// "star", "wheel", "bipartite", "random").
//
// Options: WithIDScheme (and the WithSymbolIDs/WithPaddedIDs shorthands),
// WithSeed, WithRand, WithPartitionPrefix.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrUnknownKind. BuildGraph wraps constructor errors
// with "BuildGraph: %w".
package builder
