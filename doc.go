// Package subiso decides subgraph isomorphism between simple undirected
// graphs with Ullman's backtracking algorithm.
//
// Layout:
//
//	core/      simple undirected Graph with thread-safe mutation
//	matrix/    immutable adjacency-matrix view, the matcher's input contract
//	ullman/    candidate table, constraint propagation, search, parallel fan-out
//	builder/   deterministic fixture generators (path, cycle, wheel, G(n,p), ...)
//	graphio/   YAML/JSON edge-list documents
//	bfs/       breadth-first walk, components and graph profiles
//	cmd/subiso match, generate, info and serve commands
//
// Quick start:
//
//	p, _ := builder.BuildGraph(nil, builder.Path(3))
//	t, _ := builder.BuildGraph(nil, builder.Cycle(5))
//	ok, err := ullman.IsSubgraphIsomorphic(p, t)
//
// Only existence is reported; no witness mapping is returned.
package subiso
