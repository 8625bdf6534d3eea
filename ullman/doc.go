// Package ullman decides whether a pattern graph occurs as a subgraph of a
// target graph, using Ullman's backtracking algorithm with degree pruning and
// adjacency-consistency propagation.
//
// Algorithm:
//
//  1. Candidate table F (n×m): F[i][j] = deg_P(i) ≤ deg_T(j).
//  2. Search row by row: for each open column j of row r (ascending), copy F,
//     commit r→j (clear row r and column j, set F[r][j]), propagate, recurse.
//  3. Propagation: for every open (wi, wj) with wi > r and wj ≠ j, clear the
//     entry when the relation r~wi in the pattern disagrees with j~wj in the
//     target. ModeStrict compares edges and non-edges; ModeMonomorphism only
//     requires pattern edges to be present.
//  4. A branch dies as soon as some row has no candidates left.
//  5. At depth n the table must have exactly one entry per row and at most
//     one per column; the first such table ends the search.
//
// Only existence is reported: no witness mapping is exposed.
//
// Every branch works on its own copy of F, so backtracking needs no undo log
// and top-level branches can run in parallel (WithParallelism) sharing only
// read-only adjacency data and a stop flag.
//
// Entry points:
//
//	Match(pattern, target Graph, opts...)                      // collaborator contract
//	IsSubgraphIsomorphic(pattern, target *core.Graph, opts...) // convenience
//
// Options: WithContext, WithMode, WithParallelism, WithLogger, WithOnAssign,
// WithStats.
//
// Errors:
//
//	ErrGraphNil        - nil pattern or target.
//	ErrInvalidInput    - collaborator contract violated (detected before search).
//	ErrOptionViolation - invalid option value.
//
// A pattern with more vertices than the target is a plain false, not an error.
//
// Complexity: exponential in n in the worst case; O(n·m) memory per level.
package ullman
