// SPDX-License-Identifier: MIT
// Package: ullman
//
// metrics.go - Prometheus instrumentation of Match.

package ullman

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for subiso_match_total.
const (
	resultFound        = "found"
	resultNotFound     = "not_found"
	resultSizeMismatch = "size_mismatch"
	resultInvalid      = "invalid"
	resultCanceled     = "canceled"
)

var (
	// matchTotal counts Match calls by outcome.
	matchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subiso_match_total",
		Help: "Total subgraph isomorphism tests by result",
	}, []string{"result"})

	// matchDuration tracks Match latency by pruning mode.
	matchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "subiso_match_duration_seconds",
		Help:    "Subgraph isomorphism test duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
	}, []string{"mode"})

	// searchNodes counts search-state expansions.
	searchNodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subiso_search_nodes_total",
		Help: "Total search-state expansions",
	})

	// deadBranches counts assignments pruned by propagation.
	deadBranches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subiso_dead_branches_total",
		Help: "Total assignments rejected because a candidate row became empty",
	})

	// propagationClears counts candidate entries removed by propagation.
	propagationClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subiso_propagation_clears_total",
		Help: "Total candidate entries cleared by adjacency propagation",
	})
)

// observe records one finished Match call.
func observe(result string, mode Mode, elapsed time.Duration, s Stats) {
	matchTotal.WithLabelValues(result).Inc()
	matchDuration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
	searchNodes.Add(float64(s.Nodes))
	deadBranches.Add(float64(s.DeadBranches))
	propagationClears.Add(float64(s.Cleared))
}
