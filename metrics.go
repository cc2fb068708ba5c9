package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the matching pipeline. Registered once on the
// default registry; /metrics serves them.
var (
	matchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matching",
		Name:      "match_requests_total",
		Help:      "Match requests by outcome (ok, empty, not_found, bad_request, error, cache_hit).",
	}, []string{"outcome"})

	matchLatencySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matching",
		Name:      "match_latency_seconds",
		Help:      "End-to-end match request latency, including the pool fetch.",
		Buckets:   prometheus.DefBuckets,
	})

	matchCandidatesConsidered = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matching",
		Name:      "candidates_considered",
		Help:      "Candidate pool size per request, before filtering.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	matchResultsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matching",
		Name:      "results_returned",
		Help:      "Number of matches returned per request.",
		Buckets:   prometheus.LinearBuckets(0, 1, 11),
	})
)
