package metrics

import "github.com/prometheus/client_golang/prometheus"

// Retrieval Prometheus metrics.
var (
	RetrievalQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kbase",
			Name:      "retrieval_queries_total",
			Help:      "Total number of knowledge queries",
		},
		[]string{"outcome"}, // "ok" / "invalid"
	)

	RetrievalResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kbase",
			Name:      "retrieval_results_returned",
			Help:      "Number of items returned per query",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	QueryCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kbase",
			Name:      "query_cache_total",
			Help:      "Query cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var retrievalMetricsRegistered bool

// RegisterRetrievalMetrics registers Prometheus retrieval metrics. Must be called once from main.
func RegisterRetrievalMetrics() {
	if retrievalMetricsRegistered {
		return
	}
	prometheus.MustRegister(RetrievalQueriesTotal)
	prometheus.MustRegister(RetrievalResultsReturned)
	prometheus.MustRegister(QueryCacheTotal)
	retrievalMetricsRegistered = true
}
