package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navpath_search_total",
		Help: "Total number of route searches by terminal status",
	}, []string{"status"})

	searchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navpath_search_iterations",
		Help:    "Frontier pops per route search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 11), // 1 .. 1024
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navpath_search_duration_seconds",
		Help:    "Wall time of route searches",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10), // 1µs .. ~0.26s
	})
)

func observe(res Result, d time.Duration) {
	searchTotal.WithLabelValues(res.Status.String()).Inc()
	searchIterations.Observe(float64(res.Iterations))
	searchDuration.Observe(d.Seconds())
}
