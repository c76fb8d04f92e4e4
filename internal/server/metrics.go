package server

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests  *prometheus.CounterVec
	duration  prometheus.Histogram
	tokens    prometheus.Histogram
	cacheHits prometheus.Counter
}

// newMetrics registers the handler's collectors on reg. Collectors already
// present on reg are reused so several handlers can share one registry.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		requests: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lexprep_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"})),
		duration: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lexprep_preprocess_duration_seconds",
			Help:    "Time spent preprocessing one uncached document.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
		})),
		tokens: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lexprep_tokens_per_document",
			Help:    "Token count of each preprocessed document.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		})),
		cacheHits: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexprep_cache_hits_total",
			Help: "Requests served from the result cache.",
		})),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
