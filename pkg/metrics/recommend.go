package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handlers
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of recommendation handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Total number of recommend requests by route and status code
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommend requests",
	}, []string{"route", "code"})
)

func init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
	)
}
