package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_pipeline_outcomes_total",
			Help: "Count of recommendation pipeline runs by outcome.",
		},
		[]string{"outcome"},
	)

	RecommendCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_pipeline_candidates",
		Help:    "Number of products in the combined score mapping per run.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func init() {
	prometheus.MustRegister(RecommendOutcomesTotal, RecommendCandidates)
}
