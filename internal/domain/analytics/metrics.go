package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "focusflow_analytics_summary_duration_seconds",
			Help:    "Time spent recomputing the analytics summary",
			Buckets: prometheus.DefBuckets,
		},
	)

	productivityScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "focusflow_productivity_score",
			Help: "Most recently computed productivity score (0-100)",
		},
	)

	consistencyScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "focusflow_consistency_score",
			Help: "Most recently computed weekly consistency score (0-100)",
		},
	)
)
