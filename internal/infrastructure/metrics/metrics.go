package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation metrics
var (
	CalculationsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gst_calculations_computed_total",
		Help: "Total number of GST calculations performed",
	})

	HistoryAppendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gst_history_append_failures_total",
		Help: "Total number of failed background history writes",
	})

	HistoryFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gst_history_fetches_total",
		Help: "Total number of successful history reads",
	})
)

// Summary metrics
var (
	SummariesRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gst_summaries_requested_total",
		Help: "Total number of history summaries requested",
	})

	SummaryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gst_summary_failures_total",
		Help: "Total number of failed summarization calls",
	})

	SummaryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gst_summary_duration_seconds",
		Help:    "Summarization request duration in seconds",
		Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	})
)
