// Package metrics defines and registers all custom Prometheus metrics for the
// plantvision API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// and are exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "plantvision"

// PredictionsTotal counts predictions that completed successfully.
// Label:
//   - class: the predicted class name (fixed closed set, bounded cardinality)
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of predictions successfully recorded, by class.",
	},
	[]string{"class"},
)

// PredictionErrorsTotal counts predict requests that failed.
// Label:
//   - reason: short failure description ("undecodable_image", "internal")
var PredictionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_errors_total",
		Help:      "Total number of predict requests that failed processing.",
	},
	[]string{"reason"},
)

// PredictionDuration measures how long a predict request takes end-to-end,
// from upload persistence through classification to the database insert.
var PredictionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of predict handling from stored upload to recorded result.",
		Buckets:   prometheus.DefBuckets,
	},
)

// InferenceCacheTotal counts classification cache decisions.
// Label:
//   - result: "hit" (forward pass skipped) or "miss" (model invoked)
var InferenceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inference_cache_total",
		Help:      "Total number of classification cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)
