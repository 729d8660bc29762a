// Package metrics provides Prometheus observability metrics for the
// ingestion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// RowsIngestedTotal tracks rows read from the input dataset.
var RowsIngestedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "ingestion",
	Name:      "rows_total",
	Help:      "Total data rows read from the input dataset",
})

// ParseErrorsTotal tracks parse failures by error type.
var ParseErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ingestion",
	Name:      "parse_errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// TrainRows reports the size of the most recent train split.
var TrainRows = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "splitter",
	Name:      "train_rows",
	Help:      "Number of rows in the train split of the last run",
})

// TestRows reports the size of the most recent test split.
var TestRows = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "splitter",
	Name:      "test_rows",
	Help:      "Number of rows in the test split of the last run",
})

// IngestionDurationSeconds tracks time to read, split, and persist artifacts.
var IngestionDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "ingestion",
	Name:      "duration_seconds",
	Help:      "Time taken by the ingestion stage",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// TransformDurationSeconds tracks time spent in the transformation stage.
var TransformDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "transform",
	Name:      "duration_seconds",
	Help:      "Time taken by the transformation stage",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// ResetGauges resets the split gauges before a new run.
func ResetGauges() {
	TrainRows.Set(0)
	TestRows.Set(0)
}
